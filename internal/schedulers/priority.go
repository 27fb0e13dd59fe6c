package schedulers

import (
	"github.com/sirupsen/logrus"

	"cpu-simulator/internal/core"
)

// SchedulePriority picks the ready process with the lowest priority value.
func SchedulePriority(processes []core.Process) (core.Schedule, error) {
	logrus.Debugf("running priority algorithm over %d processes", len(processes))
	return scheduleNonPreemptive(processes, func(a, b core.Process) bool {
		return a.Priority < b.Priority
	})
}
