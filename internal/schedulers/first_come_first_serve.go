package schedulers

import (
	"github.com/sirupsen/logrus"

	"cpu-simulator/internal/core"
)

// ScheduleFirstComeFirstServe runs processes in arrival order. Processes that
// arrive at the same instant run in the order they were given.
func ScheduleFirstComeFirstServe(processes []core.Process) (core.Schedule, error) {
	logrus.Debugf("running fcfs algorithm over %d processes", len(processes))
	return scheduleNonPreemptive(processes, func(a, b core.Process) bool {
		return a.ArrivalTime < b.ArrivalTime
	})
}
