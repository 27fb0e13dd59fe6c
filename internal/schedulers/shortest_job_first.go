package schedulers

import (
	"github.com/sirupsen/logrus"

	"cpu-simulator/internal/core"
)

// ScheduleShortestJobFirst is non-preemptive: a shorter job arriving while
// another one runs waits for the next decision point.
func ScheduleShortestJobFirst(processes []core.Process) (core.Schedule, error) {
	logrus.Debugf("running sjf algorithm over %d processes", len(processes))
	return scheduleNonPreemptive(processes, func(a, b core.Process) bool {
		return a.BurstTime < b.BurstTime
	})
}
