package schedulers

import (
	"github.com/sirupsen/logrus"

	"cpu-simulator/internal/core"
)

// preferred reports whether a should run before b. It must be a strict
// ordering: on equality the candidate seen first in arrival order wins.
type preferred func(a, b core.Process) bool

// scheduleNonPreemptive is the selection loop shared by FCFS, SJF and
// Priority. At every decision point it picks the most preferred process among
// those that have arrived, runs it to completion and repeats. When nothing
// is ready the clock jumps to the earliest pending arrival.
func scheduleNonPreemptive(processes []core.Process, better preferred) (core.Schedule, error) {
	if err := ValidateProcesses(processes); err != nil {
		return core.Schedule{}, err
	}

	arena := arrivalOrder(processes)
	pending := make([]int, len(arena))
	for i := range arena {
		pending[i] = i
	}

	cpu := core.NewCPU()
	results := make([]core.Result, 0, len(arena))

	for len(pending) > 0 {
		chosen := -1
		for pos, idx := range pending {
			if arena[idx].ArrivalTime > cpu.Clock() {
				// pending is arrival-sorted, nothing later is ready either
				break
			}
			if chosen == -1 || better(arena[idx], arena[pending[chosen]]) {
				chosen = pos
			}
		}

		if chosen == -1 {
			cpu.IdleUntil(arena[pending[0]].ArrivalTime)
			continue
		}

		idx := pending[chosen]
		pending = append(pending[:chosen], pending[chosen+1:]...)

		p := arena[idx]
		start := cpu.Clock()
		completion := cpu.Execute(idx, p, p.BurstTime)
		results = append(results, core.NewResult(p, start, completion))

		logrus.WithFields(logrus.Fields{"pid": p.ID, "clock": completion}).Debug("process completed")
	}

	return core.Schedule{
		Results:  results,
		Timeline: cpu.Timeline(),
		Metric:   cpu.Metric(),
	}, nil
}
