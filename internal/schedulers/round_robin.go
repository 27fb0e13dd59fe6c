package schedulers

import (
	"github.com/sirupsen/logrus"

	"cpu-simulator/internal/core"
)

// readyQueue is a FIFO of arena indices.
type readyQueue struct {
	queue []int
}

func (q *readyQueue) Enqueue(idx int) {
	q.queue = append(q.queue, idx)
}

func (q *readyQueue) Dequeue() (int, bool) {
	if len(q.queue) == 0 {
		return 0, false
	}
	idx := q.queue[0]
	q.queue = q.queue[1:]
	return idx, true
}

func (q *readyQueue) Len() int {
	return len(q.queue)
}

// ScheduleRoundRobin simulates preemptive round robin with a fixed quantum.
// Remaining burst is tracked per arena slot, so processes sharing an id
// cannot corrupt each other's accounting.
func ScheduleRoundRobin(processes []core.Process, timeQuantum int) (core.Schedule, error) {
	if timeQuantum <= 0 {
		return core.Schedule{}, ErrInvalidQuantum
	}
	if err := ValidateProcesses(processes); err != nil {
		return core.Schedule{}, err
	}
	logrus.Debugf("running roundRobin algorithm with timeQuantum = %d over %d processes", timeQuantum, len(processes))

	arena := arrivalOrder(processes)
	remaining := make([]int, len(arena))
	completed := make([]bool, len(arena))
	started := make([]int, len(arena))
	for i, p := range arena {
		remaining[i] = p.BurstTime
		started[i] = -1
	}

	cpu := core.NewCPU()
	ready := &readyQueue{}
	results := make([]core.Result, 0, len(arena))
	next := 0 // first arena slot not yet admitted

	admit := func() {
		for next < len(arena) && arena[next].ArrivalTime <= cpu.Clock() {
			logrus.WithFields(logrus.Fields{"pid": arena[next].ID, "clock": cpu.Clock()}).Debug("admitted to ready queue")
			ready.Enqueue(next)
			next++
		}
	}

	for len(results) < len(arena) {
		admit()

		idx, ok := ready.Dequeue()
		if !ok {
			if next < len(arena) {
				cpu.IdleUntil(arena[next].ArrivalTime)
				continue
			}
			break
		}
		if completed[idx] {
			continue
		}

		run := timeQuantum
		if remaining[idx] < run {
			run = remaining[idx]
		}
		if started[idx] < 0 {
			started[idx] = cpu.Clock()
		}
		cpu.Execute(idx, arena[idx], run)
		remaining[idx] -= run

		// arrivals during the slice queue up ahead of the preempted process
		admit()

		if remaining[idx] == 0 {
			completed[idx] = true
			results = append(results, core.NewResult(arena[idx], started[idx], cpu.Clock()))
			logrus.WithFields(logrus.Fields{"pid": arena[idx].ID, "clock": cpu.Clock()}).Debug("process completed")
			continue
		}

		logrus.WithFields(logrus.Fields{"pid": arena[idx].ID, "remaining": remaining[idx]}).Debug("context switch")
		ready.Enqueue(idx)
	}

	return core.Schedule{
		Results:  results,
		Timeline: cpu.Timeline(),
		Metric:   cpu.Metric(),
	}, nil
}
