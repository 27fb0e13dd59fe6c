package schedulers

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"cpu-simulator/internal/core"
)

var (
	ErrInvalidInput = errors.New("invalid input")

	ErrInvalidQuantum     = fmt.Errorf("%w: time quantum must be a positive integer", ErrInvalidInput)
	ErrNegativeArrival    = fmt.Errorf("%w: arrival time must not be negative", ErrInvalidInput)
	ErrNonPositiveBurst   = fmt.Errorf("%w: burst time must be positive", ErrInvalidInput)
	ErrDuplicateProcessID = fmt.Errorf("%w: duplicate process id", ErrInvalidInput)
	ErrUnknownAlgorithm   = fmt.Errorf("%w: unknown algorithm", ErrInvalidInput)
)

type Algorithm string

const (
	FirstComeFirstServe Algorithm = "fcfs"
	ShortestJobFirst    Algorithm = "sjf"
	Priority            Algorithm = "priority"
	RoundRobin          Algorithm = "rr"
)

var algorithmNames = map[Algorithm]string{
	FirstComeFirstServe: "First-Come-First-Served",
	ShortestJobFirst:    "Shortest-Job-First",
	Priority:            "Priority",
	RoundRobin:          "Round Robin",
}

// Algorithms returns every supported algorithm in canonical order.
func Algorithms() []Algorithm {
	return []Algorithm{FirstComeFirstServe, ShortestJobFirst, Priority, RoundRobin}
}

// Name returns the human readable name of the algorithm.
func (a Algorithm) Name() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return string(a)
}

// Preemptive reports whether the algorithm uses a time quantum.
func (a Algorithm) Preemptive() bool {
	return a == RoundRobin
}

// ParseAlgorithm resolves a user supplied algorithm name.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fcfs", "first-come-first-serve", "first-come-first-served":
		return FirstComeFirstServe, nil
	case "sjf", "shortest-job-first":
		return ShortestJobFirst, nil
	case "priority", "pri":
		return Priority, nil
	case "rr", "round-robin", "roundrobin":
		return RoundRobin, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownAlgorithm, name)
}

// Simulate runs the given algorithm over processes. The quantum is only
// consulted for round robin.
func Simulate(alg Algorithm, processes []core.Process, quantum int) (core.Schedule, error) {
	switch alg {
	case FirstComeFirstServe:
		return ScheduleFirstComeFirstServe(processes)
	case ShortestJobFirst:
		return ScheduleShortestJobFirst(processes)
	case Priority:
		return SchedulePriority(processes)
	case RoundRobin:
		return ScheduleRoundRobin(processes, quantum)
	}
	return core.Schedule{}, fmt.Errorf("%w %q", ErrUnknownAlgorithm, alg)
}

// ValidateProcesses rejects batches the engine cannot simulate meaningfully.
// Processes without an id are not checked for duplicates.
func ValidateProcesses(processes []core.Process) error {
	seen := make(map[string]struct{}, len(processes))
	for i, p := range processes {
		if p.ArrivalTime < 0 {
			return fmt.Errorf("%w: process %d (%s) has arrival time %d", ErrNegativeArrival, i, p.ID, p.ArrivalTime)
		}
		if p.BurstTime <= 0 {
			return fmt.Errorf("%w: process %d (%s) has burst time %d", ErrNonPositiveBurst, i, p.ID, p.BurstTime)
		}
		if p.ID == "" {
			continue
		}
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("%w %q", ErrDuplicateProcessID, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}

// arrivalOrder copies processes into a new arena sorted by arrival time.
// Processes arriving together keep their input order.
func arrivalOrder(processes []core.Process) []core.Process {
	arena := make([]core.Process, len(processes))
	copy(arena, processes)
	sort.SliceStable(arena, func(i, j int) bool {
		return arena[i].ArrivalTime < arena[j].ArrivalTime
	})
	return arena
}
