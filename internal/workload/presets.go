package workload

import (
	"fmt"
	"sort"

	"cpu-simulator/internal/core"
)

type preset struct {
	description string
	processes   []core.Process
}

var presets = map[string]preset{
	"basic": {
		description: "Simple 3-process example",
		processes: []core.Process{
			{ID: "P1", ArrivalTime: 0, BurstTime: 10, Priority: 3},
			{ID: "P2", ArrivalTime: 2, BurstTime: 5, Priority: 1},
			{ID: "P3", ArrivalTime: 4, BurstTime: 8, Priority: 2},
		},
	},
	"complex": {
		description: "Multi-process with varied times",
		processes: []core.Process{
			{ID: "P1", ArrivalTime: 0, BurstTime: 8, Priority: 2},
			{ID: "P2", ArrivalTime: 1, BurstTime: 4, Priority: 1},
			{ID: "P3", ArrivalTime: 2, BurstTime: 9, Priority: 3},
			{ID: "P4", ArrivalTime: 3, BurstTime: 5, Priority: 2},
			{ID: "P5", ArrivalTime: 4, BurstTime: 2, Priority: 1},
		},
	},
	"priority": {
		description: "Different priority levels",
		processes: []core.Process{
			{ID: "High", ArrivalTime: 0, BurstTime: 6, Priority: 1},
			{ID: "Medium", ArrivalTime: 1, BurstTime: 8, Priority: 2},
			{ID: "Low", ArrivalTime: 2, BurstTime: 4, Priority: 3},
			{ID: "Urgent", ArrivalTime: 3, BurstTime: 3, Priority: 0},
		},
	},
}

// Preset returns a fresh copy of the named demo workload.
func Preset(name string) (Workload, error) {
	p, ok := presets[name]
	if !ok {
		return Workload{}, fmt.Errorf("unknown demo workload %q (available: %v)", name, PresetNames())
	}
	processes := make([]core.Process, len(p.processes))
	copy(processes, p.processes)
	return Workload{Name: name, Processes: processes}, nil
}

// PresetNames lists the demo workloads in alphabetical order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PresetDescription returns the one-line summary of a demo workload.
func PresetDescription(name string) string {
	return presets[name].description
}
