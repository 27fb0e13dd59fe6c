package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-simulator/config"
	"cpu-simulator/internal/responses"
	"cpu-simulator/internal/schedulers"
	"cpu-simulator/internal/workload"
)

func TestMain(m *testing.M) {
	logrus.SetLevel(logrus.WarnLevel)
	os.Exit(m.Run())
}

func TestRunSimulate_JSONSingleAlgorithm(t *testing.T) {
	var out bytes.Buffer
	err := runSimulate(&out, simulateOptions{algorithm: "priority", demo: "priority", output: "json", defaultQuantum: 2})
	require.NoError(t, err)

	var response responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &response))
	ids := make([]string, len(response.Details))
	for i, d := range response.Details {
		ids[i] = d.ProcessId
	}
	assert.Equal(t, []string{"High", "Urgent", "Medium", "Low"}, ids)
}

func TestRunSimulate_TableComparison(t *testing.T) {
	var out bytes.Buffer
	err := runSimulate(&out, simulateOptions{algorithm: "all", output: "table", defaultQuantum: 2})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Gantt schedule")
	assert.Contains(t, out.String(), "Lowest average waiting time: fcfs")
}

func TestRunSimulate_FileWithQuantum(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rr.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
quantum: 2
processes:
  - {pid: P1, arrivalTime: 0, burstTime: 5}
  - {pid: P2, arrivalTime: 1, burstTime: 3}
`), 0o644))

	var out bytes.Buffer
	err := runSimulate(&out, simulateOptions{algorithm: "rr", file: path, output: "json", defaultQuantum: 9})
	require.NoError(t, err)

	var response responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &response))
	assert.Equal(t, 2, response.TimeQuantum)
	assert.Equal(t, 8, response.TotalTime)
}

func TestRunSimulate_Errors(t *testing.T) {
	dir := t.TempDir()
	zeroYAML := filepath.Join(dir, "zero.yaml")
	require.NoError(t, os.WriteFile(zeroYAML, []byte("quantum: 0\nprocesses:\n  - {pid: P1, arrivalTime: 0, burstTime: 5}\n"), 0o644))
	zeroJSON := filepath.Join(dir, "zero.json")
	require.NoError(t, os.WriteFile(zeroJSON, []byte(`{"quantum": 0, "processes": [{"pid": "P1", "arrivalTime": 0, "burstTime": 5}]}`), 0o644))

	cases := []simulateOptions{
		{algorithm: "fcfs", output: "xml", defaultQuantum: 2},
		{algorithm: "mlfq", output: "table", defaultQuantum: 2},
		{algorithm: "fcfs", file: "a.yaml", demo: "basic", output: "table", defaultQuantum: 2},
		{algorithm: "fcfs", demo: "missing", output: "table", defaultQuantum: 2},
		{algorithm: "rr", quantum: -1, quantumSet: true, output: "table", defaultQuantum: 2},
	}
	for _, opts := range cases {
		assert.Error(t, runSimulate(&bytes.Buffer{}, opts), "%+v", opts)
	}

	zeroQuantum := []simulateOptions{
		{algorithm: "rr", demo: "basic", quantumSet: true, output: "json", defaultQuantum: 2},
		{algorithm: "all", demo: "basic", quantumSet: true, output: "table", defaultQuantum: 2},
		{algorithm: "rr", file: zeroYAML, output: "json", defaultQuantum: 2},
		{algorithm: "rr", file: zeroJSON, output: "json", defaultQuantum: 2},
	}
	for _, opts := range zeroQuantum {
		err := runSimulate(&bytes.Buffer{}, opts)
		assert.ErrorIs(t, err, schedulers.ErrInvalidQuantum, "%+v", opts)
	}
}

func TestSimulateCommand_ExplicitZeroQuantumFlag(t *testing.T) {
	previous := cfg
	cfg = &config.SchedulerConfig{RoundRobinTimeQuantum: 2}
	t.Cleanup(func() {
		cfg = previous
		flags := simulateCmd.Flags()
		_ = flags.Set("algorithm", "all")
		_ = flags.Set("output", "table")
		_ = flags.Set("quantum", "0")
		for _, name := range []string{"algorithm", "output", "quantum"} {
			flags.Lookup(name).Changed = false
		}
	})
	require.NoError(t, simulateCmd.Flags().Set("algorithm", "rr"))
	require.NoError(t, simulateCmd.Flags().Set("output", "json"))
	require.NoError(t, simulateCmd.Flags().Set("quantum", "0"))

	simulateCmd.SetOut(&bytes.Buffer{})
	err := simulateCmd.RunE(simulateCmd, nil)
	assert.ErrorIs(t, err, schedulers.ErrInvalidQuantum)
}

func TestResolveQuantum(t *testing.T) {
	five := 5
	w := workload.Workload{Quantum: &five}
	assert.Equal(t, 3, resolveQuantum(simulateOptions{quantum: 3, quantumSet: true, defaultQuantum: 2}, w))
	assert.Equal(t, 0, resolveQuantum(simulateOptions{quantumSet: true, defaultQuantum: 2}, w))
	assert.Equal(t, 5, resolveQuantum(simulateOptions{defaultQuantum: 2}, w))
	assert.Equal(t, 2, resolveQuantum(simulateOptions{defaultQuantum: 2}, workload.Workload{}))

	zero := 0
	assert.Equal(t, 0, resolveQuantum(simulateOptions{defaultQuantum: 2}, workload.Workload{Quantum: &zero}))
}
