package workload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-simulator/internal/core"
	"cpu-simulator/internal/requests"
)

func TestParse_YAML(t *testing.T) {
	w, err := Parse(strings.NewReader(`
quantum: 3
processes:
  - pid: P1
    arrivalTime: 0
    burstTime: 5
    priority: 2
  - arrivalTime: 1
    burstTime: 3
`), ".yaml")
	require.NoError(t, err)

	require.NotNil(t, w.Quantum)
	assert.Equal(t, 3, *w.Quantum)
	assert.Equal(t, []core.Process{
		{ID: "P1", ArrivalTime: 0, BurstTime: 5, Priority: 2},
		{ID: "P2", ArrivalTime: 1, BurstTime: 3},
	}, w.Processes)
}

func TestParse_YAMLMissingBurst(t *testing.T) {
	_, err := Parse(strings.NewReader("processes:\n  - pid: P1\n    arrivalTime: 0\n"), ".yml")
	assert.ErrorIs(t, err, requests.ErrMissingField)
}

func TestParse_YAMLEmpty(t *testing.T) {
	w, err := Parse(strings.NewReader(""), ".yaml")
	require.NoError(t, err)
	assert.Empty(t, w.Processes)
}

func TestParse_JSON(t *testing.T) {
	w, err := Parse(strings.NewReader(`{"quantum": 4, "processes": [{"pid": 1, "arrivalTime": 2, "burstTime": 3}]}`), ".json")
	require.NoError(t, err)

	require.NotNil(t, w.Quantum)
	assert.Equal(t, 4, *w.Quantum)
	assert.Equal(t, []core.Process{{ID: "1", ArrivalTime: 2, BurstTime: 3}}, w.Processes)
}

func TestParse_CSVWithHeader(t *testing.T) {
	w, err := Parse(strings.NewReader("pid,arrival,burst,priority\nP1,0,5,2\nP2, 1, 3\n,4,1,\n"), ".csv")
	require.NoError(t, err)

	assert.Equal(t, []core.Process{
		{ID: "P1", ArrivalTime: 0, BurstTime: 5, Priority: 2},
		{ID: "P2", ArrivalTime: 1, BurstTime: 3},
		{ID: "P3", ArrivalTime: 4, BurstTime: 1},
	}, w.Processes)
}

func TestParse_ExplicitZeroQuantumIsKept(t *testing.T) {
	for ext, body := range map[string]string{
		".yaml": "quantum: 0\nprocesses:\n  - {pid: P1, arrivalTime: 0, burstTime: 1}\n",
		".json": `{"quantum": 0, "processes": [{"pid": "P1", "arrivalTime": 0, "burstTime": 1}]}`,
	} {
		w, err := Parse(strings.NewReader(body), ext)
		require.NoError(t, err, ext)
		require.NotNil(t, w.Quantum, ext)
		assert.Zero(t, *w.Quantum, ext)
	}

	w, err := Parse(strings.NewReader("processes: []\n"), ".yaml")
	require.NoError(t, err)
	assert.Nil(t, w.Quantum)
}

func TestParse_DefaultIDsSkipExplicitOnes(t *testing.T) {
	w, err := Parse(strings.NewReader("P2,0,1\n,1,1\n"), ".csv")
	require.NoError(t, err)
	assert.Equal(t, []core.Process{
		{ID: "P2", ArrivalTime: 0, BurstTime: 1},
		{ID: "P3", ArrivalTime: 1, BurstTime: 1},
	}, w.Processes)
}

func TestParse_CSVErrors(t *testing.T) {
	for _, body := range []string{
		"P1,0\n",
		"P1,0,1\nP2,x,1\n",
		"P1,0,y\n",
		"P1,0,1,high\n",
	} {
		_, err := Parse(strings.NewReader(body), ".csv")
		assert.Error(t, err, body)
	}
}

func TestParse_UnsupportedFormat(t *testing.T) {
	_, err := Parse(strings.NewReader(""), ".toml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.csv")
	require.NoError(t, os.WriteFile(path, []byte("A,0,2\nB,1,1\n"), 0o644))

	w, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "batch", w.Name)
	assert.Len(t, w.Processes, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestPreset(t *testing.T) {
	assert.Equal(t, []string{"basic", "complex", "priority"}, PresetNames())

	w, err := Preset("complex")
	require.NoError(t, err)
	assert.Len(t, w.Processes, 5)
	assert.Equal(t, "Multi-process with varied times", PresetDescription("complex"))

	// callers get their own copy
	w.Processes[0].BurstTime = 99
	again, err := Preset("complex")
	require.NoError(t, err)
	assert.Equal(t, 8, again.Processes[0].BurstTime)

	_, err = Preset("nope")
	assert.Error(t, err)
}
