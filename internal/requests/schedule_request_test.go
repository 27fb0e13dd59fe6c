package requests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-simulator/internal/core"
)

func TestParseScheduleRequest_BareArray(t *testing.T) {
	request, err := ParseScheduleRequest([]byte(`[
		{"pid": "P1", "arrivalTime": 0, "burstTime": 5, "priority": 2},
		{"pid": "P2", "arrivalTime": 1, "burstTime": 3}
	]`))
	require.NoError(t, err)
	assert.Nil(t, request.Quantum)

	processes, err := request.Processes()
	require.NoError(t, err)
	assert.Equal(t, []core.Process{
		{ID: "P1", ArrivalTime: 0, BurstTime: 5, Priority: 2},
		{ID: "P2", ArrivalTime: 1, BurstTime: 3},
	}, processes)
}

func TestParseScheduleRequest_ObjectWithQuantum(t *testing.T) {
	request, err := ParseScheduleRequest([]byte(`{"quantum": 3, "processes": [{"pid": "A", "arrivalTime": 0, "burstTime": 1}]}`))
	require.NoError(t, err)
	require.NotNil(t, request.Quantum)
	assert.Equal(t, 3, *request.Quantum)
	assert.Len(t, request.Jobs, 1)
}

func TestParseScheduleRequest_IDForms(t *testing.T) {
	request, err := ParseScheduleRequest([]byte(`[
		{"pid": 7, "arrivalTime": 0, "burstTime": 1},
		{"id": "alt", "arrivalTime": 0, "burstTime": 1},
		{"id": 12, "arrivalTime": 0, "burstTime": 1},
		{"arrivalTime": 0, "burstTime": 1, "color": "blue"}
	]`))
	require.NoError(t, err)

	processes, err := request.Processes()
	require.NoError(t, err)
	ids := []string{processes[0].ID, processes[1].ID, processes[2].ID, processes[3].ID}
	assert.Equal(t, []string{"7", "alt", "12", "P4"}, ids)
}

func TestScheduleRequests_DefaultIDsSkipExplicitOnes(t *testing.T) {
	request, err := ParseScheduleRequest([]byte(`[
		{"pid": "P2", "arrivalTime": 0, "burstTime": 1},
		{"arrivalTime": 1, "burstTime": 1},
		{"arrivalTime": 2, "burstTime": 1},
		{"pid": "P1", "arrivalTime": 3, "burstTime": 1}
	]`))
	require.NoError(t, err)

	processes, err := request.Processes()
	require.NoError(t, err)
	ids := []string{processes[0].ID, processes[1].ID, processes[2].ID, processes[3].ID}
	assert.Equal(t, []string{"P2", "P3", "P4", "P1"}, ids)
}

func TestNameUnnamed(t *testing.T) {
	processes := []core.Process{{}, {ID: "P1"}, {ID: "P3"}, {}}
	NameUnnamed(processes)

	assert.Equal(t, "P2", processes[0].ID)
	assert.Equal(t, "P1", processes[1].ID)
	assert.Equal(t, "P3", processes[2].ID)
	assert.Equal(t, "P4", processes[3].ID)

	NameUnnamed(nil)
}

func TestParseScheduleRequest_Malformed(t *testing.T) {
	bodies := []string{
		``,
		`   `,
		`"text"`,
		`[{"pid": "P1", "arrivalTime": 1.5, "burstTime": 1}]`,
		`[{"pid": 1.5, "arrivalTime": 1, "burstTime": 1}]`,
		`[{"pid": true, "arrivalTime": 1, "burstTime": 1}]`,
		`{"processes": [`,
		`{"quantum": "two", "processes": []}`,
	}
	for _, body := range bodies {
		_, err := ParseScheduleRequest([]byte(body))
		assert.ErrorIs(t, err, ErrInvalidRequest, body)
	}
}

func TestScheduleRequests_MissingRequiredFields(t *testing.T) {
	for _, body := range []string{
		`[{"pid": "P1", "burstTime": 1}]`,
		`[{"pid": "P1", "arrivalTime": 0}]`,
		`[{"pid": "P1", "arrivalTime": null, "burstTime": 1}]`,
	} {
		request, err := ParseScheduleRequest([]byte(body))
		require.NoError(t, err, body)

		_, err = request.Processes()
		assert.ErrorIs(t, err, ErrMissingField, body)
		assert.ErrorIs(t, err, ErrInvalidRequest, body)
	}
}

func TestScheduleRequests_Empty(t *testing.T) {
	request, err := ParseScheduleRequest([]byte(`[]`))
	require.NoError(t, err)

	processes, err := request.Processes()
	require.NoError(t, err)
	assert.Empty(t, processes)
}
