package requests

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"cpu-simulator/internal/core"
)

var (
	ErrInvalidRequest = errors.New("invalid request format")
	ErrMissingField   = fmt.Errorf("%w: missing required field", ErrInvalidRequest)
)

// ProcessID accepts either a JSON string or a JSON integer.
type ProcessID string

func (id *ProcessID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ProcessID(s)
		return nil
	}
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("process id must be a string or an integer, got %s", data)
	}
	*id = ProcessID(strconv.FormatInt(n, 10))
	return nil
}

// Job is a process as submitted over the wire. Pointer fields tell a
// missing value apart from zero.
type Job struct {
	Pid         *ProcessID `json:"pid"`
	Id          *ProcessID `json:"id"`
	ArrivalTime *int       `json:"arrivalTime"`
	BurstTime   *int       `json:"burstTime"`
	Priority    int        `json:"priority"`
}

type ScheduleRequests struct {
	Quantum *int  `json:"quantum"`
	Jobs    []Job `json:"processes"`
}

// ParseScheduleRequest accepts either a bare array of processes or an
// object carrying the processes and an optional quantum.
func ParseScheduleRequest(body []byte) (ScheduleRequests, error) {
	var request ScheduleRequests

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return request, fmt.Errorf("%w: empty body", ErrInvalidRequest)
	}

	var err error
	switch trimmed[0] {
	case '[':
		err = json.Unmarshal(trimmed, &request.Jobs)
	case '{':
		err = json.Unmarshal(trimmed, &request)
	default:
		return request, fmt.Errorf("%w: expected a JSON array or object", ErrInvalidRequest)
	}
	if err != nil {
		return request, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return request, nil
}

// Process converts the job at the given position of the batch. A job
// without an id comes back with an empty ID; see NameUnnamed.
func (j Job) Process(position int) (core.Process, error) {
	if j.ArrivalTime == nil {
		return core.Process{}, fmt.Errorf("%w: arrivalTime of process %d", ErrMissingField, position+1)
	}
	if j.BurstTime == nil {
		return core.Process{}, fmt.Errorf("%w: burstTime of process %d", ErrMissingField, position+1)
	}

	var id string
	switch {
	case j.Pid != nil && *j.Pid != "":
		id = string(*j.Pid)
	case j.Id != nil && *j.Id != "":
		id = string(*j.Id)
	}

	return core.Process{
		ID:          id,
		ArrivalTime: *j.ArrivalTime,
		BurstTime:   *j.BurstTime,
		Priority:    j.Priority,
	}, nil
}

func (r ScheduleRequests) Processes() ([]core.Process, error) {
	processes := make([]core.Process, 0, len(r.Jobs))
	for i, job := range r.Jobs {
		p, err := job.Process(i)
		if err != nil {
			return nil, err
		}
		processes = append(processes, p)
	}
	NameUnnamed(processes)
	return processes, nil
}

// NameUnnamed gives every process without an id the name P<n>, n being its
// 1-based position. A name already used elsewhere in the batch is skipped
// in favour of the next free number, so defaults never collide with
// explicit ids.
func NameUnnamed(processes []core.Process) {
	taken := make(map[string]struct{}, len(processes))
	for _, p := range processes {
		if p.ID != "" {
			taken[p.ID] = struct{}{}
		}
	}

	for i := range processes {
		if processes[i].ID != "" {
			continue
		}
		n := i + 1
		for {
			id := fmt.Sprintf("P%d", n)
			if _, ok := taken[id]; !ok {
				processes[i].ID = id
				taken[id] = struct{}{}
				break
			}
			n++
		}
	}
}
