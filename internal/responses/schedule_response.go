package responses

import "cpu-simulator/internal/core"

// ProcessResponse is one annotated process record. Field names match the
// request so clients can send a response back as input.
type ProcessResponse struct {
	ProcessId      string `json:"pid"`
	ArrivalTime    int    `json:"arrivalTime"`
	BurstTime      int    `json:"burstTime"`
	Priority       int    `json:"priority"`
	StartTime      int    `json:"startTime"`
	CompletionTime int    `json:"completionTime"`
	TurnaroundTime int    `json:"turnaroundTime"`
	WaitingTime    int    `json:"waitingTime"`
	ResponseTime   int    `json:"responseTime"`
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	TimeQuantum           int               `json:"timeQuantum,omitempty"`
	TotalTime             int               `json:"totalTime"`
	IdleTime              int               `json:"idleTime"`
	AverageWaitingTime    float64           `json:"averageWaitingTime"`
	AverageResponseTime   float64           `json:"averageResponseTime"`
	AverageTurnAroundTime float64           `json:"averageTurnaroundTime"`
	CpuUtilization        float64           `json:"cpuUtilization"`
	CpuThroughput         float64           `json:"cpuThroughput"`
	Details               []ProcessResponse `json:"processes"`
	Timeline              []core.Slice      `json:"timeline"`
}

// CompareResponse holds the outcome of every algorithm over the same batch.
type CompareResponse struct {
	TimeQuantum int                `json:"timeQuantum"`
	Best        string             `json:"best"`
	Results     []ScheduleResponse `json:"results"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
