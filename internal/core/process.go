package core

// Process is a unit of work submitted to a simulation. All fields are inputs;
// the engine never writes to a Process.
type Process struct {
	ID          string
	ArrivalTime int
	BurstTime   int
	Priority    int // lower value means more urgent
}

// Result is a Process annotated with the times computed by a simulation.
type Result struct {
	Process
	StartTime      int // first time the process got the CPU
	CompletionTime int
	TurnaroundTime int
	WaitingTime    int
	ResponseTime   int
}

// NewResult derives turnaround, waiting and response time. Waiting time is
// measured against the total burst, not the remaining one.
func NewResult(p Process, startTime, completionTime int) Result {
	turnaround := completionTime - p.ArrivalTime
	return Result{
		Process:        p,
		StartTime:      startTime,
		CompletionTime: completionTime,
		TurnaroundTime: turnaround,
		WaitingTime:    turnaround - p.BurstTime,
		ResponseTime:   startTime - p.ArrivalTime,
	}
}

// Schedule is the outcome of one simulation run.
type Schedule struct {
	Results  []Result // completion order
	Timeline []Slice
	Metric   CpuMetric
}
