package schedulers

import (
	"cpu-simulator/internal/core"
	"cpu-simulator/internal/responses"
	"cpu-simulator/internal/util"
)

// GenerateResponse attaches averages and CPU metrics to a finished schedule.
func GenerateResponse(alg Algorithm, timeQuantum int, schedule core.Schedule) responses.ScheduleResponse {
	proccessDetails := GenerateProcessDetails(schedule.Results)
	averageWaitingTime, averageResponseTime, averageTimeAroundTime := util.CalculateAverage(proccessDetails)

	metric := schedule.Metric
	response := responses.ScheduleResponse{
		Algorithm:             alg.Name(),
		TotalTime:             metric.TotalTime,
		IdleTime:              metric.IdleTime,
		CpuUtilization:        util.Ratio(metric.UtilizationTime, metric.TotalTime),
		CpuThroughput:         util.Ratio(len(proccessDetails), metric.TotalTime),
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTimeAroundTime,
		Details:               proccessDetails,
		Timeline:              schedule.Timeline,
	}
	if alg.Preemptive() {
		response.TimeQuantum = timeQuantum
	}
	if response.Timeline == nil {
		response.Timeline = []core.Slice{}
	}
	return response
}

// GenerateProcessDetails converts results to wire records, keeping their order.
func GenerateProcessDetails(results []core.Result) []responses.ProcessResponse {
	details := make([]responses.ProcessResponse, 0, len(results))
	for _, r := range results {
		details = append(details, responses.ProcessResponse{
			ProcessId:      r.ID,
			ArrivalTime:    r.ArrivalTime,
			BurstTime:      r.BurstTime,
			Priority:       r.Priority,
			StartTime:      r.StartTime,
			CompletionTime: r.CompletionTime,
			TurnaroundTime: r.TurnaroundTime,
			WaitingTime:    r.WaitingTime,
			ResponseTime:   r.ResponseTime,
		})
	}
	return details
}
