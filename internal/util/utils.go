package util

import "cpu-simulator/internal/responses"

// CalculateAverage returns zero averages for an empty batch.
func CalculateAverage(proccessDetails []responses.ProcessResponse) (averageWaitingTime, averageResponseTime, averageTimeAroundTime float64) {
	if len(proccessDetails) == 0 {
		return 0, 0, 0
	}

	var waitingTimeSum int
	var responseTimeSum int
	var turnAroundTimeSum int

	for _, proccess := range proccessDetails {
		waitingTimeSum += proccess.WaitingTime
		responseTimeSum += proccess.ResponseTime
		turnAroundTimeSum += proccess.TurnaroundTime
	}

	proccessCount := float64(len(proccessDetails))

	averageWaitingTime = float64(waitingTimeSum) / proccessCount
	averageResponseTime = float64(responseTimeSum) / proccessCount
	averageTimeAroundTime = float64(turnAroundTimeSum) / proccessCount
	return
}

// Ratio divides a by b, returning zero when b is zero.
func Ratio(a, b int) float64 {
	if b == 0 {
		return 0
	}
	return float64(a) / float64(b)
}
