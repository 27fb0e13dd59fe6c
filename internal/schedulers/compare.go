package schedulers

import (
	"sync"

	"github.com/sirupsen/logrus"

	"cpu-simulator/internal/core"
	"cpu-simulator/internal/responses"
)

// CompareAll runs every algorithm over the same batch. The simulations run
// concurrently; each gets its own copy of the input. Best is the algorithm
// with the lowest average waiting time, earlier algorithms winning ties.
func CompareAll(processes []core.Process, timeQuantum int) (responses.CompareResponse, error) {
	if timeQuantum <= 0 {
		return responses.CompareResponse{}, ErrInvalidQuantum
	}
	if err := ValidateProcesses(processes); err != nil {
		return responses.CompareResponse{}, err
	}

	algorithms := Algorithms()
	results := make([]responses.ScheduleResponse, len(algorithms))
	errs := make([]error, len(algorithms))

	var wg sync.WaitGroup
	wg.Add(len(algorithms))
	for i, alg := range algorithms {
		batch := make([]core.Process, len(processes))
		copy(batch, processes)

		go func(i int, alg Algorithm, batch []core.Process) {
			defer wg.Done()
			schedule, err := Simulate(alg, batch, timeQuantum)
			if err != nil {
				errs[i] = err
				return
			}
			results[i] = GenerateResponse(alg, timeQuantum, schedule)
		}(i, alg, batch)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return responses.CompareResponse{}, err
		}
	}

	best := 0
	for i := range results {
		if results[i].AverageWaitingTime < results[best].AverageWaitingTime {
			best = i
		}
	}
	logrus.WithField("best", algorithms[best]).Debug("compared all algorithms")

	return responses.CompareResponse{
		TimeQuantum: timeQuantum,
		Best:        string(algorithms[best]),
		Results:     results,
	}, nil
}
