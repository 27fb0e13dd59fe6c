package api

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"cpu-simulator/config"
	"cpu-simulator/internal/core"
	"cpu-simulator/internal/requests"
	"cpu-simulator/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	ListAlgorithms(ctx *fiber.Ctx) error
}

// SchedulerHandlerImpl serves both route groups. When raw is set the
// simulation endpoints answer with the bare list of annotated processes
// instead of the analytics envelope.
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	raw    bool
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

// Raw returns a copy of the handler that answers with bare process lists.
func (s *SchedulerHandlerImpl) Raw() *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: s.config, raw: true}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.simulate(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.simulate(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.simulate(ctx, schedulers.Priority)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.simulate(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	processes, quantum, err := s.parse(ctx)
	if err != nil {
		return err
	}

	response, err := schedulers.CompareAll(processes, quantum)
	if err != nil {
		return err
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) ListAlgorithms(ctx *fiber.Ctx) error {
	algorithms := make([]fiber.Map, 0, len(schedulers.Algorithms()))
	for _, alg := range schedulers.Algorithms() {
		algorithms = append(algorithms, fiber.Map{
			"id":         alg,
			"name":       alg.Name(),
			"preemptive": alg.Preemptive(),
		})
	}
	return ctx.JSON(fiber.Map{
		"algorithms":         algorithms,
		"defaultTimeQuantum": s.config.RoundRobinTimeQuantum,
	})
}

func (s *SchedulerHandlerImpl) simulate(ctx *fiber.Ctx, alg schedulers.Algorithm) error {
	processes, quantum, err := s.parse(ctx)
	if err != nil {
		return err
	}

	schedule, err := schedulers.Simulate(alg, processes, quantum)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"algorithm": alg,
		"processes": len(processes),
		"totalTime": schedule.Metric.TotalTime,
	}).Debug("simulation finished")

	if s.raw {
		return ctx.JSON(schedulers.GenerateProcessDetails(schedule.Results))
	}
	return ctx.JSON(schedulers.GenerateResponse(alg, quantum, schedule))
}

// parse decodes the body and resolves the quantum: body first, then the
// quantum query parameter, then the configured default.
func (s *SchedulerHandlerImpl) parse(ctx *fiber.Ctx) ([]core.Process, int, error) {
	request, err := requests.ParseScheduleRequest(ctx.Body())
	if err != nil {
		return nil, 0, err
	}
	if len(request.Jobs) > s.config.MaxProcesses {
		return nil, 0, fmt.Errorf("%w: %d processes exceeds the limit of %d",
			requests.ErrInvalidRequest, len(request.Jobs), s.config.MaxProcesses)
	}

	processes, err := request.Processes()
	if err != nil {
		return nil, 0, err
	}

	quantum := s.config.RoundRobinTimeQuantum
	switch {
	case request.Quantum != nil:
		quantum = *request.Quantum
	case ctx.Query("quantum") != "":
		quantum, err = strconv.Atoi(ctx.Query("quantum"))
		if err != nil {
			return nil, 0, fmt.Errorf("%w: quantum must be an integer", schedulers.ErrInvalidQuantum)
		}
	}
	return processes, quantum, nil
}

// ErrorHandler maps validation failures to 400 responses.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "can not process request"

	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		message = fiberErr.Message
	case errors.Is(err, requests.ErrInvalidRequest), errors.Is(err, schedulers.ErrInvalidInput):
		code = fiber.StatusBadRequest
		message = err.Error()
	default:
		logrus.WithError(err).Error("request failed")
	}

	return ctx.Status(code).JSON(fiber.Map{"error": message})
}
