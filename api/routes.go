package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"cpu-simulator/config"
)

// NewApp builds the fiber application with every route registered.
func NewApp(cfg *config.SchedulerConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler:          ErrorHandler,
		DisableStartupMessage: true,
	})

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(accessLog)
	app.Use(cors.New())
	// innermost, so a panic reaches accessLog as an ordinary error
	app.Use(recover.New())

	handler := NewSchedulerHandlerImpl(cfg)
	Register(app, handler)
	return app
}

// Register mounts the versioned API and the plain /api/scheduler routes that
// answer with bare process lists.
func Register(app *fiber.App, handler *SchedulerHandlerImpl) {
	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/priority", handler.Priority)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Get("/algorithms", handler.ListAlgorithms)
	}

	raw := handler.Raw()
	scheduler := api.Group("/scheduler")
	{
		scheduler.Post("/fcfs", raw.FirstComeFirstServe)
		scheduler.Post("/sjf", raw.ShortestJobFirst)
		scheduler.Post("/priority", raw.Priority)
		scheduler.Post("/rr", raw.RoundRobin)
	}
}

func accessLog(ctx *fiber.Ctx) error {
	start := time.Now()
	err := ctx.Next()
	if err != nil {
		// let the error handler settle the status before logging it
		if handlerErr := ErrorHandler(ctx, err); handlerErr != nil {
			ctx.Status(fiber.StatusInternalServerError)
		}
	}

	logrus.WithFields(logrus.Fields{
		"requestId": ctx.Locals("requestid"),
		"method":    ctx.Method(),
		"path":      ctx.Path(),
		"status":    ctx.Response().StatusCode(),
		"latency":   time.Since(start).String(),
	}).Info("request")
	return nil
}
