package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/backend"
	router "github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/http"
	"github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/logger"
	"github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/services"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config := NewConfig()

	if err := logger.Initialize(config.logLevel, config.env); err != nil {
		log.Fatalf("Logger wasn't initialized due to %s", err)
	}
	defer func() {
		_ = logger.Log.Sync()
	}()

	log.Printf("Running server on %s\n", config.endpoint)

	// Sessions and queued jobs outlive the signal until the server has drained.
	servicesCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	jobQueueService := services.NewJobQueueService(servicesCtx, config.jobQueueCapacity, config.jobQueueWorkers)
	defer jobQueueService.Shutdown()

	backendClient := backend.NewClient(config.backendEndpoint, config.backendTimeout)

	trackerService := services.NewTrackerService(
		servicesCtx,
		backendClient,
		jobQueueService,
		services.NewLogPresenter(),
		services.SessionConfig{
			PollInterval:            config.pollInterval,
			AssignmentRetryInterval: config.assignmentRetryInterval,
			IdleTimeout:             config.idleTimeout,
		},
	)

	err := router.New(
		router.Config{Endpoint: config.endpoint},
		services.NewJWTService(config.authSecretKey),
		trackerService,
	).Run(ctx)

	if err != nil {
		logger.Log.Error("server stopped with error", zap.Error(err))

		if err := trackerService.Shutdown(); err != nil {
			logger.Log.Error("tracker didn't shut down cleanly", zap.Error(err))
		}

		return 1
	}

	logger.Log.Info("server stopped")

	return 0
}
