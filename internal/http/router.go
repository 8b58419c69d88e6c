package router

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/multierr"

	"github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/logger"
	"github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/middlewares"
	"github.com/bluepal-ashok-patcha/Food-delivery-application-sub000/internal/models"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

var ErrStreamsNotClosed = errors.New("tracking streams didn't close in time")

type Config struct {
	Endpoint string
}

type Router struct {
	config          Config
	jwtService      models.JWTService
	trackingService models.TrackingService

	// streams counts websocket handlers, which the server stops tracking once hijacked.
	streams sync.WaitGroup
}

func New(
	config Config,
	jwtService models.JWTService,
	trackingService models.TrackingService,
) *Router {
	return &Router{
		config:          config,
		jwtService:      jwtService,
		trackingService: trackingService,
	}
}

func (router *Router) get() chi.Router {
	r := chi.NewRouter()

	r.Use(
		middlewares.ServiceInjectorMiddleware(
			router.jwtService,
			router.trackingService,
		),
		logger.RequestLogger,
		middlewares.AuthMiddleware().WithExcludedPaths(
			"/health",
			"/metrics",
		).Middleware,
	)

	r.Get("/health", Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/tracking/{orderId}", func(r chi.Router) {
		r.Post("/", StartTracking)
		r.Get("/", GetTracking)
		r.Delete("/", StopTracking)
		r.Get("/ws", router.countStream(StreamTracking))
	})

	return r
}

func (router *Router) countStream(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		router.streams.Add(1)
		defer router.streams.Done()

		next(w, r)
	}
}

// Run listens on the configured endpoint and serves until ctx is done.
func (router *Router) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", router.config.Endpoint)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", router.config.Endpoint, err)
	}

	return router.Serve(ctx, listener)
}

// Serve handles requests on listener until ctx is done. It then stops accepting
// connections, waits for pending requests and stops the tracking sessions, which
// ends every open stream with a normal closure.
func (router *Router) Serve(ctx context.Context, listener net.Listener) error {
	server := &http.Server{
		Handler:           router.get(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(listener)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if closeErr := <-serveErr; !errors.Is(closeErr, http.ErrServerClosed) {
		err = multierr.Append(err, closeErr)
	}

	err = multierr.Append(err, router.trackingService.Shutdown())

	streamsClosed := make(chan struct{})
	go func() {
		router.streams.Wait()
		close(streamsClosed)
	}()

	select {
	case <-streamsClosed:
	case <-shutdownCtx.Done():
		err = multierr.Append(err, ErrStreamsNotClosed)
	}

	return err
}

func Health(w http.ResponseWriter, r *http.Request) {
	middlewares.EncodeJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
