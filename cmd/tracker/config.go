package main

import (
	"crypto/rand"
	"encoding/base64"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	endpoint                string
	backendEndpoint         string
	logLevel                string
	env                     string
	authSecretKey           string
	pollInterval            time.Duration
	assignmentRetryInterval time.Duration
	backendTimeout          time.Duration
	idleTimeout             time.Duration
	jobQueueCapacity        int
	jobQueueWorkers         int
}

// envOverrides are read from the environment and win over flags when set.
type envOverrides struct {
	RunAddress              string        `envconfig:"RUN_ADDRESS"`
	BackendAddress          string        `envconfig:"BACKEND_ADDRESS"`
	LogLevel                string        `envconfig:"LOG_LEVEL" default:"error"`
	Env                     string        `envconfig:"ENV" default:"production"`
	AuthSecretKey           string        `envconfig:"AUTH_SECRET_KEY"`
	PollInterval            time.Duration `envconfig:"POLL_INTERVAL"`
	AssignmentRetryInterval time.Duration `envconfig:"ASSIGNMENT_RETRY_INTERVAL"`
	BackendTimeout          time.Duration `envconfig:"BACKEND_TIMEOUT"`
	IdleTimeout             time.Duration `envconfig:"TRACKING_IDLE_TIMEOUT"`
	JobQueueCapacity        int           `envconfig:"JOB_QUEUE_CAPACITY"`
	JobQueueWorkers         int           `envconfig:"JOB_QUEUE_WORKERS"`
}

func generateRandomString(length int) string {
	b := make([]byte, length)
	_, err := rand.Read(b)
	if err != nil {
		panic(err)
	}
	return base64.StdEncoding.EncodeToString(b)
}

func NewConfig() Config {
	var (
		endpoint                string
		backendEndpoint         string
		pollInterval            time.Duration
		assignmentRetryInterval time.Duration
		backendTimeout          time.Duration
		idleTimeout             time.Duration
		jobQueueCapacity        int
		jobQueueWorkers         int
	)

	flag.StringVar(&endpoint, "a", "localhost:8090", "address and port to run server")
	flag.StringVar(&backendEndpoint, "b", "http://localhost:8080/api", "base URL of the food-delivery backend")
	flag.DurationVar(&pollInterval, "p", 5*time.Second, "assignment poll interval")
	flag.DurationVar(&assignmentRetryInterval, "r", 15*time.Second, "assignment creation retry interval")
	flag.DurationVar(&backendTimeout, "t", 0, "timeout of a single backend call, 0 for none")
	flag.DurationVar(&idleTimeout, "i", 2*time.Minute, "time after which a session nobody watches is stopped")
	flag.IntVar(&jobQueueCapacity, "q", 100, "capacity of the job queue")
	flag.IntVar(&jobQueueWorkers, "w", 4, "number of job queue workers")
	flag.Parse()

	if err := godotenv.Load(); err == nil {
		log.Printf("Environment was extended from .env\n")
	}

	var overrides envOverrides
	if err := envconfig.Process("", &overrides); err != nil {
		log.Fatalf("Environment wasn't parsed due to %s", err)
	}

	if overrides.RunAddress != "" {
		endpoint = overrides.RunAddress
	}

	if overrides.BackendAddress != "" {
		backendEndpoint = overrides.BackendAddress
	}

	if overrides.PollInterval > 0 {
		pollInterval = overrides.PollInterval
	}

	if overrides.AssignmentRetryInterval > 0 {
		assignmentRetryInterval = overrides.AssignmentRetryInterval
	}

	if overrides.BackendTimeout > 0 {
		backendTimeout = overrides.BackendTimeout
	}

	if overrides.IdleTimeout > 0 {
		idleTimeout = overrides.IdleTimeout
	}

	if overrides.JobQueueCapacity > 0 {
		jobQueueCapacity = overrides.JobQueueCapacity
	}

	if overrides.JobQueueWorkers > 0 {
		jobQueueWorkers = overrides.JobQueueWorkers
	}

	authSecretKey := overrides.AuthSecretKey
	if authSecretKey == "" {
		if overrides.Env == "production" {
			authSecretKey = generateRandomString(10)
			log.Printf("WARNING: AUTH_SECRET_KEY has to be defined for production environment\n")
		} else {
			authSecretKey = "development-key"
		}
	}

	return Config{
		endpoint,
		backendEndpoint,
		overrides.LogLevel,
		overrides.Env,
		authSecretKey,
		pollInterval,
		assignmentRetryInterval,
		backendTimeout,
		idleTimeout,
		jobQueueCapacity,
		jobQueueWorkers,
	}
}
