package jobs

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	apperrors "papermark-backend/internal/errors"
	"papermark-backend/internal/logger"
	"papermark-backend/internal/metrics"
)

// ErrSchedulerNotRunning is returned when submitting to a stopped scheduler
var ErrSchedulerNotRunning = errors.New("scheduler is not running")

// SchedulerConfig holds scheduler configuration
type SchedulerConfig struct {
	Workers    int
	QueueSize  int
	JobTimeout time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

// DefaultSchedulerConfig returns default scheduler configuration
func DefaultSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		Workers:    3,
		QueueSize:  100,
		JobTimeout: 5 * time.Minute,
		MaxRetries: 3,
		RetryDelay: time.Minute,
	}
}

// Scheduler runs jobs on a fixed pool of workers
type Scheduler struct {
	config   SchedulerConfig
	handlers map[JobType]Handler
	log      *logger.Logger

	jobs      chan *Job
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
}

// Ensure Scheduler implements Queue
var _ Queue = (*Scheduler)(nil)

// NewScheduler creates a new scheduler instance
func NewScheduler(config SchedulerConfig) *Scheduler {
	if config.Workers <= 0 {
		config.Workers = 1
	}
	if config.QueueSize <= 0 {
		config.QueueSize = 100
	}
	return &Scheduler{
		config:   config,
		handlers: make(map[JobType]Handler),
		log:      logger.New().WithField("component", "scheduler"),
		jobs:     make(chan *Job, config.QueueSize),
	}
}

// Register sets the handler for a job type. Call before Start.
func (s *Scheduler) Register(jobType JobType, handler Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[jobType] = handler
}

// Start starts the worker pool
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = true
	s.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	for i := 0; i < s.config.Workers; i++ {
		s.wg.Add(1)
		go s.worker(ctx, i)
	}

	s.log.WithFields(map[string]interface{}{
		"workers":     s.config.Workers,
		"job_timeout": s.config.JobTimeout.String(),
	}).Info("Job scheduler started")
	return nil
}

// Stop cancels running jobs and waits for the workers until ctx expires
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = false
	s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.log.Info("Job scheduler stopped gracefully")
		return nil
	case <-ctx.Done():
		s.log.Warn("Job scheduler stop timed out")
		return ctx.Err()
	}
}

// Enqueue submits a job of the given type with the default retry budget
func (s *Scheduler) Enqueue(jobType JobType, payload string) error {
	return s.SubmitJob(NewJob(jobType, payload, s.config.MaxRetries))
}

// SubmitJob submits a job for execution without blocking
func (s *Scheduler) SubmitJob(job *Job) error {
	s.mu.Lock()
	running := s.isRunning
	_, known := s.handlers[job.Type]
	s.mu.Unlock()

	if !running {
		return ErrSchedulerNotRunning
	}
	if !known {
		return fmt.Errorf("no handler registered for job type %s", job.Type)
	}

	select {
	case s.jobs <- job:
		s.log.WithFields(map[string]interface{}{
			"job_id":   job.ID.String(),
			"job_type": string(job.Type),
		}).Debug("Job submitted")
		return nil
	default:
		return apperrors.ErrJobQueueFull
	}
}

func (s *Scheduler) worker(ctx context.Context, workerID int) {
	defer s.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case job := <-s.jobs:
			s.processJob(ctx, job, workerID)
		}
	}
}

func (s *Scheduler) processJob(ctx context.Context, job *Job, workerID int) {
	s.mu.Lock()
	handler := s.handlers[job.Type]
	s.mu.Unlock()

	log := s.log.WithFields(map[string]interface{}{
		"worker_id": workerID,
		"job_id":    job.ID.String(),
		"job_type":  string(job.Type),
	})

	job.Start()
	jobCtx, cancel := context.WithTimeout(ctx, s.config.JobTimeout)
	defer cancel()

	if err := s.execute(jobCtx, handler, job); err != nil {
		job.Fail(err.Error())
		metrics.JobsProcessed.WithLabelValues(string(job.Type), "failed").Inc()
		log.WithError(err).Error("Job failed")

		if job.ShouldRetry() && ctx.Err() == nil {
			job.ScheduleRetry(s.config.RetryDelay)
			log.WithField("retry_count", job.RetryCount).Info("Job scheduled for retry")
			time.AfterFunc(s.config.RetryDelay, func() {
				if err := s.SubmitJob(job); err != nil {
					log.WithError(err).Warn("Failed to re-queue job for retry")
				}
			})
		}
		return
	}

	job.Complete()
	metrics.JobsProcessed.WithLabelValues(string(job.Type), "success").Inc()
	log.Debug("Job completed successfully")
}

func (s *Scheduler) execute(ctx context.Context, handler Handler, job *Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job panicked: %v", r)
		}
	}()
	return handler(ctx, job)
}
