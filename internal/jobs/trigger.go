package jobs

import (
	"context"
	"sync"
	"time"

	"papermark-backend/internal/logger"
)

// Task is a job type submitted at a fixed interval
type Task struct {
	Type     JobType
	Interval time.Duration
}

// DefaultTasks are the maintenance jobs of the service
func DefaultTasks() []Task {
	return []Task{
		{Type: JobTypeWebhookRetries, Interval: time.Minute},
		{Type: JobTypeTokenCleanup, Interval: time.Hour},
		{Type: JobTypeInvitationCleanup, Interval: time.Hour},
		{Type: JobTypeTrashPurge, Interval: 24 * time.Hour},
		{Type: JobTypeRenewalReminders, Interval: 24 * time.Hour},
	}
}

// Trigger submits periodic tasks to a scheduler
type Trigger struct {
	scheduler     *Scheduler
	tasks         []Task
	checkInterval time.Duration
	now           func() time.Time
	log           *logger.Logger

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
	lastRun   map[JobType]time.Time
}

// NewTrigger creates a trigger checking its tasks every checkInterval
func NewTrigger(scheduler *Scheduler, tasks []Task, checkInterval time.Duration) *Trigger {
	if checkInterval <= 0 {
		checkInterval = time.Minute
	}
	return &Trigger{
		scheduler:     scheduler,
		tasks:         tasks,
		checkInterval: checkInterval,
		now:           time.Now,
		log:           logger.New().WithField("component", "trigger"),
		lastRun:       make(map[JobType]time.Time),
	}
}

// Start starts the trigger loop
func (t *Trigger) Start(ctx context.Context) error {
	t.mu.Lock()
	if t.isRunning {
		t.mu.Unlock()
		return nil
	}
	t.isRunning = true
	t.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	t.cancel = cancel

	t.wg.Add(1)
	go t.runLoop(ctx)

	t.log.WithField("check_interval", t.checkInterval.String()).Info("Job trigger started")
	return nil
}

// Stop stops the trigger loop
func (t *Trigger) Stop(ctx context.Context) error {
	t.mu.Lock()
	if !t.isRunning {
		t.mu.Unlock()
		return nil
	}
	t.isRunning = false
	t.mu.Unlock()

	if t.cancel != nil {
		t.cancel()
	}

	done := make(chan struct{})
	go func() {
		t.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (t *Trigger) runLoop(ctx context.Context) {
	defer t.wg.Done()

	ticker := time.NewTicker(t.checkInterval)
	defer ticker.Stop()

	t.tick()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.tick()
		}
	}
}

// tick submits every task whose interval has elapsed since its last submission
func (t *Trigger) tick() {
	now := t.now()
	for _, task := range t.tasks {
		t.mu.Lock()
		last, ran := t.lastRun[task.Type]
		t.mu.Unlock()
		if ran && now.Sub(last) < task.Interval {
			continue
		}

		if err := t.scheduler.Enqueue(task.Type, ""); err != nil {
			t.log.WithError(err).WithField("job_type", string(task.Type)).Warn("Failed to submit periodic job")
			continue
		}
		t.mu.Lock()
		t.lastRun[task.Type] = now
		t.mu.Unlock()
	}
}
