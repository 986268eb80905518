package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	apperrors "papermark-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SchedulerTestSuite struct {
	suite.Suite
	scheduler *Scheduler
	ctx       context.Context
	cancel    context.CancelFunc
}

func (suite *SchedulerTestSuite) SetupTest() {
	suite.scheduler = NewScheduler(SchedulerConfig{
		Workers:    2,
		QueueSize:  4,
		JobTimeout: time.Second,
		MaxRetries: 2,
		RetryDelay: 10 * time.Millisecond,
	})
	suite.ctx, suite.cancel = context.WithCancel(context.Background())
}

func (suite *SchedulerTestSuite) TearDownTest() {
	stopCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = suite.scheduler.Stop(stopCtx)
	suite.cancel()
}

func (suite *SchedulerTestSuite) TestEnqueueRunsHandler() {
	done := make(chan string, 1)
	suite.scheduler.Register(JobTypeWebhookDelivery, func(ctx context.Context, job *Job) error {
		done <- job.Payload
		return nil
	})
	require.NoError(suite.T(), suite.scheduler.Start(suite.ctx))

	require.NoError(suite.T(), suite.scheduler.Enqueue(JobTypeWebhookDelivery, "delivery-1"))

	select {
	case payload := <-done:
		assert.Equal(suite.T(), "delivery-1", payload)
	case <-time.After(2 * time.Second):
		suite.T().Fatal("job was not executed")
	}
}

func (suite *SchedulerTestSuite) TestEnqueueBeforeStart() {
	suite.scheduler.Register(JobTypeTrashPurge, func(ctx context.Context, job *Job) error { return nil })

	err := suite.scheduler.Enqueue(JobTypeTrashPurge, "")

	assert.ErrorIs(suite.T(), err, ErrSchedulerNotRunning)
}

func (suite *SchedulerTestSuite) TestEnqueueUnknownType() {
	require.NoError(suite.T(), suite.scheduler.Start(suite.ctx))

	err := suite.scheduler.Enqueue(JobTypeTrashPurge, "")

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "no handler registered")
}

func (suite *SchedulerTestSuite) TestQueueFull() {
	release := make(chan struct{})
	suite.scheduler.Register(JobTypeTokenCleanup, func(ctx context.Context, job *Job) error {
		<-release
		return nil
	})
	defer close(release)
	require.NoError(suite.T(), suite.scheduler.Start(suite.ctx))

	// two jobs occupy the workers, four fill the queue
	var lastErr error
	for i := 0; i < 10; i++ {
		if lastErr = suite.scheduler.Enqueue(JobTypeTokenCleanup, ""); lastErr != nil {
			break
		}
	}

	assert.ErrorIs(suite.T(), lastErr, apperrors.ErrJobQueueFull)
}

func (suite *SchedulerTestSuite) TestFailedJobIsRetried() {
	var attempts int32
	done := make(chan struct{})
	suite.scheduler.Register(JobTypeRenewalReminders, func(ctx context.Context, job *Job) error {
		if atomic.AddInt32(&attempts, 1) < 3 {
			return errors.New("smtp unavailable")
		}
		close(done)
		return nil
	})
	require.NoError(suite.T(), suite.scheduler.Start(suite.ctx))

	require.NoError(suite.T(), suite.scheduler.Enqueue(JobTypeRenewalReminders, ""))

	select {
	case <-done:
		assert.Equal(suite.T(), int32(3), atomic.LoadInt32(&attempts))
	case <-time.After(2 * time.Second):
		suite.T().Fatal("job was not retried")
	}
}

func (suite *SchedulerTestSuite) TestPanickingJobDoesNotKillWorker() {
	done := make(chan struct{})
	suite.scheduler.Register(JobTypeTrashPurge, func(ctx context.Context, job *Job) error {
		if job.Payload == "boom" {
			panic("boom")
		}
		close(done)
		return nil
	})
	require.NoError(suite.T(), suite.scheduler.Start(suite.ctx))

	job := NewJob(JobTypeTrashPurge, "boom", 0)
	require.NoError(suite.T(), suite.scheduler.SubmitJob(job))
	require.NoError(suite.T(), suite.scheduler.Enqueue(JobTypeTrashPurge, "ok"))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		suite.T().Fatal("worker stopped after panic")
	}
}

func TestSchedulerTestSuite(t *testing.T) {
	suite.Run(t, new(SchedulerTestSuite))
}

func TestJobRetryBookkeeping(t *testing.T) {
	job := NewJob(JobTypeWebhookRetries, "", 1)

	job.Start()
	job.Fail("timeout")
	assert.True(t, job.ShouldRetry())

	job.ScheduleRetry(time.Minute)
	assert.Equal(t, 1, job.RetryCount)
	assert.Equal(t, JobStatusPending, job.Status)
	require.NotNil(t, job.NextRetryAt)

	job.Start()
	job.Fail("timeout")
	assert.False(t, job.ShouldRetry())
}

func TestTriggerSubmitsDueTasks(t *testing.T) {
	scheduler := NewScheduler(SchedulerConfig{Workers: 1, QueueSize: 10, JobTimeout: time.Second})
	var purges, retries int32
	scheduler.Register(JobTypeTrashPurge, func(ctx context.Context, job *Job) error {
		atomic.AddInt32(&purges, 1)
		return nil
	})
	scheduler.Register(JobTypeWebhookRetries, func(ctx context.Context, job *Job) error {
		atomic.AddInt32(&retries, 1)
		return nil
	})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, scheduler.Start(ctx))
	defer func() { _ = scheduler.Stop(context.Background()) }()

	trigger := NewTrigger(scheduler, []Task{
		{Type: JobTypeTrashPurge, Interval: 24 * time.Hour},
		{Type: JobTypeWebhookRetries, Interval: time.Minute},
	}, time.Minute)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	trigger.now = func() time.Time { return now }

	trigger.tick()
	now = now.Add(2 * time.Minute)
	trigger.tick()
	now = now.Add(30 * time.Second)
	trigger.tick()

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&purges) == 1 && atomic.LoadInt32(&retries) == 2
	}, 2*time.Second, 10*time.Millisecond)
}
