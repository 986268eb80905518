// Package jobs runs background work in-process: a worker pool fed by request
// handlers and a periodic trigger for maintenance tasks.
package jobs

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JobStatus represents the status of a job
type JobStatus string

const (
	JobStatusPending JobStatus = "PENDING"
	JobStatusRunning JobStatus = "RUNNING"
	JobStatusSuccess JobStatus = "SUCCESS"
	JobStatusFailed  JobStatus = "FAILED"
)

// JobType selects the handler of a job
type JobType string

const (
	JobTypeWebhookDelivery   JobType = "WEBHOOK_DELIVERY"
	JobTypeWebhookRetries    JobType = "WEBHOOK_RETRIES"
	JobTypeTrashPurge        JobType = "TRASH_PURGE"
	JobTypeTokenCleanup      JobType = "TOKEN_CLEANUP"
	JobTypeRenewalReminders  JobType = "RENEWAL_REMINDERS"
	JobTypeViewNotification  JobType = "VIEW_NOTIFICATION"
	JobTypeInvitationCleanup JobType = "INVITATION_CLEANUP"
)

// Job is one unit of background work
type Job struct {
	ID          uuid.UUID
	Type        JobType
	Payload     string
	Status      JobStatus
	Error       string
	StartedAt   *time.Time
	CompletedAt *time.Time
	RetryCount  int
	MaxRetries  int
	NextRetryAt *time.Time
}

// NewJob creates a pending job
func NewJob(jobType JobType, payload string, maxRetries int) *Job {
	return &Job{
		ID:         uuid.New(),
		Type:       jobType,
		Payload:    payload,
		Status:     JobStatusPending,
		MaxRetries: maxRetries,
	}
}

// Start marks the job as running
func (j *Job) Start() {
	now := time.Now()
	j.Status = JobStatusRunning
	j.StartedAt = &now
	j.Error = ""
}

// Complete marks the job as successful
func (j *Job) Complete() {
	now := time.Now()
	j.Status = JobStatusSuccess
	j.CompletedAt = &now
}

// Fail marks the job as failed
func (j *Job) Fail(err string) {
	now := time.Now()
	j.Status = JobStatusFailed
	j.CompletedAt = &now
	j.Error = err
}

// ShouldRetry returns true if the job should be retried
func (j *Job) ShouldRetry() bool {
	return j.Status == JobStatusFailed && j.RetryCount < j.MaxRetries
}

// ScheduleRetry schedules the job for retry
func (j *Job) ScheduleRetry(delay time.Duration) {
	j.RetryCount++
	j.Status = JobStatusPending
	next := time.Now().Add(delay)
	j.NextRetryAt = &next
	j.Error = ""
}

// Handler executes jobs of one type
type Handler func(ctx context.Context, job *Job) error

//go:generate mockgen -source=job.go -destination=../mocks/queue_mocks.go -package=mocks

// Queue accepts jobs for asynchronous execution
type Queue interface {
	Enqueue(jobType JobType, payload string) error
}
