package service

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"papermark-backend/internal/database/models"
	apperrors "papermark-backend/internal/errors"
	"papermark-backend/internal/jobs"
	"papermark-backend/internal/logger"
	"papermark-backend/internal/metrics"
	"papermark-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	webhookSecretPrefix   = "whsec_"
	webhookRetryStep      = time.Minute
	webhookDeliveryLimit  = 50
	webhookRetryBatchSize = 100
	maxErrorLength        = 1000
)

// Headers sent with every webhook delivery
const (
	HeaderWebhookEvent     = "X-Papermark-Event"
	HeaderWebhookSignature = "X-Papermark-Signature"
)

// WebhookService manages team webhooks and delivers events to them
type WebhookService struct {
	repo       repository.WebhookRepositoryInterface
	queue      jobs.Queue
	client     *http.Client
	maxRetries int
	validator  *validator.Validate
	now        func() time.Time
}

// Ensure WebhookService implements WebhookServiceInterface
var _ WebhookServiceInterface = (*WebhookService)(nil)

// NewWebhookService creates a new webhook service
func NewWebhookService(repo repository.WebhookRepositoryInterface, queue jobs.Queue, timeout time.Duration, maxRetries int, validator *validator.Validate) *WebhookService {
	return &WebhookService{
		repo:       repo,
		queue:      queue,
		client:     &http.Client{Timeout: timeout},
		maxRetries: maxRetries,
		validator:  validator,
		now:        time.Now,
	}
}

// CreateWebhookRequest represents the request to create a webhook
type CreateWebhookRequest struct {
	Name     string   `json:"name" validate:"required,min=1,max=100"`
	URL      string   `json:"url" validate:"required,max=2000"`
	Triggers []string `json:"triggers" validate:"required,min=1"`
}

// UpdateWebhookRequest represents the request to update a webhook
type UpdateWebhookRequest struct {
	Name         *string   `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	URL          *string   `json:"url,omitempty" validate:"omitempty,max=2000"`
	Triggers     *[]string `json:"triggers,omitempty" validate:"omitempty,min=1"`
	Enabled      *bool     `json:"enabled,omitempty"`
	RotateSecret bool      `json:"rotate_secret"`
}

// WebhookResponse represents a webhook
type WebhookResponse struct {
	ID        uuid.UUID `json:"id"`
	TeamID    uuid.UUID `json:"team_id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Secret    string    `json:"secret"`
	Triggers  []string  `json:"triggers"`
	Enabled   bool      `json:"enabled"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// DeliveryResponse represents one webhook delivery
type DeliveryResponse struct {
	ID             uuid.UUID             `json:"id"`
	WebhookID      uuid.UUID             `json:"webhook_id"`
	Event          string                `json:"event"`
	Payload        json.RawMessage       `json:"payload"`
	Status         models.DeliveryStatus `json:"status"`
	Attempts       int                   `json:"attempts"`
	LastError      string                `json:"last_error,omitempty"`
	ResponseStatus int                   `json:"response_status,omitempty"`
	NextAttemptAt  *string               `json:"next_attempt_at,omitempty"`
	CreatedAt      string                `json:"created_at"`
	UpdatedAt      string                `json:"updated_at"`
}

// webhookEnvelope is the JSON body posted to subscribers
type webhookEnvelope struct {
	ID        uuid.UUID   `json:"id"`
	Event     string      `json:"event"`
	CreatedAt string      `json:"createdAt"`
	Data      interface{} `json:"data"`
}

// Create creates a webhook with a generated signing secret
func (s *WebhookService) Create(teamID uuid.UUID, req *CreateWebhookRequest) (*WebhookResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateWebhookURL(req.URL); err != nil {
		return nil, err
	}
	triggers, err := validateTriggers(req.Triggers)
	if err != nil {
		return nil, err
	}
	secret, err := newWebhookSecret()
	if err != nil {
		return nil, fmt.Errorf("failed to generate secret: %w", err)
	}

	webhook := &models.Webhook{
		TeamID:   teamID,
		Name:     req.Name,
		URL:      req.URL,
		Secret:   secret,
		Triggers: triggers,
		Enabled:  true,
	}
	if err := s.repo.Create(webhook); err != nil {
		return nil, fmt.Errorf("failed to create webhook: %w", err)
	}
	return toWebhookResponse(webhook), nil
}

// List returns the webhooks of a team
func (s *WebhookService) List(teamID uuid.UUID) ([]WebhookResponse, error) {
	webhooks, err := s.repo.List(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list webhooks: %w", err)
	}
	responses := make([]WebhookResponse, len(webhooks))
	for i := range webhooks {
		responses[i] = *toWebhookResponse(&webhooks[i])
	}
	return responses, nil
}

// Get returns a webhook of the team
func (s *WebhookService) Get(teamID, id uuid.UUID) (*WebhookResponse, error) {
	webhook, err := s.get(teamID, id)
	if err != nil {
		return nil, err
	}
	return toWebhookResponse(webhook), nil
}

// Update changes a webhook
func (s *WebhookService) Update(teamID, id uuid.UUID, req *UpdateWebhookRequest) (*WebhookResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	webhook, err := s.get(teamID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		webhook.Name = *req.Name
	}
	if req.URL != nil {
		if err := validateWebhookURL(*req.URL); err != nil {
			return nil, err
		}
		webhook.URL = *req.URL
	}
	if req.Triggers != nil {
		triggers, err := validateTriggers(*req.Triggers)
		if err != nil {
			return nil, err
		}
		webhook.Triggers = triggers
	}
	if req.Enabled != nil {
		webhook.Enabled = *req.Enabled
	}
	if req.RotateSecret {
		secret, err := newWebhookSecret()
		if err != nil {
			return nil, fmt.Errorf("failed to generate secret: %w", err)
		}
		webhook.Secret = secret
	}

	if err := s.repo.Update(webhook); err != nil {
		return nil, fmt.Errorf("failed to update webhook: %w", err)
	}
	return toWebhookResponse(webhook), nil
}

// Delete removes a webhook with its deliveries
func (s *WebhookService) Delete(teamID, id uuid.UUID) error {
	if _, err := s.get(teamID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete webhook: %w", err)
	}
	return nil
}

// ListDeliveries returns the latest deliveries of a webhook
func (s *WebhookService) ListDeliveries(teamID, id uuid.UUID) ([]DeliveryResponse, error) {
	if _, err := s.get(teamID, id); err != nil {
		return nil, err
	}
	deliveries, err := s.repo.ListDeliveries(id, webhookDeliveryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list deliveries: %w", err)
	}
	responses := make([]DeliveryResponse, len(deliveries))
	for i := range deliveries {
		responses[i] = toDeliveryResponse(&deliveries[i])
	}
	return responses, nil
}

// Dispatch records a delivery for every enabled webhook of the team subscribed to event
// and hands it to the job queue. Errors are logged and never returned to the caller.
func (s *WebhookService) Dispatch(ctx context.Context, teamID uuid.UUID, event string, data interface{}) {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id": teamID,
		"event":   event,
	})

	webhooks, err := s.repo.ListEnabled(teamID)
	if err != nil {
		log.WithError(err).Warn("Failed to list webhooks for dispatch")
		return
	}

	for i := range webhooks {
		webhook := &webhooks[i]
		if !webhook.Subscribes(event) {
			continue
		}

		delivery := &models.WebhookDelivery{
			BaseModel: models.BaseModel{ID: uuid.New()},
			WebhookID: webhook.ID,
			Event:     event,
			Status:    models.DeliveryStatusPending,
		}
		payload, err := json.Marshal(webhookEnvelope{
			ID:        delivery.ID,
			Event:     event,
			CreatedAt: formatTime(s.now()),
			Data:      data,
		})
		if err != nil {
			log.WithError(err).Warn("Failed to encode webhook payload")
			return
		}
		delivery.Payload = payload

		if err := s.repo.CreateDelivery(delivery); err != nil {
			log.WithError(err).WithField("webhook_id", webhook.ID).Warn("Failed to record webhook delivery")
			continue
		}
		s.enqueue(log, delivery)
	}
}

// enqueue hands a delivery to the job queue, leaving it to the retry sweep when the queue refuses it
func (s *WebhookService) enqueue(log *logger.Logger, delivery *models.WebhookDelivery) {
	var err error
	if s.queue == nil {
		err = jobs.ErrSchedulerNotRunning
	} else {
		err = s.queue.Enqueue(jobs.JobTypeWebhookDelivery, delivery.ID.String())
	}
	if err == nil {
		return
	}

	log.WithError(err).WithField("delivery_id", delivery.ID).Warn("Webhook delivery deferred to retry sweep")
	next := s.now()
	delivery.NextAttemptAt = &next
	if err := s.repo.UpdateDelivery(delivery); err != nil {
		log.WithError(err).WithField("delivery_id", delivery.ID).Warn("Failed to schedule webhook delivery")
	}
}

// Deliver posts a pending delivery once and records the outcome.
// A failed post is not an error; it schedules the next attempt or marks the delivery failed.
func (s *WebhookService) Deliver(ctx context.Context, deliveryID uuid.UUID) error {
	delivery, err := s.repo.GetDelivery(deliveryID)
	if err != nil {
		return lookup(err, apperrors.NewNotFoundError("webhook delivery"), "get webhook delivery")
	}
	if delivery.Status != models.DeliveryStatusPending {
		return nil
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"delivery_id": delivery.ID,
		"webhook_id":  delivery.WebhookID,
		"event":       delivery.Event,
	})

	webhook, err := s.repo.GetByIDAnyTeam(delivery.WebhookID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to get webhook: %w", err)
		}
		webhook = nil
	}

	delivery.Attempts++
	switch {
	case webhook == nil:
		s.finish(delivery, models.DeliveryStatusFailed, 0, "webhook no longer exists")
	case !webhook.Enabled:
		s.finish(delivery, models.DeliveryStatusFailed, 0, "webhook is disabled")
	default:
		status, postErr := s.post(ctx, webhook, delivery)
		if postErr == nil {
			s.finish(delivery, models.DeliveryStatusSucceeded, status, "")
			metrics.WebhookDeliveries.WithLabelValues("success").Inc()
			break
		}
		log.WithError(postErr).WithField("attempt", delivery.Attempts).Warn("Webhook delivery failed")
		s.retryOrFail(delivery, status, postErr.Error())
	}

	if err := s.repo.UpdateDelivery(delivery); err != nil {
		return fmt.Errorf("failed to update webhook delivery: %w", err)
	}
	return nil
}

func (s *WebhookService) finish(delivery *models.WebhookDelivery, status models.DeliveryStatus, responseStatus int, lastError string) {
	delivery.Status = status
	delivery.ResponseStatus = responseStatus
	delivery.LastError = lastError
	delivery.NextAttemptAt = nil
}

// retryOrFail schedules the next attempt after attempts minutes, or gives up after maxRetries retries
func (s *WebhookService) retryOrFail(delivery *models.WebhookDelivery, responseStatus int, lastError string) {
	if len(lastError) > maxErrorLength {
		lastError = lastError[:maxErrorLength]
	}
	if delivery.Attempts > s.maxRetries {
		s.finish(delivery, models.DeliveryStatusFailed, responseStatus, lastError)
		metrics.WebhookDeliveries.WithLabelValues("exhausted").Inc()
		return
	}
	next := s.now().Add(time.Duration(delivery.Attempts) * webhookRetryStep)
	delivery.ResponseStatus = responseStatus
	delivery.LastError = lastError
	delivery.NextAttemptAt = &next
	metrics.WebhookDeliveries.WithLabelValues("failure").Inc()
}

// post sends the signed payload and returns the response status
func (s *WebhookService) post(ctx context.Context, webhook *models.Webhook, delivery *models.WebhookDelivery) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhook.URL, bytes.NewReader(delivery.Payload))
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderWebhookEvent, delivery.Event)
	req.Header.Set(HeaderWebhookSignature, Sign(webhook.Secret, delivery.Payload))

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, fmt.Errorf("endpoint responded with status %d", resp.StatusCode)
	}
	return resp.StatusCode, nil
}

// RetryDue delivers the pending deliveries whose next attempt is due and returns how many were attempted
func (s *WebhookService) RetryDue(ctx context.Context) (int, error) {
	now := s.now()
	due, err := s.repo.ListDueDeliveries(now, webhookRetryBatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to list due deliveries: %w", err)
	}
	attempted := 0
	for i := range due {
		if ctx.Err() != nil {
			return attempted, ctx.Err()
		}
		// overlapping sweeps list the same rows; only the claimant posts
		claimed, err := s.repo.ClaimDelivery(due[i].ID, now)
		if err != nil {
			logger.WithContext(ctx).WithError(err).WithField("delivery_id", due[i].ID).Warn("Failed to claim webhook delivery")
			continue
		}
		if !claimed {
			continue
		}
		if err := s.Deliver(ctx, due[i].ID); err != nil {
			logger.WithContext(ctx).WithError(err).WithField("delivery_id", due[i].ID).Warn("Webhook retry failed")
			continue
		}
		attempted++
	}
	return attempted, nil
}

// Sign returns the signature header value of body: sha256=<hex hmac>
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func (s *WebhookService) get(teamID, id uuid.UUID) (*models.Webhook, error) {
	webhook, err := s.repo.GetByID(teamID, id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrWebhookNotFound, "get webhook")
	}
	return webhook, nil
}

func newWebhookSecret() (string, error) {
	token, err := randomToken(24)
	if err != nil {
		return "", err
	}
	return webhookSecretPrefix + token, nil
}

func validateWebhookURL(raw string) error {
	u, err := url.ParseRequestURI(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return apperrors.NewValidationError("url", "must be an absolute http or https URL")
	}
	return nil
}

// validateTriggers checks every trigger is a known event and removes duplicates
func validateTriggers(triggers []string) ([]string, error) {
	known := make(map[string]bool, len(models.WebhookEvents))
	for _, e := range models.WebhookEvents {
		known[e] = true
	}
	seen := make(map[string]bool, len(triggers))
	out := make([]string, 0, len(triggers))
	for _, t := range triggers {
		t = strings.TrimSpace(t)
		if !known[t] {
			return nil, apperrors.NewValidationError("triggers", fmt.Sprintf("unknown event %q", t))
		}
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil, apperrors.NewValidationError("triggers", "at least one event is required")
	}
	return out, nil
}

func toWebhookResponse(webhook *models.Webhook) *WebhookResponse {
	triggers := webhook.Triggers
	if triggers == nil {
		triggers = []string{}
	}
	return &WebhookResponse{
		ID:        webhook.ID,
		TeamID:    webhook.TeamID,
		Name:      webhook.Name,
		URL:       webhook.URL,
		Secret:    webhook.Secret,
		Triggers:  triggers,
		Enabled:   webhook.Enabled,
		CreatedAt: formatTime(webhook.CreatedAt),
		UpdatedAt: formatTime(webhook.UpdatedAt),
	}
}

func toDeliveryResponse(delivery *models.WebhookDelivery) DeliveryResponse {
	return DeliveryResponse{
		ID:             delivery.ID,
		WebhookID:      delivery.WebhookID,
		Event:          delivery.Event,
		Payload:        delivery.Payload,
		Status:         delivery.Status,
		Attempts:       delivery.Attempts,
		LastError:      delivery.LastError,
		ResponseStatus: delivery.ResponseStatus,
		NextAttemptAt:  formatTimePtr(delivery.NextAttemptAt),
		CreatedAt:      formatTime(delivery.CreatedAt),
		UpdatedAt:      formatTime(delivery.UpdatedAt),
	}
}
