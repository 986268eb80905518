package repository

import (
	"time"

	"papermark-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WebhookRepository handles database operations for webhooks and their deliveries
type WebhookRepository struct {
	db *gorm.DB
}

// Ensure WebhookRepository implements WebhookRepositoryInterface
var _ WebhookRepositoryInterface = (*WebhookRepository)(nil)

// NewWebhookRepository creates a new webhook repository
func NewWebhookRepository(db *gorm.DB) *WebhookRepository {
	return &WebhookRepository{db: db}
}

// Create inserts a new webhook
func (r *WebhookRepository) Create(webhook *models.Webhook) error {
	return r.db.Create(webhook).Error
}

// GetByID retrieves a webhook of a team
func (r *WebhookRepository) GetByID(teamID, id uuid.UUID) (*models.Webhook, error) {
	var webhook models.Webhook
	if err := r.db.First(&webhook, "team_id = ? AND id = ?", teamID, id).Error; err != nil {
		return nil, err
	}
	return &webhook, nil
}

// GetByIDAnyTeam retrieves a webhook by ID
func (r *WebhookRepository) GetByIDAnyTeam(id uuid.UUID) (*models.Webhook, error) {
	var webhook models.Webhook
	if err := r.db.First(&webhook, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &webhook, nil
}

// List retrieves the webhooks of a team
func (r *WebhookRepository) List(teamID uuid.UUID) ([]models.Webhook, error) {
	var webhooks []models.Webhook
	if err := r.db.Where("team_id = ?", teamID).Order("created_at ASC").Find(&webhooks).Error; err != nil {
		return nil, err
	}
	return webhooks, nil
}

// ListEnabled retrieves the enabled webhooks of a team
func (r *WebhookRepository) ListEnabled(teamID uuid.UUID) ([]models.Webhook, error) {
	var webhooks []models.Webhook
	if err := r.db.Where("team_id = ? AND enabled = ?", teamID, true).Find(&webhooks).Error; err != nil {
		return nil, err
	}
	return webhooks, nil
}

// Update updates a webhook
func (r *WebhookRepository) Update(webhook *models.Webhook) error {
	return r.db.Save(webhook).Error
}

// Delete removes a webhook with its delivery history
func (r *WebhookRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("webhook_id = ?", id).Delete(&models.WebhookDelivery{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Webhook{}, "id = ?", id).Error
	})
}

// CreateDelivery inserts a new delivery
func (r *WebhookRepository) CreateDelivery(delivery *models.WebhookDelivery) error {
	return r.db.Create(delivery).Error
}

// GetDelivery retrieves a delivery by ID
func (r *WebhookRepository) GetDelivery(id uuid.UUID) (*models.WebhookDelivery, error) {
	var delivery models.WebhookDelivery
	if err := r.db.First(&delivery, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &delivery, nil
}

// UpdateDelivery updates a delivery
func (r *WebhookRepository) UpdateDelivery(delivery *models.WebhookDelivery) error {
	return r.db.Save(delivery).Error
}

// ListDeliveries retrieves the latest deliveries of a webhook
func (r *WebhookRepository) ListDeliveries(webhookID uuid.UUID, limit int) ([]models.WebhookDelivery, error) {
	var deliveries []models.WebhookDelivery
	err := r.db.Where("webhook_id = ?", webhookID).
		Order("created_at DESC").
		Limit(limit).
		Find(&deliveries).Error
	if err != nil {
		return nil, err
	}
	return deliveries, nil
}

// ListDueDeliveries retrieves pending deliveries whose next attempt is due
func (r *WebhookRepository) ListDueDeliveries(now time.Time, limit int) ([]models.WebhookDelivery, error) {
	var deliveries []models.WebhookDelivery
	err := r.db.
		Where("status = ? AND next_attempt_at IS NOT NULL AND next_attempt_at <= ?", models.DeliveryStatusPending, now).
		Order("next_attempt_at ASC").
		Limit(limit).
		Find(&deliveries).Error
	if err != nil {
		return nil, err
	}
	return deliveries, nil
}

// ClaimDelivery clears the next attempt of a due delivery so only one sweep posts it.
// It reports false when the delivery was already claimed or rescheduled.
func (r *WebhookRepository) ClaimDelivery(id uuid.UUID, now time.Time) (bool, error) {
	result := r.db.Model(&models.WebhookDelivery{}).
		Where("id = ? AND status = ? AND next_attempt_at IS NOT NULL AND next_attempt_at <= ?", id, models.DeliveryStatusPending, now).
		Update("next_attempt_at", nil)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}
