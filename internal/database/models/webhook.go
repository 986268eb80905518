package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Webhook is a team-configured HTTP endpoint receiving event callbacks
type Webhook struct {
	BaseModel
	TeamID   uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index"`
	Name     string    `json:"name" gorm:"not null;size:100"`
	URL      string    `json:"url" gorm:"not null;size:2000"`
	Secret   string    `json:"-" gorm:"not null;size:100"`
	Triggers []string  `json:"triggers" gorm:"type:jsonb;serializer:json"`
	Enabled  bool      `json:"enabled" gorm:"not null"`
}

// TableName returns the table name for Webhook
func (Webhook) TableName() string {
	return "webhooks"
}

// Subscribes reports whether the webhook wants the given event
func (w *Webhook) Subscribes(event string) bool {
	for _, t := range w.Triggers {
		if t == event {
			return true
		}
	}
	return false
}

// WebhookDelivery is one attempt history of posting an event to a webhook
type WebhookDelivery struct {
	BaseModel
	WebhookID      uuid.UUID       `json:"webhook_id" gorm:"type:uuid;not null;index"`
	Event          string          `json:"event" gorm:"not null;size:50"`
	Payload        json.RawMessage `json:"payload" gorm:"type:jsonb"`
	Status         DeliveryStatus  `json:"status" gorm:"type:varchar(20);not null;default:'PENDING';index"`
	Attempts       int             `json:"attempts" gorm:"not null;default:0"`
	LastError      string          `json:"last_error,omitempty" gorm:"size:1000"`
	ResponseStatus int             `json:"response_status,omitempty"`
	NextAttemptAt  *time.Time      `json:"next_attempt_at,omitempty" gorm:"index"`
}

// TableName returns the table name for WebhookDelivery
func (WebhookDelivery) TableName() string {
	return "webhook_deliveries"
}
