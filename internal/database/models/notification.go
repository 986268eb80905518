package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an in-app message for a team member
type Notification struct {
	BaseModel
	TeamID     uuid.UUID        `json:"team_id" gorm:"type:uuid;not null;index"`
	UserID     uuid.UUID        `json:"user_id" gorm:"type:uuid;not null;index"`
	Type       NotificationType `json:"type" gorm:"type:varchar(30);not null"`
	Message    string           `json:"message" gorm:"not null;size:1000"`
	LinkID     *uuid.UUID       `json:"link_id,omitempty" gorm:"type:uuid"`
	DocumentID *uuid.UUID       `json:"document_id,omitempty" gorm:"type:uuid"`
	DataroomID *uuid.UUID       `json:"dataroom_id,omitempty" gorm:"type:uuid"`
	ViewID     *uuid.UUID       `json:"view_id,omitempty" gorm:"type:uuid"`
	ReadAt     *time.Time       `json:"read_at,omitempty" gorm:"index"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}

// VerificationToken stores the hash of a one-time secret sent by email
type VerificationToken struct {
	Identifier string       `json:"identifier" gorm:"primaryKey;size:255"`
	TokenHash  string       `json:"-" gorm:"primaryKey;size:64"`
	Purpose    TokenPurpose `json:"purpose" gorm:"type:varchar(20);not null"`
	ExpiresAt  time.Time    `json:"expires_at" gorm:"not null;index"`
	CreatedAt  time.Time    `json:"created_at"`
}

// TableName returns the table name for VerificationToken
func (VerificationToken) TableName() string {
	return "verification_tokens"
}
