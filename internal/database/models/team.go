package models

import (
	"time"

	"github.com/google/uuid"
)

// PlanLimits caps the resources a team may create. -1 means unlimited.
type PlanLimits struct {
	Users     int `json:"users"`
	Documents int `json:"documents"`
	Links     int `json:"links"`
	Datarooms int `json:"datarooms"`
}

// Team owns documents, datarooms and links
type Team struct {
	BaseModel
	Name                 string      `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Plan                 Plan        `json:"plan" gorm:"type:varchar(20);not null;default:'free'"`
	StripeCustomerID     *string     `json:"stripe_customer_id,omitempty" gorm:"size:100;uniqueIndex"`
	StripeSubscriptionID *string     `json:"stripe_subscription_id,omitempty" gorm:"size:100"`
	SubscriptionEndsAt   *time.Time  `json:"subscription_ends_at,omitempty"`
	LimitsOverride       *PlanLimits `json:"limits_override,omitempty" gorm:"type:jsonb;serializer:json"`

	Members []UserTeam `json:"members,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// UserTeam is the membership of a user in a team
type UserTeam struct {
	UserID    uuid.UUID    `json:"user_id" gorm:"type:uuid;primaryKey"`
	TeamID    uuid.UUID    `json:"team_id" gorm:"type:uuid;primaryKey;index"`
	Role      Role         `json:"role" gorm:"type:varchar(20);not null;default:'MEMBER'"`
	Status    MemberStatus `json:"status" gorm:"type:varchar(20);not null;default:'ACTIVE'"`
	CreatedAt time.Time    `json:"created_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for UserTeam
func (UserTeam) TableName() string {
	return "user_teams"
}

// Invitation is a pending invite of an email address into a team
type Invitation struct {
	BaseModel
	TeamID    uuid.UUID `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_invitations_team_email"`
	Email     string    `json:"email" gorm:"not null;size:255;uniqueIndex:idx_invitations_team_email"`
	Token     string    `json:"-" gorm:"not null;size:100;uniqueIndex"`
	InvitedBy uuid.UUID `json:"invited_by" gorm:"type:uuid"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null;index"`
}

// TableName returns the table name for Invitation
func (Invitation) TableName() string {
	return "invitations"
}
