package models

import "time"

// User is an authenticated account of the dashboard
type User struct {
	BaseModel
	Email           string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Name            string     `json:"name" gorm:"size:200"`
	Image           string     `json:"image" gorm:"size:2000"`
	EmailVerifiedAt *time.Time `json:"email_verified_at,omitempty"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
