package models

import (
	"time"

	"github.com/google/uuid"
)

// Link is a shareable URL granting access to a document or a dataroom
type Link struct {
	BaseModel
	TeamID     uuid.UUID  `json:"team_id" gorm:"type:uuid;not null;index"`
	LinkType   LinkType   `json:"link_type" gorm:"type:varchar(20);not null"`
	DocumentID *uuid.UUID `json:"document_id,omitempty" gorm:"type:uuid;index"`
	DataroomID *uuid.UUID `json:"dataroom_id,omitempty" gorm:"type:uuid;index"`
	Name       string     `json:"name" gorm:"size:255"`
	Slug       *string    `json:"slug,omitempty" gorm:"size:100;uniqueIndex:idx_links_domain_slug"`
	DomainSlug string     `json:"domain_slug" gorm:"size:255;not null;default:'';uniqueIndex:idx_links_domain_slug"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`

	PasswordHash       string     `json:"-" gorm:"size:100"`
	EmailProtected     bool       `json:"email_protected" gorm:"not null"`
	EmailAuthenticated bool       `json:"email_authenticated" gorm:"not null;default:false"`
	AllowDownload      bool       `json:"allow_download" gorm:"not null;default:false"`
	EnableNotification bool       `json:"enable_notification" gorm:"not null"`
	EnableWatermark    bool       `json:"enable_watermark" gorm:"not null;default:false"`
	WatermarkText      string     `json:"watermark_text" gorm:"size:500"`
	AllowList          []string   `json:"allow_list" gorm:"type:jsonb;serializer:json"`
	DenyList           []string   `json:"deny_list" gorm:"type:jsonb;serializer:json"`
	ScreenshotProtect  bool       `json:"enable_screenshot_protection" gorm:"column:enable_screenshot_protection;not null;default:false"`
	WelcomeMessage     string     `json:"welcome_message" gorm:"type:text"`
	IsArchived         bool       `json:"is_archived" gorm:"not null;default:false;index"`
	MetaTitle          string     `json:"meta_title" gorm:"size:255"`
	MetaDescription    string     `json:"meta_description" gorm:"size:1000"`
	CreatedByID        *uuid.UUID `json:"created_by_id,omitempty" gorm:"type:uuid"`
}

// TableName returns the table name for Link
func (Link) TableName() string {
	return "links"
}

// HasPassword reports whether visitors must present a password
func (l *Link) HasPassword() bool {
	return l.PasswordHash != ""
}

// IsExpired reports whether the link expired at or before now
func (l *Link) IsExpired(now time.Time) bool {
	return l.ExpiresAt != nil && !l.ExpiresAt.After(now)
}

// RequiresEmail reports whether visitors must identify with an email
func (l *Link) RequiresEmail() bool {
	return l.EmailProtected || l.EmailAuthenticated || len(l.AllowList) > 0
}
