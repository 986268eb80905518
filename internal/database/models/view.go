package models

import (
	"time"

	"github.com/google/uuid"
)

// Viewer is an external party, identified by email, that accessed team content
type Viewer struct {
	BaseModel
	TeamID     uuid.UUID  `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_viewers_team_email"`
	Email      string     `json:"email" gorm:"not null;size:255;uniqueIndex:idx_viewers_team_email"`
	Verified   bool       `json:"verified" gorm:"not null;default:false"`
	DataroomID *uuid.UUID `json:"dataroom_id,omitempty" gorm:"type:uuid;index"`
}

// TableName returns the table name for Viewer
func (Viewer) TableName() string {
	return "viewers"
}

// View is one visit of a link
type View struct {
	BaseModel
	TeamID       uuid.UUID  `json:"team_id" gorm:"type:uuid;not null;index"`
	LinkID       uuid.UUID  `json:"link_id" gorm:"type:uuid;not null;index"`
	DocumentID   *uuid.UUID `json:"document_id,omitempty" gorm:"type:uuid;index"`
	DataroomID   *uuid.UUID `json:"dataroom_id,omitempty" gorm:"type:uuid;index"`
	ViewerID     *uuid.UUID `json:"viewer_id,omitempty" gorm:"type:uuid;index"`
	ViewerEmail  string     `json:"viewer_email" gorm:"size:255;index"`
	ViewerName   string     `json:"viewer_name" gorm:"size:255"`
	Verified     bool       `json:"verified" gorm:"not null;default:false"`
	ViewType     ViewType   `json:"view_type" gorm:"type:varchar(20);not null"`
	ViewedAt     time.Time  `json:"viewed_at" gorm:"not null;index"`
	DownloadedAt *time.Time `json:"downloaded_at,omitempty"`
	IsArchived   bool       `json:"is_archived" gorm:"not null;default:false"`
	UserAgent    string     `json:"user_agent" gorm:"size:1000"`
	IPAddress    string     `json:"ip_address" gorm:"size:64"`
	Country      string     `json:"country" gorm:"size:8"`
}

// TableName returns the table name for View
func (View) TableName() string {
	return "views"
}

// PageView records the time a visitor spent on one page during a view
type PageView struct {
	BaseModel
	ViewID        uuid.UUID `json:"view_id" gorm:"type:uuid;not null;index"`
	DocumentID    uuid.UUID `json:"document_id" gorm:"type:uuid;not null;index"`
	VersionNumber int       `json:"version_number" gorm:"not null;default:1"`
	PageNumber    int       `json:"page_number" gorm:"not null"`
	DurationMs    int64     `json:"duration_ms" gorm:"not null"`
}

// TableName returns the table name for PageView
func (PageView) TableName() string {
	return "page_views"
}
