package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Document is an uploaded file owned by a team. Soft deletion moves it to the trash.
type Document struct {
	BaseModel
	TeamID      uuid.UUID      `json:"team_id" gorm:"type:uuid;not null;index"`
	OwnerID     *uuid.UUID     `json:"owner_id,omitempty" gorm:"type:uuid;index"`
	FolderID    *uuid.UUID     `json:"folder_id,omitempty" gorm:"type:uuid;index"`
	Name        string         `json:"name" gorm:"not null;size:255" validate:"required,max=255"`
	Type        DocumentType   `json:"type" gorm:"type:varchar(20);not null"`
	ContentType string         `json:"content_type" gorm:"size:255"`
	StorageType StorageType    `json:"storage_type" gorm:"type:varchar(20);not null"`
	File        string         `json:"file" gorm:"not null;size:1024"`
	NumPages    int            `json:"num_pages"`
	FileSize    int64          `json:"file_size"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`

	Versions []DocumentVersion `json:"versions,omitempty" gorm:"foreignKey:DocumentID"`
}

// TableName returns the table name for Document
func (Document) TableName() string {
	return "documents"
}

// DocumentVersion is one uploaded revision of a document. Exactly one version is primary.
type DocumentVersion struct {
	BaseModel
	DocumentID    uuid.UUID    `json:"document_id" gorm:"type:uuid;not null;uniqueIndex:idx_document_versions_number"`
	VersionNumber int          `json:"version_number" gorm:"not null;uniqueIndex:idx_document_versions_number"`
	File          string       `json:"file" gorm:"not null;size:1024"`
	Type          DocumentType `json:"type" gorm:"type:varchar(20);not null"`
	ContentType   string       `json:"content_type" gorm:"size:255"`
	StorageType   StorageType  `json:"storage_type" gorm:"type:varchar(20);not null"`
	NumPages      int          `json:"num_pages"`
	FileSize      int64        `json:"file_size"`
	IsPrimary     bool         `json:"is_primary" gorm:"not null;default:false;index"`
}

// TableName returns the table name for DocumentVersion
func (DocumentVersion) TableName() string {
	return "document_versions"
}

// Folder groups documents of a team. Path is the slash joined slugs from the root.
type Folder struct {
	BaseModel
	TeamID   uuid.UUID  `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_folders_team_path"`
	ParentID *uuid.UUID `json:"parent_id,omitempty" gorm:"type:uuid;index"`
	Name     string     `json:"name" gorm:"not null;size:255"`
	Path     string     `json:"path" gorm:"not null;size:1024;uniqueIndex:idx_folders_team_path"`
}

// TableName returns the table name for Folder
func (Folder) TableName() string {
	return "folders"
}
