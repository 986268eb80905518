package models

import "github.com/google/uuid"

// Dataroom is a named collection of documents and folders shared through links
type Dataroom struct {
	BaseModel
	PID         string    `json:"pid" gorm:"column:pid;not null;size:32;uniqueIndex"`
	TeamID      uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index"`
	Name        string    `json:"name" gorm:"not null;size:255"`
	Description string    `json:"description" gorm:"size:2000"`
}

// TableName returns the table name for Dataroom
func (Dataroom) TableName() string {
	return "datarooms"
}

// DataroomFolder is a folder inside a dataroom
type DataroomFolder struct {
	BaseModel
	DataroomID uuid.UUID  `json:"dataroom_id" gorm:"type:uuid;not null;uniqueIndex:idx_dataroom_folders_path"`
	ParentID   *uuid.UUID `json:"parent_id,omitempty" gorm:"type:uuid;index"`
	Name       string     `json:"name" gorm:"not null;size:255"`
	Path       string     `json:"path" gorm:"not null;size:1024;uniqueIndex:idx_dataroom_folders_path"`
}

// TableName returns the table name for DataroomFolder
func (DataroomFolder) TableName() string {
	return "dataroom_folders"
}

// DataroomDocument places a team document inside a dataroom
type DataroomDocument struct {
	BaseModel
	DataroomID uuid.UUID  `json:"dataroom_id" gorm:"type:uuid;not null;uniqueIndex:idx_dataroom_documents_unique"`
	DocumentID uuid.UUID  `json:"document_id" gorm:"type:uuid;not null;uniqueIndex:idx_dataroom_documents_unique"`
	FolderID   *uuid.UUID `json:"folder_id,omitempty" gorm:"type:uuid;index"`
	OrderIndex int        `json:"order_index" gorm:"not null;default:0"`

	Document *Document `json:"document,omitempty" gorm:"foreignKey:DocumentID"`
}

// TableName returns the table name for DataroomDocument
func (DataroomDocument) TableName() string {
	return "dataroom_documents"
}
