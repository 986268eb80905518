package repository

import (
	"database/sql"

	"papermark-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentVersionRepository handles database operations for document versions
type DocumentVersionRepository struct {
	db *gorm.DB
}

// Ensure DocumentVersionRepository implements DocumentVersionRepositoryInterface
var _ DocumentVersionRepositoryInterface = (*DocumentVersionRepository)(nil)

// NewDocumentVersionRepository creates a new document version repository
func NewDocumentVersionRepository(db *gorm.DB) *DocumentVersionRepository {
	return &DocumentVersionRepository{db: db}
}

// List retrieves all versions of a document, newest first
func (r *DocumentVersionRepository) List(documentID uuid.UUID) ([]models.DocumentVersion, error) {
	var versions []models.DocumentVersion
	err := r.db.Where("document_id = ?", documentID).Order("version_number DESC").Find(&versions).Error
	if err != nil {
		return nil, err
	}
	return versions, nil
}

// GetPrimary retrieves the primary version of a document
func (r *DocumentVersionRepository) GetPrimary(documentID uuid.UUID) (*models.DocumentVersion, error) {
	var version models.DocumentVersion
	err := r.db.First(&version, "document_id = ? AND is_primary = ?", documentID, true).Error
	if err != nil {
		return nil, err
	}
	return &version, nil
}

// GetByNumber retrieves a version by its number
func (r *DocumentVersionRepository) GetByNumber(documentID uuid.UUID, number int) (*models.DocumentVersion, error) {
	var version models.DocumentVersion
	err := r.db.First(&version, "document_id = ? AND version_number = ?", documentID, number).Error
	if err != nil {
		return nil, err
	}
	return &version, nil
}

// NextNumber returns the number the next version of a document should get
func (r *DocumentVersionRepository) NextNumber(documentID uuid.UUID) (int, error) {
	var max sql.NullInt64
	err := r.db.Model(&models.DocumentVersion{}).
		Select("MAX(version_number)").
		Where("document_id = ?", documentID).
		Row().Scan(&max)
	if err != nil {
		return 0, err
	}
	if !max.Valid {
		return 1, nil
	}
	return int(max.Int64) + 1, nil
}

// AddPrimary inserts a new version and makes it the only primary one
func (r *DocumentVersionRepository) AddPrimary(doc *models.Document, version *models.DocumentVersion) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := unsetPrimary(tx, doc.ID); err != nil {
			return err
		}
		version.DocumentID = doc.ID
		version.IsPrimary = true
		if err := tx.Create(version).Error; err != nil {
			return err
		}
		return syncDocument(tx, doc, version)
	})
}

// Promote makes an existing version the only primary one
func (r *DocumentVersionRepository) Promote(doc *models.Document, version *models.DocumentVersion) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := unsetPrimary(tx, doc.ID); err != nil {
			return err
		}
		if err := tx.Model(&models.DocumentVersion{}).
			Where("id = ?", version.ID).
			Update("is_primary", true).Error; err != nil {
			return err
		}
		version.IsPrimary = true
		return syncDocument(tx, doc, version)
	})
}

func unsetPrimary(tx *gorm.DB, documentID uuid.UUID) error {
	return tx.Model(&models.DocumentVersion{}).
		Where("document_id = ? AND is_primary = ?", documentID, true).
		Update("is_primary", false).Error
}

func syncDocument(tx *gorm.DB, doc *models.Document, version *models.DocumentVersion) error {
	doc.File = version.File
	doc.Type = version.Type
	doc.ContentType = version.ContentType
	doc.StorageType = version.StorageType
	doc.NumPages = version.NumPages
	doc.FileSize = version.FileSize
	return tx.Model(&models.Document{}).Where("id = ?", doc.ID).Updates(map[string]interface{}{
		"file":         doc.File,
		"type":         doc.Type,
		"content_type": doc.ContentType,
		"storage_type": doc.StorageType,
		"num_pages":    doc.NumPages,
		"file_size":    doc.FileSize,
	}).Error
}
