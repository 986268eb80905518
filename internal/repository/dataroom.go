package repository

import (
	"database/sql"

	"papermark-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DataroomRepository handles database operations for datarooms and their documents
type DataroomRepository struct {
	db *gorm.DB
}

// Ensure DataroomRepository implements DataroomRepositoryInterface
var _ DataroomRepositoryInterface = (*DataroomRepository)(nil)

// NewDataroomRepository creates a new dataroom repository
func NewDataroomRepository(db *gorm.DB) *DataroomRepository {
	return &DataroomRepository{db: db}
}

// Create inserts a new dataroom
func (r *DataroomRepository) Create(dataroom *models.Dataroom) error {
	return r.db.Create(dataroom).Error
}

// GetByID retrieves a dataroom of a team
func (r *DataroomRepository) GetByID(teamID, id uuid.UUID) (*models.Dataroom, error) {
	var dataroom models.Dataroom
	if err := r.db.First(&dataroom, "team_id = ? AND id = ?", teamID, id).Error; err != nil {
		return nil, err
	}
	return &dataroom, nil
}

// GetByIDAnyTeam retrieves a dataroom regardless of team
func (r *DataroomRepository) GetByIDAnyTeam(id uuid.UUID) (*models.Dataroom, error) {
	var dataroom models.Dataroom
	if err := r.db.First(&dataroom, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &dataroom, nil
}

// List retrieves the datarooms of a team with pagination
func (r *DataroomRepository) List(teamID uuid.UUID, limit, offset int) ([]models.Dataroom, int64, error) {
	var datarooms []models.Dataroom
	var total int64

	query := r.db.Model(&models.Dataroom{}).Where("team_id = ?", teamID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&datarooms).Error; err != nil {
		return nil, 0, err
	}
	return datarooms, total, nil
}

// Count counts the datarooms of a team
func (r *DataroomRepository) Count(teamID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Dataroom{}).Where("team_id = ?", teamID).Count(&count).Error
	return count, err
}

// Update updates a dataroom
func (r *DataroomRepository) Update(dataroom *models.Dataroom) error {
	return r.db.Save(dataroom).Error
}

// Delete removes a dataroom with its folders and document entries, and archives its links
func (r *DataroomRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("dataroom_id = ?", id).Delete(&models.DataroomDocument{}).Error; err != nil {
			return err
		}
		if err := tx.Where("dataroom_id = ?", id).Delete(&models.DataroomFolder{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Link{}).Where("dataroom_id = ?", id).Update("is_archived", true).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Dataroom{}, "id = ?", id).Error
	})
}

// AddDocuments appends documents to a dataroom, skipping those already present
func (r *DataroomRepository) AddDocuments(dataroomID uuid.UUID, folderID *uuid.UUID, documentIDs []uuid.UUID) ([]models.DataroomDocument, error) {
	var created []models.DataroomDocument
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing []uuid.UUID
		if err := tx.Model(&models.DataroomDocument{}).
			Where("dataroom_id = ? AND document_id IN ?", dataroomID, documentIDs).
			Pluck("document_id", &existing).Error; err != nil {
			return err
		}
		present := make(map[uuid.UUID]struct{}, len(existing))
		for _, id := range existing {
			present[id] = struct{}{}
		}

		var maxOrder sql.NullInt64
		if err := tx.Model(&models.DataroomDocument{}).
			Select("MAX(order_index)").
			Where("dataroom_id = ?", dataroomID).
			Row().Scan(&maxOrder); err != nil {
			return err
		}
		next := 0
		if maxOrder.Valid {
			next = int(maxOrder.Int64) + 1
		}

		for _, docID := range documentIDs {
			if _, ok := present[docID]; ok {
				continue
			}
			present[docID] = struct{}{}
			entry := models.DataroomDocument{
				DataroomID: dataroomID,
				DocumentID: docID,
				FolderID:   folderID,
				OrderIndex: next,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
			created = append(created, entry)
			next++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetDocument retrieves a dataroom entry with its document
func (r *DataroomRepository) GetDocument(dataroomID, id uuid.UUID) (*models.DataroomDocument, error) {
	var entry models.DataroomDocument
	err := r.db.Preload("Document").First(&entry, "dataroom_id = ? AND id = ?", dataroomID, id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetDocumentByDocumentID retrieves the entry placing documentID in a dataroom
func (r *DataroomRepository) GetDocumentByDocumentID(dataroomID, documentID uuid.UUID) (*models.DataroomDocument, error) {
	var entry models.DataroomDocument
	err := r.db.Preload("Document").First(&entry, "dataroom_id = ? AND document_id = ?", dataroomID, documentID).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListDocuments retrieves the entries of one folder level, or the root level when folderID is nil
func (r *DataroomRepository) ListDocuments(dataroomID uuid.UUID, folderID *uuid.UUID) ([]models.DataroomDocument, error) {
	var entries []models.DataroomDocument
	query := r.db.Preload("Document").Where("dataroom_id = ?", dataroomID)
	if folderID != nil {
		query = query.Where("folder_id = ?", *folderID)
	} else {
		query = query.Where("folder_id IS NULL")
	}
	if err := query.Order("order_index ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// MoveDocument moves an entry to another folder of the same dataroom
func (r *DataroomRepository) MoveDocument(id uuid.UUID, folderID *uuid.UUID) error {
	return r.db.Model(&models.DataroomDocument{}).Where("id = ?", id).Update("folder_id", folderID).Error
}

// RemoveDocument removes an entry from its dataroom
func (r *DataroomRepository) RemoveDocument(id uuid.UUID) error {
	return r.db.Delete(&models.DataroomDocument{}, "id = ?", id).Error
}

// CountDocuments counts the documents of a dataroom
func (r *DataroomRepository) CountDocuments(dataroomID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.DataroomDocument{}).Where("dataroom_id = ?", dataroomID).Count(&count).Error
	return count, err
}
