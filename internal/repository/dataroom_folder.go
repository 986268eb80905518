package repository

import (
	"strings"

	"papermark-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DataroomFolderRepository handles database operations for dataroom folders
type DataroomFolderRepository struct {
	db *gorm.DB
}

// Ensure DataroomFolderRepository implements DataroomFolderRepositoryInterface
var _ DataroomFolderRepositoryInterface = (*DataroomFolderRepository)(nil)

// NewDataroomFolderRepository creates a new dataroom folder repository
func NewDataroomFolderRepository(db *gorm.DB) *DataroomFolderRepository {
	return &DataroomFolderRepository{db: db}
}

// Create inserts a new dataroom folder
func (r *DataroomFolderRepository) Create(folder *models.DataroomFolder) error {
	return r.db.Create(folder).Error
}

// GetByID retrieves a folder of a dataroom
func (r *DataroomFolderRepository) GetByID(dataroomID, id uuid.UUID) (*models.DataroomFolder, error) {
	var folder models.DataroomFolder
	if err := r.db.First(&folder, "dataroom_id = ? AND id = ?", dataroomID, id).Error; err != nil {
		return nil, err
	}
	return &folder, nil
}

// GetByPath retrieves a folder of a dataroom by path
func (r *DataroomFolderRepository) GetByPath(dataroomID uuid.UUID, path string) (*models.DataroomFolder, error) {
	var folder models.DataroomFolder
	if err := r.db.First(&folder, "dataroom_id = ? AND path = ?", dataroomID, path).Error; err != nil {
		return nil, err
	}
	return &folder, nil
}

// List retrieves the folders directly below parentID, or the root folders when nil
func (r *DataroomFolderRepository) List(dataroomID uuid.UUID, parentID *uuid.UUID) ([]models.DataroomFolder, error) {
	var folders []models.DataroomFolder
	query := r.db.Where("dataroom_id = ?", dataroomID)
	if parentID != nil {
		query = query.Where("parent_id = ?", *parentID)
	} else {
		query = query.Where("parent_id IS NULL")
	}
	if err := query.Order("name ASC").Find(&folders).Error; err != nil {
		return nil, err
	}
	return folders, nil
}

// Count counts all folders of a dataroom
func (r *DataroomFolderRepository) Count(dataroomID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.DataroomFolder{}).Where("dataroom_id = ?", dataroomID).Count(&count).Error
	return count, err
}

// Rename renames a folder and rewrites the path of every descendant
func (r *DataroomFolderRepository) Rename(folder *models.DataroomFolder, newName, newPath string) error {
	oldPath := folder.Path
	return r.db.Transaction(func(tx *gorm.DB) error {
		var descendants []models.DataroomFolder
		if err := tx.Where("dataroom_id = ? AND path LIKE ?", folder.DataroomID, oldPath+"/%").
			Find(&descendants).Error; err != nil {
			return err
		}
		for _, d := range descendants {
			if err := tx.Model(&models.DataroomFolder{}).Where("id = ?", d.ID).
				Update("path", newPath+strings.TrimPrefix(d.Path, oldPath)).Error; err != nil {
				return err
			}
		}
		folder.Name = newName
		folder.Path = newPath
		return tx.Model(&models.DataroomFolder{}).Where("id = ?", folder.ID).
			Updates(map[string]interface{}{"name": newName, "path": newPath}).Error
	})
}

// DeleteTree removes a folder with all its sub-folders; their documents move to the dataroom root
func (r *DataroomFolderRepository) DeleteTree(folder *models.DataroomFolder) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var ids []uuid.UUID
		if err := tx.Model(&models.DataroomFolder{}).
			Where("dataroom_id = ? AND (id = ? OR path LIKE ?)", folder.DataroomID, folder.ID, folder.Path+"/%").
			Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Model(&models.DataroomDocument{}).
			Where("dataroom_id = ? AND folder_id IN ?", folder.DataroomID, ids).
			Update("folder_id", nil).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", ids).Delete(&models.DataroomFolder{}).Error
	})
}
