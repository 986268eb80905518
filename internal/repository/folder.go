package repository

import (
	"strings"

	"papermark-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FolderRepository handles database operations for team folders
type FolderRepository struct {
	db *gorm.DB
}

// Ensure FolderRepository implements FolderRepositoryInterface
var _ FolderRepositoryInterface = (*FolderRepository)(nil)

// NewFolderRepository creates a new folder repository
func NewFolderRepository(db *gorm.DB) *FolderRepository {
	return &FolderRepository{db: db}
}

// Create inserts a new folder
func (r *FolderRepository) Create(folder *models.Folder) error {
	return r.db.Create(folder).Error
}

// GetByID retrieves a folder of a team
func (r *FolderRepository) GetByID(teamID, id uuid.UUID) (*models.Folder, error) {
	var folder models.Folder
	if err := r.db.First(&folder, "team_id = ? AND id = ?", teamID, id).Error; err != nil {
		return nil, err
	}
	return &folder, nil
}

// GetByPath retrieves a folder of a team by its path
func (r *FolderRepository) GetByPath(teamID uuid.UUID, path string) (*models.Folder, error) {
	var folder models.Folder
	if err := r.db.First(&folder, "team_id = ? AND path = ?", teamID, path).Error; err != nil {
		return nil, err
	}
	return &folder, nil
}

// List retrieves the folders directly below parentID, or the root folders when nil
func (r *FolderRepository) List(teamID uuid.UUID, parentID *uuid.UUID) ([]models.Folder, error) {
	var folders []models.Folder
	query := r.db.Where("team_id = ?", teamID)
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

// Rename renames a folder and rewrites the path of every descendant
func (r *FolderRepository) Rename(folder *models.Folder, newName, newPath string) error {
	oldPath := folder.Path
	return r.db.Transaction(func(tx *gorm.DB) error {
		var descendants []models.Folder
		if err := tx.Where("team_id = ? AND path LIKE ?", folder.TeamID, oldPath+"/%").
			Find(&descendants).Error; err != nil {
			return err
		}
		for _, d := range descendants {
			if err := tx.Model(&models.Folder{}).Where("id = ?", d.ID).
				Update("path", newPath+strings.TrimPrefix(d.Path, oldPath)).Error; err != nil {
				return err
			}
		}
		folder.Name = newName
		folder.Path = newPath
		return tx.Model(&models.Folder{}).Where("id = ?", folder.ID).
			Updates(map[string]interface{}{"name": newName, "path": newPath}).Error
	})
}

// CountChildren counts the direct sub-folders of a folder
func (r *FolderRepository) CountChildren(id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Folder{}).Where("parent_id = ?", id).Count(&count).Error
	return count, err
}

// Delete removes a folder
func (r *FolderRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Folder{}, "id = ?", id).Error
}
