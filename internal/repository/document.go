package repository

import (
	"strings"
	"time"

	"papermark-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentRepository handles database operations for documents
type DocumentRepository struct {
	db *gorm.DB
}

// Ensure DocumentRepository implements DocumentRepositoryInterface
var _ DocumentRepositoryInterface = (*DocumentRepository)(nil)

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// CreateWithVersion inserts a document and its first, primary version
func (r *DocumentRepository) CreateWithVersion(doc *models.Document, version *models.DocumentVersion) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(doc).Error; err != nil {
			return err
		}
		version.DocumentID = doc.ID
		version.IsPrimary = true
		if version.VersionNumber == 0 {
			version.VersionNumber = 1
		}
		return tx.Create(version).Error
	})
}

// GetByID retrieves a non-trashed document of a team
func (r *DocumentRepository) GetByID(teamID, id uuid.UUID) (*models.Document, error) {
	var doc models.Document
	if err := r.db.First(&doc, "team_id = ? AND id = ?", teamID, id).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetByIDAnyTeam retrieves a non-trashed document regardless of team
func (r *DocumentRepository) GetByIDAnyTeam(id uuid.UUID) (*models.Document, error) {
	var doc models.Document
	if err := r.db.First(&doc, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetTrashed retrieves a document of a team that is in the trash
func (r *DocumentRepository) GetTrashed(teamID, id uuid.UUID) (*models.Document, error) {
	var doc models.Document
	err := r.db.Unscoped().
		First(&doc, "team_id = ? AND id = ? AND deleted_at IS NOT NULL", teamID, id).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// List retrieves non-trashed documents of a team with pagination
func (r *DocumentRepository) List(teamID uuid.UUID, filter DocumentFilter, limit, offset int) ([]models.Document, int64, error) {
	var docs []models.Document
	var total int64

	query := r.db.Model(&models.Document{}).Where("team_id = ?", teamID)
	if q := strings.TrimSpace(filter.Query); q != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}
	if filter.FolderID != nil {
		query = query.Where("folder_id = ?", *filter.FolderID)
	} else if filter.RootOnly {
		query = query.Where("folder_id IS NULL")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&docs).Error
	if err != nil {
		return nil, 0, err
	}
	return docs, total, nil
}

// ListByIDs retrieves the non-trashed documents of a team among ids
func (r *DocumentRepository) ListByIDs(teamID uuid.UUID, ids []uuid.UUID) ([]models.Document, error) {
	if len(ids) == 0 {
		return []models.Document{}, nil
	}
	var docs []models.Document
	if err := r.db.Where("team_id = ? AND id IN ?", teamID, ids).Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

// Count counts non-trashed documents of a team
func (r *DocumentRepository) Count(teamID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Document{}).Where("team_id = ?", teamID).Count(&count).Error
	return count, err
}

// Update updates a document
func (r *DocumentRepository) Update(doc *models.Document) error {
	return r.db.Save(doc).Error
}

// MoveToTrash soft-deletes a document and archives its links
func (r *DocumentRepository) MoveToTrash(teamID, id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("team_id = ? AND id = ?", teamID, id).Delete(&models.Document{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&models.Link{}).
			Where("document_id = ?", id).
			Update("is_archived", true).Error
	})
}

// Restore takes a document out of the trash
func (r *DocumentRepository) Restore(teamID, id uuid.UUID) error {
	result := r.db.Unscoped().Model(&models.Document{}).
		Where("team_id = ? AND id = ? AND deleted_at IS NOT NULL", teamID, id).
		Update("deleted_at", nil)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListTrash retrieves trashed documents of a team, most recently trashed first
func (r *DocumentRepository) ListTrash(teamID uuid.UUID) ([]models.Document, error) {
	var docs []models.Document
	err := r.db.Unscoped().
		Where("team_id = ? AND deleted_at IS NOT NULL", teamID).
		Order("deleted_at DESC").
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// ListTrashedBefore retrieves documents of any team trashed before cutoff
func (r *DocumentRepository) ListTrashedBefore(cutoff time.Time, limit int) ([]models.Document, error) {
	var docs []models.Document
	err := r.db.Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Order("deleted_at ASC").
		Limit(limit).
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// Purge hard-deletes a document with its versions, links, views and dataroom entries.
// It returns the storage keys that are no longer referenced.
func (r *DocumentRepository) Purge(id uuid.UUID) ([]string, error) {
	var keys []string
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var doc models.Document
		if err := tx.Unscoped().First(&doc, "id = ?", id).Error; err != nil {
			return err
		}

		var versionFiles []string
		if err := tx.Model(&models.DocumentVersion{}).Where("document_id = ?", id).Pluck("file", &versionFiles).Error; err != nil {
			return err
		}
		keys = uniqueStrings(append(versionFiles, doc.File))

		linkIDs := tx.Model(&models.Link{}).Select("id").Where("document_id = ?", id)
		steps := []func() error{
			func() error { return tx.Where("document_id = ?", id).Delete(&models.PageView{}).Error },
			func() error {
				return tx.Where("document_id = ? OR link_id IN (?)", id, linkIDs).Delete(&models.View{}).Error
			},
			func() error { return tx.Where("document_id = ?", id).Delete(&models.Link{}).Error },
			func() error { return tx.Where("document_id = ?", id).Delete(&models.DataroomDocument{}).Error },
			func() error { return tx.Where("document_id = ?", id).Delete(&models.DocumentVersion{}).Error },
			func() error { return tx.Unscoped().Delete(&models.Document{}, "id = ?", id).Error },
		}
		for _, step := range steps {
			if err := step(); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}

// MoveFolderToRoot detaches every document of a folder
func (r *DocumentRepository) MoveFolderToRoot(teamID, folderID uuid.UUID) error {
	return r.db.Unscoped().Model(&models.Document{}).
		Where("team_id = ? AND folder_id = ?", teamID, folderID).
		Update("folder_id", nil).Error
}

type countRow struct {
	ID    uuid.UUID
	Count int64
}

// CountLinks counts non-archived links per document
func (r *DocumentRepository) CountLinks(documentIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	return r.countBy(&models.Link{}, "document_id", documentIDs, "is_archived = ?", false)
}

// CountViews counts non-archived views per document
func (r *DocumentRepository) CountViews(documentIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	return r.countBy(&models.View{}, "document_id", documentIDs, "is_archived = ?", false)
}

func (r *DocumentRepository) countBy(model interface{}, column string, ids []uuid.UUID, cond string, args ...interface{}) (map[uuid.UUID]int64, error) {
	out := make(map[uuid.UUID]int64, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []countRow
	err := r.db.Model(model).
		Select(column+" AS id, COUNT(*) AS count").
		Where(column+" IN ?", ids).
		Where(cond, args...).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.ID] = row.Count
	}
	return out, nil
}

func uniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
