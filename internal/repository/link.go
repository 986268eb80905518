package repository

import (
	"papermark-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LinkRepository handles database operations for shared links
type LinkRepository struct {
	db *gorm.DB
}

// Ensure LinkRepository implements LinkRepositoryInterface
var _ LinkRepositoryInterface = (*LinkRepository)(nil)

// NewLinkRepository creates a new link repository
func NewLinkRepository(db *gorm.DB) *LinkRepository {
	return &LinkRepository{db: db}
}

// Create inserts a new link
func (r *LinkRepository) Create(link *models.Link) error {
	return r.db.Create(link).Error
}

// GetByID retrieves a link by ID
func (r *LinkRepository) GetByID(id uuid.UUID) (*models.Link, error) {
	var link models.Link
	if err := r.db.First(&link, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

// GetByTeam retrieves a link of a team
func (r *LinkRepository) GetByTeam(teamID, id uuid.UUID) (*models.Link, error) {
	var link models.Link
	if err := r.db.First(&link, "team_id = ? AND id = ?", teamID, id).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

// GetByDomainSlug retrieves a link by its domain and slug
func (r *LinkRepository) GetByDomainSlug(domain, slug string) (*models.Link, error) {
	var link models.Link
	if err := r.db.First(&link, "domain_slug = ? AND slug = ?", domain, slug).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

// SlugTaken reports whether another link already uses slug on domain
func (r *LinkRepository) SlugTaken(domain, slug string, excludeID *uuid.UUID) (bool, error) {
	var count int64
	query := r.db.Model(&models.Link{}).Where("domain_slug = ? AND slug = ?", domain, slug)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByDocument retrieves the links of a document, newest first
func (r *LinkRepository) ListByDocument(teamID, documentID uuid.UUID, includeArchived bool) ([]models.Link, error) {
	return r.list(r.db.Where("team_id = ? AND document_id = ?", teamID, documentID), includeArchived)
}

// ListByDataroom retrieves the links of a dataroom, newest first
func (r *LinkRepository) ListByDataroom(teamID, dataroomID uuid.UUID, includeArchived bool) ([]models.Link, error) {
	return r.list(r.db.Where("team_id = ? AND dataroom_id = ?", teamID, dataroomID), includeArchived)
}

func (r *LinkRepository) list(query *gorm.DB, includeArchived bool) ([]models.Link, error) {
	var links []models.Link
	if !includeArchived {
		query = query.Where("is_archived = ?", false)
	}
	if err := query.Order("created_at DESC").Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// Count counts the non-archived links of a team
func (r *LinkRepository) Count(teamID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Link{}).Where("team_id = ? AND is_archived = ?", teamID, false).Count(&count).Error
	return count, err
}

// CountByDataroom counts the non-archived links of a dataroom
func (r *LinkRepository) CountByDataroom(dataroomID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Link{}).Where("dataroom_id = ? AND is_archived = ?", dataroomID, false).Count(&count).Error
	return count, err
}

// Update updates a link
func (r *LinkRepository) Update(link *models.Link) error {
	return r.db.Save(link).Error
}

// SetArchived archives or restores a link
func (r *LinkRepository) SetArchived(id uuid.UUID, archived bool) error {
	result := r.db.Model(&models.Link{}).Where("id = ?", id).Update("is_archived", archived)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ArchiveByDocument archives every link of a document
func (r *LinkRepository) ArchiveByDocument(documentID uuid.UUID) error {
	return r.db.Model(&models.Link{}).Where("document_id = ?", documentID).Update("is_archived", true).Error
}

// ArchiveByDataroom archives every link of a dataroom
func (r *LinkRepository) ArchiveByDataroom(dataroomID uuid.UUID) error {
	return r.db.Model(&models.Link{}).Where("dataroom_id = ?", dataroomID).Update("is_archived", true).Error
}

// Delete removes a link by ID
func (r *LinkRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Link{}, "id = ?", id).Error
}
