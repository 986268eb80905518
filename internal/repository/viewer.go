package repository

import (
	"errors"
	"strings"

	"papermark-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ViewerRepository handles database operations for viewers
type ViewerRepository struct {
	db *gorm.DB
}

// Ensure ViewerRepository implements ViewerRepositoryInterface
var _ ViewerRepositoryInterface = (*ViewerRepository)(nil)

// NewViewerRepository creates a new viewer repository
func NewViewerRepository(db *gorm.DB) *ViewerRepository {
	return &ViewerRepository{db: db}
}

// Upsert returns the viewer with email in a team, creating it when missing.
// A viewer once verified stays verified.
func (r *ViewerRepository) Upsert(teamID uuid.UUID, email string, verified bool, dataroomID *uuid.UUID) (*models.Viewer, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var viewer models.Viewer
	err := r.db.First(&viewer, "team_id = ? AND email = ?", teamID, email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		viewer = models.Viewer{TeamID: teamID, Email: email, Verified: verified, DataroomID: dataroomID}
		if err := r.db.Create(&viewer).Error; err != nil {
			return nil, err
		}
		return &viewer, nil
	}
	if err != nil {
		return nil, err
	}

	if verified && !viewer.Verified {
		if err := r.db.Model(&viewer).Update("verified", true).Error; err != nil {
			return nil, err
		}
		viewer.Verified = true
	}
	return &viewer, nil
}

// GetByID retrieves a viewer of a team
func (r *ViewerRepository) GetByID(teamID, id uuid.UUID) (*models.Viewer, error) {
	var viewer models.Viewer
	if err := r.db.First(&viewer, "team_id = ? AND id = ?", teamID, id).Error; err != nil {
		return nil, err
	}
	return &viewer, nil
}

// List retrieves the viewers of a team with pagination, most recent first
func (r *ViewerRepository) List(teamID uuid.UUID, limit, offset int) ([]models.Viewer, int64, error) {
	var viewers []models.Viewer
	var total int64

	query := r.db.Model(&models.Viewer{}).Where("team_id = ?", teamID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&viewers).Error; err != nil {
		return nil, 0, err
	}
	return viewers, total, nil
}
