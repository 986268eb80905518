package repository

import (
	"strings"
	"time"

	"papermark-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvitationRepository handles database operations for team invitations
type InvitationRepository struct {
	db *gorm.DB
}

// Ensure InvitationRepository implements InvitationRepositoryInterface
var _ InvitationRepositoryInterface = (*InvitationRepository)(nil)

// NewInvitationRepository creates a new invitation repository
func NewInvitationRepository(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{db: db}
}

// Create inserts a new invitation
func (r *InvitationRepository) Create(invitation *models.Invitation) error {
	invitation.Email = strings.ToLower(strings.TrimSpace(invitation.Email))
	return r.db.Create(invitation).Error
}

// GetByToken retrieves an invitation by its secret token
func (r *InvitationRepository) GetByToken(token string) (*models.Invitation, error) {
	var invitation models.Invitation
	if err := r.db.First(&invitation, "token = ?", token).Error; err != nil {
		return nil, err
	}
	return &invitation, nil
}

// GetByTeamAndEmail retrieves the invitation of an email into a team
func (r *InvitationRepository) GetByTeamAndEmail(teamID uuid.UUID, email string) (*models.Invitation, error) {
	var invitation models.Invitation
	err := r.db.First(&invitation, "team_id = ? AND email = ?", teamID, strings.ToLower(strings.TrimSpace(email))).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// CountPending counts unexpired invitations of a team
func (r *InvitationRepository) CountPending(teamID uuid.UUID, now time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Invitation{}).
		Where("team_id = ? AND expires_at > ?", teamID, now).
		Count(&count).Error
	return count, err
}

// Delete removes an invitation by ID
func (r *InvitationRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Invitation{}, "id = ?", id).Error
}

// DeleteExpired removes invitations that expired before now
func (r *InvitationRepository) DeleteExpired(now time.Time) (int64, error) {
	result := r.db.Where("expires_at <= ?", now).Delete(&models.Invitation{})
	return result.RowsAffected, result.Error
}
