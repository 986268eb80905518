package repository

import (
	"time"

	"papermark-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams and their members
type TeamRepository struct {
	db *gorm.DB
}

// Ensure TeamRepository implements TeamRepositoryInterface
var _ TeamRepositoryInterface = (*TeamRepository)(nil)

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// CreateWithOwner creates a team and makes ownerID its first admin
func (r *TeamRepository) CreateWithOwner(team *models.Team, ownerID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}
		return tx.Create(&models.UserTeam{
			UserID: ownerID,
			TeamID: team.ID,
			Role:   models.RoleAdmin,
			Status: models.MemberStatusActive,
		}).Error
	})
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	if err := r.db.First(&team, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByStripeCustomerID retrieves the team billed to a Stripe customer
func (r *TeamRepository) GetByStripeCustomerID(customerID string) (*models.Team, error) {
	var team models.Team
	if err := r.db.First(&team, "stripe_customer_id = ?", customerID).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

// ListForUser retrieves the teams a user actively belongs to
func (r *TeamRepository) ListForUser(userID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.
		Joins("JOIN user_teams ON user_teams.team_id = teams.id").
		Where("user_teams.user_id = ? AND user_teams.status = ?", userID, models.MemberStatusActive).
		Order("teams.created_at ASC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// ListSubscriptionsEndingBetween retrieves paid teams whose subscription ends in [from, to)
func (r *TeamRepository) ListSubscriptionsEndingBetween(from, to time.Time) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.
		Where("plan <> ? AND subscription_ends_at >= ? AND subscription_ends_at < ?", models.PlanFree, from, to).
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// Update updates a team
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// Delete removes a team together with everything it owns
func (r *TeamRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		docIDs := tx.Unscoped().Model(&models.Document{}).Select("id").Where("team_id = ?", id)
		roomIDs := tx.Model(&models.Dataroom{}).Select("id").Where("team_id = ?", id)
		viewIDs := tx.Model(&models.View{}).Select("id").Where("team_id = ?", id)
		hookIDs := tx.Model(&models.Webhook{}).Select("id").Where("team_id = ?", id)

		steps := []func() error{
			func() error { return tx.Where("view_id IN (?)", viewIDs).Delete(&models.PageView{}).Error },
			func() error { return tx.Where("team_id = ?", id).Delete(&models.View{}).Error },
			func() error { return tx.Where("team_id = ?", id).Delete(&models.Viewer{}).Error },
			func() error { return tx.Where("team_id = ?", id).Delete(&models.Link{}).Error },
			func() error { return tx.Where("dataroom_id IN (?)", roomIDs).Delete(&models.DataroomDocument{}).Error },
			func() error { return tx.Where("dataroom_id IN (?)", roomIDs).Delete(&models.DataroomFolder{}).Error },
			func() error { return tx.Where("team_id = ?", id).Delete(&models.Dataroom{}).Error },
			func() error { return tx.Where("document_id IN (?)", docIDs).Delete(&models.DocumentVersion{}).Error },
			func() error { return tx.Unscoped().Where("team_id = ?", id).Delete(&models.Document{}).Error },
			func() error { return tx.Where("team_id = ?", id).Delete(&models.Folder{}).Error },
			func() error { return tx.Where("webhook_id IN (?)", hookIDs).Delete(&models.WebhookDelivery{}).Error },
			func() error { return tx.Where("team_id = ?", id).Delete(&models.Webhook{}).Error },
			func() error { return tx.Where("team_id = ?", id).Delete(&models.Notification{}).Error },
			func() error { return tx.Where("team_id = ?", id).Delete(&models.Invitation{}).Error },
			func() error { return tx.Where("team_id = ?", id).Delete(&models.UserTeam{}).Error },
			func() error { return tx.Delete(&models.Team{}, "id = ?", id).Error },
		}
		for _, step := range steps {
			if err := step(); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetMembership retrieves the membership of a user in a team
func (r *TeamRepository) GetMembership(teamID, userID uuid.UUID) (*models.UserTeam, error) {
	var membership models.UserTeam
	if err := r.db.First(&membership, "team_id = ? AND user_id = ?", teamID, userID).Error; err != nil {
		return nil, err
	}
	return &membership, nil
}

// ListMembers retrieves all memberships of a team with their users
func (r *TeamRepository) ListMembers(teamID uuid.UUID) ([]models.UserTeam, error) {
	var members []models.UserTeam
	err := r.db.Preload("User").
		Where("team_id = ?", teamID).
		Order("created_at ASC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// ListAdmins retrieves the active admins of a team
func (r *TeamRepository) ListAdmins(teamID uuid.UUID) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Joins("JOIN user_teams ON user_teams.user_id = users.id").
		Where("user_teams.team_id = ? AND user_teams.role = ? AND user_teams.status = ?", teamID, models.RoleAdmin, models.MemberStatusActive).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// AddMember creates a membership
func (r *TeamRepository) AddMember(membership *models.UserTeam) error {
	return r.db.Create(membership).Error
}

// UpdateMemberRole changes the role of a member
func (r *TeamRepository) UpdateMemberRole(teamID, userID uuid.UUID, role models.Role) error {
	result := r.db.Model(&models.UserTeam{}).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// RemoveMember deletes a membership
func (r *TeamRepository) RemoveMember(teamID, userID uuid.UUID) error {
	result := r.db.Where("team_id = ? AND user_id = ?", teamID, userID).Delete(&models.UserTeam{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountMembers counts active members of a team
func (r *TeamRepository) CountMembers(teamID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.UserTeam{}).
		Where("team_id = ? AND status = ?", teamID, models.MemberStatusActive).
		Count(&count).Error
	return count, err
}

// CountAdmins counts active admins of a team
func (r *TeamRepository) CountAdmins(teamID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.UserTeam{}).
		Where("team_id = ? AND role = ? AND status = ?", teamID, models.RoleAdmin, models.MemberStatusActive).
		Count(&count).Error
	return count, err
}
