package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"papermark-backend/internal/database/models"
	"papermark-backend/internal/email"
	apperrors "papermark-backend/internal/errors"
	"papermark-backend/internal/logger"
	"papermark-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvitationTTL is how long an invitation link stays valid
const InvitationTTL = 7 * 24 * time.Hour

// TeamService handles business logic for teams, memberships and invitations
type TeamService struct {
	repo           repository.TeamRepositoryInterface
	userRepo       repository.UserRepositoryInterface
	invitationRepo repository.InvitationRepositoryInterface
	notifier       NotificationServiceInterface
	mailer         email.Sender
	baseURL        string
	guard          teamGuard
	limits         limitChecker
	validator      *validator.Validate
}

// Ensure TeamService implements TeamServiceInterface
var _ TeamServiceInterface = (*TeamService)(nil)

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, userRepo repository.UserRepositoryInterface, invitationRepo repository.InvitationRepositoryInterface, notifier NotificationServiceInterface, mailer email.Sender, baseURL string, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:           repo,
		userRepo:       userRepo,
		invitationRepo: invitationRepo,
		notifier:       notifier,
		mailer:         mailer,
		baseURL:        baseURL,
		guard:          teamGuard{teamRepo: repo},
		limits:         limitChecker{teamRepo: repo},
		validator:      validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// UpdateTeamRequest represents the request to rename a team
type UpdateTeamRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// ChangeRoleRequest represents the request to change a member's role
type ChangeRoleRequest struct {
	Role models.Role `json:"role" validate:"required,oneof=ADMIN MANAGER MEMBER"`
}

// InviteMemberRequest represents the request to invite an email into a team
type InviteMemberRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
	Note  string `json:"note,omitempty" validate:"max=1000"`
}

// AcceptInvitationRequest represents the request to accept an invitation
type AcceptInvitationRequest struct {
	Token string `json:"token" validate:"required"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID                 uuid.UUID         `json:"id"`
	Name               string            `json:"name"`
	Plan               models.Plan       `json:"plan"`
	Limits             models.PlanLimits `json:"limits"`
	SubscriptionEndsAt *string           `json:"subscription_ends_at,omitempty"`
	CreatedAt          string            `json:"created_at"`
	UpdatedAt          string            `json:"updated_at"`
}

// MemberResponse represents a member of a team
type MemberResponse struct {
	UserID   uuid.UUID           `json:"user_id"`
	Email    string              `json:"email"`
	Name     string              `json:"name"`
	Role     models.Role         `json:"role"`
	Status   models.MemberStatus `json:"status"`
	JoinedAt string              `json:"joined_at"`
}

// InvitationResponse represents a pending invitation
type InvitationResponse struct {
	ID        uuid.UUID `json:"id"`
	TeamID    uuid.UUID `json:"team_id"`
	Email     string    `json:"email"`
	ExpiresAt string    `json:"expires_at"`
}

// Authorize returns the active membership of a user, restricted to roles when given
func (s *TeamService) Authorize(teamID, userID uuid.UUID, roles ...models.Role) (*models.UserTeam, error) {
	return s.guard.require(teamID, userID, roles...)
}

// CreateTeam creates a team on the free plan with the creator as its admin
func (s *TeamService) CreateTeam(userID uuid.UUID, req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team := &models.Team{
		Name: req.Name,
		Plan: models.PlanFree,
	}
	if err := s.repo.CreateWithOwner(team, userID); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return s.toResponse(team), nil
}

// ListTeams returns the teams a user is an active member of
func (s *TeamService) ListTeams(userID uuid.UUID) ([]TeamResponse, error) {
	teams, err := s.repo.ListForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		responses[i] = *s.toResponse(&teams[i])
	}
	return responses, nil
}

// GetTeam retrieves a team by ID
func (s *TeamService) GetTeam(teamID uuid.UUID) (*TeamResponse, error) {
	team, err := s.repo.GetByID(teamID)
	if err != nil {
		return nil, lookup(err, apperrors.ErrTeamNotFound, "get team")
	}
	return s.toResponse(team), nil
}

// UpdateTeam renames a team
func (s *TeamService) UpdateTeam(teamID, userID uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if _, err := s.guard.require(teamID, userID, models.RoleAdmin, models.RoleManager); err != nil {
		return nil, err
	}

	team, err := s.repo.GetByID(teamID)
	if err != nil {
		return nil, lookup(err, apperrors.ErrTeamNotFound, "get team")
	}
	team.Name = req.Name
	if err := s.repo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	return s.toResponse(team), nil
}

// DeleteTeam deletes a team and its content. Teams with a running subscription cannot be deleted.
func (s *TeamService) DeleteTeam(teamID, userID uuid.UUID) error {
	if _, err := s.guard.require(teamID, userID, models.RoleAdmin); err != nil {
		return err
	}

	team, err := s.repo.GetByID(teamID)
	if err != nil {
		return lookup(err, apperrors.ErrTeamNotFound, "get team")
	}
	if team.StripeSubscriptionID != nil && *team.StripeSubscriptionID != "" {
		return apperrors.ErrActiveSubscription
	}

	if err := s.repo.Delete(teamID); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

// ListMembers returns the members of a team with their user details
func (s *TeamService) ListMembers(teamID uuid.UUID) ([]MemberResponse, error) {
	members, err := s.repo.ListMembers(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	responses := make([]MemberResponse, len(members))
	for i := range members {
		responses[i] = toMemberResponse(&members[i])
	}
	return responses, nil
}

// ChangeMemberRole changes the role of a member. The last admin cannot be demoted.
func (s *TeamService) ChangeMemberRole(teamID, actorID, memberID uuid.UUID, req *ChangeRoleRequest) (*MemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if _, err := s.guard.require(teamID, actorID, models.RoleAdmin); err != nil {
		return nil, err
	}

	membership, err := s.repo.GetMembership(teamID, memberID)
	if err != nil {
		return nil, lookup(err, apperrors.ErrMemberNotFound, "get member")
	}

	if membership.Role == models.RoleAdmin && req.Role != models.RoleAdmin {
		if err := s.ensureAnotherAdmin(teamID); err != nil {
			return nil, err
		}
	}

	if err := s.repo.UpdateMemberRole(teamID, memberID, req.Role); err != nil {
		return nil, lookup(err, apperrors.ErrMemberNotFound, "update member role")
	}
	membership.Role = req.Role

	if membership.User == nil {
		if user, err := s.userRepo.GetByID(memberID); err == nil {
			membership.User = user
		}
	}
	resp := toMemberResponse(membership)
	return &resp, nil
}

// RemoveMember removes a member from a team. Admins remove anyone; members may only leave.
func (s *TeamService) RemoveMember(teamID, actorID, memberID uuid.UUID) error {
	if actorID == memberID {
		if _, err := s.guard.require(teamID, actorID); err != nil {
			return err
		}
	} else if _, err := s.guard.require(teamID, actorID, models.RoleAdmin); err != nil {
		return err
	}

	membership, err := s.repo.GetMembership(teamID, memberID)
	if err != nil {
		return lookup(err, apperrors.ErrMemberNotFound, "get member")
	}
	if membership.Role == models.RoleAdmin {
		if err := s.ensureAnotherAdmin(teamID); err != nil {
			return err
		}
	}

	if err := s.repo.RemoveMember(teamID, memberID); err != nil {
		return lookup(err, apperrors.ErrMemberNotFound, "remove member")
	}
	return nil
}

func (s *TeamService) ensureAnotherAdmin(teamID uuid.UUID) error {
	admins, err := s.repo.CountAdmins(teamID)
	if err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if admins <= 1 {
		return apperrors.ErrLastAdmin
	}
	return nil
}

// InviteMember creates an invitation and emails its accept link
func (s *TeamService) InviteMember(ctx context.Context, teamID, actorID uuid.UUID, req *InviteMemberRequest) (*InvitationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	actor, err := s.guard.require(teamID, actorID, models.RoleAdmin, models.RoleManager)
	if err != nil {
		return nil, err
	}

	team, err := s.repo.GetByID(teamID)
	if err != nil {
		return nil, lookup(err, apperrors.ErrTeamNotFound, "get team")
	}

	inviteEmail := normalizeEmail(req.Email)
	now := time.Now()

	existing, err := s.invitationRepo.GetByTeamAndEmail(teamID, inviteEmail)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing invitation: %w", err)
	}
	if existing != nil {
		if existing.ExpiresAt.After(now) {
			return nil, apperrors.ErrInvitationExists
		}
		if err := s.invitationRepo.Delete(existing.ID); err != nil {
			return nil, fmt.Errorf("failed to delete expired invitation: %w", err)
		}
	}

	if user, err := s.userRepo.GetByEmail(inviteEmail); err == nil {
		if _, err := s.repo.GetMembership(teamID, user.ID); err == nil {
			return nil, apperrors.ErrMemberExists
		}
	}

	members, err := s.repo.CountMembers(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}
	pending, err := s.invitationRepo.CountPending(teamID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to count invitations: %w", err)
	}
	if err := s.limits.check(teamID, limitUsers, members+pending); err != nil {
		return nil, err
	}

	token, err := randomToken(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate invitation token: %w", err)
	}
	invitation := &models.Invitation{
		TeamID:    teamID,
		Email:     inviteEmail,
		Token:     token,
		InvitedBy: actorID,
		ExpiresAt: now.Add(InvitationTTL),
	}
	if err := s.invitationRepo.Create(invitation); err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	inviter := ""
	if user, err := s.userRepo.GetByID(actor.UserID); err == nil {
		inviter = user.Name
		if inviter == "" {
			inviter = user.Email
		}
	}
	acceptURL := fmt.Sprintf("%s/invitations/accept?token=%s", s.baseURL, token)
	s.sendInvitation(ctx, inviteEmail, team, inviter, acceptURL, req.Note)

	return &InvitationResponse{
		ID:        invitation.ID,
		TeamID:    teamID,
		Email:     invitation.Email,
		ExpiresAt: formatTime(invitation.ExpiresAt),
	}, nil
}

func (s *TeamService) sendInvitation(ctx context.Context, to string, team *models.Team, inviter, acceptURL, note string) {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id": team.ID.String(),
		"invitee": to,
	})

	msg, err := email.Invitation(to, team.Name, inviter, acceptURL, note)
	if err != nil {
		log.WithError(err).Warn("Failed to render invitation email")
		return
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		log.WithError(err).Warn("Failed to send invitation email")
	}

	if s.notifier == nil {
		return
	}
	if user, err := s.userRepo.GetByEmail(to); err == nil {
		message := fmt.Sprintf("You have been invited to join %s", team.Name)
		if _, err := s.notifier.Notify(ctx, team.ID, user.ID, models.NotificationTypeInvitation, message, NotificationRefs{}); err != nil {
			log.WithError(err).Warn("Failed to create invitation notification")
		}
	}
}

// AcceptInvitation turns a valid invitation into a membership of the accepting user
func (s *TeamService) AcceptInvitation(userID uuid.UUID, req *AcceptInvitationRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	invitation, err := s.invitationRepo.GetByToken(req.Token)
	if err != nil {
		return nil, lookup(err, apperrors.ErrInvitationNotFound, "get invitation")
	}
	if !invitation.ExpiresAt.After(time.Now()) {
		return nil, apperrors.ErrInvitationExpired
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, lookup(err, apperrors.ErrUserNotFound, "get user")
	}
	if normalizeEmail(user.Email) != invitation.Email {
		return nil, apperrors.ErrInvitationEmailMismatch
	}

	if _, err := s.repo.GetMembership(invitation.TeamID, userID); err == nil {
		return nil, apperrors.ErrMemberExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}

	membership := &models.UserTeam{
		UserID: userID,
		TeamID: invitation.TeamID,
		Role:   models.RoleMember,
		Status: models.MemberStatusActive,
	}
	if err := s.repo.AddMember(membership); err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}
	if err := s.invitationRepo.Delete(invitation.ID); err != nil {
		return nil, fmt.Errorf("failed to delete invitation: %w", err)
	}

	return s.GetTeam(invitation.TeamID)
}

// CleanupExpiredInvitations removes invitations past their expiry
func (s *TeamService) CleanupExpiredInvitations() (int64, error) {
	removed, err := s.invitationRepo.DeleteExpired(time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired invitations: %w", err)
	}
	return removed, nil
}

func (s *TeamService) toResponse(team *models.Team) *TeamResponse {
	return &TeamResponse{
		ID:                 team.ID,
		Name:               team.Name,
		Plan:               team.Plan,
		Limits:             LimitsFor(team),
		SubscriptionEndsAt: formatTimePtr(team.SubscriptionEndsAt),
		CreatedAt:          formatTime(team.CreatedAt),
		UpdatedAt:          formatTime(team.UpdatedAt),
	}
}

func toMemberResponse(membership *models.UserTeam) MemberResponse {
	resp := MemberResponse{
		UserID:   membership.UserID,
		Role:     membership.Role,
		Status:   membership.Status,
		JoinedAt: formatTime(membership.CreatedAt),
	}
	if membership.User != nil {
		resp.Email = membership.User.Email
		resp.Name = membership.User.Name
	}
	return resp
}
