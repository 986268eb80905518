package service

import (
	"fmt"
	"strings"

	"papermark-backend/internal/database/models"
	apperrors "papermark-backend/internal/errors"
	"papermark-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// UserService handles the profile of the signed-in user
type UserService struct {
	repo      repository.UserRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	validator *validator.Validate
}

// Ensure UserService implements UserServiceInterface
var _ UserServiceInterface = (*UserService)(nil)

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, teamRepo repository.TeamRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		teamRepo:  teamRepo,
		validator: validator,
	}
}

// UpdateUserRequest represents the profile fields a user may change; nil leaves a field unchanged
type UpdateUserRequest struct {
	Name  *string `json:"name" validate:"omitempty,max=200"`
	Image *string `json:"image" validate:"omitempty,max=2000,http_url"`
}

// UserTeamResponse is a team as seen from one of its members
type UserTeamResponse struct {
	ID   uuid.UUID   `json:"id"`
	Name string      `json:"name"`
	Plan models.Plan `json:"plan"`
	Role models.Role `json:"role"`
}

// UserResponse represents the signed-in user
type UserResponse struct {
	ID            uuid.UUID          `json:"id"`
	Email         string             `json:"email"`
	Name          string             `json:"name"`
	Image         string             `json:"image,omitempty"`
	EmailVerified bool               `json:"email_verified"`
	CreatedAt     string             `json:"created_at"`
	Teams         []UserTeamResponse `json:"teams"`
}

// GetCurrentUser returns the profile of userID with the teams they belong to
func (s *UserService) GetCurrentUser(userID uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, lookup(err, apperrors.ErrUserNotFound, "get user")
	}
	return s.toResponse(user)
}

// UpdateCurrentUser changes the name or image of userID
func (s *UserService) UpdateCurrentUser(userID uuid.UUID, req *UpdateUserRequest) (*UserResponse, error) {
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		req.Name = &name
	}
	if req.Image != nil {
		image := strings.TrimSpace(*req.Image)
		req.Image = &image
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, lookup(err, apperrors.ErrUserNotFound, "get user")
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Image != nil {
		user.Image = *req.Image
	}
	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return s.toResponse(user)
}

func (s *UserService) toResponse(user *models.User) (*UserResponse, error) {
	teams, err := s.teamRepo.ListForUser(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	resp := &UserResponse{
		ID:            user.ID,
		Email:         user.Email,
		Name:          user.Name,
		Image:         user.Image,
		EmailVerified: user.EmailVerifiedAt != nil,
		CreatedAt:     formatTime(user.CreatedAt),
		Teams:         make([]UserTeamResponse, 0, len(teams)),
	}
	for _, team := range teams {
		membership, err := s.teamRepo.GetMembership(team.ID, user.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get membership: %w", err)
		}
		resp.Teams = append(resp.Teams, UserTeamResponse{
			ID:   team.ID,
			Name: team.Name,
			Plan: team.Plan,
			Role: membership.Role,
		})
	}
	return resp, nil
}
