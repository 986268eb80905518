package service

import (
	"errors"
	"fmt"
	"path"

	"papermark-backend/internal/database/models"
	apperrors "papermark-backend/internal/errors"
	"papermark-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FolderService handles business logic for team folders
type FolderService struct {
	repo         repository.FolderRepositoryInterface
	documentRepo repository.DocumentRepositoryInterface
	validator    *validator.Validate
}

// Ensure FolderService implements FolderServiceInterface
var _ FolderServiceInterface = (*FolderService)(nil)

// NewFolderService creates a new folder service
func NewFolderService(repo repository.FolderRepositoryInterface, documentRepo repository.DocumentRepositoryInterface, validator *validator.Validate) *FolderService {
	return &FolderService{
		repo:         repo,
		documentRepo: documentRepo,
		validator:    validator,
	}
}

// CreateFolderRequest represents the request to create a folder
type CreateFolderRequest struct {
	Name     string     `json:"name" validate:"required,min=1,max=255"`
	ParentID *uuid.UUID `json:"parent_id,omitempty"`
}

// RenameFolderRequest represents the request to rename a folder
type RenameFolderRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

// FolderResponse represents a team or dataroom folder
type FolderResponse struct {
	ID        uuid.UUID  `json:"id"`
	ParentID  *uuid.UUID `json:"parent_id,omitempty"`
	Name      string     `json:"name"`
	Path      string     `json:"path"`
	CreatedAt string     `json:"created_at"`
}

// Create creates a folder below an optional parent
func (s *FolderService) Create(teamID uuid.UUID, req *CreateFolderRequest) (*FolderResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	parentPath := ""
	var parentID *uuid.UUID
	if req.ParentID != nil && *req.ParentID != uuid.Nil {
		parent, err := s.repo.GetByID(teamID, *req.ParentID)
		if err != nil {
			return nil, lookup(err, apperrors.ErrFolderNotFound, "get parent folder")
		}
		parentPath = parent.Path
		parentID = &parent.ID
	}

	folderPath := childPath(parentPath, req.Name)
	if err := s.ensurePathFree(teamID, folderPath); err != nil {
		return nil, err
	}

	folder := &models.Folder{
		TeamID:   teamID,
		ParentID: parentID,
		Name:     req.Name,
		Path:     folderPath,
	}
	if err := s.repo.Create(folder); err != nil {
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}
	return toFolderResponse(folder.ID, folder.ParentID, folder.Name, folder.Path, formatTime(folder.CreatedAt)), nil
}

// List returns the folders directly below parentID, or the root folders
func (s *FolderService) List(teamID uuid.UUID, parentID *uuid.UUID) ([]FolderResponse, error) {
	folders, err := s.repo.List(teamID, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}
	responses := make([]FolderResponse, len(folders))
	for i, f := range folders {
		responses[i] = *toFolderResponse(f.ID, f.ParentID, f.Name, f.Path, formatTime(f.CreatedAt))
	}
	return responses, nil
}

// Rename renames a folder and recomputes the path of the folder and its descendants
func (s *FolderService) Rename(teamID, id uuid.UUID, req *RenameFolderRequest) (*FolderResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	folder, err := s.repo.GetByID(teamID, id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrFolderNotFound, "get folder")
	}

	newPath := childPath(parentOf(folder.Path), req.Name)
	if newPath != folder.Path {
		if err := s.ensurePathFree(teamID, newPath); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Rename(folder, req.Name, newPath); err != nil {
		return nil, fmt.Errorf("failed to rename folder: %w", err)
	}
	return toFolderResponse(folder.ID, folder.ParentID, folder.Name, folder.Path, formatTime(folder.CreatedAt)), nil
}

// Delete removes an empty folder; its documents move to the root
func (s *FolderService) Delete(teamID, id uuid.UUID) error {
	if _, err := s.repo.GetByID(teamID, id); err != nil {
		return lookup(err, apperrors.ErrFolderNotFound, "get folder")
	}

	children, err := s.repo.CountChildren(id)
	if err != nil {
		return fmt.Errorf("failed to count sub-folders: %w", err)
	}
	if children > 0 {
		return apperrors.ErrFolderNotEmpty
	}

	if err := s.documentRepo.MoveFolderToRoot(teamID, id); err != nil {
		return fmt.Errorf("failed to move documents to root: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete folder: %w", err)
	}
	return nil
}

func (s *FolderService) ensurePathFree(teamID uuid.UUID, folderPath string) error {
	_, err := s.repo.GetByPath(teamID, folderPath)
	if err == nil {
		return apperrors.ErrFolderExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check folder path: %w", err)
	}
	return nil
}

// parentOf returns the parent path of a folder path, "" for root folders
func parentOf(folderPath string) string {
	parent := path.Dir(folderPath)
	if parent == "/" || parent == "." {
		return ""
	}
	return parent
}

func toFolderResponse(id uuid.UUID, parentID *uuid.UUID, name, folderPath, createdAt string) *FolderResponse {
	return &FolderResponse{
		ID:        id,
		ParentID:  parentID,
		Name:      name,
		Path:      folderPath,
		CreatedAt: createdAt,
	}
}
