package service

import (
	"context"
	"errors"
	"fmt"

	"papermark-backend/internal/database/models"
	apperrors "papermark-backend/internal/errors"
	"papermark-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const dataroomPIDLength = 12

// DataroomService handles business logic for datarooms, their folders and documents
type DataroomService struct {
	repo         repository.DataroomRepositoryInterface
	folderRepo   repository.DataroomFolderRepositoryInterface
	documentRepo repository.DocumentRepositoryInterface
	linkRepo     repository.LinkRepositoryInterface
	dispatcher   EventDispatcher
	limits       limitChecker
	validator    *validator.Validate
}

// Ensure DataroomService implements DataroomServiceInterface
var _ DataroomServiceInterface = (*DataroomService)(nil)

// NewDataroomService creates a new dataroom service
func NewDataroomService(repo repository.DataroomRepositoryInterface, folderRepo repository.DataroomFolderRepositoryInterface, documentRepo repository.DocumentRepositoryInterface, linkRepo repository.LinkRepositoryInterface, teamRepo repository.TeamRepositoryInterface, dispatcher EventDispatcher, validator *validator.Validate) *DataroomService {
	return &DataroomService{
		repo:         repo,
		folderRepo:   folderRepo,
		documentRepo: documentRepo,
		linkRepo:     linkRepo,
		dispatcher:   dispatcher,
		limits:       limitChecker{teamRepo: teamRepo},
		validator:    validator,
	}
}

// CreateDataroomRequest represents the request to create a dataroom
type CreateDataroomRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"max=2000"`
}

// UpdateDataroomRequest represents the request to update a dataroom
type UpdateDataroomRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
}

// AddDataroomDocumentsRequest adds team documents to a dataroom
type AddDataroomDocumentsRequest struct {
	DocumentIDs []uuid.UUID `json:"document_ids" validate:"required,min=1,max=100"`
	FolderID    *uuid.UUID  `json:"folder_id,omitempty"`
}

// MoveDataroomDocumentRequest moves a dataroom document. Nil moves it to the root.
type MoveDataroomDocumentRequest struct {
	FolderID *uuid.UUID `json:"folder_id"`
}

// DataroomResponse represents a dataroom
type DataroomResponse struct {
	ID          uuid.UUID `json:"id"`
	PID         string    `json:"pid"`
	TeamID      uuid.UUID `json:"team_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// DataroomDetailResponse adds counters to a dataroom
type DataroomDetailResponse struct {
	DataroomResponse
	DocumentCount int64 `json:"document_count"`
	FolderCount   int64 `json:"folder_count"`
	LinkCount     int64 `json:"link_count"`
}

// DataroomListResponse represents a paginated list of datarooms
type DataroomListResponse struct {
	Datarooms []DataroomResponse `json:"datarooms"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// DataroomDocumentResponse represents a document placed in a dataroom
type DataroomDocumentResponse struct {
	ID         uuid.UUID         `json:"id"`
	DataroomID uuid.UUID         `json:"dataroom_id"`
	DocumentID uuid.UUID         `json:"document_id"`
	FolderID   *uuid.UUID        `json:"folder_id,omitempty"`
	OrderIndex int               `json:"order_index"`
	Document   *DocumentResponse `json:"document,omitempty"`
}

// DataroomContentsResponse lists one level of a dataroom
type DataroomContentsResponse struct {
	FolderID  *uuid.UUID                 `json:"folder_id,omitempty"`
	Folders   []FolderResponse           `json:"folders"`
	Documents []DataroomDocumentResponse `json:"documents"`
}

// Create creates a dataroom with a fresh public id
func (s *DataroomService) Create(ctx context.Context, teamID uuid.UUID, req *CreateDataroomRequest) (*DataroomResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	count, err := s.repo.Count(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to count datarooms: %w", err)
	}
	if err := s.limits.check(teamID, limitDatarooms, count); err != nil {
		return nil, err
	}

	pid, err := randomID(dataroomPIDLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate dataroom id: %w", err)
	}
	dataroom := &models.Dataroom{
		PID:         pid,
		TeamID:      teamID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Create(dataroom); err != nil {
		return nil, fmt.Errorf("failed to create dataroom: %w", err)
	}

	resp := toDataroomResponse(dataroom)
	if s.dispatcher != nil {
		s.dispatcher.Dispatch(ctx, teamID, models.EventDataroomCreated, resp)
	}
	return resp, nil
}

// List returns a page of the team's datarooms
func (s *DataroomService) List(teamID uuid.UUID, page, pageSize int) (*DataroomListResponse, error) {
	page, pageSize, limit, offset := normalizePagination(page, pageSize)

	datarooms, total, err := s.repo.List(teamID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list datarooms: %w", err)
	}

	responses := make([]DataroomResponse, len(datarooms))
	for i := range datarooms {
		responses[i] = *toDataroomResponse(&datarooms[i])
	}
	return &DataroomListResponse{
		Datarooms: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// Get returns a dataroom with its document, folder and link counts
func (s *DataroomService) Get(teamID, id uuid.UUID) (*DataroomDetailResponse, error) {
	dataroom, err := s.get(teamID, id)
	if err != nil {
		return nil, err
	}

	documents, err := s.repo.CountDocuments(id)
	if err != nil {
		return nil, fmt.Errorf("failed to count dataroom documents: %w", err)
	}
	folders, err := s.folderRepo.Count(id)
	if err != nil {
		return nil, fmt.Errorf("failed to count dataroom folders: %w", err)
	}
	links, err := s.linkRepo.CountByDataroom(id)
	if err != nil {
		return nil, fmt.Errorf("failed to count dataroom links: %w", err)
	}

	return &DataroomDetailResponse{
		DataroomResponse: *toDataroomResponse(dataroom),
		DocumentCount:    documents,
		FolderCount:      folders,
		LinkCount:        links,
	}, nil
}

// Update changes the name or description of a dataroom
func (s *DataroomService) Update(teamID, id uuid.UUID, req *UpdateDataroomRequest) (*DataroomResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	dataroom, err := s.get(teamID, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		dataroom.Name = *req.Name
	}
	if req.Description != nil {
		dataroom.Description = *req.Description
	}
	if err := s.repo.Update(dataroom); err != nil {
		return nil, fmt.Errorf("failed to update dataroom: %w", err)
	}
	return toDataroomResponse(dataroom), nil
}

// Delete removes a dataroom with its folders and document placements and archives its links
func (s *DataroomService) Delete(teamID, id uuid.UUID) error {
	if _, err := s.get(teamID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete dataroom: %w", err)
	}
	return nil
}

// AddDocuments places team documents in a dataroom. Documents already present are skipped.
func (s *DataroomService) AddDocuments(teamID, id uuid.UUID, req *AddDataroomDocumentsRequest) ([]DataroomDocumentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if _, err := s.get(teamID, id); err != nil {
		return nil, err
	}
	folderID, err := s.resolveFolder(id, req.FolderID)
	if err != nil {
		return nil, err
	}

	docs, err := s.documentRepo.ListByIDs(teamID, req.DocumentIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load documents: %w", err)
	}
	found := make(map[uuid.UUID]*models.Document, len(docs))
	for i := range docs {
		found[docs[i].ID] = &docs[i]
	}
	for _, docID := range req.DocumentIDs {
		if _, ok := found[docID]; !ok {
			return nil, apperrors.ErrDocumentNotFound
		}
	}

	created, err := s.repo.AddDocuments(id, folderID, req.DocumentIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to add documents: %w", err)
	}

	responses := make([]DataroomDocumentResponse, len(created))
	for i := range created {
		created[i].Document = found[created[i].DocumentID]
		responses[i] = toDataroomDocumentResponse(&created[i])
	}
	return responses, nil
}

// RemoveDocument removes a document placement from a dataroom
func (s *DataroomService) RemoveDocument(teamID, id, dataroomDocumentID uuid.UUID) error {
	if _, err := s.get(teamID, id); err != nil {
		return err
	}
	if _, err := s.repo.GetDocument(id, dataroomDocumentID); err != nil {
		return lookup(err, apperrors.ErrDataroomDocumentNotFound, "get dataroom document")
	}
	if err := s.repo.RemoveDocument(dataroomDocumentID); err != nil {
		return fmt.Errorf("failed to remove dataroom document: %w", err)
	}
	return nil
}

// MoveDocument moves a dataroom document to a folder or to the root
func (s *DataroomService) MoveDocument(teamID, id, dataroomDocumentID uuid.UUID, req *MoveDataroomDocumentRequest) (*DataroomDocumentResponse, error) {
	if _, err := s.get(teamID, id); err != nil {
		return nil, err
	}
	entry, err := s.repo.GetDocument(id, dataroomDocumentID)
	if err != nil {
		return nil, lookup(err, apperrors.ErrDataroomDocumentNotFound, "get dataroom document")
	}
	folderID, err := s.resolveFolder(id, req.FolderID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.MoveDocument(dataroomDocumentID, folderID); err != nil {
		return nil, fmt.Errorf("failed to move dataroom document: %w", err)
	}
	entry.FolderID = folderID
	resp := toDataroomDocumentResponse(entry)
	return &resp, nil
}

// CreateFolder creates a folder inside a dataroom
func (s *DataroomService) CreateFolder(teamID, id uuid.UUID, req *CreateFolderRequest) (*FolderResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if _, err := s.get(teamID, id); err != nil {
		return nil, err
	}

	parentPath := ""
	var parentID *uuid.UUID
	if req.ParentID != nil && *req.ParentID != uuid.Nil {
		parent, err := s.folderRepo.GetByID(id, *req.ParentID)
		if err != nil {
			return nil, lookup(err, apperrors.ErrDataroomFolderNotFound, "get parent folder")
		}
		parentPath = parent.Path
		parentID = &parent.ID
	}

	folderPath := childPath(parentPath, req.Name)
	if err := s.ensurePathFree(id, folderPath); err != nil {
		return nil, err
	}

	folder := &models.DataroomFolder{
		DataroomID: id,
		ParentID:   parentID,
		Name:       req.Name,
		Path:       folderPath,
	}
	if err := s.folderRepo.Create(folder); err != nil {
		return nil, fmt.Errorf("failed to create dataroom folder: %w", err)
	}
	return toFolderResponse(folder.ID, folder.ParentID, folder.Name, folder.Path, formatTime(folder.CreatedAt)), nil
}

// ListFolders returns the folders of a dataroom directly below parentID
func (s *DataroomService) ListFolders(teamID, id uuid.UUID, parentID *uuid.UUID) ([]FolderResponse, error) {
	if _, err := s.get(teamID, id); err != nil {
		return nil, err
	}
	return s.listFolders(id, parentID)
}

func (s *DataroomService) listFolders(id uuid.UUID, parentID *uuid.UUID) ([]FolderResponse, error) {
	folders, err := s.folderRepo.List(id, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list dataroom folders: %w", err)
	}
	responses := make([]FolderResponse, len(folders))
	for i, f := range folders {
		responses[i] = *toFolderResponse(f.ID, f.ParentID, f.Name, f.Path, formatTime(f.CreatedAt))
	}
	return responses, nil
}

// RenameFolder renames a dataroom folder and rewrites the paths below it
func (s *DataroomService) RenameFolder(teamID, id, folderID uuid.UUID, req *RenameFolderRequest) (*FolderResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if _, err := s.get(teamID, id); err != nil {
		return nil, err
	}

	folder, err := s.folderRepo.GetByID(id, folderID)
	if err != nil {
		return nil, lookup(err, apperrors.ErrDataroomFolderNotFound, "get dataroom folder")
	}

	newPath := childPath(parentOf(folder.Path), req.Name)
	if newPath != folder.Path {
		if err := s.ensurePathFree(id, newPath); err != nil {
			return nil, err
		}
	}
	if err := s.folderRepo.Rename(folder, req.Name, newPath); err != nil {
		return nil, fmt.Errorf("failed to rename dataroom folder: %w", err)
	}
	return toFolderResponse(folder.ID, folder.ParentID, folder.Name, folder.Path, formatTime(folder.CreatedAt)), nil
}

// DeleteFolder deletes a dataroom folder with its sub-folders; their documents move to the root
func (s *DataroomService) DeleteFolder(teamID, id, folderID uuid.UUID) error {
	if _, err := s.get(teamID, id); err != nil {
		return err
	}
	folder, err := s.folderRepo.GetByID(id, folderID)
	if err != nil {
		return lookup(err, apperrors.ErrDataroomFolderNotFound, "get dataroom folder")
	}
	if err := s.folderRepo.DeleteTree(folder); err != nil {
		return lookup(err, apperrors.ErrDataroomFolderNotFound, "delete dataroom folder")
	}
	return nil
}

// ListContents returns the folders and documents at one level of a dataroom
func (s *DataroomService) ListContents(teamID, id uuid.UUID, folderID *uuid.UUID) (*DataroomContentsResponse, error) {
	if _, err := s.get(teamID, id); err != nil {
		return nil, err
	}
	if folderID != nil {
		if _, err := s.folderRepo.GetByID(id, *folderID); err != nil {
			return nil, lookup(err, apperrors.ErrDataroomFolderNotFound, "get dataroom folder")
		}
	}

	folders, err := s.listFolders(id, folderID)
	if err != nil {
		return nil, err
	}
	entries, err := s.repo.ListDocuments(id, folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list dataroom documents: %w", err)
	}

	documents := make([]DataroomDocumentResponse, 0, len(entries))
	for i := range entries {
		// documents in the trash stay placed but are hidden
		if entries[i].Document == nil {
			continue
		}
		documents = append(documents, toDataroomDocumentResponse(&entries[i]))
	}
	return &DataroomContentsResponse{
		FolderID:  folderID,
		Folders:   folders,
		Documents: documents,
	}, nil
}

func (s *DataroomService) get(teamID, id uuid.UUID) (*models.Dataroom, error) {
	dataroom, err := s.repo.GetByID(teamID, id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrDataroomNotFound, "get dataroom")
	}
	return dataroom, nil
}

// resolveFolder validates a target folder of a dataroom; nil or the zero id mean the root
func (s *DataroomService) resolveFolder(dataroomID uuid.UUID, folderID *uuid.UUID) (*uuid.UUID, error) {
	if folderID == nil || *folderID == uuid.Nil {
		return nil, nil
	}
	folder, err := s.folderRepo.GetByID(dataroomID, *folderID)
	if err != nil {
		return nil, lookup(err, apperrors.ErrDataroomFolderNotFound, "get dataroom folder")
	}
	return &folder.ID, nil
}

func (s *DataroomService) ensurePathFree(dataroomID uuid.UUID, folderPath string) error {
	_, err := s.folderRepo.GetByPath(dataroomID, folderPath)
	if err == nil {
		return apperrors.ErrDataroomFolderExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check dataroom folder path: %w", err)
	}
	return nil
}

func toDataroomResponse(dataroom *models.Dataroom) *DataroomResponse {
	return &DataroomResponse{
		ID:          dataroom.ID,
		PID:         dataroom.PID,
		TeamID:      dataroom.TeamID,
		Name:        dataroom.Name,
		Description: dataroom.Description,
		CreatedAt:   formatTime(dataroom.CreatedAt),
		UpdatedAt:   formatTime(dataroom.UpdatedAt),
	}
}

func toDataroomDocumentResponse(entry *models.DataroomDocument) DataroomDocumentResponse {
	resp := DataroomDocumentResponse{
		ID:         entry.ID,
		DataroomID: entry.DataroomID,
		DocumentID: entry.DocumentID,
		FolderID:   entry.FolderID,
		OrderIndex: entry.OrderIndex,
	}
	if entry.Document != nil {
		resp.Document = toDocumentResponse(entry.Document)
	}
	return resp
}
