package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"
	"time"

	"papermark-backend/internal/database/models"
	apperrors "papermark-backend/internal/errors"
	"papermark-backend/internal/logger"
	"papermark-backend/internal/pdf"
	"papermark-backend/internal/repository"
	"papermark-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// DocumentOptions carries the tunables of the document service
type DocumentOptions struct {
	PresignTTL     time.Duration
	MaxUploadSize  int64
	TrashRetention time.Duration
}

// DocumentService handles business logic for documents, versions and the trash
type DocumentService struct {
	repo        repository.DocumentRepositoryInterface
	versionRepo repository.DocumentVersionRepositoryInterface
	folderRepo  repository.FolderRepositoryInterface
	storage     storage.Storage
	pdf         pdf.Processor
	dispatcher  EventDispatcher
	limits      limitChecker
	options     DocumentOptions
	validator   *validator.Validate
}

// Ensure DocumentService implements DocumentServiceInterface
var _ DocumentServiceInterface = (*DocumentService)(nil)

// NewDocumentService creates a new document service
func NewDocumentService(repo repository.DocumentRepositoryInterface, versionRepo repository.DocumentVersionRepositoryInterface, folderRepo repository.FolderRepositoryInterface, teamRepo repository.TeamRepositoryInterface, store storage.Storage, processor pdf.Processor, dispatcher EventDispatcher, options DocumentOptions, validator *validator.Validate) *DocumentService {
	if options.PresignTTL <= 0 {
		options.PresignTTL = time.Hour
	}
	if options.TrashRetention <= 0 {
		options.TrashRetention = 30 * 24 * time.Hour
	}
	return &DocumentService{
		repo:        repo,
		versionRepo: versionRepo,
		folderRepo:  folderRepo,
		storage:     store,
		pdf:         processor,
		dispatcher:  dispatcher,
		limits:      limitChecker{teamRepo: teamRepo},
		options:     options,
		validator:   validator,
	}
}

// UploadFile is a file received in a multipart request
type UploadFile struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.ReadSeeker
}

// UploadDocumentRequest holds the optional form fields of an upload
type UploadDocumentRequest struct {
	Name     string     `form:"name" validate:"max=255"`
	FolderID *uuid.UUID `form:"-"`
}

// PresignUploadRequest represents the request for a direct upload URL
type PresignUploadRequest struct {
	Filename    string `json:"filename" validate:"required,max=255"`
	ContentType string `json:"content_type" validate:"required,max=255"`
}

// PresignUploadResponse holds a presigned PUT URL and the key to register afterwards
type PresignUploadResponse struct {
	URL       string `json:"url"`
	Key       string `json:"key"`
	ExpiresAt string `json:"expires_at"`
}

// RegisterDocumentRequest registers an object uploaded through a presigned URL
type RegisterDocumentRequest struct {
	Key         string     `json:"key" validate:"required,max=1024"`
	Name        string     `json:"name" validate:"required,max=255"`
	ContentType string     `json:"content_type" validate:"required,max=255"`
	Size        int64      `json:"size" validate:"min=0"`
	NumPages    *int       `json:"num_pages,omitempty" validate:"omitempty,min=1"`
	FolderID    *uuid.UUID `json:"folder_id,omitempty"`
}

// RegisterVersionRequest registers an uploaded object as a new version
type RegisterVersionRequest struct {
	Key         string `json:"key" validate:"required,max=1024"`
	ContentType string `json:"content_type" validate:"required,max=255"`
	Size        int64  `json:"size" validate:"min=0"`
	NumPages    *int   `json:"num_pages,omitempty" validate:"omitempty,min=1"`
}

// ListDocumentsQuery narrows a document listing
type ListDocumentsQuery struct {
	Query    string
	FolderID *uuid.UUID
	RootOnly bool
	Page     int
	PageSize int
}

// UpdateDocumentRequest renames or moves a document. A zero FolderID moves it to the root.
type UpdateDocumentRequest struct {
	Name     *string    `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	FolderID *uuid.UUID `json:"folder_id,omitempty"`
}

// DocumentResponse represents a document
type DocumentResponse struct {
	ID          uuid.UUID           `json:"id"`
	TeamID      uuid.UUID           `json:"team_id"`
	OwnerID     *uuid.UUID          `json:"owner_id,omitempty"`
	FolderID    *uuid.UUID          `json:"folder_id,omitempty"`
	Name        string              `json:"name"`
	Type        models.DocumentType `json:"type"`
	ContentType string              `json:"content_type"`
	StorageType models.StorageType  `json:"storage_type"`
	NumPages    int                 `json:"num_pages"`
	FileSize    int64               `json:"file_size"`
	LinkCount   int64               `json:"link_count"`
	ViewCount   int64               `json:"view_count"`
	CreatedAt   string              `json:"created_at"`
	UpdatedAt   string              `json:"updated_at"`
}

// DocumentDetailResponse adds version details to a document
type DocumentDetailResponse struct {
	DocumentResponse
	PrimaryVersion *VersionResponse `json:"primary_version,omitempty"`
	VersionCount   int              `json:"version_count"`
}

// DocumentListResponse represents a paginated list of documents
type DocumentListResponse struct {
	Documents []DocumentResponse `json:"documents"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// TrashItemResponse represents a trashed document
type TrashItemResponse struct {
	DocumentResponse
	DeletedAt  string `json:"deleted_at"`
	PurgeAfter string `json:"purge_after"`
}

// VersionResponse represents a document version
type VersionResponse struct {
	ID            uuid.UUID           `json:"id"`
	DocumentID    uuid.UUID           `json:"document_id"`
	VersionNumber int                 `json:"version_number"`
	Type          models.DocumentType `json:"type"`
	ContentType   string              `json:"content_type"`
	NumPages      int                 `json:"num_pages"`
	FileSize      int64               `json:"file_size"`
	IsPrimary     bool                `json:"is_primary"`
	CreatedAt     string              `json:"created_at"`
}

// DownloadURLResponse holds a presigned GET URL
type DownloadURLResponse struct {
	URL       string `json:"url"`
	ExpiresAt string `json:"expires_at"`
}

// storedFile describes an object once it is in storage
type storedFile struct {
	key         string
	docType     models.DocumentType
	contentType string
	size        int64
	numPages    int
}

// Upload stores a file and creates a document with its first version
func (s *DocumentService) Upload(ctx context.Context, teamID, userID uuid.UUID, file *UploadFile, req *UploadDocumentRequest) (*DocumentResponse, error) {
	if req == nil {
		req = &UploadDocumentRequest{}
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := s.checkDocumentLimit(teamID); err != nil {
		return nil, err
	}
	if err := s.checkFolder(teamID, req.FolderID); err != nil {
		return nil, err
	}

	stored, err := s.store(ctx, teamID, file)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = path.Base(file.Filename)
	}
	return s.create(ctx, teamID, userID, name, req.FolderID, stored)
}

// PresignUpload returns a presigned PUT URL for a direct upload under the team prefix
func (s *DocumentService) PresignUpload(ctx context.Context, teamID uuid.UUID, req *PresignUploadRequest) (*PresignUploadResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if _, err := detectType(req.ContentType, req.Filename); err != nil {
		return nil, err
	}

	key := storage.ObjectKey(teamID, req.Filename)
	url, err := s.storage.PresignPut(ctx, key, req.ContentType, s.options.PresignTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload: %w", err)
	}
	return &PresignUploadResponse{
		URL:       url,
		Key:       key,
		ExpiresAt: formatTime(time.Now().Add(s.options.PresignTTL)),
	}, nil
}

// Register creates a document from an object uploaded through PresignUpload
func (s *DocumentService) Register(ctx context.Context, teamID, userID uuid.UUID, req *RegisterDocumentRequest) (*DocumentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !storage.BelongsToTeam(teamID, req.Key) {
		return nil, apperrors.ErrStorageKeyOutsideTeam
	}
	if err := s.checkDocumentLimit(teamID); err != nil {
		return nil, err
	}
	if err := s.checkFolder(teamID, req.FolderID); err != nil {
		return nil, err
	}

	stored, err := s.registered(ctx, req.Key, req.ContentType, req.Size, req.NumPages)
	if err != nil {
		return nil, err
	}
	return s.create(ctx, teamID, userID, req.Name, req.FolderID, stored)
}

func (s *DocumentService) create(ctx context.Context, teamID, userID uuid.UUID, name string, folderID *uuid.UUID, stored *storedFile) (*DocumentResponse, error) {
	owner := userID
	if folderID != nil && *folderID == uuid.Nil {
		folderID = nil
	}
	doc := &models.Document{
		TeamID:      teamID,
		OwnerID:     &owner,
		FolderID:    folderID,
		Name:        name,
		Type:        stored.docType,
		ContentType: stored.contentType,
		StorageType: s.storage.Type(),
		File:        stored.key,
		NumPages:    stored.numPages,
		FileSize:    stored.size,
	}
	version := &models.DocumentVersion{
		VersionNumber: 1,
		File:          stored.key,
		Type:          stored.docType,
		ContentType:   stored.contentType,
		StorageType:   s.storage.Type(),
		NumPages:      stored.numPages,
		FileSize:      stored.size,
		IsPrimary:     true,
	}
	if err := s.repo.CreateWithVersion(doc, version); err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	resp := toDocumentResponse(doc)
	if s.dispatcher != nil {
		s.dispatcher.Dispatch(ctx, teamID, models.EventDocumentCreated, resp)
	}
	return resp, nil
}

// store uploads a multipart file and derives its type and page count
func (s *DocumentService) store(ctx context.Context, teamID uuid.UUID, file *UploadFile) (*storedFile, error) {
	if file == nil || file.Content == nil {
		return nil, apperrors.NewValidationError("file", "file is required")
	}
	if s.options.MaxUploadSize > 0 && file.Size > s.options.MaxUploadSize {
		return nil, apperrors.NewValidationError("file", fmt.Sprintf("file exceeds %d bytes", s.options.MaxUploadSize))
	}

	docType, err := detectType(file.ContentType, file.Filename)
	if err != nil {
		return nil, err
	}

	numPages := 1
	if docType == models.DocumentTypePDF {
		numPages, err = s.pdf.PageCount(file.Content)
		if err != nil {
			return nil, apperrors.NewValidationError("file", "file is not a readable PDF")
		}
		if _, err := file.Content.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("failed to rewind upload: %w", err)
		}
	}

	key := storage.ObjectKey(teamID, file.Filename)
	if err := s.storage.Upload(ctx, key, file.Content, file.Size, file.ContentType); err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	return &storedFile{
		key:         key,
		docType:     docType,
		contentType: file.ContentType,
		size:        file.Size,
		numPages:    numPages,
	}, nil
}

// registered describes an object that is already in storage, counting PDF pages when not given
func (s *DocumentService) registered(ctx context.Context, key, contentType string, size int64, numPages *int) (*storedFile, error) {
	docType, err := detectType(contentType, key)
	if err != nil {
		return nil, err
	}

	pages := 1
	switch {
	case numPages != nil:
		pages = *numPages
	case docType == models.DocumentTypePDF:
		pages, err = s.countStoredPages(ctx, key)
		if err != nil {
			return nil, err
		}
	}

	return &storedFile{
		key:         key,
		docType:     docType,
		contentType: contentType,
		size:        size,
		numPages:    pages,
	}, nil
}

func (s *DocumentService) countStoredPages(ctx context.Context, key string) (int, error) {
	body, err := s.storage.Download(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	defer body.Close()

	reader := io.Reader(body)
	if s.options.MaxUploadSize > 0 {
		reader = io.LimitReader(body, s.options.MaxUploadSize)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return 0, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	pages, err := s.pdf.PageCount(bytes.NewReader(data))
	if err != nil {
		return 0, apperrors.NewValidationError("key", "object is not a readable PDF")
	}
	return pages, nil
}

func (s *DocumentService) checkDocumentLimit(teamID uuid.UUID) error {
	count, err := s.repo.Count(teamID)
	if err != nil {
		return fmt.Errorf("failed to count documents: %w", err)
	}
	return s.limits.check(teamID, limitDocuments, count)
}

func (s *DocumentService) checkFolder(teamID uuid.UUID, folderID *uuid.UUID) error {
	if folderID == nil || *folderID == uuid.Nil {
		return nil
	}
	if _, err := s.folderRepo.GetByID(teamID, *folderID); err != nil {
		return lookup(err, apperrors.ErrFolderNotFound, "get folder")
	}
	return nil
}

// List returns the team's documents that are not in the trash
func (s *DocumentService) List(teamID uuid.UUID, query *ListDocumentsQuery) (*DocumentListResponse, error) {
	if query == nil {
		query = &ListDocumentsQuery{}
	}
	page, pageSize, limit, offset := normalizePagination(query.Page, query.PageSize)

	docs, total, err := s.repo.List(teamID, repository.DocumentFilter{
		Query:    query.Query,
		FolderID: query.FolderID,
		RootOnly: query.RootOnly,
	}, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	ids := make([]uuid.UUID, len(docs))
	for i := range docs {
		ids[i] = docs[i].ID
	}
	linkCounts, err := s.repo.CountLinks(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to count links: %w", err)
	}
	viewCounts, err := s.repo.CountViews(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to count views: %w", err)
	}

	responses := make([]DocumentResponse, len(docs))
	for i := range docs {
		resp := toDocumentResponse(&docs[i])
		resp.LinkCount = linkCounts[docs[i].ID]
		resp.ViewCount = viewCounts[docs[i].ID]
		responses[i] = *resp
	}

	return &DocumentListResponse{
		Documents: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// Get returns a document with its primary version and counters
func (s *DocumentService) Get(teamID, id uuid.UUID) (*DocumentDetailResponse, error) {
	doc, err := s.repo.GetByID(teamID, id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrDocumentNotFound, "get document")
	}

	versions, err := s.versionRepo.List(id)
	if err != nil {
		return nil, fmt.Errorf("failed to list versions: %w", err)
	}
	linkCounts, err := s.repo.CountLinks([]uuid.UUID{id})
	if err != nil {
		return nil, fmt.Errorf("failed to count links: %w", err)
	}
	viewCounts, err := s.repo.CountViews([]uuid.UUID{id})
	if err != nil {
		return nil, fmt.Errorf("failed to count views: %w", err)
	}

	detail := &DocumentDetailResponse{
		DocumentResponse: *toDocumentResponse(doc),
		VersionCount:     len(versions),
	}
	detail.LinkCount = linkCounts[id]
	detail.ViewCount = viewCounts[id]
	for i := range versions {
		if versions[i].IsPrimary {
			detail.PrimaryVersion = toVersionResponse(&versions[i])
			break
		}
	}
	return detail, nil
}

// Update renames a document or moves it between folders
func (s *DocumentService) Update(teamID, id uuid.UUID, req *UpdateDocumentRequest) (*DocumentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	doc, err := s.repo.GetByID(teamID, id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrDocumentNotFound, "get document")
	}

	if req.Name != nil {
		doc.Name = strings.TrimSpace(*req.Name)
	}
	if req.FolderID != nil {
		if *req.FolderID == uuid.Nil {
			doc.FolderID = nil
		} else {
			if err := s.checkFolder(teamID, req.FolderID); err != nil {
				return nil, err
			}
			folderID := *req.FolderID
			doc.FolderID = &folderID
		}
	}

	if err := s.repo.Update(doc); err != nil {
		return nil, fmt.Errorf("failed to update document: %w", err)
	}
	return toDocumentResponse(doc), nil
}

// Delete moves a document to the trash and archives its links
func (s *DocumentService) Delete(teamID, id uuid.UUID) error {
	if err := s.repo.MoveToTrash(teamID, id); err != nil {
		return lookup(err, apperrors.ErrDocumentNotFound, "move document to trash")
	}
	return nil
}

// ListTrash returns the trashed documents of a team with their purge date
func (s *DocumentService) ListTrash(teamID uuid.UUID) ([]TrashItemResponse, error) {
	docs, err := s.repo.ListTrash(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trash: %w", err)
	}

	items := make([]TrashItemResponse, 0, len(docs))
	for i := range docs {
		if !docs[i].DeletedAt.Valid {
			continue
		}
		deletedAt := docs[i].DeletedAt.Time
		items = append(items, TrashItemResponse{
			DocumentResponse: *toDocumentResponse(&docs[i]),
			DeletedAt:        formatTime(deletedAt),
			PurgeAfter:       formatTime(deletedAt.Add(s.options.TrashRetention)),
		})
	}
	return items, nil
}

// Restore takes a document out of the trash. Its links stay archived.
func (s *DocumentService) Restore(teamID, id uuid.UUID) (*DocumentResponse, error) {
	if err := s.repo.Restore(teamID, id); err != nil {
		return nil, lookup(err, apperrors.ErrDocumentNotFound, "restore document")
	}
	doc, err := s.repo.GetByID(teamID, id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrDocumentNotFound, "get document")
	}
	return toDocumentResponse(doc), nil
}

// Purge permanently deletes a trashed document and its stored files
func (s *DocumentService) Purge(ctx context.Context, teamID, id uuid.UUID) error {
	if _, err := s.repo.GetTrashed(teamID, id); err != nil {
		return lookup(err, apperrors.ErrDocumentNotFound, "get trashed document")
	}
	return s.purge(ctx, id)
}

func (s *DocumentService) purge(ctx context.Context, id uuid.UUID) error {
	keys, err := s.repo.Purge(id)
	if err != nil {
		return lookup(err, apperrors.ErrDocumentNotFound, "purge document")
	}

	for _, key := range keys {
		if err := s.storage.Delete(ctx, key); err != nil {
			logger.WithContext(ctx).WithError(err).WithFields(map[string]interface{}{
				"document_id": id.String(),
				"key":         key,
			}).Warn("Failed to delete stored file of purged document")
		}
	}
	return nil
}

// PurgeExpiredTrash purges documents that stayed in the trash longer than the retention
func (s *DocumentService) PurgeExpiredTrash(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-s.options.TrashRetention)
	purged := 0
	for {
		docs, err := s.repo.ListTrashedBefore(cutoff, 100)
		if err != nil {
			return purged, fmt.Errorf("failed to list expired trash: %w", err)
		}
		if len(docs) == 0 {
			return purged, nil
		}
		for i := range docs {
			if err := ctx.Err(); err != nil {
				return purged, err
			}
			if err := s.purge(ctx, docs[i].ID); err != nil && !errors.Is(err, apperrors.ErrDocumentNotFound) {
				return purged, err
			}
			purged++
		}
		if len(docs) < 100 {
			return purged, nil
		}
	}
}

// GetDownloadURL presigns the primary version of a document
func (s *DocumentService) GetDownloadURL(ctx context.Context, teamID, id uuid.UUID) (*DownloadURLResponse, error) {
	doc, err := s.repo.GetByID(teamID, id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrDocumentNotFound, "get document")
	}

	url, err := s.storage.PresignGet(ctx, doc.File, s.options.PresignTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to presign download: %w", err)
	}
	return &DownloadURLResponse{
		URL:       url,
		ExpiresAt: formatTime(time.Now().Add(s.options.PresignTTL)),
	}, nil
}

// AddVersion uploads a file as the new primary version of a document
func (s *DocumentService) AddVersion(ctx context.Context, teamID, documentID uuid.UUID, file *UploadFile) (*VersionResponse, error) {
	doc, err := s.repo.GetByID(teamID, documentID)
	if err != nil {
		return nil, lookup(err, apperrors.ErrDocumentNotFound, "get document")
	}

	stored, err := s.store(ctx, teamID, file)
	if err != nil {
		return nil, err
	}
	return s.addVersion(doc, stored)
}

// AddVersionFromKey registers an uploaded object as the new primary version of a document
func (s *DocumentService) AddVersionFromKey(ctx context.Context, teamID, documentID uuid.UUID, req *RegisterVersionRequest) (*VersionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !storage.BelongsToTeam(teamID, req.Key) {
		return nil, apperrors.ErrStorageKeyOutsideTeam
	}

	doc, err := s.repo.GetByID(teamID, documentID)
	if err != nil {
		return nil, lookup(err, apperrors.ErrDocumentNotFound, "get document")
	}

	stored, err := s.registered(ctx, req.Key, req.ContentType, req.Size, req.NumPages)
	if err != nil {
		return nil, err
	}
	return s.addVersion(doc, stored)
}

func (s *DocumentService) addVersion(doc *models.Document, stored *storedFile) (*VersionResponse, error) {
	number, err := s.versionRepo.NextNumber(doc.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get next version number: %w", err)
	}

	version := &models.DocumentVersion{
		VersionNumber: number,
		File:          stored.key,
		Type:          stored.docType,
		ContentType:   stored.contentType,
		StorageType:   s.storage.Type(),
		NumPages:      stored.numPages,
		FileSize:      stored.size,
	}
	if err := s.versionRepo.AddPrimary(doc, version); err != nil {
		return nil, fmt.Errorf("failed to add version: %w", err)
	}
	return toVersionResponse(version), nil
}

// ListVersions returns all versions of a document, newest first
func (s *DocumentService) ListVersions(teamID, documentID uuid.UUID) ([]VersionResponse, error) {
	if _, err := s.repo.GetByID(teamID, documentID); err != nil {
		return nil, lookup(err, apperrors.ErrDocumentNotFound, "get document")
	}

	versions, err := s.versionRepo.List(documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list versions: %w", err)
	}
	responses := make([]VersionResponse, len(versions))
	for i := range versions {
		responses[i] = *toVersionResponse(&versions[i])
	}
	return responses, nil
}

// PromoteVersion makes an existing version the primary one
func (s *DocumentService) PromoteVersion(teamID, documentID uuid.UUID, number int) (*VersionResponse, error) {
	doc, err := s.repo.GetByID(teamID, documentID)
	if err != nil {
		return nil, lookup(err, apperrors.ErrDocumentNotFound, "get document")
	}

	version, err := s.versionRepo.GetByNumber(documentID, number)
	if err != nil {
		return nil, lookup(err, apperrors.ErrDocumentVersionNotFound, "get version")
	}
	if err := s.versionRepo.Promote(doc, version); err != nil {
		return nil, fmt.Errorf("failed to promote version: %w", err)
	}
	version.IsPrimary = true
	return toVersionResponse(version), nil
}

// detectType maps a content type, falling back to the file extension, to a document type
func detectType(contentType, filename string) (models.DocumentType, error) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(contentType))
	}
	ext := strings.ToLower(path.Ext(filename))

	switch {
	case mediaType == "application/pdf" || ext == ".pdf":
		return models.DocumentTypePDF, nil
	case strings.Contains(mediaType, "spreadsheet") || strings.Contains(mediaType, "excel") ||
		mediaType == "text/csv" || ext == ".xlsx" || ext == ".xls" || ext == ".csv" || ext == ".ods":
		return models.DocumentTypeSheet, nil
	case strings.Contains(mediaType, "presentation") || strings.Contains(mediaType, "powerpoint") ||
		ext == ".pptx" || ext == ".ppt" || ext == ".odp" || ext == ".key":
		return models.DocumentTypeSlides, nil
	case strings.Contains(mediaType, "wordprocessing") || mediaType == "application/msword" ||
		mediaType == "application/rtf" || ext == ".docx" || ext == ".doc" || ext == ".odt" || ext == ".rtf":
		return models.DocumentTypeDocs, nil
	case strings.HasPrefix(mediaType, "image/"):
		return models.DocumentTypeImage, nil
	case strings.HasPrefix(mediaType, "video/"):
		return models.DocumentTypeVideo, nil
	case mediaType == "application/zip" || mediaType == "application/x-zip-compressed" || ext == ".zip":
		return models.DocumentTypeZip, nil
	}
	return "", apperrors.NewValidationError("content_type", fmt.Sprintf("unsupported file type %q", contentType))
}

func toDocumentResponse(doc *models.Document) *DocumentResponse {
	return &DocumentResponse{
		ID:          doc.ID,
		TeamID:      doc.TeamID,
		OwnerID:     doc.OwnerID,
		FolderID:    doc.FolderID,
		Name:        doc.Name,
		Type:        doc.Type,
		ContentType: doc.ContentType,
		StorageType: doc.StorageType,
		NumPages:    doc.NumPages,
		FileSize:    doc.FileSize,
		CreatedAt:   formatTime(doc.CreatedAt),
		UpdatedAt:   formatTime(doc.UpdatedAt),
	}
}

func toVersionResponse(version *models.DocumentVersion) *VersionResponse {
	return &VersionResponse{
		ID:            version.ID,
		DocumentID:    version.DocumentID,
		VersionNumber: version.VersionNumber,
		Type:          version.Type,
		ContentType:   version.ContentType,
		NumPages:      version.NumPages,
		FileSize:      version.FileSize,
		IsPrimary:     version.IsPrimary,
		CreatedAt:     formatTime(version.CreatedAt),
	}
}
