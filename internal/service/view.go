package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"papermark-backend/internal/database/models"
	apperrors "papermark-backend/internal/errors"
	"papermark-backend/internal/jobs"
	"papermark-backend/internal/logger"
	"papermark-backend/internal/metrics"
	"papermark-backend/internal/pdf"
	"papermark-backend/internal/repository"
	"papermark-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	maxPageDuration      = time.Hour
	maxWatermarkFileSize = 200 << 20
)

// ViewService records link visits and serves the team's analytics
type ViewService struct {
	repo         repository.ViewRepositoryInterface
	viewerRepo   repository.ViewerRepositoryInterface
	linkRepo     repository.LinkRepositoryInterface
	documentRepo repository.DocumentRepositoryInterface
	dataroomRepo repository.DataroomRepositoryInterface
	verifier     VerificationServiceInterface
	storage      storage.Storage
	pdf          pdf.Processor
	dispatcher   EventDispatcher
	queue        jobs.Queue
	presignTTL   time.Duration
	validator    *validator.Validate
	now          func() time.Time
}

// Ensure ViewService implements ViewServiceInterface
var _ ViewServiceInterface = (*ViewService)(nil)

// ViewDependencies groups the collaborators of the view service
type ViewDependencies struct {
	Views      repository.ViewRepositoryInterface
	Viewers    repository.ViewerRepositoryInterface
	Links      repository.LinkRepositoryInterface
	Documents  repository.DocumentRepositoryInterface
	Datarooms  repository.DataroomRepositoryInterface
	Verifier   VerificationServiceInterface
	Storage    storage.Storage
	PDF        pdf.Processor
	Dispatcher EventDispatcher
	Queue      jobs.Queue
}

// NewViewService creates a new view service
func NewViewService(deps ViewDependencies, presignTTL time.Duration, validator *validator.Validate) *ViewService {
	return &ViewService{
		repo:         deps.Views,
		viewerRepo:   deps.Viewers,
		linkRepo:     deps.Links,
		documentRepo: deps.Documents,
		dataroomRepo: deps.Datarooms,
		verifier:     deps.Verifier,
		storage:      deps.Storage,
		pdf:          deps.PDF,
		dispatcher:   deps.Dispatcher,
		queue:        deps.Queue,
		presignTTL:   presignTTL,
		validator:    validator,
		now:          time.Now,
	}
}

// RecordViewRequest is what a visitor submits to open a link.
// Client details are filled in from the HTTP request.
type RecordViewRequest struct {
	Email      string     `json:"email" validate:"max=255"`
	Name       string     `json:"name" validate:"max=255"`
	Password   string     `json:"password" validate:"max=72"`
	Code       string     `json:"code" validate:"max=16"`
	DocumentID *uuid.UUID `json:"document_id,omitempty"`
	UserAgent  string     `json:"-"`
	IPAddress  string     `json:"-"`
	Country    string     `json:"-"`
}

// RecordViewResponse grants access to the viewed content
type RecordViewResponse struct {
	ViewID     uuid.UUID       `json:"view_id"`
	ViewType   models.ViewType `json:"view_type"`
	DocumentID *uuid.UUID      `json:"document_id,omitempty"`
	DataroomID *uuid.UUID      `json:"dataroom_id,omitempty"`
	URL        string          `json:"url,omitempty"`
	ExpiresAt  string          `json:"expires_at,omitempty"`
	NumPages   int             `json:"num_pages,omitempty"`
	Verified   bool            `json:"verified"`
}

// RecordPageViewRequest reports the time spent on one page
type RecordPageViewRequest struct {
	PageNumber    int   `json:"page_number" validate:"required,min=1"`
	DurationMs    int64 `json:"duration_ms"`
	VersionNumber int   `json:"version_number" validate:"omitempty,min=1"`
}

// DownloadRequest carries the client details stamped into watermarks
type DownloadRequest struct {
	IPAddress string
}

// DownloadResult is either a presigned URL or a watermarked file body
type DownloadResult struct {
	URL         string
	Content     []byte
	Filename    string
	ContentType string
}

// ViewResponse represents one view in analytics listings
type ViewResponse struct {
	ID              uuid.UUID       `json:"id"`
	LinkID          uuid.UUID       `json:"link_id"`
	DocumentID      *uuid.UUID      `json:"document_id,omitempty"`
	DataroomID      *uuid.UUID      `json:"dataroom_id,omitempty"`
	ViewerID        *uuid.UUID      `json:"viewer_id,omitempty"`
	ViewerEmail     string          `json:"viewer_email,omitempty"`
	ViewerName      string          `json:"viewer_name,omitempty"`
	Verified        bool            `json:"verified"`
	ViewType        models.ViewType `json:"view_type"`
	ViewedAt        string          `json:"viewed_at"`
	DownloadedAt    *string         `json:"downloaded_at,omitempty"`
	IsArchived      bool            `json:"is_archived"`
	Country         string          `json:"country,omitempty"`
	TotalDurationMs int64           `json:"total_duration_ms"`
	PagesViewed     int64           `json:"pages_viewed"`
	CompletionRate  float64         `json:"completion_rate"`
}

// ViewListResponse represents a paginated list of views
type ViewListResponse struct {
	Views    []ViewResponse `json:"views"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// PageStatResponse is the average time spent on one page
type PageStatResponse struct {
	PageNumber    int     `json:"page_number"`
	AvgDurationMs float64 `json:"avg_duration_ms"`
	Views         int64   `json:"views"`
}

// DocumentStatsResponse summarizes the non-archived views of a document
type DocumentStatsResponse struct {
	DocumentID      uuid.UUID          `json:"document_id"`
	TotalViews      int64              `json:"total_views"`
	UniqueViewers   int64              `json:"unique_viewers"`
	TotalDownloads  int64              `json:"total_downloads"`
	TotalDurationMs int64              `json:"total_duration_ms"`
	AvgDurationMs   float64            `json:"avg_duration_ms"`
	Pages           []PageStatResponse `json:"pages"`
}

// ViewerResponse represents an external viewer
type ViewerResponse struct {
	ID         uuid.UUID  `json:"id"`
	Email      string     `json:"email"`
	Verified   bool       `json:"verified"`
	DataroomID *uuid.UUID `json:"dataroom_id,omitempty"`
	CreatedAt  string     `json:"created_at"`
}

// ViewerListResponse represents a paginated list of viewers
type ViewerListResponse struct {
	Viewers  []ViewerResponse `json:"viewers"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// ViewerDetailResponse is a viewer with their views
type ViewerDetailResponse struct {
	ViewerResponse
	Views []ViewResponse `json:"views"`
}

// RecordView checks the gates of a link and records a visit
func (s *ViewService) RecordView(ctx context.Context, linkID uuid.UUID, req *RecordViewRequest) (*RecordViewResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	link, err := s.linkRepo.GetByID(linkID)
	if err != nil {
		return nil, lookup(err, apperrors.ErrLinkNotFound, "get link")
	}

	now := s.now()
	address := normalizeEmail(req.Email)
	if err := CheckAccess(link, AccessRequest{Email: address, Password: req.Password, Code: req.Code, Now: now}); err != nil {
		return nil, err
	}
	verified := false
	if link.EmailAuthenticated {
		if err := s.verifier.VerifyOTP(link.ID, address, req.Code); err != nil {
			return nil, err
		}
		verified = true
	}

	view := &models.View{
		TeamID:      link.TeamID,
		LinkID:      link.ID,
		ViewerEmail: address,
		ViewerName:  req.Name,
		Verified:    verified,
		ViewedAt:    now,
		UserAgent:   req.UserAgent,
		IPAddress:   req.IPAddress,
		Country:     req.Country,
	}

	doc, err := s.resolveTarget(link, view, req.DocumentID)
	if err != nil {
		return nil, err
	}

	if address != "" {
		viewer, err := s.viewerRepo.Upsert(link.TeamID, address, verified, link.DataroomID)
		if err != nil {
			return nil, fmt.Errorf("failed to upsert viewer: %w", err)
		}
		view.ViewerID = &viewer.ID
	}

	if err := s.repo.Create(view); err != nil {
		return nil, fmt.Errorf("failed to record view: %w", err)
	}

	resp := &RecordViewResponse{
		ViewID:     view.ID,
		ViewType:   view.ViewType,
		DocumentID: view.DocumentID,
		DataroomID: view.DataroomID,
		Verified:   verified,
	}
	if doc != nil {
		url, err := s.storage.PresignGet(ctx, doc.File, s.presignTTL)
		if err != nil {
			return nil, fmt.Errorf("failed to presign document: %w", err)
		}
		resp.URL = url
		resp.ExpiresAt = formatTime(now.Add(s.presignTTL))
		resp.NumPages = doc.NumPages
	}

	s.afterView(ctx, link, view)
	return resp, nil
}

// resolveTarget fills the document and dataroom of view and returns the document to serve, if any
func (s *ViewService) resolveTarget(link *models.Link, view *models.View, documentID *uuid.UUID) (*models.Document, error) {
	if link.LinkType == models.LinkTypeDocument {
		view.ViewType = models.ViewTypeDocument
		if link.DocumentID == nil {
			return nil, apperrors.ErrDocumentNotFound
		}
		doc, err := s.documentRepo.GetByIDAnyTeam(*link.DocumentID)
		if err != nil {
			return nil, lookup(err, apperrors.ErrDocumentNotFound, "get document")
		}
		view.DocumentID = &doc.ID
		return doc, nil
	}

	view.ViewType = models.ViewTypeDataroom
	if link.DataroomID == nil {
		return nil, apperrors.ErrDataroomNotFound
	}
	view.DataroomID = link.DataroomID
	if documentID == nil || *documentID == uuid.Nil {
		return nil, nil
	}

	if _, err := s.dataroomRepo.GetDocumentByDocumentID(*link.DataroomID, *documentID); err != nil {
		return nil, lookup(err, apperrors.ErrDataroomDocumentNotFound, "get dataroom document")
	}
	doc, err := s.documentRepo.GetByIDAnyTeam(*documentID)
	if err != nil {
		return nil, lookup(err, apperrors.ErrDocumentNotFound, "get document")
	}
	view.DocumentID = &doc.ID
	return doc, nil
}

// afterView runs the side effects of a recorded view; failures are logged only
func (s *ViewService) afterView(ctx context.Context, link *models.Link, view *models.View) {
	metrics.ViewsRecorded.WithLabelValues(string(view.ViewType)).Inc()

	if s.dispatcher != nil {
		s.dispatcher.Dispatch(ctx, link.TeamID, models.EventLinkViewed, map[string]interface{}{
			"view_id":      view.ID,
			"link_id":      link.ID,
			"document_id":  view.DocumentID,
			"dataroom_id":  view.DataroomID,
			"viewer_email": view.ViewerEmail,
			"viewed_at":    formatTime(view.ViewedAt),
		})
	}

	if link.EnableNotification && s.queue != nil {
		if err := s.queue.Enqueue(jobs.JobTypeViewNotification, view.ID.String()); err != nil {
			logger.WithContext(ctx).WithError(err).WithField("view_id", view.ID).Warn("Failed to enqueue view notification")
		}
	}
}

// RecordPageView stores the time spent on a page of the viewed document
func (s *ViewService) RecordPageView(viewID uuid.UUID, req *RecordPageViewRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	view, err := s.repo.GetByID(viewID)
	if err != nil {
		return lookup(err, apperrors.ErrViewNotFound, "get view")
	}
	if view.DocumentID == nil {
		return apperrors.NewValidationError("view_id", "view has no document")
	}

	duration := req.DurationMs
	if duration < 0 {
		duration = 0
	}
	if limit := maxPageDuration.Milliseconds(); duration > limit {
		duration = limit
	}
	version := req.VersionNumber
	if version < 1 {
		version = 1
	}

	pageView := &models.PageView{
		ViewID:        view.ID,
		DocumentID:    *view.DocumentID,
		VersionNumber: version,
		PageNumber:    req.PageNumber,
		DurationMs:    duration,
	}
	if err := s.repo.CreatePageView(pageView); err != nil {
		return fmt.Errorf("failed to record page view: %w", err)
	}
	return nil
}

// Download marks a view as downloaded and returns the file, watermarked when the link asks for it
func (s *ViewService) Download(ctx context.Context, viewID uuid.UUID, req *DownloadRequest) (*DownloadResult, error) {
	view, err := s.repo.GetByID(viewID)
	if err != nil {
		return nil, lookup(err, apperrors.ErrViewNotFound, "get view")
	}
	link, err := s.linkRepo.GetByID(view.LinkID)
	if err != nil {
		return nil, lookup(err, apperrors.ErrLinkNotFound, "get link")
	}

	now := s.now()
	if err := checkAvailable(link, now); err != nil {
		return nil, err
	}
	if !link.AllowDownload {
		return nil, apperrors.ErrDownloadNotAllowed
	}
	if view.DocumentID == nil {
		return nil, apperrors.ErrDocumentNotFound
	}
	doc, err := s.documentRepo.GetByIDAnyTeam(*view.DocumentID)
	if err != nil {
		return nil, lookup(err, apperrors.ErrDocumentNotFound, "get document")
	}

	if err := s.repo.MarkDownloaded(view.ID, now); err != nil {
		return nil, fmt.Errorf("failed to mark download: %w", err)
	}

	if link.EnableWatermark && doc.Type == models.DocumentTypePDF {
		ip := view.IPAddress
		if req != nil && req.IPAddress != "" {
			ip = req.IPAddress
		}
		text := pdf.RenderWatermark(link.WatermarkText, pdf.WatermarkVars{
			Email:     view.ViewerEmail,
			Date:      now.UTC().Format("2006-01-02"),
			IPAddress: ip,
			Link:      link.Name,
		})
		content, err := s.watermark(ctx, doc.File, text)
		if err != nil {
			return nil, err
		}
		return &DownloadResult{
			Content:     content,
			Filename:    downloadName(doc),
			ContentType: "application/pdf",
		}, nil
	}

	url, err := s.storage.PresignGet(ctx, doc.File, s.presignTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to presign download: %w", err)
	}
	return &DownloadResult{URL: url, Filename: downloadName(doc), ContentType: doc.ContentType}, nil
}

func (s *ViewService) watermark(ctx context.Context, key, text string) ([]byte, error) {
	body, err := s.storage.Download(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to download document: %w", err)
	}
	defer body.Close()

	data, err := io.ReadAll(io.LimitReader(body, maxWatermarkFileSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	var out bytes.Buffer
	if err := s.pdf.Watermark(bytes.NewReader(data), &out, text); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// ListDocumentViews returns the views of a document, newest first
func (s *ViewService) ListDocumentViews(teamID, documentID uuid.UUID, page, pageSize int) (*ViewListResponse, error) {
	doc, err := s.documentRepo.GetByID(teamID, documentID)
	if err != nil {
		return nil, lookup(err, apperrors.ErrDocumentNotFound, "get document")
	}
	page, pageSize, limit, offset := normalizePagination(page, pageSize)

	views, total, err := s.repo.ListByDocument(teamID, documentID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list views: %w", err)
	}
	responses, err := s.toViewResponses(views, map[uuid.UUID]int{doc.ID: doc.NumPages})
	if err != nil {
		return nil, err
	}
	return &ViewListResponse{
		Views:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// ArchiveView excludes a view from analytics, or includes it again
func (s *ViewService) ArchiveView(teamID, viewID uuid.UUID, archived bool) error {
	view, err := s.repo.GetByTeam(teamID, viewID)
	if err != nil {
		return lookup(err, apperrors.ErrViewNotFound, "get view")
	}
	if err := s.repo.SetArchived(view.ID, archived); err != nil {
		return lookup(err, apperrors.ErrViewNotFound, "archive view")
	}
	return nil
}

// DocumentStats aggregates the non-archived views of a document
func (s *ViewService) DocumentStats(teamID, documentID uuid.UUID) (*DocumentStatsResponse, error) {
	if _, err := s.documentRepo.GetByID(teamID, documentID); err != nil {
		return nil, lookup(err, apperrors.ErrDocumentNotFound, "get document")
	}

	totals, err := s.repo.DocumentTotals(documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate views: %w", err)
	}
	pages, err := s.repo.AggregateByPage(documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate page views: %w", err)
	}

	resp := &DocumentStatsResponse{
		DocumentID:      documentID,
		TotalViews:      totals.TotalViews,
		UniqueViewers:   totals.UniqueViewers,
		TotalDownloads:  totals.TotalDownloads,
		TotalDurationMs: totals.TotalDurationMs,
		Pages:           make([]PageStatResponse, len(pages)),
	}
	if totals.TotalViews > 0 {
		resp.AvgDurationMs = float64(totals.TotalDurationMs) / float64(totals.TotalViews)
	}
	for i, p := range pages {
		resp.Pages[i] = PageStatResponse{PageNumber: p.PageNumber, AvgDurationMs: p.AvgDurationMs, Views: p.Views}
	}
	return resp, nil
}

// ListViewers returns a page of the team's viewers
func (s *ViewService) ListViewers(teamID uuid.UUID, page, pageSize int) (*ViewerListResponse, error) {
	page, pageSize, limit, offset := normalizePagination(page, pageSize)

	viewers, total, err := s.viewerRepo.List(teamID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list viewers: %w", err)
	}
	responses := make([]ViewerResponse, len(viewers))
	for i := range viewers {
		responses[i] = toViewerResponse(&viewers[i])
	}
	return &ViewerListResponse{
		Viewers:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetViewer returns a viewer with every view they made
func (s *ViewService) GetViewer(teamID, viewerID uuid.UUID) (*ViewerDetailResponse, error) {
	viewer, err := s.viewerRepo.GetByID(teamID, viewerID)
	if err != nil {
		return nil, lookup(err, apperrors.ErrViewerNotFound, "get viewer")
	}
	views, err := s.repo.ListByViewer(teamID, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list viewer views: %w", err)
	}

	var docIDs []uuid.UUID
	for _, v := range views {
		if v.DocumentID != nil {
			docIDs = append(docIDs, *v.DocumentID)
		}
	}
	pageCounts := make(map[uuid.UUID]int, len(docIDs))
	if len(docIDs) > 0 {
		docs, err := s.documentRepo.ListByIDs(teamID, docIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load documents: %w", err)
		}
		for _, d := range docs {
			pageCounts[d.ID] = d.NumPages
		}
	}

	responses, err := s.toViewResponses(views, pageCounts)
	if err != nil {
		return nil, err
	}
	return &ViewerDetailResponse{
		ViewerResponse: toViewerResponse(viewer),
		Views:          responses,
	}, nil
}

// toViewResponses attaches page-view rollups and completion rates to views
func (s *ViewService) toViewResponses(views []models.View, pageCounts map[uuid.UUID]int) ([]ViewResponse, error) {
	ids := make([]uuid.UUID, len(views))
	for i := range views {
		ids[i] = views[i].ID
	}
	aggregates, err := s.repo.AggregateByViews(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate page views: %w", err)
	}

	responses := make([]ViewResponse, len(views))
	for i := range views {
		v := &views[i]
		agg := aggregates[v.ID]
		resp := ViewResponse{
			ID:              v.ID,
			LinkID:          v.LinkID,
			DocumentID:      v.DocumentID,
			DataroomID:      v.DataroomID,
			ViewerID:        v.ViewerID,
			ViewerEmail:     v.ViewerEmail,
			ViewerName:      v.ViewerName,
			Verified:        v.Verified,
			ViewType:        v.ViewType,
			ViewedAt:        formatTime(v.ViewedAt),
			DownloadedAt:    formatTimePtr(v.DownloadedAt),
			IsArchived:      v.IsArchived,
			Country:         v.Country,
			TotalDurationMs: agg.TotalDurationMs,
			PagesViewed:     agg.PagesViewed,
		}
		if v.DocumentID != nil {
			resp.CompletionRate = completionRate(agg.PagesViewed, pageCounts[*v.DocumentID])
		}
		responses[i] = resp
	}
	return responses, nil
}

// completionRate is the share of distinct pages viewed, capped at 1
func completionRate(pagesViewed int64, numPages int) float64 {
	if numPages <= 0 {
		return 0
	}
	rate := float64(pagesViewed) / float64(numPages)
	if rate > 1 {
		return 1
	}
	return rate
}

func downloadName(doc *models.Document) string {
	if ext := path.Ext(doc.File); ext != "" && path.Ext(doc.Name) == "" {
		return doc.Name + ext
	}
	return doc.Name
}

func toViewerResponse(viewer *models.Viewer) ViewerResponse {
	return ViewerResponse{
		ID:         viewer.ID,
		Email:      viewer.Email,
		Verified:   viewer.Verified,
		DataroomID: viewer.DataroomID,
		CreatedAt:  formatTime(viewer.CreatedAt),
	}
}
