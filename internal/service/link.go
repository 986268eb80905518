package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"papermark-backend/internal/database/models"
	apperrors "papermark-backend/internal/errors"
	"papermark-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/crypto/bcrypt"
)

var (
	slugPattern   = regexp.MustCompile(`^[a-z0-9-]+$`)
	welcomePolicy = bluemonday.UGCPolicy()
)

// LinkService handles business logic for shared links
type LinkService struct {
	repo         repository.LinkRepositoryInterface
	documentRepo repository.DocumentRepositoryInterface
	dataroomRepo repository.DataroomRepositoryInterface
	viewRepo     repository.ViewRepositoryInterface
	dispatcher   EventDispatcher
	limits       limitChecker
	baseURL      string
	validator    *validator.Validate
}

// Ensure LinkService implements LinkServiceInterface
var _ LinkServiceInterface = (*LinkService)(nil)

// NewLinkService creates a new link service
func NewLinkService(repo repository.LinkRepositoryInterface, documentRepo repository.DocumentRepositoryInterface, dataroomRepo repository.DataroomRepositoryInterface, viewRepo repository.ViewRepositoryInterface, teamRepo repository.TeamRepositoryInterface, dispatcher EventDispatcher, baseURL string, validator *validator.Validate) *LinkService {
	return &LinkService{
		repo:         repo,
		documentRepo: documentRepo,
		dataroomRepo: dataroomRepo,
		viewRepo:     viewRepo,
		dispatcher:   dispatcher,
		limits:       limitChecker{teamRepo: teamRepo},
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		validator:    validator,
	}
}

// CreateLinkRequest represents the request to create a link. Exactly one target is required.
type CreateLinkRequest struct {
	DocumentID         *uuid.UUID `json:"document_id,omitempty"`
	DataroomID         *uuid.UUID `json:"dataroom_id,omitempty"`
	Name               string     `json:"name" validate:"max=255"`
	Slug               *string    `json:"slug,omitempty" validate:"omitempty,max=100"`
	Domain             string     `json:"domain" validate:"max=255"`
	ExpiresAt          *time.Time `json:"expires_at,omitempty"`
	Password           string     `json:"password" validate:"max=72"`
	EmailProtected     *bool      `json:"email_protected,omitempty"`
	EmailAuthenticated bool       `json:"email_authenticated"`
	AllowDownload      bool       `json:"allow_download"`
	EnableNotification *bool      `json:"enable_notification,omitempty"`
	EnableWatermark    bool       `json:"enable_watermark"`
	WatermarkText      string     `json:"watermark_text" validate:"max=500"`
	AllowList          []string   `json:"allow_list" validate:"max=500"`
	DenyList           []string   `json:"deny_list" validate:"max=500"`
	ScreenshotProtect  bool       `json:"enable_screenshot_protection"`
	WelcomeMessage     string     `json:"welcome_message" validate:"max=5000"`
	MetaTitle          string     `json:"meta_title" validate:"max=255"`
	MetaDescription    string     `json:"meta_description" validate:"max=1000"`
}

// UpdateLinkRequest represents the request to update a link.
// A nil field is kept; an empty password removes the password.
type UpdateLinkRequest struct {
	Name               *string    `json:"name,omitempty" validate:"omitempty,max=255"`
	Slug               *string    `json:"slug,omitempty" validate:"omitempty,max=100"`
	ExpiresAt          *time.Time `json:"expires_at,omitempty"`
	ClearExpiry        bool       `json:"clear_expiry"`
	Password           *string    `json:"password,omitempty" validate:"omitempty,max=72"`
	EmailProtected     *bool      `json:"email_protected,omitempty"`
	EmailAuthenticated *bool      `json:"email_authenticated,omitempty"`
	AllowDownload      *bool      `json:"allow_download,omitempty"`
	EnableNotification *bool      `json:"enable_notification,omitempty"`
	EnableWatermark    *bool      `json:"enable_watermark,omitempty"`
	WatermarkText      *string    `json:"watermark_text,omitempty" validate:"omitempty,max=500"`
	AllowList          *[]string  `json:"allow_list,omitempty"`
	DenyList           *[]string  `json:"deny_list,omitempty"`
	ScreenshotProtect  *bool      `json:"enable_screenshot_protection,omitempty"`
	WelcomeMessage     *string    `json:"welcome_message,omitempty" validate:"omitempty,max=5000"`
	MetaTitle          *string    `json:"meta_title,omitempty" validate:"omitempty,max=255"`
	MetaDescription    *string    `json:"meta_description,omitempty" validate:"omitempty,max=1000"`
}

// LinkResponse represents a link as seen by its team
type LinkResponse struct {
	ID                 uuid.UUID       `json:"id"`
	TeamID             uuid.UUID       `json:"team_id"`
	LinkType           models.LinkType `json:"link_type"`
	DocumentID         *uuid.UUID      `json:"document_id,omitempty"`
	DataroomID         *uuid.UUID      `json:"dataroom_id,omitempty"`
	Name               string          `json:"name"`
	Slug               *string         `json:"slug,omitempty"`
	Domain             string          `json:"domain,omitempty"`
	URL                string          `json:"url"`
	ExpiresAt          *string         `json:"expires_at,omitempty"`
	HasPassword        bool            `json:"has_password"`
	EmailProtected     bool            `json:"email_protected"`
	EmailAuthenticated bool            `json:"email_authenticated"`
	AllowDownload      bool            `json:"allow_download"`
	EnableNotification bool            `json:"enable_notification"`
	EnableWatermark    bool            `json:"enable_watermark"`
	WatermarkText      string          `json:"watermark_text,omitempty"`
	AllowList          []string        `json:"allow_list"`
	DenyList           []string        `json:"deny_list"`
	ScreenshotProtect  bool            `json:"enable_screenshot_protection"`
	WelcomeMessage     string          `json:"welcome_message,omitempty"`
	MetaTitle          string          `json:"meta_title,omitempty"`
	MetaDescription    string          `json:"meta_description,omitempty"`
	IsArchived         bool            `json:"is_archived"`
	ViewCount          int64           `json:"view_count"`
	CreatedAt          string          `json:"created_at"`
	UpdatedAt          string          `json:"updated_at"`
}

// PublicDocument is the document summary shown to link visitors
type PublicDocument struct {
	ID       uuid.UUID           `json:"id"`
	Name     string              `json:"name"`
	Type     models.DocumentType `json:"type"`
	NumPages int                 `json:"num_pages"`
}

// PublicDataroom is the dataroom summary shown to link visitors
type PublicDataroom struct {
	ID   uuid.UUID `json:"id"`
	PID  string    `json:"pid"`
	Name string    `json:"name"`
}

// PublicLinkResponse carries what the viewer UI needs before access is granted
type PublicLinkResponse struct {
	ID                   uuid.UUID       `json:"id"`
	LinkType             models.LinkType `json:"link_type"`
	Name                 string          `json:"name"`
	RequiresEmail        bool            `json:"requires_email"`
	RequiresPassword     bool            `json:"requires_password"`
	RequiresVerification bool            `json:"requires_verification"`
	AllowDownload        bool            `json:"allow_download"`
	EnableWatermark      bool            `json:"enable_watermark"`
	ScreenshotProtect    bool            `json:"enable_screenshot_protection"`
	WelcomeMessage       string          `json:"welcome_message,omitempty"`
	MetaTitle            string          `json:"meta_title,omitempty"`
	MetaDescription      string          `json:"meta_description,omitempty"`
	Document             *PublicDocument `json:"document,omitempty"`
	Dataroom             *PublicDataroom `json:"dataroom,omitempty"`
}

// Create creates a link to a document or a dataroom of the team
func (s *LinkService) Create(ctx context.Context, teamID, userID uuid.UUID, req *CreateLinkRequest) (*LinkResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	link := &models.Link{
		TeamID:             teamID,
		Name:               strings.TrimSpace(req.Name),
		DomainSlug:         strings.ToLower(strings.TrimSpace(req.Domain)),
		ExpiresAt:          req.ExpiresAt,
		EmailProtected:     true,
		EmailAuthenticated: req.EmailAuthenticated,
		AllowDownload:      req.AllowDownload,
		EnableNotification: true,
		EnableWatermark:    req.EnableWatermark,
		WatermarkText:      req.WatermarkText,
		AllowList:          normalizeEmailList(req.AllowList),
		DenyList:           normalizeEmailList(req.DenyList),
		ScreenshotProtect:  req.ScreenshotProtect,
		WelcomeMessage:     welcomePolicy.Sanitize(req.WelcomeMessage),
		MetaTitle:          req.MetaTitle,
		MetaDescription:    req.MetaDescription,
		CreatedByID:        &userID,
	}
	if req.EmailProtected != nil {
		link.EmailProtected = *req.EmailProtected
	}
	if req.EnableNotification != nil {
		link.EnableNotification = *req.EnableNotification
	}

	if err := s.setTarget(teamID, link, req.DocumentID, req.DataroomID); err != nil {
		return nil, err
	}
	if err := s.setSlug(link, req.Slug); err != nil {
		return nil, err
	}
	if err := setPassword(link, req.Password); err != nil {
		return nil, err
	}

	count, err := s.repo.Count(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to count links: %w", err)
	}
	if err := s.limits.check(teamID, limitLinks, count); err != nil {
		return nil, err
	}

	if err := s.repo.Create(link); err != nil {
		return nil, fmt.Errorf("failed to create link: %w", err)
	}

	resp := s.toLinkResponse(link, 0)
	if s.dispatcher != nil {
		s.dispatcher.Dispatch(ctx, teamID, models.EventLinkCreated, resp)
	}
	return resp, nil
}

// ListByDocument returns the links of a document with their view counts
func (s *LinkService) ListByDocument(teamID, documentID uuid.UUID, includeArchived bool) ([]LinkResponse, error) {
	if _, err := s.documentRepo.GetByID(teamID, documentID); err != nil {
		return nil, lookup(err, apperrors.ErrDocumentNotFound, "get document")
	}
	links, err := s.repo.ListByDocument(teamID, documentID, includeArchived)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	return s.withViewCounts(links)
}

// ListByDataroom returns the links of a dataroom with their view counts
func (s *LinkService) ListByDataroom(teamID, dataroomID uuid.UUID, includeArchived bool) ([]LinkResponse, error) {
	if _, err := s.dataroomRepo.GetByID(teamID, dataroomID); err != nil {
		return nil, lookup(err, apperrors.ErrDataroomNotFound, "get dataroom")
	}
	links, err := s.repo.ListByDataroom(teamID, dataroomID, includeArchived)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	return s.withViewCounts(links)
}

func (s *LinkService) withViewCounts(links []models.Link) ([]LinkResponse, error) {
	ids := make([]uuid.UUID, len(links))
	for i := range links {
		ids[i] = links[i].ID
	}
	counts, err := s.viewRepo.CountByLinks(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to count link views: %w", err)
	}

	responses := make([]LinkResponse, len(links))
	for i := range links {
		responses[i] = *s.toLinkResponse(&links[i], counts[links[i].ID])
	}
	return responses, nil
}

// Get returns a link of the team
func (s *LinkService) Get(teamID, id uuid.UUID) (*LinkResponse, error) {
	link, err := s.get(teamID, id)
	if err != nil {
		return nil, err
	}
	views, err := s.viewCount(link.ID)
	if err != nil {
		return nil, err
	}
	return s.toLinkResponse(link, views), nil
}

// Update changes the settings of a link
func (s *LinkService) Update(teamID, id uuid.UUID, req *UpdateLinkRequest) (*LinkResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	link, err := s.get(teamID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		link.Name = strings.TrimSpace(*req.Name)
	}
	if req.Slug != nil {
		if err := s.setSlug(link, req.Slug); err != nil {
			return nil, err
		}
	}
	if req.ClearExpiry {
		link.ExpiresAt = nil
	} else if req.ExpiresAt != nil {
		link.ExpiresAt = req.ExpiresAt
	}
	if req.Password != nil {
		if err := setPassword(link, *req.Password); err != nil {
			return nil, err
		}
	}
	if req.EmailProtected != nil {
		link.EmailProtected = *req.EmailProtected
	}
	if req.EmailAuthenticated != nil {
		link.EmailAuthenticated = *req.EmailAuthenticated
	}
	if req.AllowDownload != nil {
		link.AllowDownload = *req.AllowDownload
	}
	if req.EnableNotification != nil {
		link.EnableNotification = *req.EnableNotification
	}
	if req.EnableWatermark != nil {
		link.EnableWatermark = *req.EnableWatermark
	}
	if req.WatermarkText != nil {
		link.WatermarkText = *req.WatermarkText
	}
	if req.AllowList != nil {
		link.AllowList = normalizeEmailList(*req.AllowList)
	}
	if req.DenyList != nil {
		link.DenyList = normalizeEmailList(*req.DenyList)
	}
	if req.ScreenshotProtect != nil {
		link.ScreenshotProtect = *req.ScreenshotProtect
	}
	if req.WelcomeMessage != nil {
		link.WelcomeMessage = welcomePolicy.Sanitize(*req.WelcomeMessage)
	}
	if req.MetaTitle != nil {
		link.MetaTitle = *req.MetaTitle
	}
	if req.MetaDescription != nil {
		link.MetaDescription = *req.MetaDescription
	}

	if err := s.repo.Update(link); err != nil {
		return nil, fmt.Errorf("failed to update link: %w", err)
	}
	views, err := s.viewCount(link.ID)
	if err != nil {
		return nil, err
	}
	return s.toLinkResponse(link, views), nil
}

// Archive archives or restores a link
func (s *LinkService) Archive(teamID, id uuid.UUID, archived bool) (*LinkResponse, error) {
	link, err := s.get(teamID, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SetArchived(link.ID, archived); err != nil {
		return nil, lookup(err, apperrors.ErrLinkNotFound, "archive link")
	}
	link.IsArchived = archived

	views, err := s.viewCount(link.ID)
	if err != nil {
		return nil, err
	}
	return s.toLinkResponse(link, views), nil
}

// Delete removes a link. Links that were viewed are archived so their views stay attributable.
func (s *LinkService) Delete(teamID, id uuid.UUID) error {
	link, err := s.get(teamID, id)
	if err != nil {
		return err
	}
	views, err := s.viewRepo.CountByLink(link.ID)
	if err != nil {
		return fmt.Errorf("failed to count link views: %w", err)
	}
	if views > 0 {
		if err := s.repo.SetArchived(link.ID, true); err != nil {
			return lookup(err, apperrors.ErrLinkNotFound, "archive link")
		}
		return nil
	}
	if err := s.repo.Delete(link.ID); err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}
	return nil
}

// viewCount is the analytics view count of a link, archived views excluded
func (s *LinkService) viewCount(linkID uuid.UUID) (int64, error) {
	counts, err := s.viewRepo.CountByLinks([]uuid.UUID{linkID})
	if err != nil {
		return 0, fmt.Errorf("failed to count link views: %w", err)
	}
	return counts[linkID], nil
}

// GetPublic returns the visitor-facing metadata of a link
func (s *LinkService) GetPublic(id uuid.UUID) (*PublicLinkResponse, error) {
	link, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrLinkNotFound, "get link")
	}
	return s.toPublic(link)
}

// GetPublicBySlug resolves a link by its custom domain and slug
func (s *LinkService) GetPublicBySlug(domain, slug string) (*PublicLinkResponse, error) {
	link, err := s.repo.GetByDomainSlug(strings.ToLower(domain), strings.ToLower(slug))
	if err != nil {
		return nil, lookup(err, apperrors.ErrLinkNotFound, "get link")
	}
	return s.toPublic(link)
}

func (s *LinkService) toPublic(link *models.Link) (*PublicLinkResponse, error) {
	if err := checkAvailable(link, time.Now()); err != nil {
		return nil, err
	}

	resp := &PublicLinkResponse{
		ID:                   link.ID,
		LinkType:             link.LinkType,
		Name:                 link.Name,
		RequiresEmail:        link.RequiresEmail(),
		RequiresPassword:     link.HasPassword(),
		RequiresVerification: link.EmailAuthenticated,
		AllowDownload:        link.AllowDownload,
		EnableWatermark:      link.EnableWatermark,
		ScreenshotProtect:    link.ScreenshotProtect,
		WelcomeMessage:       link.WelcomeMessage,
		MetaTitle:            link.MetaTitle,
		MetaDescription:      link.MetaDescription,
	}

	switch {
	case link.DocumentID != nil:
		doc, err := s.documentRepo.GetByIDAnyTeam(*link.DocumentID)
		if err != nil {
			return nil, lookup(err, apperrors.ErrDocumentNotFound, "get document")
		}
		resp.Document = &PublicDocument{ID: doc.ID, Name: doc.Name, Type: doc.Type, NumPages: doc.NumPages}
	case link.DataroomID != nil:
		dataroom, err := s.dataroomRepo.GetByIDAnyTeam(*link.DataroomID)
		if err != nil {
			return nil, lookup(err, apperrors.ErrDataroomNotFound, "get dataroom")
		}
		resp.Dataroom = &PublicDataroom{ID: dataroom.ID, PID: dataroom.PID, Name: dataroom.Name}
	}
	return resp, nil
}

func (s *LinkService) get(teamID, id uuid.UUID) (*models.Link, error) {
	link, err := s.repo.GetByTeam(teamID, id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrLinkNotFound, "get link")
	}
	return link, nil
}

// setTarget points link at exactly one document or dataroom of the team
func (s *LinkService) setTarget(teamID uuid.UUID, link *models.Link, documentID, dataroomID *uuid.UUID) error {
	hasDocument := documentID != nil && *documentID != uuid.Nil
	hasDataroom := dataroomID != nil && *dataroomID != uuid.Nil
	if hasDocument == hasDataroom {
		return apperrors.ErrLinkTargetInvalid
	}

	if hasDocument {
		doc, err := s.documentRepo.GetByID(teamID, *documentID)
		if err != nil {
			return lookup(err, apperrors.ErrDocumentNotFound, "get document")
		}
		link.LinkType = models.LinkTypeDocument
		link.DocumentID = &doc.ID
		if link.Name == "" {
			link.Name = doc.Name
		}
		return nil
	}

	dataroom, err := s.dataroomRepo.GetByID(teamID, *dataroomID)
	if err != nil {
		return lookup(err, apperrors.ErrDataroomNotFound, "get dataroom")
	}
	link.LinkType = models.LinkTypeDataroom
	link.DataroomID = &dataroom.ID
	if link.Name == "" {
		link.Name = dataroom.Name
	}
	return nil
}

// setSlug validates and reserves a slug on the link's domain; an empty slug clears it
func (s *LinkService) setSlug(link *models.Link, slug *string) error {
	if slug == nil {
		return nil
	}
	value := strings.ToLower(strings.TrimSpace(*slug))
	if value == "" {
		link.Slug = nil
		return nil
	}
	if !slugPattern.MatchString(value) {
		return apperrors.NewValidationError("slug", "may only contain lower-case letters, digits and dashes")
	}

	var exclude *uuid.UUID
	if link.ID != uuid.Nil {
		exclude = &link.ID
	}
	taken, err := s.repo.SlugTaken(link.DomainSlug, value, exclude)
	if err != nil {
		return fmt.Errorf("failed to check slug: %w", err)
	}
	if taken {
		return apperrors.ErrSlugExists
	}
	link.Slug = &value
	return nil
}

// setPassword hashes password into link; an empty password removes it
func setPassword(link *models.Link, password string) error {
	if password == "" {
		link.PasswordHash = ""
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	link.PasswordHash = string(hash)
	return nil
}

func (s *LinkService) toLinkResponse(link *models.Link, views int64) *LinkResponse {
	url := fmt.Sprintf("%s/view/%s", s.baseURL, link.ID)
	if link.Slug != nil && link.DomainSlug != "" {
		url = fmt.Sprintf("https://%s/%s", link.DomainSlug, *link.Slug)
	}
	allow := link.AllowList
	if allow == nil {
		allow = []string{}
	}
	deny := link.DenyList
	if deny == nil {
		deny = []string{}
	}
	return &LinkResponse{
		ID:                 link.ID,
		TeamID:             link.TeamID,
		LinkType:           link.LinkType,
		DocumentID:         link.DocumentID,
		DataroomID:         link.DataroomID,
		Name:               link.Name,
		Slug:               link.Slug,
		Domain:             link.DomainSlug,
		URL:                url,
		ExpiresAt:          formatTimePtr(link.ExpiresAt),
		HasPassword:        link.HasPassword(),
		EmailProtected:     link.EmailProtected,
		EmailAuthenticated: link.EmailAuthenticated,
		AllowDownload:      link.AllowDownload,
		EnableNotification: link.EnableNotification,
		EnableWatermark:    link.EnableWatermark,
		WatermarkText:      link.WatermarkText,
		AllowList:          allow,
		DenyList:           deny,
		ScreenshotProtect:  link.ScreenshotProtect,
		WelcomeMessage:     link.WelcomeMessage,
		MetaTitle:          link.MetaTitle,
		MetaDescription:    link.MetaDescription,
		IsArchived:         link.IsArchived,
		ViewCount:          views,
		CreatedAt:          formatTime(link.CreatedAt),
		UpdatedAt:          formatTime(link.UpdatedAt),
	}
}
