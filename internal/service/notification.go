package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"papermark-backend/internal/database/models"
	"papermark-backend/internal/email"
	apperrors "papermark-backend/internal/errors"
	"papermark-backend/internal/logger"
	"papermark-backend/internal/metrics"
	"papermark-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultHubBuffer is the channel size of each notification subscriber
const DefaultHubBuffer = 16

// Hub fans notifications out to the live subscribers of a user.
// It is process-local; publishing never blocks and drops events for full subscribers.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[uuid.UUID]map[*subscription]struct{}
	buffer      int
}

type subscription struct {
	ch   chan NotificationResponse
	once sync.Once
}

// NewHub creates a hub whose subscribers buffer up to buffer notifications
func NewHub(buffer int) *Hub {
	if buffer < 1 {
		buffer = DefaultHubBuffer
	}
	return &Hub{
		subscribers: make(map[uuid.UUID]map[*subscription]struct{}),
		buffer:      buffer,
	}
}

// Subscribe registers a subscriber for userID. The returned func unsubscribes and closes the channel.
func (h *Hub) Subscribe(userID uuid.UUID) (<-chan NotificationResponse, func()) {
	sub := &subscription{ch: make(chan NotificationResponse, h.buffer)}

	h.mu.Lock()
	if h.subscribers[userID] == nil {
		h.subscribers[userID] = make(map[*subscription]struct{})
	}
	h.subscribers[userID][sub] = struct{}{}
	h.mu.Unlock()

	return sub.ch, func() {
		sub.once.Do(func() {
			h.mu.Lock()
			delete(h.subscribers[userID], sub)
			if len(h.subscribers[userID]) == 0 {
				delete(h.subscribers, userID)
			}
			h.mu.Unlock()
			close(sub.ch)
		})
	}
}

// Publish delivers n to every subscriber of userID and returns how many received it
func (h *Hub) Publish(userID uuid.UUID, n NotificationResponse) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for sub := range h.subscribers[userID] {
		select {
		case sub.ch <- n:
			delivered++
		default:
			metrics.NotificationsDropped.Inc()
		}
	}
	return delivered
}

// Subscribers returns the number of live subscribers of userID
func (h *Hub) Subscribers(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[userID])
}

// NotificationService persists in-app notifications and pushes them to live subscribers
type NotificationService struct {
	repo         repository.NotificationRepositoryInterface
	viewRepo     repository.ViewRepositoryInterface
	linkRepo     repository.LinkRepositoryInterface
	documentRepo repository.DocumentRepositoryInterface
	dataroomRepo repository.DataroomRepositoryInterface
	teamRepo     repository.TeamRepositoryInterface
	userRepo     repository.UserRepositoryInterface
	mailer       email.Sender
	hub          *Hub
	baseURL      string
	now          func() time.Time
}

// Ensure NotificationService implements NotificationServiceInterface
var _ NotificationServiceInterface = (*NotificationService)(nil)

// NotificationDependencies groups the collaborators of the notification service
type NotificationDependencies struct {
	Notifications repository.NotificationRepositoryInterface
	Views         repository.ViewRepositoryInterface
	Links         repository.LinkRepositoryInterface
	Documents     repository.DocumentRepositoryInterface
	Datarooms     repository.DataroomRepositoryInterface
	Teams         repository.TeamRepositoryInterface
	Users         repository.UserRepositoryInterface
	Mailer        email.Sender
	Hub           *Hub
}

// NewNotificationService creates a new notification service
func NewNotificationService(deps NotificationDependencies, baseURL string) *NotificationService {
	hub := deps.Hub
	if hub == nil {
		hub = NewHub(DefaultHubBuffer)
	}
	return &NotificationService{
		repo:         deps.Notifications,
		viewRepo:     deps.Views,
		linkRepo:     deps.Links,
		documentRepo: deps.Documents,
		dataroomRepo: deps.Datarooms,
		teamRepo:     deps.Teams,
		userRepo:     deps.Users,
		mailer:       deps.Mailer,
		hub:          hub,
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		now:          time.Now,
	}
}

// NotificationRefs points a notification at the objects it is about
type NotificationRefs struct {
	LinkID     *uuid.UUID
	DocumentID *uuid.UUID
	DataroomID *uuid.UUID
	ViewID     *uuid.UUID
}

// NotificationResponse represents an in-app notification
type NotificationResponse struct {
	ID         uuid.UUID               `json:"id"`
	TeamID     uuid.UUID               `json:"team_id"`
	Type       models.NotificationType `json:"type"`
	Message    string                  `json:"message"`
	LinkID     *uuid.UUID              `json:"link_id,omitempty"`
	DocumentID *uuid.UUID              `json:"document_id,omitempty"`
	DataroomID *uuid.UUID              `json:"dataroom_id,omitempty"`
	ViewID     *uuid.UUID              `json:"view_id,omitempty"`
	ReadAt     *string                 `json:"read_at,omitempty"`
	CreatedAt  string                  `json:"created_at"`
}

// NotificationListResponse represents a paginated list of notifications
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

// Notify stores a notification for userID and publishes it to their live subscribers
func (s *NotificationService) Notify(ctx context.Context, teamID, userID uuid.UUID, notificationType models.NotificationType, message string, refs NotificationRefs) (*NotificationResponse, error) {
	notification := &models.Notification{
		TeamID:     teamID,
		UserID:     userID,
		Type:       notificationType,
		Message:    message,
		LinkID:     refs.LinkID,
		DocumentID: refs.DocumentID,
		DataroomID: refs.DataroomID,
		ViewID:     refs.ViewID,
	}
	if err := s.repo.Create(notification); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	resp := toNotificationResponse(notification)
	s.hub.Publish(userID, resp)
	return &resp, nil
}

// NotifyView tells the owner of the viewed content about a view, in-app and by email.
// Dataroom views go to the team admins, as do document views without an owner.
func (s *NotificationService) NotifyView(ctx context.Context, viewID uuid.UUID) error {
	view, err := s.viewRepo.GetByID(viewID)
	if err != nil {
		return lookup(err, apperrors.ErrViewNotFound, "get view")
	}
	link, err := s.linkRepo.GetByID(view.LinkID)
	if err != nil {
		return lookup(err, apperrors.ErrLinkNotFound, "get link")
	}

	var (
		subject          string
		ownerID          *uuid.UUID
		notificationType = models.NotificationTypeDocumentView
		actionURL        string
	)
	switch {
	case view.ViewType == models.ViewTypeDataroom && view.DataroomID != nil:
		dataroom, err := s.dataroomRepo.GetByIDAnyTeam(*view.DataroomID)
		if err != nil {
			return lookup(err, apperrors.ErrDataroomNotFound, "get dataroom")
		}
		subject = dataroom.Name
		notificationType = models.NotificationTypeDataroomView
		actionURL = fmt.Sprintf("%s/datarooms/%s", s.baseURL, dataroom.ID)
	case view.DocumentID != nil:
		doc, err := s.documentRepo.GetByIDAnyTeam(*view.DocumentID)
		if err != nil {
			return lookup(err, apperrors.ErrDocumentNotFound, "get document")
		}
		subject = doc.Name
		ownerID = doc.OwnerID
		actionURL = fmt.Sprintf("%s/documents/%s", s.baseURL, doc.ID)
	default:
		return apperrors.ErrDocumentNotFound
	}

	recipients, err := s.recipients(link.TeamID, ownerID)
	if err != nil {
		return err
	}

	viewer := view.ViewerEmail
	if viewer == "" {
		viewer = "Someone"
	}
	message := fmt.Sprintf("%s viewed %s", viewer, subject)
	refs := NotificationRefs{LinkID: &link.ID, DocumentID: view.DocumentID, DataroomID: view.DataroomID, ViewID: &view.ID}
	log := logger.WithContext(ctx).WithField("view_id", view.ID)

	for i := range recipients {
		user := &recipients[i]
		// one failed insert never stops the remaining recipients
		if _, err := s.Notify(ctx, link.TeamID, user.ID, notificationType, message, refs); err != nil {
			log.WithError(err).WithField("user_id", user.ID).Warn("Failed to store view notification")
		}

		msg, err := email.DocumentViewed(user.Email, subject, view.ViewerEmail, link.Name, actionURL)
		if err != nil {
			log.WithError(err).Warn("Failed to render view notification email")
			continue
		}
		if err := s.mailer.Send(ctx, msg); err != nil {
			log.WithError(err).WithField("recipient", user.Email).Warn("Failed to send view notification email")
		}
	}
	return nil
}

// recipients resolves the owner, falling back to the active team admins
func (s *NotificationService) recipients(teamID uuid.UUID, ownerID *uuid.UUID) ([]models.User, error) {
	if ownerID != nil {
		owner, err := s.userRepo.GetByID(*ownerID)
		if err == nil {
			return []models.User{*owner}, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to get owner: %w", err)
		}
	}
	admins, err := s.teamRepo.ListAdmins(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team admins: %w", err)
	}
	return admins, nil
}

// List returns a page of the user's notifications, newest first
func (s *NotificationService) List(userID uuid.UUID, unreadOnly bool, page, pageSize int) (*NotificationListResponse, error) {
	page, pageSize, limit, offset := normalizePagination(page, pageSize)

	notifications, total, err := s.repo.ListForUser(userID, unreadOnly, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	responses := make([]NotificationResponse, len(notifications))
	for i := range notifications {
		responses[i] = toNotificationResponse(&notifications[i])
	}
	return &NotificationListResponse{
		Notifications: responses,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

// MarkRead marks one notification of the user as read
func (s *NotificationService) MarkRead(userID, id uuid.UUID) error {
	if err := s.repo.MarkRead(userID, id, s.now()); err != nil {
		return lookup(err, apperrors.ErrNotificationNotFound, "mark notification read")
	}
	return nil
}

// MarkAllRead marks every unread notification of the user as read
func (s *NotificationService) MarkAllRead(userID uuid.UUID) (int64, error) {
	updated, err := s.repo.MarkAllRead(userID, s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return updated, nil
}

// Subscribe streams the notifications published for userID from now on
func (s *NotificationService) Subscribe(userID uuid.UUID) (<-chan NotificationResponse, func()) {
	return s.hub.Subscribe(userID)
}

func toNotificationResponse(n *models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:         n.ID,
		TeamID:     n.TeamID,
		Type:       n.Type,
		Message:    n.Message,
		LinkID:     n.LinkID,
		DocumentID: n.DocumentID,
		DataroomID: n.DataroomID,
		ViewID:     n.ViewID,
		ReadAt:     formatTimePtr(n.ReadAt),
		CreatedAt:  formatTime(n.CreatedAt),
	}
}
