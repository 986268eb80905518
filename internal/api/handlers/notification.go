package handlers

import (
	"io"
	"net/http"
	"time"

	"papermark-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const heartbeatInterval = 25 * time.Second

// NotificationHandler handles HTTP requests for in-app notifications
type NotificationHandler struct {
	notificationService service.NotificationServiceInterface
	heartbeat           time.Duration
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService service.NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		heartbeat:           heartbeatInterval,
	}
}

// MarkAllReadResponse reports how many notifications were marked
type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

// List handles GET /api/v1/notifications
// @Summary List my notifications
// @Tags notifications
// @Produce json
// @Param unread query bool false "Only unread notifications"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.NotificationListResponse
// @Security BearerAuth
// @Router /api/v1/notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	page, pageSize := pagination(c)
	notifications, err := h.notificationService.List(userID, boolQuery(c, "unread"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// Stream handles GET /api/v1/notifications/stream
// @Summary Stream notifications as server-sent events
// @Description Emits "notification" events and a comment heartbeat every 25 seconds
// @Tags notifications
// @Produce text/event-stream
// @Success 200 {string} string "event stream"
// @Security BearerAuth
// @Router /api/v1/notifications/stream [get]
func (h *NotificationHandler) Stream(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	events, unsubscribe := h.notificationService.Subscribe(userID)
	defer unsubscribe()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case notification, open := <-events:
			if !open {
				return false
			}
			c.SSEvent("notification", notification)
			return true
		case <-ticker.C:
			_, err := io.WriteString(w, ": ping\n\n")
			return err == nil
		}
	})
}

// MarkRead handles POST /api/v1/notifications/:id/read
// @Summary Mark a notification as read
// @Tags notifications
// @Param id path string true "Notification ID (UUID)"
// @Success 204 "Marked"
// @Failure 404 {object} ErrorResponse "Notification not found"
// @Security BearerAuth
// @Router /api/v1/notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "notification")
	if !ok {
		return
	}
	if err := h.notificationService.MarkRead(userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// MarkAllRead handles POST /api/v1/notifications/read-all
// @Summary Mark all notifications as read
// @Tags notifications
// @Produce json
// @Success 200 {object} MarkAllReadResponse
// @Security BearerAuth
// @Router /api/v1/notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	updated, err := h.notificationService.MarkAllRead(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MarkAllReadResponse{Updated: updated})
}
