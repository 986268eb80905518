package handlers

import (
	"net/http"

	"papermark-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// WebhookHandler handles HTTP requests for outgoing team webhooks
type WebhookHandler struct {
	webhookService service.WebhookServiceInterface
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(webhookService service.WebhookServiceInterface) *WebhookHandler {
	return &WebhookHandler{webhookService: webhookService}
}

// Create handles POST /api/v1/teams/:teamId/webhooks
// @Summary Register a webhook
// @Description The response carries the signing secret; it is not shown again
// @Tags webhooks
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param webhook body service.CreateWebhookRequest true "Webhook data"
// @Success 201 {object} service.WebhookResponse
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/webhooks [post]
func (h *WebhookHandler) Create(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	var req service.CreateWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	webhook, err := h.webhookService.Create(teamID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, webhook)
}

// List handles GET /api/v1/teams/:teamId/webhooks
// @Summary List webhooks
// @Tags webhooks
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Success 200 {array} service.WebhookResponse
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/webhooks [get]
func (h *WebhookHandler) List(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	webhooks, err := h.webhookService.List(teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, webhooks)
}

// Get handles GET /api/v1/teams/:teamId/webhooks/:id
// @Summary Get a webhook
// @Tags webhooks
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param id path string true "Webhook ID (UUID)"
// @Success 200 {object} service.WebhookResponse
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/webhooks/{id} [get]
func (h *WebhookHandler) Get(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "webhook")
	if !ok {
		return
	}
	webhook, err := h.webhookService.Get(teamID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, webhook)
}

// Update handles PATCH /api/v1/teams/:teamId/webhooks/:id
// @Summary Update a webhook
// @Tags webhooks
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param id path string true "Webhook ID (UUID)"
// @Param webhook body service.UpdateWebhookRequest true "Changes"
// @Success 200 {object} service.WebhookResponse
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/webhooks/{id} [patch]
func (h *WebhookHandler) Update(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "webhook")
	if !ok {
		return
	}
	var req service.UpdateWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	webhook, err := h.webhookService.Update(teamID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, webhook)
}

// Delete handles DELETE /api/v1/teams/:teamId/webhooks/:id
// @Summary Delete a webhook
// @Tags webhooks
// @Param teamId path string true "Team ID (UUID)"
// @Param id path string true "Webhook ID (UUID)"
// @Success 204 "Webhook deleted"
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/webhooks/{id} [delete]
func (h *WebhookHandler) Delete(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "webhook")
	if !ok {
		return
	}
	if err := h.webhookService.Delete(teamID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Deliveries handles GET /api/v1/teams/:teamId/webhooks/:id/deliveries
// @Summary List recent deliveries of a webhook
// @Tags webhooks
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param id path string true "Webhook ID (UUID)"
// @Success 200 {array} service.DeliveryResponse
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/webhooks/{id}/deliveries [get]
func (h *WebhookHandler) Deliveries(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "webhook")
	if !ok {
		return
	}
	deliveries, err := h.webhookService.ListDeliveries(teamID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, deliveries)
}
