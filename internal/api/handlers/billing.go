package handlers

import (
	"io"
	"net/http"

	"papermark-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const maxStripePayloadBytes = 65536

// BillingHandler handles HTTP requests for plans, Stripe sessions and Stripe events
type BillingHandler struct {
	billingService service.BillingServiceInterface
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billingService service.BillingServiceInterface) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

// Status handles GET /api/v1/teams/:teamId/billing
// @Summary Get plan, limits and usage
// @Tags billing
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Success 200 {object} service.BillingStatusResponse
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/billing [get]
func (h *BillingHandler) Status(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	status, err := h.billingService.Status(teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// Checkout handles POST /api/v1/teams/:teamId/billing/checkout
// @Summary Start a Stripe Checkout session
// @Tags billing
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param request body service.CheckoutRequest true "Plan"
// @Success 200 {object} service.SessionResponse
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Failure 503 {object} ErrorResponse "Stripe not configured"
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/billing/checkout [post]
func (h *BillingHandler) Checkout(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req service.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	session, err := h.billingService.Checkout(c.Request.Context(), teamID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Portal handles POST /api/v1/teams/:teamId/billing/portal
// @Summary Open the Stripe billing portal
// @Tags billing
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Success 200 {object} service.SessionResponse
// @Failure 400 {object} ErrorResponse "Team has no billing customer"
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/billing/portal [post]
func (h *BillingHandler) Portal(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	session, err := h.billingService.Portal(c.Request.Context(), teamID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// StripeWebhook handles POST /api/stripe/webhook
// @Summary Receive Stripe events
// @Tags billing
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Stripe signature"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Invalid signature"
// @Router /api/stripe/webhook [post]
func (h *BillingHandler) StripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxStripePayloadBytes))
	if err != nil {
		badRequest(c, "failed to read body")
		return
	}
	if err := h.billingService.HandleWebhook(c.Request.Context(), payload, c.GetHeader("Stripe-Signature")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "received"})
}
