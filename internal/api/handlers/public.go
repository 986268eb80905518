package handlers

import (
	"fmt"
	"net/http"

	"papermark-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PublicHandler serves the unauthenticated visitor side of share links
type PublicHandler struct {
	linkService         service.LinkServiceInterface
	verificationService service.VerificationServiceInterface
	viewService         service.ViewServiceInterface
}

// NewPublicHandler creates a new public link handler
func NewPublicHandler(linkService service.LinkServiceInterface, verificationService service.VerificationServiceInterface, viewService service.ViewServiceInterface) *PublicHandler {
	return &PublicHandler{
		linkService:         linkService,
		verificationService: verificationService,
		viewService:         viewService,
	}
}

// GetLink handles GET /api/links/:id
// @Summary Get the public face of a link
// @Description Returns the gates a visitor must pass; never the content itself
// @Tags public
// @Produce json
// @Param id path string true "Link ID (UUID)"
// @Success 200 {object} service.PublicLinkResponse
// @Failure 404 {object} ErrorResponse "Link not found"
// @Failure 410 {object} ErrorResponse "Link archived or expired"
// @Router /api/links/{id} [get]
func (h *PublicHandler) GetLink(c *gin.Context) {
	id, ok := uuidParam(c, "id", "link")
	if !ok {
		return
	}
	link, err := h.linkService.GetPublic(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, link)
}

// GetLinkBySlug handles GET /api/links/domains/:domain/:slug
// @Summary Resolve a custom domain link
// @Tags public
// @Produce json
// @Param domain path string true "Custom domain"
// @Param slug path string true "Link slug"
// @Success 200 {object} service.PublicLinkResponse
// @Failure 404 {object} ErrorResponse "Link not found"
// @Router /api/links/domains/{domain}/{slug} [get]
func (h *PublicHandler) GetLinkBySlug(c *gin.Context) {
	link, err := h.linkService.GetPublicBySlug(c.Param("domain"), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, link)
}

// RequestOTP handles POST /api/links/:id/otp
// @Summary Email a verification code for a link
// @Tags public
// @Accept json
// @Produce json
// @Param id path string true "Link ID (UUID)"
// @Param request body service.RequestOTPRequest true "Visitor email"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} ErrorResponse "Email not allowed"
// @Failure 429 {object} ErrorResponse "Code sent too recently"
// @Router /api/links/{id}/otp [post]
func (h *PublicHandler) RequestOTP(c *gin.Context) {
	id, ok := uuidParam(c, "id", "link")
	if !ok {
		return
	}
	var req service.RequestOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if err := h.verificationService.RequestOTP(c.Request.Context(), id, &req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Verification code sent"})
}

// RecordView handles POST /api/links/:id/views
// @Summary Pass the link gates and record a view
// @Description Answers 401/403 with a stable code when a gate is not satisfied
// @Tags public
// @Accept json
// @Produce json
// @Param id path string true "Link ID (UUID)"
// @Param request body service.RecordViewRequest true "Visitor credentials"
// @Success 200 {object} service.RecordViewResponse
// @Failure 401 {object} ErrorResponse "Email, password or code required"
// @Failure 403 {object} ErrorResponse "Email not allowed"
// @Failure 410 {object} ErrorResponse "Link archived or expired"
// @Router /api/links/{id}/views [post]
func (h *PublicHandler) RecordView(c *gin.Context) {
	id, ok := uuidParam(c, "id", "link")
	if !ok {
		return
	}
	var req service.RecordViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	req.UserAgent = c.Request.UserAgent()
	req.IPAddress = c.ClientIP()
	req.Country = visitorCountry(c)

	resp, err := h.viewService.RecordView(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RecordPageView handles POST /api/views/:viewId/pages
// @Summary Record time spent on a page
// @Tags public
// @Accept json
// @Param viewId path string true "View ID (UUID)"
// @Param request body service.RecordPageViewRequest true "Page view"
// @Success 204 "Recorded"
// @Router /api/views/{viewId}/pages [post]
func (h *PublicHandler) RecordPageView(c *gin.Context) {
	viewID, ok := uuidParam(c, "viewId", "view")
	if !ok {
		return
	}
	var req service.RecordPageViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if err := h.viewService.RecordPageView(viewID, &req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Download handles GET /api/views/:viewId/download
// @Summary Download the viewed document
// @Description Redirects to a presigned URL, or streams a watermarked PDF when the link watermarks
// @Tags public
// @Produce application/octet-stream
// @Param viewId path string true "View ID (UUID)"
// @Success 200 {file} file "Watermarked file"
// @Success 302 "Redirect to the stored file"
// @Failure 403 {object} ErrorResponse "Downloads disabled"
// @Router /api/views/{viewId}/download [get]
func (h *PublicHandler) Download(c *gin.Context) {
	viewID, ok := uuidParam(c, "viewId", "view")
	if !ok {
		return
	}
	result, err := h.viewService.Download(c.Request.Context(), viewID, &service.DownloadRequest{IPAddress: c.ClientIP()})
	if err != nil {
		respondError(c, err)
		return
	}
	if result.URL != "" {
		c.Redirect(http.StatusFound, result.URL)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Content)
}

func visitorCountry(c *gin.Context) string {
	for _, header := range []string{"CF-IPCountry", "X-Vercel-IP-Country", "X-Country-Code"} {
		if value := c.GetHeader(header); value != "" {
			return value
		}
	}
	return ""
}
