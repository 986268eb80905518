package handlers

import (
	"net/http"

	"papermark-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler handles HTTP requests for views, stats and viewers
type AnalyticsHandler struct {
	viewService service.ViewServiceInterface
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(viewService service.ViewServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{viewService: viewService}
}

// DocumentViews handles GET /api/v1/teams/:teamId/documents/:id/views
// @Summary List the views of a document
// @Tags analytics
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param id path string true "Document ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.ViewListResponse
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/documents/{id}/views [get]
func (h *AnalyticsHandler) DocumentViews(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "document")
	if !ok {
		return
	}
	page, pageSize := pagination(c)
	views, err := h.viewService.ListDocumentViews(teamID, id, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// DocumentStats handles GET /api/v1/teams/:teamId/documents/:id/stats
// @Summary Get document view statistics
// @Tags analytics
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param id path string true "Document ID (UUID)"
// @Success 200 {object} service.DocumentStatsResponse
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/documents/{id}/stats [get]
func (h *AnalyticsHandler) DocumentStats(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "document")
	if !ok {
		return
	}
	stats, err := h.viewService.DocumentStats(teamID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ArchiveView handles POST /api/v1/teams/:teamId/views/:viewId/archive
// @Summary Exclude a view from analytics
// @Tags analytics
// @Accept json
// @Param teamId path string true "Team ID (UUID)"
// @Param viewId path string true "View ID (UUID)"
// @Param request body ArchiveRequest false "Archived flag"
// @Success 204 "View updated"
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/views/{viewId}/archive [post]
func (h *AnalyticsHandler) ArchiveView(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	viewID, ok := uuidParam(c, "viewId", "view")
	if !ok {
		return
	}
	var req ArchiveRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
	}
	if err := h.viewService.ArchiveView(teamID, viewID, req.value()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListViewers handles GET /api/v1/teams/:teamId/viewers
// @Summary List the dataroom viewers of a team
// @Tags analytics
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.ViewerListResponse
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/viewers [get]
func (h *AnalyticsHandler) ListViewers(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	page, pageSize := pagination(c)
	viewers, err := h.viewService.ListViewers(teamID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewers)
}

// GetViewer handles GET /api/v1/teams/:teamId/viewers/:viewerId
// @Summary Get a viewer with their views
// @Tags analytics
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param viewerId path string true "Viewer ID (UUID)"
// @Success 200 {object} service.ViewerDetailResponse
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/viewers/{viewerId} [get]
func (h *AnalyticsHandler) GetViewer(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	viewerID, ok := uuidParam(c, "viewerId", "viewer")
	if !ok {
		return
	}
	viewer, err := h.viewService.GetViewer(teamID, viewerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewer)
}
