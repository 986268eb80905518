package handlers

import (
	"net/http"

	"papermark-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LinkHandler handles HTTP requests for team managed share links
type LinkHandler struct {
	linkService service.LinkServiceInterface
}

// NewLinkHandler creates a new link handler
func NewLinkHandler(linkService service.LinkServiceInterface) *LinkHandler {
	return &LinkHandler{linkService: linkService}
}

// ArchiveRequest toggles the archived flag; omitted means archive
type ArchiveRequest struct {
	Archived *bool `json:"archived,omitempty"`
}

func (r ArchiveRequest) value() bool {
	return r.Archived == nil || *r.Archived
}

// Create handles POST /api/v1/teams/:teamId/links
// @Summary Create a share link
// @Description Exactly one of document_id or dataroom_id is required
// @Tags links
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param link body service.CreateLinkRequest true "Link settings"
// @Success 201 {object} service.LinkResponse
// @Failure 400 {object} ErrorResponse "Invalid link target"
// @Failure 402 {object} ErrorResponse "Plan link limit reached"
// @Failure 409 {object} ErrorResponse "Slug already used on this domain"
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/links [post]
func (h *LinkHandler) Create(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req service.CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	link, err := h.linkService.Create(c.Request.Context(), teamID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, link)
}

// Get handles GET /api/v1/teams/:teamId/links/:id
// @Summary Get a share link
// @Tags links
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param id path string true "Link ID (UUID)"
// @Success 200 {object} service.LinkResponse
// @Failure 404 {object} ErrorResponse "Link not found"
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/links/{id} [get]
func (h *LinkHandler) Get(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "link")
	if !ok {
		return
	}
	link, err := h.linkService.Get(teamID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, link)
}

// Update handles PATCH /api/v1/teams/:teamId/links/:id
// @Summary Update a share link
// @Tags links
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param id path string true "Link ID (UUID)"
// @Param link body service.UpdateLinkRequest true "Link settings"
// @Success 200 {object} service.LinkResponse
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/links/{id} [patch]
func (h *LinkHandler) Update(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "link")
	if !ok {
		return
	}
	var req service.UpdateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	link, err := h.linkService.Update(teamID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, link)
}

// Archive handles POST /api/v1/teams/:teamId/links/:id/archive
// @Summary Archive or unarchive a share link
// @Tags links
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param id path string true "Link ID (UUID)"
// @Param request body ArchiveRequest false "Archived flag"
// @Success 200 {object} service.LinkResponse
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/links/{id}/archive [post]
func (h *LinkHandler) Archive(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "link")
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
	link, err := h.linkService.Archive(teamID, id, req.value())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, link)
}

// Delete handles DELETE /api/v1/teams/:teamId/links/:id
// @Summary Delete a share link
// @Tags links
// @Param teamId path string true "Team ID (UUID)"
// @Param id path string true "Link ID (UUID)"
// @Success 204 "Link deleted"
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/links/{id} [delete]
func (h *LinkHandler) Delete(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "link")
	if !ok {
		return
	}
	if err := h.linkService.Delete(teamID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
