package handlers

import (
	"net/http"

	"papermark-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FolderHandler handles HTTP requests for team folders
type FolderHandler struct {
	folderService service.FolderServiceInterface
}

// NewFolderHandler creates a new folder handler
func NewFolderHandler(folderService service.FolderServiceInterface) *FolderHandler {
	return &FolderHandler{folderService: folderService}
}

// Create handles POST /api/v1/teams/:teamId/folders
// @Summary Create a folder
// @Tags folders
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param folder body service.CreateFolderRequest true "Folder data"
// @Success 201 {object} service.FolderResponse
// @Failure 409 {object} ErrorResponse "Folder already exists at this path"
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/folders [post]
func (h *FolderHandler) Create(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	var req service.CreateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	folder, err := h.folderService.Create(teamID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, folder)
}

// List handles GET /api/v1/teams/:teamId/folders
// @Summary List the folders under a parent
// @Tags folders
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param parent_id query string false "Parent folder ID (UUID); root when empty"
// @Success 200 {array} service.FolderResponse
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/folders [get]
func (h *FolderHandler) List(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	parentID, ok := optionalUUIDQuery(c, "parent_id")
	if !ok {
		return
	}
	folders, err := h.folderService.List(teamID, parentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, folders)
}

// Rename handles PATCH /api/v1/teams/:teamId/folders/:id
// @Summary Rename a folder
// @Tags folders
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param id path string true "Folder ID (UUID)"
// @Param folder body service.RenameFolderRequest true "New name"
// @Success 200 {object} service.FolderResponse
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/folders/{id} [patch]
func (h *FolderHandler) Rename(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "folder")
	if !ok {
		return
	}
	var req service.RenameFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	folder, err := h.folderService.Rename(teamID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, folder)
}

// Delete handles DELETE /api/v1/teams/:teamId/folders/:id
// @Summary Delete an empty folder
// @Tags folders
// @Param teamId path string true "Team ID (UUID)"
// @Param id path string true "Folder ID (UUID)"
// @Success 204 "Folder deleted"
// @Failure 409 {object} ErrorResponse "Folder still has sub-folders"
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/folders/{id} [delete]
func (h *FolderHandler) Delete(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "folder")
	if !ok {
		return
	}
	if err := h.folderService.Delete(teamID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
