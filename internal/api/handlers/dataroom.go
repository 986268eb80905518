package handlers

import (
	"net/http"

	"papermark-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DataroomHandler handles HTTP requests for datarooms and their contents
type DataroomHandler struct {
	dataroomService service.DataroomServiceInterface
	linkService     service.LinkServiceInterface
}

// NewDataroomHandler creates a new dataroom handler
func NewDataroomHandler(dataroomService service.DataroomServiceInterface, linkService service.LinkServiceInterface) *DataroomHandler {
	return &DataroomHandler{
		dataroomService: dataroomService,
		linkService:     linkService,
	}
}

// Create handles POST /api/v1/teams/:teamId/datarooms
// @Summary Create a dataroom
// @Tags datarooms
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param dataroom body service.CreateDataroomRequest true "Dataroom data"
// @Success 201 {object} service.DataroomResponse
// @Failure 402 {object} ErrorResponse "Plan dataroom limit reached"
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/datarooms [post]
func (h *DataroomHandler) Create(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	var req service.CreateDataroomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	dataroom, err := h.dataroomService.Create(c.Request.Context(), teamID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dataroom)
}

// List handles GET /api/v1/teams/:teamId/datarooms
// @Summary List datarooms
// @Tags datarooms
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.DataroomListResponse
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/datarooms [get]
func (h *DataroomHandler) List(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	page, pageSize := pagination(c)
	datarooms, err := h.dataroomService.List(teamID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, datarooms)
}

// Get handles GET /api/v1/teams/:teamId/datarooms/:id
// @Summary Get a dataroom
// @Tags datarooms
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param id path string true "Dataroom ID (UUID)"
// @Success 200 {object} service.DataroomDetailResponse
// @Failure 404 {object} ErrorResponse "Dataroom not found"
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/datarooms/{id} [get]
func (h *DataroomHandler) Get(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "dataroom")
	if !ok {
		return
	}
	dataroom, err := h.dataroomService.Get(teamID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dataroom)
}

// Update handles PATCH /api/v1/teams/:teamId/datarooms/:id
// @Summary Update a dataroom
// @Tags datarooms
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param id path string true "Dataroom ID (UUID)"
// @Param dataroom body service.UpdateDataroomRequest true "Changes"
// @Success 200 {object} service.DataroomResponse
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/datarooms/{id} [patch]
func (h *DataroomHandler) Update(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "dataroom")
	if !ok {
		return
	}
	var req service.UpdateDataroomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	dataroom, err := h.dataroomService.Update(teamID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dataroom)
}

// Delete handles DELETE /api/v1/teams/:teamId/datarooms/:id
// @Summary Delete a dataroom
// @Tags datarooms
// @Param teamId path string true "Team ID (UUID)"
// @Param id path string true "Dataroom ID (UUID)"
// @Success 204 "Dataroom deleted"
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/datarooms/{id} [delete]
func (h *DataroomHandler) Delete(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "dataroom")
	if !ok {
		return
	}
	if err := h.dataroomService.Delete(teamID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Contents handles GET /api/v1/teams/:teamId/datarooms/:id/contents
// @Summary List the folders and documents at one level of a dataroom
// @Tags datarooms
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param id path string true "Dataroom ID (UUID)"
// @Param folder_id query string false "Dataroom folder ID (UUID); root when empty"
// @Success 200 {object} service.DataroomContentsResponse
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/datarooms/{id}/contents [get]
func (h *DataroomHandler) Contents(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "dataroom")
	if !ok {
		return
	}
	folderID, ok := optionalUUIDQuery(c, "folder_id")
	if !ok {
		return
	}
	contents, err := h.dataroomService.ListContents(teamID, id, folderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contents)
}

// AddDocuments handles POST /api/v1/teams/:teamId/datarooms/:id/documents
// @Summary Add team documents to a dataroom
// @Tags datarooms
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param id path string true "Dataroom ID (UUID)"
// @Param request body service.AddDataroomDocumentsRequest true "Documents"
// @Success 201 {array} service.DataroomDocumentResponse
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/datarooms/{id}/documents [post]
func (h *DataroomHandler) AddDocuments(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "dataroom")
	if !ok {
		return
	}
	var req service.AddDataroomDocumentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	docs, err := h.dataroomService.AddDocuments(teamID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, docs)
}

// MoveDocument handles PATCH /api/v1/teams/:teamId/datarooms/:id/documents/:dataroomDocumentId
// @Summary Move a dataroom document between folders
// @Tags datarooms
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param id path string true "Dataroom ID (UUID)"
// @Param dataroomDocumentId path string true "Dataroom document ID (UUID)"
// @Param request body service.MoveDataroomDocumentRequest true "Target folder"
// @Success 200 {object} service.DataroomDocumentResponse
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/datarooms/{id}/documents/{dataroomDocumentId} [patch]
func (h *DataroomHandler) MoveDocument(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "dataroom")
	if !ok {
		return
	}
	entryID, ok := uuidParam(c, "dataroomDocumentId", "dataroom document")
	if !ok {
		return
	}
	var req service.MoveDataroomDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	doc, err := h.dataroomService.MoveDocument(teamID, id, entryID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// RemoveDocument handles DELETE /api/v1/teams/:teamId/datarooms/:id/documents/:dataroomDocumentId
// @Summary Remove a document from a dataroom
// @Tags datarooms
// @Param teamId path string true "Team ID (UUID)"
// @Param id path string true "Dataroom ID (UUID)"
// @Param dataroomDocumentId path string true "Dataroom document ID (UUID)"
// @Success 204 "Document removed"
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/datarooms/{id}/documents/{dataroomDocumentId} [delete]
func (h *DataroomHandler) RemoveDocument(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "dataroom")
	if !ok {
		return
	}
	entryID, ok := uuidParam(c, "dataroomDocumentId", "dataroom document")
	if !ok {
		return
	}
	if err := h.dataroomService.RemoveDocument(teamID, id, entryID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateFolder handles POST /api/v1/teams/:teamId/datarooms/:id/folders
// @Summary Create a dataroom folder
// @Tags datarooms
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param id path string true "Dataroom ID (UUID)"
// @Param folder body service.CreateFolderRequest true "Folder data"
// @Success 201 {object} service.FolderResponse
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/datarooms/{id}/folders [post]
func (h *DataroomHandler) CreateFolder(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "dataroom")
	if !ok {
		return
	}
	var req service.CreateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	folder, err := h.dataroomService.CreateFolder(teamID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, folder)
}

// RenameFolder handles PATCH /api/v1/teams/:teamId/datarooms/:id/folders/:folderId
// @Summary Rename a dataroom folder
// @Tags datarooms
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param id path string true "Dataroom ID (UUID)"
// @Param folderId path string true "Folder ID (UUID)"
// @Param folder body service.RenameFolderRequest true "New name"
// @Success 200 {object} service.FolderResponse
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/datarooms/{id}/folders/{folderId} [patch]
func (h *DataroomHandler) RenameFolder(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "dataroom")
	if !ok {
		return
	}
	folderID, ok := uuidParam(c, "folderId", "folder")
	if !ok {
		return
	}
	var req service.RenameFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	folder, err := h.dataroomService.RenameFolder(teamID, id, folderID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, folder)
}

// DeleteFolder handles DELETE /api/v1/teams/:teamId/datarooms/:id/folders/:folderId
// @Summary Delete an empty dataroom folder
// @Tags datarooms
// @Param teamId path string true "Team ID (UUID)"
// @Param id path string true "Dataroom ID (UUID)"
// @Param folderId path string true "Folder ID (UUID)"
// @Success 204 "Folder deleted"
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/datarooms/{id}/folders/{folderId} [delete]
func (h *DataroomHandler) DeleteFolder(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "dataroom")
	if !ok {
		return
	}
	folderID, ok := uuidParam(c, "folderId", "folder")
	if !ok {
		return
	}
	if err := h.dataroomService.DeleteFolder(teamID, id, folderID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListLinks handles GET /api/v1/teams/:teamId/datarooms/:id/links
// @Summary List the links of a dataroom
// @Tags datarooms
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param id path string true "Dataroom ID (UUID)"
// @Param include_archived query bool false "Include archived links"
// @Success 200 {array} service.LinkResponse
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/datarooms/{id}/links [get]
func (h *DataroomHandler) ListLinks(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "dataroom")
	if !ok {
		return
	}
	links, err := h.linkService.ListByDataroom(teamID, id, boolQuery(c, "include_archived"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, links)
}
