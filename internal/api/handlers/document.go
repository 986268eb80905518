package handlers

import (
	"net/http"
	"strconv"

	"papermark-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DocumentHandler handles HTTP requests for documents, versions and trash
type DocumentHandler struct {
	documentService service.DocumentServiceInterface
	linkService     service.LinkServiceInterface
	maxUploadBytes  int64
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService service.DocumentServiceInterface, linkService service.LinkServiceInterface, maxUploadBytes int64) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		linkService:     linkService,
		maxUploadBytes:  maxUploadBytes,
	}
}

// readUpload extracts the multipart "file" field
func (h *DocumentHandler) readUpload(c *gin.Context) (*service.UploadFile, func(), bool) {
	header, err := c.FormFile("file")
	if err != nil {
		badRequest(c, "file is required")
		return nil, nil, false
	}
	if h.maxUploadBytes > 0 && header.Size > h.maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "file exceeds the maximum upload size"})
		return nil, nil, false
	}
	file, err := header.Open()
	if err != nil {
		badRequest(c, "failed to read upload")
		return nil, nil, false
	}
	return &service.UploadFile{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     file,
	}, func() { _ = file.Close() }, true
}

// Upload handles POST /api/v1/teams/:teamId/documents
// @Summary Upload a document
// @Description Multipart upload; the file becomes version 1 of a new document
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param file formData file true "Document file"
// @Param name formData string false "Display name"
// @Param folder_id formData string false "Folder ID (UUID)"
// @Success 201 {object} service.DocumentResponse
// @Failure 402 {object} ErrorResponse "Plan document limit reached"
// @Failure 413 {object} ErrorResponse "File too large"
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/documents [post]
func (h *DocumentHandler) Upload(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	req := service.UploadDocumentRequest{Name: c.PostForm("name")}
	if raw := c.PostForm("folder_id"); raw != "" {
		folderID, err := uuid.Parse(raw)
		if err != nil {
			badRequest(c, "invalid folder_id")
			return
		}
		req.FolderID = &folderID
	}
	file, closeFile, ok := h.readUpload(c)
	if !ok {
		return
	}
	defer closeFile()

	doc, err := h.documentService.Upload(c.Request.Context(), teamID, userID, file, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// PresignUpload handles POST /api/v1/teams/:teamId/documents/presign
// @Summary Get a direct upload URL
// @Tags documents
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param request body service.PresignUploadRequest true "File metadata"
// @Success 200 {object} service.PresignUploadResponse
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/documents/presign [post]
func (h *DocumentHandler) PresignUpload(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	var req service.PresignUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	resp, err := h.documentService.PresignUpload(c.Request.Context(), teamID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Register handles POST /api/v1/teams/:teamId/documents/register
// @Summary Register a directly uploaded document
// @Tags documents
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param request body service.RegisterDocumentRequest true "Uploaded object"
// @Success 201 {object} service.DocumentResponse
// @Failure 400 {object} ErrorResponse "Key outside the team prefix"
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/documents/register [post]
func (h *DocumentHandler) Register(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req service.RegisterDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	doc, err := h.documentService.Register(c.Request.Context(), teamID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// List handles GET /api/v1/teams/:teamId/documents
// @Summary List documents
// @Tags documents
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param q query string false "Name search"
// @Param folder_id query string false "Folder ID (UUID) or root"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.DocumentListResponse
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/documents [get]
func (h *DocumentHandler) List(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	folderID, ok := optionalUUIDQuery(c, "folder_id")
	if !ok {
		return
	}
	page, pageSize := pagination(c)
	query := &service.ListDocumentsQuery{
		Query:    c.Query("q"),
		FolderID: folderID,
		RootOnly: c.Query("folder_id") == "root",
		Page:     page,
		PageSize: pageSize,
	}

	docs, err := h.documentService.List(teamID, query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// Get handles GET /api/v1/teams/:teamId/documents/:id
// @Summary Get a document
// @Tags documents
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param id path string true "Document ID (UUID)"
// @Success 200 {object} service.DocumentDetailResponse
// @Failure 404 {object} ErrorResponse "Document not found"
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/documents/{id} [get]
func (h *DocumentHandler) Get(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "document")
	if !ok {
		return
	}
	doc, err := h.documentService.Get(teamID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// Update handles PATCH /api/v1/teams/:teamId/documents/:id
// @Summary Rename or move a document
// @Tags documents
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param id path string true "Document ID (UUID)"
// @Param request body service.UpdateDocumentRequest true "Changes"
// @Success 200 {object} service.DocumentResponse
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/documents/{id} [patch]
func (h *DocumentHandler) Update(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "document")
	if !ok {
		return
	}
	var req service.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	doc, err := h.documentService.Update(teamID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// Delete handles DELETE /api/v1/teams/:teamId/documents/:id
// @Summary Move a document to the trash
// @Tags documents
// @Param teamId path string true "Team ID (UUID)"
// @Param id path string true "Document ID (UUID)"
// @Success 204 "Document trashed"
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/documents/{id} [delete]
func (h *DocumentHandler) Delete(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "document")
	if !ok {
		return
	}
	if err := h.documentService.Delete(teamID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DownloadURL handles GET /api/v1/teams/:teamId/documents/:id/download-url
// @Summary Get a presigned download URL for the primary version
// @Tags documents
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param id path string true "Document ID (UUID)"
// @Success 200 {object} service.DownloadURLResponse
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/documents/{id}/download-url [get]
func (h *DocumentHandler) DownloadURL(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "document")
	if !ok {
		return
	}
	resp, err := h.documentService.GetDownloadURL(c.Request.Context(), teamID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListVersions handles GET /api/v1/teams/:teamId/documents/:id/versions
// @Summary List document versions
// @Tags documents
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param id path string true "Document ID (UUID)"
// @Success 200 {array} service.VersionResponse
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/documents/{id}/versions [get]
func (h *DocumentHandler) ListVersions(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "document")
	if !ok {
		return
	}
	versions, err := h.documentService.ListVersions(teamID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, versions)
}

// AddVersion handles POST /api/v1/teams/:teamId/documents/:id/versions
// @Summary Add a document version
// @Description Accepts a multipart file, or JSON registering a directly uploaded object
// @Tags documents
// @Accept multipart/form-data,json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param id path string true "Document ID (UUID)"
// @Param file formData file false "Version file"
// @Success 201 {object} service.VersionResponse
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/documents/{id}/versions [post]
func (h *DocumentHandler) AddVersion(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "document")
	if !ok {
		return
	}

	var (
		version *service.VersionResponse
		err     error
	)
	if c.ContentType() == "application/json" {
		var req service.RegisterVersionRequest
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			badRequest(c, bindErr.Error())
			return
		}
		version, err = h.documentService.AddVersionFromKey(c.Request.Context(), teamID, id, &req)
	} else {
		file, closeFile, ok := h.readUpload(c)
		if !ok {
			return
		}
		defer closeFile()
		version, err = h.documentService.AddVersion(c.Request.Context(), teamID, id, file)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, version)
}

// PromoteVersion handles POST /api/v1/teams/:teamId/documents/:id/versions/:version/promote
// @Summary Make a version primary
// @Tags documents
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param id path string true "Document ID (UUID)"
// @Param version path int true "Version number"
// @Success 200 {object} service.VersionResponse
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/documents/{id}/versions/{version}/promote [post]
func (h *DocumentHandler) PromoteVersion(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "document")
	if !ok {
		return
	}
	number, err := strconv.Atoi(c.Param("version"))
	if err != nil || number < 1 {
		badRequest(c, "invalid version number")
		return
	}
	version, err := h.documentService.PromoteVersion(teamID, id, number)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, version)
}

// ListLinks handles GET /api/v1/teams/:teamId/documents/:id/links
// @Summary List the links of a document
// @Tags documents
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param id path string true "Document ID (UUID)"
// @Param include_archived query bool false "Include archived links"
// @Success 200 {array} service.LinkResponse
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/documents/{id}/links [get]
func (h *DocumentHandler) ListLinks(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "document")
	if !ok {
		return
	}
	links, err := h.linkService.ListByDocument(teamID, id, boolQuery(c, "include_archived"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, links)
}

// ListTrash handles GET /api/v1/teams/:teamId/trash
// @Summary List trashed documents
// @Tags documents
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Success 200 {array} service.TrashItemResponse
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/trash [get]
func (h *DocumentHandler) ListTrash(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	items, err := h.documentService.ListTrash(teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Restore handles POST /api/v1/teams/:teamId/trash/:id/restore
// @Summary Restore a trashed document
// @Tags documents
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param id path string true "Document ID (UUID)"
// @Success 200 {object} service.DocumentResponse
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/trash/{id}/restore [post]
func (h *DocumentHandler) Restore(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "document")
	if !ok {
		return
	}
	doc, err := h.documentService.Restore(teamID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// Purge handles DELETE /api/v1/teams/:teamId/trash/:id
// @Summary Permanently delete a trashed document
// @Tags documents
// @Param teamId path string true "Team ID (UUID)"
// @Param id path string true "Document ID (UUID)"
// @Success 204 "Document purged"
// @Security BearerAuth
// @Router /api/v1/teams/{teamId}/trash/{id} [delete]
func (h *DocumentHandler) Purge(c *gin.Context) {
	teamID, ok := pathTeamID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "document")
	if !ok {
		return
	}
	if err := h.documentService.Purge(c.Request.Context(), teamID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
