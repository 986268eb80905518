package handlers

import (
	"net/http"

	"papermark-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for the signed-in user
type UserHandler struct {
	userService service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserServiceInterface) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetCurrentUser handles GET /api/v1/me
// @Summary Get current user
// @Description Returns the profile of the bearer token's user with the teams they belong to
// @Tags users
// @Produce json
// @Success 200 {object} service.UserResponse
// @Failure 401 {object} ErrorResponse "Missing user in token"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /api/v1/me [get]
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	user, err := h.userService.GetCurrentUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateCurrentUser handles PATCH /api/v1/me
// @Summary Update current user
// @Tags users
// @Accept json
// @Produce json
// @Param user body service.UpdateUserRequest true "Profile fields"
// @Success 200 {object} service.UserResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /api/v1/me [patch]
func (h *UserHandler) UpdateCurrentUser(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req service.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	user, err := h.userService.UpdateCurrentUser(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
