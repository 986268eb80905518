package auth

import (
	"errors"
	"net/http"
	"strings"

	apperrors "papermark-backend/internal/errors"
	"papermark-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// MessageResponse is a plain acknowledgement
type MessageResponse struct {
	Message string `json:"message" example:"Logged out successfully"`
}

// AuthURLResponse carries the provider consent URL
type AuthURLResponse struct {
	URL string `json:"url"`
}

// RequestEmail handles POST /api/auth/email
// @Summary Request a magic login link
// @Description Email a one-time login link valid for 24 hours
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body LoginEmailRequest true "Email address"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} map[string]interface{} "Invalid email"
// @Failure 429 {object} map[string]interface{} "Too many requests"
// @Router /api/auth/email [post]
func (h *AuthHandler) RequestEmail(c *gin.Context) {
	var req LoginEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if err := h.service.RequestLoginEmail(c.Request.Context(), &req); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Login link sent"})
}

// Verify handles GET /api/auth/verify
// @Summary Verify a magic login link
// @Tags authentication
// @Produce json
// @Param token query string true "Login token"
// @Param email query string true "Email address"
// @Success 200 {object} TokenResponse
// @Failure 401 {object} map[string]interface{} "Link invalid or expired"
// @Router /api/auth/verify [get]
func (h *AuthHandler) Verify(c *gin.Context) {
	req := VerifyLoginRequest{Email: c.Query("email"), Token: c.Query("token")}
	resp, err := h.service.VerifyLoginEmail(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GoogleStart handles GET /api/auth/google/start
// @Summary Start Google sign-in
// @Tags authentication
// @Produce json
// @Success 200 {object} AuthURLResponse
// @Failure 503 {object} map[string]interface{} "Google login not configured"
// @Router /api/auth/google/start [get]
func (h *AuthHandler) GoogleStart(c *gin.Context) {
	authURL, err := h.service.GoogleAuthURL(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, AuthURLResponse{URL: authURL})
}

// GoogleCallback handles GET /api/auth/google/callback
// @Summary Complete Google sign-in
// @Tags authentication
// @Produce json
// @Param code query string true "Authorization code"
// @Param state query string true "OAuth state"
// @Success 200 {object} TokenResponse
// @Failure 401 {object} map[string]interface{} "Invalid state or code"
// @Router /api/auth/google/callback [get]
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	if errParam := c.Query("error"); errParam != "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": errParam, "details": c.Query("error_description")})
		return
	}
	resp, err := h.service.HandleGoogleCallback(c.Request.Context(), c.Query("code"), c.Query("state"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Refresh handles POST /api/auth/refresh
// @Summary Refresh the access token
// @Description Rotate the refresh token; the old one stops working
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest true "Refresh token"
// @Success 200 {object} TokenResponse
// @Failure 401 {object} map[string]interface{} "Invalid or expired refresh token"
// @Router /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "refreshToken is required"})
		return
	}
	resp, err := h.service.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Logout handles POST /api/auth/logout
// @Summary Log out
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest false "Refresh token to revoke"
// @Success 200 {object} MessageResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	var req RefreshTokenRequest
	_ = c.ShouldBindJSON(&req)
	if err := h.service.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Logged out successfully"})
}

func (h *AuthHandler) fail(c *gin.Context, err error) {
	var (
		authErr       *apperrors.AuthenticationError
		configErr     *apperrors.ConfigurationError
		validationErr validator.ValidationErrors
	)
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": err.Error()})
	case errors.As(err, &authErr),
		errors.Is(err, apperrors.ErrInvalidRefreshToken),
		errors.Is(err, apperrors.ErrRefreshTokenExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.As(err, &configErr):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		logger.FromGinContext(c).WithError(err).Error("Authentication request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
