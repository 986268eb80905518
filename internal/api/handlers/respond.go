package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"papermark-backend/internal/api/middleware"
	"papermark-backend/internal/auth"
	apperrors "papermark-backend/internal/errors"
	"papermark-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error   string `json:"error" example:"error message"`
	Code    string `json:"code,omitempty" example:"EMAIL_REQUIRED"`
	Details string `json:"details,omitempty"`
}

// MessageResponse is a plain acknowledgement
type MessageResponse struct {
	Message string `json:"message"`
}

var conflictErrors = []error{
	apperrors.ErrLastAdmin,
	apperrors.ErrFolderNotEmpty,
	apperrors.ErrActiveSubscription,
	apperrors.ErrDocumentInTrash,
}

var badRequestErrors = []error{
	apperrors.ErrInvalidPaginationParams,
	apperrors.ErrLinkTargetInvalid,
	apperrors.ErrOTPNotEnabled,
	apperrors.ErrNoBillingCustomer,
	apperrors.ErrUnknownPlan,
	apperrors.ErrWebhookSignature,
	apperrors.ErrStorageKeyOutsideTeam,
}

// respondError maps service errors onto HTTP statuses
func respondError(c *gin.Context, err error) {
	if accessErr, ok := apperrors.AsLinkAccess(err); ok {
		c.JSON(accessErr.Status, ErrorResponse{Error: accessErr.Message, Code: accessErr.Code})
		return
	}

	var validationErrs validator.ValidationErrors
	status := http.StatusInternalServerError
	switch {
	case apperrors.IsNotFound(err):
		status = http.StatusNotFound
	case apperrors.IsAlreadyExists(err):
		status = http.StatusConflict
	case apperrors.IsValidation(err), errors.As(err, &validationErrs):
		status = http.StatusBadRequest
	case apperrors.IsAuthentication(err),
		errors.Is(err, apperrors.ErrInvalidRefreshToken),
		errors.Is(err, apperrors.ErrRefreshTokenExpired):
		status = http.StatusUnauthorized
	case apperrors.IsAuthorization(err), errors.Is(err, apperrors.ErrInvitationEmailMismatch):
		status = http.StatusForbidden
	case apperrors.IsLimitExceeded(err):
		status = http.StatusPaymentRequired
	case apperrors.IsConfiguration(err), errors.Is(err, apperrors.ErrJobQueueFull):
		status = http.StatusServiceUnavailable
	case errors.Is(err, apperrors.ErrOTPThrottled):
		status = http.StatusTooManyRequests
	case errors.Is(err, apperrors.ErrInvitationExpired):
		status = http.StatusGone
	case isAny(err, conflictErrors):
		status = http.StatusConflict
	case isAny(err, badRequestErrors):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		logger.FromGinContext(c).WithError(err).Error("Request failed")
		c.JSON(status, ErrorResponse{Error: "Internal server error"})
		return
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// uuidParam parses a path parameter, answering 400 when it is not a UUID
func uuidParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		badRequest(c, "invalid "+label+" ID")
		return uuid.Nil, false
	}
	return id, true
}

// optionalUUIDQuery parses an optional query UUID; "root" or empty yields nil
func optionalUUIDQuery(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" || raw == "root" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		badRequest(c, "invalid "+name)
		return nil, false
	}
	return &id, true
}

// pathTeamID returns the team resolved by the membership middleware, falling back to the path
func pathTeamID(c *gin.Context) (uuid.UUID, bool) {
	if id, ok := middleware.GetTeamID(c); ok {
		return id, true
	}
	return uuidParam(c, "teamId", "team")
}

// currentUser returns the authenticated user or answers 401
func currentUser(c *gin.Context) (uuid.UUID, bool) {
	id, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: apperrors.ErrUserIDNotFound.Error()})
		return uuid.Nil, false
	}
	return id, true
}

func pagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}

func boolQuery(c *gin.Context, name string) bool {
	value, err := strconv.ParseBool(c.Query(name))
	return err == nil && value
}
