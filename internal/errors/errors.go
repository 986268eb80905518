package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in team"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// LimitExceededError is returned when a team's plan does not allow another resource
type LimitExceededError struct {
	Resource string
	Limit    int
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("plan limit reached: at most %d %s allowed", e.Limit, e.Resource)
}

// Is enables errors.Is() comparison for LimitExceededError
func (e *LimitExceededError) Is(target error) bool {
	t, ok := target.(*LimitExceededError)
	if !ok {
		return false
	}
	return t.Resource == "" || e.Resource == t.Resource
}

// LinkAccessError is returned when a visitor fails one of the gates of a shared link.
// Code is stable and meant for clients; Status is the HTTP status to answer with.
type LinkAccessError struct {
	Code    string
	Message string
	Status  int
}

func (e *LinkAccessError) Error() string {
	return e.Message
}

// Is matches on Code only
func (e *LinkAccessError) Is(target error) bool {
	t, ok := target.(*LinkAccessError)
	if !ok {
		return false
	}
	return t.Code == "" || e.Code == t.Code
}

// Entity Not Found Errors
var (
	ErrTeamNotFound              = &NotFoundError{Entity: "team"}
	ErrUserNotFound              = &NotFoundError{Entity: "user"}
	ErrMemberNotFound            = &NotFoundError{Entity: "team member"}
	ErrInvitationNotFound        = &NotFoundError{Entity: "invitation"}
	ErrDocumentNotFound          = &NotFoundError{Entity: "document"}
	ErrDocumentVersionNotFound   = &NotFoundError{Entity: "document version"}
	ErrFolderNotFound            = &NotFoundError{Entity: "folder"}
	ErrDataroomNotFound          = &NotFoundError{Entity: "dataroom"}
	ErrDataroomFolderNotFound    = &NotFoundError{Entity: "dataroom folder"}
	ErrDataroomDocumentNotFound  = &NotFoundError{Entity: "dataroom document"}
	ErrLinkNotFound              = &NotFoundError{Entity: "link"}
	ErrViewNotFound              = &NotFoundError{Entity: "view"}
	ErrViewerNotFound            = &NotFoundError{Entity: "viewer"}
	ErrWebhookNotFound           = &NotFoundError{Entity: "webhook"}
	ErrNotificationNotFound      = &NotFoundError{Entity: "notification"}
	ErrVerificationTokenNotFound = &NotFoundError{Entity: "verification token"}
)

// Already Exists Errors
var (
	ErrMemberExists         = &AlreadyExistsError{Entity: "team member", Context: "in this team"}
	ErrInvitationExists     = &AlreadyExistsError{Entity: "invitation", Context: "for this email"}
	ErrFolderExists         = &AlreadyExistsError{Entity: "folder", Context: "at this path"}
	ErrDataroomFolderExists = &AlreadyExistsError{Entity: "dataroom folder", Context: "at this path"}
	ErrSlugExists           = &AlreadyExistsError{Entity: "link", Context: "with this slug"}
	ErrVersionExists        = &AlreadyExistsError{Entity: "document version", Context: "with this number"}
)

// Plan limit errors
var (
	ErrDocumentLimit = &LimitExceededError{Resource: "documents"}
	ErrLinkLimit     = &LimitExceededError{Resource: "links"}
	ErrDataroomLimit = &LimitExceededError{Resource: "datarooms"}
	ErrUserLimit     = &LimitExceededError{Resource: "users"}
)

// Link access errors
var (
	ErrLinkArchived         = &LinkAccessError{Code: "LINK_ARCHIVED", Message: "link is archived", Status: 410}
	ErrLinkExpired          = &LinkAccessError{Code: "LINK_EXPIRED", Message: "link has expired", Status: 410}
	ErrEmailRequired        = &LinkAccessError{Code: "EMAIL_REQUIRED", Message: "email is required", Status: 401}
	ErrInvalidEmail         = &LinkAccessError{Code: "INVALID_EMAIL", Message: "email is invalid", Status: 400}
	ErrEmailNotAllowed      = &LinkAccessError{Code: "EMAIL_NOT_ALLOWED", Message: "email is not allowed to access this link", Status: 403}
	ErrEmailDenied          = &LinkAccessError{Code: "EMAIL_DENIED", Message: "email is denied access to this link", Status: 403}
	ErrPasswordRequired     = &LinkAccessError{Code: "PASSWORD_REQUIRED", Message: "password is required", Status: 401}
	ErrInvalidPassword      = &LinkAccessError{Code: "INVALID_PASSWORD", Message: "password is incorrect", Status: 401}
	ErrVerificationRequired = &LinkAccessError{Code: "VERIFICATION_REQUIRED", Message: "verification code is required", Status: 401}
	ErrInvalidCode          = &LinkAccessError{Code: "INVALID_CODE", Message: "verification code is invalid or expired", Status: 401}
	ErrDownloadNotAllowed   = &LinkAccessError{Code: "DOWNLOAD_NOT_ALLOWED", Message: "downloads are disabled for this link", Status: 403}
)

// Business Logic Errors
var (
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrLastAdmin               = errors.New("team must keep at least one admin")
	ErrFolderNotEmpty          = errors.New("folder still contains sub-folders")
	ErrActiveSubscription      = errors.New("team has an active subscription")
	ErrLinkTargetInvalid       = errors.New("exactly one of documentId or dataroomId is required")
	ErrDocumentInTrash         = errors.New("document is in trash")
	ErrStorageKeyOutsideTeam   = errors.New("storage key does not belong to team")
	ErrOTPNotEnabled           = errors.New("link does not use email verification")
	ErrOTPThrottled            = errors.New("a verification code was sent recently")
	ErrInvitationExpired       = errors.New("invitation has expired")
	ErrInvitationEmailMismatch = errors.New("invitation was issued to a different email")
	ErrNoBillingCustomer       = errors.New("team has no billing customer")
	ErrUnknownPlan             = errors.New("unknown plan")
	ErrWebhookSignature        = errors.New("invalid webhook signature")
	ErrJobQueueFull            = errors.New("job queue is full")
)

// Authentication Errors
var (
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token has expired")
	ErrInvalidLoginToken   = &AuthenticationError{Message: "login link is invalid or expired"}
	ErrInvalidOAuthState   = &AuthenticationError{Message: "invalid oauth state"}
	ErrUserIDNotFound      = &AuthenticationError{Message: "user id not found in context"}

	ErrNotTeamMember    = &AuthorizationError{Message: "user is not a member of this team"}
	ErrInsufficientRole = &AuthorizationError{Message: "user role does not allow this action"}
)

// Configuration Errors
var (
	ErrStorageNotConfigured = &ConfigurationError{Message: "object storage is not configured"}
	ErrBillingNotConfigured = &ConfigurationError{Message: "stripe is not configured"}
	ErrGoogleNotConfigured  = &ConfigurationError{Message: "google oauth is not configured"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.Is(err, &NotFoundError{}) || errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.Is(err, &AlreadyExistsError{}) || errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.Is(err, &ValidationError{}) || errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.Is(err, &AuthenticationError{}) || errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.Is(err, &AuthorizationError{}) || errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.Is(err, &ConfigurationError{}) || errors.As(err, &configErr)
}

// IsLimitExceeded checks if an error is a LimitExceededError
func IsLimitExceeded(err error) bool {
	var limitErr *LimitExceededError
	return errors.As(err, &limitErr)
}

// AsLinkAccess extracts a LinkAccessError from the chain
func AsLinkAccess(err error) (*LinkAccessError, bool) {
	var accessErr *LinkAccessError
	if errors.As(err, &accessErr) {
		return accessErr, true
	}
	return nil, false
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewLimitExceededError creates a LimitExceededError carrying the plan's limit
func NewLimitExceededError(resource string, limit int) error {
	return &LimitExceededError{Resource: resource, Limit: limit}
}
