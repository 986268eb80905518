package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "document"}
		assert.Equal(t, "document not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "document"}
		err2 := &NotFoundError{Entity: "document"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "document"}
		err2 := &NotFoundError{Entity: "link"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to get document: %w", ErrDocumentNotFound)
		assert.True(t, errors.Is(wrapped, ErrDocumentNotFound))
		assert.False(t, errors.Is(wrapped, ErrLinkNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrTeamNotFound))
		assert.False(t, IsNotFound(ErrLastAdmin))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "link", Context: "with this slug"}
		assert.Equal(t, "link already exists with this slug", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "folder"}
		assert.Equal(t, "folder already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrSlugExists))
		assert.False(t, IsAlreadyExists(ErrTeamNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("email", "invalid")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrTeamNotFound))
	})
}

func TestLimitExceededError(t *testing.T) {
	err := NewLimitExceededError("documents", 50)
	assert.Equal(t, "plan limit reached: at most 50 documents allowed", err.Error())
	assert.True(t, IsLimitExceeded(err))
	assert.True(t, errors.Is(err, ErrDocumentLimit))
	assert.False(t, errors.Is(err, ErrLinkLimit))
	assert.False(t, IsLimitExceeded(ErrDocumentNotFound))
}

func TestLinkAccessError(t *testing.T) {
	wrapped := fmt.Errorf("access check: %w", ErrEmailDenied)

	accessErr, ok := AsLinkAccess(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "EMAIL_DENIED", accessErr.Code)
	assert.Equal(t, 403, accessErr.Status)
	assert.True(t, errors.Is(wrapped, ErrEmailDenied))
	assert.False(t, errors.Is(wrapped, ErrEmailNotAllowed))

	_, ok = AsLinkAccess(ErrLinkNotFound)
	assert.False(t, ok)
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("custom", "in scope")
		assert.Equal(t, "custom already exists in scope", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("Auth helpers", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrInvalidLoginToken))
		assert.True(t, IsAuthorization(ErrNotTeamMember))
		assert.True(t, IsConfiguration(ErrStorageNotConfigured))
		assert.False(t, IsAuthorization(ErrInvalidLoginToken))
	})
}
