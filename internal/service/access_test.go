package service_test

import (
	"testing"
	"time"

	"papermark-backend/internal/database/models"
	apperrors "papermark-backend/internal/errors"
	"papermark-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCheckAccess(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name    string
		link    models.Link
		req     service.AccessRequest
		wantErr error
	}{
		{
			name: "open link",
			link: models.Link{},
			req:  service.AccessRequest{Now: now},
		},
		{
			name:    "archived",
			link:    models.Link{IsArchived: true},
			req:     service.AccessRequest{Now: now},
			wantErr: apperrors.ErrLinkArchived,
		},
		{
			name:    "expired exactly now",
			link:    models.Link{ExpiresAt: &now},
			req:     service.AccessRequest{Now: now},
			wantErr: apperrors.ErrLinkExpired,
		},
		{
			name:    "email required",
			link:    models.Link{EmailProtected: true},
			req:     service.AccessRequest{Now: now},
			wantErr: apperrors.ErrEmailRequired,
		},
		{
			name:    "email malformed",
			link:    models.Link{EmailProtected: true},
			req:     service.AccessRequest{Email: "not-an-email", Now: now},
			wantErr: apperrors.ErrInvalidEmail,
		},
		{
			name: "allow list by domain",
			link: models.Link{AllowList: []string{"@acme.com"}},
			req:  service.AccessRequest{Email: "Jane@ACME.com", Now: now},
		},
		{
			name:    "not on allow list",
			link:    models.Link{AllowList: []string{"@acme.com", "bob@example.com"}},
			req:     service.AccessRequest{Email: "eve@example.com", Now: now},
			wantErr: apperrors.ErrEmailNotAllowed,
		},
		{
			name:    "deny list",
			link:    models.Link{EmailProtected: true, DenyList: []string{"@rival.io"}},
			req:     service.AccessRequest{Email: "spy@rival.io", Now: now},
			wantErr: apperrors.ErrEmailDenied,
		},
		{
			name:    "password missing",
			link:    models.Link{PasswordHash: string(hash)},
			req:     service.AccessRequest{Now: now},
			wantErr: apperrors.ErrPasswordRequired,
		},
		{
			name:    "password wrong",
			link:    models.Link{PasswordHash: string(hash)},
			req:     service.AccessRequest{Password: "guess", Now: now},
			wantErr: apperrors.ErrInvalidPassword,
		},
		{
			name: "password correct",
			link: models.Link{PasswordHash: string(hash)},
			req:  service.AccessRequest{Password: "s3cret", Now: now},
		},
		{
			name:    "verification code missing",
			link:    models.Link{EmailAuthenticated: true},
			req:     service.AccessRequest{Email: "jane@acme.com", Now: now},
			wantErr: apperrors.ErrVerificationRequired,
		},
		{
			name: "verification code present",
			link: models.Link{EmailAuthenticated: true},
			req:  service.AccessRequest{Email: "jane@acme.com", Code: "123456", Now: now},
		},
		{
			name:    "email gate runs before password gate",
			link:    models.Link{EmailProtected: true, PasswordHash: string(hash)},
			req:     service.AccessRequest{Password: "s3cret", Now: now},
			wantErr: apperrors.ErrEmailRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.CheckAccess(&tt.link, tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			_, ok := apperrors.AsLinkAccess(err)
			assert.True(t, ok)
		})
	}
}
