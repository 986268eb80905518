package service

import (
	"strings"
	"time"

	"papermark-backend/internal/database/models"
	apperrors "papermark-backend/internal/errors"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

// AccessRequest is what a visitor presents to open a link
type AccessRequest struct {
	Email    string
	Password string
	Code     string
	Now      time.Time
}

var emailCheck = validator.New()

// CheckAccess runs the gates of a link in order and returns the first LinkAccessError.
// A code is only required to be present; it is verified against the stored OTP by the caller.
func CheckAccess(link *models.Link, req AccessRequest) error {
	if err := checkAvailable(link, req.Now); err != nil {
		return err
	}

	email := normalizeEmail(req.Email)
	if link.RequiresEmail() {
		if email == "" {
			return apperrors.ErrEmailRequired
		}
		if err := emailCheck.Var(email, "email"); err != nil {
			return apperrors.ErrInvalidEmail
		}
	}
	if err := checkEmailLists(link, email); err != nil {
		return err
	}

	if link.HasPassword() {
		if req.Password == "" {
			return apperrors.ErrPasswordRequired
		}
		if err := bcrypt.CompareHashAndPassword([]byte(link.PasswordHash), []byte(req.Password)); err != nil {
			return apperrors.ErrInvalidPassword
		}
	}

	if link.EmailAuthenticated && strings.TrimSpace(req.Code) == "" {
		return apperrors.ErrVerificationRequired
	}
	return nil
}

// checkAvailable rejects archived and expired links
func checkAvailable(link *models.Link, now time.Time) error {
	if link.IsArchived {
		return apperrors.ErrLinkArchived
	}
	if link.IsExpired(now) {
		return apperrors.ErrLinkExpired
	}
	return nil
}

// checkEmailLists applies the allow list, then the deny list, to a normalized email
func checkEmailLists(link *models.Link, email string) error {
	if len(link.AllowList) > 0 && !matchesList(link.AllowList, email) {
		return apperrors.ErrEmailNotAllowed
	}
	if email != "" && matchesList(link.DenyList, email) {
		return apperrors.ErrEmailDenied
	}
	return nil
}

// matchesList reports whether email equals an entry or its @domain equals a domain entry
func matchesList(entries []string, email string) bool {
	if email == "" {
		return false
	}
	domain := ""
	if at := strings.LastIndex(email, "@"); at >= 0 {
		domain = email[at:]
	}
	for _, entry := range entries {
		entry = normalizeEmail(entry)
		if entry == "" {
			continue
		}
		if entry == email {
			return true
		}
		if strings.HasPrefix(entry, "@") && entry == domain {
			return true
		}
	}
	return false
}

// normalizeEmailList trims, lower-cases and de-duplicates entries, dropping empty ones
func normalizeEmailList(entries []string) []string {
	if len(entries) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(entries))
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		entry = normalizeEmail(entry)
		if entry == "" {
			continue
		}
		if _, ok := seen[entry]; ok {
			continue
		}
		seen[entry] = struct{}{}
		out = append(out, entry)
	}
	return out
}
