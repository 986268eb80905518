package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
	"time"

	"papermark-backend/internal/database/models"
	"papermark-backend/internal/email"
	apperrors "papermark-backend/internal/errors"
	"papermark-backend/internal/ratelimit"
	"papermark-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	otpDigits   = 6
	otpTTL      = 10 * time.Minute
	otpThrottle = 60 * time.Second
)

// VerificationService issues and checks the one-time codes of email-verified links
type VerificationService struct {
	tokenRepo repository.VerificationTokenRepositoryInterface
	linkRepo  repository.LinkRepositoryInterface
	throttle  ratelimit.Throttle
	mailer    email.Sender
	validator *validator.Validate
	now       func() time.Time
}

// Ensure VerificationService implements VerificationServiceInterface
var _ VerificationServiceInterface = (*VerificationService)(nil)

// NewVerificationService creates a new verification service
func NewVerificationService(tokenRepo repository.VerificationTokenRepositoryInterface, linkRepo repository.LinkRepositoryInterface, throttle ratelimit.Throttle, mailer email.Sender, validator *validator.Validate) *VerificationService {
	return &VerificationService{
		tokenRepo: tokenRepo,
		linkRepo:  linkRepo,
		throttle:  throttle,
		mailer:    mailer,
		validator: validator,
		now:       time.Now,
	}
}

// RequestOTPRequest asks for a verification code for a link
type RequestOTPRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

// RequestOTP emails a fresh code for linkID to the visitor, replacing any previous one
func (s *VerificationService) RequestOTP(ctx context.Context, linkID uuid.UUID, req *RequestOTPRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	link, err := s.linkRepo.GetByID(linkID)
	if err != nil {
		return lookup(err, apperrors.ErrLinkNotFound, "get link")
	}
	if err := checkAvailable(link, s.now()); err != nil {
		return err
	}
	if !link.EmailAuthenticated {
		return apperrors.ErrOTPNotEnabled
	}

	address := normalizeEmail(req.Email)
	if err := checkEmailLists(link, address); err != nil {
		return err
	}

	identifier := otpIdentifier(linkID, address)
	acquired, err := s.throttle.Acquire(ctx, identifier, otpThrottle)
	if err != nil {
		return fmt.Errorf("failed to throttle verification code: %w", err)
	}
	if !acquired {
		return apperrors.ErrOTPThrottled
	}

	code, err := generateCode(otpDigits)
	if err != nil {
		return fmt.Errorf("failed to generate verification code: %w", err)
	}
	token := &models.VerificationToken{
		Identifier: identifier,
		TokenHash:  hashToken(code),
		Purpose:    models.TokenPurposeLinkOTP,
		ExpiresAt:  s.now().Add(otpTTL),
	}
	if err := s.tokenRepo.Replace(token); err != nil {
		return fmt.Errorf("failed to store verification code: %w", err)
	}

	target := link.Name
	if target == "" {
		target = "a shared document"
	}
	msg, err := email.OneTimeCode(address, code, target)
	if err != nil {
		return fmt.Errorf("failed to render verification email: %w", err)
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send verification email: %w", err)
	}
	return nil
}

// VerifyOTP consumes the code of email for linkID
func (s *VerificationService) VerifyOTP(linkID uuid.UUID, address, code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return apperrors.ErrVerificationRequired
	}
	ok, err := s.tokenRepo.Consume(otpIdentifier(linkID, normalizeEmail(address)), hashToken(code), s.now())
	if err != nil {
		return fmt.Errorf("failed to verify code: %w", err)
	}
	if !ok {
		return apperrors.ErrInvalidCode
	}
	return nil
}

// CleanupExpired deletes expired login tokens and verification codes
func (s *VerificationService) CleanupExpired() (int64, error) {
	deleted, err := s.tokenRepo.DeleteExpired(s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired tokens: %w", err)
	}
	return deleted, nil
}

func otpIdentifier(linkID uuid.UUID, address string) string {
	return fmt.Sprintf("otp:%s:%s", linkID, address)
}

// hashToken returns the hex sha256 of a one-time secret
func hashToken(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// generateCode returns a zero-padded decimal code of the given length
func generateCode(digits int) (string, error) {
	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", digits, n.Int64()), nil
}
