package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"papermark-backend/internal/database/models"
	"papermark-backend/internal/email"
	apperrors "papermark-backend/internal/errors"
	"papermark-backend/internal/logger"
	"papermark-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	accessTokenTTL  = time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
	loginTokenTTL   = 24 * time.Hour
	oauthStateTTL   = 10 * time.Minute
	issuer          = "papermark-backend"

	ProviderEmail  = "email"
	ProviderGoogle = "google"
)

// Config holds the settings of the auth service
type Config struct {
	JWTSecret string
	BaseURL   string
}

// AuthService provides authentication functionality
type AuthService struct {
	config    Config
	users     repository.UserRepositoryInterface
	tokens    repository.VerificationTokenRepositoryInterface
	store     RefreshStore
	mailer    email.Sender
	google    IdentityProvider
	validator *validator.Validate
	now       func() time.Time
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID               string `json:"user_id" example:"6f1c2a9e-8f3b-4d2a-9c1e-2b7a4f0d3e11"`
	Email                string `json:"email" example:"jane@example.com"`
	Provider             string `json:"provider,omitempty" example:"email"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// TokenResponse is returned by every login, verify and refresh endpoint
type TokenResponse struct {
	AccessToken  string      `json:"accessToken"`
	TokenType    string      `json:"tokenType" example:"Bearer"`
	ExpiresIn    int64       `json:"expiresIn" example:"3600"`
	RefreshToken string      `json:"refreshToken"`
	User         UserSummary `json:"user"`
}

// UserSummary is the public part of the authenticated user
type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name,omitempty"`
	Image string    `json:"image,omitempty"`
}

// LoginEmailRequest asks for a magic link
type LoginEmailRequest struct {
	Email string `json:"email" validate:"required,email,max=255" example:"jane@example.com"`
}

// VerifyLoginRequest carries the magic link parameters
type VerifyLoginRequest struct {
	Email string `form:"email" validate:"required,email"`
	Token string `form:"token" validate:"required"`
}

// RefreshTokenRequest represents the request for token refresh
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// Dependencies groups the collaborators of the auth service
type Dependencies struct {
	Users     repository.UserRepositoryInterface
	Tokens    repository.VerificationTokenRepositoryInterface
	Store     RefreshStore
	Mailer    email.Sender
	Google    IdentityProvider
	Validator *validator.Validate
}

// NewAuthService creates a new authentication service
func NewAuthService(cfg Config, deps Dependencies) (*AuthService, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("invalid auth config: JWT secret is required")
	}
	store := deps.Store
	if store == nil {
		store = NewMemoryRefreshStore()
	}
	v := deps.Validator
	if v == nil {
		v = validator.New()
	}
	return &AuthService{
		config:    Config{JWTSecret: cfg.JWTSecret, BaseURL: strings.TrimSuffix(cfg.BaseURL, "/")},
		users:     deps.Users,
		tokens:    deps.Tokens,
		store:     store,
		mailer:    deps.Mailer,
		google:    deps.Google,
		validator: v,
		now:       time.Now,
	}, nil
}

// RequestLoginEmail stores a one-time login token for the address and mails the magic link
func (s *AuthService) RequestLoginEmail(ctx context.Context, req *LoginEmailRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	address := normalizeEmail(req.Email)

	token, err := randomString(32)
	if err != nil {
		return err
	}
	record := &models.VerificationToken{
		Identifier: loginIdentifier(address),
		TokenHash:  hashToken(token),
		Purpose:    models.TokenPurposeLogin,
		ExpiresAt:  s.now().Add(loginTokenTTL),
	}
	if err := s.tokens.Replace(record); err != nil {
		return fmt.Errorf("failed to store login token: %w", err)
	}

	link := fmt.Sprintf("%s/api/auth/verify?token=%s&email=%s", s.config.BaseURL, url.QueryEscape(token), url.QueryEscape(address))
	msg, err := email.LoginLink(address, link)
	if err != nil {
		return err
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send login email: %w", err)
	}
	logger.WithContext(ctx).WithField("email", address).Info("Login link sent")
	return nil
}

// VerifyLoginEmail consumes the magic link token and signs the user in
func (s *AuthService) VerifyLoginEmail(ctx context.Context, req *VerifyLoginRequest) (*TokenResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	address := normalizeEmail(req.Email)

	ok, err := s.tokens.Consume(loginIdentifier(address), hashToken(req.Token), s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to verify login token: %w", err)
	}
	if !ok {
		return nil, apperrors.ErrInvalidLoginToken
	}

	user, err := s.users.Upsert(address, "", "")
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}
	if user.EmailVerifiedAt == nil {
		verifiedAt := s.now()
		user.EmailVerifiedAt = &verifiedAt
		if err := s.users.Update(user); err != nil {
			logger.WithContext(ctx).WithError(err).Warn("Failed to mark email verified")
		}
	}
	return s.issue(ctx, user, ProviderEmail)
}

// GoogleAuthURL returns the Google consent URL with a fresh one-shot state
func (s *AuthService) GoogleAuthURL(ctx context.Context) (string, error) {
	if s.google == nil {
		return "", apperrors.ErrGoogleNotConfigured
	}
	state, err := s.GenerateState()
	if err != nil {
		return "", err
	}
	if err := s.store.SaveState(ctx, state, oauthStateTTL); err != nil {
		return "", fmt.Errorf("failed to store oauth state: %w", err)
	}
	return s.google.AuthCodeURL(state), nil
}

// HandleGoogleCallback validates state, reads the Google profile and signs the user in
func (s *AuthService) HandleGoogleCallback(ctx context.Context, code, state string) (*TokenResponse, error) {
	if s.google == nil {
		return nil, apperrors.ErrGoogleNotConfigured
	}
	if state == "" || code == "" {
		return nil, apperrors.ErrInvalidOAuthState
	}
	ok, err := s.store.ConsumeState(ctx, state)
	if err != nil {
		return nil, fmt.Errorf("failed to check oauth state: %w", err)
	}
	if !ok {
		return nil, apperrors.ErrInvalidOAuthState
	}

	profile, err := s.google.Profile(ctx, code)
	if err != nil {
		return nil, &apperrors.AuthenticationError{Message: err.Error()}
	}
	user, err := s.users.Upsert(normalizeEmail(profile.Email), profile.Name, profile.Picture)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}
	return s.issue(ctx, user, ProviderGoogle)
}

// RefreshToken rotates a refresh token and issues a new access token
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, apperrors.ErrInvalidRefreshToken
	}
	data, err := s.store.Get(ctx, refreshToken)
	if errors.Is(err, ErrRefreshTokenNotFound) {
		return nil, apperrors.ErrInvalidRefreshToken
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load refresh token: %w", err)
	}
	if !data.ExpiresAt.IsZero() && s.now().After(data.ExpiresAt) {
		_ = s.store.Delete(ctx, refreshToken)
		return nil, apperrors.ErrRefreshTokenExpired
	}
	if err := s.store.Delete(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	user, err := s.users.GetByID(data.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidRefreshToken
	}
	return s.issue(ctx, user, data.Provider)
}

// Logout revokes the refresh token. Unknown tokens are ignored.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return s.store.Delete(ctx, refreshToken)
}

// GenerateJWT creates an access token for the user
func (s *AuthService) GenerateJWT(user *models.User, provider string) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		UserID:   user.ID.String(),
		Email:    user.Email,
		Provider: provider,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		if _, err := uuid.Parse(claims.UserID); err != nil {
			return nil, fmt.Errorf("invalid user id claim")
		}
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

// GenerateState generates a random state parameter for OAuth2
func (s *AuthService) GenerateState() (string, error) {
	return randomString(32)
}

func (s *AuthService) issue(ctx context.Context, user *models.User, provider string) (*TokenResponse, error) {
	accessToken, err := s.GenerateJWT(user, provider)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}
	refreshToken, err := randomString(48)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	now := s.now()
	data := &RefreshTokenData{
		UserID:    user.ID,
		Email:     user.Email,
		Provider:  provider,
		ExpiresAt: now.Add(refreshTokenTTL),
		CreatedAt: now,
	}
	if err := s.store.Save(ctx, refreshToken, data, refreshTokenTTL); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &TokenResponse{
		AccessToken:  accessToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(accessTokenTTL.Seconds()),
		RefreshToken: refreshToken,
		User: UserSummary{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
			Image: user.Image,
		},
	}, nil
}

func loginIdentifier(address string) string {
	return "login:" + address
}

func normalizeEmail(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// randomString generates a random URL-safe string from length bytes
func randomString(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}
