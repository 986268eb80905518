package service

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"

	"papermark-backend/internal/database/models"
	apperrors "papermark-backend/internal/errors"
	"papermark-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// normalizePagination clamps page and pageSize and returns limit and offset
func normalizePagination(page, pageSize int) (int, int, int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}
	return page, pageSize, pageSize, (page - 1) * pageSize
}

// lookup translates gorm.ErrRecordNotFound into the given sentinel
func lookup(err error, notFound error, action string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

// teamGuard resolves the membership of a user in a team
type teamGuard struct {
	teamRepo repository.TeamRepositoryInterface
}

// require returns the active membership of userID, restricted to roles when given
func (g teamGuard) require(teamID, userID uuid.UUID, roles ...models.Role) (*models.UserTeam, error) {
	membership, err := g.teamRepo.GetMembership(teamID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotTeamMember
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	if membership.Status != models.MemberStatusActive {
		return nil, apperrors.ErrNotTeamMember
	}
	if len(roles) == 0 {
		return membership, nil
	}
	for _, role := range roles {
		if membership.Role == role {
			return membership, nil
		}
	}
	return nil, apperrors.ErrInsufficientRole
}

// Unlimited marks a plan limit without a cap
const Unlimited = -1

var planLimits = map[models.Plan]models.PlanLimits{
	models.PlanFree:      {Users: 1, Documents: 50, Links: 50, Datarooms: 0},
	models.PlanPro:       {Users: 3, Documents: Unlimited, Links: Unlimited, Datarooms: 0},
	models.PlanBusiness:  {Users: 10, Documents: Unlimited, Links: Unlimited, Datarooms: 1},
	models.PlanDatarooms: {Users: Unlimited, Documents: Unlimited, Links: Unlimited, Datarooms: Unlimited},
}

// LimitsFor returns the effective limits of a team; an override on the team wins
func LimitsFor(team *models.Team) models.PlanLimits {
	if team.LimitsOverride != nil {
		return *team.LimitsOverride
	}
	if limits, ok := planLimits[team.Plan]; ok {
		return limits
	}
	return planLimits[models.PlanFree]
}

type limitKind int

const (
	limitUsers limitKind = iota
	limitDocuments
	limitLinks
	limitDatarooms
)

// limitChecker enforces plan limits before a resource is created
type limitChecker struct {
	teamRepo repository.TeamRepositoryInterface
}

// check fails with a LimitExceededError when current already reached the team's limit
func (l limitChecker) check(teamID uuid.UUID, kind limitKind, current int64) error {
	team, err := l.teamRepo.GetByID(teamID)
	if err != nil {
		return lookup(err, apperrors.ErrTeamNotFound, "get team")
	}
	limits := LimitsFor(team)

	var limit int
	var resource string
	switch kind {
	case limitUsers:
		limit, resource = limits.Users, apperrors.ErrUserLimit.Resource
	case limitDocuments:
		limit, resource = limits.Documents, apperrors.ErrDocumentLimit.Resource
	case limitLinks:
		limit, resource = limits.Links, apperrors.ErrLinkLimit.Resource
	case limitDatarooms:
		limit, resource = limits.Datarooms, apperrors.ErrDataroomLimit.Resource
	}
	if limit != Unlimited && current >= int64(limit) {
		return apperrors.NewLimitExceededError(resource, limit)
	}
	return nil
}

var slugUnsafe = regexp.MustCompile(`[^a-z0-9]+`)

// slugify lower-cases name and joins its alphanumeric runs with dashes
func slugify(name string) string {
	slug := slugUnsafe.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "folder"
	}
	return slug
}

// childPath joins a parent path and the slug of name
func childPath(parentPath, name string) string {
	return strings.TrimSuffix(parentPath, "/") + "/" + slugify(name)
}

const pidAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// randomID returns n characters drawn from pidAlphabet
func randomID(n int) (string, error) {
	max := big.NewInt(int64(len(pidAlphabet)))
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = pidAlphabet[idx.Int64()]
	}
	return string(out), nil
}

// randomToken returns size random bytes encoded as unpadded base64url
func randomToken(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
