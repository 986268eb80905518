// Package storage stores document bytes in an S3 compatible object store.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"
	"time"

	"papermark-backend/internal/config"
	"papermark-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=storage.go -destination=../mocks/storage_mocks.go -package=mocks

// Storage is the object store used for documents and their versions
type Storage interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
	PresignPut(ctx context.Context, key, contentType string, ttl time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
	Type() models.StorageType
}

// New builds the storage selected by STORAGE_TRANSPORT
func New(ctx context.Context, cfg *config.Config) (Storage, error) {
	switch cfg.StorageTransport {
	case "s3":
		return NewS3Storage(ctx, cfg)
	case "minio":
		return NewMinIOStorage(ctx, cfg)
	}
	return nil, fmt.Errorf("unsupported storage transport %q", cfg.StorageTransport)
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// SanitizeFilename keeps the base name of a file with only safe characters
func SanitizeFilename(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	base = unsafeChars.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-.")
	if base == "" {
		return "file"
	}
	if len(base) > 200 {
		base = base[len(base)-200:]
	}
	return base
}

// ObjectKey returns a fresh key for a file uploaded by a team: <teamId>/<uuid>/<filename>
func ObjectKey(teamID uuid.UUID, filename string) string {
	return fmt.Sprintf("%s/%s/%s", teamID, uuid.New(), SanitizeFilename(filename))
}

// BelongsToTeam reports whether key lives under the team prefix
func BelongsToTeam(teamID uuid.UUID, key string) bool {
	if strings.Contains(key, "..") {
		return false
	}
	return strings.HasPrefix(key, teamID.String()+"/") && len(key) > len(teamID.String())+1
}
