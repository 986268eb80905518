package storage

import (
	"context"
	"strings"
	"testing"
	"time"

	"papermark-backend/internal/config"
	"papermark-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "deck.pdf", "deck.pdf"},
		{"spaces", "Q3 Board Deck.pdf", "Q3-Board-Deck.pdf"},
		{"path traversal", "../../etc/passwd", "passwd"},
		{"windows path", `C:\Users\me\report.pdf`, "report.pdf"},
		{"only unsafe", "???", "file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}

func TestObjectKeyBelongsToTeam(t *testing.T) {
	teamID := uuid.New()
	key := ObjectKey(teamID, "Pitch Deck.pdf")

	assert.True(t, strings.HasPrefix(key, teamID.String()+"/"))
	assert.True(t, strings.HasSuffix(key, "/Pitch-Deck.pdf"))
	assert.True(t, BelongsToTeam(teamID, key))
	assert.False(t, BelongsToTeam(uuid.New(), key))
	assert.False(t, BelongsToTeam(teamID, teamID.String()+"/../other/file.pdf"))
	assert.False(t, BelongsToTeam(teamID, teamID.String()+"/"))
}

func TestNewS3Storage(t *testing.T) {
	cfg := &config.Config{
		StorageTransport: "s3",
		StorageBucket:    "docs",
		StorageRegion:    "eu-central-1",
		StorageEndpoint:  "localhost:9000",
		StorageAccessKey: "key",
		StorageSecretKey: "secret",
		StoragePathStyle: true,
	}

	s, err := New(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, models.StorageTypeS3, s.Type())

	url, err := s.PresignGet(context.Background(), "team/doc/file.pdf", 15*time.Minute)
	require.NoError(t, err)
	assert.Contains(t, url, "http://localhost:9000/docs/team/doc/file.pdf")
}

func TestNewUnsupportedTransport(t *testing.T) {
	_, err := New(context.Background(), &config.Config{StorageTransport: "ftp"})
	assert.Error(t, err)
}
