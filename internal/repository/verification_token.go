package repository

import (
	"time"

	"papermark-backend/internal/database/models"

	"gorm.io/gorm"
)

// VerificationTokenRepository handles database operations for one-time tokens
type VerificationTokenRepository struct {
	db *gorm.DB
}

// Ensure VerificationTokenRepository implements VerificationTokenRepositoryInterface
var _ VerificationTokenRepositoryInterface = (*VerificationTokenRepository)(nil)

// NewVerificationTokenRepository creates a new verification token repository
func NewVerificationTokenRepository(db *gorm.DB) *VerificationTokenRepository {
	return &VerificationTokenRepository{db: db}
}

// Replace stores token as the only live token of its identifier
func (r *VerificationTokenRepository) Replace(token *models.VerificationToken) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("identifier = ?", token.Identifier).Delete(&models.VerificationToken{}).Error; err != nil {
			return err
		}
		return tx.Create(token).Error
	})
}

// Consume deletes a matching unexpired token and reports whether one existed
func (r *VerificationTokenRepository) Consume(identifier, tokenHash string, now time.Time) (bool, error) {
	result := r.db.
		Where("identifier = ? AND token_hash = ? AND expires_at > ?", identifier, tokenHash, now).
		Delete(&models.VerificationToken{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// DeleteExpired removes tokens that expired at or before now
func (r *VerificationTokenRepository) DeleteExpired(now time.Time) (int64, error) {
	result := r.db.Where("expires_at <= ?", now).Delete(&models.VerificationToken{})
	return result.RowsAffected, result.Error
}
