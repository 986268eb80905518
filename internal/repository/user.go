package repository

import (
	"errors"
	"strings"

	"papermark-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// Ensure UserRepository implements UserRepositoryInterface
var _ UserRepositoryInterface = (*UserRepository)(nil)

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email, case-insensitively
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Upsert returns the user with the given email, creating it when missing.
// Empty name or image never overwrite stored values.
func (r *UserRepository) Upsert(email, name, image string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := r.GetByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if user == nil {
		user = &models.User{Email: email, Name: name, Image: image}
		if err := r.db.Create(user).Error; err != nil {
			return nil, err
		}
		return user, nil
	}

	updates := map[string]interface{}{}
	if name != "" && user.Name == "" {
		updates["name"] = name
		user.Name = name
	}
	if image != "" && user.Image != image {
		updates["image"] = image
		user.Image = image
	}
	if len(updates) > 0 {
		if err := r.db.Model(user).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return user, nil
}

// Update updates a user
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}
