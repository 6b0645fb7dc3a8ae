package repositories

import (
	"errors"
	"fmt"
	"thanhha/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMUserRepository stores administrator accounts in a relational database.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create persists a new administrator account. The password must already be
// hashed by the auth service.
func (r *GORMUserRepository) Create(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByUsername looks an account up by its unique username.
func (r *GORMUserRepository) GetByUsername(username string) (*models.User, error) {
	return r.getBy("username", "username", username)
}

// GetByEmail looks an account up by its unique email address.
func (r *GORMUserRepository) GetByEmail(email string) (*models.User, error) {
	return r.getBy("email", "email", email)
}

// GetByID looks an account up by its ID.
func (r *GORMUserRepository) GetByID(id string) (*models.User, error) {
	return r.getBy("id", "ID", id)
}

// getBy fetches the single account matching one unique column. The label is
// used in error messages so callers see "username" or "ID" rather than a
// column name.
func (r *GORMUserRepository) getBy(column, label, value string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, column+" = ?", value).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with %s %s not found", label, value)
		}
		return nil, fmt.Errorf("failed to get user by %s %s: %w", label, value, err)
	}
	return &user, nil
}
