package repositories

import "thanhha/internal/models"

// UserRepository is the data-access surface for administrator accounts.
// Username and email are unique; the auth service checks both before
// registering a new account.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
}
