package userRepo

import (
	"flawless/models"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address.
	GetByEmail(email string) (*models.User, error)
	// GetAll retrieves all users, newest first.
	GetAll() ([]models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// SetPassword replaces a user's password hash.
	SetPassword(id, passwordHash string) error
	// SetProfileImage sets (or clears, with an empty URL) a user's profile image.
	SetProfileImage(id, imageURL string) error
}
