package user

import (
	userRepo "flawless/database/repository/user"
	"flawless/models"
	"flawless/services/notification"
)

// RegisterInput carries the fields a new customer signs up with.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

// AuthResponse contains the signed token and the authenticated user.
type AuthResponse struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

type UserService interface {
	// Registration and authentication
	Register(input RegisterInput) (*AuthResponse, error)
	Login(email, password string) (*AuthResponse, error)
	GoogleSignIn(accessToken string) (*AuthResponse, error)
	AdminLogin(email, password string) (*AuthResponse, error)

	// Password recovery
	ForgotPassword(email string) error
	ResetPassword(token, newPassword string) error

	// Profile
	GetProfile(userID string) (*models.PublicUser, error)
	SetProfileImage(userID, imageURL string) (*models.PublicUser, error)
	ClearProfileImage(userID string) error

	// Admin / utility
	GetSubscribers() ([]models.PublicUser, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Mailer notification.Mailer
}
