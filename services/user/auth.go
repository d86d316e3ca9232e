package user

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"flawless/config"
	"flawless/models"
	"flawless/services/notification"
	"flawless/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func tokenDuration() time.Duration {
	hours := config.AppConfig.JWTExpiryHours
	if hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}

// Register creates a new customer account and returns a signed token. A
// welcome email goes out in the background so signup latency stays flat.
func (s *DefaultUserService) Register(input RegisterInput) (*AuthResponse, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Name = strings.TrimSpace(input.Name)

	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, NewValidationError("name, email and password are required")
	}
	if len(input.Password) < 6 {
		return nil, NewValidationError("password must be at least 6 characters long")
	}

	existing, err := s.Repo.GetByEmail(input.Email)
	if err != nil {
		utils.GetLogger().Error("Failed to check for existing user", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, NewValidationError("a user with this email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Failed to hash password", zap.Error(err))
		return nil, err
	}

	now := time.Now()
	usr := models.User{
		ID:           uuid.New().String(),
		Email:        input.Email,
		Name:         input.Name,
		Role:         models.RoleCustomer,
		PasswordHash: string(hashed),
		Phone:        strings.TrimSpace(input.Phone),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(&usr); err != nil {
		utils.GetLogger().Error("Failed to create user", zap.Error(err))
		return nil, err
	}

	go func() {
		subject, body := notification.WelcomeEmail(usr.Name)
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		if err := s.Mailer.Send(ctx, usr.Email, subject, body, nil); err != nil {
			utils.GetLogger().Error("Failed to send welcome email",
				zap.String("email", usr.Email), zap.Error(err))
		}
	}()

	return s.issueToken(&usr)
}

// Login authenticates an existing customer by email and password.
func (s *DefaultUserService) Login(email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, NewValidationError("email and password are required")
	}

	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch user for login", zap.Error(err))
		return nil, err
	}
	if usr == nil || usr.PasswordHash == "" {
		return nil, NewAuthError("invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)) != nil {
		return nil, NewAuthError("invalid email or password")
	}

	return s.issueToken(usr)
}

// AdminLogin checks the configured admin credentials. The admin is not a
// stored user record; its identity lives in configuration.
func (s *DefaultUserService) AdminLogin(email, password string) (*AuthResponse, error) {
	cfg := config.AppConfig
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil, NewAuthError("admin login is not configured")
	}

	emailOK := subtle.ConstantTimeCompare([]byte(strings.ToLower(strings.TrimSpace(email))), []byte(strings.ToLower(cfg.AdminEmail))) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(cfg.AdminPassword)) == 1
	if !emailOK || !passOK {
		return nil, NewAuthError("invalid admin credentials")
	}

	token, err := utils.GenerateToken("admin", cfg.AdminEmail, models.RoleAdmin, tokenDuration())
	if err != nil {
		utils.GetLogger().Error("Failed to generate admin token", zap.Error(err))
		return nil, err
	}
	return &AuthResponse{
		Token: token,
		User: models.PublicUser{
			ID:    "admin",
			Email: cfg.AdminEmail,
			Name:  "Administrator",
			Role:  models.RoleAdmin,
		},
	}, nil
}

func (s *DefaultUserService) issueToken(usr *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(usr.ID, usr.Email, usr.Role, tokenDuration())
	if err != nil {
		utils.GetLogger().Error("Failed to generate auth token", zap.Error(err))
		return nil, err
	}
	return &AuthResponse{Token: token, User: usr.Public()}, nil
}
