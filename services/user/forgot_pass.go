package user

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"flawless/config"
	"flawless/services/notification"
	"flawless/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const resetTokenTTL = time.Hour

func resetTokenKey(token string) string {
	return "pwreset:" + token
}

// ForgotPassword issues a one-hour reset token and emails a reset link. It
// never reports whether the email exists.
func (s *DefaultUserService) ForgotPassword(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return NewValidationError("email is required")
	}

	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("ForgotPassword: failed to fetch user", zap.Error(err))
		return err
	}
	if usr == nil {
		// Silent success so the endpoint cannot be used to probe accounts.
		return nil
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}
	token := hex.EncodeToString(raw)

	client := utils.GetAuthCacheClient()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Set(ctx, resetTokenKey(token), usr.ID, resetTokenTTL).Err(); err != nil {
		utils.GetLogger().Error("ForgotPassword: failed to store reset token", zap.Error(err))
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", strings.TrimRight(config.AppConfig.FrontendURL, "/"), token)
	subject, body := notification.PasswordResetEmail(usr.Name, resetURL)

	mailCtx, mailCancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer mailCancel()
	if err := s.Mailer.Send(mailCtx, usr.Email, subject, body, nil); err != nil {
		utils.GetLogger().Error("ForgotPassword: failed to send reset email",
			zap.String("email", usr.Email), zap.Error(err))
		return err
	}
	return nil
}

// ResetPassword consumes a reset token and stores the new password hash. The
// token is single-use.
func (s *DefaultUserService) ResetPassword(token, newPassword string) error {
	if token == "" || newPassword == "" {
		return NewValidationError("token and new password are required")
	}
	if len(newPassword) < 6 {
		return NewValidationError("password must be at least 6 characters long")
	}

	client := utils.GetAuthCacheClient()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	userID, err := client.Get(ctx, resetTokenKey(token)).Result()
	if err == redis.Nil {
		return NewAuthError("invalid or expired reset token")
	}
	if err != nil {
		utils.GetLogger().Error("ResetPassword: failed to look up reset token", zap.Error(err))
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("ResetPassword: failed to hash password", zap.Error(err))
		return err
	}
	if err := s.Repo.SetPassword(userID, string(hashed)); err != nil {
		utils.GetLogger().Error("ResetPassword: failed to update password", zap.Error(err))
		return err
	}

	if err := client.Del(ctx, resetTokenKey(token)).Err(); err != nil {
		utils.GetLogger().Warn("ResetPassword: failed to invalidate token", zap.Error(err))
	}
	return nil
}
