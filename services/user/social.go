package user

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"flawless/models"
	"flawless/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"

var socialHTTPClient = &http.Client{Timeout: 10 * time.Second}

type googleUserInfo struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// fetchGoogleUserInfo resolves a Google OAuth access token to the account it
// belongs to via Google's userinfo endpoint.
func fetchGoogleUserInfo(accessToken string) (*googleUserInfo, error) {
	req, err := http.NewRequest(http.MethodGet, googleUserInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build userinfo request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := socialHTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach Google: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("google rejected the token (%d): %s", resp.StatusCode, string(body))
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode userinfo response: %w", err)
	}
	return &info, nil
}

// GoogleSignIn authenticates a user with a Google OAuth access token,
// provisioning an account on first sign-in.
func (s *DefaultUserService) GoogleSignIn(accessToken string) (*AuthResponse, error) {
	if accessToken == "" {
		return nil, NewValidationError("google access token is required")
	}

	info, err := fetchGoogleUserInfo(accessToken)
	if err != nil {
		utils.GetLogger().Warn("Google token validation failed", zap.Error(err))
		return nil, NewAuthError("google sign-in failed")
	}
	if info.Email == "" || !info.EmailVerified {
		return nil, NewAuthError("google account email is not verified")
	}

	email := strings.ToLower(info.Email)
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch user for google sign-in", zap.Error(err))
		return nil, err
	}

	if usr == nil {
		now := time.Now()
		usr = &models.User{
			ID:           uuid.New().String(),
			Email:        email,
			Name:         info.Name,
			Role:         models.RoleCustomer,
			ProfileImage: info.Picture,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if usr.Name == "" {
			usr.Name = strings.Split(email, "@")[0]
		}
		if err := s.Repo.Create(usr); err != nil {
			utils.GetLogger().Error("Failed to provision google user", zap.Error(err))
			return nil, err
		}
	}

	return s.issueToken(usr)
}
