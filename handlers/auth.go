package handlers

import (
	"errors"
	"net/http"

	"flawless/services/user"
	"flawless/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes registration, login and password recovery.
type AuthHandler struct {
	Svc user.UserService
}

func NewAuthHandler(svc user.UserService) *AuthHandler {
	return &AuthHandler{Svc: svc}
}

// userError maps typed user-service errors to HTTP status codes.
func userError(c *gin.Context, err error) {
	var (
		ve *user.ValidationError
		ae *user.AuthError
		ne *user.NotFoundError
	)
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message})
	case errors.As(err, &ae):
		c.JSON(http.StatusUnauthorized, gin.H{"error": ae.Message})
	case errors.As(err, &ne):
		c.JSON(http.StatusNotFound, gin.H{"error": ne.Message})
	default:
		utils.GetLogger().Error("auth handler error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, please try again"})
	}
}

// RegisterHandler handles POST /api/auth/register.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var input user.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.Svc.Register(input)
	if err != nil {
		userError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.Svc.Login(body.Email, body.Password)
	if err != nil {
		userError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GoogleSignInHandler handles POST /api/auth/google.
func (h *AuthHandler) GoogleSignInHandler(c *gin.Context) {
	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.Svc.GoogleSignIn(body.AccessToken)
	if err != nil {
		userError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AdminLoginHandler handles POST /api/admin-login.
func (h *AuthHandler) AdminLoginHandler(c *gin.Context) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.Svc.AdminLogin(body.Email, body.Password)
	if err != nil {
		userError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ForgotPasswordHandler handles POST /api/auth/forgot-password.
func (h *AuthHandler) ForgotPasswordHandler(c *gin.Context) {
	var body struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.Svc.ForgotPassword(body.Email); err != nil {
		userError(c, err)
		return
	}
	// Always the same response so the endpoint cannot probe registered emails.
	c.JSON(http.StatusOK, gin.H{"message": "if the email is registered, a reset link has been sent"})
}

// ResetPasswordHandler handles POST /api/auth/reset-password/:token.
func (h *AuthHandler) ResetPasswordHandler(c *gin.Context) {
	var body struct {
		NewPassword string `json:"new_password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.Svc.ResetPassword(c.Param("token"), body.NewPassword); err != nil {
		userError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password updated, you can now log in"})
}
