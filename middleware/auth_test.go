package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"flawless/config"
	"flawless/models"
	"flawless/utils"

	"github.com/gin-gonic/gin"
)

func newAuthTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": c.GetString("userID"), "role": c.GetString("role")})
	})
	r.GET("/admin", AuthMiddleware(), AdminOnlyMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestAuthMiddleware_RejectsMissingAndBadTokens(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	r := newAuthTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a garbage token, got %d", w.Code)
	}
}

func TestAuthMiddleware_SetsIdentity(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	r := newAuthTestRouter()

	token, err := utils.GenerateToken("user-1", "asha@example.com", models.RoleCustomer, time.Hour)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAdminOnlyMiddleware(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	r := newAuthTestRouter()

	customerToken, err := utils.GenerateToken("user-1", "asha@example.com", models.RoleCustomer, time.Hour)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+customerToken)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for a customer, got %d", w.Code)
	}

	adminToken, err := utils.GenerateToken("admin", "owner@flawless.test", models.RoleAdmin, time.Hour)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for an admin, got %d", w.Code)
	}
}
