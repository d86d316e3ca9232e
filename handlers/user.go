package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"flawless/services/storage"
	"flawless/services/user"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes profile operations.
type UserHandler struct {
	Svc     user.UserService
	Storage storage.StorageService
}

func NewUserHandler(svc user.UserService, storageSvc storage.StorageService) *UserHandler {
	return &UserHandler{Svc: svc, Storage: storageSvc}
}

// GetProfileHandler handles GET /api/users/profile.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	userID := c.GetString("userID")
	profile, err := h.Svc.GetProfile(userID)
	if err != nil {
		userError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UploadProfileImageHandler handles POST /api/users/profile-image. The image
// goes to Cloudinary first; the stored URL lands on the user record.
func (h *UserHandler) UploadProfileImageHandler(c *gin.Context) {
	userID := c.GetString("userID")

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file not provided"})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save uploaded file"})
		return
	}
	defer os.Remove(tempFilePath)

	_, url, err := h.Storage.UploadFile(c, tempFilePath, "flawless/profiles")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload image"})
		return
	}

	profile, err := h.Svc.SetProfileImage(userID, url)
	if err != nil {
		userError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// DeleteProfileImageHandler handles DELETE /api/users/profile-image.
func (h *UserHandler) DeleteProfileImageHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if err := h.Svc.ClearProfileImage(userID); err != nil {
		userError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "profile image removed"})
}

// GetSubscribersHandler handles GET /api/users/subscribers (admin).
func (h *UserHandler) GetSubscribersHandler(c *gin.Context) {
	subscribers, err := h.Svc.GetSubscribers()
	if err != nil {
		userError(c, err)
		return
	}
	c.JSON(http.StatusOK, subscribers)
}
