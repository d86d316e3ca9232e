package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"flawless/models"
	"flawless/services/catalog"
	"flawless/services/storage"
	"flawless/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler exposes the service menu and gallery endpoints.
type CatalogHandler struct {
	Svc     catalog.CatalogService
	Storage storage.StorageService
}

func NewCatalogHandler(svc catalog.CatalogService, storageSvc storage.StorageService) *CatalogHandler {
	return &CatalogHandler{Svc: svc, Storage: storageSvc}
}

func catalogError(c *gin.Context, err error) {
	var (
		ve *catalog.ValidationError
		ne *catalog.NotFoundError
	)
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message})
	case errors.As(err, &ne):
		c.JSON(http.StatusNotFound, gin.H{"error": ne.Message})
	default:
		utils.GetLogger().Error("catalog handler error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, please try again"})
	}
}

// ListServicesHandler handles GET /api/services (public, active only).
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.Svc.ListActiveServices()
	if err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// ListAllServicesHandler handles GET /api/admin/services (admin, all).
func (h *CatalogHandler) ListAllServicesHandler(c *gin.Context) {
	services, err := h.Svc.ListAllServices()
	if err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// CreateServiceHandler handles POST /api/admin/services.
func (h *CatalogHandler) CreateServiceHandler(c *gin.Context) {
	var input models.ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	svc, err := h.Svc.CreateService(input)
	if err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// UpdateServiceHandler handles PUT /api/admin/services/:id.
func (h *CatalogHandler) UpdateServiceHandler(c *gin.Context) {
	var input models.ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	svc, err := h.Svc.UpdateService(c.Param("id"), input)
	if err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// SetServiceActiveHandler handles PUT /api/admin/services/:id/active.
func (h *CatalogHandler) SetServiceActiveHandler(c *gin.Context) {
	var body struct {
		Active bool `json:"active"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	svc, err := h.Svc.SetServiceActive(c.Param("id"), body.Active)
	if err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// DeleteServiceHandler handles DELETE /api/admin/services/:id.
func (h *CatalogHandler) DeleteServiceHandler(c *gin.Context) {
	if err := h.Svc.DeleteService(c.Param("id")); err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "service and its bookings deleted"})
}

// ListGalleryHandler handles GET /api/gallery (public).
func (h *CatalogHandler) ListGalleryHandler(c *gin.Context) {
	items, err := h.Svc.ListGallery()
	if err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// AddGalleryItemHandler handles POST /api/admin/gallery.
func (h *CatalogHandler) AddGalleryItemHandler(c *gin.Context) {
	var input models.GalleryItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.Svc.AddGalleryItem(input)
	if err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// DeleteGalleryItemHandler handles DELETE /api/admin/gallery/:id.
func (h *CatalogHandler) DeleteGalleryItemHandler(c *gin.Context) {
	if err := h.Svc.DeleteGalleryItem(c.Param("id")); err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "gallery item deleted"})
}

// UploadImageHandler handles POST /api/admin/upload. Admins upload service
// and gallery media here, then reference the returned URL.
func (h *CatalogHandler) UploadImageHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file not provided"})
		return
	}

	folder := c.DefaultPostForm("folder", "flawless/media")
	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save uploaded file"})
		return
	}
	defer os.Remove(tempFilePath)

	publicID, url, err := h.Storage.UploadFile(c, tempFilePath, folder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"public_id": publicID, "url": url})
}
