package catalog

import (
	"strings"
	"time"

	"flawless/models"
	"flawless/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ListGallery returns the active showcase items in display order.
func (s *DefaultCatalogService) ListGallery() ([]models.GalleryItem, error) {
	return s.Gallery.GetActive()
}

// AddGalleryItem publishes a new image or video to the public gallery.
func (s *DefaultCatalogService) AddGalleryItem(input models.GalleryItemInput) (*models.GalleryItem, error) {
	if input.ImageURL == "" {
		return nil, NewValidationError("image URL is required")
	}
	itemType := strings.ToLower(strings.TrimSpace(input.Type))
	if itemType == "" {
		itemType = "image"
	}
	if itemType != "image" && itemType != "video" {
		return nil, NewValidationError("type must be image or video")
	}
	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = "general"
	}

	item := models.GalleryItem{
		ID:        uuid.New().String(),
		Title:     strings.TrimSpace(input.Title),
		Category:  category,
		ImageURL:  input.ImageURL,
		Type:      itemType,
		Active:    true,
		CreatedAt: time.Now(),
	}
	if err := s.Gallery.Create(&item); err != nil {
		utils.GetLogger().Error("Failed to add gallery item", zap.Error(err))
		return nil, err
	}
	return &item, nil
}

// DeleteGalleryItem removes a showcase entry.
func (s *DefaultCatalogService) DeleteGalleryItem(id string) error {
	if err := s.Gallery.Delete(id); err != nil {
		utils.GetLogger().Error("Failed to delete gallery item", zap.String("itemID", id), zap.Error(err))
		return err
	}
	return nil
}
