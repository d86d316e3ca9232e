package catalog

import (
	bookingRepo "flawless/database/repository/booking"
	galleryRepo "flawless/database/repository/gallery"
	serviceRepo "flawless/database/repository/service"
	"flawless/models"
)

// CatalogService manages the service menu and the public gallery.
type CatalogService interface {
	// Service menu
	ListActiveServices() ([]models.Service, error)
	ListAllServices() ([]models.Service, error)
	CreateService(input models.ServiceInput) (*models.Service, error)
	UpdateService(id string, input models.ServiceInput) (*models.Service, error)
	SetServiceActive(id string, active bool) (*models.Service, error)
	DeleteService(id string) error

	// Gallery
	ListGallery() ([]models.GalleryItem, error)
	AddGalleryItem(input models.GalleryItemInput) (*models.GalleryItem, error)
	DeleteGalleryItem(id string) error
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Services serviceRepo.ServiceRepository
	Gallery  galleryRepo.GalleryRepository
	Bookings bookingRepo.BookingRepository
}
