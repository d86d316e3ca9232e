package serviceRepo

import (
	"flawless/models"
)

// ServiceRepository defines data access for the service catalog.
type ServiceRepository interface {
	// GetByID retrieves a service by its unique ID.
	GetByID(id string) (*models.Service, error)
	// GetAll retrieves every service, active or not.
	GetAll() ([]models.Service, error)
	// GetActive retrieves active services ordered by name.
	GetActive() ([]models.Service, error)
	// Create inserts a new service record.
	Create(service *models.Service) error
	// Update modifies an existing service record.
	Update(service *models.Service) error
	// Delete removes a service record by its ID.
	Delete(id string) error
}
