package catalog

import (
	"strings"
	"time"

	"flawless/models"
	"flawless/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func validateServiceInput(input models.ServiceInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return NewValidationError("service name is required")
	}
	if input.Duration <= 0 {
		return NewValidationError("duration must be a positive number of minutes")
	}
	if input.Price < 0 {
		return NewValidationError("price cannot be negative")
	}
	return nil
}

// ListActiveServices returns the bookable service menu.
func (s *DefaultCatalogService) ListActiveServices() ([]models.Service, error) {
	return s.Services.GetActive()
}

// ListAllServices returns every service, including deactivated ones.
func (s *DefaultCatalogService) ListAllServices() ([]models.Service, error) {
	return s.Services.GetAll()
}

// CreateService adds a new service to the menu. New services start active.
func (s *DefaultCatalogService) CreateService(input models.ServiceInput) (*models.Service, error) {
	if err := validateServiceInput(input); err != nil {
		return nil, err
	}

	now := time.Now()
	svc := models.Service{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Duration:    input.Duration,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Services.Create(&svc); err != nil {
		utils.GetLogger().Error("Failed to create service", zap.Error(err))
		return nil, err
	}
	return &svc, nil
}

// UpdateService replaces the editable fields of a service.
func (s *DefaultCatalogService) UpdateService(id string, input models.ServiceInput) (*models.Service, error) {
	if err := validateServiceInput(input); err != nil {
		return nil, err
	}

	svc, err := s.Services.GetByID(id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, NewNotFoundError("service not found")
	}

	svc.Name = strings.TrimSpace(input.Name)
	svc.Description = strings.TrimSpace(input.Description)
	svc.Duration = input.Duration
	svc.Price = input.Price
	if input.ImageURL != "" {
		svc.ImageURL = input.ImageURL
	}
	svc.UpdatedAt = time.Now()

	if err := s.Services.Update(svc); err != nil {
		utils.GetLogger().Error("Failed to update service", zap.String("serviceID", id), zap.Error(err))
		return nil, err
	}
	return svc, nil
}

// SetServiceActive toggles whether a service can be booked. Deactivation
// hides the service from the public menu but keeps its booking history.
func (s *DefaultCatalogService) SetServiceActive(id string, active bool) (*models.Service, error) {
	svc, err := s.Services.GetByID(id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, NewNotFoundError("service not found")
	}

	svc.Active = active
	svc.UpdatedAt = time.Now()
	if err := s.Services.Update(svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// DeleteService removes a service and every booking that references it, so
// no orphaned bookings point at a service that no longer exists.
func (s *DefaultCatalogService) DeleteService(id string) error {
	svc, err := s.Services.GetByID(id)
	if err != nil {
		return err
	}
	if svc == nil {
		return NewNotFoundError("service not found")
	}

	if err := s.Bookings.DeleteByService(id); err != nil {
		utils.GetLogger().Error("Failed to delete bookings for service",
			zap.String("serviceID", id), zap.Error(err))
		return err
	}
	if err := s.Services.Delete(id); err != nil {
		utils.GetLogger().Error("Failed to delete service", zap.String("serviceID", id), zap.Error(err))
		return err
	}

	utils.GetLogger().Info("service deleted", zap.String("serviceID", id), zap.String("name", svc.Name))
	return nil
}
