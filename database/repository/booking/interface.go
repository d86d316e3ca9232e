package bookingRepo

import (
	"flawless/models"
)

// BookingRepository defines data access for bookings.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// GetAll retrieves all bookings ordered by date and time, newest first.
	GetAll() ([]models.Booking, error)
	// GetByUser retrieves a customer's bookings, newest first.
	GetByUser(userID string) ([]models.Booking, error)
	// GetByDateExcludingStatuses retrieves bookings on a calendar date whose
	// status is not in the given set.
	GetByDateExcludingStatuses(date string, excluded []string) ([]models.Booking, error)
	// UpdateStatus sets the status and rejection reason of a booking.
	UpdateStatus(id, status, rejectionReason string) error
	// UpdateSchedule moves a booking to a new date/time and resets its status.
	UpdateSchedule(id, date, timeOfDay, status string) error
	// Delete removes a booking by its ID.
	Delete(id string) error
	// DeleteAll wipes every booking record.
	DeleteAll() error
	// DeleteByService removes all bookings that reference a service.
	DeleteByService(serviceID string) error
	// CountAll returns the total number of bookings.
	CountAll() (int64, error)
	// CountByStatus returns the number of bookings in the given status.
	CountByStatus(status string) (int64, error)
	// SumAmountByStatuses sums total_amount over bookings in the given statuses.
	SumAmountByStatuses(statuses []string) (float64, error)
	// GetRecent retrieves the most recently created bookings.
	GetRecent(limit int64) ([]models.Booking, error)
}
