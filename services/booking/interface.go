package booking

import (
	"sync"

	bookingRepo "flawless/database/repository/booking"
	serviceRepo "flawless/database/repository/service"
	"flawless/models"
	"flawless/services/notification"
)

// BookingService runs the booking workflows: creation with conflict
// detection, slot listing, status updates, reschedules, and the admin
// dashboard queries.
type BookingService interface {
	CreateBooking(input models.BookingInput) (*models.BookingDetail, error)
	GetBookedSlots(date string) ([]models.BookedSlot, error)
	GetAllBookings() ([]models.BookingDetail, error)
	GetUserBookings(userID string) ([]models.BookingDetail, error)
	UpdateStatus(id, status, rejectionReason string) (*models.BookingDetail, error)
	Reschedule(id, userID, date, timeOfDay string) (*models.Booking, error)
	GetDashboardStats() (*models.DashboardStats, error)
	DeleteBooking(id string) error
	ResetAllBookings() error
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Bookings bookingRepo.BookingRepository
	Services serviceRepo.ServiceRepository
	Notifier notification.NotificationService

	// mu serializes the conflict check with the subsequent insert. Closes the
	// check-then-act window for a single server instance; running more than
	// one instance reopens it.
	mu sync.Mutex
}
