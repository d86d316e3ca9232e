package booking

import (
	"time"

	"flawless/models"
	"flawless/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// statusAllowed reports whether s is one of the fixed booking statuses.
func statusAllowed(s string) bool {
	for _, allowed := range models.AllowedBookingStatuses {
		if s == allowed {
			return true
		}
	}
	return false
}

// serviceIndex loads the catalog into a map keyed by service ID.
func (s *DefaultBookingService) serviceIndex() (map[string]models.Service, error) {
	services, err := s.Services.GetAll()
	if err != nil {
		return nil, err
	}
	index := make(map[string]models.Service, len(services))
	for _, svc := range services {
		index[svc.ID] = svc
	}
	return index, nil
}

// detail joins a booking with its service fields for client listings.
func detail(b models.Booking, index map[string]models.Service) models.BookingDetail {
	d := models.BookingDetail{Booking: b}
	if svc, ok := index[b.ServiceID]; ok {
		d.ServiceName = svc.Name
		d.Duration = svc.Duration
		d.ImageURL = svc.ImageURL
	}
	return d
}

// blockingIntervals computes the intervals occupied by the given bookings.
// Rows whose date/time fails to parse, or whose service no longer exists, are
// skipped rather than aborting the check, so one malformed historical row
// cannot block all new bookings.
func blockingIntervals(bookings []models.Booking, index map[string]models.Service) []Interval {
	intervals := make([]Interval, 0, len(bookings))
	for _, b := range bookings {
		svc, ok := index[b.ServiceID]
		if !ok {
			continue
		}
		iv, err := ComputeInterval(b.BookingDate, b.BookingTime, svc.Duration)
		if err != nil {
			continue
		}
		intervals = append(intervals, iv)
	}
	return intervals
}

// CreateBooking validates the request, rejects overlapping appointments, and
// persists a pending booking. The "request received" notifications are
// enqueued after the booking is stored; enqueue failures are logged and do
// not surface to the caller.
func (s *DefaultBookingService) CreateBooking(input models.BookingInput) (*models.BookingDetail, error) {
	if input.CustomerName == "" || input.CustomerEmail == "" || input.ServiceID == "" ||
		input.BookingDate == "" || input.BookingTime == "" {
		return nil, NewValidationError("missing required fields: name, email, service, date, or time")
	}

	svc, err := s.Services.GetByID(input.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, NewNotFoundError("service not found")
	}

	candidate, err := ComputeInterval(input.BookingDate, input.BookingTime, svc.Duration)
	if err != nil {
		return nil, NewValidationError("invalid date or time format provided")
	}

	index, err := s.serviceIndex()
	if err != nil {
		return nil, err
	}

	// The conflict check and the insert run under one lock so that two
	// concurrent requests for overlapping slots cannot both pass the check.
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.Bookings.GetByDateExcludingStatuses(input.BookingDate, []string{models.BookingStatusRejected})
	if err != nil {
		return nil, err
	}
	if HasConflict(candidate, blockingIntervals(existing, index)) {
		return nil, NewConflictError("this time slot overlaps with an existing appointment")
	}

	booking := models.Booking{
		ID:            uuid.New().String(),
		ServiceID:     svc.ID,
		BookingDate:   input.BookingDate,
		BookingTime:   input.BookingTime,
		Status:        models.BookingStatusPending,
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: input.CustomerPhone,
		Notes:         input.Notes,
		TotalAmount:   svc.Price,
		UserID:        input.UserID,
	}
	if err := s.Bookings.Create(&booking); err != nil {
		return nil, err
	}

	s.enqueue(models.BookingNotification{
		Kind:        models.NotifyBookingPending,
		BookingID:   booking.ID,
		ServiceName: svc.Name,
		Name:        booking.CustomerName,
		Email:       booking.CustomerEmail,
		Phone:       booking.CustomerPhone,
		Date:        booking.BookingDate,
		Time:        booking.BookingTime,
		Amount:      booking.TotalAmount,
		Status:      booking.Status,
	})

	created := detail(booking, index)
	return &created, nil
}

// GetBookedSlots returns the (time, duration) pairs already taken on a date,
// used by the client to pre-block UI slots. Rejected and cancelled bookings
// do not block slots here.
func (s *DefaultBookingService) GetBookedSlots(date string) ([]models.BookedSlot, error) {
	if date == "" {
		return nil, NewValidationError("date parameter is required")
	}

	bookings, err := s.Bookings.GetByDateExcludingStatuses(date,
		[]string{models.BookingStatusRejected, models.BookingStatusCancelled})
	if err != nil {
		return nil, err
	}

	index, err := s.serviceIndex()
	if err != nil {
		return nil, err
	}

	slots := make([]models.BookedSlot, 0, len(bookings))
	for _, b := range bookings {
		svc, ok := index[b.ServiceID]
		if !ok {
			continue
		}
		slots = append(slots, models.BookedSlot{Time: b.BookingTime, Duration: svc.Duration})
	}
	return slots, nil
}

// GetAllBookings returns every booking joined with its service fields.
func (s *DefaultBookingService) GetAllBookings() ([]models.BookingDetail, error) {
	bookings, err := s.Bookings.GetAll()
	if err != nil {
		return nil, err
	}
	index, err := s.serviceIndex()
	if err != nil {
		return nil, err
	}

	details := make([]models.BookingDetail, 0, len(bookings))
	for _, b := range bookings {
		details = append(details, detail(b, index))
	}
	return details, nil
}

// GetUserBookings returns a customer's bookings joined with service fields.
func (s *DefaultBookingService) GetUserBookings(userID string) ([]models.BookingDetail, error) {
	bookings, err := s.Bookings.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	index, err := s.serviceIndex()
	if err != nil {
		return nil, err
	}

	details := make([]models.BookingDetail, 0, len(bookings))
	for _, b := range bookings {
		details = append(details, detail(b, index))
	}
	return details, nil
}

// UpdateStatus moves a booking to a new status from the fixed allowed set.
// The rejection reason is kept only when the new status is rejected. The
// status-specific notifications are enqueued after the update is persisted.
func (s *DefaultBookingService) UpdateStatus(id, status, rejectionReason string) (*models.BookingDetail, error) {
	if status == "" {
		return nil, NewValidationError("missing required field: status")
	}
	if !statusAllowed(status) {
		return nil, NewValidationError("invalid status provided")
	}

	booking, err := s.Bookings.GetByID(id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, NewNotFoundError("booking not found")
	}

	reason := ""
	if status == models.BookingStatusRejected {
		reason = rejectionReason
	}
	if err := s.Bookings.UpdateStatus(id, status, reason); err != nil {
		return nil, err
	}

	booking.Status = status
	booking.RejectionReason = reason

	index, err := s.serviceIndex()
	if err != nil {
		return nil, err
	}
	updated := detail(*booking, index)

	if status == models.BookingStatusConfirmed || status == models.BookingStatusRejected {
		s.enqueue(models.BookingNotification{
			Kind:        status,
			BookingID:   booking.ID,
			ServiceName: updated.ServiceName,
			Name:        booking.CustomerName,
			Email:       booking.CustomerEmail,
			Phone:       booking.CustomerPhone,
			Date:        booking.BookingDate,
			Time:        booking.BookingTime,
			Amount:      booking.TotalAmount,
			Status:      status,
			Reason:      reason,
		})
	}

	return &updated, nil
}

// Reschedule moves a customer's own booking to a new date/time and resets it
// to pending for re-approval. The new slot is not re-checked against existing
// appointments; the admin decides when approving the pending booking.
func (s *DefaultBookingService) Reschedule(id, userID, date, timeOfDay string) (*models.Booking, error) {
	if date == "" || timeOfDay == "" {
		return nil, NewValidationError("new date and time are required")
	}

	booking, err := s.Bookings.GetByID(id)
	if err != nil {
		return nil, err
	}
	if booking == nil || booking.UserID == "" || booking.UserID != userID {
		return nil, NewNotFoundError("booking not found or unauthorized")
	}

	if err := s.Bookings.UpdateSchedule(id, date, timeOfDay, models.BookingStatusPending); err != nil {
		return nil, err
	}

	booking.BookingDate = date
	booking.BookingTime = timeOfDay
	booking.Status = models.BookingStatusPending
	booking.UpdatedAt = time.Now()
	return booking, nil
}

// GetDashboardStats summarizes bookings for the admin dashboard.
func (s *DefaultBookingService) GetDashboardStats() (*models.DashboardStats, error) {
	total, err := s.Bookings.CountAll()
	if err != nil {
		return nil, err
	}
	pending, err := s.Bookings.CountByStatus(models.BookingStatusPending)
	if err != nil {
		return nil, err
	}
	confirmed, err := s.Bookings.CountByStatus(models.BookingStatusConfirmed)
	if err != nil {
		return nil, err
	}
	earnings, err := s.Bookings.SumAmountByStatuses(
		[]string{models.BookingStatusConfirmed, models.BookingStatusCompleted})
	if err != nil {
		return nil, err
	}
	recent, err := s.Bookings.GetRecent(5)
	if err != nil {
		return nil, err
	}

	index, err := s.serviceIndex()
	if err != nil {
		return nil, err
	}
	recentDetails := make([]models.BookingDetail, 0, len(recent))
	for _, b := range recent {
		recentDetails = append(recentDetails, detail(b, index))
	}

	return &models.DashboardStats{
		TotalBookings:     total,
		PendingBookings:   pending,
		ConfirmedBookings: confirmed,
		TotalEarnings:     earnings,
		RecentBookings:    recentDetails,
	}, nil
}

// DeleteBooking permanently removes a booking.
func (s *DefaultBookingService) DeleteBooking(id string) error {
	return s.Bookings.Delete(id)
}

// ResetAllBookings wipes the bookings collection.
func (s *DefaultBookingService) ResetAllBookings() error {
	return s.Bookings.DeleteAll()
}

func (s *DefaultBookingService) enqueue(n models.BookingNotification) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.EnqueueBookingNotification(n); err != nil {
		utils.GetLogger().Error("failed to enqueue booking notification",
			zap.String("bookingID", n.BookingID), zap.String("kind", n.Kind), zap.Error(err))
	}
}
