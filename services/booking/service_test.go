package booking

import (
	"errors"
	"fmt"
	"testing"

	"flawless/models"
)

// fakeBookingRepo is an in-memory BookingRepository.
type fakeBookingRepo struct {
	bookings []models.Booking
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	r.bookings = append(r.bookings, *b)
	return nil
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			b := r.bookings[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (r *fakeBookingRepo) GetAll() ([]models.Booking, error) {
	return append([]models.Booking(nil), r.bookings...), nil
}

func (r *fakeBookingRepo) GetByUser(userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetByDateExcludingStatuses(date string, excluded []string) ([]models.Booking, error) {
	skip := make(map[string]bool, len(excluded))
	for _, s := range excluded {
		skip[s] = true
	}
	var out []models.Booking
	for _, b := range r.bookings {
		if b.BookingDate == date && !skip[b.Status] {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateStatus(id, status, reason string) error {
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings[i].Status = status
			r.bookings[i].RejectionReason = reason
			return nil
		}
	}
	return fmt.Errorf("booking %s not found", id)
}

func (r *fakeBookingRepo) UpdateSchedule(id, date, timeOfDay, status string) error {
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings[i].BookingDate = date
			r.bookings[i].BookingTime = timeOfDay
			r.bookings[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("booking %s not found", id)
}

func (r *fakeBookingRepo) Delete(id string) error {
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("booking %s not found", id)
}

func (r *fakeBookingRepo) DeleteAll() error {
	r.bookings = nil
	return nil
}

func (r *fakeBookingRepo) DeleteByService(serviceID string) error {
	var kept []models.Booking
	for _, b := range r.bookings {
		if b.ServiceID != serviceID {
			kept = append(kept, b)
		}
	}
	r.bookings = kept
	return nil
}

func (r *fakeBookingRepo) CountAll() (int64, error) {
	return int64(len(r.bookings)), nil
}

func (r *fakeBookingRepo) CountByStatus(status string) (int64, error) {
	var n int64
	for _, b := range r.bookings {
		if b.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *fakeBookingRepo) SumAmountByStatuses(statuses []string) (float64, error) {
	want := make(map[string]bool, len(statuses))
	for _, s := range statuses {
		want[s] = true
	}
	var sum float64
	for _, b := range r.bookings {
		if want[b.Status] {
			sum += b.TotalAmount
		}
	}
	return sum, nil
}

func (r *fakeBookingRepo) GetRecent(limit int64) ([]models.Booking, error) {
	if int64(len(r.bookings)) <= limit {
		return append([]models.Booking(nil), r.bookings...), nil
	}
	return append([]models.Booking(nil), r.bookings[int64(len(r.bookings))-limit:]...), nil
}

// fakeServiceRepo is an in-memory ServiceRepository.
type fakeServiceRepo struct {
	services []models.Service
}

func (r *fakeServiceRepo) GetByID(id string) (*models.Service, error) {
	for i := range r.services {
		if r.services[i].ID == id {
			s := r.services[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (r *fakeServiceRepo) GetAll() ([]models.Service, error) {
	return append([]models.Service(nil), r.services...), nil
}

func (r *fakeServiceRepo) GetActive() ([]models.Service, error) {
	var out []models.Service
	for _, s := range r.services {
		if s.Active {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeServiceRepo) Create(s *models.Service) error {
	r.services = append(r.services, *s)
	return nil
}

func (r *fakeServiceRepo) Update(s *models.Service) error {
	for i := range r.services {
		if r.services[i].ID == s.ID {
			r.services[i] = *s
			return nil
		}
	}
	return fmt.Errorf("service %s not found", s.ID)
}

func (r *fakeServiceRepo) Delete(id string) error {
	for i := range r.services {
		if r.services[i].ID == id {
			r.services = append(r.services[:i], r.services[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("service %s not found", id)
}

// fakeNotifier records enqueued notifications.
type fakeNotifier struct {
	sent []models.BookingNotification
}

func (n *fakeNotifier) EnqueueBookingNotification(notif models.BookingNotification) error {
	n.sent = append(n.sent, notif)
	return nil
}

func newTestService() (*DefaultBookingService, *fakeBookingRepo, *fakeNotifier) {
	bookings := &fakeBookingRepo{}
	services := &fakeServiceRepo{services: []models.Service{
		{ID: "svc-hair", Name: "Haircut", Duration: 30, Price: 40, Active: true},
		{ID: "svc-facial", Name: "Facial", Duration: 60, Price: 80, Active: true},
	}}
	notifier := &fakeNotifier{}
	return &DefaultBookingService{
		Bookings: bookings,
		Services: services,
		Notifier: notifier,
	}, bookings, notifier
}

func validInput() models.BookingInput {
	return models.BookingInput{
		CustomerName:  "Asha",
		CustomerEmail: "asha@example.com",
		CustomerPhone: "9876543210",
		ServiceID:     "svc-hair",
		BookingDate:   "2026-09-01",
		BookingTime:   "10:00",
		UserID:        "user-1",
	}
}

func TestCreateBooking_Success(t *testing.T) {
	svc, repo, notifier := newTestService()

	detail, err := svc.CreateBooking(validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Status != models.BookingStatusPending {
		t.Fatalf("expected pending status, got %q", detail.Status)
	}
	if detail.ServiceName != "Haircut" || detail.Duration != 30 {
		t.Fatalf("expected joined service fields, got %+v", detail)
	}
	if detail.TotalAmount != 40 {
		t.Fatalf("expected amount from the service price, got %v", detail.TotalAmount)
	}
	if len(repo.bookings) != 1 {
		t.Fatalf("expected 1 stored booking, got %d", len(repo.bookings))
	}
	if len(notifier.sent) != 1 || notifier.sent[0].Kind != models.NotifyBookingPending {
		t.Fatalf("expected one pending notification, got %+v", notifier.sent)
	}
}

func TestCreateBooking_MissingFields(t *testing.T) {
	svc, repo, notifier := newTestService()

	input := validInput()
	input.CustomerEmail = ""
	_, err := svc.CreateBooking(input)

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(repo.bookings) != 0 {
		t.Fatal("nothing may be persisted when validation fails")
	}
	if len(notifier.sent) != 0 {
		t.Fatal("nothing may be enqueued when validation fails")
	}
}

func TestCreateBooking_UnknownService(t *testing.T) {
	svc, _, _ := newTestService()

	input := validInput()
	input.ServiceID = "svc-missing"
	_, err := svc.CreateBooking(input)

	var ne *NotFoundError
	if !errors.As(err, &ne) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestCreateBooking_InvalidTime(t *testing.T) {
	svc, _, _ := newTestService()

	input := validInput()
	input.BookingTime = "25:99"
	_, err := svc.CreateBooking(input)

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestCreateBooking_OverlapConflict(t *testing.T) {
	svc, _, notifier := newTestService()

	if _, err := svc.CreateBooking(validInput()); err != nil {
		t.Fatalf("seed booking failed: %v", err)
	}

	// Second request overlaps the 10:00-10:30 haircut.
	input := validInput()
	input.CustomerName = "Bina"
	input.BookingTime = "10:15"
	_, err := svc.CreateBooking(input)

	var ce *ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if len(notifier.sent) != 1 {
		t.Fatalf("conflicting request must not enqueue, got %d notifications", len(notifier.sent))
	}
}

func TestCreateBooking_BackToBackAllowed(t *testing.T) {
	svc, _, _ := newTestService()

	if _, err := svc.CreateBooking(validInput()); err != nil {
		t.Fatalf("seed booking failed: %v", err)
	}

	input := validInput()
	input.BookingTime = "10:30"
	if _, err := svc.CreateBooking(input); err != nil {
		t.Fatalf("a booking starting exactly at the previous end must succeed, got %v", err)
	}
}

func TestCreateBooking_RejectedDoesNotBlock(t *testing.T) {
	svc, _, _ := newTestService()

	first, err := svc.CreateBooking(validInput())
	if err != nil {
		t.Fatalf("seed booking failed: %v", err)
	}
	if _, err := svc.UpdateStatus(first.ID, models.BookingStatusRejected, "double booked"); err != nil {
		t.Fatalf("reject failed: %v", err)
	}

	input := validInput()
	input.BookingTime = "10:15"
	if _, err := svc.CreateBooking(input); err != nil {
		t.Fatalf("rejected bookings must not block the slot, got %v", err)
	}
}

func TestCreateBooking_DifferentDateNoConflict(t *testing.T) {
	svc, _, _ := newTestService()

	if _, err := svc.CreateBooking(validInput()); err != nil {
		t.Fatalf("seed booking failed: %v", err)
	}

	input := validInput()
	input.BookingDate = "2026-09-02"
	if _, err := svc.CreateBooking(input); err != nil {
		t.Fatalf("same time on another date must succeed, got %v", err)
	}
}

func TestUpdateStatus_Validation(t *testing.T) {
	svc, _, _ := newTestService()

	created, err := svc.CreateBooking(validInput())
	if err != nil {
		t.Fatalf("seed booking failed: %v", err)
	}

	var ve *ValidationError
	if _, err := svc.UpdateStatus(created.ID, "", ""); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for empty status, got %v", err)
	}
	if _, err := svc.UpdateStatus(created.ID, "archived", ""); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for unknown status, got %v", err)
	}

	var ne *NotFoundError
	if _, err := svc.UpdateStatus("does-not-exist", models.BookingStatusConfirmed, ""); !errors.As(err, &ne) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestUpdateStatus_Notifications(t *testing.T) {
	svc, _, notifier := newTestService()

	created, err := svc.CreateBooking(validInput())
	if err != nil {
		t.Fatalf("seed booking failed: %v", err)
	}
	notifier.sent = nil

	if _, err := svc.UpdateStatus(created.ID, models.BookingStatusConfirmed, ""); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if len(notifier.sent) != 1 || notifier.sent[0].Kind != models.NotifyBookingConfirmed {
		t.Fatalf("expected one confirmed notification, got %+v", notifier.sent)
	}

	notifier.sent = nil
	if _, err := svc.UpdateStatus(created.ID, models.BookingStatusCompleted, ""); err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if len(notifier.sent) != 0 {
		t.Fatalf("completed must not notify, got %+v", notifier.sent)
	}
}

func TestUpdateStatus_ReasonOnlyWhenRejected(t *testing.T) {
	svc, repo, _ := newTestService()

	created, err := svc.CreateBooking(validInput())
	if err != nil {
		t.Fatalf("seed booking failed: %v", err)
	}

	if _, err := svc.UpdateStatus(created.ID, models.BookingStatusConfirmed, "stray reason"); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	stored, _ := repo.GetByID(created.ID)
	if stored.RejectionReason != "" {
		t.Fatalf("reason must be dropped unless rejecting, got %q", stored.RejectionReason)
	}

	if _, err := svc.UpdateStatus(created.ID, models.BookingStatusRejected, "fully booked"); err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	stored, _ = repo.GetByID(created.ID)
	if stored.RejectionReason != "fully booked" {
		t.Fatalf("expected stored rejection reason, got %q", stored.RejectionReason)
	}
}

func TestReschedule_OwnershipAndReset(t *testing.T) {
	svc, repo, _ := newTestService()

	created, err := svc.CreateBooking(validInput())
	if err != nil {
		t.Fatalf("seed booking failed: %v", err)
	}
	if _, err := svc.UpdateStatus(created.ID, models.BookingStatusConfirmed, ""); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}

	var ne *NotFoundError
	if _, err := svc.Reschedule(created.ID, "someone-else", "2026-09-03", "11:00"); !errors.As(err, &ne) {
		t.Fatalf("expected NotFoundError for foreign booking, got %v", err)
	}

	updated, err := svc.Reschedule(created.ID, "user-1", "2026-09-03", "11:00")
	if err != nil {
		t.Fatalf("reschedule failed: %v", err)
	}
	if updated.Status != models.BookingStatusPending {
		t.Fatalf("reschedule must reset to pending, got %q", updated.Status)
	}

	stored, _ := repo.GetByID(created.ID)
	if stored.BookingDate != "2026-09-03" || stored.BookingTime != "11:00" {
		t.Fatalf("schedule not persisted: %+v", stored)
	}
}

func TestGetBookedSlots_ExcludesRejectedAndCancelled(t *testing.T) {
	svc, _, _ := newTestService()

	first, err := svc.CreateBooking(validInput())
	if err != nil {
		t.Fatalf("seed booking failed: %v", err)
	}

	second := validInput()
	second.BookingTime = "11:00"
	second.ServiceID = "svc-facial"
	kept, err := svc.CreateBooking(second)
	if err != nil {
		t.Fatalf("second booking failed: %v", err)
	}

	if _, err := svc.UpdateStatus(first.ID, models.BookingStatusRejected, ""); err != nil {
		t.Fatalf("reject failed: %v", err)
	}

	slots, err := svc.GetBookedSlots("2026-09-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(slots))
	}
	if slots[0].Time != "11:00" || slots[0].Duration != 60 {
		t.Fatalf("unexpected slot %+v (want 11:00/60 for %s)", slots[0], kept.ID)
	}

	var ve *ValidationError
	if _, err := svc.GetBookedSlots(""); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for empty date, got %v", err)
	}
}

func TestGetDashboardStats(t *testing.T) {
	svc, _, _ := newTestService()

	first, err := svc.CreateBooking(validInput())
	if err != nil {
		t.Fatalf("seed booking failed: %v", err)
	}
	second := validInput()
	second.BookingTime = "12:00"
	second.ServiceID = "svc-facial"
	if _, err := svc.CreateBooking(second); err != nil {
		t.Fatalf("second booking failed: %v", err)
	}
	if _, err := svc.UpdateStatus(first.ID, models.BookingStatusConfirmed, ""); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}

	stats, err := svc.GetDashboardStats()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalBookings != 2 || stats.PendingBookings != 1 || stats.ConfirmedBookings != 1 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	if stats.TotalEarnings != 40 {
		t.Fatalf("expected earnings 40 (confirmed haircut only), got %v", stats.TotalEarnings)
	}
	if len(stats.RecentBookings) != 2 {
		t.Fatalf("expected 2 recent bookings, got %d", len(stats.RecentBookings))
	}
}

func TestResetAllBookings(t *testing.T) {
	svc, repo, _ := newTestService()

	if _, err := svc.CreateBooking(validInput()); err != nil {
		t.Fatalf("seed booking failed: %v", err)
	}
	if err := svc.ResetAllBookings(); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if len(repo.bookings) != 0 {
		t.Fatalf("expected empty repo after reset, got %d", len(repo.bookings))
	}
}
