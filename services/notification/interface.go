package notification

import (
	"flawless/models"
)

// NotificationService enqueues outbound booking messages. Dispatch is
// fire-and-forget relative to the HTTP response: callers never learn the
// delivery outcome, and the queue consumer logs and drops failures.
type NotificationService interface {
	EnqueueBookingNotification(n models.BookingNotification) error
}
