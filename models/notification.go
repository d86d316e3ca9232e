package models

// NotificationKind selects the template used for an outbound booking message.
const (
	NotifyBookingPending   = "pending"
	NotifyBookingConfirmed = "confirmed"
	NotifyBookingRejected  = "rejected"
)

// BookingNotification is the payload carried on the outbound notification
// queue. It snapshots everything the worker needs so delivery never reads the
// database again.
type BookingNotification struct {
	Kind        string  `json:"kind"`
	BookingID   string  `json:"booking_id"`
	ServiceName string  `json:"service_name"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone,omitempty"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	Reason      string  `json:"reason,omitempty"`
}
