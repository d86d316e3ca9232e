package models

import "time"

// Booking statuses. A booking is created pending; only its status (and, on a
// customer reschedule, its date and time) change afterwards.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusRejected  = "rejected"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// AllowedBookingStatuses is the fixed set accepted by the status-update workflow.
var AllowedBookingStatuses = []string{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusRejected,
	BookingStatusCompleted,
	BookingStatusCancelled,
}

// Booking represents an appointment request for the salon.
type Booking struct {
	ID              string    `bson:"id" json:"id"`
	ServiceID       string    `bson:"service_id" json:"service_id"`
	BookingDate     string    `bson:"booking_date" json:"booking_date"` // "2006-01-02"
	BookingTime     string    `bson:"booking_time" json:"booking_time"` // "15:04" or "15:04:05"
	Status          string    `bson:"status" json:"status"`
	CustomerName    string    `bson:"customer_name" json:"customer_name"`
	CustomerEmail   string    `bson:"customer_email" json:"customer_email"`
	CustomerPhone   string    `bson:"customer_phone,omitempty" json:"customer_phone,omitempty"`
	Notes           string    `bson:"notes,omitempty" json:"notes,omitempty"`
	TotalAmount     float64   `bson:"total_amount" json:"total_amount"`
	RejectionReason string    `bson:"rejection_reason,omitempty" json:"rejection_reason,omitempty"`
	UserID          string    `bson:"user_id,omitempty" json:"user_id,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}

// BookingInput is the request body for creating a booking.
type BookingInput struct {
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
	ServiceID     string `json:"service_id"`
	BookingDate   string `json:"booking_date"`
	BookingTime   string `json:"booking_time"`
	Notes         string `json:"notes"`
	UserID        string `json:"user_id"`
}

// BookingDetail is a booking enriched with fields of its service, the shape
// returned to admin and customer listings.
type BookingDetail struct {
	Booking     `bson:",inline"`
	ServiceName string `bson:"service_name" json:"service_name"`
	Duration    int    `bson:"duration" json:"duration"`
	ImageURL    string `bson:"image_url,omitempty" json:"image_url,omitempty"`
}

// BookedSlot is a (time, duration) pair used by the client to pre-block UI
// slots for a date. It does not itself enforce conflicts.
type BookedSlot struct {
	Time     string `json:"time"`
	Duration int    `json:"duration"`
}

// DashboardStats summarizes bookings for the admin dashboard.
type DashboardStats struct {
	TotalBookings     int64           `json:"totalBookings"`
	PendingBookings   int64           `json:"pendingBookings"`
	ConfirmedBookings int64           `json:"confirmedBookings"`
	TotalEarnings     float64         `json:"totalEarnings"`
	RecentBookings    []BookingDetail `json:"recentBookings"`
}
