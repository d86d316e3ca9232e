package notification

import (
	"encoding/json"

	"flawless/models"

	"github.com/hibiken/asynq"
)

const TypeBookingNotify = "notification:booking"

// NewBookingNotificationTask wraps a booking notification payload in an asynq
// task for the outbound queue.
func NewBookingNotificationTask(n models.BookingNotification) (*asynq.Task, error) {
	b, err := json.Marshal(n)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingNotify, b), nil
}
