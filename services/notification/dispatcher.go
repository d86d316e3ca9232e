package notification

import (
	"fmt"

	"flawless/models"

	"github.com/hibiken/asynq"
)

// QueueDispatcher implements NotificationService on top of the redis-backed
// asynq queue. Enqueueing happens after the HTTP response is committed; the
// worker in cron/ consumes the tasks.
type QueueDispatcher struct {
	client *asynq.Client
}

// NewQueueDispatcher creates a dispatcher writing to the given redis queue.
func NewQueueDispatcher(redisOpt asynq.RedisClientOpt) *QueueDispatcher {
	return &QueueDispatcher{client: asynq.NewClient(redisOpt)}
}

// EnqueueBookingNotification puts a booking notification on the outbound queue.
func (d *QueueDispatcher) EnqueueBookingNotification(n models.BookingNotification) error {
	task, err := NewBookingNotificationTask(n)
	if err != nil {
		return fmt.Errorf("failed to build notification task: %w", err)
	}
	if _, err := d.client.Enqueue(task); err != nil {
		return fmt.Errorf("failed to enqueue notification task: %w", err)
	}
	return nil
}

// Close releases the underlying queue connection.
func (d *QueueDispatcher) Close() error {
	return d.client.Close()
}
