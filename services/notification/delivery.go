package notification

import (
	"context"
	"encoding/json"

	"flawless/models"
	"flawless/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Deliverer consumes booking notification tasks from the queue and fans them
// out to email and WhatsApp. Delivery failures are logged and dropped; the
// booking itself is already persisted and a retry storm would only annoy
// customers with duplicates.
type Deliverer struct {
	Mailer   Mailer
	WhatsApp WhatsAppSender
}

func NewDeliverer(mailer Mailer, whatsapp WhatsAppSender) *Deliverer {
	return &Deliverer{Mailer: mailer, WhatsApp: whatsapp}
}

// HandleBookingNotification processes one queued booking notification.
func (d *Deliverer) HandleBookingNotification(ctx context.Context, t *asynq.Task) error {
	logger := utils.GetLogger()

	var n models.BookingNotification
	if err := json.Unmarshal(t.Payload(), &n); err != nil {
		logger.Error("failed to decode booking notification payload", zap.Error(err))
		return nil
	}

	attachments := []Attachment{}
	if pdfBytes, err := BuildReceiptPDF(n); err != nil {
		logger.Error("failed to build receipt PDF",
			zap.String("bookingID", n.BookingID), zap.Error(err))
	} else {
		attachments = append(attachments, Attachment{
			Filename: AttachmentName(n),
			Content:  pdfBytes,
		})
	}

	if err := d.Mailer.Send(ctx, n.Email, EmailSubject(n), EmailBody(n), attachments); err != nil {
		logger.Error("failed to send booking email",
			zap.String("bookingID", n.BookingID),
			zap.String("to", n.Email),
			zap.Error(err))
	}

	if n.Phone != "" {
		if err := d.WhatsApp.Send(n.Phone, WhatsAppBody(n)); err != nil {
			logger.Error("failed to send booking WhatsApp message",
				zap.String("bookingID", n.BookingID),
				zap.Error(err))
		}
	}

	logger.Info("booking notification processed",
		zap.String("bookingID", n.BookingID),
		zap.String("kind", n.Kind))
	return nil
}
