package notification

import (
	"fmt"
	"strings"
	"time"

	"flawless/models"
)

// ReferenceNo derives the short booking reference shown to customers from
// the booking's UUID.
func ReferenceNo(bookingID string) string {
	id := bookingID
	if len(id) > 8 {
		id = id[:8]
	}
	return "FLAW-" + strings.ToUpper(id)
}

func friendlyDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Monday, 2 January 2006")
}

const emailStyle = `font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; color: #333;`

func emailShell(heading, body string) string {
	return fmt.Sprintf(`<div style="%s">
  <div style="background: #d4af7a; padding: 24px; text-align: center;">
    <h1 style="margin: 0; color: #fff;">Flawless Salon</h1>
  </div>
  <div style="padding: 24px;">
    <h2>%s</h2>
    %s
    <p style="margin-top: 32px; font-size: 12px; color: #888;">
      Flawless Salon &middot; This is an automated message, please do not reply.
    </p>
  </div>
</div>`, emailStyle, heading, body)
}

func bookingSummaryTable(n models.BookingNotification) string {
	rows := fmt.Sprintf(`
    <tr><td style="padding: 6px 12px;"><b>Reference</b></td><td style="padding: 6px 12px;">%s</td></tr>
    <tr><td style="padding: 6px 12px;"><b>Service</b></td><td style="padding: 6px 12px;">%s</td></tr>
    <tr><td style="padding: 6px 12px;"><b>Date</b></td><td style="padding: 6px 12px;">%s</td></tr>
    <tr><td style="padding: 6px 12px;"><b>Time</b></td><td style="padding: 6px 12px;">%s</td></tr>
    <tr><td style="padding: 6px 12px;"><b>Amount</b></td><td style="padding: 6px 12px;">%.2f</td></tr>`,
		ReferenceNo(n.BookingID), n.ServiceName, friendlyDate(n.Date), n.Time, n.Amount)
	return `<table style="border-collapse: collapse; background: #faf6f0; width: 100%;">` + rows + `</table>`
}

// EmailSubject returns the subject line for a booking notification.
func EmailSubject(n models.BookingNotification) string {
	switch n.Kind {
	case models.NotifyBookingConfirmed:
		return "Appointment Confirmed - Flawless Salon"
	case models.NotifyBookingRejected:
		return "IMPORTANT: Update Regarding Your Appointment"
	default:
		return "Appointment Request Received"
	}
}

// EmailBody renders the HTML email for a booking notification.
func EmailBody(n models.BookingNotification) string {
	switch n.Kind {
	case models.NotifyBookingConfirmed:
		body := fmt.Sprintf(`<p>Hi %s,</p>
<p>Great news! Your appointment has been <b>confirmed</b>. We look forward to seeing you.</p>
%s
<p>If you need to make changes, you can reschedule from your account. A receipt is attached for your records.</p>`,
			n.Name, bookingSummaryTable(n))
		return emailShell("Your appointment is confirmed", body)

	case models.NotifyBookingRejected:
		reason := n.Reason
		if reason == "" {
			reason = "The requested slot is no longer available."
		}
		body := fmt.Sprintf(`<p>Hi %s,</p>
<p>Unfortunately we are unable to accommodate your appointment request.</p>
%s
<p><b>Reason:</b> %s</p>
<p>We are sorry for the inconvenience. Please book another slot that suits you.</p>`,
			n.Name, bookingSummaryTable(n), reason)
		return emailShell("Update regarding your appointment", body)

	default:
		body := fmt.Sprintf(`<p>Hi %s,</p>
<p>We have received your appointment request. Our team will review it shortly and you will get a confirmation once it is approved.</p>
%s`, n.Name, bookingSummaryTable(n))
		return emailShell("We received your request", body)
	}
}

// AttachmentName returns the filename for the PDF attached to a booking email.
func AttachmentName(n models.BookingNotification) string {
	ref := ReferenceNo(n.BookingID)
	switch n.Kind {
	case models.NotifyBookingConfirmed:
		return "Booking_Receipt_" + ref + ".pdf"
	case models.NotifyBookingRejected:
		return "Booking_Status_" + ref + ".pdf"
	default:
		return "Booking_Request_" + ref + ".pdf"
	}
}

// WelcomeEmail renders the email sent to newly registered customers.
func WelcomeEmail(name string) (subject, body string) {
	subject = "Welcome to Flawless Salon"
	content := fmt.Sprintf(`<p>Hi %s,</p>
<p>Welcome to Flawless Salon! Your account is ready.</p>
<p>Browse our services and book your first appointment whenever you like. We can't wait to pamper you.</p>`, name)
	return subject, emailShell("Welcome aboard", content)
}

// PasswordResetEmail renders the password reset email.
func PasswordResetEmail(name, resetURL string) (subject, body string) {
	subject = "Reset Your Password - Flawless Salon"
	content := fmt.Sprintf(`<p>Hi %s,</p>
<p>We received a request to reset your password. Click the button below to choose a new one. The link is valid for one hour.</p>
<p style="text-align: center; margin: 24px 0;">
  <a href="%s" style="background: #d4af7a; color: #fff; padding: 12px 28px; text-decoration: none; border-radius: 4px;">Reset Password</a>
</p>
<p>If you did not request this, you can safely ignore this email.</p>`, name, resetURL)
	return subject, emailShell("Password reset", content)
}
