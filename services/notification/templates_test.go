package notification

import (
	"bytes"
	"strings"
	"testing"

	"flawless/models"
)

func sampleNotification(kind string) models.BookingNotification {
	return models.BookingNotification{
		Kind:        kind,
		BookingID:   "a1b2c3d4-0000-0000-0000-000000000000",
		ServiceName: "Bridal Makeup",
		Name:        "Asha",
		Email:       "asha@example.com",
		Phone:       "9876543210",
		Date:        "2026-09-01",
		Time:        "10:00",
		Amount:      150,
		Status:      kind,
		Reason:      "stylist unavailable",
	}
}

func TestReferenceNo(t *testing.T) {
	ref := ReferenceNo("a1b2c3d4-0000-0000-0000-000000000000")
	if ref != "FLAW-A1B2C3D4" {
		t.Fatalf("unexpected reference %q", ref)
	}
	if got := ReferenceNo("ab"); got != "FLAW-AB" {
		t.Fatalf("short IDs must not panic, got %q", got)
	}
}

func TestEmailSubjects(t *testing.T) {
	cases := map[string]string{
		models.NotifyBookingPending:   "Appointment Request Received",
		models.NotifyBookingConfirmed: "Appointment Confirmed - Flawless Salon",
		models.NotifyBookingRejected:  "IMPORTANT: Update Regarding Your Appointment",
	}
	for kind, want := range cases {
		if got := EmailSubject(sampleNotification(kind)); got != want {
			t.Fatalf("kind %s: expected subject %q, got %q", kind, want, got)
		}
	}
}

func TestEmailBody_ContainsBookingFacts(t *testing.T) {
	body := EmailBody(sampleNotification(models.NotifyBookingConfirmed))
	for _, want := range []string{"Asha", "Bridal Makeup", "FLAW-A1B2C3D4", "10:00"} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected body to contain %q", want)
		}
	}

	rejected := EmailBody(sampleNotification(models.NotifyBookingRejected))
	if !strings.Contains(rejected, "stylist unavailable") {
		t.Fatal("rejection email must carry the reason")
	}
}

func TestAttachmentNames(t *testing.T) {
	cases := map[string]string{
		models.NotifyBookingPending:   "Booking_Request_FLAW-A1B2C3D4.pdf",
		models.NotifyBookingConfirmed: "Booking_Receipt_FLAW-A1B2C3D4.pdf",
		models.NotifyBookingRejected:  "Booking_Status_FLAW-A1B2C3D4.pdf",
	}
	for kind, want := range cases {
		if got := AttachmentName(sampleNotification(kind)); got != want {
			t.Fatalf("kind %s: expected %q, got %q", kind, want, got)
		}
	}
}

func TestBuildReceiptPDF(t *testing.T) {
	for _, kind := range []string{
		models.NotifyBookingPending,
		models.NotifyBookingConfirmed,
		models.NotifyBookingRejected,
	} {
		pdfBytes, err := BuildReceiptPDF(sampleNotification(kind))
		if err != nil {
			t.Fatalf("kind %s: unexpected error: %v", kind, err)
		}
		if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
			t.Fatalf("kind %s: output is not a PDF", kind)
		}
	}
}
