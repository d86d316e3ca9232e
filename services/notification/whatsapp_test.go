package notification

import (
	"strings"
	"testing"

	"flawless/models"
)

func TestFormatWhatsAppNumber(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"9876543210", "whatsapp:+919876543210"},
		{"98765-43210", "whatsapp:+919876543210"},
		{"+91 98765 43210", "whatsapp:+919876543210"},
		{"14155550123", "whatsapp:+14155550123"},
		{"", ""},
		{"abc", ""},
	}
	for _, tc := range cases {
		if got := FormatWhatsAppNumber(tc.raw, "91"); got != tc.want {
			t.Fatalf("FormatWhatsAppNumber(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestWhatsAppBody(t *testing.T) {
	confirmed := WhatsAppBody(sampleNotification(models.NotifyBookingConfirmed))
	if !strings.Contains(confirmed, "confirmed") || !strings.Contains(confirmed, "FLAW-A1B2C3D4") {
		t.Fatalf("unexpected confirmed message: %q", confirmed)
	}

	rejected := WhatsAppBody(sampleNotification(models.NotifyBookingRejected))
	if !strings.Contains(rejected, "stylist unavailable") {
		t.Fatal("rejected message must carry the reason")
	}

	pending := WhatsAppBody(sampleNotification(models.NotifyBookingPending))
	if !strings.Contains(pending, "received your request") {
		t.Fatalf("unexpected pending message: %q", pending)
	}
}
