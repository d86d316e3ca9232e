package notification

import (
	"fmt"
	"strings"

	"flawless/config"
	"flawless/models"
	"flawless/utils"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// WhatsAppSender delivers short booking updates over WhatsApp.
type WhatsAppSender interface {
	Send(to, body string) error
}

// TwilioWhatsAppSender sends WhatsApp messages through Twilio. With no
// credentials configured it logs messages instead of sending.
type TwilioWhatsAppSender struct {
	client      *twilio.RestClient
	from        string
	countryCode string
}

// NewTwilioWhatsAppSender creates a sender from the loaded configuration.
func NewTwilioWhatsAppSender(cfg *config.Config) *TwilioWhatsAppSender {
	s := &TwilioWhatsAppSender{
		from:        cfg.TwilioWhatsAppFrom,
		countryCode: cfg.DefaultCountryCode,
	}
	if cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" {
		utils.GetLogger().Warn("Twilio credentials not set; WhatsApp messages will be logged, not sent")
		return s
	}
	s.client = twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.TwilioAccountSID,
		Password: cfg.TwilioAuthToken,
	})
	return s
}

// FormatWhatsAppNumber normalizes a raw phone number into the
// "whatsapp:+<digits>" form Twilio expects. Ten-digit local numbers get the
// default country code prepended.
func FormatWhatsAppNumber(raw, countryCode string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	num := digits.String()
	if num == "" {
		return ""
	}
	if len(num) == 10 {
		num = countryCode + num
	}
	return "whatsapp:+" + num
}

func (s *TwilioWhatsAppSender) Send(to, body string) error {
	dest := FormatWhatsAppNumber(to, s.countryCode)
	if dest == "" {
		return fmt.Errorf("invalid phone number %q", to)
	}
	if s.client == nil {
		utils.GetLogger().Sugar().Infof("[MOCK WHATSAPP] To: %s | %s", dest, body)
		return nil
	}

	from := s.from
	if !strings.HasPrefix(from, "whatsapp:") {
		from = "whatsapp:" + from
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(dest)
	params.SetFrom(from)
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("whatsapp send failed: %w", err)
	}
	return nil
}

// WhatsAppBody renders the WhatsApp message for a booking notification.
func WhatsAppBody(n models.BookingNotification) string {
	ref := ReferenceNo(n.BookingID)
	when := fmt.Sprintf("%s at %s", friendlyDate(n.Date), n.Time)

	switch n.Kind {
	case models.NotifyBookingConfirmed:
		return fmt.Sprintf("✅ *Flawless Salon*\n\nHi %s, your appointment is confirmed!\n\n*%s*\n%s\nRef: %s\n\nSee you soon!",
			n.Name, n.ServiceName, when, ref)
	case models.NotifyBookingRejected:
		reason := n.Reason
		if reason == "" {
			reason = "the requested slot is no longer available"
		}
		return fmt.Sprintf("⚠️ *Flawless Salon*\n\nHi %s, we couldn't accommodate your appointment for *%s* on %s.\n\nReason: %s\n\nPlease book another slot. Ref: %s",
			n.Name, n.ServiceName, when, reason, ref)
	default:
		return fmt.Sprintf("🌸 *Flawless Salon*\n\nHi %s, we received your request for *%s* on %s.\n\nYou'll get a confirmation once it is approved. Ref: %s",
			n.Name, n.ServiceName, when, ref)
	}
}
