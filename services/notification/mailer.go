package notification

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"flawless/config"
	"flawless/utils"

	"go.uber.org/zap"
)

const brevoEndpoint = "https://api.brevo.com/v3/smtp/email"

// Attachment is a file sent along with an email.
type Attachment struct {
	Filename string
	Content  []byte
}

// Mailer sends transactional email.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlContent string, attachments []Attachment) error
}

// BrevoMailer sends email through the Brevo transactional API. When no API
// key is configured it logs the message instead of sending, so development
// environments work without credentials.
type BrevoMailer struct {
	apiKey    string
	fromEmail string
	fromName  string
	http      *http.Client
}

// NewBrevoMailer creates a mailer from the loaded configuration.
func NewBrevoMailer(cfg *config.Config) *BrevoMailer {
	if cfg.BrevoAPIKey == "" {
		utils.GetLogger().Warn("BREVO_API_KEY not set; emails will be logged, not sent")
	}
	return &BrevoMailer{
		apiKey:    cfg.BrevoAPIKey,
		fromEmail: cfg.EmailFrom,
		fromName:  cfg.EmailFromName,
		http:      &http.Client{Timeout: 15 * time.Second},
	}
}

type brevoRecipient struct {
	Email string `json:"email"`
}

type brevoAttachment struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

type brevoMessage struct {
	Sender struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"sender"`
	To          []brevoRecipient  `json:"to"`
	BCC         []brevoRecipient  `json:"bcc,omitempty"`
	Subject     string            `json:"subject"`
	HTMLContent string            `json:"htmlContent"`
	Attachment  []brevoAttachment `json:"attachment,omitempty"`
}

// Send delivers one email. The salon's own address is BCC'd on every customer
// email so the owner keeps a copy.
func (m *BrevoMailer) Send(ctx context.Context, to, subject, htmlContent string, attachments []Attachment) error {
	if m.apiKey == "" {
		utils.GetLogger().Sugar().Infof("[MOCK EMAIL] To: %s | Subject: %s", to, subject)
		return nil
	}

	var msg brevoMessage
	msg.Sender.Name = m.fromName
	msg.Sender.Email = m.fromEmail
	msg.To = []brevoRecipient{{Email: to}}
	if to != m.fromEmail {
		msg.BCC = []brevoRecipient{{Email: m.fromEmail}}
	}
	msg.Subject = subject
	msg.HTMLContent = htmlContent
	for _, att := range attachments {
		msg.Attachment = append(msg.Attachment, brevoAttachment{
			Name:    att.Filename,
			Content: base64.StdEncoding.EncodeToString(att.Content),
		})
	}

	raw, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, brevoEndpoint, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("content-type", "application/json")
	req.Header.Set("api-key", m.apiKey)

	resp, err := m.http.Do(req)
	if err != nil {
		return fmt.Errorf("email request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("brevo API error (%d): %s", resp.StatusCode, string(body))
	}

	utils.GetLogger().Debug("email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}
