package services

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// ResetNotifier delivers a password-reset code to a user out-of-band.
type ResetNotifier interface {
	SendResetCode(email, code string)
}

// WebhookMailer posts reset codes to a delivery webhook (mail relay, SMS
// bridge, whatever is configured). With no URL it runs in dev mode and logs
// the code instead.
type WebhookMailer struct {
	url    string
	client *http.Client
	log    zerolog.Logger
}

func NewWebhookMailer(url string, log zerolog.Logger) *WebhookMailer {
	return &WebhookMailer{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
		log:    log,
	}
}

// SendResetCode dispatches in a goroutine so it doesn't block the API response.
func (m *WebhookMailer) SendResetCode(email, code string) {
	if m.url == "" {
		m.log.Debug().Str("email", email).Str("code", code).Msg("No reset webhook configured, logging reset code")
		return
	}
	go m.post(email, code)
}

func (m *WebhookMailer) post(email, code string) {
	body, err := json.Marshal(map[string]string{
		"email": email,
		"code":  code,
	})
	if err != nil {
		m.log.Error().Err(err).Msg("Failed to encode reset code payload")
		return
	}

	resp, err := m.client.Post(m.url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		m.log.Error().Err(err).Str("email", email).Msg("Failed to deliver reset code")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		m.log.Error().Int("status", resp.StatusCode).Str("email", email).Msg("Reset code delivery rejected")
		return
	}
	m.log.Info().Str("email", email).Msg("Reset code delivered")
}
