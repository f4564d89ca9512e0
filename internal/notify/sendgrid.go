package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"jobwatch/internal/domain"
)

const (
	DefaultEndpoint = "https://api.sendgrid.com/v3/mail/send"
	DefaultTimeout  = 20 * time.Second
)

// Config is built once at startup and handed to New.
type Config struct {
	APIKey   string
	From     string
	To       string
	Endpoint string
	Timeout  time.Duration
}

// Complete reports whether every credential and address is set.
func (c Config) Complete() bool {
	return strings.TrimSpace(c.APIKey) != "" &&
		strings.TrimSpace(c.From) != "" &&
		strings.TrimSpace(c.To) != ""
}

// Notifier delivers digests through the SendGrid v3 mail API.
type Notifier struct {
	cfg Config
	hc  *http.Client
	now func() time.Time
}

func New(cfg Config) *Notifier {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Notifier{
		cfg: cfg,
		hc:  &http.Client{Timeout: cfg.Timeout},
		now: time.Now,
	}
}

// Notify sends a digest of jobs and reports whether it was accepted.
func (n *Notifier) Notify(ctx context.Context, jobs []domain.Job) bool {
	subject, body := BuildDigest(jobs, n.now())
	return n.Send(ctx, subject, body)
}

type address struct {
	Email string `json:"email"`
}

type personalization struct {
	To []address `json:"to"`
}

type content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type mailRequest struct {
	Personalizations []personalization `json:"personalizations"`
	From             address           `json:"from"`
	Subject          string            `json:"subject"`
	Content          []content         `json:"content"`
}

// Send posts one message. It never retries; 200 and 202 count as success.
func (n *Notifier) Send(ctx context.Context, subject, body string) bool {
	if !n.cfg.Complete() {
		log.Printf("[!] Missing email config. Set SENDGRID_API_KEY, SENDER_EMAIL, RECIPIENT_EMAIL.")
		return false
	}

	status, respBody, err := n.post(ctx, mailRequest{
		Personalizations: []personalization{{To: []address{{Email: n.cfg.To}}}},
		From:             address{Email: n.cfg.From},
		Subject:          subject,
		Content:          []content{{Type: "text/plain", Value: body}},
	})
	if err != nil {
		log.Printf("[!] SendGrid request failed: %v", err)
		return false
	}
	if status == http.StatusOK || status == http.StatusAccepted {
		log.Printf("[+] Email sent")
		return true
	}
	log.Printf("[!] SendGrid failed: %d %s", status, respBody)
	return false
}

func (n *Notifier) post(ctx context.Context, msg mailRequest) (int, string, error) {
	b, err := json.Marshal(msg)
	if err != nil {
		return 0, "", fmt.Errorf("encode mail: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.cfg.Endpoint, bytes.NewReader(b))
	if err != nil {
		return 0, "", err
	}
	req.Header.Set("Authorization", "Bearer "+n.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := n.hc.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer res.Body.Close()

	rb, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
	return res.StatusCode, string(rb), nil
}
