package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const resendAPIURL = "https://api.resend.com/emails"

// Delivery carries the generated document and its companion artifacts to the
// requester.
type Delivery struct {
	To           string
	MicroappName string
	Document     string
	Dependencies string
	SetupGuide   string
	PitchPoints  string
	BuildTime    string
}

// EmailSender delivers the generation result over a transactional email
// provider. A sender built without an API key is a no-op.
type EmailSender struct {
	apiKey  string
	from    string
	baseURL string
	client  *http.Client
}

func NewEmailSender(apiKey, from string) *EmailSender {
	return &EmailSender{
		apiKey:  strings.TrimSpace(apiKey),
		from:    strings.TrimSpace(from),
		baseURL: resendAPIURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// Send delivers the result to the requester. Unconfigured senders and
// deliveries without a recipient return nil immediately.
func (e *EmailSender) Send(ctx context.Context, delivery Delivery) error {
	if e.apiKey == "" || delivery.To == "" {
		return nil
	}

	from := e.from
	if from == "" {
		from = "builder@callvuforge.dev"
	}

	name := delivery.MicroappName
	if name == "" {
		name = "your microapp"
	}

	text := strings.Join([]string{
		"Your microapp is ready to import.",
		"",
		"## Estimated Build Time",
		delivery.BuildTime,
		"",
		"## Dependencies",
		delivery.Dependencies,
		"",
		delivery.SetupGuide,
		"",
		delivery.PitchPoints,
		"",
		"## Generated CVUF",
		delivery.Document,
	}, "\n")

	payload := map[string]any{
		"from":    from,
		"to":      []string{delivery.To},
		"subject": fmt.Sprintf("Your microapp is ready: %s", name),
		"text":    text,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.apiKey)

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("email provider returned %d: %s", resp.StatusCode, string(detail))
	}
	return nil
}
