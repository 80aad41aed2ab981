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

	"github.com/callvuforge/api/intake"
	"github.com/callvuforge/api/templates"
	"github.com/callvuforge/api/validate"
)

// Summary is the per-request digest posted to the chat webhook.
type Summary struct {
	RequestID        string
	Request          *intake.Request
	TemplateMatch    templates.Match
	GenerationTimeMs int64
	Warnings         []validate.Warning
}

// SlackNotifier posts a block-formatted request summary to an incoming
// webhook. A notifier built with an empty URL is a no-op.
type SlackNotifier struct {
	webhookURL string
	client     *http.Client
}

func NewSlackNotifier(webhookURL string) *SlackNotifier {
	return &SlackNotifier{
		webhookURL: strings.TrimSpace(webhookURL),
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// Notify sends the summary. Unconfigured notifiers return nil immediately.
func (s *SlackNotifier) Notify(ctx context.Context, summary Summary) error {
	if s.webhookURL == "" {
		return nil
	}

	payload := map[string]any{"blocks": buildBlocks(summary)}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal slack payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build slack request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("post slack webhook: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("slack webhook returned %d: %s", resp.StatusCode, string(detail))
	}
	return nil
}

func buildBlocks(summary Summary) []map[string]any {
	req := summary.Request
	if req == nil {
		req = &intake.Request{}
	}

	integrations := "None specified"
	if len(req.SubmitActions) > 0 {
		integrations = strings.Join(req.SubmitActions, ", ")
	}
	compliance := "None specified"
	if len(req.ComplianceRequirements) > 0 {
		compliance = strings.Join(req.ComplianceRequirements, ", ")
	}

	templateText := "Generated from scratch"
	if summary.TemplateMatch.TemplateID != "" {
		templateText = fmt.Sprintf("%s (%d%% match)", summary.TemplateMatch.TemplateID, summary.TemplateMatch.Score)
	}

	description := req.MicroappDescription
	if len(description) > 500 {
		description = description[:500] + "..."
	}

	contextText := fmt.Sprintf("Request ID: %s | Email: %s", summary.RequestID, req.UserEmail)
	if len(summary.Warnings) > 0 {
		var lines []string
		for _, w := range summary.Warnings {
			lines = append(lines, "• "+w.Message)
		}
		contextText += "\n\n⚠️ *Warnings:*\n" + strings.Join(lines, "\n")
	}

	return []map[string]any{
		{
			"type": "header",
			"text": map[string]any{"type": "plain_text", "text": "🆕 New Microapp Request", "emoji": true},
		},
		{
			"type": "section",
			"fields": []map[string]any{
				{"type": "mrkdwn", "text": "*Microapp:*\n" + req.MicroappName},
				{"type": "mrkdwn", "text": "*Requested by:*\n" + req.UserName},
				{"type": "mrkdwn", "text": "*Department:*\n" + req.OwningDepartment},
				{"type": "mrkdwn", "text": "*Volume:*\n" + req.EstimatedVolume},
			},
		},
		{
			"type": "section",
			"text": map[string]any{"type": "mrkdwn", "text": "*Description:*\n" + description},
		},
		{
			"type": "section",
			"fields": []map[string]any{
				{"type": "mrkdwn", "text": "*Integrations:*\n" + integrations},
				{"type": "mrkdwn", "text": "*Compliance:*\n" + compliance},
			},
		},
		{
			"type": "section",
			"fields": []map[string]any{
				{"type": "mrkdwn", "text": "*Template Match:*\n" + templateText},
				{"type": "mrkdwn", "text": fmt.Sprintf("*Generation Time:*\n%dms", summary.GenerationTimeMs)},
			},
		},
		{
			"type": "context",
			"elements": []map[string]any{
				{"type": "mrkdwn", "text": contextText},
			},
		},
	}
}
