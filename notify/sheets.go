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

// Record is one append-only spreadsheet row. Both successful and failed
// requests produce a record; failures carry an empty request.
type Record struct {
	RequestID        string
	Timestamp        time.Time
	Request          *intake.Request
	TemplateMatch    templates.Match
	GenerationTimeMs int64
	Warnings         []validate.Warning
	Success          bool
}

// SheetLogger appends flat key/value records to a spreadsheet webhook. A
// logger built with an empty URL is a no-op.
type SheetLogger struct {
	webhookURL string
	client     *http.Client
}

func NewSheetLogger(webhookURL string) *SheetLogger {
	return &SheetLogger{
		webhookURL: strings.TrimSpace(webhookURL),
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// Log appends the record. Unconfigured loggers return nil immediately.
func (s *SheetLogger) Log(ctx context.Context, record Record) error {
	if s.webhookURL == "" {
		return nil
	}

	req := record.Request
	if req == nil {
		req = &intake.Request{}
	}

	submitActions, _ := json.Marshal(req.SubmitActions)
	compliance, _ := json.Marshal(req.ComplianceRequirements)
	warnings, _ := json.Marshal(record.Warnings)
	fullInputs, _ := json.Marshal(req)

	templateMatched := "none"
	if record.TemplateMatch.TemplateID != "" {
		templateMatched = record.TemplateMatch.TemplateID
	}

	payload := map[string]any{
		"requestId":              record.RequestID,
		"timestamp":              record.Timestamp.UTC().Format(time.RFC3339),
		"userName":               req.UserName,
		"userEmail":              req.UserEmail,
		"microappName":           req.MicroappName,
		"department":             req.OwningDepartment,
		"description":            req.MicroappDescription,
		"userType":               req.UserType,
		"estimatedVolume":        req.EstimatedVolume,
		"submitActions":          string(submitActions),
		"complianceRequirements": string(compliance),
		"templateMatched":        templateMatched,
		"matchScore":             record.TemplateMatch.Score,
		"generationTimeMs":       record.GenerationTimeMs,
		"warningCount":           len(record.Warnings),
		"warnings":               string(warnings),
		"success":                record.Success,
		"fullInputs":             string(fullInputs),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal sheet record: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build sheet request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("post sheet webhook: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sheet webhook returned %d: %s", resp.StatusCode, string(detail))
	}
	return nil
}
