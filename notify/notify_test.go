package notify

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/callvuforge/api/intake"
	"github.com/callvuforge/api/templates"
	"github.com/callvuforge/api/validate"
)

func TestDispatcherRunsAndSwallowsErrors(t *testing.T) {
	t.Parallel()

	d := NewDispatcher()
	var ran atomic.Int32

	d.Go("ok", func(ctx context.Context) error {
		ran.Add(1)
		return nil
	})
	d.Go("fails", func(ctx context.Context) error {
		ran.Add(1)
		return errors.New("collaborator down")
	})
	d.Wait()

	if got := ran.Load(); got != 2 {
		t.Fatalf("ran = %d, want 2", got)
	}
}

func TestSlackNotifierUnconfigured(t *testing.T) {
	t.Parallel()

	if err := NewSlackNotifier("").Notify(context.Background(), Summary{}); err != nil {
		t.Fatalf("unconfigured notifier must be a no-op, got %v", err)
	}
}

func TestSlackNotifierPayload(t *testing.T) {
	t.Parallel()

	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &received); err != nil {
			t.Errorf("invalid payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	summary := Summary{
		RequestID: "req_123_abc",
		Request: &intake.Request{
			MicroappName:        "PTO Request",
			UserName:            "Pat",
			UserEmail:           "pat@example.com",
			OwningDepartment:    "HR",
			MicroappDescription: "time off tracking",
			SubmitActions:       []string{"notification"},
		},
		TemplateMatch:    templates.Match{TemplateID: "pto_request", Score: 90},
		GenerationTimeMs: 1234,
		Warnings:         []validate.Warning{{Field: "approvalDetails", Message: "Approval workflow requested but no details provided", Severity: "warning"}},
	}

	if err := NewSlackNotifier(server.URL).Notify(context.Background(), summary); err != nil {
		t.Fatalf("Notify: %v", err)
	}

	blocks, ok := received["blocks"].([]any)
	if !ok || len(blocks) != 6 {
		t.Fatalf("expected 6 blocks, got %v", received["blocks"])
	}
	flat, _ := json.Marshal(received)
	for _, want := range []string{
		"New Microapp Request",
		"PTO Request",
		"pto_request (90% match)",
		"1234ms",
		"req_123_abc",
		"Approval workflow requested",
	} {
		if !strings.Contains(string(flat), want) {
			t.Errorf("payload missing %q", want)
		}
	}
}

func TestSlackNotifierUpstreamError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid_payload", http.StatusBadRequest)
	}))
	defer server.Close()

	err := NewSlackNotifier(server.URL).Notify(context.Background(), Summary{})
	if err == nil || !strings.Contains(err.Error(), "400") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestSheetLoggerUnconfigured(t *testing.T) {
	t.Parallel()

	if err := NewSheetLogger("").Log(context.Background(), Record{}); err != nil {
		t.Fatalf("unconfigured logger must be a no-op, got %v", err)
	}
}

func TestSheetLoggerRecord(t *testing.T) {
	t.Parallel()

	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &received)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	record := Record{
		RequestID: "req_456_def",
		Timestamp: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Request: &intake.Request{
			UserName:      "Sam",
			MicroappName:  "Expense Report",
			SubmitActions: []string{"crm"},
		},
		TemplateMatch:    templates.Match{TemplateID: "expense_report", Score: 70},
		GenerationTimeMs: 900,
		Warnings:         []validate.Warning{{Field: "crmSystem", Message: "CRM integration requested but no CRM system specified", Severity: "warning"}},
		Success:          true,
	}

	if err := NewSheetLogger(server.URL).Log(context.Background(), record); err != nil {
		t.Fatalf("Log: %v", err)
	}

	if received["requestId"] != "req_456_def" {
		t.Errorf("requestId = %v", received["requestId"])
	}
	if received["timestamp"] != "2026-08-30T12:00:00Z" {
		t.Errorf("timestamp = %v", received["timestamp"])
	}
	if received["templateMatched"] != "expense_report" {
		t.Errorf("templateMatched = %v", received["templateMatched"])
	}
	if received["warningCount"] != float64(1) {
		t.Errorf("warningCount = %v", received["warningCount"])
	}
	if received["success"] != true {
		t.Errorf("success = %v", received["success"])
	}
	if !strings.Contains(received["fullInputs"].(string), "Expense Report") {
		t.Errorf("fullInputs missing request payload: %v", received["fullInputs"])
	}
}

func TestSheetLoggerFailureRecordWithEmptyInputs(t *testing.T) {
	t.Parallel()

	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &received)
	}))
	defer server.Close()

	record := Record{RequestID: "req_789_ghi", Timestamp: time.Now(), Success: false}
	if err := NewSheetLogger(server.URL).Log(context.Background(), record); err != nil {
		t.Fatalf("Log: %v", err)
	}

	if received["success"] != false {
		t.Errorf("success = %v, want false", received["success"])
	}
	if received["templateMatched"] != "none" {
		t.Errorf("templateMatched = %v, want none", received["templateMatched"])
	}
	if received["userName"] != "" || received["microappName"] != "" {
		t.Errorf("failure record should carry empty inputs: %v", received)
	}
}

func TestEmailSenderUnconfigured(t *testing.T) {
	t.Parallel()

	if err := NewEmailSender("", "").Send(context.Background(), Delivery{To: "pat@example.com"}); err != nil {
		t.Fatalf("unconfigured sender must be a no-op, got %v", err)
	}
	if err := NewEmailSender("key", "from@example.com").Send(context.Background(), Delivery{}); err != nil {
		t.Fatalf("delivery without recipient must be a no-op, got %v", err)
	}
}

func TestEmailSenderDelivery(t *testing.T) {
	t.Parallel()

	var received map[string]any
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &received)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sender := NewEmailSender("re_test_key", "builder@example.com")
	sender.baseURL = server.URL

	delivery := Delivery{
		To:           "pat@example.com",
		MicroappName: "PTO Request",
		Document:     `{"form":{}}`,
		Dependencies: "✅ CallVu Studio account with import permissions",
		SetupGuide:   "## Setup Guide",
		PitchPoints:  "## Why This Microapp Matters",
		BuildTime:    "2-3 hours (Simple)",
	}
	if err := sender.Send(context.Background(), delivery); err != nil {
		t.Fatalf("Send: %v", err)
	}

	if auth != "Bearer re_test_key" {
		t.Errorf("Authorization = %q", auth)
	}
	if received["subject"] != "Your microapp is ready: PTO Request" {
		t.Errorf("subject = %v", received["subject"])
	}
	text, _ := received["text"].(string)
	for _, want := range []string{`{"form":{}}`, "## Setup Guide", "2-3 hours (Simple)"} {
		if !strings.Contains(text, want) {
			t.Errorf("email body missing %q", want)
		}
	}
}

func TestEventPublisherUnconfigured(t *testing.T) {
	t.Parallel()

	if err := NewEventPublisher(nil).Publish(context.Background(), Event{RequestID: "req_1"}); err != nil {
		t.Fatalf("unconfigured publisher must be a no-op, got %v", err)
	}
}
