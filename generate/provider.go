// Package generate sequences one microapp build: normalize the intake, score
// it against the template catalog, prompt the generative provider, recover a
// valid CVUF document from its output, derive the companion artifacts, and
// dispatch the best-effort notifications.
package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrUpstreamGeneration marks a failed generative call: network, quota, or a
// provider-side error. It aborts the whole request.
var ErrUpstreamGeneration = errors.New("upstream generation failed")

// Generator produces a raw candidate document body for a system/user prompt
// pair.
type Generator interface {
	Generate(ctx context.Context, system, userPrompt string) (string, error)
}

const (
	anthropicAPIURL  = "https://api.anthropic.com/v1/messages"
	anthropicVersion = "2023-06-01"
	defaultModel     = "claude-sonnet-4-20250514"
	maxTokens        = 16000
)

// retryBackoffs bounds the retry policy around the generative call: transport
// errors, 429 and 5xx responses retry after each backoff, everything else
// fails fast.
var retryBackoffs = []time.Duration{500 * time.Millisecond, 2 * time.Second, 5 * time.Second}

// Anthropic calls the Anthropic Messages API over plain HTTP.
type Anthropic struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewAnthropic(apiKey, model string) *Anthropic {
	if strings.TrimSpace(model) == "" {
		model = defaultModel
	}
	return &Anthropic{
		apiKey:  strings.TrimSpace(apiKey),
		model:   model,
		baseURL: anthropicAPIURL,
		client:  &http.Client{Timeout: 120 * time.Second},
	}
}

// Generate sends one messages request and returns the text of the first
// content block. Retryable failures are retried with bounded backoff; the
// context caps the whole call including retries.
func (a *Anthropic) Generate(ctx context.Context, system, userPrompt string) (string, error) {
	if a.apiKey == "" {
		return "", fmt.Errorf("%w: ANTHROPIC_API_KEY is not configured", ErrUpstreamGeneration)
	}

	body, err := json.Marshal(map[string]any{
		"model":      a.model,
		"max_tokens": maxTokens,
		"system":     system,
		"messages": []map[string]string{
			{"role": "user", "content": userPrompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: marshal request: %v", ErrUpstreamGeneration, err)
	}

	var lastErr error
	for attempt := 0; ; attempt++ {
		text, retryable, err := a.callOnce(ctx, body)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if !retryable || attempt >= len(retryBackoffs) {
			break
		}
		select {
		case <-time.After(retryBackoffs[attempt]):
		case <-ctx.Done():
			return "", fmt.Errorf("%w: %v", ErrUpstreamGeneration, ctx.Err())
		}
	}
	return "", lastErr
}

func (a *Anthropic) callOnce(ctx context.Context, body []byte) (text string, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", false, fmt.Errorf("%w: build request: %v", ErrUpstreamGeneration, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", a.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := a.client.Do(req)
	if err != nil {
		return "", true, fmt.Errorf("%w: %v", ErrUpstreamGeneration, err)
	}
	defer resp.Body.Close()
	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 400 {
		retryable := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
		return "", retryable, fmt.Errorf("%w: provider returned %d: %s", ErrUpstreamGeneration, resp.StatusCode, truncate(string(respBody), 512))
	}

	var parsed struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", false, fmt.Errorf("%w: decode response: %v", ErrUpstreamGeneration, err)
	}
	for _, block := range parsed.Content {
		if block.Type == "text" {
			return block.Text, false, nil
		}
	}
	return "", false, fmt.Errorf("%w: response carries no text content", ErrUpstreamGeneration)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
