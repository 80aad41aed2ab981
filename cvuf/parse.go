package cvuf

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Parse extracts a Document from raw provider output. Recovery order:
// strip any enclosing code fence, attempt a direct parse of the trimmed text,
// then fall back to the first '{' through the last '}' span. Anything that
// still fails, or parses without a root form object, is ErrMalformedDocument.
func Parse(raw string) (*Document, error) {
	text := stripCodeFence(strings.TrimSpace(raw))

	doc, err := parseDocument(text)
	if err == nil {
		return doc, nil
	}

	span, ok := braceSpan(text)
	if !ok {
		return nil, fmt.Errorf("%w: no JSON object found in response", ErrMalformedDocument)
	}
	doc, err = parseDocument(span)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func parseDocument(text string) (*Document, error) {
	var root map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	rawForm, ok := root["form"]
	if !ok {
		return nil, fmt.Errorf("%w: root object has no form key", ErrMalformedDocument)
	}

	var form map[string]any
	if err := json.Unmarshal(rawForm, &form); err != nil {
		return nil, fmt.Errorf("%w: form is not an object: %v", ErrMalformedDocument, err)
	}
	if len(form) == 0 {
		return nil, fmt.Errorf("%w: form object is empty", ErrMalformedDocument)
	}

	return &Document{Form: form}, nil
}

// stripCodeFence removes a single enclosing markdown code fence, with or
// without a language tag.
func stripCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	body := strings.TrimPrefix(text, "```")
	if idx := strings.IndexByte(body, '\n'); idx >= 0 {
		// Drop the fence line itself ("```json" etc).
		body = body[idx+1:]
	}
	body = strings.TrimSpace(body)
	body = strings.TrimSuffix(body, "```")
	return strings.TrimSpace(body)
}

// braceSpan returns the substring from the first '{' to the last '}', which
// recovers a JSON object embedded in prose.
func braceSpan(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}
