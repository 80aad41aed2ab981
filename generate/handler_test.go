package generate

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/callvuforge/api/templates"
)

func newTestServer(t *testing.T, gen Generator) *httptest.Server {
	t.Helper()
	catalog, err := templates.NewCatalog("")
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	mux := http.NewServeMux()
	NewHandler(NewPipeline(catalog, gen)).Mount(mux)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestHandleGenerateSuccess(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, &stubGenerator{output: validOutput})

	body := `{"microappName":"PTO Request","microappDescription":"vacation tracking","owningDepartment":"HR"}`
	resp, err := http.Post(server.URL+"/api/generate", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.GeneratedCVUF == "" || result.GeneratedBuildTime == "" {
		t.Fatalf("incomplete result: %+v", result)
	}
	if result.Meta.RequestID == "" {
		t.Fatal("missing request id")
	}
}

func TestHandleGenerateRejectsBadBody(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, &stubGenerator{output: validOutput})

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "microappName=PTO"},
		{name: "json array", body: `[1,2,3]`},
		{name: "trailing garbage", body: `{"microappName":"x"} extra`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			resp, err := http.Post(server.URL+"/api/generate", "application/json", strings.NewReader(tt.body))
			if err != nil {
				t.Fatalf("POST: %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
}

func TestHandleGenerateUpstreamFailure(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, &stubGenerator{err: ErrUpstreamGeneration})

	resp, err := http.Post(server.URL+"/api/generate", "application/json", strings.NewReader(`{"microappName":"x"}`))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", resp.StatusCode)
	}

	var payload map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if payload["error"] != "Failed to generate microapp" {
		t.Errorf("error = %q", payload["error"])
	}
	if payload["details"] == "" {
		t.Error("missing error details")
	}
}

func TestHandleGenerateMalformedDocument(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, &stubGenerator{output: "no json here"})

	resp, err := http.Post(server.URL+"/api/generate", "application/json", strings.NewReader(`{"microappName":"x"}`))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", resp.StatusCode)
	}
}

func TestMountOnlyAcceptsPost(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, &stubGenerator{output: validOutput})

	resp, err := http.Get(server.URL + "/api/generate")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", resp.StatusCode)
	}
}
