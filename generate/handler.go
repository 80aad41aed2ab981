package generate

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/callvuforge/api/cvuf"
)

// Handler exposes the generation pipeline over HTTP.
type Handler struct {
	Pipeline *Pipeline
}

func NewHandler(pipeline *Pipeline) *Handler {
	return &Handler{Pipeline: pipeline}
}

// Mount registers the generation routes on the given mux.
func (h *Handler) Mount(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/generate", h.handleGenerate)
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if err := decodeJSONObject(r, &raw); err != nil {
		writeAPIError(w, http.StatusBadRequest, "request body must be a JSON object", err.Error())
		return
	}

	result, err := h.Pipeline.Run(r.Context(), raw)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrUpstreamGeneration) || errors.Is(err, cvuf.ErrMalformedDocument) {
			status = http.StatusBadGateway
		}
		writeAPIError(w, status, "Failed to generate microapp", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeAPIError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, map[string]string{"error": message, "details": details})
}

func decodeJSONObject(r *http.Request, dst *map[string]any) error {
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dst); err != nil {
		return err
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}
