package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/callvuforge/api/generate"
	"github.com/callvuforge/api/notify"
	"github.com/callvuforge/api/templates"
)

const maxRequestBodyBytes int64 = 1 << 20 // 1 MiB

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	catalogDir := cfg.TemplateCatalogDir
	if catalogDir == "" {
		catalogDir = templates.DefaultCatalogDir()
	}
	catalog, err := templates.NewCatalog(catalogDir)
	if err != nil {
		log.Fatalf("load template catalog: %v", err)
	}

	pipeline := generate.NewPipeline(catalog, generate.NewAnthropic(cfg.AnthropicAPIKey, cfg.AnthropicModel))
	pipeline.Slack = notify.NewSlackNotifier(cfg.SlackWebhookURL)
	pipeline.Sheets = notify.NewSheetLogger(cfg.SheetWebhookURL)
	pipeline.Email = notify.NewEmailSender(cfg.ResendAPIKey, cfg.EmailFrom)
	if cfg.RedisAddr != "" {
		pipeline.Events = notify.NewEventPublisher(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
	}

	mux := http.NewServeMux()
	generate.NewHandler(pipeline).Mount(mux)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "ok")
	})

	addr := ":" + cfg.Port
	slog.Info("microapp builder API listening", "addr", addr)
	log.Fatal(http.ListenAndServe(addr, applyRequestBodyLimit(mux)))
}

func applyRequestBodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
			r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
		}
		next.ServeHTTP(w, r)
	})
}
