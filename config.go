package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config collects every collaborator credential and server setting. Each
// credential is optional: an absent value turns the matching collaborator
// into a silent no-op.
type Config struct {
	Port               string `toml:"port"`
	AnthropicAPIKey    string `toml:"anthropic_api_key"`
	AnthropicModel     string `toml:"anthropic_model"`
	SlackWebhookURL    string `toml:"slack_webhook_url"`
	SheetWebhookURL    string `toml:"sheet_webhook_url"`
	ResendAPIKey       string `toml:"resend_api_key"`
	EmailFrom          string `toml:"email_from"`
	RedisAddr          string `toml:"redis_addr"`
	TemplateCatalogDir string `toml:"template_catalog_dir"`
}

// LoadConfig reads the optional TOML file named by BUILDER_CONFIG, then
// overlays environment variables on top. Environment always wins.
func LoadConfig() (Config, error) {
	cfg := Config{Port: "8080"}

	if path := strings.TrimSpace(os.Getenv("BUILDER_CONFIG")); path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return Config{}, fmt.Errorf("config file %s does not exist", path)
			}
			return Config{}, fmt.Errorf("decode config %s: %w", path, err)
		}
	}

	overlay(&cfg.Port, "PORT")
	overlay(&cfg.AnthropicAPIKey, "ANTHROPIC_API_KEY")
	overlay(&cfg.AnthropicModel, "ANTHROPIC_MODEL")
	overlay(&cfg.SlackWebhookURL, "SLACK_WEBHOOK_URL")
	overlay(&cfg.SheetWebhookURL, "GOOGLE_SHEET_WEBHOOK")
	overlay(&cfg.ResendAPIKey, "RESEND_API_KEY")
	overlay(&cfg.EmailFrom, "EMAIL_FROM")
	overlay(&cfg.RedisAddr, "REDIS_ADDR")
	overlay(&cfg.TemplateCatalogDir, "TEMPLATE_CATALOG_DIR")

	return cfg, nil
}

func overlay(dst *string, env string) {
	if value := strings.TrimSpace(os.Getenv(env)); value != "" {
		*dst = value
	}
}
