package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds the environment driven configuration for the concierge
// service. Provider credentials are optional: a missing key degrades the
// feature gracefully instead of failing startup.
type Config struct {
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"concierge-api"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort        int           `env:"HTTP_PORT" envDefault:"8084"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	EnableTracing   bool          `env:"ENABLE_TRACING" envDefault:"false"`
	OTLPEndpoint    string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	ChatAPIURL      string        `env:"CHAT_API_URL" envDefault:"https://api.groq.com/openai"`
	ChatAPIKey      string        `env:"GROQ_API_KEY"`
	ChatModel       string        `env:"CHAT_MODEL" envDefault:"llama-3.1-8b-instant"`
	ChatTurnTimeout time.Duration `env:"CHAT_TURN_TIMEOUT" envDefault:"60s"`
	MaxToolRounds   int           `env:"MAX_TOOL_ROUNDS" envDefault:"5"`

	ImageAPIURL string `env:"IMAGE_API_URL" envDefault:"https://api.together.xyz"`
	ImageAPIKey string `env:"TOGETHER_API_KEY"`
	ImageModel  string `env:"IMAGE_MODEL" envDefault:"black-forest-labs/FLUX.1-dev"`

	RealtimeAPIURL string `env:"REALTIME_API_URL" envDefault:"wss://api.openai.com/v1/realtime"`
	RealtimeAPIKey string `env:"REALTIME_API_KEY"`
	RealtimeModel  string `env:"REALTIME_MODEL" envDefault:"gpt-4o-realtime-preview"`
	RealtimeVoice  string `env:"REALTIME_VOICE" envDefault:"alloy"`

	WarmupWorkers int  `env:"WARMUP_WORKERS" envDefault:"2"`
	WarmupOnBoot  bool `env:"WARMUP_ON_BOOT" envDefault:"true"`
}

// Load parses environment variables into Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	if cfg.MaxToolRounds <= 0 {
		cfg.MaxToolRounds = 5
	}
	if cfg.ChatTurnTimeout < 0 {
		cfg.ChatTurnTimeout = 0
	}
	if cfg.WarmupWorkers <= 0 {
		cfg.WarmupWorkers = 2
	}

	return cfg, nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// ChatEnabled reports whether the chat provider is usable.
func (c *Config) ChatEnabled() bool {
	return strings.TrimSpace(c.ChatAPIKey) != ""
}

// ImageGenEnabled reports whether remote image generation is usable.
func (c *Config) ImageGenEnabled() bool {
	return strings.TrimSpace(c.ImageAPIKey) != ""
}

// VoiceEnabled reports whether the realtime voice provider is usable.
func (c *Config) VoiceEnabled() bool {
	return strings.TrimSpace(c.RealtimeAPIKey) != ""
}
