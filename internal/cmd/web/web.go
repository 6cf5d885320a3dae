// Package web wires configuration into the web front-end server.
package web

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/uamlabs/labfront/internal/platform/config"
	"github.com/uamlabs/labfront/internal/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string        `env:"LABFRONT_HTTP_ADDR" envDefault:"localhost:8080"`
	UserAPIBaseURL      string        `env:"LABFRONT_USER_API_BASE_URL" envDefault:"http://localhost:8081"`
	LabAPIBaseURL       string        `env:"LABFRONT_LAB_API_BASE_URL" envDefault:"http://localhost:8082"`
	SessionSecret       string        `env:"LABFRONT_SESSION_SECRET"`
	SessionTTL          time.Duration `env:"LABFRONT_SESSION_TTL" envDefault:"12h"`
	TrustForwardedProto bool          `env:"LABFRONT_TRUST_FORWARDED_PROTO" envDefault:"false"`
}

// ParseConfig loads the environment defaults and applies flag overrides.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.UserAPIBaseURL, "user-api-base-url", cfg.UserAPIBaseURL, "User directory API base URL")
	fs.StringVar(&cfg.LabAPIBaseURL, "lab-api-base-url", cfg.LabAPIBaseURL, "Lab directory API base URL")
	fs.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "Secret for signing session cookies")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", cfg.SessionTTL, "Session cookie lifetime")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Trust X-Forwarded-Proto when marking cookies Secure")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run starts the web front-end server.
func Run(ctx context.Context, cfg Config) error {
	server, err := web.NewServer(web.Config{
		HTTPAddr:            cfg.HTTPAddr,
		UserAPIBaseURL:      cfg.UserAPIBaseURL,
		LabAPIBaseURL:       cfg.LabAPIBaseURL,
		SessionSecret:       cfg.SessionSecret,
		SessionTTL:          cfg.SessionTTL,
		TrustForwardedProto: cfg.TrustForwardedProto,
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}
