package config

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port    int    `env:"PORT" envDefault:"4000"`
	GinMode string `env:"GIN_MODE" envDefault:"debug"`
	// Logging
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile       string `env:"LOG_FILE"` // Empty means stdout only
	LogMaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" envDefault:"10"`
	LogMaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"3"`
	LogMaxAgeDays int    `env:"LOG_MAX_AGE_DAYS" envDefault:"28"`
	// SMTP Configuration (Gmail app password over STARTTLS)
	SMTPHost       string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort       int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername   string `env:"GMAIL_USER"`
	SMTPPassword   string `env:"GMAIL_APP_PASS"`
	ContactEmailTo string `env:"MAIL_TO"`
	SubjectPrefix  string `env:"MAIL_SUBJECT_PREFIX" envDefault:"Portfolio Contact: "`
	// Gateway
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,https://my-portfolio-bd3e.onrender.com"`
	MaxBodyBytes   int64    `env:"MAX_BODY_BYTES" envDefault:"102400"`
}

// LoadConfig reads an optional .env file, then the process environment.
func LoadConfig() (*Config, error) {
	// Only present locally; in production the variables come from the platform.
	_ = godotenv.Load()

	return parse(env.Options{})
}

// FromEnvironment builds a Config from an explicit variable map instead of
// the process environment.
func FromEnvironment(environ map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	origins := make([]string, 0, len(cfg.AllowedOrigins))
	for _, origin := range cfg.AllowedOrigins {
		// Trailing slashes never appear in an Origin header
		origin = strings.TrimRight(strings.TrimSpace(origin), "/")
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	cfg.AllowedOrigins = origins
	cfg.ContactEmailTo = strings.TrimSpace(cfg.ContactEmailTo)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the invariants the rest of the process relies on.
func (c *Config) Validate() error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("GIN_MODE must be debug, release or test, got %q", c.GinMode))
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be debug, info, warn or error, got %q", c.LogLevel))
	}
	if strings.TrimSpace(c.SMTPHost) == "" {
		errs = append(errs, errors.New("SMTP_HOST must not be empty"))
	}
	if c.SMTPPort < 1 || c.SMTPPort > 65535 {
		errs = append(errs, fmt.Errorf("SMTP_PORT must be between 1 and 65535, got %d", c.SMTPPort))
	}
	if c.ContactEmailTo == "" {
		errs = append(errs, errors.New("MAIL_TO is required"))
	} else if _, err := mail.ParseAddress(c.ContactEmailTo); err != nil {
		errs = append(errs, fmt.Errorf("MAIL_TO is not a valid address: %w", err))
	}
	if len(c.AllowedOrigins) == 0 {
		errs = append(errs, errors.New("CORS_ALLOWED_ORIGINS must list at least one origin"))
	}
	if c.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("MAX_BODY_BYTES must be positive, got %d", c.MaxBodyBytes))
	}

	return errors.Join(errs...)
}

// HasSMTPCredentials reports whether both Gmail credentials are set.
func (c *Config) HasSMTPCredentials() bool {
	return c.SMTPUsername != "" && c.SMTPPassword != ""
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
