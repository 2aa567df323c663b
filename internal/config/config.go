// Package config reads the service settings from the environment, with a
// .env file as an optional source.
package config

import (
	"errors"
	"fmt"
	"time"

	"go-course-portal/internal/form"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env      string
	Port     string
	LogLevel string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	Form      FormConfig
	RateLimit RateLimitConfig
}

type FormConfig struct {
	SubmitLatency   time.Duration
	RedirectDelay   time.Duration
	RedirectTarget  string
	ResetCloseDelay time.Duration
	FailureRate     float64
	ValidationMode  form.Mode
	SessionTTL      time.Duration
}

type RateLimitConfig struct {
	SubmitRPS   float64
	SubmitBurst int
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func defaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "3000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_READ_TIMEOUT", "5s")
	v.SetDefault("HTTP_WRITE_TIMEOUT", "10s")
	v.SetDefault("HTTP_IDLE_TIMEOUT", "60s")
	v.SetDefault("FORM_SUBMIT_LATENCY", "1500ms")
	v.SetDefault("FORM_REDIRECT_DELAY", "2000ms")
	v.SetDefault("FORM_REDIRECT_TARGET", "/")
	v.SetDefault("FORM_RESET_CLOSE_DELAY", "3000ms")
	v.SetDefault("FORM_FAILURE_RATE", 0.0)
	v.SetDefault("FORM_VALIDATION_MODE", "submit")
	v.SetDefault("FORM_SESSION_TTL", "30m")
	v.SetDefault("RATE_LIMIT_SUBMIT_RPS", 2.0)
	v.SetDefault("RATE_LIMIT_SUBMIT_BURST", 5)
}

// Load reads envFiles (missing files are fine) and then the process
// environment, which wins.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		// godotenv never overrides variables that are already set.
		_ = godotenv.Load(f)
	}

	v := viper.New()
	v.AutomaticEnv()
	defaults(v)
	return FromViper(v)
}

func FromViper(v *viper.Viper) (Config, error) {
	mode, err := form.ParseMode(v.GetString("FORM_VALIDATION_MODE"))
	if err != nil {
		return Config{}, fmt.Errorf("FORM_VALIDATION_MODE: %w", err)
	}

	cfg := Config{
		Env:          v.GetString("APP_ENV"),
		Port:         v.GetString("PORT"),
		LogLevel:     v.GetString("LOG_LEVEL"),
		ReadTimeout:  v.GetDuration("HTTP_READ_TIMEOUT"),
		WriteTimeout: v.GetDuration("HTTP_WRITE_TIMEOUT"),
		IdleTimeout:  v.GetDuration("HTTP_IDLE_TIMEOUT"),
		Form: FormConfig{
			SubmitLatency:   v.GetDuration("FORM_SUBMIT_LATENCY"),
			RedirectDelay:   v.GetDuration("FORM_REDIRECT_DELAY"),
			RedirectTarget:  v.GetString("FORM_REDIRECT_TARGET"),
			ResetCloseDelay: v.GetDuration("FORM_RESET_CLOSE_DELAY"),
			FailureRate:     v.GetFloat64("FORM_FAILURE_RATE"),
			ValidationMode:  mode,
			SessionTTL:      v.GetDuration("FORM_SESSION_TTL"),
		},
		RateLimit: RateLimitConfig{
			SubmitRPS:   v.GetFloat64("RATE_LIMIT_SUBMIT_RPS"),
			SubmitBurst: v.GetInt("RATE_LIMIT_SUBMIT_BURST"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Port == "" {
		errs = append(errs, errors.New("PORT must not be empty"))
	}
	if c.Form.SubmitLatency <= 0 {
		errs = append(errs, errors.New("FORM_SUBMIT_LATENCY must be positive"))
	}
	if c.Form.RedirectDelay < 0 {
		errs = append(errs, errors.New("FORM_REDIRECT_DELAY must not be negative"))
	}
	if c.Form.ResetCloseDelay < 0 {
		errs = append(errs, errors.New("FORM_RESET_CLOSE_DELAY must not be negative"))
	}
	if c.Form.RedirectTarget == "" {
		errs = append(errs, errors.New("FORM_REDIRECT_TARGET must not be empty"))
	}
	if c.Form.FailureRate < 0 || c.Form.FailureRate > 1 {
		errs = append(errs, fmt.Errorf("FORM_FAILURE_RATE must be within [0,1], got %v", c.Form.FailureRate))
	}
	if c.Form.SessionTTL <= 0 {
		errs = append(errs, errors.New("FORM_SESSION_TTL must be positive"))
	}
	if c.RateLimit.SubmitRPS < 0 {
		errs = append(errs, errors.New("RATE_LIMIT_SUBMIT_RPS must not be negative"))
	}
	return errors.Join(errs...)
}
