package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Plan generator providers.
const (
	ProviderNone   = "none"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config holds the configuration for the application.
type Config struct {
	Port   string
	AppEnv string

	BackendURL     string
	BackendTimeout time.Duration

	// Empty means the built-in city alias table is used.
	PostgresURL string
	// Empty disables auth on protected routes.
	JWTSecret string

	PlanProvider string
	OpenAIAPIKey string
	OpenAIModel  string
	GeminiAPIKey string
	GeminiModel  string

	CityImageBaseURL   string
	AirlineLogoBaseURL string

	Location    *time.Location
	ScheduleTTL time.Duration
	CORSOrigins []string
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

var defaults = map[string]string{
	"PORT":                  "8080",
	"APP_ENV":               "production",
	"BACKEND_URL":           "http://localhost:8000",
	"BACKEND_TIMEOUT":       "15s",
	"PLAN_PROVIDER":         ProviderNone,
	"OPENAI_MODEL":          "gpt-4o-mini",
	"GEMINI_MODEL":          "gemini-1.5-flash",
	"CITY_IMAGE_BASE_URL":   "/images/cities",
	"AIRLINE_LOGO_BASE_URL": "/images/airlines",
	"TIMEZONE":              "Europe/Istanbul",
	"SCHEDULE_TTL":          "24h",
	"CORS_ORIGINS":          "*",
}

// NewFromEnv creates a new Config object from environment variables. A .env
// file in the working directory is loaded first when present; variables
// already set in the environment take precedence over it.
func NewFromEnv() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	backendTimeout, err := duration(v, "BACKEND_TIMEOUT")
	if err != nil {
		return nil, err
	}
	scheduleTTL, err := duration(v, "SCHEDULE_TTL")
	if err != nil {
		return nil, err
	}

	tz := strings.TrimSpace(v.GetString("TIMEZONE"))
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("TIMEZONE environment variable is invalid: %w", err)
	}

	cfg := &Config{
		Port:               strings.TrimSpace(v.GetString("PORT")),
		AppEnv:             strings.ToLower(strings.TrimSpace(v.GetString("APP_ENV"))),
		BackendURL:         strings.TrimRight(strings.TrimSpace(v.GetString("BACKEND_URL")), "/"),
		BackendTimeout:     backendTimeout,
		PostgresURL:        strings.TrimSpace(v.GetString("POSTGRES_URL")),
		JWTSecret:          v.GetString("JWT_SECRET"),
		PlanProvider:       strings.ToLower(strings.TrimSpace(v.GetString("PLAN_PROVIDER"))),
		OpenAIAPIKey:       v.GetString("OPENAI_API_KEY"),
		OpenAIModel:        v.GetString("OPENAI_MODEL"),
		GeminiAPIKey:       v.GetString("GEMINI_API_KEY"),
		GeminiModel:        v.GetString("GEMINI_MODEL"),
		CityImageBaseURL:   strings.TrimRight(v.GetString("CITY_IMAGE_BASE_URL"), "/"),
		AirlineLogoBaseURL: strings.TrimRight(v.GetString("AIRLINE_LOGO_BASE_URL"), "/"),
		Location:           loc,
		ScheduleTTL:        scheduleTTL,
		CORSOrigins:        splitList(v.GetString("CORS_ORIGINS")),
	}

	switch cfg.PlanProvider {
	case ProviderNone:
	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
		}
	default:
		return nil, fmt.Errorf("PLAN_PROVIDER environment variable is invalid: %q (use none, openai or gemini)", cfg.PlanProvider)
	}

	if cfg.BackendURL == "" {
		return nil, fmt.Errorf("BACKEND_URL environment variable not set")
	}

	return cfg, nil
}

func duration(v *viper.Viper, key string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return 0, fmt.Errorf("%s environment variable is invalid: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s environment variable is invalid: must be positive", key)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
