package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates every subsystem's settings.
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Auth    AuthConfig
	Chat    ChatConfig
	Weather WeatherConfig
	Seeds   SeedConfig
	Logging LoggingConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	auth, err := loadAuthConfig()
	if err != nil {
		return nil, err
	}

	chat, err := loadChatConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server: server,
		Storage: StorageConfig{
			Backend: getEnvOrDefault("STORAGE_BACKEND", "file"),
			Path:    getEnvOrDefault("STORAGE_PATH", "./data"),
		},
		Auth: auth,
		Chat: chat,
		Weather: WeatherConfig{
			APIKey:       strings.TrimSpace(os.Getenv("WEATHER_API_KEY")),
			BaseURL:      getEnvOrDefault("WEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5/weather"),
			DefaultCity:  getEnvOrDefault("WEATHER_DEFAULT_CITY", "Mumbai"),
			FallbackCity: getEnvOrDefault("WEATHER_FALLBACK_CITY", "Delhi"),
		},
		Seeds: SeedConfig{
			TherapistFile: strings.TrimSpace(os.Getenv("THERAPIST_SEED_FILE")),
			EmergencyFile: strings.TrimSpace(os.Getenv("EMERGENCY_SEED_FILE")),
		},
		Logging: LoggingConfig{
			Dir: getEnvOrDefault("LOG_DIR", "./logs"),
			Dev: strings.EqualFold(getEnvOrDefault("APP_ENV", "development"), "development"),
		},
	}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Accept ":8080" or "127.0.0.1:8080" as-is.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// StorageConfig selects the key-value backend.
type StorageConfig struct {
	Backend string // file or sqlite
	Path    string // data directory, or sqlite database file
}

// AuthConfig covers the mocked auth contract and token signing.
type AuthConfig struct {
	JWTSecret    string
	TokenTTL     time.Duration
	DemoEmail    string
	DemoPassword string
}

func loadAuthConfig() (AuthConfig, error) {
	ttlHours := 24
	if override, err := parseOptionalIntEnv("AUTH_TOKEN_TTL_HOURS"); err != nil {
		return AuthConfig{}, err
	} else if override != nil && *override > 0 {
		ttlHours = *override
	}

	return AuthConfig{
		JWTSecret:    getEnvOrDefault("JWT_SECRET", "mindcare-dev-secret"),
		TokenTTL:     time.Duration(ttlHours) * time.Hour,
		DemoEmail:    getEnvOrDefault("DEMO_EMAIL", "student@gmail.com"),
		DemoPassword: getEnvOrDefault("DEMO_PASSWORD", "mindcare2024"),
	}, nil
}

// ChatConfig tunes the simulated assistant-thinking delay.
type ChatConfig struct {
	ReplyDelayMin time.Duration
	ReplyDelayMax time.Duration
}

func loadChatConfig() (ChatConfig, error) {
	minMS := 2000
	if override, err := parseOptionalIntEnv("CHAT_REPLY_DELAY_MIN_MS"); err != nil {
		return ChatConfig{}, err
	} else if override != nil && *override >= 0 {
		minMS = *override
	}

	maxMS := 3000
	if override, err := parseOptionalIntEnv("CHAT_REPLY_DELAY_MAX_MS"); err != nil {
		return ChatConfig{}, err
	} else if override != nil && *override >= 0 {
		maxMS = *override
	}

	if maxMS < minMS {
		return ChatConfig{}, fmt.Errorf("CHAT_REPLY_DELAY_MAX_MS %d is below CHAT_REPLY_DELAY_MIN_MS %d", maxMS, minMS)
	}

	return ChatConfig{
		ReplyDelayMin: time.Duration(minMS) * time.Millisecond,
		ReplyDelayMax: time.Duration(maxMS) * time.Millisecond,
	}, nil
}

// WeatherConfig configures the peripheral weather widget lookup.
type WeatherConfig struct {
	APIKey       string
	BaseURL      string
	DefaultCity  string
	FallbackCity string
}

// Enabled reports whether an API key was provided.
func (c WeatherConfig) Enabled() bool {
	return c.APIKey != ""
}

// SeedConfig points at optional YAML overrides for static directories.
type SeedConfig struct {
	TherapistFile string
	EmergencyFile string
}

// LoggingConfig locates log output.
type LoggingConfig struct {
	Dir string
	Dev bool
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
