package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/tibino/marta/reservation"
)

// Config holds all server configuration
type Config struct {
	Port            int
	WSPort          int    // Port for the WebSocket server (used when ServerType is "both")
	ServerType      string // "http", "websocket", or "both"
	RedisURL        string
	RedisPassword   string
	SessionTTL      time.Duration
	MaxCapacity     int    // Maximum number of people seated at any given time
	DefaultLanguage string // Language used when detection fails
	AllowedOrigins  []string

	Hours        reservation.OpeningHours
	LunchCutoff  reservation.Cutoff // Last acceptable lunch reservation time
	DinnerCutoff reservation.Cutoff // Last acceptable dinner reservation time
}

// LoadConfig loads configuration from environment variables with defaults
func LoadConfig() (*Config, error) {
	// Load .env file if it exists (doesn't error if missing)
	_ = godotenv.Load()

	config := &Config{
		Port:            8080,
		WSPort:          8081,
		ServerType:      "http",
		RedisURL:        "localhost:6379",
		RedisPassword:   "",
		SessionTTL:      time.Hour,
		MaxCapacity:     20,
		DefaultLanguage: "en",
		AllowedOrigins:  []string{"*"},
		Hours:           reservation.DefaultOpeningHours(),
		LunchCutoff:     reservation.Cutoff{Hour: 14, Minute: 30},
		DinnerCutoff:    reservation.Cutoff{Hour: 21, Minute: 30},
	}

	// Optional: PORT
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %w", err)
		}
		config.Port = p
	}

	// Optional: WS_PORT (used when SERVER_TYPE is "both")
	if wsPort := os.Getenv("WS_PORT"); wsPort != "" {
		p, err := strconv.Atoi(wsPort)
		if err != nil {
			return nil, fmt.Errorf("invalid WS_PORT: %w", err)
		}
		config.WSPort = p
	}

	// Optional: SERVER_TYPE ("http", "websocket", or "both")
	if serverType := os.Getenv("SERVER_TYPE"); serverType != "" {
		switch serverType {
		case "http", "websocket", "both":
			config.ServerType = serverType
		default:
			return nil, fmt.Errorf("invalid SERVER_TYPE: must be 'http', 'websocket', or 'both'")
		}
	}

	// Optional: REDIS_URL
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		config.RedisURL = redisURL
	}

	// Optional: REDIS_PASSWORD
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.RedisPassword = redisPassword
	}

	// Optional: SESSION_TTL (in seconds)
	if ttl := os.Getenv("SESSION_TTL"); ttl != "" {
		t, err := strconv.Atoi(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
		}
		config.SessionTTL = time.Duration(t) * time.Second
	}

	// Optional: MAX_CAPACITY
	if capacity := os.Getenv("MAX_CAPACITY"); capacity != "" {
		c, err := strconv.Atoi(capacity)
		if err != nil {
			return nil, fmt.Errorf("invalid MAX_CAPACITY: %w", err)
		}
		if c <= 0 {
			return nil, fmt.Errorf("invalid MAX_CAPACITY: must be positive")
		}
		config.MaxCapacity = c
	}

	// Optional: DEFAULT_LANGUAGE
	if lang := os.Getenv("DEFAULT_LANGUAGE"); lang != "" {
		config.DefaultLanguage = strings.ToLower(lang)
	}

	// Optional: ALLOWED_ORIGINS (comma-separated)
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		config.AllowedOrigins = strings.Split(origins, ",")
	}

	return config, nil
}
