package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Credential is one configured login. Passwords are hashed when the auth
// service starts and never kept in plain text afterwards.
type Credential struct {
	Username string
	Password string
	Role     string
}

// Config holds application configuration
type Config struct {
	// Server
	Port            string
	Env             string
	ShutdownTimeout time.Duration

	// Auth
	JWTSecret        string
	JWTExpirationDur time.Duration
	Users            []Credential

	// Persistence
	KVBackend           string // "memory" or "database"
	DBDriver            string // "sqlite" or "postgres"
	DBPath              string
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBSSLMode           string
	PersistTransactions bool

	// Analytics memoization
	AnalyticsCacheSize int
	AnalyticsCacheTTL  time.Duration

	// Change events
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		JWTSecret: getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),

		KVBackend:  getEnv("KV_BACKEND", "database"),
		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBPath:     getEnv("DB_PATH", "data/planner.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "planner"),
		DBPassword: getEnv("DB_PASSWORD", "planner"),
		DBName:     getEnv("DB_NAME", "planner"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "planner"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "planner.changes"),
	}

	config.JWTExpirationDur = getDuration("JWT_EXPIRES_IN", 24*time.Hour)
	config.ShutdownTimeout = getDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	config.AnalyticsCacheTTL = getDuration("ANALYTICS_CACHE_TTL", 5*time.Minute)

	size, err := strconv.Atoi(getEnv("ANALYTICS_CACHE_SIZE", "256"))
	if err != nil || size <= 0 {
		return nil, fmt.Errorf("invalid ANALYTICS_CACHE_SIZE: must be a positive integer")
	}
	config.AnalyticsCacheSize = size

	persist, err := strconv.ParseBool(getEnv("PERSIST_TRANSACTIONS", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid PERSIST_TRANSACTIONS: %w", err)
	}
	config.PersistTransactions = persist

	users, err := parseUsers(getEnv("AUTH_USERS", "admin:admin123:admin,user:user123:user"))
	if err != nil {
		return nil, err
	}
	config.Users = users

	switch config.KVBackend {
	case "memory", "database":
	default:
		return nil, fmt.Errorf("invalid KV_BACKEND %q: use memory or database", config.KVBackend)
	}
	switch config.DBDriver {
	case "sqlite", "postgres":
	default:
		return nil, fmt.Errorf("invalid DB_DRIVER %q: use sqlite or postgres", config.DBDriver)
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// parseUsers parses "name:password:role" entries separated by commas.
func parseUsers(raw string) ([]Credential, error) {
	var users []Credential
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, ":", 3)
		if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("invalid AUTH_USERS entry %q: want name:password:role", entry)
		}
		role := parts[2]
		if role != "admin" && role != "user" {
			return nil, fmt.Errorf("invalid role %q for user %s", role, parts[0])
		}
		users = append(users, Credential{Username: parts[0], Password: parts[1], Role: role})
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("AUTH_USERS must define at least one user")
	}
	return users, nil
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %s\n", key, raw, fallback)
		return fallback
	}
	return d
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
