package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer         string // Optional: issuer claim for session tokens (default: clubgate)
	BootstrapToken string // Optional: token required to perform bootstrap; empty disables it

	BaseURL        string        // Required in practice: public origin for registration links
	InviteTTL      time.Duration // Optional: invitation link lifetime (default: 168h)
	SessionTTL     time.Duration // Optional: session token lifetime (default: 1h)
	SigningKeyFile string        // Optional: PKCS8 PEM Ed25519 key; empty generates an ephemeral key
	DatabaseFile   string        // Optional: path to SQLite database file (default: ./club.db)
	PepperFile     string        // Optional: path to the password hashing pepper file (default: ./pepper)

	SMTPHost     string // Optional: SMTP relay host; empty falls back to the log mailer
	SMTPPort     int    // Optional: SMTP relay port (default: 587)
	SMTPUsername string // Optional: SMTP auth username
	SMTPPassword string // Optional: SMTP auth password
	SMTPFrom     string // Optional: From address for invitation emails

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		Issuer:         getEnvOrDefault("CLUB_ISSUER", "clubgate"),
		BootstrapToken: os.Getenv("BOOTSTRAP_TOKEN"),

		BaseURL:        getEnvOrDefault("CLUB_BASE_URL", "http://localhost:8080"),
		InviteTTL:      getEnvDurationOrDefault("CLUB_INVITE_TTL", 168*time.Hour),
		SessionTTL:     getEnvDurationOrDefault("CLUB_SESSION_TTL", time.Hour),
		SigningKeyFile: os.Getenv("CLUB_SIGNING_KEY_FILE"),
		DatabaseFile:   getEnvOrDefault("CLUB_DATABASE_FILE", "club.db"),
		PepperFile:     getEnvOrDefault("CLUB_PEPPER_FILE", "pepper"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getEnvIntOrDefault("SMTP_PORT", 587),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:     getEnvOrDefault("SMTP_FROM", "noreply@marlinswim.club"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
