package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds all configuration for the application
type Config struct {
	Port                string
	DatabaseURL         string // MySQL reference data (vendors, contracts, payment ledger); empty = built-in seed data
	Version             string
	LogLevel            string
	OpenAIKey           string
	OpenAIModel         string // Chat model used for extraction and analysis
	OpenAITimeout       int    // OpenAI API timeout in seconds
	KnowledgeBackend    string // "http", "qdrant" or "off"
	KnowledgeAPIURL     string // Base URL of the remote knowledge search API
	KnowledgeAPIKey     string
	KnowledgeMaxResults int // Max results requested per knowledge search
	QdrantHost          string
	QdrantPort          int
	QdrantAPIKey        string
	QdrantCollection    string // Collection holding indexed contract documents
	GmailClientID       string
	GmailClientSecret   string
	GmailRefreshToken   string
	PollIntervalSeconds int // Mailbox poll interval
	MaxMessagesPerPoll  int // Unread messages fetched per cycle
	CasesDir            string
	SendGridAPIKey      string // SendGrid API key for drafted-case notifications
	FinanceEmail        string // Finance team inbox receiving case notifications
	ProcessedTTLHours   int    // How long processed message ids are remembered
}

// Load initializes and returns application configuration
func Load() *Config {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Port:                getEnv("PORT", "8080"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		Version:             getEnv("VERSION", "1.0.0"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		OpenAIKey:           os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:         getEnv("OPENAI_MODEL", "gpt-4o"),
		OpenAITimeout:       getEnvInt("OPENAI_TIMEOUT", 60),
		KnowledgeBackend:    getEnv("KNOWLEDGE_BACKEND", "http"),
		KnowledgeAPIURL:     getEnv("KNOWLEDGE_API_URL", "https://sdk.senso.ai/api/v1"),
		KnowledgeAPIKey:     os.Getenv("KNOWLEDGE_API_KEY"),
		KnowledgeMaxResults: getEnvInt("KNOWLEDGE_MAX_RESULTS", 5),
		QdrantHost:          getEnv("QDRANT_HOST", "localhost"),
		QdrantPort:          getEnvInt("QDRANT_PORT", 6334),
		QdrantAPIKey:        os.Getenv("QDRANT_API_KEY"),
		QdrantCollection:    getEnv("QDRANT_COLLECTION", "contracts"),
		GmailClientID:       os.Getenv("GMAIL_CLIENT_ID"),
		GmailClientSecret:   os.Getenv("GMAIL_CLIENT_SECRET"),
		GmailRefreshToken:   os.Getenv("GMAIL_REFRESH_TOKEN"),
		PollIntervalSeconds: getEnvInt("POLL_INTERVAL_SECONDS", 300),
		MaxMessagesPerPoll:  getEnvInt("MAX_MESSAGES_PER_POLL", 10),
		CasesDir:            getEnv("CASES_DIR", "cases"),
		SendGridAPIKey:      os.Getenv("SENDGRID_API_KEY"),
		FinanceEmail:        getEnv("FINANCE_EMAIL", "finance@company.com"),
		ProcessedTTLHours:   getEnvInt("PROCESSED_TTL_HOURS", 72),
	}

	return config
}

// HasGmailCredentials reports whether the Gmail OAuth credentials are fully configured
func (c *Config) HasGmailCredentials() bool {
	return c.GmailClientID != "" && c.GmailClientSecret != "" && c.GmailRefreshToken != ""
}

// getEnv gets an environment variable with a default fallback
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as integer with a default fallback
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// SetupLogger configures zerolog with JSON output and single-line format
func (c *Config) SetupLogger() zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	logger := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", "vdms").
		Str("version", c.Version).
		Logger()

	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger = logger.Level(level)

	return logger
}
