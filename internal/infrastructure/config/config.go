package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string
	LogLevel   string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// MongoDB (booking slot store)
	MongoURI      string
	MongoDB       string
	MongoUser     string
	MongoPassword string

	// PostgreSQL (booking archive)
	PostgresURI string

	// ARC Pay gateway
	ArcPayBaseURL    string
	ArcPayMerchantID string
	ArcPayUsername   string
	ArcPayPassword   string
	ArcPayTimeout    time.Duration

	// Inventory service (hotel and package confirmations)
	InventoryBaseURL string
	InventoryToken   string

	// Gmail confirmation mailer
	GmailClientID     string
	GmailClientSecret string
	GmailRefreshToken string
	GmailFrom         string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		MongoURI:      getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "jetsetter"),
		MongoUser:     getEnv("MONGO_USER", ""),
		MongoPassword: getEnv("MONGO_PASSWORD", ""),

		PostgresURI: getEnv("POSTGRES_DSN", "host=localhost user=jetsetter dbname=jetsetter port=5432 sslmode=disable"),

		ArcPayBaseURL:    getEnv("ARC_PAY_API_URL", "https://api.arcpay.travel/api/rest/version/100/merchant/TESTARC05511704"),
		ArcPayMerchantID: getEnv("ARC_PAY_MERCHANT_ID", "TESTARC05511704"),
		ArcPayUsername:   getEnv("ARC_PAY_API_USERNAME", ""),
		ArcPayPassword:   getEnv("ARC_PAY_API_PASSWORD", ""),
		ArcPayTimeout:    time.Duration(getEnvAsInt("ARC_PAY_TIMEOUT", 30)) * time.Second,

		InventoryBaseURL: getEnv("INVENTORY_API_URL", ""),
		InventoryToken:   getEnv("INVENTORY_TOKEN", ""),

		GmailClientID:     getEnv("GMAIL_CLIENT_ID", ""),
		GmailClientSecret: getEnv("GMAIL_CLIENT_SECRET", ""),
		GmailRefreshToken: getEnv("GMAIL_REFRESH_TOKEN", ""),
		GmailFrom:         getEnv("GMAIL_FROM", "bookings@jetsetterss.com"),
	}

	return config, nil
}

// MailerEnabled reports whether the Gmail credentials are configured.
func (c *Config) MailerEnabled() bool {
	return c.GmailClientID != "" && c.GmailClientSecret != "" && c.GmailRefreshToken != ""
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
