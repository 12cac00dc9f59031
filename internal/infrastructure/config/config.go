// internal/infrastructure/config/config.go
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage drivers
const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion       string
	LogLevel         string
	MetricsNamespace string
	AdminPassword    string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Storage
	StorageDriver   string
	StorageFileDir  string
	StorageQuota    int64
	QuotaRetryKeys  []string
	MongoURI        string
	MongoDB         string
	MongoUser       string
	MongoPassword   string
	MongoCollection string
	PostgresURI     string

	// Gmail
	GmailClientID     string
	GmailClientSecret string
	GmailRefreshToken string
	GmailSender       string

	// WhatsApp
	WhatsAppServiceURL string
	WhatsAppToken      string
	WhatsAppCompanyID  string
	WhatsAppAgentID    string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		AppVersion:       getEnv("APP_VERSION", "1.0.0"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		MetricsNamespace: getEnv("METRICS_NAMESPACE", "voyagebj"),
		AdminPassword:    getEnv("ADMIN_PASSWORD", "VoyageBj@25benin"),

		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		StorageDriver:   getEnv("STORAGE_DRIVER", DriverMemory),
		StorageFileDir:  getEnv("STORAGE_FILE_DIR", "./data"),
		StorageQuota:    int64(getEnvAsInt("STORAGE_QUOTA_BYTES", 5*1024*1024)),
		QuotaRetryKeys:  getEnvAsList("STORAGE_QUOTA_RETRY_KEYS", []string{"vb_users"}),
		MongoURI:        getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:         getEnv("MONGO_DB", "voyagebj"),
		MongoUser:       getEnv("MONGO_USER", ""),
		MongoPassword:   getEnv("MONGO_PASSWORD", ""),
		MongoCollection: getEnv("MONGO_COLLECTION", "kv_store"),
		PostgresURI:     getEnv("POSTGRES_DSN", ""),

		GmailClientID:     getEnv("GMAIL_CLIENT_ID", ""),
		GmailClientSecret: getEnv("GMAIL_CLIENT_SECRET", ""),
		GmailRefreshToken: getEnv("GMAIL_REFRESH_TOKEN", ""),
		GmailSender:       getEnv("GMAIL_SENDER", "me"),

		WhatsAppServiceURL: getEnv("WHATSAPP_SERVICE_URL", ""),
		WhatsAppToken:      getEnv("WHATSAPP_TOKEN", ""),
		WhatsAppCompanyID:  getEnv("WHATSAPP_COMPANY_ID", ""),
		WhatsAppAgentID:    getEnv("WHATSAPP_AGENT_ID", ""),
	}

	return config, nil
}

// GmailEnabled reports whether Gmail credentials are configured
func (c *Config) GmailEnabled() bool {
	return c.GmailClientID != "" && c.GmailClientSecret != "" && c.GmailRefreshToken != ""
}

// WhatsAppEnabled reports whether the WhatsApp service is configured
func (c *Config) WhatsAppEnabled() bool {
	return c.WhatsAppServiceURL != "" && c.WhatsAppToken != ""
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

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	var values []string
	for _, v := range strings.Split(valueStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}
