package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers for the remote document endpoint.
const (
	StoreDriverFile     = "file"
	StoreDriverPostgres = "postgres"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Remote document store as seen by the backend
	RemoteStoreURL string
	RemoteTimeout  time.Duration // 0 keeps the transport default

	// Local cache slot
	CacheDir string

	// Remote document endpoint (khata_store)
	StorePort     string
	StoreDriver   string
	StoreFile     string
	DatabaseURL   string
	EnableDBCheck bool

	DefaultShopName    string
	Location           *time.Location
	RateLimit          string
	CORSAllowedOrigins []string
	NoticeCapacity     int

	// Scheduled backups; empty schedule disables them
	BackupSchedule string
	BackupDir      string

	// Usage analytics; empty key disables it
	PosthogAPIKey   string
	PosthogEndpoint string
	InstanceID      string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("REMOTE_STORE_URL", "http://localhost:8081/api/document")
	viper.SetDefault("REMOTE_TIMEOUT", "0s")
	viper.SetDefault("CACHE_DIR", "./data/cache")
	viper.SetDefault("STORE_PORT", "8081")
	viper.SetDefault("STORE_DRIVER", StoreDriverFile)
	viper.SetDefault("STORE_FILE", "./data/data.json")
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("DEFAULT_SHOP_NAME", "Mero Digital Pasal")
	viper.SetDefault("TIMEZONE", "Local")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("NOTICE_CAPACITY", 50)
	viper.SetDefault("BACKUP_SCHEDULE", "")
	viper.SetDefault("BACKUP_DIR", "./data/backups")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
	viper.SetDefault("INSTANCE_ID", "mero-khata")

	// Values from the .env file are already in the environment; real environment variables win.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.RemoteStoreURL = viper.GetString("REMOTE_STORE_URL")
	if cfg.RemoteStoreURL == "" {
		log.Println("Warning: REMOTE_STORE_URL not set. The backend will work from the local cache only.")
	}

	remoteTimeoutStr := viper.GetString("REMOTE_TIMEOUT")
	remoteTimeout, err := time.ParseDuration(remoteTimeoutStr)
	if err != nil || remoteTimeout < 0 {
		remoteTimeout = 0
		log.Printf("Warning: Invalid value for REMOTE_TIMEOUT ('%s'). Using the transport default.\n", remoteTimeoutStr)
	}
	cfg.RemoteTimeout = remoteTimeout

	cfg.CacheDir = viper.GetString("CACHE_DIR")

	cfg.StorePort = viper.GetString("STORE_PORT")
	cfg.StoreDriver = strings.ToLower(viper.GetString("STORE_DRIVER"))
	if cfg.StoreDriver != StoreDriverFile && cfg.StoreDriver != StoreDriverPostgres {
		log.Printf("Warning: Unknown STORE_DRIVER ('%s'). Defaulting to %s.\n", cfg.StoreDriver, StoreDriverFile)
		cfg.StoreDriver = StoreDriverFile
	}
	cfg.StoreFile = viper.GetString("STORE_FILE")
	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.StoreDriver == StoreDriverPostgres && cfg.DatabaseURL == "" {
		log.Println("Warning: STORE_DRIVER is postgres but PGSQL_URL environment variable not set.")
	}
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.DefaultShopName = strings.TrimSpace(viper.GetString("DEFAULT_SHOP_NAME"))
	if cfg.DefaultShopName == "" {
		cfg.DefaultShopName = "Mero Digital Pasal"
	}

	tz := viper.GetString("TIMEZONE")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("Warning: Invalid value for TIMEZONE ('%s'). Defaulting to Local.\n", tz)
		loc = time.Local
	}
	cfg.Location = loc

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	cfg.NoticeCapacity = viper.GetInt("NOTICE_CAPACITY")
	if cfg.NoticeCapacity <= 0 {
		cfg.NoticeCapacity = 50
	}

	cfg.BackupSchedule = strings.TrimSpace(viper.GetString("BACKUP_SCHEDULE"))
	cfg.BackupDir = viper.GetString("BACKUP_DIR")

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = viper.GetString("POSTHOG_ENDPOINT")
	cfg.InstanceID = viper.GetString("INSTANCE_ID")

	return cfg, nil
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
