package config

import (
	"os"
	"strconv"
	"time"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Prefix    string
	UseSSL    bool
}

// RedisConfig holds connection settings for the Redis store backend.
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// StoreConfig selects and configures the key-value store backend.
type StoreConfig struct {
	// Driver is one of "minio", "postgres", "redis" or "memory".
	Driver   string
	Database DatabaseConfig
	MinIO    MinIOConfig
	Redis    RedisConfig
}

// CalendarConfig holds settings for the calendar feed cache.
type CalendarConfig struct {
	FeedURL  string
	TTL      time.Duration
	Timezone string
}

// MonitorConfig holds settings for the uptime sweep.
type MonitorConfig struct {
	MinInterval  time.Duration
	ProbeTimeout time.Duration
	// CronSpec enables the in-process sweep schedule when non-empty.
	CronSpec string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables once at startup and passed down explicitly.
type AppConfig struct {
	Env        string
	Port       string
	LogLevel   string
	AdminToken string
	Store      StoreConfig
	Calendar   CalendarConfig
	Monitor    MonitorConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
func Load() *AppConfig {
	return &AppConfig{
		Env:        getEnv("APP_ENV", "development"),
		Port:       getEnv("PORT", "8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		AdminToken: getEnv("ADMIN_TOKEN", ""),
		Store: StoreConfig{
			Driver: getEnv("STORE_DRIVER", "memory"),
			Database: DatabaseConfig{
				Host:               getEnv("DB_HOST", ""),
				Port:               getEnv("DB_PORT", "5432"),
				User:               getEnv("DB_USER", ""),
				Password:           getEnv("DB_PASSWORD", ""),
				Name:               getEnv("DB_NAME", ""),
				SSLMode:            getEnv("DB_SSLMODE", "disable"),
				MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
				MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
				ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
			},
			MinIO: MinIOConfig{
				Endpoint:  getEnv("MINIO_ENDPOINT", ""),
				AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
				SecretKey: getEnv("MINIO_SECRET_KEY", ""),
				Bucket:    getEnv("MINIO_BUCKET", "campushub"),
				Prefix:    getEnv("MINIO_PREFIX", "hub/"),
				UseSSL:    getEnvBool("MINIO_USE_SSL", false),
			},
			Redis: RedisConfig{
				Addr:      getEnv("REDIS_ADDR", "localhost:6379"),
				Password:  getEnv("REDIS_PASSWORD", ""),
				DB:        getEnvInt("REDIS_DB", 0),
				KeyPrefix: getEnv("REDIS_KEY_PREFIX", "campushub:"),
			},
		},
		Calendar: CalendarConfig{
			FeedURL:  getEnv("ICAL_URL", ""),
			TTL:      getEnvDuration("CALENDAR_TTL", 15*time.Minute),
			Timezone: getEnv("CALENDAR_TIMEZONE", "America/New_York"),
		},
		Monitor: MonitorConfig{
			MinInterval:  getEnvDuration("SWEEP_MIN_INTERVAL", 60*time.Second),
			ProbeTimeout: getEnvDuration("PROBE_TIMEOUT", 8*time.Second),
			CronSpec:     getEnv("SWEEP_CRON", ""),
		},
	}
}

// IsProduction reports whether the service runs with production defaults.
func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err == nil && d > 0 {
			return d
		}
	}
	return def
}
