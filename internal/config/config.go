package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// MongoConfig holds document store connection settings.
type MongoConfig struct {
	URL               string
	Database          string
	TLSAllowInvalid   bool
	NewsTTLSeconds    int
	ConnectTimeoutSec int
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// UploadConfig controls where uploaded images live and how they are addressed.
type UploadConfig struct {
	Backend       string // "local" or "minio"
	Dir           string
	MaxBytes      int
	PublicBaseURL string
}

// AuthConfig holds session token settings.
type AuthConfig struct {
	SecretKey            string
	TokenTTL             time.Duration
	RequireAuthForWrites bool
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Port           string
	AllowedOrigins []string
	LogLevel       string
	LogTimezone    string
	Mongo          MongoConfig
	MinIO          MinIOConfig
	Upload         UploadConfig
	Auth           AuthConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	port := getEnv("PORT", "8000")
	return &AppConfig{
		Port:           port,
		AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogTimezone:    getEnv("LOG_TIMEZONE", "UTC"),
		Mongo: MongoConfig{
			URL:               getEnv("MONGO_URL", "mongodb://localhost:27017"),
			Database:          getEnv("DB_NAME", "education_news"),
			TLSAllowInvalid:   getEnvBool("MONGO_TLS_ALLOW_INVALID", false),
			NewsTTLSeconds:    getEnvInt("NEWS_TTL_SECONDS", 30*24*60*60),
			ConnectTimeoutSec: getEnvInt("MONGO_CONNECT_TIMEOUT_SEC", 10),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Upload: UploadConfig{
			Backend:       getEnv("STORAGE_BACKEND", "local"),
			Dir:           getEnv("UPLOAD_DIR", "static"),
			MaxBytes:      getEnvInt("UPLOAD_MAX_BYTES", 10<<20),
			PublicBaseURL: strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:"+port), "/"),
		},
		Auth: AuthConfig{
			SecretKey:            getEnv("JWT_SECRET_KEY", ""),
			TokenTTL:             getEnvDuration("TOKEN_TTL", 24*time.Hour),
			RequireAuthForWrites: getEnvBool("REQUIRE_AUTH_FOR_WRITES", false),
		},
	}
}

// Location resolves LogTimezone, falling back to UTC when the zone is unknown.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.LogTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
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
		if err == nil {
			return d
		}
	}
	return def
}

// getEnvList splits a comma separated value, dropping blanks.
func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
