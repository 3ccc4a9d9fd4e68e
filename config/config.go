package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultDatabaseName = "xpscDB"
	defaultServerPort   = 5000
	defaultTokenTTL     = time.Hour
	defaultRoleCacheTTL = 30 * time.Second
)

var defaultAllowedOrigins = []string{
	"http://localhost:5173",
	"https://xpsc-86074.web.app",
	"https://xpsc-86074.firebaseapp.com",
}

// Config holds the application settings.
type Config struct {
	MongoURI     string
	DatabaseName string

	AccessTokenSecret string
	TokenTTL          time.Duration

	ServerPort     int
	AllowedOrigins []string

	// Redis is optional; an empty URL disables the role cache.
	RedisURL     string
	RoleCacheTTL time.Duration

	// R2 is optional; image uploads are disabled unless every field is set.
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicBaseURL   string
}

// StorageEnabled reports whether all Cloudflare R2 settings are present.
func (c *Config) StorageEnabled() bool {
	return c.R2AccountID != "" && c.R2AccessKeyID != "" && c.R2SecretAccessKey != "" &&
		c.R2BucketName != "" && c.R2PublicBaseURL != ""
}

// Load reads the configuration from environment variables, loading a .env
// file first when one is present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	mongoURI, err := mongoURIFromEnv()
	if err != nil {
		return nil, err
	}

	secret := os.Getenv("ACCESS_TOKEN_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("ACCESS_TOKEN_SECRET environment variable is not set")
	}

	port := defaultServerPort
	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err = strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT environment variable: %w", err)
		}
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("PORT must be between 1 and 65535, got %d", port)
	}

	tokenTTL, err := durationFromEnv("TOKEN_TTL", defaultTokenTTL)
	if err != nil {
		return nil, err
	}
	roleCacheTTL, err := durationFromEnv("ROLE_CACHE_TTL", defaultRoleCacheTTL)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		MongoURI:          mongoURI,
		DatabaseName:      getEnvOrDefault("DATABASE_NAME", defaultDatabaseName),
		AccessTokenSecret: secret,
		TokenTTL:          tokenTTL,
		ServerPort:        port,
		AllowedOrigins:    originsFromEnv(),
		RedisURL:          os.Getenv("REDIS_URL"),
		RoleCacheTTL:      roleCacheTTL,
		R2AccountID:       os.Getenv("R2_ACCOUNT_ID"),
		R2AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
		R2SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
		R2BucketName:      os.Getenv("R2_BUCKET_NAME"),
		R2PublicBaseURL:   os.Getenv("R2_PUBLIC_BASE_URL"),
	}

	return cfg, nil
}

// mongoURIFromEnv prefers MONGODB_URI and falls back to the Atlas
// credentials pair used by the hosted deployment.
func mongoURIFromEnv() (string, error) {
	if uri := os.Getenv("MONGODB_URI"); uri != "" {
		return uri, nil
	}

	user, pass := os.Getenv("DB_USER"), os.Getenv("DB_PASS")
	if user == "" || pass == "" {
		return "", fmt.Errorf("MONGODB_URI or DB_USER/DB_PASS environment variables must be set")
	}
	cluster := getEnvOrDefault("DB_CLUSTER", "cluster0.zahfpvj.mongodb.net")

	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority&appName=Cluster0",
		url.QueryEscape(user), url.QueryEscape(pass), cluster), nil
}

func originsFromEnv() []string {
	raw := os.Getenv("CORS_ALLOWED_ORIGINS")
	if raw == "" {
		return append([]string(nil), defaultAllowedOrigins...)
	}

	origins := make([]string, 0)
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func durationFromEnv(key string, fallback time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", key, d)
	}
	return d, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
