package configs

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type ConfigStruct struct {
	Port                      string
	DbUrl                     string
	AccessTokenSecret         string
	RefreshTokenSecret        string
	AccessTokenLifetimeMin    int
	RefreshTokenLifetimeHour  int
	WaitForRedisConnectionSec int
	RedisUrl                  string
	RedisPassword             string
	TmdbApiKey                string
	TmdbBaseUrl               string
	CacheTTLSec               int
	CorsAllowedOrigins        []string
	SentryDns                 string
	SentryRelease             string
	PrintErrors               bool
	RateLimitRps              float64
	RateLimitBurst            int
	S3AccessKey               string
	S3SecretKey               string
	S3Bucket                  string
	S3Region                  string
	S3Endpoint                string
}

const (
	defaultTmdbBaseUrl         = "https://api.themoviedb.org/3"
	defaultCacheTTLSec         = 3600
	defaultAccessLifetimeMin   = 60
	defaultRefreshLifetimeHour = 7 * 24
	defaultRateLimitRps        = 20
	defaultRateLimitBurst      = 40
)

var configs = ConfigStruct{}

func GetConfigs() ConfigStruct {
	return configs
}

// SetConfigs replaces the loaded configuration. Used by tests and tools that
// build their configuration without environment variables.
func SetConfigs(c ConfigStruct) {
	configs = c
}

func LoadEnvVariables() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	configs.Port = os.Getenv("PORT")
	configs.DbUrl = os.Getenv("POSTGRES_DATABASE_URL")
	configs.AccessTokenSecret = os.Getenv("ACCESS_TOKEN_SECRET")
	configs.RefreshTokenSecret = os.Getenv("REFRESH_TOKEN_SECRET")
	configs.AccessTokenLifetimeMin = getEnvInt("ACCESS_TOKEN_LIFETIME_MIN", defaultAccessLifetimeMin)
	configs.RefreshTokenLifetimeHour = getEnvInt("REFRESH_TOKEN_LIFETIME_HOUR", defaultRefreshLifetimeHour)
	configs.RedisUrl = os.Getenv("REDIS_URL")
	configs.RedisPassword = os.Getenv("REDIS_PASSWORD")
	configs.WaitForRedisConnectionSec, _ = strconv.Atoi(os.Getenv("WAIT_REDIS_CONNECTION_SEC"))
	configs.TmdbApiKey = os.Getenv("TMDB_API_KEY")
	configs.TmdbBaseUrl = strings.TrimSuffix(os.Getenv("TMDB_BASE_URL"), "/")
	if configs.TmdbBaseUrl == "" {
		configs.TmdbBaseUrl = defaultTmdbBaseUrl
	}
	configs.CacheTTLSec = getEnvInt("CACHE_TTL", defaultCacheTTLSec)
	configs.CorsAllowedOrigins = strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), "---")
	for i := range configs.CorsAllowedOrigins {
		configs.CorsAllowedOrigins[i] = strings.TrimSpace(configs.CorsAllowedOrigins[i])
	}
	configs.SentryDns = os.Getenv("SENTRY_DNS")
	configs.SentryRelease = os.Getenv("SENTRY_RELEASE")
	configs.PrintErrors = os.Getenv("PRINT_ERRORS") == "true"
	// RATE_LIMIT_RPS=0 turns the limiter off, unset or invalid keeps the default
	configs.RateLimitRps = defaultRateLimitRps
	if rps, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64); err == nil && rps >= 0 {
		configs.RateLimitRps = rps
	}
	configs.RateLimitBurst = getEnvInt("RATE_LIMIT_BURST", defaultRateLimitBurst)
	configs.S3AccessKey = os.Getenv("S3_ACCESS_KEY")
	configs.S3SecretKey = os.Getenv("S3_SECRET_KEY")
	configs.S3Bucket = os.Getenv("S3_BUCKET")
	configs.S3Region = os.Getenv("S3_REGION")
	configs.S3Endpoint = strings.TrimSuffix(os.Getenv("S3_ENDPOINT"), "/")
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}
