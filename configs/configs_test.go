package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnvVariables_RateLimit(t *testing.T) {
	previous := GetConfigs()
	defer SetConfigs(previous)

	tests := []struct {
		value string
		rps   float64
	}{
		{"", defaultRateLimitRps},
		{"nope", defaultRateLimitRps},
		{"-1", defaultRateLimitRps},
		{"0", 0},
		{"5.5", 5.5},
	}
	for _, tt := range tests {
		t.Setenv("RATE_LIMIT_RPS", tt.value)
		LoadEnvVariables()
		assert.Equal(t, tt.rps, GetConfigs().RateLimitRps, "RATE_LIMIT_RPS=%q", tt.value)
	}
}

func TestLoadEnvVariables_Defaults(t *testing.T) {
	previous := GetConfigs()
	defer SetConfigs(previous)

	t.Setenv("TMDB_BASE_URL", "")
	t.Setenv("CACHE_TTL", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example--- https://b.example")
	LoadEnvVariables()

	conf := GetConfigs()
	assert.Equal(t, defaultTmdbBaseUrl, conf.TmdbBaseUrl)
	assert.Equal(t, defaultCacheTTLSec, conf.CacheTTLSec)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, conf.CorsAllowedOrigins)
}
