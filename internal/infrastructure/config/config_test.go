package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, config.Server.Port)
	assert.Equal(t, "gpt-4.1-nano", config.OpenAI.Model)
	assert.Equal(t, "https://api.openai.com/v1", config.OpenAI.BaseURL)
	assert.Equal(t, "https://www.themealdb.com/api/json/v1/1", config.MealDB.BaseURL)
	assert.Equal(t, "http://ip-api.com/json", config.Geo.PrimaryURL)
	assert.Equal(t, "https://ipapi.co", config.Geo.FallbackURL)
	assert.Equal(t, 3*time.Second, config.Geo.Timeout)
	assert.False(t, config.Cache.Enabled)
	assert.Equal(t, 24*time.Hour, config.Cache.LongTTL)
	assert.Equal(t, time.Hour, config.Cache.ShortTTL)
	assert.Equal(t, "info", config.LogLevel)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test-1234567890")
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")
	t.Setenv("MEALDB_BASE_URL", "http://localhost:9999/api")
	t.Setenv("LOG_LEVEL", "debug")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "sk-test-1234567890", config.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o-mini", config.OpenAI.Model)
	assert.Equal(t, "http://localhost:9999/api", config.MealDB.BaseURL)
	assert.Equal(t, "debug", config.LogLevel)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{Port: 8080},
			MealDB: MealDBConfig{BaseURL: "http://localhost"},
			Geo:    GeoConfig{Timeout: 3 * time.Second},
		}
	}

	assert.NoError(t, validateConfig(valid()))

	c := valid()
	c.Server.Port = 0
	assert.ErrorContains(t, validateConfig(c), "server port")

	c = valid()
	c.MealDB.BaseURL = ""
	assert.ErrorContains(t, validateConfig(c), "mealdb base url")

	c = valid()
	c.Geo.Timeout = 0
	assert.ErrorContains(t, validateConfig(c), "geo timeout")

	c = valid()
	c.Cache.Enabled = true
	assert.ErrorContains(t, validateConfig(c), "redis addr")

	c = valid()
	c.Cache = CacheConfig{Enabled: true, RedisAddr: "localhost:6379"}
	assert.ErrorContains(t, validateConfig(c), "cache ttl")
}

func TestMaskAPIKey(t *testing.T) {
	assert.Equal(t, "sk-t...7890", MaskAPIKey("sk-test-1234567890"))
	assert.Equal(t, "****", MaskAPIKey("short"))
	assert.Equal(t, "****", MaskAPIKey(""))
}
