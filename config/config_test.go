package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	LoadConfig()

	assert.Equal(t, "8080", AppConfig.AppPort)
	assert.Equal(t, "development", AppConfig.Env)
	assert.Equal(t, 100, AppConfig.MaxRequestsPerMin)
	assert.Equal(t, "localhost:6379", AppConfig.RedisAddr)
	assert.Equal(t, 0, AppConfig.RedisSessionDB)
	assert.Equal(t, 1, AppConfig.RedisChatDB)
	assert.Equal(t, 2, AppConfig.RedisRecordsDB)
	assert.Equal(t, 5, AppConfig.ChatTimeoutSeconds)
	assert.True(t, AppConfig.DemoMode)
	assert.False(t, IsProduction())
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DEMO_MODE", "false")
	t.Setenv("ENV", "production")

	LoadConfig()

	assert.Equal(t, "9090", AppConfig.AppPort)
	assert.False(t, AppConfig.DemoMode)
	assert.True(t, IsProduction())
}
