package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("APP_URI", "")
	t.Setenv("JWT_TTL", "")
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("REDIS_URI", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8888", cfg.AppURI)
	assert.Equal(t, "courses", cfg.MongoDB)
	assert.Equal(t, []byte("s3cret"), cfg.JWTSecret)
	assert.Equal(t, time.Hour, cfg.JWTTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Empty(t, cfg.RedisURI)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_TTL", "30m")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("RATE_LIMIT", "5")
	t.Setenv("RATE_LIMIT_WINDOW", "not-a-duration")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, cfg.JWTTTL)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, 5, cfg.RateLimit)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRequiresMongoURI(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	t.Setenv("JWT_SECRET", "s3cret")

	_, err := Load()
	assert.Error(t, err)
}
