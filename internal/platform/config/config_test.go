package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseViper() *viper.Viper {
	v := viper.New()
	v.Set("PORT", "9090")
	v.Set("STORAGE_DRIVER", "memory")
	v.Set("JWT_SECRET", "s3cret")
	v.Set("JWT_EXPIRY_DURATION", "2h")
	v.Set("BOOKING_CACHE_TTL", "30s")
	v.Set("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")
	v.Set("POSTING_POLICY", "approver")
	return v
}

func TestFromViper(t *testing.T) {
	cfg, err := fromViper(baseViper())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, DriverMemory, cfg.StorageDriver)
	assert.Equal(t, 2*time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, 30*time.Second, cfg.BookingCacheTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "approver", cfg.PostingPolicy)
}

func TestFromViper_InvalidDurationsFallBack(t *testing.T) {
	v := baseViper()
	v.Set("JWT_EXPIRY_DURATION", "soon")
	v.Set("BOOKING_CACHE_TTL", "-1m")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, 5*time.Minute, cfg.BookingCacheTTL)
}

func TestFromViper_Rejects(t *testing.T) {
	v := baseViper()
	v.Set("STORAGE_DRIVER", "sqlite")
	_, err := fromViper(v)
	assert.Error(t, err)

	v = baseViper()
	v.Set("IS_PRODUCTION", true)
	_, err = fromViper(v)
	assert.Error(t, err, "memory storage is refused in production")

	v = baseViper()
	v.Set("JWT_SECRET", "")
	_, err = fromViper(v)
	assert.Error(t, err)
}
