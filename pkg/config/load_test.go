package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	os.Setenv("PAYMENT_PROVIDER_STRIPE_API_KEY", "sk_test_123")       //nolint:errcheck
	defer os.Unsetenv("PAYMENT_PROVIDER_STRIPE_API_KEY")              //nolint:errcheck

	cfg, err := loadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "vapor75", cfg.Content.DefaultProductUID)
	assert.Equal(t, 10*time.Second, cfg.Content.HTTPTimeout)
	assert.Equal(t, time.Duration(0), cfg.Content.CacheTTL)
	assert.Equal(t, "sk_test_123", cfg.PaymentProviders.Stripe.ApiKey)
}

func TestLoadMissingStripeKey(t *testing.T) {
	os.Unsetenv("PAYMENT_PROVIDER_STRIPE_API_KEY") //nolint:errcheck

	_, err := loadFromEnv()
	assert.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	os.Setenv("PAYMENT_PROVIDER_STRIPE_API_KEY", "sk_test_123") //nolint:errcheck
	os.Setenv("CONTENT_CACHE_TTL", "5m")                        //nolint:errcheck
	os.Setenv("SERVER_PORT", "8080")                            //nolint:errcheck
	defer func() {
		os.Unsetenv("PAYMENT_PROVIDER_STRIPE_API_KEY") //nolint:errcheck
		os.Unsetenv("CONTENT_CACHE_TTL")               //nolint:errcheck
		os.Unsetenv("SERVER_PORT")                     //nolint:errcheck
	}()

	cfg, err := loadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 5*time.Minute, cfg.Content.CacheTTL)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestMaskValue(t *testing.T) {
	assert.Equal(t, "****", maskValue("short"))
	assert.Equal(t, "sk****6789", maskValue("sk_test_SOME123456789"))
}
