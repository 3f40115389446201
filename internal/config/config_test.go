package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	conf := New()

	assert.Equal(t, "postgres", conf.Storage)
	assert.True(t, conf.Pricing.TaxRate.Equal(decimal.RequireFromString("0.16")))
	assert.Equal(t, int64(300), conf.Pricing.ShippingFee)
	assert.Equal(t, int64(5000), conf.Pricing.FreeShippingThreshold)
	assert.False(t, conf.Pricing.ChargeShippingWhenEmpty)
	assert.Equal(t, 24*time.Hour, conf.Cart.AbandonAfter)
}

func TestNew_FromEnv(t *testing.T) {
	t.Setenv("TAX_RATE", "0.2")
	t.Setenv("EMPTY_CART_SHIPPING", "true")
	t.Setenv("CART_LINE_TTL", "30m")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("SHIPPING_FEE", "not-a-number")

	conf := New()

	assert.True(t, conf.Pricing.TaxRate.Equal(decimal.RequireFromString("0.2")))
	assert.True(t, conf.Pricing.ChargeShippingWhenEmpty)
	assert.Equal(t, 30*time.Minute, conf.Pricing.LineTTL)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, conf.Kafka.Brokers)
	assert.Equal(t, int64(300), conf.Pricing.ShippingFee)
}

func TestValidate(t *testing.T) {
	t.Run("memory storage does not need postgres credentials", func(t *testing.T) {
		t.Setenv("STORAGE", "memory")
		require.NoError(t, New().Validate())
	})

	t.Run("postgres storage requires credentials", func(t *testing.T) {
		t.Setenv("STORAGE", "postgres")
		assert.Error(t, New().Validate())
	})

	t.Run("unknown coupon source", func(t *testing.T) {
		t.Setenv("STORAGE", "memory")
		t.Setenv("COUPON_SOURCE", "redis")
		assert.Error(t, New().Validate())
	})
}
