package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Storage string `validate:"required,oneof=postgres memory"`

	Kafka Kafka `validate:"required"`

	Postgres Postgres

	Pricing Pricing
	Cart    Cart
	Coupons Coupons
	Cache   Cache
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Kafka struct {
	GroupID string   `validate:"required"`
	Brokers []string `validate:"required,min=1,dive,hostname_port"`

	// FulfillmentTopic carries warehouse status updates into the service.
	FulfillmentTopic string `validate:"required"`
	// NotificationTopic receives order events for email/SMS dispatchers.
	NotificationTopic string `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`

	Migrate bool
}

type Pricing struct {
	TaxRate                 decimal.Decimal
	ShippingFee             int64         `validate:"gte=0"`
	FreeShippingThreshold   int64         `validate:"gte=0"`
	ChargeShippingWhenEmpty bool
	LineTTL                 time.Duration `validate:"gte=0"`
}

type Cart struct {
	AbandonAfter  time.Duration `validate:"gte=0"`
	SweepInterval time.Duration `validate:"gt=0"`
}

type Coupons struct {
	Source string `validate:"required,oneof=static postgres"`
}

type Cache struct {
	Capacity int           `validate:"gt=0"`
	TTL      time.Duration `validate:"gt=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Storage: env("STORAGE", "postgres"),

		Kafka: Kafka{
			GroupID:           env("KAFKA_GROUP_ID", "storefront-service"),
			FulfillmentTopic:  env("KAFKA_FULFILLMENT_TOPIC", "fulfillment"),
			NotificationTopic: env("KAFKA_NOTIFICATION_TOPIC", "order-events"),
			Brokers:           strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "storefront"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),

			Migrate: envBool("POSTGRES_MIGRATE", true),
		},

		Pricing: Pricing{
			TaxRate:                 envDecimal("TAX_RATE", decimal.RequireFromString("0.16")),
			ShippingFee:             int64(envInt("SHIPPING_FEE", 300)),
			FreeShippingThreshold:   int64(envInt("FREE_SHIPPING_THRESHOLD", 5000)),
			ChargeShippingWhenEmpty: envBool("EMPTY_CART_SHIPPING", false),
			LineTTL:                 envDuration("CART_LINE_TTL", 0),
		},

		Cart: Cart{
			AbandonAfter:  envDuration("CART_ABANDON_AFTER", 24*time.Hour),
			SweepInterval: envDuration("CART_SWEEP_INTERVAL", 15*time.Minute),
		},

		Coupons: Coupons{
			Source: env("COUPON_SOURCE", "static"),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 10*time.Minute),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	if c.Storage == "memory" {
		return validate.StructExcept(c, "Postgres")
	}
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}

func envDecimal(key string, fallback decimal.Decimal) decimal.Decimal {
	if value, ok := os.LookupEnv(key); ok {
		d, err := decimal.NewFromString(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
