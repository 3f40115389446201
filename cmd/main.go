package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/storefront-service/docs"
	"github.com/SergeyBogomolovv/storefront-service/internal/app"
	"github.com/SergeyBogomolovv/storefront-service/internal/config"
	"github.com/SergeyBogomolovv/storefront-service/internal/coupon"
	"github.com/SergeyBogomolovv/storefront-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-service/internal/handler"
	"github.com/SergeyBogomolovv/storefront-service/internal/notify"
	"github.com/SergeyBogomolovv/storefront-service/internal/postgres"
	"github.com/SergeyBogomolovv/storefront-service/internal/pricing"
	"github.com/SergeyBogomolovv/storefront-service/internal/repo"
	"github.com/SergeyBogomolovv/storefront-service/internal/service"
	"github.com/SergeyBogomolovv/storefront-service/pkg/cache"
	"github.com/SergeyBogomolovv/storefront-service/pkg/keylock"
	"github.com/SergeyBogomolovv/storefront-service/pkg/trm"

	"github.com/joho/godotenv"
)

// storage bundles what both backends provide to the services.
type storage interface {
	service.Catalog
	service.Ledger
	service.SalesRecorder
	service.CartRepo
	service.OrderRepo
}

// @title           Storefront Service API
// @version         1.0
// @description     Корзина, купоны, оформление и жизненный цикл заказов
// @BasePath        /
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	var (
		store     storage
		txManager trm.Manager
		coupons   coupon.Source = coupon.DefaultTable()
		notifier  service.Notifier
	)

	switch conf.Storage {
	case "postgres":
		db, err := postgres.New(conf.Postgres)
		panicIfErr("failed to connect to db", err)
		defer db.Close()
		logger.Info("postgres connected")

		if conf.Postgres.Migrate {
			panicIfErr("failed to migrate db", postgres.Migrate(db))
			logger.Info("migrations applied")
		}

		pgRepo := repo.NewPostgresRepo(db)
		store = pgRepo
		txManager = trm.NewManager(db)
		if conf.Coupons.Source == "postgres" {
			coupons = pgRepo
		}
	default:
		memStore := repo.NewMemoryStore()
		seedCatalog(memStore)
		store = memStore
		txManager = trm.NewNopManager()
		logger.Warn("using in-memory storage, data is lost on restart")
	}

	appl := app.New(logger, conf)

	if conf.Storage == "postgres" {
		kafkaNotifier := notify.NewKafkaNotifier(logger, conf.Kafka)
		appl.SetClosers(kafkaNotifier)
		notifier = kafkaNotifier
	} else {
		notifier = notify.NewLogNotifier(logger)
	}

	service.RegisterMetrics()
	handler.RegisterMetrics()
	notify.RegisterMetrics()

	orderCache := cache.NewLRUCache[[]byte](conf.Cache.Capacity, conf.Cache.TTL)
	locks := keylock.New()

	cartConfig := service.CartConfig{
		Rules: pricing.Rules{
			TaxRate:                 conf.Pricing.TaxRate,
			ShippingFee:             conf.Pricing.ShippingFee,
			FreeShippingThreshold:   conf.Pricing.FreeShippingThreshold,
			ChargeShippingWhenEmpty: conf.Pricing.ChargeShippingWhenEmpty,
			LineTTL:                 conf.Pricing.LineTTL,
		},
		AbandonAfter:  conf.Cart.AbandonAfter,
		SweepInterval: conf.Cart.SweepInterval,
	}

	couponEvaluator := coupon.NewEvaluator(coupons)
	cartService := service.NewCartService(logger, txManager, store, store, couponEvaluator, locks, cartConfig)
	checkoutService := service.NewCheckoutService(logger, txManager, store, store, store, store, notifier, locks, cartConfig)
	orderService := service.NewOrderService(logger, txManager, store, store, store, notifier, orderCache)
	inventoryService := service.NewInventoryService(logger, store)

	httpHandler := handler.NewHTTPHandler(logger, cartService, checkoutService, orderService, inventoryService)

	appl.SetHTTPHandlers(httpHandler)
	appl.SetStarters(orderCache, cartService)
	if conf.Storage == "postgres" {
		appl.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, orderService))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", appl.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", appl.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

// seedCatalog fills the in-memory catalog so a local run has something to sell.
func seedCatalog(s *repo.MemoryStore) {
	for _, p := range []entities.Product{
		{ID: "tee", Name: "T-shirt", SKU: "TEE-001", Price: 1000, Status: entities.ProductActive, Available: 100, Variants: []entities.Variant{
			{Name: "size", Value: "S"},
			{Name: "size", Value: "M"},
			{Name: "size", Value: "XL", PriceAdjustment: 200},
		}},
		{ID: "mug", Name: "Mug", SKU: "MUG-001", Price: 600, Status: entities.ProductActive, Available: 50},
		{ID: "poster", Name: "Poster", SKU: "PST-001", Price: 1500, Status: entities.ProductActive, Available: 10},
		{ID: "hoodie", Name: "Hoodie", SKU: "HOD-001", Price: 4500, Status: entities.ProductDraft},
	} {
		s.PutProduct(p)
	}
}
