package main

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/tapmenu/tapmenu/internal/env"
	"github.com/tapmenu/tapmenu/internal/ratelimiter"
	"github.com/tapmenu/tapmenu/internal/service"
	"github.com/tapmenu/tapmenu/internal/store/jsonfile"
	"go.uber.org/zap"
)

const version = "0.0.0"

//	@title			tapmenu
//	@description	Multi-tenant digital menu storefront API

// @BasePath	/api
func main() {
	_ = godotenv.Load()

	cfg := config{
		addr:      env.GetString("ADDR", ":3000"),
		apiURL:    env.GetString("EXTERNAL_URL", "localhost:3000"),
		env:       env.GetString("ENV", "development"),
		appDomain: env.GetString("APP_DOMAIN", "localhost:3000"),
		dataDir:   env.GetString("DATA_DIR", "data"),
		rateLimiter: ratelimiter.Config{
			RequestsPerTimeFrame: env.GetInt("RATELIMITER_REQUESTS_COUNT", 20),
			TimeFrame:            time.Second * 5,
			Enabled:              env.GetBool("RATE_LIMITER_ENABLED", true),
		},
	}

	// logger
	logger := zap.Must(zap.NewProduction()).Sugar()
	defer logger.Sync()

	// rate limiter
	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)

	// storage
	storage, err := jsonfile.New(jsonfile.Config{Dir: cfg.dataDir}, logger)
	if err != nil {
		logger.Fatalw("failed to open data directory", "error", err)
	}

	logger.Infow("storage ready", "dir", storage.Dir())

	// repos
	vendorRepo := jsonfile.NewVendorRepository(storage)
	menuRepo := jsonfile.NewMenuItemRepository(storage)

	// services
	vendorService := service.NewVendorService(vendorRepo, logger)
	orderService := service.NewOrderService(vendorRepo, menuRepo, logger)

	app := &application{
		config:        cfg,
		logger:        logger,
		rateLimiter:   rateLimiter,
		storage:       storage,
		vendorRepo:    vendorRepo,
		menuRepo:      menuRepo,
		vendorService: vendorService,
		orderService:  orderService,
	}

	mux := app.mount()

	logger.Fatal(app.run(mux))
}
