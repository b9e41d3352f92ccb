package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"github.com/tapmenu/tapmenu/docs"
	"github.com/tapmenu/tapmenu/internal/ratelimiter"
	"github.com/tapmenu/tapmenu/internal/repo"
	"github.com/tapmenu/tapmenu/internal/service"
	"github.com/tapmenu/tapmenu/internal/store/jsonfile"
	"go.uber.org/zap"
)

type application struct {
	config        config
	logger        *zap.SugaredLogger
	rateLimiter   ratelimiter.Limiter
	storage       *jsonfile.Storage
	vendorRepo    repo.VendorRepository
	menuRepo      repo.MenuItemRepository
	vendorService *service.VendorService
	orderService  *service.OrderService
}

type config struct {
	addr        string
	env         string
	apiURL      string
	appDomain   string
	dataDir     string
	rateLimiter ratelimiter.Config
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(app.RateLimiterMiddleware)
	r.Use(app.TenantRewriteMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)

		r.Route("/vendors", func(r chi.Router) {
			r.Get("/", app.getVendorHandler)
			r.Post("/", app.createVendorHandler)
			r.Patch("/", app.updateVendorHandler)
			r.Get("/check-subdomain", app.checkSubdomainHandler)
		})

		r.Route("/menu", func(r chi.Router) {
			r.Get("/", app.listMenuItemsHandler)
			r.Post("/", app.createMenuItemHandler)
			r.Patch("/", app.updateMenuItemHandler)
			r.Delete("/", app.deleteMenuItemHandler)
		})

		r.Post("/orders/checkout", app.checkoutHandler)

		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))
	})

	// storefront pages the tenant rewrite dispatches to
	r.Get("/", app.landingHandler)
	r.Get("/menu", app.menuPageHandler)
	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/", app.dashboardHandler)
		r.Get("/*", app.dashboardHandler)
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	// docs
	docs.SwaggerInfo.Title = "tapmenu"
	docs.SwaggerInfo.Description = "Multi-tenant digital menu storefront API"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/api"

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server have started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
