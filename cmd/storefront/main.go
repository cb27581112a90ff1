package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nubecart/storefront/internal/api/handlers"
	"github.com/nubecart/storefront/internal/api/middleware"
	"github.com/nubecart/storefront/internal/cache"
	"github.com/nubecart/storefront/internal/cart"
	"github.com/nubecart/storefront/internal/config"
	"github.com/nubecart/storefront/internal/health"
	"github.com/nubecart/storefront/internal/metrics"
	service "github.com/nubecart/storefront/internal/services"
	"github.com/nubecart/storefront/internal/telemetry"
	"github.com/nubecart/storefront/internal/upstream"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup
	shutdownTracing, err := telemetry.Setup(context.Background(), &cfg.Otel)
	if err != nil {
		slog.Error("Error configuring tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Redis setup
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		slog.Error("Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	cartBackend := cache.NewRedisCache(redisClient)

	defer func() {
		if err := cartBackend.Close(); err != nil {
			slog.Error("Error closing redis connection", slog.String("error", err.Error()))
		}
	}()

	// Upstream commerce API client and services
	apiClient := upstream.NewClient(&cfg.Upstream)
	catalogService := service.NewCatalogService(apiClient)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	checkoutService := service.NewCheckoutService(apiClient, &cfg.Upstream)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	cartManager := cart.NewManager(cartBackend, &cfg.Cart)
	cartHandler := handlers.NewCartHandler(cartManager, &cfg.Cart)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("Error configuring health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storefront initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/v1/store", catalogHandler.GetStore())
	routerMux.HandleFunc("GET /api/v1/categories", catalogHandler.ListCategories())
	routerMux.HandleFunc("GET /api/v1/products", catalogHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/{id}", catalogHandler.GetProduct())
	routerMux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart())
	routerMux.HandleFunc("POST /api/v1/cart/items", cartHandler.AddItem())
	routerMux.HandleFunc("PUT /api/v1/cart/items/{id}", cartHandler.UpdateQuantity())
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{id}", cartHandler.RemoveItem())
	routerMux.HandleFunc("PUT /api/v1/cart/open", cartHandler.SetOpen())
	routerMux.HandleFunc("POST /api/v1/checkout", checkoutHandler.CreateCheckout())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = middleware.Recover(handler)
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "storefront")

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("Failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("Tracer shutdown encountered an issue", slog.String("error", err.Error()))
	}
}
