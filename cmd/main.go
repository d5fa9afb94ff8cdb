package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/omarkhal/dinehub/internal/adapter/auth"
	"github.com/omarkhal/dinehub/internal/adapter/logger"
	"github.com/omarkhal/dinehub/internal/adapter/postgres"
	"github.com/omarkhal/dinehub/internal/adapter/rabbitmq"
	"github.com/omarkhal/dinehub/internal/app/cart"
	"github.com/omarkhal/dinehub/internal/app/catalog"
	"github.com/omarkhal/dinehub/internal/app/kitchen"
	"github.com/omarkhal/dinehub/internal/app/order"
	"github.com/omarkhal/dinehub/internal/app/tenant"
	"github.com/omarkhal/dinehub/internal/app/tracking"
	"github.com/omarkhal/dinehub/internal/config"

	amqpAdapter "github.com/omarkhal/dinehub/internal/adapter/amqp"
	httpAdapter "github.com/omarkhal/dinehub/internal/adapter/http"
)

func main() {
	mode := flag.String("mode", "", "Service mode: api, kitchen-display, notification-subscriber")
	configPath := flag.String("config", "config.yaml", "Path to config file")
	port := flag.Int("port", 0, "HTTP port (overrides config)")
	stationName := flag.String("station-name", "", "Station name (for kitchen-display)")
	orderTypes := flag.String("order-types", "", "Comma-separated order types this station handles (for kitchen-display)")
	heartbeatInterval := flag.Int("heartbeat-interval", 30, "Heartbeat interval in seconds")
	prefetch := flag.Int("prefetch", 1, "RabbitMQ prefetch count")
	runMigrations := flag.Bool("migrate", false, "Run database migrations before starting")
	flag.Parse()

	if *mode == "" {
		log.Fatal("--mode flag is required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *port != 0 {
		cfg.HTTP.Port = *port
	}

	ctx := context.Background()
	lgr := logger.New(*mode)

	if *runMigrations {
		if err := postgres.Migrate(cfg.Database); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		lgr.Info("migrations_applied", "Database schema is up to date", "startup", nil)
	}

	if *mode == "notification-subscriber" {
		mqConn, err := rabbitmq.Connect(cfg.RabbitMQ)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer mqConn.Close()

		runNotificationSubscriber(ctx, mqConn, lgr)
		return
	}

	db, err := postgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer db.Close()

	lgr.Info("db_connected", "Connected to PostgreSQL database", "startup", map[string]interface{}{
		"host": cfg.Database.Host,
		"db":   cfg.Database.Database,
	})

	mqConn, err := rabbitmq.Connect(cfg.RabbitMQ)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer mqConn.Close()

	lgr.Info("rabbitmq_connected", "Connected to RabbitMQ", "startup", map[string]interface{}{
		"host": cfg.RabbitMQ.Host,
	})

	switch *mode {
	case "api":
		runAPI(ctx, db, mqConn, lgr, cfg)

	case "kitchen-display":
		if *stationName == "" {
			log.Fatal("--station-name is required for kitchen-display mode")
		}
		runKitchenDisplay(ctx, db, mqConn, lgr, *stationName, *orderTypes, *heartbeatInterval, *prefetch)

	default:
		log.Fatalf("Invalid mode: %s", *mode)
	}
}

func runAPI(ctx context.Context, db postgres.DB, mqConn rabbitmq.Connection, lgr logger.Logger, cfg *config.Config) {
	restaurantRepo := postgres.NewRestaurantRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	menuItemRepo := postgres.NewMenuItemRepository(db)
	orderRepo := postgres.NewOrderRepository(db)
	stationRepo := postgres.NewStationRepository(db)

	publisher := rabbitmq.NewPublisher(mqConn)

	tenantResolver := tenant.NewResolver(restaurantRepo, auth.NewContextAuth(), lgr)
	catalogResolver := catalog.NewResolver(categoryRepo, lgr)
	cartStore := cart.NewStore()
	orderService := order.NewService(orderRepo, publisher, lgr)
	trackingService := tracking.NewService(orderRepo, stationRepo, lgr)

	router := httpAdapter.NewRouter(httpAdapter.RouterDeps{
		Tenant:     tenantResolver,
		Menu:       httpAdapter.NewMenuHandler(catalogResolver, menuItemRepo, lgr),
		Cart:       httpAdapter.NewCartHandler(cartStore, menuItemRepo, lgr),
		Order:      httpAdapter.NewOrderHandler(orderService, trackingService, cartStore, lgr),
		Admin:      httpAdapter.NewAdminHandler(restaurantRepo, categoryRepo, menuItemRepo, orderRepo, trackingService, lgr),
		BaseDomain: cfg.HTTP.BaseDomain,
		AdminToken: cfg.HTTP.AdminToken,
		Logger:     lgr,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	lgr.Info("service_started", fmt.Sprintf("API started on port %d", cfg.HTTP.Port), "startup", map[string]interface{}{
		"port":        cfg.HTTP.Port,
		"base_domain": cfg.HTTP.BaseDomain,
	})

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		lgr.Info("shutdown_initiated", "Shutting down API", "shutdown", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			lgr.Error("shutdown_error", "Error during shutdown", "shutdown", nil, err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		lgr.Error("server_error", "Server error", "runtime", nil, err)
	}
}

func runKitchenDisplay(ctx context.Context, db postgres.DB, mqConn rabbitmq.Connection, lgr logger.Logger, stationName, orderTypes string, heartbeatInterval, prefetch int) {
	orderRepo := postgres.NewOrderRepository(db)
	stationRepo := postgres.NewStationRepository(db)

	publisher := rabbitmq.NewPublisher(mqConn)
	consumer := rabbitmq.NewConsumer(mqConn, prefetch)

	kitchenService := kitchen.NewService(orderRepo, stationRepo, publisher, lgr, stationName, orderTypes, heartbeatInterval)

	orderHandlerAMQP := amqpAdapter.NewOrderHandler(kitchenService, lgr)

	if err := kitchenService.Start(ctx); err != nil {
		log.Fatalf("Failed to start kitchen display: %v", err)
	}

	lgr.Info("service_started", fmt.Sprintf("Kitchen Display %s started", stationName), "startup", map[string]interface{}{
		"station_name": stationName,
		"order_types":  orderTypes,
		"prefetch":     prefetch,
	})

	go func() {
		if err := consumer.ConsumeOrders(ctx, orderHandlerAMQP.HandleOrder); err != nil {
			lgr.Error("consumer_error", "Error consuming orders", "runtime", nil, err)
		}
	}()

	sigint := make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
	<-sigint

	lgr.Info("graceful_shutdown", "Shutting down Kitchen Display", "shutdown", nil)

	if err := kitchenService.Shutdown(ctx); err != nil {
		lgr.Error("shutdown_error", "Error during shutdown", "shutdown", nil, err)
	}
}

func runNotificationSubscriber(ctx context.Context, mqConn rabbitmq.Connection, lgr logger.Logger) {
	consumer := rabbitmq.NewConsumer(mqConn, 1)
	notificationHandler := amqpAdapter.NewNotificationHandler(lgr)

	lgr.Info("service_started", "Notification Subscriber started", "startup", nil)

	go func() {
		if err := consumer.ConsumeNotifications(ctx, notificationHandler.HandleNotification); err != nil {
			lgr.Error("consumer_error", "Error consuming notifications", "runtime", nil, err)
		}
	}()

	sigint := make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
	<-sigint

	lgr.Info("shutdown_initiated", "Shutting down Notification Subscriber", "shutdown", nil)
}
