// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/murkimart/grocery-backend/internal/config"
	"github.com/murkimart/grocery-backend/internal/domain/address"
	"github.com/murkimart/grocery-backend/internal/domain/cart"
	"github.com/murkimart/grocery-backend/internal/domain/catalog"
	"github.com/murkimart/grocery-backend/internal/domain/checkout"
	"github.com/murkimart/grocery-backend/internal/domain/instantorder"
	"github.com/murkimart/grocery-backend/internal/domain/order"
	"github.com/murkimart/grocery-backend/internal/infrastructure/database/redis"
	httpserver "github.com/murkimart/grocery-backend/internal/interfaces/http"
	"github.com/murkimart/grocery-backend/internal/interfaces/http/routes"
	"github.com/murkimart/grocery-backend/internal/pkg/notify"
	"github.com/murkimart/grocery-backend/internal/pkg/whatsapp"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("🚀 Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Application logger
	logger := logrus.New()
	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	}
	if level, err := logrus.ParseLevel(cfg.Logging.Level); err == nil {
		logger.SetLevel(level)
	}

	// Connect to Redis
	redisClient, err := redis.NewConnection(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	if err := redisClient.Health(); err != nil {
		log.Fatalf("Redis health check failed: %v", err)
	}

	// Build the owned store instances. The address book is the only commerce
	// state that survives a restart; carts and order history are session-lived.
	directory, err := address.NewDirectory(address.NewRedisStore(redisClient.GetClient()), logger)
	if err != nil {
		log.Fatalf("Failed to load address book: %v", err)
	}

	catalogService := catalog.NewService(catalog.SeedProducts())
	sessions := cart.NewSessions()
	orders := order.NewEngine(cfg.Delivery.InitialETA, logger)
	driver := order.NewDriver(orders, cfg.Delivery.AdvanceInterval, logger)
	checkoutService := checkout.NewService(directory, orders)
	notifier := notify.NewLogNotifier(logger)
	messenger := whatsapp.NewService(cfg)

	// After a buy-now order, begin tracking it shortly after placement.
	onPlaced := func(orderNumber string) {
		time.AfterFunc(500*time.Millisecond, func() {
			driver.Start(context.Background(), orderNumber)
		})
	}
	instantService := instantorder.NewService(directory, orders, messenger, notifier, onPlaced)

	deps := routes.Dependencies{
		Sessions:  sessions,
		Catalog:   catalogService,
		Addresses: directory,
		Orders:    orders,
		Checkout:  checkoutService,
		Instant:   instantService,
		Driver:    driver,
		Notifier:  notifier,
	}

	log.Println("✅ All systems operational!")

	// Create and start HTTP server
	server := httpserver.NewServer(cfg, deps, redisClient.GetClient())

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("👋 Shutting down gracefully...")

	// Give server 30 seconds to shutdown gracefully
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		log.Printf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	log.Println("✅ Server shutdown completed")
}
