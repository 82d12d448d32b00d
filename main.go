// main.go
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"elara-server/config"
	"elara-server/controllers"
	"elara-server/middleware"
	"elara-server/repository"
	"elara-server/routes"
	"elara-server/utils"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables from .env file
	cfg, dotenv := config.Load()

	logger, err := utils.InitLogger(cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()
	if !dotenv {
		zap.L().Info("No .env file found. Proceeding with environment variables.")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to MongoDB. The listener starts even if the deployment is unreachable.
	if !cfg.HasCredentials() {
		zap.L().Warn("DB_USER and DB_PASS are not set; store calls will fail")
	}
	client, err := utils.ConnectDB(ctx, cfg)
	if client == nil {
		zap.L().Fatal("cannot create mongodb client", zap.Error(err))
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			zap.L().Error("mongodb disconnect", zap.Error(err))
		}
	}()
	db := client.Database(cfg.DBName)
	if err != nil {
		zap.L().Warn("mongodb is not reachable", zap.Error(err))
	} else if err := repository.EnsureIndexes(ctx, db); err != nil {
		zap.L().Warn("cart indexes were not created", zap.Error(err))
	}
	store := repository.NewStore(db)

	// Order confirmations are only sent when Postmark is configured
	var notifier controllers.OrderNotifier
	if emailService := utils.NewEmailService(cfg.PostmarkToken, cfg.EmailSender); emailService != nil {
		notifier = emailService
	}

	// Initialize controllers
	userController := controllers.NewUserController(store.Users, cfg.RequestTimeout)
	productController := controllers.NewProductController(store.Products, cfg.RequestTimeout)
	cartController := controllers.NewCartController(store.Cart, store.Products, cfg.RequestTimeout)
	orderController := controllers.NewOrderController(store.Orders, notifier, cfg.RequestTimeout)

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, userController, productController, cartController, orderController)
	handler := middleware.CORS(cfg.AllowedOrigins)(middleware.RequestLogger(middleware.Recover(router)))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		zap.L().Info("elara-int server is running", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Error("http server error", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	zap.L().Info("shutdown requested")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("http shutdown error", zap.Error(err))
	}
}
