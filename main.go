package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"go-salesforce-cart/cache"
	"go-salesforce-cart/config"
	"go-salesforce-cart/controllers"
	"go-salesforce-cart/logger"
	"go-salesforce-cart/middleware"
	"go-salesforce-cart/repository"
	"go-salesforce-cart/routes"
	"go-salesforce-cart/service"
	"go-salesforce-cart/storage"
	"go-salesforce-cart/utils"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	cfg := config.Load()

	logg, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatal(err)
	}
	defer logg.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Select the storage backend once at startup; everything downstream only
	// sees the storage.Store interface.
	var (
		store storage.Store
		cch   *cache.Cache
	)
	if cfg.UseMemoryStorage() {
		logg.Info("using in-memory storage backend")
		store = storage.NewMemoryStore()
	} else {
		store, err = storage.NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			logg.Fatal("mongodb connection failed", "error", err)
		}
		logg.Info("connected to mongodb", "database", cfg.MongoDatabase)

		cch = cache.New(cfg.RedisHost, cfg.RedisPort, cfg.CacheTTL, logg)
		if err := cch.Ping(ctx); err != nil {
			logg.Fatal("redis connection failed", "error", err)
		}
		logg.Info("connected to redis", "host", cfg.RedisHost, "port", cfg.RedisPort)
	}

	// Repositories and service
	accountRepo := repository.NewAccountRepository(store)
	contactRepo := repository.NewContactRepository(store)
	cartRepo := repository.NewCartRepository(store)
	userRepo := repository.NewUserRepository(store)
	svc := service.New(accountRepo, contactRepo, cartRepo, cch)

	tokens := utils.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)
	emailService := utils.NewEmailService(cfg.PostmarkToken, cfg.EmailSender)

	// Controllers
	healthController := controllers.NewHealthController(store, cch, cfg.UseMemoryStorage(), cfg.Env, logg)
	authController := controllers.NewAuthController(userRepo, tokens, emailService, logg)
	accountController := controllers.NewAccountController(svc, logg)
	contactController := controllers.NewContactController(svc, logg)
	cartController := controllers.NewCartController(svc, logg)

	// Router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, healthController, authController, accountController, contactController, cartController, tokens)
	router.Use(middleware.Timeout(cfg.RequestTimeout, logg))

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}).Handler(router)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: handler,
	}

	go func() {
		logg.Info("server starting", "port", cfg.Port, "env", cfg.Env, "backend", cfg.StorageBackend)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logg.Fatal("server failed", "error", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM, forced after 10 seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logg.Info("shutting down", "signal", sig.String())

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logg.Error("server shutdown failed", "error", err)
	}
	if err := store.Close(shutdownCtx); err != nil {
		logg.Error("storage close failed", "error", err)
	}
	if err := cch.Close(); err != nil {
		logg.Error("cache close failed", "error", err)
	}
	logg.Info("shutdown complete")
}
