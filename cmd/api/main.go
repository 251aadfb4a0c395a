package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/barstock/backend/config"
	"github.com/barstock/backend/internal/api"
	"github.com/barstock/backend/internal/client"
	"github.com/barstock/backend/internal/database"
	"github.com/barstock/backend/internal/dataset"
	"github.com/barstock/backend/internal/middleware"
	"github.com/barstock/backend/internal/router"
	"github.com/barstock/backend/internal/server"
	"github.com/barstock/backend/internal/service"
	"github.com/barstock/backend/internal/store"
	"github.com/barstock/backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Development: cfg.GinMode != "release",
	})
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	ctx := context.Background()

	// Bundled dataset: prefer the S3 copy when a bucket is configured,
	// fall back to the local file, run with an empty dataset otherwise.
	recipeData := loadDataset(ctx, cfg, zapLogger)

	db, err := database.New(cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("database init failed", zap.Error(err))
	}

	redisClient, err := database.NewRedisClient(cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("redis init failed", zap.Error(err))
	}

	// Optional sources come up as nil interfaces when unconfigured.
	var (
		recipeStore   service.RecipeStore
		customRecipes service.CustomRecipes
		customManager api.CustomRecipeManager
	)
	if db != nil {
		recipes := store.NewRecipeStore(db)
		custom := store.NewCustomRecipeStore(db)
		recipeStore = recipes
		customRecipes = custom
		customManager = custom
	}

	var cocktailAPI service.CocktailAPI
	if cfg.CocktailDBBaseURL != "" {
		cocktailAPI = client.NewCocktailDBClient(cfg.CocktailDBBaseURL, cfg.ClientTimeout, zapLogger)
	}
	var ninjaAPI service.NinjaAPI
	if cfg.NinjaAPIKey != "" {
		ninjaAPI = client.NewNinjaClient(cfg.NinjaBaseURL, cfg.NinjaAPIKey, cfg.ClientTimeout, zapLogger)
	}

	availability := service.NewAvailabilityService(recipeStore, customRecipes, recipeData, cocktailAPI, zapLogger)
	resolver := service.NewResolveService(recipeStore, customRecipes, recipeData, cocktailAPI, ninjaAPI, zapLogger)

	var (
		inventory *service.InventoryService
		limiter   *middleware.RateLimiter
	)
	if redisClient != nil {
		inventory = service.NewInventoryService(service.NewRedisKV(redisClient), zapLogger)
		limiter = middleware.NewSearchRateLimiter(redisClient)
	}

	handlers := router.Handlers{}
	var ownedNames api.OwnedNamesLister
	if inventory != nil {
		ownedNames = inventory
		handlers.Inventory = api.NewInventoryHandler(inventory, zapLogger)
	}
	handlers.Cocktails = api.NewCocktailHandler(availability, resolver, ownedNames, zapLogger)
	if customManager != nil {
		handlers.CustomRecipes = api.NewCustomRecipeHandler(customManager, zapLogger)
	}

	engine := router.Setup(cfg, handlers, limiter)
	srv := server.New(cfg.ServerHost+":"+cfg.ServerPort, engine, zapLogger)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		zapLogger.Info("received signal", zap.String("signal", sig.String()))
	}

	zapLogger.Info("shutting down")
	if err := srv.Shutdown(context.Background()); err != nil {
		zapLogger.Error("shutdown error", zap.Error(err))
	}
	// Let in-flight cache write-backs land before the process exits.
	resolver.WaitWriteBacks()
	zapLogger.Info("server stopped")
}

func loadDataset(ctx context.Context, cfg *config.Config, zapLogger *zap.Logger) *dataset.Dataset {
	if s3Cfg, err := cfg.NewS3Config(ctx); err != nil {
		zapLogger.Warn("s3 init failed, trying local dataset", zap.Error(err))
	} else if s3Cfg != nil {
		data, err := dataset.LoadS3(ctx, s3Cfg.Client, s3Cfg.BucketName, s3Cfg.ObjectKey)
		if err == nil {
			zapLogger.Info("dataset loaded from s3",
				zap.String("bucket", s3Cfg.BucketName),
				zap.Int("recipes", data.Len()))
			return data
		}
		zapLogger.Warn("s3 dataset load failed, trying local file", zap.Error(err))
	}

	data, err := dataset.LoadFile(cfg.DatasetPath)
	if err != nil {
		zapLogger.Warn("local dataset unavailable, starting empty",
			zap.String("path", cfg.DatasetPath),
			zap.Error(err))
		return dataset.Empty()
	}
	zapLogger.Info("dataset loaded",
		zap.String("path", cfg.DatasetPath),
		zap.Int("recipes", data.Len()))
	return data
}
