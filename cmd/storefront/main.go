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

	"github.com/hnthao/foodorder/config"
	"github.com/hnthao/foodorder/internal/cart"
	"github.com/hnthao/foodorder/internal/logger"
	orderRepoPkg "github.com/hnthao/foodorder/internal/order/repository"
	orderUCPkg "github.com/hnthao/foodorder/internal/order/usecase"
	prodRepoPkg "github.com/hnthao/foodorder/internal/product/repository"
	prodUCPkg "github.com/hnthao/foodorder/internal/product/usecase"
	revRepoPkg "github.com/hnthao/foodorder/internal/review/repository"
	revUCPkg "github.com/hnthao/foodorder/internal/review/usecase"
	"github.com/hnthao/foodorder/internal/storage"
	"github.com/hnthao/foodorder/internal/storefront"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer appLogger.Sync()

	db, err := storage.Open(cfg.SQLite)
	if err != nil {
		appLogger.Fatal("could not open database", zap.Error(err))
	}
	defer db.Close()

	ctx := context.Background()
	if err := storage.InitSchema(ctx, db); err != nil {
		appLogger.Fatal("could not initialize schema", zap.Error(err))
	}
	if err := storage.Seed(ctx, db); err != nil {
		appLogger.Fatal("could not seed products", zap.Error(err))
	}
	appLogger.Info("database ready", zap.String("path", cfg.SQLite.Path))

	prodRepo := prodRepoPkg.NewSQLiteRepository(db)
	orderRepo := orderRepoPkg.NewSQLiteRepository(db)
	revRepo := revRepoPkg.NewSQLiteRepository(db)

	prodUC := prodUCPkg.NewProductUseCase(prodRepo, appLogger)
	orderUC := orderUCPkg.NewOrderUseCase(orderRepo, appLogger)
	revUC := revUCPkg.NewReviewUseCase(revRepo, appLogger)

	pricing := cart.Pricing{
		FreeShippingThreshold: cfg.Cart.FreeShippingThreshold,
		ShippingFee:           cfg.Cart.ShippingFee,
	}
	handler := storefront.NewHandler(prodUC, orderUC, revUC, pricing, appLogger)
	router := storefront.Router(cfg, handler, appLogger)

	srv := &http.Server{
		Addr:    cfg.Server.StorefrontAddr,
		Handler: router,
	}

	go func() {
		appLogger.Info("starting storefront server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down storefront server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("shutdown error", zap.Error(err))
	}
	appLogger.Info("server stopped")
}
