// Command foodorder runs both the customer storefront and the admin
// back-office in one process, sharing a single database connection.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/hnthao/foodorder/config"
	"github.com/hnthao/foodorder/internal/admin"
	"github.com/hnthao/foodorder/internal/auth"
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
	"golang.org/x/sync/errgroup"
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

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
	storeHandler := storefront.NewHandler(prodUC, orderUC, revUC, pricing, appLogger)
	storeSrv := &http.Server{
		Addr:    cfg.Server.StorefrontAddr,
		Handler: storefront.Router(cfg, storeHandler, appLogger),
	}

	creds := auth.CredentialsFromConfig(cfg.Admin)
	adminHandler := admin.NewHandler(creds, prodUC, orderUC, revUC, appLogger)
	adminSrv := &http.Server{
		Addr:    cfg.Server.AdminAddr,
		Handler: admin.Router(cfg, adminHandler, appLogger),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		appLogger.Info("starting storefront server", zap.String("addr", storeSrv.Addr))
		if err := storeSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		appLogger.Info("starting admin server", zap.String("addr", adminSrv.Addr))
		if err := adminSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		appLogger.Info("shutting down servers...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		storeErr := storeSrv.Shutdown(shutdownCtx)
		adminErr := adminSrv.Shutdown(shutdownCtx)
		if storeErr != nil {
			return storeErr
		}
		return adminErr
	})

	if err := g.Wait(); err != nil {
		appLogger.Fatal("server error", zap.Error(err))
	}
	appLogger.Info("servers stopped")
}
