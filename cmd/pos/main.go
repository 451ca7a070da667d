package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/grocodev/groco/config"
	"github.com/grocodev/groco/internal/admin"
	catRepoPkg "github.com/grocodev/groco/internal/catalog/repository"
	catUCPkg "github.com/grocodev/groco/internal/catalog/usecase"
	"github.com/grocodev/groco/internal/register"
	"github.com/grocodev/groco/internal/seed"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	appLogger, err := buildLogger(cfg)
	if err != nil {
		log.Fatalf("could not build logger: %v", err)
	}
	defer appLogger.Sync()

	// 3. Initialize Stores
	catRepo := catRepoPkg.NewMemoryRepository()
	catUC := catUCPkg.NewCatalogUseCase(catRepo, appLogger)

	reg := register.New(cfg.Register.OpeningFloat, appLogger)

	admins := admin.NewDirectory(appLogger)
	if err := admins.Bootstrap(); err != nil {
		appLogger.Fatal("could not bootstrap administrator directory", zap.Error(err))
	}

	// 4. Seed demo catalog
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if cfg.Seed.DemoData {
		if err := seed.Catalog(ctx, catRepo, time.Now()); err != nil {
			appLogger.Fatal("could not seed catalog", zap.Error(err))
		}
		appLogger.Info("demo catalog seeded", zap.Int("articles", len(catRepo.List(ctx))))
	}

	appLogger.Info("register opened",
		zap.String("opening_float", cfg.Register.OpeningFloat.StringFixed(2)),
		zap.String("tax_rate", cfg.Register.TaxRate.String()),
	)

	// 5. Run the terminal front-end
	s := newSession(os.Stdin, os.Stdout, cfg, appLogger, catUC, catRepo, reg, admins)
	if err := s.run(ctx); err != nil {
		appLogger.Fatal("terminal session failed", zap.Error(err))
	}

	appLogger.Info("register closed")
}

func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.Server.AppEnv == "dev" || cfg.Server.AppEnv == "development" {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	if lvl, err := zapcore.ParseLevel(cfg.Logger.Level); err == nil {
		zc.Level = zap.NewAtomicLevelAt(lvl)
	}
	zc.Encoding = cfg.Logger.Encoding
	zc.DisableCaller = cfg.Logger.DisableCaller
	zc.DisableStacktrace = cfg.Logger.DisableStacktrace
	return zc.Build()
}
