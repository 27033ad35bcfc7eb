package main

import (
	"context"
	"time"

	"github.com/faturo/faturo/internal/api"
	v1 "github.com/faturo/faturo/internal/api/v1"
	"github.com/faturo/faturo/internal/cache"
	"github.com/faturo/faturo/internal/config"
	"github.com/faturo/faturo/internal/logger"
	"github.com/faturo/faturo/internal/postgres"
	"github.com/faturo/faturo/internal/repository"
	"github.com/faturo/faturo/internal/service"
	"github.com/faturo/faturo/internal/types"
	"github.com/faturo/faturo/internal/validator"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	var opts []fx.Option

	// Core dependencies
	opts = append(opts,
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Cache
			cache.Initialize,

			// Postgres
			postgres.NewDB,

			// Repositories
			repository.NewPeriodRepository,
			repository.NewContractRepository,
			repository.NewCustomerRepository,
			repository.NewSnapshotRepository,
			repository.NewAssignmentRepository,
			repository.NewChargeRepository,
		),
	)

	// Service layer
	opts = append(opts,
		fx.Provide(
			service.NewServiceParams,

			service.NewSnapshotReaderService,
			service.NewProjectionBuilderService,
			service.NewPeriodResolverService,
			service.NewLifecycleBoardService,
		),
	)

	// API
	opts = append(opts,
		fx.Provide(
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(
			startServer,
		),
	)

	app := fx.New(opts...)
	app.Run()
}

func provideHandlers(
	logger *logger.Logger,
	resolverService service.PeriodResolverService,
	boardService service.LifecycleBoardService,
) api.Handlers {
	return api.Handlers{
		Order: v1.NewOrderHandler(resolverService, logger),
		Board: v1.NewBoardHandler(boardService, logger),
	}
}

func provideRouter(handlers api.Handlers) *gin.Engine {
	return api.NewRouter(handlers)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	log *logger.Logger,
) {
	mode := cfg.Deployment.Mode
	if mode == "" {
		mode = types.ModeLocal
	}

	switch mode {
	case types.ModeLocal, types.ModeAPI:
		startAPIServer(lc, r, cfg, log)
	default:
		log.Fatalf("Unknown deployment mode: %s", mode)
	}
}

func startAPIServer(
	lc fx.Lifecycle,
	r *gin.Engine,
	cfg *config.Configuration,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting API server...")
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return nil
		},
	})
}
