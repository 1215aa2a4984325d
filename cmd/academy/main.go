package main

import (
	"context"
	"log/slog"
	"os"

	"academy/config"
	"academy/internal/delivery"
	"academy/internal/delivery/api"
	apimiddleware "academy/internal/delivery/api/middleware"
	"academy/internal/delivery/api/router/handler"
	"academy/internal/errors"
	"academy/internal/infra/auth"
	logs "academy/internal/infra/log"
	"academy/internal/infra/metrics"
	"academy/internal/infra/persistence/postgres"
	"academy/internal/infra/pubsub"
	"academy/internal/infra/storage"
	"academy/internal/usecase"
	"academy/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			bootstrapAdmin,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			newDBPinger,
			storage.New,
			pubsub.NewEventPublisher,
		),
		metrics.Module,
	)
}

// newDBPinger exposes the primary connection pool to the health check.
func newDBPinger(db *gorm.DB) (handler.Pinger, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "get sql.DB from gorm")
	}

	return sqlDB, nil
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAdminRepository,
			postgres.NewSettingRepository,
			postgres.NewTransactionManager,
			postgres.NewProgramRepository,
			postgres.NewCoachRepository,
			postgres.NewTestimonialRepository,
			postgres.NewFacilityRepository,
			postgres.NewGalleryRepository,
			postgres.NewContactRepository,
			postgres.NewStudentRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewSettingService,
			impl.NewUploadService,
			impl.NewProgramService,
			impl.NewCoachService,
			impl.NewTestimonialService,
			impl.NewFacilityService,
			impl.NewGalleryService,
			impl.NewContactService,
			impl.NewStudentService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHealthHandler,
			handler.NewAuthHandler,
			handler.NewSettingHandler,
			handler.NewUploadHandler,
			handler.NewProgramHandler,
			handler.NewCoachHandler,
			handler.NewTestimonialHandler,
			handler.NewFacilityHandler,
			handler.NewGalleryHandler,
			handler.NewContactHandler,
			handler.NewStudentHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// bootstrapAdmin provisions the configured super admin once the database is reachable.
func bootstrapAdmin(lc fx.Lifecycle, authUC usecase.AuthUsecase) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return authUC.EnsureBootstrapAdmin(ctx)
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
