package main

import (
	"context"
	"log/slog"

	"cuida/config"
	logs "cuida/internal/infra/log"
	"cuida/internal/infra/persistence/postgres"
	"cuida/internal/usecase"
	"cuida/internal/usecase/impl"
	"cuida/internal/validate"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		fx.Invoke(
			runMigrations,
			checkUsecases,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		validate.New,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewServiceRepository,
			postgres.NewProfileRepository,
			postgres.NewFeedbackRepository,
			postgres.NewOrderRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewServiceService,
			impl.NewProfileService,
			impl.NewFeedbackService,
			impl.NewOrderService,
		),
	)
}

// runMigrations syncs the database schema on startup.
func runMigrations(db *gorm.DB, logger *slog.Logger, shutdowner fx.Shutdowner) error {
	logger.Info("Running database migrations")

	if err := postgres.Migrate(db); err != nil {
		logger.Error("Migration failed", "error", err)

		return err
	}

	logger.Info("Database schema is up to date")

	return shutdowner.Shutdown()
}

type usecaseParams struct {
	fx.In

	Accounts usecase.AccountUsecase
	Services usecase.ServiceUsecase
	Profiles usecase.ProfileUsecase
	Feedback usecase.FeedbackUsecase
	Orders   usecase.OrderUsecase
}

// checkUsecases forces the full dependency graph to build so a wiring
// mistake fails at startup instead of on first use.
func checkUsecases(params usecaseParams, logger *slog.Logger) {
	logger.Info("Usecases initialized")
}
