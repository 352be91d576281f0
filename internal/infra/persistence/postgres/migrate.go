package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"paygate/config"
	"paygate/internal/errors"
	"paygate/internal/infra/persistence/migrations"

	"github.com/pressly/goose/v3"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Migration commands understood by Migrate.
const (
	MigrateUp     = "up"
	MigrateDown   = "down"
	MigrateStatus = "status"
)

// gooseRun is a seam for testing the goose commands.
var gooseRun = func(ctx context.Context, db *sql.DB, command string) error {
	switch command {
	case MigrateUp:
		return goose.UpContext(ctx, db, ".")
	case MigrateDown:
		return goose.DownContext(ctx, db, ".")
	case MigrateStatus:
		return goose.StatusContext(ctx, db, ".")
	default:
		return errors.Errorf("unknown migration command %q", command)
	}
}

// Migrate applies the embedded migrations with the given goose command.
func Migrate(ctx context.Context, db *gorm.DB, command string) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "set goose dialect")
	}

	if err := gooseRun(ctx, sqlDB, command); err != nil {
		return errors.Wrapf(err, "migrate %s", command)
	}

	return nil
}

// MigrateParams defines the dependencies of RegisterMigrations.
type MigrateParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
}

// RegisterMigrations runs "up" on start when migrate.onStart is set.
// Registered after New, so the ping hook has already run.
func RegisterMigrations(params MigrateParams) {
	if !params.Config.Migrate.OnStart {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			params.Logger.Info("Applying database migrations")

			return Migrate(ctx, params.DB, MigrateUp)
		},
	})
}
