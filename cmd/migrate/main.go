package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"paygate/config"
	logs "paygate/internal/infra/log"
	"paygate/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type migrateCommand string

type runParams struct {
	fx.In
	fx.Lifecycle

	Command migrateCommand
	DB      *gorm.DB
	Logger  *slog.Logger
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [up|down|status]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	command := postgres.MigrateUp
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Supply(migrateCommand(command)),
		fx.Invoke(run),
	)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		slog.Error("Migration failed", slog.String("command", command), slog.Any("error", err))
		os.Exit(1)
	}
	if err := app.Stop(ctx); err != nil {
		slog.Error("Failed to close database", slog.Any("error", err))
		os.Exit(1)
	}
}

// run is registered after postgres.New, so the connection is verified first.
func run(params runParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			params.Logger.Info("Running migrations", slog.String("command", string(params.Command)))

			return postgres.Migrate(ctx, params.DB, string(params.Command))
		},
	})
}
