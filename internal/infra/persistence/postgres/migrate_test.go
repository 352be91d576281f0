package postgres

import (
	"context"
	"database/sql"
	"testing"

	"paygate/internal/infra/persistence/migrations"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DispatchesCommand(t *testing.T) {
	db := newTestDB(t)

	orig := gooseRun
	defer func() { gooseRun = orig }()

	var got string
	gooseRun = func(_ context.Context, _ *sql.DB, command string) error {
		got = command

		return nil
	}

	require.NoError(t, Migrate(context.Background(), db, MigrateStatus))
	assert.Equal(t, MigrateStatus, got)
}

func TestMigrate_WrapsFailure(t *testing.T) {
	db := newTestDB(t)

	orig := gooseRun
	defer func() { gooseRun = orig }()

	gooseRun = func(context.Context, *sql.DB, string) error { return errors.New("boom") }

	err := Migrate(context.Background(), db, MigrateUp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestMigrate_UnknownCommand(t *testing.T) {
	err := Migrate(context.Background(), newTestDB(t), "sideways")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown migration command")
}

func TestMigrations_AreEmbedded(t *testing.T) {
	entries, err := migrations.FS.ReadDir(".")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
