package postgres_test

import (
	"context"
	"database/sql"
	"mirrorbot/pkg/storage/postgres"
	"testing"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/riverqueue/river/rivertest"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
)

// probeArgs is a minimal job payload for exercising AddJob.
type probeArgs struct{}

func (probeArgs) Kind() string { return "probe" }

// prepareQueueSchema applies the river queue migrations on top of the
// application schema.
func prepareQueueSchema(t *testing.T, pg *postgres.PgSQL) {
	t.Helper()

	migrator, err := rivermigrate.New(riverdatabasesql.New(pg.DB.(*sql.DB)), nil)
	require.NoError(t, err)

	_, err = migrator.Migrate(t.Context(), rivermigrate.DirectionUp, nil)
	require.NoError(t, err)
}

func TestPgSQL_AddJob(t *testing.T) {
	t.Parallel()

	pg := newTestStorage(t)
	prepareQueueSchema(t, pg)
	ctx := context.Background()

	// The transactional case runs first so its rollback leaves the queue
	// empty for the pool case below.
	t.Run("within a transaction inserts through the tx", func(t *testing.T) {
		txStorage, err := pg.Begin(ctx)
		require.NoError(t, err)
		defer func() { _ = txStorage.Rollback() }()

		inserted, err := txStorage.AddJob(ctx, probeArgs{}, &river.InsertOpts{})
		require.NoError(t, err)
		require.True(t, inserted)

		tx := txStorage.(*postgres.PgSQL).DB.(*sql.Tx)
		rivertest.RequireInsertedTx[*riverdatabasesql.Driver](ctx, t, tx, &probeArgs{}, nil)
	})

	t.Run("on the pool inserts an available job", func(t *testing.T) {
		inserted, err := pg.AddJob(ctx, probeArgs{}, &river.InsertOpts{})
		require.NoError(t, err)
		require.True(t, inserted)

		job := rivertest.RequireInserted[*riverdatabasesql.Driver](
			ctx, t, riverdatabasesql.New(pg.DB.(*sql.DB)), &probeArgs{}, nil)
		require.Equal(t, rivertype.JobStateAvailable, job.State)
	})
}
