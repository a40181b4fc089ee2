package postgres_test

import (
	"context"
	"database/sql"
	root "mirrorbot"
	"mirrorbot/pkg/storage/postgres"
	"os"
	"testing"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestMain points goose at the migrations embedded in the root package, the
// same set the migrate command applies in production. Doing this once here
// keeps the parallel tests below from touching goose's globals.
func TestMain(m *testing.M) {
	goose.SetBaseFS(root.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

// newTestStorage boots a throwaway postgres container, connects to it and
// applies the embedded schema migrations. All cleanup is registered on t.
func newTestStorage(t *testing.T) *postgres.PgSQL {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "postgres",
				"POSTGRES_DB":       "mirrorbot_test",
			},
			WaitingFor: wait.ForListeningPort("5432"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	pgSQL, err := postgres.New(ctx, postgres.Options{
		Username:           "postgres",
		Password:           "postgres",
		Host:               host,
		Port:               port.Int(),
		Database:           "mirrorbot_test",
		SslMode:            "disable",
		ConnMaxLifetime:    time.Minute,
		ConnMaxIdleTime:    time.Minute,
		MaxOpenConnections: 5,
		MaxIdleConnections: 5,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgSQL.Close() })

	require.NoError(t, goose.Up(pgSQL.DB.(*sql.DB), "migrations"))

	return pgSQL
}
