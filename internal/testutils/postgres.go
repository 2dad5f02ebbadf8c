package testutils

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/linskybing/design-review/internal/config/db"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// SetupPostgres returns a migrated gorm connection. TEST_DB_DSN points at
// an existing database; otherwise a postgres:15 container is started and
// terminated when the test ends.
func SetupPostgres(t *testing.T) *gorm.DB {
	t.Helper()

	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		gdb, err := db.Open(dsn)
		require.NoError(t, err)
		resetTables(t, gdb)
		return gdb
	}

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_USER":     "test",
			"POSTGRES_DB":       "design_review",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	host, err := pg.Host(ctx)
	require.NoError(t, err)
	port, err := pg.MappedPort(ctx, "5432")
	require.NoError(t, err)
	dsn := fmt.Sprintf("postgres://test:test@%s:%s/design_review?sslmode=disable", host, port.Port())

	// retry db connect
	var gdb *gorm.DB
	for i := 0; i < 10; i++ {
		if gdb, err = db.Open(dsn); err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

func resetTables(t *testing.T, gdb *gorm.DB) {
	t.Helper()
	err := gdb.Exec(`TRUNCATE audit_logs, review_workflows, annotation_replies, annotations,
		drawing_versions, drawings, projects, users RESTART IDENTITY CASCADE`).Error
	require.NoError(t, err)
}
