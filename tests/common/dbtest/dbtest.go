//go:build e2e

// Package dbtest provides the shared Postgres container and per-test
// databases for e2e tests. One container serves the whole test process;
// every test gets its own freshly migrated database inside it so tests
// never see each other's rows.
package dbtest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for wait.ForSQL and migrations
	"github.com/kelseyhightower/envconfig"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"reservation-service/internal/infra/db"
	"reservation-service/internal/pkg/config"
)

type containerOptions struct {
	Image    string `envconfig:"TEST_POSTGRES_IMAGE" default:"postgres:17"`
	User     string `envconfig:"TEST_POSTGRES_USER" default:"test"`
	Password string `envconfig:"TEST_POSTGRES_PASSWORD" default:"testpass"`
}

var (
	containerOnce sync.Once
	container     testcontainers.Container
	containerHost string
	containerPort nat.Port
	options       containerOptions
)

// NewPool starts the shared container if needed, creates a private
// database for this test, migrates it, and returns a pool bound to it.
// The database is dropped on cleanup.
func NewPool(t *testing.T) (*pgxpool.Pool, config.DBConfig) {
	t.Helper()
	startContainerOnce(t)

	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")
	createDatabase(t, dbName)

	cfg := config.DBConfig{
		Host:        containerHost,
		Port:        uint16(containerPort.Int()),
		User:        options.User,
		Password:    options.Password,
		DBName:      dbName,
		MaxConnects: 5,
	}

	require.NoError(t, db.Migrate(cfg.URL()), "migration failed")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	pool, err := db.Connect(ctx, cfg)
	require.NoError(t, err, "failed to connect to test database")
	t.Cleanup(pool.Close)

	return pool, cfg
}

func adminURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		options.User, options.Password, containerHost, containerPort.Port())
}

// createDatabase retries creation because concurrent CREATE DATABASE
// statements can deadlock on the template database.
func createDatabase(t *testing.T, dbName string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	adminPool, err := pgxpool.New(ctx, adminURL())
	require.NoError(t, err, "admin connection failed")
	defer adminPool.Close()

	var createErr error
	for attempt := range 5 {
		if attempt > 0 {
			wait := min(time.Duration(500+attempt*500)*time.Millisecond, 3*time.Second)
			time.Sleep(wait)
		}
		_, createErr = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
		if createErr == nil {
			break
		}
	}
	require.NoError(t, createErr, "failed to create test database")

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cleanupCancel()

		cleanupPool, err := pgxpool.New(cleanupCtx, adminURL())
		if err != nil {
			slog.Warn("cleanup connection failed", "database", dbName, "error", err.Error())
			return
		}
		defer cleanupPool.Close()

		// Kick out any straggling connections before the drop.
		_, _ = cleanupPool.Exec(cleanupCtx,
			`SELECT pg_terminate_backend(pid) FROM pg_stat_activity WHERE datname = $1 AND pid <> pg_backend_pid()`,
			dbName)
		if _, err := cleanupPool.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+dbName); err != nil {
			slog.Warn("failed to drop test database", "database", dbName, "error", err.Error())
		}
	})
}

func startContainerOnce(t *testing.T) {
	t.Helper()
	containerOnce.Do(func() {
		require.NoError(t, envconfig.Process("", &options))

		req := testcontainers.ContainerRequest{
			Image:        options.Image,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     options.User,
				"POSTGRES_PASSWORD": options.Password,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{
				"/var/lib/postgresql/data": "rw,size=512m",
			},
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "full_page_writes=off",
				"-c", "synchronous_commit=off",
				"-c", "max_connections=200",
				"-c", "log_statement=none",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
					options.User, options.Password, host, port.Port())
			}).WithStartupTimeout(60 * time.Second),
			Labels: map[string]string{"purpose": "reservation-e2e"},
		}

		ctx, cancel := context.WithTimeout(context.Background(), 180*time.Second)
		defer cancel()

		var err error
		container, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		require.NoError(t, err, "failed to start postgres container")

		containerPort, err = container.MappedPort(ctx, "5432/tcp")
		require.NoError(t, err)
		containerHost, err = container.Host(ctx)
		require.NoError(t, err)
	})
}
