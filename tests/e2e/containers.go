//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"stelwing-booking/internal/infra/db"
	"stelwing-booking/internal/pkg/config"
	"stelwing-booking/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	pgUser     = "booking"
	pgPassword = "booking-e2e"
	pgPort     = nat.Port("5432/tcp")
	redisPort  = nat.Port("6379/tcp")
)

// endpoint of a started container as seen from the test process
type endpoint struct {
	Host string
	Port nat.Port
}

func (e endpoint) Addr() string { return e.Host + ":" + e.Port.Port() }

// shared lazily-started container, one per test binary
type sharedContainer struct {
	once sync.Once
	ep   endpoint
	err  error
}

var (
	postgres sharedContainer
	redis    sharedContainer
)

func (sc *sharedContainer) get(t *testing.T, name string, req testcontainers.ContainerRequest, port nat.Port) endpoint {
	t.Helper()
	sc.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		var c testcontainers.Container
		c, sc.err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		if sc.err != nil {
			return
		}
		// ryuk reaps the container when the binary exits; no per-test terminate
		sc.ep, sc.err = containerEndpoint(ctx, c, port)
		if sc.err == nil {
			slog.Info("container ready", "name", name, "addr", sc.ep.Addr())
		}
	})
	require.NoError(t, sc.err, "failed to start %s container", name)
	return sc.ep
}

func containerEndpoint(ctx context.Context, c testcontainers.Container, port nat.Port) (endpoint, error) {
	mapped, err := c.MappedPort(ctx, port)
	if err != nil {
		return endpoint{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return endpoint{}, err
	}
	return endpoint{Host: host, Port: mapped}, nil
}

func postgresEndpoint(t *testing.T) endpoint {
	return postgres.get(t, "postgres", testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{string(pgPort)},
		Env: map[string]string{
			"POSTGRES_USER":     pgUser,
			"POSTGRES_PASSWORD": pgPassword,
			"POSTGRES_DB":       "postgres",
		},
		Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
		// durability off, connections up for the concurrent claim tests
		Cmd: []string{
			"postgres",
			"-c", "fsync=off",
			"-c", "synchronous_commit=off",
			"-c", "full_page_writes=off",
			"-c", "max_connections=300",
		},
		WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
			return adminDSN(endpoint{Host: host, Port: port})
		}).WithStartupTimeout(time.Minute),
		Labels: map[string]string{"purpose": "stelwing-booking-e2e"},
	}, pgPort)
}

func redisEndpoint(t *testing.T) endpoint {
	return redis.get(t, "redis", testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{string(redisPort)},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(time.Minute),
		Labels:       map[string]string{"purpose": "stelwing-booking-e2e"},
	}, redisPort)
}

func adminDSN(ep endpoint) string {
	return fmt.Sprintf("postgres://%s:%s@%s/postgres?sslmode=disable", pgUser, pgPassword, ep.Addr())
}

// createDatabase gives the calling test binary its own database, migrated and
// seeded, and drops it on cleanup.
func createDatabase(t *testing.T, ep endpoint) (*pgxpool.Pool, config.DBConfig) {
	t.Helper()
	name := "booking_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, adminDSN(ep))
	require.NoError(t, err)
	defer admin.Close()

	// CREATE DATABASE races on template1 when several binaries start together
	for attempt := 1; ; attempt++ {
		_, err = admin.Exec(ctx, "CREATE DATABASE "+name)
		if err == nil || attempt == 5 {
			break
		}
		time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
	}
	require.NoError(t, err, "failed to create database %s", name)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, adminDSN(ep))
		if err != nil {
			slog.Warn("drop database: connect failed", "database", name, "error", err)
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("drop database failed", "database", name, "error", err)
		}
	})

	cfg := config.DBConfig{
		Host:        ep.Host,
		Port:        ep.Port.Port(),
		User:        pgUser,
		Password:    pgPassword,
		DBName:      name,
		SSLMode:     "disable",
		TimeZone:    "UTC",
		MaxConns:    50,
		LockTimeout: 3 * time.Second,
	}
	pool, err := db.Connect(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, migrate(ctx, pool))
	require.NoError(t, dbtest.SeedReferenceData(pool))
	return pool, cfg
}

// migrate applies migrations/*.sql in name order. go test runs in the package
// directory, so the migrations dir is searched for upwards.
func migrate(ctx context.Context, pool *pgxpool.Pool) error {
	dir, err := findUp("migrations")
	if err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return err
	}
	sort.Strings(files)
	for _, f := range files {
		sql, err := os.ReadFile(f)
		if err != nil {
			return err
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("migration %s: %w", filepath.Base(f), err)
		}
	}
	return nil
}

func findUp(name string) (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		cand := filepath.Join(dir, name)
		if info, err := os.Stat(cand); err == nil && info.IsDir() {
			return cand, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%s directory not found", name)
		}
		dir = parent
	}
}
