package testhelpers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/freight-estimator/internal/config"
	"github.com/freight-estimator/internal/repository/postgres"
)

// Таблицы, которые очищаются между тестами
var tables = []string{"quote_journal", "route_distances"}

// TestDB - подключение к тестовой базе с применёнными миграциями
type TestDB struct {
	DB     *postgres.DB
	Logger *zap.Logger
}

// SetupTestDB подключается к тестовой базе (TEST_DB_*) и применяет миграции.
// Если база недоступна, тест пропускается.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	cfg := config.DatabaseConfig{
		Host:     getEnv("TEST_DB_HOST", "localhost"),
		Port:     getEnvInt("TEST_DB_PORT", 5433),
		User:     getEnv("TEST_DB_USER", "postgres"),
		Password: getEnv("TEST_DB_PASSWORD", "postgres"),
		DBName:   getEnv("TEST_DB_NAME", "freight_test"),
		SSLMode:  getEnv("TEST_DB_SSLMODE", "disable"),
	}

	// Несколько попыток с удвоением паузы: контейнер с базой может ещё подниматься
	var (
		conn *sqlx.DB
		err  error
	)
	retries := getEnvInt("TEST_DB_RETRIES", 3)
	delay := 200 * time.Millisecond
	for i := 0; i < retries; i++ {
		conn, err = sqlx.Connect("postgres", cfg.DSN())
		if err == nil {
			break
		}
		if i < retries-1 {
			t.Logf("Database not ready (attempt %d/%d), waiting %v...", i+1, retries, delay)
			time.Sleep(delay)
			delay *= 2
		}
	}
	if err != nil {
		t.Skipf("PostgreSQL not available for integration tests after %d attempts: %v", retries, err)
	}

	var version string
	if err := conn.Get(&version, "SHOW server_version"); err == nil {
		t.Logf("PostgreSQL version: %s", version)
	}

	logger := zap.NewNop()
	if testing.Verbose() {
		if l, err := zap.NewDevelopment(); err == nil {
			logger = l
		}
	}

	db := postgres.NewDBForTest(conn, logger)

	dir, err := migrationsDir()
	if err != nil {
		conn.Close()
		t.Fatalf("locate migrations: %v", err)
	}
	if _, err := db.Migrate(context.Background(), dir); err != nil {
		conn.Close()
		t.Fatalf("apply migrations: %v", err)
	}

	return &TestDB{DB: db, Logger: logger}
}

// Close закрывает соединение
func (tdb *TestDB) Close() {
	if tdb.DB != nil {
		tdb.DB.DB.Close()
	}
}

// Cleanup очищает таблицы между тестами
func (tdb *TestDB) Cleanup(ctx context.Context) error {
	for _, table := range tables {
		if _, err := tdb.DB.ExecContext(ctx, fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY", table)); err != nil {
			return fmt.Errorf("truncate %s: %w", table, err)
		}
	}
	return nil
}

// migrationsDir ищет каталог migrations вверх от текущего, до go.mod
func migrationsDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return filepath.Join(dir, "migrations"), nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found")
		}
		dir = parent
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil && n > 0 {
		return n
	}
	return defaultValue
}
