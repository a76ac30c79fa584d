package main

import (
	"context"
	"fmt"
	"time"

	"github.com/freight-estimator/internal/config"
	"github.com/freight-estimator/internal/pkg/logger"
	"github.com/freight-estimator/internal/repository/postgres"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrationsPath string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending PostgreSQL migrations",
	Long: `Применить миграции из каталога (по умолчанию ./migrations).
Уже применённые версии пропускаются, подключение берётся из .env / DB_*.`,
	Args: cobra.NoArgs,
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().StringVar(&migrationsPath, "dir", "migrations", "directory with *.up.sql files")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	db, _, closeDB, err := openDatabase()
	if err != nil {
		return err
	}
	defer closeDB()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	applied, err := db.Migrate(ctx, migrationsPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(applied) == 0 {
		fmt.Fprintln(out, "Schema is up to date")
		return nil
	}
	for _, f := range applied {
		fmt.Fprintf(out, "Applied migration: %s\n", f)
	}
	return nil
}

// openDatabase подключается к PostgreSQL по конфигурации сервиса
func openDatabase() (*postgres.DB, *zap.Logger, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		return nil, nil, nil, err
	}

	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		return nil, nil, nil, err
	}

	return db, log, func() {
		_ = db.Close()
		logger.Sync(log)
	}, nil
}
