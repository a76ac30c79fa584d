package main

import (
	"context"
	"fmt"
	"time"

	"github.com/freight-estimator/internal/repository/postgres"
	"github.com/freight-estimator/internal/tariff"
	"github.com/freight-estimator/internal/usecase"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var tariffCmd = &cobra.Command{
	Use:   "tariff",
	Short: "Tariff file utilities",
}

var tariffValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a tariff YAML file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTariffValidate,
}

var tariffDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the active tariff as YAML",
	Args:  cobra.NoArgs,
	RunE:  runTariffDump,
}

var tariffPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Replace route_distances in PostgreSQL with the active tariff",
	Long: `Записать расстояния активного тарифа в таблицу route_distances.
Подключение берётся из .env / переменных окружения (DB_*).`,
	Args: cobra.NoArgs,
	RunE: runTariffPush,
}

func init() {
	tariffCmd.AddCommand(tariffValidateCmd, tariffDumpCmd, tariffPushCmd)
}

func runTariffValidate(cmd *cobra.Command, args []string) error {
	t, err := tariff.LoadFile(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "OK: %d cities, %d routes\n", len(t.Cities()), t.RouteCount())
	for _, r := range t.MissingReverse() {
		fmt.Fprintf(out, "warning: no reverse entry for %s -> %s\n", r.Origin, r.Destination)
	}
	for _, r := range t.Asymmetric() {
		fmt.Fprintf(out, "warning: asymmetric distance %s <-> %s\n", r.Origin, r.Destination)
	}
	return nil
}

func runTariffDump(cmd *cobra.Command, args []string) error {
	t, err := loadTariff()
	if err != nil {
		return err
	}
	return t.WriteYAML(cmd.OutOrStdout())
}

func runTariffPush(cmd *cobra.Command, args []string) error {
	t, err := loadTariff()
	if err != nil {
		return err
	}

	db, log, closeDB, err := openDatabase()
	if err != nil {
		return err
	}
	defer closeDB()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := usecase.PushTariff(ctx, t, postgres.NewRouteRepository(db, log)); err != nil {
		return err
	}

	log.Info("Tariff pushed", zap.Int("routes", t.RouteCount()))
	fmt.Fprintf(cmd.OutOrStdout(), "Pushed %d routes\n", t.RouteCount())
	return nil
}
