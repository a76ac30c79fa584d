// Package main - консольный калькулятор стоимости перевозок.
// Работает без инфраструктуры: тариф встроенный либо из YAML файла.
package main

import (
	"fmt"
	"os"

	"github.com/freight-estimator/internal/tariff"
	"github.com/spf13/cobra"
)

var (
	// tariffFile - путь к YAML тарифу, пусто - встроенный
	tariffFile string
)

var rootCmd = &cobra.Command{
	Use:           "freightctl",
	Short:         "Freight cost estimator CLI",
	Long:          "Расчёт стоимости грузоперевозок между городами и работа с файлами тарифа.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&tariffFile, "tariff", "", "path to tariff YAML file (builtin when empty)")

	rootCmd.AddCommand(quoteCmd, routesCmd, tariffCmd)
}

// loadTariff возвращает тариф из --tariff или встроенный
func loadTariff() (*tariff.Tariff, error) {
	if tariffFile == "" {
		return tariff.Default(), nil
	}
	return tariff.LoadFile(tariffFile)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
