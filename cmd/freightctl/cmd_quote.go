package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/freight-estimator/internal/domain"
	"github.com/freight-estimator/internal/estimator"
	"github.com/freight-estimator/internal/pkg/quotefmt"
	"github.com/spf13/cobra"
)

var (
	quoteFrom    string
	quoteTo      string
	quoteVolume  string
	quoteVehicle string
	quoteJSON    bool
)

// errQuoteRejected - расчёт отклонён, текст уже выведен пользователю
var errQuoteRejected = errors.New("quote rejected")

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Estimate freight cost for a route",
	Long: `Рассчитать стоимость перевозки.

Пример:
  freightctl quote --from Москва --to Казань --volume 2,5 --vehicle gazelle`,
	Args: cobra.NoArgs,
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVar(&quoteFrom, "from", "", "origin city")
	quoteCmd.Flags().StringVar(&quoteTo, "to", "", "destination city")
	quoteCmd.Flags().StringVar(&quoteVolume, "volume", "", "cargo volume in m³ (comma or dot as decimal separator)")
	quoteCmd.Flags().StringVar(&quoteVehicle, "vehicle", string(domain.VehicleLight), "vehicle class: gazelle|kamaz")
	quoteCmd.Flags().BoolVar(&quoteJSON, "json", false, "print result as JSON")
}

func runQuote(cmd *cobra.Command, args []string) error {
	t, err := loadTariff()
	if err != nil {
		return err
	}
	est := estimator.New(t)

	req := domain.EstimateRequest{
		Origin:      domain.City(quoteFrom),
		Destination: domain.City(quoteTo),
	}

	// Ошибки маршрута важнее ошибки объёма
	if _, err := est.CheckRoute(req.Origin, req.Destination); err != nil {
		return reportQuoteError(cmd, err)
	}

	req.VolumeM3, err = estimator.ParseVolume(quoteVolume)
	if err != nil {
		return reportQuoteError(cmd, err)
	}

	req.Vehicle, err = domain.ParseVehicleClass(quoteVehicle)
	if err != nil {
		return reportQuoteError(cmd, err)
	}

	res, err := est.Estimate(req)
	if err != nil {
		return reportQuoteError(cmd, err)
	}

	out := cmd.OutOrStdout()
	if quoteJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	fmt.Fprintln(out, quotefmt.Summary(res))
	fmt.Fprintln(out, quotefmt.Disclaimer)
	return nil
}

func reportQuoteError(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), quotefmt.ErrorMessage(err))
	return fmt.Errorf("%w: %v", errQuoteRejected, err)
}
