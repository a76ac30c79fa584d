package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/freight-estimator/internal/domain"
	"github.com/spf13/cobra"
)

var routesFrom string

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List routes known to the tariff",
	Args:  cobra.NoArgs,
	RunE:  runRoutes,
}

func init() {
	routesCmd.Flags().StringVar(&routesFrom, "from", "", "only routes from this city")
}

func runRoutes(cmd *cobra.Command, args []string) error {
	t, err := loadTariff()
	if err != nil {
		return err
	}

	routes := t.Routes()
	if routesFrom != "" {
		origin := domain.City(routesFrom)
		if !t.HasCity(origin) {
			return fmt.Errorf("unknown city %q", routesFrom)
		}
		routes = t.RoutesFrom(origin)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FROM\tTO\tKM")
	for _, r := range routes {
		fmt.Fprintf(w, "%s\t%s\t%d\n", r.Origin, r.Destination, r.DistanceKm)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %d routes\n", len(routes))
	return nil
}
