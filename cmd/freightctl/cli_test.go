package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/freight-estimator/internal/domain"
	"github.com/freight-estimator/internal/pkg/quotefmt"
	"github.com/freight-estimator/internal/tariff"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTariffYAML = `per_cubic_meter: 1000
vehicles:
  gazelle: 10
  kamaz: 20
cities: [A, B, C]
mirror: true
routes:
  - {from: A, to: B, km: 100}
  - {from: B, to: C, km: 50}
`

func newTestCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	cmd := &cobra.Command{}
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	return cmd, out, errOut
}

func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		tariffFile = ""
		quoteFrom, quoteTo, quoteVolume = "", "", ""
		quoteVehicle = string(domain.VehicleLight)
		quoteJSON = false
		routesFrom = ""
	})
}

func writeTariff(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tariff.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestQuoteCmd_Text(t *testing.T) {
	resetFlags(t)
	quoteFrom, quoteTo, quoteVolume, quoteVehicle = "Москва", "Казань", "2", "gazelle"

	cmd, out, _ := newTestCmd()
	require.NoError(t, runQuote(cmd, nil))

	assert.Contains(t, out.String(), "Расстояние: 820 км.")
	assert.Contains(t, out.String(), "(Газель)")
	assert.Contains(t, out.String(), quotefmt.Disclaimer)
}

func TestQuoteCmd_JSON(t *testing.T) {
	resetFlags(t)
	quoteFrom, quoteTo, quoteVolume, quoteVehicle = "Москва", "Казань", "2,5", "kamaz"
	quoteJSON = true

	cmd, out, _ := newTestCmd()
	require.NoError(t, runQuote(cmd, nil))

	var res domain.EstimateResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.Equal(t, 820, res.DistanceKm)
	assert.Equal(t, domain.VehicleHeavy, res.Vehicle)
	// 2.5*3500 + 820*70 = 8750 + 57400
	assert.Equal(t, int64(66150), res.TotalPrice)
}

func TestQuoteCmd_Errors(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		volume  string
		vehicle string
		message string
	}{
		{"missing origin", "", "Казань", "1", "gazelle", quotefmt.MsgMissingSelection},
		{"same city", "Москва", "Москва", "1", "gazelle", quotefmt.MsgSameCity},
		{"unknown city", "Москва", "Тверь", "1", "gazelle", quotefmt.MsgNoRouteData},
		{"route before volume", "Москва", "Москва", "abc", "gazelle", quotefmt.MsgSameCity},
		{"bad volume", "Москва", "Казань", "-1", "gazelle", quotefmt.MsgInvalidVolume},
		{"bad vehicle", "Москва", "Казань", "1", "truck", quotefmt.MsgUnknownVehicle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			quoteFrom, quoteTo, quoteVolume, quoteVehicle = tt.from, tt.to, tt.volume, tt.vehicle

			cmd, out, errOut := newTestCmd()
			err := runQuote(cmd, nil)

			require.ErrorIs(t, err, errQuoteRejected)
			assert.Empty(t, out.String())
			assert.Contains(t, errOut.String(), tt.message)
		})
	}
}

func TestQuoteCmd_TariffFile(t *testing.T) {
	resetFlags(t)
	tariffFile = writeTariff(t, testTariffYAML)
	quoteFrom, quoteTo, quoteVolume, quoteJSON = "C", "B", "1", true

	cmd, out, _ := newTestCmd()
	require.NoError(t, runQuote(cmd, nil))

	var res domain.EstimateResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.Equal(t, 50, res.DistanceKm)
	assert.Equal(t, int64(1500), res.TotalPrice)
}

func TestRoutesCmd(t *testing.T) {
	resetFlags(t)
	routesFrom = "Пермь"

	cmd, out, _ := newTestCmd()
	require.NoError(t, runRoutes(cmd, nil))

	assert.Contains(t, out.String(), "FROM")
	assert.Contains(t, out.String(), "Total: 6 routes")
}

func TestRoutesCmd_UnknownCity(t *testing.T) {
	resetFlags(t)
	routesFrom = "Тверь"

	cmd, _, _ := newTestCmd()
	assert.Error(t, runRoutes(cmd, nil))
}

func TestTariffValidateCmd(t *testing.T) {
	resetFlags(t)

	cmd, out, _ := newTestCmd()
	require.NoError(t, runTariffValidate(cmd, []string{writeTariff(t, testTariffYAML)}))
	assert.Contains(t, out.String(), "OK: 3 cities, 4 routes")
	assert.NotContains(t, out.String(), "warning")

	oneWay := `per_cubic_meter: 1000
vehicles: {gazelle: 10, kamaz: 20}
cities: [A, B]
routes:
  - {from: A, to: B, km: 100}
`
	cmd, out, _ = newTestCmd()
	require.NoError(t, runTariffValidate(cmd, []string{writeTariff(t, oneWay)}))
	assert.Contains(t, out.String(), "warning: no reverse entry for B -> A")

	cmd, _, _ = newTestCmd()
	err := runTariffValidate(cmd, []string{writeTariff(t, "per_cubic_meter: 0\n")})
	assert.ErrorIs(t, err, tariff.ErrInvalidTariff)
}

func TestTariffDumpCmd_RoundTrip(t *testing.T) {
	resetFlags(t)

	cmd, out, _ := newTestCmd()
	require.NoError(t, runTariffDump(cmd, nil))

	parsed, err := tariff.Parse(out.Bytes())
	require.NoError(t, err)
	assert.Equal(t, tariff.Default().RouteCount(), parsed.RouteCount())
	assert.Equal(t, tariff.Default().Cities(), parsed.Cities())
}
