package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_ObserveQuote(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)

	c.ObserveQuote("gazelle", OutcomeIssued, 38950)
	c.ObserveQuote("gazelle", OutcomeIssued, 41000)
	c.ObserveQuote("", OutcomeRejected, 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.Quotes.WithLabelValues("gazelle", OutcomeIssued)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Quotes.WithLabelValues("unknown", OutcomeRejected)))
	assert.Equal(t, 1, testutil.CollectAndCount(c.QuotePrice))
}

func TestCollector_NilSafe(t *testing.T) {
	var c *Collector
	assert.NotPanics(t, func() {
		c.ObserveQuote("kamaz", OutcomeIssued, 1)
		c.ObserveJournal("stored", 3)
		c.SetTariffRoutes(42)
	})
}

func TestCollector_RegisterTwice(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewCollector(reg)
	require.NoError(t, err)
	second, err := NewCollector(reg)
	require.NoError(t, err)

	first.ObserveJournal("stored", 2)
	second.ObserveJournal("stored", 1)
	assert.Equal(t, 3.0, testutil.ToFloat64(first.JournalWrites.WithLabelValues("stored")))
}

func TestCollector_Handler(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)
	c.SetTariffRoutes(42)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "freight_tariff_routes 42"))
}
