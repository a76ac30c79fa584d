// Package metrics собирает Prometheus метрики сервиса: котировки и HTTP запросы.
package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Исходы расчёта котировки
const (
	OutcomeIssued   = "issued"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Collector - набор метрик сервиса
type Collector struct {
	gatherer prometheus.Gatherer

	Quotes        *prometheus.CounterVec
	QuotePrice    *prometheus.HistogramVec
	HTTPRequests  *prometheus.CounterVec
	HTTPDurations *prometheus.HistogramVec
	JournalWrites *prometheus.CounterVec
	TariffRoutes  prometheus.Gauge
}

// NewCollector регистрирует метрики в переданном registerer; nil - глобальный реестр
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	quotes, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "freight_quotes_total",
		Help: "Total number of quote calculations, labeled by vehicle class and outcome.",
	}, []string{"vehicle", "outcome"}), "freight_quotes_total")
	if err != nil {
		return nil, err
	}

	price, err := registerHistogramVec(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "freight_quote_price_rub",
		Help:    "Distribution of issued quote totals in rubles.",
		Buckets: []float64{10000, 25000, 50000, 75000, 100000, 150000, 200000, 300000, 500000},
	}, []string{"vehicle"}), "freight_quote_price_rub")
	if err != nil {
		return nil, err
	}

	requests, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of handled HTTP requests, labeled by method, route and status code.",
	}, []string{"method", "route", "code"}), "http_requests_total")
	if err != nil {
		return nil, err
	}

	durations, err := registerHistogramVec(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"}), "http_request_duration_seconds")
	if err != nil {
		return nil, err
	}

	journal, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "freight_journal_events_total",
		Help: "Quote journal events processed by the worker, labeled by result.",
	}, []string{"result"}), "freight_journal_events_total")
	if err != nil {
		return nil, err
	}

	routes := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "freight_tariff_routes",
		Help: "Number of directed routes in the loaded tariff.",
	})
	if err := reg.Register(routes); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return nil, err
		}
		existing, ok := are.ExistingCollector.(prometheus.Gauge)
		if !ok {
			return nil, fmt.Errorf("collector freight_tariff_routes already registered with incompatible type")
		}
		routes = existing
	}

	return &Collector{
		gatherer:      gatherer,
		Quotes:        quotes,
		QuotePrice:    price,
		HTTPRequests:  requests,
		HTTPDurations: durations,
		JournalWrites: journal,
		TariffRoutes:  routes,
	}, nil
}

// ObserveQuote учитывает результат расчёта. Безопасен для nil коллектора.
func (c *Collector) ObserveQuote(vehicle, outcome string, total int64) {
	if c == nil {
		return
	}
	if vehicle == "" {
		vehicle = "unknown"
	}
	c.Quotes.WithLabelValues(vehicle, outcome).Inc()
	if outcome == OutcomeIssued {
		c.QuotePrice.WithLabelValues(vehicle).Observe(float64(total))
	}
}

// ObserveJournal учитывает обработанные воркером события
func (c *Collector) ObserveJournal(result string, n int) {
	if c == nil || n == 0 {
		return
	}
	c.JournalWrites.WithLabelValues(result).Add(float64(n))
}

// SetTariffRoutes выставляет размер загруженного тарифа
func (c *Collector) SetTariffRoutes(n int) {
	if c == nil {
		return
	}
	c.TariffRoutes.Set(float64(n))
}

// Handler отдаёт /metrics
func (c *Collector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}
