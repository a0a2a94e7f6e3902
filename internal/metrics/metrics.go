// Package metrics records quote activity for Prometheus.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/nulln0ne/amm-quoter/pkg/uniswapv2"
)

// Metrics holds the quote collectors. A nil *Metrics records nothing.
type Metrics struct {
	quotes  *prometheus.CounterVec
	latency *prometheus.HistogramVec
}

// New builds the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		quotes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "amm",
			Subsystem: "quoter",
			Name:      "quotes_total",
			Help:      "Quotes computed, segmented by operation and outcome.",
		}, []string{"operation", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "amm",
			Subsystem: "quoter",
			Name:      "quote_duration_seconds",
			Help:      "Latency of quote operations including reserve reads.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
	reg.MustRegister(m.quotes, m.latency)
	return m
}

// Observe records one quote operation that finished with err after d.
func (m *Metrics) Observe(operation string, err error, d time.Duration) {
	if m == nil {
		return
	}
	m.quotes.WithLabelValues(operation, Outcome(err)).Inc()
	m.latency.WithLabelValues(operation).Observe(d.Seconds())
}

// Outcome maps err to a stable label value.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, uniswapv2.ErrInvalidReserve):
		return "invalid_reserve"
	case errors.Is(err, uniswapv2.ErrInvalidFee):
		return "invalid_fee"
	case errors.Is(err, uniswapv2.ErrOverflow):
		return "overflow"
	case errors.Is(err, uniswapv2.ErrDivisionByZero):
		return "division_by_zero"
	case errors.Is(err, uniswapv2.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, uniswapv2.ErrInsufficientLiquidity):
		return "insufficient_liquidity"
	default:
		return "error"
	}
}
