package metrics

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/nulln0ne/amm-quoter/pkg/uniswapv2"
)

func TestObserve(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.Observe("amount_out", nil, time.Millisecond)
	m.Observe("amount_out", nil, time.Millisecond)
	m.Observe("amount_out", fmt.Errorf("wrapped: %w", uniswapv2.ErrOverflow), time.Millisecond)

	require.Equal(t, 2.0, testutil.ToFloat64(m.quotes.WithLabelValues("amount_out", "ok")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.quotes.WithLabelValues("amount_out", "overflow")))
}

func TestObserve_Nil(t *testing.T) {
	var m *Metrics
	require.NotPanics(t, func() { m.Observe("amount_out", nil, 0) })
}

func TestOutcome(t *testing.T) {
	require.Equal(t, "ok", Outcome(nil))
	require.Equal(t, "invalid_reserve", Outcome(uniswapv2.ErrInvalidReserve))
	require.Equal(t, "invalid_fee", Outcome(uniswapv2.ErrInvalidFee))
	require.Equal(t, "division_by_zero", Outcome(uniswapv2.ErrDivisionByZero))
	require.Equal(t, "invalid_amount", Outcome(uniswapv2.ErrInvalidAmount))
	require.Equal(t, "insufficient_liquidity", Outcome(uniswapv2.ErrInsufficientLiquidity))
	require.Equal(t, "error", Outcome(errors.New("boom")))
}
