package domain

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHoldingVector_MarketValue(t *testing.T) {
	date := time.Date(2020, 1, 6, 0, 0, 0, 0, time.UTC)
	holdings := HoldingVector{
		Symbols: []string{"A", "B", "C"},
		Shares:  []float64{2, 0, 0.5},
	}

	t.Run("dot product", func(t *testing.T) {
		value, err := holdings.MarketValue(PricingSnapshot{
			Date:    date,
			Symbols: []string{"A", "B", "C"},
			Prices:  []float64{10, 20, 30},
		})
		require.NoError(t, err)
		require.InDelta(t, 35.0, value, 1e-12)
	})

	t.Run("universe mismatch", func(t *testing.T) {
		_, err := holdings.MarketValue(PricingSnapshot{
			Date:    date,
			Symbols: []string{"A", "C", "B"},
			Prices:  []float64{10, 20, 30},
		})
		require.Error(t, err)
	})

	t.Run("universe size mismatch", func(t *testing.T) {
		_, err := holdings.MarketValue(PricingSnapshot{
			Date:    date,
			Symbols: []string{"A", "B"},
			Prices:  []float64{10, 20},
		})
		require.Error(t, err)
	})
}

func TestHoldingVector_Valuation(t *testing.T) {
	date := time.Date(2020, 1, 6, 0, 0, 0, 0, time.UTC)
	snapshot := PricingSnapshot{
		Date:    date,
		Symbols: []string{"A", "B"},
		Prices:  []float64{10, 20},
	}

	t.Run("zero holdings", func(t *testing.T) {
		holdings := HoldingVector{
			Symbols: []string{"A", "B"},
			Shares:  []float64{0, 0},
		}
		_, err := holdings.Valuation(snapshot)
		degenerate := DegenerateValuationError{}
		require.True(t, errors.As(err, &degenerate))
		require.Equal(t, date, degenerate.Date)
		require.Equal(t, 0.0, degenerate.Value)
	})

	t.Run("nan holdings", func(t *testing.T) {
		holdings := HoldingVector{
			Symbols: []string{"A", "B"},
			Shares:  []float64{math.NaN(), 1},
		}
		_, err := holdings.Valuation(snapshot)
		require.ErrorAs(t, err, &DegenerateValuationError{})
	})

	t.Run("positive", func(t *testing.T) {
		holdings := HoldingVector{
			Symbols: []string{"A", "B"},
			Shares:  []float64{1, 1},
		}
		value, err := holdings.Valuation(snapshot)
		require.NoError(t, err)
		require.Equal(t, 30.0, value)
	})
}

func TestPricingSnapshot_Price(t *testing.T) {
	snapshot := PricingSnapshot{
		Symbols: []string{"A", "B"},
		Prices:  []float64{10, 20},
	}
	p, ok := snapshot.Price("B")
	require.True(t, ok)
	require.Equal(t, 20.0, p)

	_, ok = snapshot.Price("Z")
	require.False(t, ok)
}

func TestErrors(t *testing.T) {
	err := MissingPriceDataError{
		Date: time.Date(2020, 1, 3, 0, 0, 0, 0, time.UTC),
		Op:   "select constituents",
	}
	require.Equal(t, "select constituents: missing price data on 2020-01-03", err.Error())

	rangeErr := InvalidDateRangeError{
		Start: time.Date(2020, 1, 3, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2020, 1, 3, 0, 0, 0, 0, time.UTC),
	}
	require.Contains(t, rangeErr.Error(), "2020-01-03")
}
