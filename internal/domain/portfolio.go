package domain

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
)

type ConstituentTier string

const (
	ConstituentTier_Lead    ConstituentTier = "LEAD"
	ConstituentTier_TierTwo ConstituentTier = "TIER_TWO"
)

type Constituent struct {
	Rank   int
	Symbol string
	Tier   ConstituentTier
	Weight float64
	// price on the prior business day, used for ranking
	SelectionPrice float64
	// price on the rebalance date, used to buy shares
	PurchasePrice float64
	Shares        float64
}

// HoldingVector is the share count per ticker held between two
// rebalances. Shares is aligned with Symbols and has an entry for every
// ticker in the universe
type HoldingVector struct {
	Date         time.Time
	Symbols      []string
	Shares       []float64
	Constituents []Constituent
}

func (h HoldingVector) SharesOf(symbol string) float64 {
	for i, s := range h.Symbols {
		if s == symbol {
			return h.Shares[i]
		}
	}
	return 0
}

func (h HoldingVector) ShareMap() map[string]float64 {
	out := make(map[string]float64, len(h.Symbols))
	for i, s := range h.Symbols {
		out[s] = h.Shares[i]
	}
	return out
}

// MarketValue is the dot product of the snapshot prices and the share
// counts
func (h HoldingVector) MarketValue(snapshot PricingSnapshot) (float64, error) {
	if err := sameUniverse(h.Symbols, snapshot.Symbols); err != nil {
		return 0, fmt.Errorf("cannot value holdings on %s: %w", snapshot.Date.Format(time.DateOnly), err)
	}
	return floats.Dot(snapshot.Prices, h.Shares), nil
}

// Valuation is MarketValue, but zero, negative or non-finite values are
// reported as a DegenerateValuationError
func (h HoldingVector) Valuation(snapshot PricingSnapshot) (float64, error) {
	value, err := h.MarketValue(snapshot)
	if err != nil {
		return 0, err
	}
	if value <= 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, DegenerateValuationError{
			Date:  snapshot.Date,
			Value: value,
		}
	}
	return value, nil
}
