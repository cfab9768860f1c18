package domain

import (
	"fmt"
	"time"
)

// PricingSnapshot is one row of the price table. Prices are aligned
// with Symbols, which follow the universe column order
type PricingSnapshot struct {
	Date    time.Time
	Symbols []string
	Prices  []float64
}

func (s PricingSnapshot) Price(symbol string) (float64, bool) {
	for i, sym := range s.Symbols {
		if sym == symbol {
			return s.Prices[i], true
		}
	}
	return 0, false
}

// sameUniverse checks that two symbol lists line up index by index
func sameUniverse(a, b []string) error {
	if len(a) != len(b) {
		return fmt.Errorf("universe size mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			return fmt.Errorf("universe mismatch at column %d: %s vs %s", i, a[i], b[i])
		}
	}
	return nil
}
