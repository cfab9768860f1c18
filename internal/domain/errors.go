package domain

import (
	"fmt"
	"time"
)

// MissingPriceDataError is returned when the price table has no row for
// a date the index needs
type MissingPriceDataError struct {
	Date time.Time
	Op   string
}

func (e MissingPriceDataError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("missing price data on %s", e.Date.Format(time.DateOnly))
	}
	return fmt.Sprintf("%s: missing price data on %s", e.Op, e.Date.Format(time.DateOnly))
}

// DegenerateValuationError is returned when a portfolio is worth zero or
// less on a day a return rate has to be computed from it
type DegenerateValuationError struct {
	Date  time.Time
	Value float64
}

func (e DegenerateValuationError) Error() string {
	return fmt.Sprintf("degenerate portfolio value %v on %s", e.Value, e.Date.Format(time.DateOnly))
}

type InvalidDateRangeError struct {
	Start time.Time
	End   time.Time
}

func (e InvalidDateRangeError) Error() string {
	return fmt.Sprintf("invalid date range: start %s must be before end %s", e.Start.Format(time.DateOnly), e.End.Format(time.DateOnly))
}
