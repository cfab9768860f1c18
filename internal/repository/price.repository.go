package repository

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"indexmodel/internal/domain"
	"indexmodel/internal/util"

	"github.com/gocarina/gocsv"
)

// PriceRepository is a read-only view over the daily price table
type PriceRepository interface {
	GetSnapshot(date time.Time) (*domain.PricingSnapshot, error)
	Symbols() []string
	ListTradingDays(start, end time.Time) []time.Time
}

type PriceRow struct {
	Date   time.Time
	Prices []float64
}

// keyed by date.Format(time.DateOnly)
type priceTable map[string][]float64

type priceRepositoryHandler struct {
	symbols     []string
	prices      priceTable
	tradingDays []time.Time
}

// NewPriceRepository builds the table in memory. every row needs a
// positive price for every symbol, and dates must be unique
func NewPriceRepository(symbols []string, rows []PriceRow) (PriceRepository, error) {
	if len(symbols) == 0 {
		return nil, fmt.Errorf("price table has no ticker columns")
	}
	seen := map[string]bool{}
	for _, s := range symbols {
		if s == "" {
			return nil, fmt.Errorf("price table has an empty ticker column")
		}
		if seen[s] {
			return nil, fmt.Errorf("price table has duplicate ticker column %s", s)
		}
		seen[s] = true
	}

	h := &priceRepositoryHandler{
		symbols:     append([]string{}, symbols...),
		prices:      priceTable{},
		tradingDays: []time.Time{},
	}
	for _, row := range rows {
		date := util.DateOnly(row.Date)
		key := date.Format(time.DateOnly)
		if _, ok := h.prices[key]; ok {
			return nil, fmt.Errorf("price table has duplicate date %s", key)
		}
		if len(row.Prices) != len(symbols) {
			return nil, fmt.Errorf("price row %s has %d prices, expected %d", key, len(row.Prices), len(symbols))
		}
		for i, p := range row.Prices {
			if !(p > 0) {
				return nil, fmt.Errorf("price row %s has non-positive price %v for %s", key, p, symbols[i])
			}
		}
		h.prices[key] = append([]float64{}, row.Prices...)
		h.tradingDays = append(h.tradingDays, date)
	}

	sort.Slice(h.tradingDays, func(i, j int) bool {
		return h.tradingDays[i].Before(h.tradingDays[j])
	})

	return h, nil
}

func (h priceRepositoryHandler) GetSnapshot(date time.Time) (*domain.PricingSnapshot, error) {
	date = util.DateOnly(date)
	prices, ok := h.prices[date.Format(time.DateOnly)]
	if !ok {
		return nil, domain.MissingPriceDataError{
			Date: date,
			Op:   "get pricing snapshot",
		}
	}
	return &domain.PricingSnapshot{
		Date:    date,
		Symbols: append([]string{}, h.symbols...),
		Prices:  append([]float64{}, prices...),
	}, nil
}

func (h priceRepositoryHandler) Symbols() []string {
	return append([]string{}, h.symbols...)
}

// ListTradingDays returns the dates present in the table between start
// and end, inclusive
func (h priceRepositoryHandler) ListTradingDays(start, end time.Time) []time.Time {
	out := []time.Time{}
	for _, d := range h.tradingDays {
		if util.DateLte(start, d) && util.DateLte(d, end) {
			out = append(out, d)
		}
	}
	return out
}

// LoadPriceRepository reads a csv whose first column is the date and
// whose remaining columns are one ticker each
func LoadPriceRepository(in io.Reader, dateLayouts ...string) (PriceRepository, error) {
	records, err := gocsv.DefaultCSVReader(in).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read price csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("price csv is empty")
	}

	header := records[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("price csv needs a date column and at least one ticker column, got %v", header)
	}
	symbols := make([]string, 0, len(header)-1)
	for _, col := range header[1:] {
		symbols = append(symbols, strings.TrimSpace(col))
	}

	rows := make([]PriceRow, 0, len(records)-1)
	for i, record := range records[1:] {
		line := i + 2
		if len(record) != len(header) {
			return nil, fmt.Errorf("price csv line %d has %d fields, expected %d", line, len(record), len(header))
		}
		date, err := util.ParseDate(record[0], dateLayouts...)
		if err != nil {
			return nil, fmt.Errorf("price csv line %d: %w", line, err)
		}
		prices := make([]float64, 0, len(symbols))
		for j, raw := range record[1:] {
			p, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil {
				return nil, fmt.Errorf("price csv line %d: failed to parse %s price %q: %w", line, symbols[j], raw, err)
			}
			prices = append(prices, p)
		}
		rows = append(rows, PriceRow{
			Date:   date,
			Prices: prices,
		})
	}

	return NewPriceRepository(symbols, rows)
}

func LoadPriceRepositoryFromFile(path string, dateLayouts ...string) (PriceRepository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open price csv: %w", err)
	}
	defer f.Close()

	return LoadPriceRepository(f, dateLayouts...)
}
