package l3_service

import (
	"fmt"
	"math"

	"indexmodel/internal/domain"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

const tradingDaysPerYear = 252

type CalculateMetricsResult struct {
	AnnualizedStdev  float64
	AnnualizedReturn float64
	SharpeRatio      float64
	MaxDrawdown      float64
	TotalReturn      float64
}

// CalculateMetrics summarizes an index level series. it needs at least
// three points so the sample stdev of daily returns is defined
func CalculateMetrics(series domain.IndexLevelSeries) (*CalculateMetricsResult, error) {
	returns, err := calculateReturns(series)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate returns: %w", err)
	}

	stdev, err := stats.StandardDeviationSample(returns)
	if err != nil {
		return nil, err
	}
	annualizedStdev := stdev * math.Sqrt(tradingDaysPerYear)

	first := series[0]
	last := series[len(series)-1]
	numHours := last.Date.Sub(first.Date).Hours()
	numYears := numHours / (365 * 24)
	totalReturn := last.Level/first.Level - 1
	annualizedReturn := math.Pow(last.Level/first.Level, 1/numYears) - 1

	sharpeRatio := 0.0
	if annualizedStdev != 0 {
		sharpeRatio = annualizedReturn / annualizedStdev
	}

	return &CalculateMetricsResult{
		AnnualizedStdev:  annualizedStdev,
		AnnualizedReturn: annualizedReturn,
		SharpeRatio:      sharpeRatio,
		MaxDrawdown:      maxDrawdown(series.Levels()),
		TotalReturn:      totalReturn,
	}, nil
}

func calculateReturns(series domain.IndexLevelSeries) ([]float64, error) {
	if len(series) < 3 {
		return nil, fmt.Errorf("cannot calculate metrics on < 3 index levels, got %d", len(series))
	}
	returns := make([]float64, 0, len(series)-1)
	for i := 1; i < len(series); i++ {
		prev := series[i-1].Level
		if prev == 0 {
			return nil, fmt.Errorf("index level is 0 on %s", series[i-1].Date.Format("2006-01-02"))
		}
		returns = append(returns, (series[i].Level-prev)/prev)
	}
	return returns, nil
}

// maxDrawdown is the largest peak to trough fall, as a positive fraction
func maxDrawdown(levels []float64) float64 {
	peak := math.Inf(-1)
	worst := 0.0
	for _, l := range levels {
		if l > peak {
			peak = l
		}
		if dd := (peak - l) / peak; dd > worst {
			worst = dd
		}
	}
	return worst
}

// Rounded is for display only
func (r CalculateMetricsResult) Rounded(places int32) map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"annualizedReturn": decimal.NewFromFloat(r.AnnualizedReturn).Round(places),
		"annualizedStdev":  decimal.NewFromFloat(r.AnnualizedStdev).Round(places),
		"sharpeRatio":      decimal.NewFromFloat(r.SharpeRatio).Round(places),
		"maxDrawdown":      decimal.NewFromFloat(r.MaxDrawdown).Round(places),
		"totalReturn":      decimal.NewFromFloat(r.TotalReturn).Round(places),
	}
}
