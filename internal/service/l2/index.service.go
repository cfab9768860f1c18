package l2_service

import (
	"context"
	"fmt"
	"time"

	"indexmodel/internal/domain"
	"indexmodel/internal/logger"
	"indexmodel/internal/repository"
	l1_service "indexmodel/internal/service/l1"
	"indexmodel/internal/util"

	"github.com/google/uuid"
)

type IndexService interface {
	Run(ctx context.Context, start, end time.Time) (*domain.IndexRun, error)
}

type indexServiceHandler struct {
	PriceRepository    repository.PriceRepository
	ConstituentService l1_service.ConstituentService
}

func NewIndexService(priceRepository repository.PriceRepository, constituentService l1_service.ConstituentService) IndexService {
	return indexServiceHandler{
		PriceRepository:    priceRepository,
		ConstituentService: constituentService,
	}
}

// compounderState is everything carried from one business day to the
// next. holdings only change on rebalance
type compounderState struct {
	date       time.Time
	level      float64
	snapshot   *domain.PricingSnapshot
	holdings   *domain.HoldingVector
	series     domain.IndexLevelSeries
	rebalances []domain.RebalanceEvent
}

// rebalanceDue is true on the first business day of a month
func rebalanceDue(date time.Time) bool {
	return date.Month() != util.PrevBusinessDay(date).Month()
}

// Run compounds the index from start to end. the series starts at
// BaseIndexLevel on start and has one entry per business day after it.
// nothing is returned unless every day succeeds
func (h indexServiceHandler) Run(ctx context.Context, start, end time.Time) (*domain.IndexRun, error) {
	start = util.DateOnly(start)
	end = util.DateOnly(end)
	if !start.Before(end) {
		return nil, domain.InvalidDateRangeError{
			Start: start,
			End:   end,
		}
	}
	log := logger.FromContext(ctx)

	if err := h.checkCoverage(start, end); err != nil {
		return nil, fmt.Errorf("failed to run index: %w", err)
	}

	state, err := h.init(ctx, start)
	if err != nil {
		return nil, err
	}

	for state.date.Before(end) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := h.step(state); err != nil {
			return nil, err
		}
		if rebalanceDue(state.date) {
			if err := h.rebalance(ctx, state); err != nil {
				return nil, err
			}
		}
	}

	run := &domain.IndexRun{
		IndexRunID: uuid.New(),
		Start:      start,
		End:        end,
		Series:     state.series,
		Rebalances: state.rebalances,
	}
	log.Infow(
		"computed index",
		"indexRunID", run.IndexRunID.String(),
		"start", start.Format(time.DateOnly),
		"end", state.date.Format(time.DateOnly),
		"days", len(run.Series),
		"rebalances", len(run.Rebalances),
		"finalLevel", state.level,
	)

	return run, nil
}

// checkCoverage fails on the first business day between start and the
// last stepped date that has no price row
func (h indexServiceHandler) checkCoverage(start, end time.Time) error {
	last := start
	for last.Before(end) {
		last = util.NextBusinessDay(last)
	}

	tradingDays := map[string]struct{}{}
	for _, d := range h.PriceRepository.ListTradingDays(start, last) {
		tradingDays[d.Format(time.DateOnly)] = struct{}{}
	}
	for d := start; util.DateLte(d, last); d = util.NextBusinessDay(d) {
		if _, ok := tradingDays[d.Format(time.DateOnly)]; !ok {
			return domain.MissingPriceDataError{
				Date: d,
				Op:   "check price coverage",
			}
		}
	}
	return nil
}

func (h indexServiceHandler) init(ctx context.Context, start time.Time) (*compounderState, error) {
	snapshot, err := h.PriceRepository.GetSnapshot(start)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize index on %s: %w", start.Format(time.DateOnly), err)
	}
	state := &compounderState{
		date:     start,
		level:    domain.BaseIndexLevel,
		snapshot: snapshot,
		series: domain.IndexLevelSeries{
			{Date: start, Level: domain.BaseIndexLevel},
		},
		rebalances: []domain.RebalanceEvent{},
	}
	if err := h.rebalance(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// step values the current holdings today and on the next business day,
// compounds the level by the ratio and moves to the next day
func (h indexServiceHandler) step(state *compounderState) error {
	nextDate := util.NextBusinessDay(state.date)
	nextSnapshot, err := h.PriceRepository.GetSnapshot(nextDate)
	if err != nil {
		return fmt.Errorf("failed to step index from %s: %w", state.date.Format(time.DateOnly), err)
	}

	currentValue, err := state.holdings.Valuation(*state.snapshot)
	if err != nil {
		return fmt.Errorf("failed to value portfolio: %w", err)
	}
	nextValue, err := state.holdings.Valuation(*nextSnapshot)
	if err != nil {
		return fmt.Errorf("failed to value portfolio: %w", err)
	}

	state.level = state.level * (nextValue / currentValue)
	state.date = nextDate
	state.snapshot = nextSnapshot
	state.series = append(state.series, domain.IndexLevel{
		Date:  nextDate,
		Level: state.level,
	})

	return nil
}

func (h indexServiceHandler) rebalance(ctx context.Context, state *compounderState) error {
	holdings, err := h.ConstituentService.Select(ctx, state.date, state.level)
	if err != nil {
		return fmt.Errorf("failed to rebalance on %s: %w", state.date.Format(time.DateOnly), err)
	}
	state.holdings = holdings
	state.rebalances = append(state.rebalances, domain.RebalanceEvent{
		Date:       state.date,
		IndexLevel: state.level,
		Holdings:   *holdings,
	})

	symbols := []string{}
	for _, c := range holdings.Constituents {
		symbols = append(symbols, c.Symbol)
	}
	logger.FromContext(ctx).Infow(
		"rebalanced index",
		"date", state.date.Format(time.DateOnly),
		"level", state.level,
		"constituents", symbols,
	)
	return nil
}
