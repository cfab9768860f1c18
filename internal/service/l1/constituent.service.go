package l1_service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"indexmodel/internal/domain"
	"indexmodel/internal/logger"
	"indexmodel/internal/repository"
	"indexmodel/internal/util"

	"gonum.org/v1/gonum/floats/scalar"
)

type tierWeight struct {
	Tier   domain.ConstituentTier
	Weight float64
}

// rank 1 gets half the index, ranks 2 and 3 a quarter each
var tierWeights = []tierWeight{
	{Tier: domain.ConstituentTier_Lead, Weight: 0.5},
	{Tier: domain.ConstituentTier_TierTwo, Weight: 0.25},
	{Tier: domain.ConstituentTier_TierTwo, Weight: 0.25},
}

type ConstituentService interface {
	Select(ctx context.Context, date time.Time, currentIndexValue float64) (*domain.HoldingVector, error)
}

type constituentServiceHandler struct {
	PriceRepository repository.PriceRepository
}

func NewConstituentService(priceRepository repository.PriceRepository) ConstituentService {
	return constituentServiceHandler{
		PriceRepository: priceRepository,
	}
}

// Select ranks the universe on the previous business day's prices and
// buys the top names at the prices on date. price stands in for market
// cap since every company is assumed to have one share outstanding
func (h constituentServiceHandler) Select(ctx context.Context, date time.Time, currentIndexValue float64) (*domain.HoldingVector, error) {
	if !(currentIndexValue > 0) || math.IsInf(currentIndexValue, 0) {
		return nil, fmt.Errorf("cannot select constituents on %s with index value %v", date.Format(time.DateOnly), currentIndexValue)
	}
	date = util.DateOnly(date)

	selectionSnapshot, err := h.PriceRepository.GetSnapshot(util.PrevBusinessDay(date))
	if err != nil {
		return nil, fmt.Errorf("failed to get selection prices for %s: %w", date.Format(time.DateOnly), err)
	}
	pricingSnapshot, err := h.PriceRepository.GetSnapshot(date)
	if err != nil {
		return nil, fmt.Errorf("failed to get purchase prices for %s: %w", date.Format(time.DateOnly), err)
	}

	if len(selectionSnapshot.Symbols) < len(tierWeights) {
		return nil, fmt.Errorf("universe has %d tickers, need at least %d", len(selectionSnapshot.Symbols), len(tierWeights))
	}

	ranked := rankByPrice(selectionSnapshot.Prices)

	shares := make([]float64, len(pricingSnapshot.Symbols))
	constituents := make([]domain.Constituent, 0, len(tierWeights))
	for rank, tw := range tierWeights {
		i := ranked[rank]
		symbol := selectionSnapshot.Symbols[i]
		purchasePrice, ok := pricingSnapshot.Price(symbol)
		if !ok {
			return nil, fmt.Errorf("purchase prices on %s missing %s", date.Format(time.DateOnly), symbol)
		}
		n := tw.Weight * currentIndexValue / purchasePrice
		shares[i] = n
		constituents = append(constituents, domain.Constituent{
			Rank:           rank + 1,
			Symbol:         symbol,
			Tier:           tw.Tier,
			Weight:         tw.Weight,
			SelectionPrice: selectionSnapshot.Prices[i],
			PurchasePrice:  purchasePrice,
			Shares:         n,
		})
	}

	holdings := &domain.HoldingVector{
		Date:         date,
		Symbols:      pricingSnapshot.Symbols,
		Shares:       shares,
		Constituents: constituents,
	}

	// the top three should add back up to the index value
	invested, err := holdings.MarketValue(*pricingSnapshot)
	if err != nil {
		return nil, err
	}
	if !scalar.EqualWithinAbsOrRel(invested, currentIndexValue, 1e-9, 1e-9) {
		return nil, fmt.Errorf("holdings on %s are worth %f, expected %f", date.Format(time.DateOnly), invested, currentIndexValue)
	}

	logger.FromContext(ctx).Debugw(
		"selected constituents",
		"date", date.Format(time.DateOnly),
		"indexValue", currentIndexValue,
		"constituents", constituents,
	)

	return holdings, nil
}

// rankByPrice returns column indexes ordered by price, highest first.
// equal prices keep their column order
func rankByPrice(prices []float64) []int {
	out := make([]int, len(prices))
	for i := range out {
		out[i] = i
	}
	sort.SliceStable(out, func(a, b int) bool {
		return prices[out[a]] > prices[out[b]]
	})
	return out
}
