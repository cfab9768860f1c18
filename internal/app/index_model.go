package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"indexmodel/internal/domain"
	"indexmodel/internal/logger"
	"indexmodel/internal/repository"
	l1_service "indexmodel/internal/service/l1"
	l2_service "indexmodel/internal/service/l2"
	l3_service "indexmodel/internal/service/l3"
)

var ErrNoIndexRun = errors.New("index has not been computed")

// IndexModel ties the services together behind the
// construct / select / run / export surface
type IndexModel struct {
	PriceRepository      repository.PriceRepository
	IndexLevelRepository repository.IndexLevelRepository
	ConstituentService   l1_service.ConstituentService
	IndexService         l2_service.IndexService

	indexRun *domain.IndexRun
}

// NewIndexModel builds the model over a price source. a nil level
// repository means completed runs are only kept in memory
func NewIndexModel(priceRepository repository.PriceRepository, indexLevelRepository repository.IndexLevelRepository) *IndexModel {
	if indexLevelRepository == nil {
		indexLevelRepository = repository.NewNoopIndexLevelRepository()
	}
	constituentService := l1_service.NewConstituentService(priceRepository)
	return &IndexModel{
		PriceRepository:      priceRepository,
		IndexLevelRepository: indexLevelRepository,
		ConstituentService:   constituentService,
		IndexService:         l2_service.NewIndexService(priceRepository, constituentService),
	}
}

func (m *IndexModel) Select(ctx context.Context, date time.Time, currentIndexValue float64) (*domain.HoldingVector, error) {
	return m.ConstituentService.Select(ctx, date, currentIndexValue)
}

// Run computes the index and keeps the result. a failed run leaves any
// previous result in place and persists nothing
func (m *IndexModel) Run(ctx context.Context, start, end time.Time) error {
	profile, endProfile := domain.GetProfile(ctx)
	defer endProfile()

	_, endSpan := profile.StartNewSpan("compute index")
	run, err := m.IndexService.Run(ctx, start, end)
	endSpan()
	if err != nil {
		return fmt.Errorf("failed to compute index: %w", err)
	}

	_, endSpan = profile.StartNewSpan("store index")
	err = m.IndexLevelRepository.Add(*run)
	endSpan()
	if err != nil {
		return fmt.Errorf("failed to store index run %s: %w", run.IndexRunID, err)
	}

	m.indexRun = run
	logger.FromContext(ctx).Debugw("index run stored", "indexRunID", run.IndexRunID.String())
	return nil
}

func (m *IndexModel) IndexRun() (*domain.IndexRun, error) {
	if m.indexRun == nil {
		return nil, ErrNoIndexRun
	}
	return m.indexRun, nil
}

func (m *IndexModel) Export(path string) error {
	run, err := m.IndexRun()
	if err != nil {
		return err
	}
	if err := repository.ExportIndexLevelsToFile(run.Series, path); err != nil {
		return fmt.Errorf("failed to export index levels: %w", err)
	}
	return nil
}

func (m *IndexModel) ExportRebalances(path string) error {
	run, err := m.IndexRun()
	if err != nil {
		return err
	}
	if err := repository.ExportRebalancesToFile(run.Rebalances, path); err != nil {
		return fmt.Errorf("failed to export rebalances: %w", err)
	}
	return nil
}

func (m *IndexModel) Metrics() (*l3_service.CalculateMetricsResult, error) {
	run, err := m.IndexRun()
	if err != nil {
		return nil, err
	}
	return l3_service.CalculateMetrics(run.Series)
}
