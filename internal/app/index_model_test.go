package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"indexmodel/internal/domain"
	"indexmodel/internal/repository"
	mock_repository "indexmodel/internal/repository/mocks"
	"indexmodel/internal/util"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const prices = `Date,Stock_A,Stock_B,Stock_C,Stock_D
03/01/2020,10,20,5,8
06/01/2020,10,20,5,8
07/01/2020,10,22,5,8
08/01/2020,10,22,5,8
`

func loadPrices(t *testing.T) repository.PriceRepository {
	repo, err := repository.LoadPriceRepository(strings.NewReader(prices))
	require.NoError(t, err)
	return repo
}

func TestIndexModel(t *testing.T) {
	ctx := context.Background()

	t.Run("run and export", func(t *testing.T) {
		m := NewIndexModel(loadPrices(t), nil)

		require.NoError(t, m.Run(ctx, util.NewDate(2020, 1, 6), util.NewDate(2020, 1, 8)))

		out := filepath.Join(t.TempDir(), "export.csv")
		require.NoError(t, m.Export(out))
		b, err := os.ReadFile(out)
		require.NoError(t, err)
		require.Equal(t, "Date,index_level\n2020-01-06,100.0\n2020-01-07,105.0\n2020-01-08,105.0\n", string(b))

		rebalances := filepath.Join(t.TempDir(), "rebalances.csv")
		require.NoError(t, m.ExportRebalances(rebalances))

		metrics, err := m.Metrics()
		require.NoError(t, err)
		require.Equal(t, 0.0, metrics.MaxDrawdown)
	})

	t.Run("select", func(t *testing.T) {
		m := NewIndexModel(loadPrices(t), nil)
		holdings, err := m.Select(ctx, util.NewDate(2020, 1, 6), 100)
		require.NoError(t, err)
		require.InDelta(t, 2.5, holdings.SharesOf("Stock_B"), 1e-12)
	})

	t.Run("export before run", func(t *testing.T) {
		m := NewIndexModel(loadPrices(t), nil)
		err := m.Export(filepath.Join(t.TempDir(), "export.csv"))
		require.ErrorIs(t, err, ErrNoIndexRun)
	})

	t.Run("stores completed run", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mock_repository.NewMockIndexLevelRepository(ctrl)
		store.EXPECT().
			Add(gomock.Any()).
			DoAndReturn(func(run domain.IndexRun) error {
				require.Len(t, run.Series, 3)
				return nil
			})

		m := NewIndexModel(loadPrices(t), store)
		require.NoError(t, m.Run(ctx, util.NewDate(2020, 1, 6), util.NewDate(2020, 1, 8)))
	})

	t.Run("failed run stores nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		// no expectations: any Add call fails the test
		store := mock_repository.NewMockIndexLevelRepository(ctrl)

		m := NewIndexModel(loadPrices(t), store)
		err := m.Run(ctx, util.NewDate(2020, 1, 6), util.NewDate(2020, 1, 10))
		require.ErrorAs(t, err, &domain.MissingPriceDataError{})

		_, err = m.IndexRun()
		require.ErrorIs(t, err, ErrNoIndexRun)
	})

	t.Run("sqlite store", func(t *testing.T) {
		store, err := repository.NewIndexLevelRepository("sqlite", ":memory:")
		require.NoError(t, err)
		defer store.Close()

		m := NewIndexModel(loadPrices(t), store)
		require.NoError(t, m.Run(ctx, util.NewDate(2020, 1, 6), util.NewDate(2020, 1, 8)))

		run, err := m.IndexRun()
		require.NoError(t, err)
		stored, err := store.List(run.IndexRunID)
		require.NoError(t, err)
		require.Equal(t, run.Series, stored)
	})
}
