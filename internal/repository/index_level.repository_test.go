package repository

import (
	"testing"

	"indexmodel/internal/db/models/model"
	"indexmodel/internal/domain"
	"indexmodel/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestIndexLevelRepository_sqlite(t *testing.T) {
	repo, err := NewIndexLevelRepository("sqlite", ":memory:")
	require.NoError(t, err)
	defer repo.Close()

	run := domain.IndexRun{
		IndexRunID: uuid.New(),
		Start:      util.NewDate(2020, 1, 2),
		End:        util.NewDate(2020, 1, 6),
		Series: domain.IndexLevelSeries{
			{Date: util.NewDate(2020, 1, 2), Level: 100},
			{Date: util.NewDate(2020, 1, 3), Level: 101.5},
			{Date: util.NewDate(2020, 1, 6), Level: 99.25},
		},
	}

	t.Run("add and list", func(t *testing.T) {
		require.NoError(t, repo.Add(run))

		series, err := repo.List(run.IndexRunID)
		require.NoError(t, err)
		require.Equal(t, "", cmp.Diff(run.Series, series))
	})

	t.Run("duplicate run rolls back", func(t *testing.T) {
		require.Error(t, repo.Add(run))

		series, err := repo.List(run.IndexRunID)
		require.NoError(t, err)
		require.Len(t, series, 3)
	})

	t.Run("nil id", func(t *testing.T) {
		require.Error(t, repo.Add(domain.IndexRun{}))
	})

	t.Run("unknown run", func(t *testing.T) {
		series, err := repo.List(uuid.New())
		require.NoError(t, err)
		require.Empty(t, series)
	})
}

func TestIndexLevelRepository_batches(t *testing.T) {
	repo, err := NewIndexLevelRepository("sqlite", ":memory:")
	require.NoError(t, err)
	defer repo.Close()

	run := domain.IndexRun{
		IndexRunID: uuid.New(),
		Start:      util.NewDate(2000, 1, 3),
		Series:     domain.IndexLevelSeries{},
	}
	d := run.Start
	for i := 0; i < 2*insertBatchSize+17; i++ {
		run.Series = append(run.Series, domain.IndexLevel{Date: d, Level: 100 + float64(i)/8})
		run.End = d
		d = util.NextBusinessDay(d)
	}

	require.NoError(t, repo.Add(run))
	series, err := repo.List(run.IndexRunID)
	require.NoError(t, err)
	require.Equal(t, "", cmp.Diff(run.Series, series))
}

func Test_indexLevelStatements(t *testing.T) {
	levels := []model.IndexLevel{
		{IndexRunID: "run", Date: "2020-01-02", IndexLevel: 100},
		{IndexRunID: "run", Date: "2020-01-03", IndexLevel: 101.5},
	}

	t.Run("postgres", func(t *testing.T) {
		query, args := postgresStatements{}.insertLevels(levels).Sql()
		require.Contains(t, query, "public.index_level")
		require.Contains(t, query, "$6")
		require.Equal(t, []interface{}{"run", "2020-01-02", 100.0, "run", "2020-01-03", 101.5}, args)

		query, args = postgresStatements{}.selectLevels("run").Sql()
		require.Contains(t, query, "= $1")
		require.Contains(t, query, "ORDER BY")
		require.Equal(t, []interface{}{"run"}, args)
	})

	t.Run("sqlite", func(t *testing.T) {
		query, args := sqliteStatements{}.insertLevels(levels).Sql()
		require.Contains(t, query, "INSERT INTO")
		require.NotContains(t, query, "$")
		require.Len(t, args, 6)

		query, args = sqliteStatements{}.selectLevels("run").Sql()
		require.Contains(t, query, "= ?")
		require.Equal(t, []interface{}{"run"}, args)
	})
}

func TestNewIndexLevelRepository_badDriver(t *testing.T) {
	_, err := NewIndexLevelRepository("mysql", "")
	require.Error(t, err)
}
