package repository

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"indexmodel/internal/domain"
	"indexmodel/internal/util"

	"github.com/stretchr/testify/require"
)

func TestExportIndexLevels(t *testing.T) {
	series := domain.IndexLevelSeries{
		{Date: util.NewDate(2020, 1, 2), Level: 100},
		{Date: util.NewDate(2020, 1, 3), Level: 101.5},
		{Date: util.NewDate(2020, 1, 6), Level: 99.25},
	}

	t.Run("layout", func(t *testing.T) {
		buf := bytes.Buffer{}
		require.NoError(t, ExportIndexLevels(series, &buf))
		require.Equal(
			t,
			"Date,index_level\n2020-01-02,100.0\n2020-01-03,101.5\n2020-01-06,99.25\n",
			buf.String(),
		)
	})

	t.Run("idempotent", func(t *testing.T) {
		dir := t.TempDir()
		first := filepath.Join(dir, "first.csv")
		second := filepath.Join(dir, "second.csv")
		require.NoError(t, ExportIndexLevelsToFile(series, first))
		require.NoError(t, ExportIndexLevelsToFile(series, second))

		a, err := os.ReadFile(first)
		require.NoError(t, err)
		b, err := os.ReadFile(second)
		require.NoError(t, err)
		require.Equal(t, a, b)

		// overwrite, not append
		require.NoError(t, ExportIndexLevelsToFile(series, first))
		again, err := os.ReadFile(first)
		require.NoError(t, err)
		require.Equal(t, a, again)
	})

	t.Run("empty series", func(t *testing.T) {
		buf := bytes.Buffer{}
		require.NoError(t, ExportIndexLevels(nil, &buf))
		require.Equal(t, "Date,index_level\n", buf.String())
	})

	t.Run("bad path", func(t *testing.T) {
		err := ExportIndexLevelsToFile(series, filepath.Join(t.TempDir(), "missing", "out.csv"))
		require.Error(t, err)
	})
}

func TestExportRebalances(t *testing.T) {
	events := []domain.RebalanceEvent{
		{
			Date:       util.NewDate(2020, 1, 2),
			IndexLevel: 100,
			Holdings: domain.HoldingVector{
				Constituents: []domain.Constituent{
					{Rank: 1, Symbol: "B", Weight: 0.5, Shares: 2.5},
					{Rank: 2, Symbol: "A", Weight: 0.25, Shares: 2.5},
					{Rank: 3, Symbol: "D", Weight: 0.25, Shares: 3.125},
				},
			},
		},
	}

	buf := bytes.Buffer{}
	require.NoError(t, ExportRebalances(events, &buf))
	require.Equal(
		t,
		"Date,index_level,rank,symbol,weight,shares\n"+
			"2020-01-02,100.0,1,B,0.5,2.5\n"+
			"2020-01-02,100.0,2,A,0.25,2.5\n"+
			"2020-01-02,100.0,3,D,0.25,3.125\n",
		buf.String(),
	)
}

func Test_csvFloat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{100, "100.0"},
		{105, "105.0"},
		{101.5, "101.5"},
		{105.00000000000001, "105.00000000000001"},
		{0.25, "0.25"},
		{3.125, "3.125"},
		{0, "0.0"},
	}
	for _, c := range cases {
		got, err := csvFloat(c.in).MarshalCSV()
		require.NoError(t, err)
		require.Equal(t, c.want, got)
	}
}
