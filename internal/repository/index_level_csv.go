package repository

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"indexmodel/internal/domain"

	"github.com/gocarina/gocsv"
)

// csvFloat is the shortest exact decimal, with whole numbers keeping a
// trailing .0 so the files match pandas output byte for byte
type csvFloat float64

func (f csvFloat) MarshalCSV() (string, error) {
	s := strconv.FormatFloat(float64(f), 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s, nil
}

type indexLevelRow struct {
	Date       string   `csv:"Date"`
	IndexLevel csvFloat `csv:"index_level"`
}

type rebalanceRow struct {
	Date       string   `csv:"Date"`
	IndexLevel csvFloat `csv:"index_level"`
	Rank       int      `csv:"rank"`
	Symbol     string   `csv:"symbol"`
	Weight     csvFloat `csv:"weight"`
	Shares     csvFloat `csv:"shares"`
}

// ExportIndexLevels writes Date,index_level rows in series order
func ExportIndexLevels(series domain.IndexLevelSeries, out io.Writer) error {
	rows := make([]indexLevelRow, 0, len(series))
	for _, l := range series {
		rows = append(rows, indexLevelRow{
			Date:       l.Date.Format(time.DateOnly),
			IndexLevel: csvFloat(l.Level),
		})
	}
	if len(rows) == 0 {
		// header only
		_, err := io.WriteString(out, "Date,index_level\n")
		return err
	}
	if err := gocsv.Marshal(&rows, out); err != nil {
		return fmt.Errorf("failed to write index levels: %w", err)
	}
	return nil
}

func ExportIndexLevelsToFile(series domain.IndexLevelSeries, path string) error {
	return writeFile(path, func(w io.Writer) error {
		return ExportIndexLevels(series, w)
	})
}

// ExportRebalances writes one row per constituent per rebalance
func ExportRebalances(events []domain.RebalanceEvent, out io.Writer) error {
	rows := []rebalanceRow{}
	for _, e := range events {
		for _, c := range e.Holdings.Constituents {
			rows = append(rows, rebalanceRow{
				Date:       e.Date.Format(time.DateOnly),
				IndexLevel: csvFloat(e.IndexLevel),
				Rank:       c.Rank,
				Symbol:     c.Symbol,
				Weight:     csvFloat(c.Weight),
				Shares:     csvFloat(c.Shares),
			})
		}
	}
	if len(rows) == 0 {
		_, err := io.WriteString(out, "Date,index_level,rank,symbol,weight,shares\n")
		return err
	}
	if err := gocsv.Marshal(&rows, out); err != nil {
		return fmt.Errorf("failed to write rebalances: %w", err)
	}
	return nil
}

func ExportRebalancesToFile(events []domain.RebalanceEvent, path string) error {
	return writeFile(path, func(w io.Writer) error {
		return ExportRebalances(events, w)
	})
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
