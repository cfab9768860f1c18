package repository

import (
	"database/sql"
	"fmt"
	"time"

	"indexmodel/internal/db/models/model"
	pgtable "indexmodel/internal/db/models/postgres/public/table"
	litetable "indexmodel/internal/db/models/sqlite/table"
	"indexmodel/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// IndexLevelRepository persists completed index runs
type IndexLevelRepository interface {
	Add(run domain.IndexRun) error
	List(indexRunID uuid.UUID) (domain.IndexLevelSeries, error)
	Close() error
}

type indexLevelRepositoryHandler struct {
	Db         *sql.DB
	Statements indexLevelStatements
}

// NewIndexLevelRepository opens the database for the given driver
// ("sqlite" or "postgres") and creates the tables if needed
func NewIndexLevelRepository(driver, dsn string) (IndexLevelRepository, error) {
	if driver != "sqlite" && driver != "postgres" {
		return nil, fmt.Errorf("unsupported index level store driver %q", driver)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s db: %w", driver, err)
	}
	if driver == "sqlite" {
		// in-memory databases are per connection
		db.SetMaxOpenConns(1)
	}

	h := indexLevelRepositoryHandler{
		Db:         db,
		Statements: postgresStatements{},
	}
	if driver == "sqlite" {
		h.Statements = sqliteStatements{}
	}
	if err := h.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate index level store: %w", err)
	}
	return h, nil
}

func (h indexLevelRepositoryHandler) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS index_run (
			index_run_id TEXT PRIMARY KEY,
			start_date   TEXT NOT NULL,
			end_date     TEXT NOT NULL,
			created_at   TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS index_level (
			index_run_id TEXT NOT NULL REFERENCES index_run(index_run_id),
			date         TEXT NOT NULL,
			index_level  DOUBLE PRECISION NOT NULL,
			PRIMARY KEY (index_run_id, date)
		)`,
	}
	for _, s := range stmts {
		if _, err := h.Db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

// indexLevelStatements builds the jet statements for one sql dialect
type indexLevelStatements interface {
	insertRun(run model.IndexRun) statement
	insertLevels(levels []model.IndexLevel) statement
	selectLevels(indexRunID string) statement
}

type statement interface {
	Sql() (query string, args []interface{})
	Query(db qrm.Queryable, destination interface{}) error
	Exec(db qrm.Executable) (sql.Result, error)
}

type postgresStatements struct{}

func (postgresStatements) insertRun(run model.IndexRun) statement {
	return pgtable.IndexRun.
		INSERT(pgtable.IndexRun.AllColumns).
		MODEL(run)
}

func (postgresStatements) insertLevels(levels []model.IndexLevel) statement {
	return pgtable.IndexLevel.
		INSERT(pgtable.IndexLevel.AllColumns).
		MODELS(levels)
}

func (postgresStatements) selectLevels(indexRunID string) statement {
	return pgtable.IndexLevel.
		SELECT(pgtable.IndexLevel.AllColumns).
		WHERE(pgtable.IndexLevel.IndexRunID.EQ(postgres.String(indexRunID))).
		ORDER_BY(pgtable.IndexLevel.Date.ASC())
}

type sqliteStatements struct{}

func (sqliteStatements) insertRun(run model.IndexRun) statement {
	return litetable.IndexRun.
		INSERT(litetable.IndexRun.AllColumns).
		MODEL(run)
}

func (sqliteStatements) insertLevels(levels []model.IndexLevel) statement {
	return litetable.IndexLevel.
		INSERT(litetable.IndexLevel.AllColumns).
		MODELS(levels)
}

func (sqliteStatements) selectLevels(indexRunID string) statement {
	return litetable.IndexLevel.
		SELECT(litetable.IndexLevel.AllColumns).
		WHERE(litetable.IndexLevel.IndexRunID.EQ(sqlite.String(indexRunID))).
		ORDER_BY(litetable.IndexLevel.Date.ASC())
}

// levels per insert statement, keeps bind parameters under sqlite's limit
const insertBatchSize = 500

func (h indexLevelRepositoryHandler) Add(run domain.IndexRun) error {
	if run.IndexRunID == uuid.Nil {
		return fmt.Errorf("failed to add index run: id not set")
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	indexRunID := run.IndexRunID.String()
	_, err = h.Statements.insertRun(model.IndexRun{
		IndexRunID: indexRunID,
		StartDate:  run.Start.Format(time.DateOnly),
		EndDate:    run.End.Format(time.DateOnly),
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}).Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to insert index run %s: %w", indexRunID, err)
	}

	levels := make([]model.IndexLevel, 0, len(run.Series))
	for _, l := range run.Series {
		levels = append(levels, model.IndexLevel{
			IndexRunID: indexRunID,
			Date:       l.Date.Format(time.DateOnly),
			IndexLevel: l.Level,
		})
	}
	for i := 0; i < len(levels); i += insertBatchSize {
		batch := levels[i:min(i+insertBatchSize, len(levels))]
		if _, err := h.Statements.insertLevels(batch).Exec(tx); err != nil {
			return fmt.Errorf("failed to insert index levels from %s: %w", batch[0].Date, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit index run %s: %w", indexRunID, err)
	}
	return nil
}

func (h indexLevelRepositoryHandler) List(indexRunID uuid.UUID) (domain.IndexLevelSeries, error) {
	result := []model.IndexLevel{}
	err := h.Statements.selectLevels(indexRunID.String()).Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to query index levels for %s: %w", indexRunID, err)
	}

	out := domain.IndexLevelSeries{}
	for _, l := range result {
		date, err := time.Parse(time.DateOnly, l.Date)
		if err != nil {
			return nil, fmt.Errorf("bad stored date %q: %w", l.Date, err)
		}
		out = append(out, domain.IndexLevel{
			Date:  date,
			Level: l.IndexLevel,
		})
	}
	return out, nil
}

func (h indexLevelRepositoryHandler) Close() error {
	return h.Db.Close()
}

// noop implementation used when no store is configured
type noopIndexLevelRepository struct{}

func NewNoopIndexLevelRepository() IndexLevelRepository { return noopIndexLevelRepository{} }

func (noopIndexLevelRepository) Add(domain.IndexRun) error { return nil }
func (noopIndexLevelRepository) List(uuid.UUID) (domain.IndexLevelSeries, error) {
	return domain.IndexLevelSeries{}, nil
}
func (noopIndexLevelRepository) Close() error { return nil }
