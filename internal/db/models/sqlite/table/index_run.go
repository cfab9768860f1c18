package table

import (
	"github.com/go-jet/jet/v2/sqlite"
)

var IndexRun = newIndexRunTable("", "index_run", "")

type indexRunTable struct {
	sqlite.Table

	// Columns
	IndexRunID sqlite.ColumnString
	StartDate  sqlite.ColumnString
	EndDate    sqlite.ColumnString
	CreatedAt  sqlite.ColumnString

	AllColumns     sqlite.ColumnList
	MutableColumns sqlite.ColumnList
}

type IndexRunTable struct {
	indexRunTable
}

// AS creates new IndexRunTable with assigned alias
func (a IndexRunTable) AS(alias string) *IndexRunTable {
	return newIndexRunTable(a.SchemaName(), a.TableName(), alias)
}

func newIndexRunTable(schemaName, tableName, alias string) *IndexRunTable {
	return &IndexRunTable{
		indexRunTable: newIndexRunTableImpl(schemaName, tableName, alias),
	}
}

func newIndexRunTableImpl(schemaName, tableName, alias string) indexRunTable {
	var (
		IndexRunIDColumn = sqlite.StringColumn("index_run_id")
		StartDateColumn  = sqlite.StringColumn("start_date")
		EndDateColumn    = sqlite.StringColumn("end_date")
		CreatedAtColumn  = sqlite.StringColumn("created_at")
		allColumns       = sqlite.ColumnList{IndexRunIDColumn, StartDateColumn, EndDateColumn, CreatedAtColumn}
		mutableColumns   = sqlite.ColumnList{StartDateColumn, EndDateColumn, CreatedAtColumn}
	)

	return indexRunTable{
		Table: sqlite.NewTable(schemaName, tableName, alias, allColumns...),

		//Columns
		IndexRunID: IndexRunIDColumn,
		StartDate:  StartDateColumn,
		EndDate:    EndDateColumn,
		CreatedAt:  CreatedAtColumn,

		AllColumns:     allColumns,
		MutableColumns: mutableColumns,
	}
}
