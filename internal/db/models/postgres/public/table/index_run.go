package table

import (
	"github.com/go-jet/jet/v2/postgres"
)

var IndexRun = newIndexRunTable("public", "index_run", "")

type indexRunTable struct {
	postgres.Table

	// Columns
	IndexRunID postgres.ColumnString
	StartDate  postgres.ColumnString
	EndDate    postgres.ColumnString
	CreatedAt  postgres.ColumnString

	AllColumns     postgres.ColumnList
	MutableColumns postgres.ColumnList
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
		IndexRunIDColumn = postgres.StringColumn("index_run_id")
		StartDateColumn  = postgres.StringColumn("start_date")
		EndDateColumn    = postgres.StringColumn("end_date")
		CreatedAtColumn  = postgres.StringColumn("created_at")
		allColumns       = postgres.ColumnList{IndexRunIDColumn, StartDateColumn, EndDateColumn, CreatedAtColumn}
		mutableColumns   = postgres.ColumnList{StartDateColumn, EndDateColumn, CreatedAtColumn}
	)

	return indexRunTable{
		Table: postgres.NewTable(schemaName, tableName, alias, allColumns...),

		//Columns
		IndexRunID: IndexRunIDColumn,
		StartDate:  StartDateColumn,
		EndDate:    EndDateColumn,
		CreatedAt:  CreatedAtColumn,

		AllColumns:     allColumns,
		MutableColumns: mutableColumns,
	}
}
