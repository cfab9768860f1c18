package table

import (
	"github.com/go-jet/jet/v2/postgres"
)

var IndexLevel = newIndexLevelTable("public", "index_level", "")

type indexLevelTable struct {
	postgres.Table

	// Columns
	IndexRunID postgres.ColumnString
	Date       postgres.ColumnString
	IndexLevel postgres.ColumnFloat

	AllColumns     postgres.ColumnList
	MutableColumns postgres.ColumnList
}

type IndexLevelTable struct {
	indexLevelTable
}

// AS creates new IndexLevelTable with assigned alias
func (a IndexLevelTable) AS(alias string) *IndexLevelTable {
	return newIndexLevelTable(a.SchemaName(), a.TableName(), alias)
}

func newIndexLevelTable(schemaName, tableName, alias string) *IndexLevelTable {
	return &IndexLevelTable{
		indexLevelTable: newIndexLevelTableImpl(schemaName, tableName, alias),
	}
}

func newIndexLevelTableImpl(schemaName, tableName, alias string) indexLevelTable {
	var (
		IndexRunIDColumn = postgres.StringColumn("index_run_id")
		DateColumn       = postgres.StringColumn("date")
		IndexLevelColumn = postgres.FloatColumn("index_level")
		allColumns       = postgres.ColumnList{IndexRunIDColumn, DateColumn, IndexLevelColumn}
		mutableColumns   = postgres.ColumnList{IndexLevelColumn}
	)

	return indexLevelTable{
		Table: postgres.NewTable(schemaName, tableName, alias, allColumns...),

		//Columns
		IndexRunID: IndexRunIDColumn,
		Date:       DateColumn,
		IndexLevel: IndexLevelColumn,

		AllColumns:     allColumns,
		MutableColumns: mutableColumns,
	}
}
