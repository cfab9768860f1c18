package table

import (
	"github.com/go-jet/jet/v2/sqlite"
)

var IndexLevel = newIndexLevelTable("", "index_level", "")

type indexLevelTable struct {
	sqlite.Table

	// Columns
	IndexRunID sqlite.ColumnString
	Date       sqlite.ColumnString
	IndexLevel sqlite.ColumnFloat

	AllColumns     sqlite.ColumnList
	MutableColumns sqlite.ColumnList
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
		IndexRunIDColumn = sqlite.StringColumn("index_run_id")
		DateColumn       = sqlite.StringColumn("date")
		IndexLevelColumn = sqlite.FloatColumn("index_level")
		allColumns       = sqlite.ColumnList{IndexRunIDColumn, DateColumn, IndexLevelColumn}
		mutableColumns   = sqlite.ColumnList{IndexLevelColumn}
	)

	return indexLevelTable{
		Table: sqlite.NewTable(schemaName, tableName, alias, allColumns...),

		//Columns
		IndexRunID: IndexRunIDColumn,
		Date:       DateColumn,
		IndexLevel: IndexLevelColumn,

		AllColumns:     allColumns,
		MutableColumns: mutableColumns,
	}
}
