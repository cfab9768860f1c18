package model

type IndexRun struct {
	IndexRunID string `sql:"primary_key"`
	StartDate  string
	EndDate    string
	CreatedAt  string
}
