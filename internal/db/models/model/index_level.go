package model

type IndexLevel struct {
	IndexRunID string `sql:"primary_key"`
	Date       string `sql:"primary_key"`
	IndexLevel float64
}
