package domain

import (
	"time"

	"github.com/google/uuid"
)

const BaseIndexLevel = 100.0

type IndexLevel struct {
	Date  time.Time
	Level float64
}

type IndexLevelSeries []IndexLevel

func (s IndexLevelSeries) Last() (IndexLevel, bool) {
	if len(s) == 0 {
		return IndexLevel{}, false
	}
	return s[len(s)-1], true
}

func (s IndexLevelSeries) Levels() []float64 {
	out := make([]float64, 0, len(s))
	for _, l := range s {
		out = append(out, l.Level)
	}
	return out
}

type RebalanceEvent struct {
	Date       time.Time
	IndexLevel float64
	Holdings   HoldingVector
}

type IndexRun struct {
	IndexRunID uuid.UUID
	Start      time.Time
	End        time.Time
	Series     IndexLevelSeries
	Rebalances []RebalanceEvent
}
