package util

import (
	"fmt"
	"strings"
	"time"
)

const layout = time.DateOnly

// day-first layouts used by the price table, plus ISO as a fallback
var DefaultDateLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	time.DateOnly,
}

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// DateOnly truncates t to midnight UTC of its calendar day
func DateOnly(t time.Time) time.Time {
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

func DateLte(t1, t2 time.Time) bool {
	return t1.Before(t2) || t1.Format(layout) == t2.Format(layout)
}

func FormatDate(t time.Time) string {
	return t.Format(layout)
}

// ParseDate tries each layout in order. with no layouts given it
// uses DefaultDateLayouts
func ParseDate(value string, layouts ...string) (time.Time, error) {
	if len(layouts) == 0 {
		layouts = DefaultDateLayouts
	}
	value = strings.TrimSpace(value)
	for _, l := range layouts {
		t, err := time.ParseInLocation(l, value, time.UTC)
		if err == nil {
			return DateOnly(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("failed to parse date %q with layouts %v", value, layouts)
}

func IsBusinessDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// NextBusinessDay returns the next weekday after t. a weekend lands on
// the following monday in a single jump
func NextBusinessDay(t time.Time) time.Time {
	next := DateOnly(t).AddDate(0, 0, 1)
	switch next.Weekday() {
	case time.Saturday:
		return next.AddDate(0, 0, 2)
	case time.Sunday:
		return next.AddDate(0, 0, 1)
	}
	return next
}

// PrevBusinessDay walks back one day at a time until it hits a weekday
func PrevBusinessDay(t time.Time) time.Time {
	prev := DateOnly(t).AddDate(0, 0, -1)
	for !IsBusinessDay(prev) {
		prev = prev.AddDate(0, 0, -1)
	}
	return prev
}
