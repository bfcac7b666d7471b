package classify

import (
	"fmt"
	"strings"
	"time"

	"github.com/Rana718/petseed/internal/types"
)

type Season string

const (
	Warm    Season = "warm"
	Cold    Season = "cold"
	Neutral Season = "neutral"
)

// MonthDay is a calendar day independent of year.
type MonthDay struct {
	Month time.Month
	Day   int
}

// ParseMonthDay reads "MM-DD".
func ParseMonthDay(s string) (MonthDay, error) {
	t, err := time.Parse("01-02", strings.TrimSpace(s))
	if err != nil {
		return MonthDay{}, fmt.Errorf("invalid month-day %q: %w", s, err)
	}
	return MonthDay{Month: t.Month(), Day: t.Day()}, nil
}

func (md MonthDay) ordinal() int {
	return int(md.Month)*100 + md.Day
}

// Window is an inclusive month-day interval. Start after End wraps the year,
// e.g. 12-01..02-28 for the southern summer.
type Window struct {
	Start MonthDay
	End   MonthDay
}

func (w Window) Contains(t time.Time) bool {
	d := MonthDay{Month: t.Month(), Day: t.Day()}.ordinal()
	start, end := w.Start.ordinal(), w.End.ordinal()
	if start <= end {
		return d >= start && d <= end
	}
	return d >= start || d <= end
}

// SeasonOf places date in the warm window, the cold window, or neither.
// Warm wins when the windows overlap.
func SeasonOf(date time.Time, warm, cold Window) Season {
	switch {
	case warm.Contains(date):
		return Warm
	case cold.Contains(date):
		return Cold
	default:
		return Neutral
	}
}

// Temperature reports whether the product text contains any of keywords.
// Both sides are upper-cased first.
func Temperature(p types.Product, keywords []string) bool {
	text := strings.ToUpper(p.Name + " " + p.Description + " " + p.SKU)
	for _, kw := range keywords {
		kw = strings.ToUpper(strings.TrimSpace(kw))
		if kw != "" && strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// TemperatureSet holds the keyword lists for warm and cold products.
type TemperatureSet struct {
	Warm []string
	Cold []string
}

// Matches reports whether p belongs to season s. Neutral matches everything.
func (ts TemperatureSet) Matches(p types.Product, s Season) bool {
	switch s {
	case Warm:
		return Temperature(p, ts.Warm)
	case Cold:
		return Temperature(p, ts.Cold)
	default:
		return true
	}
}
