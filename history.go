package cryptofolio

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Sample is the price of an asset at a point in time.
type Sample struct {
	Time  time.Time
	Price Money
}

// Series is a chronological list of samples.
type Series []Sample

// Prices returns the sample prices as floats, for charting.
func (s Series) Prices() []float64 {
	out := make([]float64, len(s))
	for i, x := range s {
		out[i] = x.Price.AsFloat()
	}
	return out
}

// HistorySummary holds the metrics derived from a series.
type HistorySummary struct {
	Start   Money // first sample
	Current Money // last sample
	Change  Change
}

// Summary computes the start price, the current price and the change
// between the two. It returns false for an empty series. The change is
// undefined when the start price is zero.
func (s Series) Summary() (HistorySummary, bool) {
	if len(s) == 0 {
		return HistorySummary{}, false
	}
	start, current := s[0].Price, s[len(s)-1].Price
	return HistorySummary{
		Start:   start,
		Current: current,
		Change:  start.Change(current),
	}, true
}

// Lookback is a history window, in days.
type Lookback int

// The lookback windows offered to the user.
const (
	Week    Lookback = 7
	Month   Lookback = 30
	Quarter Lookback = 90
	Year    Lookback = 365
)

// Lookbacks lists the supported windows, shortest first.
var Lookbacks = []Lookback{Week, Month, Quarter, Year}

// Days returns the window length in days.
func (l Lookback) Days() int { return int(l) }

// String returns a human label like "7 days" or "1 year".
func (l Lookback) String() string {
	if l == Year {
		return "1 year"
	}
	return fmt.Sprintf("%d days", int(l))
}

// Flag returns the short form accepted by ParseLookback, like "30d".
func (l Lookback) Flag() string {
	if l == Year {
		return "1y"
	}
	return fmt.Sprintf("%dd", int(l))
}

// ParseLookback parses "7d", "30d", "90d", "1y" or a bare number of days.
// Only the windows in Lookbacks are accepted.
func ParseLookback(s string) (Lookback, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	var days int
	var err error
	switch {
	case strings.HasSuffix(s, "y"):
		var years int
		years, err = strconv.Atoi(strings.TrimSuffix(s, "y"))
		days = years * 365
	case strings.HasSuffix(s, "d"):
		days, err = strconv.Atoi(strings.TrimSuffix(s, "d"))
	default:
		days, err = strconv.Atoi(s)
	}
	if err == nil {
		for _, l := range Lookbacks {
			if l.Days() == days {
				return l, nil
			}
		}
	}
	return 0, fmt.Errorf("invalid time period %q, want one of 7d, 30d, 90d, 1y", s)
}
