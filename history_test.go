package cryptofolio

import (
	"testing"
	"time"
)

func series(values ...float64) Series {
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s := make(Series, len(values))
	for i, v := range values {
		s[i] = Sample{Time: t0.Add(time.Duration(i) * time.Hour), Price: M(v)}
	}
	return s
}

func TestSeries_Summary(t *testing.T) {
	tests := []struct {
		name    string
		series  Series
		start   Money
		current Money
		change  Change
	}{
		{
			name:    "up",
			series:  series(100, 90, 125),
			start:   M(100),
			current: M(125),
			change:  Change{Value: 25, Defined: true},
		},
		{
			name:    "down",
			series:  series(200, 150),
			start:   M(200),
			current: M(150),
			change:  Change{Value: -25, Defined: true},
		},
		{
			name:    "single sample",
			series:  series(42),
			start:   M(42),
			current: M(42),
			change:  Change{Value: 0, Defined: true},
		},
		{
			name:    "zero start",
			series:  series(0.0, 10.0),
			start:   M(0),
			current: M(10),
			change:  Change{Defined: false},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.series.Summary()
			if !ok {
				t.Fatal("Summary() = false, want true")
			}
			if !got.Start.Equal(tt.start) || !got.Current.Equal(tt.current) {
				t.Errorf("Summary() start, current = %s, %s; want %s, %s", got.Start, got.Current, tt.start, tt.current)
			}
			if got.Change.Defined != tt.change.Defined || got.Change.String() != tt.change.String() {
				t.Errorf("Summary() change = %+v, want %+v", got.Change, tt.change)
			}
		})
	}
}

func TestSeries_SummaryZeroStartIsNA(t *testing.T) {
	got, _ := series(0.0, 10.0).Summary()
	if got.Change.String() != "N/A" {
		t.Errorf("change = %q, want N/A", got.Change.String())
	}
}

func TestSeries_SummaryEmpty(t *testing.T) {
	if _, ok := (Series{}).Summary(); ok {
		t.Error("Summary() of an empty series = true, want false")
	}
}

func TestParseLookback(t *testing.T) {
	tests := map[string]Lookback{
		"7d":  Week,
		"30d": Month,
		"90":  Quarter,
		"1y":  Year,
		"365": Year,
		"1Y":  Year,
	}
	for in, want := range tests {
		got, err := ParseLookback(in)
		if err != nil || got != want {
			t.Errorf("ParseLookback(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	for _, in := range []string{"", "14d", "2y", "week", "-7d"} {
		if _, err := ParseLookback(in); err == nil {
			t.Errorf("ParseLookback(%q) expected an error", in)
		}
	}
	if Year.String() != "1 year" || Month.String() != "30 days" {
		t.Errorf("String() = %q, %q", Year.String(), Month.String())
	}
	if Year.Flag() != "1y" || Week.Flag() != "7d" {
		t.Errorf("Flag() = %q, %q", Year.Flag(), Week.Flag())
	}
}
