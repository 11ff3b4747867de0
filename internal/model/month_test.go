package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthOf_NormalizesAnyDay(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want Month
	}{
		{
			name: "first of month",
			date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			want: Month{Year: 2024, Month: time.March},
		},
		{
			name: "mid month",
			date: time.Date(2024, 3, 15, 13, 45, 0, 0, time.UTC),
			want: Month{Year: 2024, Month: time.March},
		},
		{
			name: "last day of month",
			date: time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC),
			want: Month{Year: 2024, Month: time.March},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthOf(tt.date))
		})
	}
}

func TestMonth_Range(t *testing.T) {
	tests := []struct {
		name      string
		month     Month
		wantStart string
		wantEnd   string
	}{
		{
			name:      "march 2024 (31 days)",
			month:     Month{Year: 2024, Month: time.March},
			wantStart: "2024-03-01",
			wantEnd:   "2024-03-31",
		},
		{
			name:      "february leap year",
			month:     Month{Year: 2024, Month: time.February},
			wantStart: "2024-02-01",
			wantEnd:   "2024-02-29",
		},
		{
			name:      "february non-leap year",
			month:     Month{Year: 2023, Month: time.February},
			wantStart: "2023-02-01",
			wantEnd:   "2023-02-28",
		},
		{
			name:      "december year boundary",
			month:     Month{Year: 2024, Month: time.December},
			wantStart: "2024-12-01",
			wantEnd:   "2024-12-31",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tt.month.Range()
			assert.Equal(t, tt.wantStart, start.Format("2006-01-02"))
			assert.Equal(t, tt.wantEnd, end.Format("2006-01-02"))
		})
	}
}

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2024-03")
	require.NoError(t, err)
	assert.Equal(t, Month{Year: 2024, Month: time.March}, m)
	assert.Equal(t, "2024-03", m.String())

	_, err = ParseMonth("2024-3")
	assert.Error(t, err)

	_, err = ParseMonth("March 2024")
	assert.Error(t, err)
}

func TestMonth_NextPrevOrdering(t *testing.T) {
	dec := Month{Year: 2023, Month: time.December}
	jan := Month{Year: 2024, Month: time.January}

	assert.Equal(t, jan, dec.Next())
	assert.Equal(t, dec, jan.Prev())
	assert.True(t, dec.Before(jan))
	assert.True(t, jan.After(dec))
	assert.False(t, jan.Before(jan))
}

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		name string
		from Month
		to   Month
		want []string
	}{
		{
			name: "single month",
			from: Month{Year: 2024, Month: time.March},
			to:   Month{Year: 2024, Month: time.March},
			want: []string{"2024-03"},
		},
		{
			name: "across year boundary",
			from: Month{Year: 2023, Month: time.November},
			to:   Month{Year: 2024, Month: time.February},
			want: []string{"2023-11", "2023-12", "2024-01", "2024-02"},
		},
		{
			name: "inverted range",
			from: Month{Year: 2024, Month: time.March},
			to:   Month{Year: 2024, Month: time.January},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			months := MonthsBetween(tt.from, tt.to)
			var got []string
			for _, m := range months {
				got = append(got, m.String())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
