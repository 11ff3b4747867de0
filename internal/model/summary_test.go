package model

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGrouping_Header(t *testing.T) {
	g := Grouping{ID: "g1", Name: "HaHaHa Channels"}

	assert.Equal(t, "HaHaHa Channels", g.Header(RegionAll))
	assert.Equal(t, "HaHaHa Channels US", g.Header(RegionUS))
}

func TestRegionFilter_CountryCode(t *testing.T) {
	assert.Equal(t, "", RegionAll.CountryCode())
	assert.Equal(t, "US", RegionUS.CountryCode())
}

func TestRunSummary_CountsAndFailures(t *testing.T) {
	march := Month{Year: 2024, Month: time.March}
	groupA := Grouping{ID: "a", Name: "Group A"}
	groupB := Grouping{ID: "b", Name: "Group B"}

	summary := &RunSummary{}
	summary.Record(TargetResult{
		Target:  Target{Grouping: groupA, Region: RegionAll, Month: march},
		Outcome: OutcomeOK,
		Amount:  decimal.RequireFromString("1000.00"),
	})
	summary.Record(TargetResult{
		Target:  Target{Grouping: groupA, Region: RegionUS, Month: march},
		Outcome: OutcomeNoData,
	})
	summary.Record(TargetResult{
		Target:  Target{Grouping: groupB, Region: RegionAll, Month: march},
		Outcome: OutcomeQueryFailed,
		Err:     errors.New("boom"),
	})

	ok, noData, failed := summary.Counts()
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, noData)
	assert.Equal(t, 1, failed)
	assert.True(t, summary.HasFailures())

	failures := summary.Failures()
	assert.Len(t, failures, 1)
	assert.Equal(t, "Group B", failures[0].Target.Grouping.Name)
}

func TestRunSummary_NoDataIsNotFailure(t *testing.T) {
	summary := &RunSummary{}
	summary.Record(TargetResult{Outcome: OutcomeOK})
	summary.Record(TargetResult{Outcome: OutcomeNoData})

	assert.False(t, summary.HasFailures())
	assert.Empty(t, summary.Failures())
}
