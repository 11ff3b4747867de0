package model

import (
	"github.com/shopspring/decimal"
)

// Outcome classifies the result of one sync target.
type Outcome string

const (
	// OutcomeOK means the value was queried and written.
	OutcomeOK Outcome = "ok"
	// OutcomeNoData means the backend had no rows for the month; the
	// existing cell value, if any, was left untouched.
	OutcomeNoData Outcome = "no-data"
	// OutcomeQueryFailed means the analytics query failed.
	OutcomeQueryFailed Outcome = "query-failed"
	// OutcomeWriteFailed means the query succeeded but the sheet write
	// could not be completed.
	OutcomeWriteFailed Outcome = "write-failed"
)

// TargetResult records the outcome of one (grouping, region, month) target.
type TargetResult struct {
	Target  Target
	Outcome Outcome
	// Amount is set for OutcomeOK.
	Amount decimal.Decimal
	// Err holds the failure for query-failed / write-failed outcomes.
	Err error
}

// Failed reports whether the target ended in an error outcome.
func (r TargetResult) Failed() bool {
	return r.Outcome == OutcomeQueryFailed || r.Outcome == OutcomeWriteFailed
}

// RunSummary aggregates the per-target outcomes of one sync run, in
// registry order.
type RunSummary struct {
	Results []TargetResult
}

// Record appends one target result.
func (s *RunSummary) Record(r TargetResult) {
	s.Results = append(s.Results, r)
}

// Counts returns the number of ok, no-data and failed targets.
func (s *RunSummary) Counts() (ok, noData, failed int) {
	for _, r := range s.Results {
		switch {
		case r.Outcome == OutcomeOK:
			ok++
		case r.Outcome == OutcomeNoData:
			noData++
		case r.Failed():
			failed++
		}
	}
	return ok, noData, failed
}

// Failures returns the failed targets, in run order.
func (s *RunSummary) Failures() []TargetResult {
	var out []TargetResult
	for _, r := range s.Results {
		if r.Failed() {
			out = append(out, r)
		}
	}
	return out
}

// HasFailures reports whether any target ended in query-failed or
// write-failed. Drives the process exit status for non-interactive runs.
func (s *RunSummary) HasFailures() bool {
	for _, r := range s.Results {
		if r.Failed() {
			return true
		}
	}
	return false
}
