package model

import "github.com/shopspring/decimal"

// RevenueObservation is the outcome of one analytics query: the estimated
// revenue for a grouping over one calendar month. Observations live only
// for the duration of a run; the spreadsheet is the durable store.
type RevenueObservation struct {
	GroupID string
	Period  Month
	// Amount is the estimated revenue in the configured currency.
	// Only meaningful when Present is true.
	Amount decimal.Decimal
	// Present is false when the backend reported no rows for the period,
	// which is common for months with no monetized views. That is a
	// no-data result, not an error.
	Present bool
}

// NewRevenueObservation builds a present observation.
func NewRevenueObservation(groupID string, period Month, amount decimal.Decimal) RevenueObservation {
	return RevenueObservation{GroupID: groupID, Period: period, Amount: amount, Present: true}
}

// NoDataObservation builds an observation for a period the backend has no
// rows for.
func NoDataObservation(groupID string, period Month) RevenueObservation {
	return RevenueObservation{GroupID: groupID, Period: period}
}
