// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/hahaha-network/revsync/internal/model"
	"github.com/shopspring/decimal"
)

// RevenueSource queries the analytics backend for estimated revenue.
type RevenueSource interface {
	// QueryRevenue returns the estimated revenue for one grouping over a
	// single calendar month, optionally restricted to one region. A month
	// with no rows yields an observation with Present=false, not an error.
	QueryRevenue(ctx context.Context, groupID string, region model.RegionFilter, month model.Month) (model.RevenueObservation, error)

	// QueryRevenueRange is the batched form: one query covering the
	// inclusive month range, returning an observation per month that had
	// rows. Months absent from the result had no data.
	QueryRevenueRange(ctx context.Context, groupID string, region model.RegionFilter, from, to model.Month) (map[model.Month]model.RevenueObservation, error)
}

// GroupLister enumerates the channel groups visible to the content owner.
type GroupLister interface {
	ListGroups(ctx context.Context) ([]GroupInfo, error)
}

// GroupInfo describes one discoverable channel group.
type GroupInfo struct {
	ID    string
	Title string
}

// SheetWriter places revenue values into the target worksheet.
type SheetWriter interface {
	// Load reads the header row and month column so subsequent writes can
	// be resolved without further reads.
	Load(ctx context.Context) error

	// EnsureMonthRows inserts rows for any of the given months missing
	// from the sheet, in chronological position, and refreshes the index.
	EnsureMonthRows(ctx context.Context, months []model.Month) error

	// MissingHeaders returns the subset of headers absent from the header
	// row, for pre-run reporting. Load must have been called.
	MissingHeaders(headers []string) []string

	// WriteValue writes amount into the cell at (month row, header
	// column) with one independent update call. Missing header or row
	// resolve to ErrColumnNotFound / ErrRowNotFound without writing
	// anything.
	WriteValue(ctx context.Context, header string, month model.Month, amount decimal.Decimal) error
}

// RetryOptions configures retry behavior for remote calls.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
