// Package sync drives a revenue sync run: for every registry grouping and
// region variant, query the analytics backend and write the figures into
// the sheet, collecting per-target outcomes along the way.
package sync

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/hahaha-network/revsync/internal/common"
	"github.com/hahaha-network/revsync/internal/model"
	"github.com/hahaha-network/revsync/internal/service"
	"github.com/schollz/progressbar/v3"
)

// Options tunes a single run.
type Options struct {
	// EnsureRows inserts missing month rows chronologically before any
	// write. Without it, a missing month row is a per-target RowNotFound.
	EnsureRows bool
	// Progress renders a terminal progress bar across the targets.
	Progress bool
}

// Orchestrator sequences one sync run. Execution is strictly sequential in
// registry order; a failure on one target never blocks the others.
type Orchestrator struct {
	source    service.RevenueSource
	writer    service.SheetWriter
	logger    *slog.Logger
	groupings []model.Grouping
	opts      Options
}

// New creates an orchestrator over the given source, writer and registry.
func New(source service.RevenueSource, writer service.SheetWriter, groupings []model.Grouping, logger *slog.Logger, opts Options) *Orchestrator {
	return &Orchestrator{
		source:    source,
		writer:    writer,
		groupings: groupings,
		logger:    logger,
		opts:      opts,
	}
}

// Run syncs every (grouping, region, month) target and returns the
// ordered summary. The returned error is non-nil only for fatal
// conditions (authentication, configuration, unreadable sheet) that abort
// the run before or during setup; per-target failures land in the summary
// instead.
func (o *Orchestrator) Run(ctx context.Context, months []model.Month) (*model.RunSummary, error) {
	if len(months) == 0 {
		return nil, fmt.Errorf("%w: no months selected", common.ErrInvalidConfig)
	}

	months = append([]model.Month(nil), months...)
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })
	from, to := months[0], months[len(months)-1]

	if err := o.writer.Load(ctx); err != nil {
		return nil, fmt.Errorf("indexing worksheet: %w", err)
	}

	// Surface missing columns up front; the affected targets still run and
	// fail individually so the summary names each one.
	if missing := o.writer.MissingHeaders(o.headers()); len(missing) > 0 {
		o.logger.Warn("worksheet is missing column headers", "headers", missing)
	}

	if o.opts.EnsureRows {
		if err := o.writer.EnsureMonthRows(ctx, months); err != nil {
			return nil, fmt.Errorf("ensuring month rows: %w", err)
		}
	}

	var bar *progressbar.ProgressBar
	if o.opts.Progress {
		bar = o.newProgressBar()
	}

	summary := &model.RunSummary{}

	for _, grouping := range o.groupings {
		for _, region := range grouping.Regions {
			if err := o.syncVariant(ctx, summary, grouping, region, months, from, to); err != nil {
				return summary, err
			}
			if bar != nil {
				if err := bar.Add(1); err != nil {
					o.logger.Warn("Failed to update progress bar", "error", err)
				}
			}

			if ctx.Err() != nil {
				return summary, ctx.Err()
			}
		}
	}

	ok, noData, failed := summary.Counts()
	o.logger.Info("sync run complete",
		"months", fmt.Sprintf("%s..%s", from, to),
		"ok", ok,
		"no_data", noData,
		"failed", failed)

	return summary, nil
}

// syncVariant queries one (grouping, region) pair across the whole month
// range and writes each month that has data. A non-nil return is fatal for
// the whole run; per-target failures are recorded in the summary instead.
func (o *Orchestrator) syncVariant(ctx context.Context, summary *model.RunSummary, grouping model.Grouping, region model.RegionFilter, months []model.Month, from, to model.Month) error {
	header := grouping.Header(region)

	o.logger.Info("querying revenue",
		"group", grouping.Name,
		"group_id", grouping.ID,
		"region", region,
		"months", fmt.Sprintf("%s..%s", from, to))

	observations, err := o.source.QueryRevenueRange(ctx, grouping.ID, region, from, to)
	if err != nil {
		// Credentials cannot be fixed mid-run; everything else is a
		// per-target failure and the run moves on.
		if common.IsFatal(err) {
			return err
		}
		for _, month := range months {
			summary.Record(model.TargetResult{
				Target:  model.Target{Grouping: grouping, Region: region, Month: month},
				Outcome: model.OutcomeQueryFailed,
				Err:     err,
			})
		}
		o.logger.Error("query failed",
			"group", grouping.Name,
			"region", region,
			"kind", common.ErrorKind(err),
			"error", err)
		return nil
	}

	for _, month := range months {
		target := model.Target{Grouping: grouping, Region: region, Month: month}

		obs, present := observations[month]
		if !present || !obs.Present {
			// No rows for this month upstream. The existing cell value,
			// if any, stays untouched so a reporting gap cannot destroy
			// a previously recorded figure.
			summary.Record(model.TargetResult{Target: target, Outcome: model.OutcomeNoData})
			continue
		}

		if err := o.writer.WriteValue(ctx, header, month, obs.Amount); err != nil {
			if common.IsFatal(err) {
				return err
			}
			summary.Record(model.TargetResult{
				Target:  target,
				Outcome: model.OutcomeWriteFailed,
				Err:     err,
			})
			o.logger.Error("write failed",
				"header", header,
				"month", month.String(),
				"kind", common.ErrorKind(err),
				"error", err)
			continue
		}

		summary.Record(model.TargetResult{
			Target:  target,
			Outcome: model.OutcomeOK,
			Amount:  obs.Amount,
		})
	}

	return nil
}

// headers lists every column header the run will write, in registry order.
func (o *Orchestrator) headers() []string {
	var out []string
	for _, g := range o.groupings {
		for _, region := range g.Regions {
			out = append(out, g.Header(region))
		}
	}
	return out
}

func (o *Orchestrator) newProgressBar() *progressbar.ProgressBar {
	total := 0
	for _, g := range o.groupings {
		total += len(g.Regions)
	}

	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Syncing revenue...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)
}
