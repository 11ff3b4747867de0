package cli

import (
	"fmt"
	"strings"

	"github.com/hahaha-network/revsync/internal/common"
	"github.com/hahaha-network/revsync/internal/model"
)

// RenderSummary formats a run summary for the terminal: per-target lines
// in run order, then totals. Every failed target names its grouping,
// variant, month and error kind.
func RenderSummary(summary *model.RunSummary) string {
	var b strings.Builder

	for _, r := range summary.Results {
		b.WriteString(renderResult(r))
		b.WriteByte('\n')
	}

	ok, noData, failed := summary.Counts()
	b.WriteByte('\n')
	b.WriteString(fmt.Sprintf("%s written, %s without data, %s failed",
		SuccessStyle.Render(fmt.Sprintf("%d", ok)),
		SubtleStyle.Render(fmt.Sprintf("%d", noData)),
		renderFailedCount(failed)))

	return RenderBox("Revenue Sync Summary", b.String())
}

func renderResult(r model.TargetResult) string {
	label := fmt.Sprintf("%-28s %s", r.Target.Header(), r.Target.Month)

	switch r.Outcome {
	case model.OutcomeOK:
		return FormatSuccess(fmt.Sprintf("%s  %s", label, r.Amount.StringFixed(2)))
	case model.OutcomeNoData:
		return SubtleStyle.Render(fmt.Sprintf("- %s  no data", label))
	case model.OutcomeQueryFailed, model.OutcomeWriteFailed:
		return FormatError(fmt.Sprintf("%s  %s: %s (%v)", label, r.Outcome, common.ErrorKind(r.Err), r.Err))
	default:
		return label
	}
}

func renderFailedCount(failed int) string {
	s := fmt.Sprintf("%d", failed)
	if failed > 0 {
		return ErrorStyle.Render(s)
	}
	return SuccessStyle.Render(s)
}
