package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/hahaha-network/revsync/internal/cli"
	"github.com/hahaha-network/revsync/internal/config"
	"github.com/hahaha-network/revsync/internal/model"
	"github.com/hahaha-network/revsync/internal/registry"
	"github.com/hahaha-network/revsync/internal/sheets"
	syncer "github.com/hahaha-network/revsync/internal/sync"
	"github.com/hahaha-network/revsync/internal/tui"
	"github.com/hahaha-network/revsync/internal/youtube"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func syncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Sync monthly revenue into the sheet",
		Long: `Query estimated revenue for every configured channel group (all
regions + US only) and write the figures into the worksheet.

By default the previous calendar month is synced. A range of months can
be synced in one run with --from/--to; one analytics query per group
variant covers the whole range.`,
		RunE: runSync,
	}

	cmd.Flags().StringP("month", "m", "", "Month to sync (format: 2006-01; default: previous month)")
	cmd.Flags().String("from", "", "First month of a range to sync (format: 2006-01)")
	cmd.Flags().String("to", "", "Last month of a range to sync (format: 2006-01)")
	cmd.Flags().Bool("ensure-rows", false, "Insert missing month rows chronologically before writing")
	cmd.Flags().BoolP("interactive", "i", false, "Pick the month range in the terminal before running")
	cmd.Flags().Bool("progress", true, "Show a progress bar across sync targets")

	_ = viper.BindPFlag("sync.month", cmd.Flags().Lookup("month"))
	_ = viper.BindPFlag("sync.from", cmd.Flags().Lookup("from"))
	_ = viper.BindPFlag("sync.to", cmd.Flags().Lookup("to"))
	_ = viper.BindPFlag("sync.ensure_rows", cmd.Flags().Lookup("ensure-rows"))
	_ = viper.BindPFlag("sync.progress", cmd.Flags().Lookup("progress"))

	return cmd
}

func runSync(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	from, to, err := resolveMonths()
	if err != nil {
		return err
	}

	if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
		picked, pickErr := tui.PickMonthRange(from, to)
		if pickErr != nil {
			return pickErr
		}
		if !picked.Confirmed {
			slog.Info("Sync cancelled")
			return nil
		}
		from, to = picked.From, picked.To
	}

	months := model.MonthsBetween(from, to)

	// All configuration problems surface here, before any network call.
	ytConfig, err := config.LoadYouTubeConfig()
	if err != nil {
		return err
	}
	sheetConfig, err := config.LoadSheetsConfig()
	if err != nil {
		return err
	}
	groupings, err := registry.Load()
	if err != nil {
		return err
	}

	slog.Info(cli.FormatTitle("Syncing CMS revenue"),
		"from", from.String(),
		"to", to.String(),
		"groups", len(groupings),
		"currency", ytConfig.Currency)

	source, err := youtube.NewClient(ctx, *ytConfig, slog.Default())
	if err != nil {
		return err
	}

	writer, err := sheets.NewWriter(ctx, *sheetConfig, slog.Default())
	if err != nil {
		return err
	}

	orchestrator := syncer.New(source, writer, groupings, slog.Default(), syncer.Options{
		EnsureRows: viper.GetBool("sync.ensure_rows"),
		Progress:   viper.GetBool("sync.progress"),
	})

	summary, err := orchestrator.Run(ctx, months)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.RenderSummary(summary))

	if summary.HasFailures() {
		_, _, failed := summary.Counts()
		return fmt.Errorf("%d sync target(s) failed", failed)
	}
	return nil
}

// resolveMonths picks the month window from flags: an explicit range wins,
// then a single --month, then the previous calendar month.
func resolveMonths() (from, to model.Month, err error) {
	fromStr := viper.GetString("sync.from")
	toStr := viper.GetString("sync.to")
	monthStr := viper.GetString("sync.month")

	switch {
	case fromStr != "" || toStr != "":
		if fromStr == "" || toStr == "" {
			return model.Month{}, model.Month{}, fmt.Errorf("--from and --to must be used together")
		}
		if from, err = model.ParseMonth(fromStr); err != nil {
			return model.Month{}, model.Month{}, err
		}
		if to, err = model.ParseMonth(toStr); err != nil {
			return model.Month{}, model.Month{}, err
		}
		if to.Before(from) {
			return model.Month{}, model.Month{}, fmt.Errorf("--to %s is before --from %s", to, from)
		}
		return from, to, nil

	case monthStr != "":
		if from, err = model.ParseMonth(monthStr); err != nil {
			return model.Month{}, model.Month{}, err
		}
		return from, from, nil

	default:
		prev := model.MonthOf(time.Now()).Prev()
		return prev, prev, nil
	}
}
