package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/hahaha-network/revsync/internal/cli"
	"github.com/hahaha-network/revsync/internal/config"
	"github.com/hahaha-network/revsync/internal/youtube"
	"github.com/spf13/cobra"
)

func groupsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "List the content owner's channel groups",
		Long: `List the channel groups visible to the configured content owner.

Use the printed ids to fill in the groups section of the config file;
the ids match the <GROUP_ID> in studio.youtube.com/group/<GROUP_ID>/analytics.`,
		RunE: runGroups,
	}
}

func runGroups(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	ytConfig, err := config.LoadYouTubeConfig()
	if err != nil {
		return err
	}

	client, err := youtube.NewClient(ctx, *ytConfig, slog.Default())
	if err != nil {
		return err
	}

	groups, err := client.ListGroups(ctx)
	if err != nil {
		return err
	}

	if len(groups) == 0 {
		slog.Info("No channel groups found for this content owner")
		return nil
	}

	var b strings.Builder
	for _, g := range groups {
		b.WriteString(fmt.Sprintf("%-40s %s\n", g.ID, g.Title))
	}
	fmt.Fprintln(cmd.OutOrStdout(), cli.RenderBox(fmt.Sprintf("Channel Groups (%d)", len(groups)), strings.TrimRight(b.String(), "\n")))

	return nil
}
