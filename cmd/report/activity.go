package main

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/puzzleboard/stats-api/internal/logic"
)

var activityLimit int

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Show the most recent plays",
	Args:  cobra.NoArgs,
	RunE:  runActivity,
}

func init() {
	activityCmd.Flags().IntVar(&activityLimit, "limit", 15, "maximum number of entries")
}

func runActivity(cmd *cobra.Command, args []string) error {
	ds, err := loadDataset()
	if err != nil {
		return err
	}

	svc := logic.NewStatsService(zap.NewNop(), logic.StatsOptions{})
	recent := svc.RecentActivity(ds.Entries, activityLimit)

	t := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
	t.Header("DATE", "PLAYER", "GAME", "SCORE")
	for _, e := range recent {
		t.Append(
			e.Date,
			ds.PlayerName(e.PlayerID),
			e.Game,
			logic.FormatMetric(e.Metrics, ds.Games[e.Game]),
		)
	}
	t.Render()

	return nil
}
