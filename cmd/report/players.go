package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/puzzleboard/stats-api/internal/logic"
)

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "Show per-player totals",
	Args:  cobra.NoArgs,
	RunE:  runPlayers,
}

func runPlayers(cmd *cobra.Command, args []string) error {
	ds, err := loadDataset()
	if err != nil {
		return err
	}

	svc := logic.NewStatsService(zap.NewNop(), logic.StatsOptions{})
	stats, err := svc.ComputePlayerStats(ds.Entries, ds.Players)
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ds.PlayerName(ids[i]) < ds.PlayerName(ids[j])
	})

	t := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
	t.Header("PLAYER", "GAMES", "FAVORITE", "TOTAL TIME")
	for _, id := range ids {
		ps := stats[id]
		t.Append(
			ds.PlayerName(id),
			fmt.Sprintf("%d", ps.TotalGames),
			ps.FavoriteGame,
			logic.FormatTime(ps.TotalTime),
		)
	}
	t.Render()

	return nil
}
