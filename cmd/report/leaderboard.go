package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/puzzleboard/stats-api/internal/logic"
	"github.com/puzzleboard/stats-api/internal/models"
)

var (
	lbRange   string
	lbDate    string
	lbWorst   bool
	lbMetrics []string
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show per-game leaderboards",
	Long: `Render one ranking table per game. The all-time range keeps each
player's single best score; the daily range shows every play from one day.`,
	Args: cobra.NoArgs,
	RunE: runLeaderboard,
}

func init() {
	leaderboardCmd.Flags().StringVar(&lbRange, "range", string(models.RangeAllTime), "time range: daily or allTime")
	leaderboardCmd.Flags().StringVar(&lbDate, "date", "", "day to show for the daily range (YYYY-MM-DD, default today)")
	leaderboardCmd.Flags().BoolVar(&lbWorst, "worst", false, "rank worst scores instead of best")
	leaderboardCmd.Flags().StringArrayVar(&lbMetrics, "metric", nil, "per-game metric override as game:metric, repeatable")
}

func runLeaderboard(cmd *cobra.Command, args []string) error {
	ds, err := loadDataset()
	if err != nil {
		return err
	}

	state := models.FilterState{
		Range:     models.TimeRange(lbRange),
		Date:      lbDate,
		ShowWorst: lbWorst,
		Metrics:   map[string]models.Metric{},
	}
	if state.Range != models.RangeDaily && state.Range != models.RangeAllTime {
		return fmt.Errorf("unknown range %q", lbRange)
	}
	for _, raw := range lbMetrics {
		game, metric, ok := strings.Cut(raw, ":")
		if !ok {
			return fmt.Errorf("bad metric override %q, want game:metric", raw)
		}
		switch m := models.Metric(metric); m {
		case models.MetricTime, models.MetricGuesses, models.MetricBacktracks:
			state.Metrics[game] = m
		default:
			return fmt.Errorf("unknown metric %q", metric)
		}
	}

	svc := logic.NewLeaderboardService(zap.NewNop())
	entries := svc.EntriesForRange(ds, state, time.Now())
	boards := svc.ComputeFilteredGameStats(ds.Games, entries, state)

	gameIDs := make([]string, 0, len(boards))
	for id := range boards {
		gameIDs = append(gameIDs, id)
	}
	sort.Strings(gameIDs)

	for _, id := range gameIDs {
		board := boards[id]
		if len(board) == 0 {
			continue
		}
		game := ds.Games[id]

		fmt.Fprintf(os.Stdout, "\n--- %s %s ---\n\n", game.Icon, id)
		t := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
			Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
			Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
		}))
		t.Header("RANK", "PLAYER", "SCORE", "DATE")
		for i, e := range board {
			t.Append(
				fmt.Sprintf("%d", i+1),
				ds.PlayerName(e.PlayerID),
				logic.FormatMetric(e.Metrics, game),
				e.Date,
			)
		}
		t.Render()
	}

	return nil
}
