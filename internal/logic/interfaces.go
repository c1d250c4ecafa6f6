package logic

import (
	"context"
	"time"

	"github.com/puzzleboard/stats-api/internal/models"
)

// StatsService computes the full-dataset aggregates. Every method is a pure
// function of its inputs; outputs are discarded and rebuilt whenever the
// dataset changes, never patched incrementally.
type StatsService interface {
	Recompute(ctx context.Context, ds *models.Dataset, now time.Time) (*models.Snapshot, error)
	ComputeGameStats(entries []models.Entry, games map[string]models.Game) map[string]models.GameStat
	ComputePlayerStats(entries []models.Entry, players map[string]string) (map[string]models.PlayerStat, error)
	RecentActivity(entries []models.Entry, limit int) []models.Entry
	TimeRangeStats(entries []models.Entry, now time.Time) map[models.TimeRange][]models.Entry
}

// LeaderboardService derives the filtered per-view leaderboards from the
// current filter state.
type LeaderboardService interface {
	EntriesForRange(ds *models.Dataset, state models.FilterState, now time.Time) []models.Entry
	ComputeFilteredGameStats(games map[string]models.Game, entries []models.Entry, state models.FilterState) map[string][]models.Entry
}

// PerformanceService derives the profile, comparison, and dashboard summary
// views.
type PerformanceService interface {
	PlayerPerformance(ds *models.Dataset, playerID string) []models.GamePerformance
	TrendPoints(ds *models.Dataset, playerID string, limit int) []models.TrendPoint
	ComparisonRows(ds *models.Dataset, gameID string) []models.ComparisonRow
	SummaryCards(snap *models.Snapshot) []models.SummaryCard
}
