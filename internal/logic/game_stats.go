package logic

import (
	"sort"

	"github.com/puzzleboard/stats-api/internal/models"
)

const (
	// defaultLeaderboardSize caps the per-game leaderboard.
	defaultLeaderboardSize = 10
	// recentRingSize caps the per-game recent-entries ring.
	recentRingSize = 5
)

// ComputeGameStats aggregates per-game statistics over all entries.
//
// The running average uses the incremental form avg' = (avg*(n-1)+x)/n with
// n = total plays so far, so plays without a recorded time still count into
// the divisor. The leaderboard is built in a second, independent pass over
// the full entry list. Entries referencing a game the dataset does not
// declare are skipped; they are malformed input, not an error condition.
func (s *statsService) ComputeGameStats(entries []models.Entry, games map[string]models.Game) map[string]models.GameStat {
	stats := make(map[string]models.GameStat, len(games))
	unique := make(map[string]map[string]struct{}, len(games))

	for id := range games {
		stats[id] = models.GameStat{
			GameID:      id,
			Leaderboard: []models.Entry{},
			Recent:      []models.Entry{},
		}
		unique[id] = make(map[string]struct{})
	}

	for _, e := range entries {
		stat, ok := stats[e.Game]
		if !ok {
			continue
		}

		stat.TotalPlays++
		unique[e.Game][e.PlayerID] = struct{}{}

		if e.Metrics.Time != nil {
			t := *e.Metrics.Time
			if stat.BestTime == nil || t < *stat.BestTime {
				best := t
				stat.BestTime = &best
			}
			n := float64(stat.TotalPlays)
			stat.AvgTime = (stat.AvgTime*(n-1) + float64(t)) / n
		}

		// Front-insert into the recent ring, truncating at the cap.
		stat.Recent = append([]models.Entry{e}, stat.Recent...)
		if len(stat.Recent) > recentRingSize {
			stat.Recent = stat.Recent[:recentRingSize]
		}

		stats[e.Game] = stat
	}

	for id := range stats {
		stat := stats[id]
		stat.UniquePlayers = len(unique[id])

		game := games[id]
		metric := game.DefaultMetric()

		var forGame []models.Entry
		for _, e := range entries {
			if e.Game == id {
				forGame = append(forGame, e)
			}
		}
		sort.SliceStable(forGame, func(i, j int) bool {
			return forGame[i].Metrics.Value(metric) < forGame[j].Metrics.Value(metric)
		})
		if len(forGame) > s.leaderboardSize {
			forGame = forGame[:s.leaderboardSize]
		}
		if forGame == nil {
			forGame = []models.Entry{}
		}
		stat.Leaderboard = forGame

		stats[id] = stat
	}

	return stats
}
