package logic

import (
	"errors"
	"fmt"

	"github.com/puzzleboard/stats-api/internal/models"
)

// ErrUnknownPlayer reports an entry referencing a player the dataset never
// declared. The loader guarantees referential integrity before aggregation
// runs, so hitting this means a bug upstream, not a data variation.
var ErrUnknownPlayer = errors.New("entry references unknown player")

// ComputePlayerStats aggregates per-player statistics over all entries.
//
// Per-game averages use a two-accumulator running average (total and count,
// finalized in a post-pass) rather than the incremental formula used by
// ComputeGameStats. The two forms converge to the same mean; both are kept
// distinct so outputs stay comparable with the system this replaces.
func (s *statsService) ComputePlayerStats(entries []models.Entry, players map[string]string) (map[string]models.PlayerStat, error) {
	stats := make(map[string]models.PlayerStat, len(players))
	// First-seen game order per player, so favorite-game ties resolve
	// deterministically to the earliest game encountered.
	gameOrder := make(map[string][]string, len(players))

	for id := range players {
		stats[id] = models.PlayerStat{
			PlayerID:    id,
			GamesByType: make(map[string]int),
			BestTimes:   make(map[string]int),
			AvgTimes:    make(map[string]models.RunningAverage),
		}
	}

	for _, e := range entries {
		stat, ok := stats[e.PlayerID]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPlayer, e.PlayerID)
		}

		stat.TotalGames++
		if _, seen := stat.GamesByType[e.Game]; !seen {
			gameOrder[e.PlayerID] = append(gameOrder[e.PlayerID], e.Game)
		}
		stat.GamesByType[e.Game]++

		if e.Metrics.Time != nil {
			t := *e.Metrics.Time
			stat.TotalTime += t

			if best, ok := stat.BestTimes[e.Game]; !ok || t < best {
				stat.BestTimes[e.Game] = t
			}

			avg := stat.AvgTimes[e.Game]
			avg.Total += t
			avg.Count++
			stat.AvgTimes[e.Game] = avg
		}

		stats[e.PlayerID] = stat
	}

	for id := range stats {
		stat := stats[id]

		for game, avg := range stat.AvgTimes {
			avg.Average = float64(avg.Total) / float64(avg.Count)
			stat.AvgTimes[game] = avg
		}

		// Favorite game: highest play count, first-encountered wins ties.
		maxPlays := 0
		for _, game := range gameOrder[id] {
			if count := stat.GamesByType[game]; count > maxPlays {
				maxPlays = count
				stat.FavoriteGame = game
			}
		}

		stats[id] = stat
	}

	return stats, nil
}
