package logic

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/puzzleboard/stats-api/internal/models"
)

type leaderboardService struct {
	logger *zap.SugaredLogger
}

func NewLeaderboardService(logger *zap.Logger) LeaderboardService {
	return &leaderboardService{logger: logger.Sugar()}
}

// EntriesForRange selects the entries visible under the state's time range.
// Daily filters on the state's selected date (or now's calendar date when no
// date is selected); allTime and unrecognized ranges return everything.
func (s *leaderboardService) EntriesForRange(ds *models.Dataset, state models.FilterState, now time.Time) []models.Entry {
	if state.Range != models.RangeDaily {
		return ds.Entries
	}

	date := state.Date
	if date == "" {
		date = now.Format(isoDate)
	}

	filtered := []models.Entry{}
	for _, e := range ds.Entries {
		if e.Date == date {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// ComputeFilteredGameStats groups the (already range-filtered) entries by
// game and orders each group under the state's metric and direction.
//
// In the all-time view each player collapses to one entry: a linear scan
// keeps whichever entry strictly improves (or, in worst mode, worsens) the
// kept value, so ties keep the first-seen entry. Any other range keeps all
// matching entries. Sorting is ascending in best mode and descending in
// worst mode; after the worst-mode collapse the descending sort surfaces the
// globally worst first. A missing metric compares as 0.
func (s *leaderboardService) ComputeFilteredGameStats(games map[string]models.Game, entries []models.Entry, state models.FilterState) map[string][]models.Entry {
	grouped := make(map[string][]models.Entry)
	for _, e := range entries {
		grouped[e.Game] = append(grouped[e.Game], e)
	}

	for gameID, groupEntries := range grouped {
		game, ok := games[gameID]
		if !ok {
			// Entries for undeclared games pass through untouched.
			continue
		}
		metric := state.MetricFor(game)

		if state.Range == models.RangeAllTime {
			groupEntries = collapsePerPlayer(groupEntries, metric, state.ShowWorst)
		}

		sort.SliceStable(groupEntries, func(i, j int) bool {
			a := groupEntries[i].Metrics.Value(metric)
			b := groupEntries[j].Metrics.Value(metric)
			if state.ShowWorst {
				return a > b
			}
			return a < b
		})

		grouped[gameID] = groupEntries
	}

	return grouped
}

// collapsePerPlayer reduces a game's entries to one per player in a single
// pass: an incoming entry replaces the kept one only on strict improvement
// (strict worsening in worst mode).
func collapsePerPlayer(entries []models.Entry, metric models.Metric, worst bool) []models.Entry {
	kept := make(map[string]models.Entry)
	var order []string

	for _, e := range entries {
		current, ok := kept[e.PlayerID]
		if !ok {
			kept[e.PlayerID] = e
			order = append(order, e.PlayerID)
			continue
		}

		currentValue := current.Metrics.Value(metric)
		newValue := e.Metrics.Value(metric)

		replace := newValue < currentValue
		if worst {
			replace = newValue > currentValue
		}
		if replace {
			kept[e.PlayerID] = e
		}
	}

	out := make([]models.Entry, 0, len(kept))
	for _, playerID := range order {
		out = append(out, kept[playerID])
	}
	return out
}
