package logic

import (
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/puzzleboard/stats-api/internal/models"
)

const (
	// trendDeadBand is the minimum average shift counted as a real trend.
	trendDeadBand = 0.1
	// defaultTrendPoints caps a player's performance-over-time series.
	defaultTrendPoints = 20
	// cardSize is how many players a summary card ranks.
	cardSize = 3
)

type performanceService struct {
	logger *zap.SugaredLogger
}

func NewPerformanceService(logger *zap.Logger) PerformanceService {
	return &performanceService{logger: logger.Sugar()}
}

// seriesMetric picks the metric a player's history is charted by: time for
// timed games, guesses otherwise.
func seriesMetric(game models.Game) models.Metric {
	if game.HasTime {
		return models.MetricTime
	}
	return models.MetricGuesses
}

// PlayerPerformance summarizes a player's history per game: play count,
// average, best, worst, latest, improvement trend, and consistency. Games
// the dataset does not declare are skipped.
func (s *performanceService) PlayerPerformance(ds *models.Dataset, playerID string) []models.GamePerformance {
	byGame := make(map[string][]models.Entry)
	var gameIDs []string
	for _, e := range ds.Entries {
		if e.PlayerID != playerID {
			continue
		}
		if _, seen := byGame[e.Game]; !seen {
			gameIDs = append(gameIDs, e.Game)
		}
		byGame[e.Game] = append(byGame[e.Game], e)
	}

	out := []models.GamePerformance{}
	for _, gameID := range gameIDs {
		game, ok := ds.Games[gameID]
		if !ok {
			continue
		}

		entries := byGame[gameID]
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].GameNum < entries[j].GameNum
		})

		metric := seriesMetric(game)
		series := make([]int, len(entries))
		for i, e := range entries {
			series[i] = e.Metrics.Value(metric)
		}

		out = append(out, models.GamePerformance{
			GameID:      gameID,
			Plays:       len(entries),
			Average:     mean(series),
			Best:        minOf(series),
			Worst:       maxOf(series),
			Latest:      series[len(series)-1],
			Trend:       improvement(series, game),
			Consistency: consistency(series),
		})
	}

	return out
}

// TrendPoints returns the player's most recent results ordered oldest to
// newest, one point per entry, capped at limit.
func (s *performanceService) TrendPoints(ds *models.Dataset, playerID string, limit int) []models.TrendPoint {
	if limit <= 0 {
		limit = defaultTrendPoints
	}

	var entries []models.Entry
	for _, e := range ds.Entries {
		if e.PlayerID == playerID {
			entries = append(entries, e)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return parseDate(entries[i].Date).Before(parseDate(entries[j].Date))
	})
	if len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}

	points := []models.TrendPoint{}
	for _, e := range entries {
		game, ok := ds.Games[e.Game]
		if !ok {
			continue
		}
		points = append(points, models.TrendPoint{
			Date:   e.Date,
			GameID: e.Game,
			Value:  e.Metrics.Value(seriesMetric(game)),
		})
	}
	return points
}

// ComparisonRows builds the per-game comparison table, one row per player
// with at least one entry in the game, best averages first.
func (s *performanceService) ComparisonRows(ds *models.Dataset, gameID string) []models.ComparisonRow {
	game, ok := ds.Games[gameID]
	if !ok {
		return []models.ComparisonRow{}
	}
	metric := seriesMetric(game)

	byPlayer := make(map[string][]models.Entry)
	for _, e := range ds.Entries {
		if e.Game == gameID {
			byPlayer[e.PlayerID] = append(byPlayer[e.PlayerID], e)
		}
	}

	rows := []models.ComparisonRow{}
	for playerID, entries := range byPlayer {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].GameNum < entries[j].GameNum
		})

		series := make([]int, len(entries))
		for i, e := range entries {
			series[i] = e.Metrics.Value(metric)
		}

		rows = append(rows, models.ComparisonRow{
			PlayerID:   playerID,
			PlayerName: ds.PlayerName(playerID),
			Plays:      len(entries),
			Average:    round1(mean(series)),
			Best:       minOf(series),
			Latest:     series[len(series)-1],
			Trend:      improvement(series, game),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Average != rows[j].Average {
			return rows[i].Average < rows[j].Average
		}
		return rows[i].PlayerName < rows[j].PlayerName
	})

	return rows
}

// SummaryCards ranks the top players for each dashboard category using a
// bounded insertion sort per card.
func (s *performanceService) SummaryCards(snap *models.Snapshot) []models.SummaryCard {
	type category struct {
		metric  string
		title   string
		lower   bool // lower values rank first
		value   func(models.PlayerStat) (float64, bool)
		display func(float64) string
	}

	categories := []category{
		{
			metric: "total_plays",
			title:  "Most Plays",
			value: func(p models.PlayerStat) (float64, bool) {
				return float64(p.TotalGames), p.TotalGames > 0
			},
		},
		{
			metric: "total_time",
			title:  "Most Time Invested",
			value: func(p models.PlayerStat) (float64, bool) {
				return float64(p.TotalTime), p.TotalTime > 0
			},
			display: func(v float64) string { return FormatTime(int(v)) },
		},
		{
			metric: "games_sampled",
			title:  "Most Versatile",
			value: func(p models.PlayerStat) (float64, bool) {
				return float64(len(p.GamesByType)), len(p.GamesByType) > 0
			},
		},
	}

	// One fastest-run card per timed game, in stable id order.
	var gameIDs []string
	for id, game := range snap.Dataset.Games {
		if game.HasTime {
			gameIDs = append(gameIDs, id)
		}
	}
	sort.Strings(gameIDs)
	for _, gameID := range gameIDs {
		id := gameID
		categories = append(categories, category{
			metric: id + "_best_time",
			title:  "Fastest " + id,
			lower:  true,
			value: func(p models.PlayerStat) (float64, bool) {
				best, ok := p.BestTimes[id]
				return float64(best), ok
			},
			display: func(v float64) string { return FormatTime(int(v)) },
		})
	}

	cards := make([]models.SummaryCard, 0, len(categories))
	for _, cat := range categories {
		var best [cardSize]models.CardEntry
		count := 0

		ranksBefore := func(a, b models.CardEntry) bool {
			if cat.lower {
				return a.Value < b.Value
			}
			return a.Value > b.Value
		}

		for playerID, stat := range snap.PlayerStats {
			value, ok := cat.value(stat)
			if !ok {
				continue
			}
			candidate := models.CardEntry{
				PlayerID:   playerID,
				PlayerName: snap.Dataset.PlayerName(playerID),
				Value:      value,
			}

			if count < cardSize {
				best[count] = candidate
				count++
				for k := count - 1; k > 0; k-- {
					if ranksBefore(best[k], best[k-1]) {
						best[k], best[k-1] = best[k-1], best[k]
					}
				}
			} else if ranksBefore(candidate, best[cardSize-1]) {
				best[cardSize-1] = candidate
				for k := cardSize - 1; k > 0; k-- {
					if ranksBefore(best[k], best[k-1]) {
						best[k], best[k-1] = best[k-1], best[k]
					}
				}
			}
		}

		top := make([]models.CardEntry, 0, count)
		for i := 0; i < count; i++ {
			entry := best[i]
			entry.Rank = i + 1
			if cat.display != nil {
				entry.DisplayValue = cat.display(entry.Value)
			}
			top = append(top, entry)
		}

		cards = append(cards, models.SummaryCard{
			Title:  cat.title,
			Metric: cat.metric,
			Top:    top,
		})
	}

	return cards
}

// improvement compares the first-half average of a series against the
// second-half average. For timed games a falling average is an improvement;
// the sign convention for guess-based games mirrors the dashboard this
// replaces. Shifts under the dead band read as flat.
func improvement(series []int, game models.Game) models.Trend {
	if len(series) < 2 {
		return models.Trend{Direction: models.TrendFlat}
	}

	mid := len(series) / 2
	firstAvg := mean(series[:mid])
	secondAvg := mean(series[mid:])

	diff := firstAvg - secondAvg
	if !game.HasTime {
		diff = secondAvg - firstAvg
	}

	if math.Abs(diff) < trendDeadBand {
		return models.Trend{Direction: models.TrendFlat}
	}

	direction := models.TrendDown
	if diff > 0 {
		direction = models.TrendUp
	}
	return models.Trend{Direction: direction, Value: round1(math.Abs(diff))}
}

// consistency is the population standard deviation of a series, rounded to
// one decimal. Fewer than two samples read as perfectly consistent.
func consistency(series []int) float64 {
	if len(series) < 2 {
		return 0
	}

	m := mean(series)
	var sumSquares float64
	for _, v := range series {
		d := float64(v) - m
		sumSquares += d * d
	}
	return round1(math.Sqrt(sumSquares / float64(len(series))))
}

func mean(series []int) float64 {
	if len(series) == 0 {
		return 0
	}
	total := 0
	for _, v := range series {
		total += v
	}
	return float64(total) / float64(len(series))
}

func minOf(series []int) int {
	out := series[0]
	for _, v := range series[1:] {
		if v < out {
			out = v
		}
	}
	return out
}

func maxOf(series []int) int {
	out := series[0]
	for _, v := range series[1:] {
		if v > out {
			out = v
		}
	}
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
