package models

// TimeRange names a partition of the entry set by recency.
type TimeRange string

const (
	RangeDaily   TimeRange = "daily"
	RangeAllTime TimeRange = "allTime"
)

// FilterState is the presentation layer's current view configuration, passed
// explicitly into every filtered recompute. There is no ambient filter state
// inside the aggregation code.
type FilterState struct {
	Range TimeRange `json:"range"`
	// Date selects the calendar date for the daily range. Empty means the
	// reference time supplied by the caller.
	Date      string `json:"date,omitempty"`
	ShowWorst bool   `json:"show_worst"`
	// Metrics overrides the ranking metric per game id. Games without an
	// override rank by their default metric.
	Metrics map[string]Metric `json:"metrics,omitempty"`
}

// MetricFor resolves the ranking metric for a game under this state.
func (s FilterState) MetricFor(g Game) Metric {
	if m, ok := s.Metrics[g.ID]; ok && m != "" {
		return m
	}
	return g.DefaultMetric()
}

// GameStat is the full-dataset aggregate for one game.
type GameStat struct {
	GameID        string  `json:"game_id"`
	TotalPlays    int     `json:"total_plays"`
	UniquePlayers int     `json:"unique_players"`
	BestTime      *int    `json:"best_time,omitempty"`
	AvgTime       float64 `json:"avg_time"`
	Leaderboard   []Entry `json:"leaderboard"`
	Recent        []Entry `json:"recent"`
}

// RunningAverage is the two-accumulator average used by the player stats
// pass. It intentionally differs from the incremental formula used for game
// stats; both converge to the same mean but the accumulator form keeps the
// exact total around for display.
type RunningAverage struct {
	Total   int     `json:"total"`
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}

// PlayerStat is the full-dataset aggregate for one player.
type PlayerStat struct {
	PlayerID     string                    `json:"player_id"`
	TotalGames   int                       `json:"total_games"`
	GamesByType  map[string]int            `json:"games_by_type"`
	BestTimes    map[string]int            `json:"best_times"`
	AvgTimes     map[string]RunningAverage `json:"avg_times"`
	FavoriteGame string                    `json:"favorite_game,omitempty"`
	TotalTime    int                       `json:"total_time"`
}

// TrendDirection indicates whether a player's recent results are better,
// worse, or level with their earlier ones.
type TrendDirection string

const (
	TrendUp   TrendDirection = "up"
	TrendDown TrendDirection = "down"
	TrendFlat TrendDirection = "flat"
)

// Trend is the improvement indicator for a metric series: the first-half
// average compared against the second-half average.
type Trend struct {
	Direction TrendDirection `json:"direction"`
	Value     float64        `json:"value"`
}

// GamePerformance summarizes one player's history in one game.
type GamePerformance struct {
	GameID      string  `json:"game_id"`
	Plays       int     `json:"plays"`
	Average     float64 `json:"average"`
	Best        int     `json:"best"`
	Worst       int     `json:"worst"`
	Latest      int     `json:"latest"`
	Trend       Trend   `json:"trend"`
	Consistency float64 `json:"consistency"`
}

// TrendPoint is one sample on a player's performance-over-time series.
type TrendPoint struct {
	Date   string `json:"date"`
	GameID string `json:"game_id"`
	Value  int    `json:"value"`
}

// ComparisonRow is one player's line in a per-game comparison table.
type ComparisonRow struct {
	PlayerID   string  `json:"player_id"`
	PlayerName string  `json:"player_name"`
	Plays      int     `json:"plays"`
	Average    float64 `json:"average"`
	Best       int     `json:"best"`
	Latest     int     `json:"latest"`
	Trend      Trend   `json:"trend"`
}

// SummaryCard is one dashboard category with its top players.
type SummaryCard struct {
	Title  string      `json:"title"`
	Metric string      `json:"metric"`
	Top    []CardEntry `json:"top"`
}

// CardEntry is one ranked player on a summary card.
type CardEntry struct {
	Rank         int     `json:"rank"`
	PlayerID     string  `json:"player_id"`
	PlayerName   string  `json:"player_name"`
	Value        float64 `json:"value"`
	DisplayValue string  `json:"display_value,omitempty"`
}

// Snapshot bundles every full-dataset aggregate derived from one dataset
// load. It has no identity of its own; it is discarded and rebuilt whenever
// the dataset changes.
type Snapshot struct {
	Dataset        *Dataset              `json:"-"`
	GameStats      map[string]GameStat   `json:"game_stats"`
	PlayerStats    map[string]PlayerStat `json:"player_stats"`
	RecentActivity []Entry               `json:"recent_activity"`
	TimeRanges     map[TimeRange][]Entry `json:"-"`
}
