package models

// Metric identifies a numeric performance measure carried by an entry.
// Lower is always better for every metric currently modeled.
type Metric string

const (
	MetricTime       Metric = "time"
	MetricGuesses    Metric = "guesses"
	MetricBacktracks Metric = "backtracks"
)

// Metrics holds the optional scores of a single play. A nil field means the
// message the entry was scraped from did not carry that measure.
type Metrics struct {
	Time       *int `json:"time,omitempty"`
	Guesses    *int `json:"guesses,omitempty"`
	Backtracks *int `json:"backtracks,omitempty"`
}

// Value returns the value of the given metric, or 0 when it is missing.
// The zero default means an entry missing its primary metric compares as the
// best possible score. That matches the upstream dashboard and is kept
// deliberately; callers that need to distinguish absence use Has.
func (m Metrics) Value(metric Metric) int {
	switch metric {
	case MetricTime:
		if m.Time != nil {
			return *m.Time
		}
	case MetricGuesses:
		if m.Guesses != nil {
			return *m.Guesses
		}
	case MetricBacktracks:
		if m.Backtracks != nil {
			return *m.Backtracks
		}
	}
	return 0
}

// Has reports whether the metric was actually recorded.
func (m Metrics) Has(metric Metric) bool {
	switch metric {
	case MetricTime:
		return m.Time != nil
	case MetricGuesses:
		return m.Guesses != nil
	case MetricBacktracks:
		return m.Backtracks != nil
	}
	return false
}

// GameKind classifies a game by its primary metric, computed once from the
// capability flags instead of re-checking them at every call site.
type GameKind int

const (
	KindTimed GameKind = iota
	KindGuessing
	KindBacktracking
	KindUnscored
)

// Game describes one puzzle and which metrics its entries carry.
type Game struct {
	ID            string `json:"id" yaml:"id"`
	HasTime       bool   `json:"hasTime" yaml:"hasTime"`
	HasGuesses    bool   `json:"hasGuesses" yaml:"hasGuesses"`
	HasBacktracks bool   `json:"hasBacktracks" yaml:"hasBacktracks"`
	Icon          string `json:"icon,omitempty" yaml:"icon"`
	// ReferenceNum is the puzzle number published on the catalog's
	// reference date, used to map puzzle numbers to calendar dates
	// (one puzzle per day).
	ReferenceNum int `json:"referenceNum,omitempty" yaml:"referenceNum"`
}

// Kind resolves the game's classification with the same priority order used
// for the default metric: time, then guesses, then backtracks.
func (g Game) Kind() GameKind {
	switch {
	case g.HasTime:
		return KindTimed
	case g.HasGuesses:
		return KindGuessing
	case g.HasBacktracks:
		return KindBacktracking
	}
	return KindUnscored
}

// DefaultMetric returns the highest-priority metric the game carries.
// Unscored games fall back to time.
func (g Game) DefaultMetric() Metric {
	switch g.Kind() {
	case KindGuessing:
		return MetricGuesses
	case KindBacktracking:
		return MetricBacktracks
	default:
		return MetricTime
	}
}

// AvailableMetrics lists the metrics the game carries, in priority order.
func (g Game) AvailableMetrics() []Metric {
	var out []Metric
	if g.HasTime {
		out = append(out, MetricTime)
	}
	if g.HasGuesses {
		out = append(out, MetricGuesses)
	}
	if g.HasBacktracks {
		out = append(out, MetricBacktracks)
	}
	return out
}

// Entry is one recorded play of one game by one player on one calendar date.
// Entries are immutable once loaded.
type Entry struct {
	PlayerID string  `json:"playerId" validate:"required"`
	Game     string  `json:"game" validate:"required"`
	GameNum  int     `json:"gameNum"`
	Date     string  `json:"date" validate:"required"` // ISO calendar date, no time component
	Metrics  Metrics `json:"metrics"`
}

// Dataset is the raw collection the whole service computes over. It is loaded
// and validated once at startup and never mutated afterwards.
type Dataset struct {
	// SnapshotID identifies one load of the dataset, for logs and readiness checks.
	SnapshotID string            `json:"snapshotId"`
	Players    map[string]string `json:"players"` // id -> display name
	Games      map[string]Game   `json:"games"`
	Entries    []Entry           `json:"entries"`
}

// PlayerName resolves a player id to its display name, falling back to
// "Unknown" for ids the dataset never declared.
func (d *Dataset) PlayerName(id string) string {
	if name, ok := d.Players[id]; ok && name != "" {
		return name
	}
	return "Unknown"
}
