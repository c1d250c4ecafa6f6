package logic

import (
	"math"
	"testing"

	"go.uber.org/zap"

	"github.com/puzzleboard/stats-api/internal/models"
)

func numberedEntry(player, game string, gameNum, seconds int, date string) models.Entry {
	return models.Entry{
		PlayerID: player,
		Game:     game,
		GameNum:  gameNum,
		Date:     date,
		Metrics:  models.Metrics{Time: intPtr(seconds)},
	}
}

func TestImprovement(t *testing.T) {
	timed := models.Game{ID: "zip", HasTime: true}
	guessed := models.Game{ID: "pinpoint", HasGuesses: true}

	tests := []struct {
		name    string
		series  []int
		game    models.Game
		wantDir models.TrendDirection
		wantVal float64
	}{
		{"TooShort", []int{42}, timed, models.TrendFlat, 0},
		{"TimedFasterIsUp", []int{60, 60, 30, 30}, timed, models.TrendUp, 30},
		{"TimedSlowerIsDown", []int{30, 30, 60, 60}, timed, models.TrendDown, 30},
		{"DeadBandReadsFlat", []int{30, 30}, timed, models.TrendFlat, 0},
		{"GuessedSignFlips", []int{2, 2, 5, 5}, guessed, models.TrendUp, 3},
		{"OddLengthSplits", []int{60, 30, 30}, timed, models.TrendUp, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := improvement(tt.series, tt.game)
			if got.Direction != tt.wantDir {
				t.Errorf("Direction = %q, want %q", got.Direction, tt.wantDir)
			}
			if math.Abs(got.Value-tt.wantVal) > 1e-9 {
				t.Errorf("Value = %f, want %f", got.Value, tt.wantVal)
			}
		})
	}
}

func TestConsistency(t *testing.T) {
	tests := []struct {
		name   string
		series []int
		want   float64
	}{
		{"TooShort", []int{42}, 0},
		{"Uniform", []int{30, 30, 30}, 0},
		{"PopulationStddev", []int{10, 20}, 5},
		{"RoundedToTenth", []int{10, 11, 13}, 1.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := consistency(tt.series); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("consistency(%v) = %f, want %f", tt.series, got, tt.want)
			}
		})
	}
}

func TestPlayerPerformance(t *testing.T) {
	ds := &models.Dataset{
		Players: map[string]string{"alice": "Alice"},
		Games: map[string]models.Game{
			"zip": {ID: "zip", HasTime: true},
		},
		Entries: []models.Entry{
			numberedEntry("alice", "zip", 3, 20, "2025-08-03"),
			numberedEntry("alice", "zip", 1, 60, "2025-08-01"),
			numberedEntry("alice", "zip", 2, 40, "2025-08-02"),
			numberedEntry("alice", "wordle", 1, 99, "2025-08-01"),
		},
	}

	svc := NewPerformanceService(zap.NewNop())
	perf := svc.PlayerPerformance(ds, "alice")

	// The undeclared wordle game is skipped.
	if len(perf) != 1 {
		t.Fatalf("got %d games, want 1", len(perf))
	}

	zip := perf[0]
	if zip.Plays != 3 {
		t.Errorf("Plays = %d, want 3", zip.Plays)
	}
	if zip.Best != 20 || zip.Worst != 60 {
		t.Errorf("Best/Worst = %d/%d, want 20/60", zip.Best, zip.Worst)
	}
	// Series is ordered by puzzle number, so the latest is GameNum 3.
	if zip.Latest != 20 {
		t.Errorf("Latest = %d, want 20", zip.Latest)
	}
	if math.Abs(zip.Average-40.0) > 1e-9 {
		t.Errorf("Average = %f, want 40", zip.Average)
	}
	if zip.Trend.Direction != models.TrendUp {
		t.Errorf("Trend = %q, want up", zip.Trend.Direction)
	}
}

func TestTrendPoints(t *testing.T) {
	ds := &models.Dataset{
		Players: map[string]string{"alice": "Alice"},
		Games: map[string]models.Game{
			"zip": {ID: "zip", HasTime: true},
		},
		Entries: []models.Entry{
			numberedEntry("alice", "zip", 2, 40, "2025-08-02"),
			numberedEntry("alice", "zip", 1, 60, "2025-08-01"),
			numberedEntry("alice", "zip", 3, 20, "2025-08-03"),
		},
	}

	svc := NewPerformanceService(zap.NewNop())

	t.Run("OldestToNewest", func(t *testing.T) {
		points := svc.TrendPoints(ds, "alice", 0)
		if len(points) != 3 {
			t.Fatalf("got %d points, want 3", len(points))
		}
		if points[0].Date != "2025-08-01" || points[2].Date != "2025-08-03" {
			t.Errorf("order = %s .. %s", points[0].Date, points[2].Date)
		}
	})

	t.Run("LimitKeepsNewest", func(t *testing.T) {
		points := svc.TrendPoints(ds, "alice", 2)
		if len(points) != 2 {
			t.Fatalf("got %d points, want 2", len(points))
		}
		if points[0].Date != "2025-08-02" || points[1].Date != "2025-08-03" {
			t.Errorf("kept %s, %s; want the two newest", points[0].Date, points[1].Date)
		}
	})
}

func TestComparisonRows(t *testing.T) {
	ds := &models.Dataset{
		Players: map[string]string{"alice": "Alice", "bob": "Bob", "carol": "Carol"},
		Games: map[string]models.Game{
			"zip": {ID: "zip", HasTime: true},
		},
		Entries: []models.Entry{
			numberedEntry("alice", "zip", 1, 50, "2025-08-01"),
			numberedEntry("alice", "zip", 2, 30, "2025-08-02"),
			numberedEntry("bob", "zip", 1, 20, "2025-08-01"),
			numberedEntry("carol", "tango", 1, 10, "2025-08-01"),
		},
	}

	svc := NewPerformanceService(zap.NewNop())
	rows := svc.ComparisonRows(ds, "zip")

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	// Sorted by average ascending: bob at 20, alice at 40.
	if rows[0].PlayerID != "bob" || rows[1].PlayerID != "alice" {
		t.Errorf("order = %s, %s; want bob, alice", rows[0].PlayerID, rows[1].PlayerID)
	}
	if rows[1].Best != 30 || rows[1].Latest != 30 {
		t.Errorf("alice Best/Latest = %d/%d, want 30/30", rows[1].Best, rows[1].Latest)
	}

	t.Run("UnknownGame", func(t *testing.T) {
		if rows := svc.ComparisonRows(ds, "wordle"); len(rows) != 0 {
			t.Errorf("got %d rows for unknown game, want 0", len(rows))
		}
	})
}

func TestSummaryCards(t *testing.T) {
	ds := &models.Dataset{
		Players: map[string]string{"alice": "Alice", "bob": "Bob", "carol": "Carol", "dan": "Dan"},
		Games: map[string]models.Game{
			"zip":      {ID: "zip", HasTime: true},
			"pinpoint": {ID: "pinpoint", HasGuesses: true},
		},
	}
	snap := &models.Snapshot{
		Dataset: ds,
		PlayerStats: map[string]models.PlayerStat{
			"alice": {PlayerID: "alice", TotalGames: 10, TotalTime: 500, GamesByType: map[string]int{"zip": 10}, BestTimes: map[string]int{"zip": 25}},
			"bob":   {PlayerID: "bob", TotalGames: 7, TotalTime: 900, GamesByType: map[string]int{"zip": 5, "pinpoint": 2}, BestTimes: map[string]int{"zip": 19}},
			"carol": {PlayerID: "carol", TotalGames: 3, TotalTime: 100, GamesByType: map[string]int{"pinpoint": 3}},
			"dan":   {PlayerID: "dan", TotalGames: 1, TotalTime: 50, GamesByType: map[string]int{"zip": 1}, BestTimes: map[string]int{"zip": 40}},
		},
	}

	svc := NewPerformanceService(zap.NewNop())
	cards := svc.SummaryCards(snap)

	byMetric := make(map[string]models.SummaryCard, len(cards))
	for _, c := range cards {
		byMetric[c.Metric] = c
	}

	plays, ok := byMetric["total_plays"]
	if !ok {
		t.Fatal("total_plays card missing")
	}
	if len(plays.Top) != 3 {
		t.Fatalf("total_plays top has %d entries, want 3", len(plays.Top))
	}
	if plays.Top[0].PlayerID != "alice" || plays.Top[0].Rank != 1 {
		t.Errorf("total_plays leader = %+v, want alice at rank 1", plays.Top[0])
	}
	if plays.Top[1].PlayerID != "bob" || plays.Top[2].PlayerID != "carol" {
		t.Errorf("total_plays order = %s, %s", plays.Top[1].PlayerID, plays.Top[2].PlayerID)
	}

	invested, ok := byMetric["total_time"]
	if !ok {
		t.Fatal("total_time card missing")
	}
	if invested.Top[0].PlayerID != "bob" {
		t.Errorf("total_time leader = %q, want bob", invested.Top[0].PlayerID)
	}
	if invested.Top[0].DisplayValue != "15:00" {
		t.Errorf("total_time display = %q, want 15:00", invested.Top[0].DisplayValue)
	}

	fastest, ok := byMetric["zip_best_time"]
	if !ok {
		t.Fatal("zip_best_time card missing")
	}
	// Lower is better: bob's 19s leads; carol never played zip and is absent.
	if fastest.Top[0].PlayerID != "bob" {
		t.Errorf("zip_best_time leader = %q, want bob", fastest.Top[0].PlayerID)
	}
	for _, e := range fastest.Top {
		if e.PlayerID == "carol" {
			t.Error("player without a zip time appears on the fastest-zip card")
		}
	}

	// Untimed games get no best-time card.
	if _, ok := byMetric["pinpoint_best_time"]; ok {
		t.Error("best-time card exists for a game without times")
	}
}
