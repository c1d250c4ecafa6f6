package handlers

import (
	"net/http"
	"strings"

	"github.com/puzzleboard/stats-api/internal/logic"
	"github.com/puzzleboard/stats-api/internal/models"
)

// leaderboardQuery is the filter state as it arrives on the wire.
type leaderboardQuery struct {
	Range string `validate:"omitempty,oneof=daily allTime"`
	Date  string `validate:"omitempty,datetime=2006-01-02"`
	Order string `validate:"omitempty,oneof=best worst"`
}

// GetLeaderboards recomputes the filtered per-game leaderboards for the
// requested view state.
//
// Query parameters: range (daily|allTime, default allTime), date (daily view
// only, defaults to today), order (best|worst, default best), and repeated
// metric=game:metric overrides of the per-game ranking metric.
//
// @Summary Filtered leaderboards
// @Tags Leaderboards
// @Produce json
// @Param range query string false "Time range (daily or allTime)"
// @Param date query string false "Calendar date for the daily range"
// @Param order query string false "best or worst"
// @Param metric query []string false "Per-game metric override, game:metric"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/v1/leaderboards [get]
func (h *Handler) GetLeaderboards(w http.ResponseWriter, r *http.Request) {
	q := leaderboardQuery{
		Range: r.URL.Query().Get("range"),
		Date:  r.URL.Query().Get("date"),
		Order: r.URL.Query().Get("order"),
	}
	if err := h.validator.Struct(q); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid filter parameters")
		return
	}

	state := models.FilterState{
		Range:     models.RangeAllTime,
		Date:      q.Date,
		ShowWorst: q.Order == "worst",
		Metrics:   parseMetricOverrides(r.URL.Query()["metric"]),
	}
	if q.Range != "" {
		state.Range = models.TimeRange(q.Range)
	}

	now := h.now()
	entries := h.leaderboards.EntriesForRange(h.ds, state, now)
	filtered := h.leaderboards.ComputeFilteredGameStats(h.ds.Games, entries, state)

	boards := make(map[string]interface{}, len(filtered))
	for gameID, gameEntries := range filtered {
		game, known := h.ds.Games[gameID]
		metric := state.MetricFor(game)

		enriched := make([]enrichedEntry, 0, len(gameEntries))
		for i, e := range gameEntries {
			display := logic.FormatMetricValue(e.Metrics.Value(metric), metric)
			if !known {
				display = logic.FormatMetric(e.Metrics, game)
			}
			enriched = append(enriched, enrichedEntry{
				Entry:      e,
				Rank:       i + 1,
				PlayerName: h.ds.PlayerName(e.PlayerID),
				Display:    display,
			})
		}

		boards[gameID] = map[string]interface{}{
			"game":    gameID,
			"metric":  metric,
			"entries": enriched,
		}
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"state":        state,
		"leaderboards": boards,
	})
}

// parseMetricOverrides parses repeated "game:metric" values. Malformed
// values are ignored; unknown metric names fail validation later by simply
// never matching an entry field, which compares as 0 like any missing
// metric, so they are filtered here instead.
func parseMetricOverrides(values []string) map[string]models.Metric {
	if len(values) == 0 {
		return nil
	}

	overrides := make(map[string]models.Metric, len(values))
	for _, v := range values {
		parts := strings.SplitN(v, ":", 2)
		if len(parts) != 2 {
			continue
		}
		metric := models.Metric(parts[1])
		switch metric {
		case models.MetricTime, models.MetricGuesses, models.MetricBacktracks:
			overrides[parts[0]] = metric
		}
	}
	if len(overrides) == 0 {
		return nil
	}
	return overrides
}
