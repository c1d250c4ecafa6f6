package handlers

import (
	"net/http"
	"strconv"

	"github.com/puzzleboard/stats-api/internal/logic"
	"github.com/puzzleboard/stats-api/internal/models"
)

// GetRecentActivity returns the newest entries across all games.
// @Summary Recent activity
// @Tags Activity
// @Produce json
// @Param limit query int false "Maximum entries to return"
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/activity [get]
func (h *Handler) GetRecentActivity(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			h.errorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	entries := h.snap.RecentActivity
	if limit > 0 {
		entries = h.stats.RecentActivity(h.ds.Entries, limit)
	}

	activity := make([]enrichedEntry, 0, len(entries))
	for i, e := range entries {
		game := h.ds.Games[e.Game]
		activity = append(activity, enrichedEntry{
			Entry:      e,
			Rank:       i + 1,
			PlayerName: h.ds.PlayerName(e.PlayerID),
			Display:    logic.FormatMetric(e.Metrics, game),
		})
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{"activity": activity})
}

// GetTimeRanges returns the entry partitions by recency, for range pickers.
// @Summary Time-range partitions
// @Tags Activity
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/ranges [get]
func (h *Handler) GetTimeRanges(w http.ResponseWriter, r *http.Request) {
	counts := make(map[models.TimeRange]int, len(h.snap.TimeRanges))
	for name, entries := range h.snap.TimeRanges {
		counts[name] = len(entries)
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{"ranges": counts})
}
