package handlers

import (
	"net/http"
)

// GetSummary returns the dashboard summary cards plus headline counts.
// @Summary Dashboard summary
// @Tags Performance
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/summary [get]
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	cards := h.performance.SummaryCards(h.snap)

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"snapshot_id":   h.ds.SnapshotID,
		"total_entries": len(h.ds.Entries),
		"total_players": len(h.ds.Players),
		"total_games":   len(h.ds.Games),
		"cards":         cards,
	})
}
