package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GetComparison returns the per-player comparison table for one game.
// @Summary Player comparison for a game
// @Tags Performance
// @Produce json
// @Param gameID path string true "Game identifier"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/comparison/{gameID} [get]
func (h *Handler) GetComparison(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")

	game, ok := h.ds.Games[gameID]
	if !ok {
		h.errorResponse(w, http.StatusNotFound, "Unknown game")
		return
	}

	rows := h.performance.ComparisonRows(h.ds, gameID)

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"game":       gameID,
		"metric":     game.DefaultMetric(),
		"comparison": rows,
	})
}
