package handlers

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/puzzleboard/stats-api/internal/logic"
)

type playerSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Initials    string `json:"initials"`
	TotalGames  int    `json:"total_games"`
}

// GetPlayers returns the player list for selection dropdowns.
// @Summary List players
// @Tags Players
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/players [get]
func (h *Handler) GetPlayers(w http.ResponseWriter, r *http.Request) {
	players := make([]playerSummary, 0, len(h.ds.Players))
	for id, name := range h.ds.Players {
		players = append(players, playerSummary{
			ID:          id,
			Name:        name,
			DisplayName: logic.DisplayName(name),
			Initials:    logic.Initials(name),
			TotalGames:  h.snap.PlayerStats[id].TotalGames,
		})
	}
	sort.Slice(players, func(i, j int) bool { return players[i].Name < players[j].Name })

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{"players": players})
}

// GetPlayer returns a player's profile: overview stats, per-game performance
// cards, and the performance-over-time series.
// @Summary Player profile
// @Tags Players
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/v1/players/{playerID} [get]
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")
	name, ok := h.ds.Players[playerID]
	if !ok {
		h.errorResponse(w, http.StatusNotFound, "Unknown player")
		return
	}

	stat := h.snap.PlayerStats[playerID]

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"id":           playerID,
		"name":         name,
		"display_name": logic.DisplayName(name),
		"initials":     logic.Initials(name),
		"stats":        stat,
		"total_time":   logic.FormatTime(stat.TotalTime),
		"performance":  h.performance.PlayerPerformance(h.ds, playerID),
		"trend":        h.performance.TrendPoints(h.ds, playerID, 0),
	})
}
