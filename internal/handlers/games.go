package handlers

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/puzzleboard/stats-api/internal/logic"
	"github.com/puzzleboard/stats-api/internal/models"
)

type gameSummary struct {
	ID            string          `json:"id"`
	Icon          string          `json:"icon,omitempty"`
	Metrics       []models.Metric `json:"metrics"`
	DefaultMetric models.Metric   `json:"default_metric"`
	TotalPlays    int             `json:"total_plays"`
	UniquePlayers int             `json:"unique_players"`
	BestTime      string          `json:"best_time"`
}

// GetGames returns the game list with headline stats for dropdowns and tabs.
// @Summary List games
// @Tags Games
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/games [get]
func (h *Handler) GetGames(w http.ResponseWriter, r *http.Request) {
	ids := make([]string, 0, len(h.ds.Games))
	for id := range h.ds.Games {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	games := make([]gameSummary, 0, len(ids))
	for _, id := range ids {
		game := h.ds.Games[id]
		stat := h.snap.GameStats[id]

		bestTime := "N/A"
		if stat.BestTime != nil {
			bestTime = logic.FormatTime(*stat.BestTime)
		}

		games = append(games, gameSummary{
			ID:            id,
			Icon:          game.Icon,
			Metrics:       game.AvailableMetrics(),
			DefaultMetric: game.DefaultMetric(),
			TotalPlays:    stat.TotalPlays,
			UniquePlayers: stat.UniquePlayers,
			BestTime:      bestTime,
		})
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{"games": games})
}

// GetGame returns the full-dataset aggregate for one game.
// @Summary Game statistics
// @Tags Games
// @Produce json
// @Param gameID path string true "Game ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/v1/games/{gameID} [get]
func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")
	game, ok := h.ds.Games[gameID]
	if !ok {
		h.errorResponse(w, http.StatusNotFound, "Unknown game")
		return
	}

	stat := h.snap.GameStats[gameID]

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"game":        gameID,
		"icon":        game.Icon,
		"stats":       stat,
		"leaderboard": h.enrichEntries(stat.Leaderboard, game),
		"recent":      h.enrichEntries(stat.Recent, game),
	})
}

// enrichedEntry decorates a raw entry with display fields for rendering.
type enrichedEntry struct {
	models.Entry
	Rank       int    `json:"rank"`
	PlayerName string `json:"player_name"`
	Display    string `json:"display"`
}

func (h *Handler) enrichEntries(entries []models.Entry, game models.Game) []enrichedEntry {
	out := make([]enrichedEntry, 0, len(entries))
	for i, e := range entries {
		out = append(out, enrichedEntry{
			Entry:      e,
			Rank:       i + 1,
			PlayerName: h.ds.PlayerName(e.PlayerID),
			Display:    logic.FormatMetric(e.Metrics, game),
		})
	}
	return out
}
