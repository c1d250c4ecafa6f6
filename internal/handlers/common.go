package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

// Health check endpoint
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

// Ready check endpoint - ready once a validated dataset snapshot exists
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ready := h.ds != nil && h.snap != nil

	w.Header().Set("Content-Type", "application/json")
	if !ready {
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(map[string]interface{}{"ready": false})
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"ready":       true,
		"snapshot_id": h.ds.SnapshotID,
		"players":     len(h.ds.Players),
		"games":       len(h.ds.Games),
		"entries":     len(h.ds.Entries),
	})
}

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{"error": message})
}
