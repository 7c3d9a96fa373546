package handlers

import (
	"net/http"
)

func (a *App) StatsSummary(w http.ResponseWriter, r *http.Request) {
	if a.Repo == nil {
		a.json(w, http.StatusOK, map[string]any{"success": true, "total_generated": 0})
		return
	}
	total, err := a.Repo.Count(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("count generated names")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load stats")
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"success":         true,
		"total_generated": total,
	})
}
