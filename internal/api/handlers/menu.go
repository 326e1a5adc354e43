package handlers

import (
	"log/slog"
	"net/http"
)

// Menu returns all categories with their items and variants.
func (h *Handler) Menu(w http.ResponseWriter, r *http.Request) {
	categories, err := h.menu.Menu(r.Context())
	if err != nil {
		slog.Error("get menu", "error", err)
		respondError(w, http.StatusInternalServerError, "ошибка получения меню")
		return
	}
	respondJSON(w, http.StatusOK, categories)
}
