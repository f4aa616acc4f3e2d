package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dmytrobakai/music-recomendation/internal/domain"
	"github.com/dmytrobakai/music-recomendation/internal/service"
	"github.com/go-chi/chi/v5"
)

// GET /recommendations/{username}?top_n=5
//
// Both recommendation endpoints share one contract: unknown users and any
// internal failure yield 200 with an empty array; only a malformed
// parameter is a client error.
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == "" {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Username must not be empty")
		return
	}

	topN, ok := parseLimit(w, r, "top_n", service.DefaultTopN)
	if !ok {
		return
	}

	tracks, err := h.service.Recommend(r.Context(), username, topN)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidLimit) {
			writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid top_n parameter")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	writeTracks(w, tracks)
}

// GET /ml-recommendations/{username}?top_k=10
func (h *Handler) GetModelRecommendations(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == "" {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Username must not be empty")
		return
	}

	topK, ok := parseLimit(w, r, "top_k", service.DefaultTopK)
	if !ok {
		return
	}

	tracks, err := h.service.RecommendViaModel(r.Context(), username, topK)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidLimit) {
			writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid top_k parameter")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	writeTracks(w, tracks)
}

// parseLimit reads a non-negative integer query parameter, writing a 400
// on garbage or negative values.
func parseLimit(w http.ResponseWriter, r *http.Request, name string, fallback int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, true
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 0 {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid "+name+" parameter")
		return 0, false
	}
	return parsed, true
}
