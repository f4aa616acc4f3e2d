package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dmytrobakai/music-recomendation/internal/domain"
	"github.com/go-chi/chi/v5"
)

type loginRequest struct {
	Username string `json:"username"`
}

// POST /login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Username must not be empty")
		return
	}

	created, err := h.service.Login(r.Context(), req.Username)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "Error creating user")
		return
	}

	msg := fmt.Sprintf("Welcome back, %s!", req.Username)
	if created {
		msg = fmt.Sprintf("New user created: %s", req.Username)
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: msg})
}

// GET /songs
func (h *Handler) ListSongs(w http.ResponseWriter, r *http.Request) {
	tracks, err := h.service.Songs(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}
	if len(tracks) == 0 {
		writeError(w, http.StatusNotFound, "not_found", "No songs in database")
		return
	}
	writeTracks(w, tracks)
}

// GET /liked/{username}
func (h *Handler) GetLikedSongs(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	tracks, err := h.service.LikedSongs(r.Context(), username)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}
	writeTracks(w, tracks)
}

// POST /like/{trackID}/user/{username}
func (h *Handler) LikeSong(w http.ResponseWriter, r *http.Request) {
	username, trackID, ok := parseLikeParams(w, r)
	if !ok {
		return
	}

	if err := h.service.Like(r.Context(), username, trackID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrTrackNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "User or Song not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Song %d liked by %s", trackID, username),
	})
}

// POST /unlike/{trackID}/user/{username}
func (h *Handler) UnlikeSong(w http.ResponseWriter, r *http.Request) {
	username, trackID, ok := parseLikeParams(w, r)
	if !ok {
		return
	}

	if err := h.service.Unlike(r.Context(), username, trackID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "User not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Song %d unliked by %s", trackID, username),
	})
}

// DELETE /artist/{artistID}
func (h *Handler) DeleteArtist(w http.ResponseWriter, r *http.Request) {
	artistID, err := strconv.ParseInt(chi.URLParam(r, "artistID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid artist id")
		return
	}

	if err := h.service.DeleteArtist(r.Context(), artistID); err != nil {
		if errors.Is(err, domain.ErrArtistNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "Artist not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Artist %d and all their songs removed.", artistID),
	})
}

func parseLikeParams(w http.ResponseWriter, r *http.Request) (string, int64, bool) {
	username := chi.URLParam(r, "username")
	trackID, err := strconv.ParseInt(chi.URLParam(r, "trackID"), 10, 64)
	if err != nil || username == "" {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid song id or username")
		return "", 0, false
	}
	return username, trackID, true
}
