package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dmytrobakai/music-recomendation/internal/domain"
)

// Service is the slice of the application the HTTP layer needs.
type Service interface {
	Recommend(ctx context.Context, username string, topN int) ([]domain.Track, error)
	RecommendViaModel(ctx context.Context, username string, topK int) ([]domain.Track, error)
	Login(ctx context.Context, username string) (bool, error)
	Songs(ctx context.Context) ([]domain.Track, error)
	LikedSongs(ctx context.Context, username string) ([]domain.Track, error)
	Like(ctx context.Context, username string, trackID int64) error
	Unlike(ctx context.Context, username string, trackID int64) error
	DeleteArtist(ctx context.Context, artistID int64) error
}

type Handler struct {
	service Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{service: svc}
}

// write JSON response
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writes JSON error response.
func writeError(w http.ResponseWriter, status int, errCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Error:   errCode,
		Message: message,
	})
}

// writeTracks always encodes an array, never null, so empty results and
// fail-open results look the same on the wire.
func writeTracks(w http.ResponseWriter, tracks []domain.Track) {
	if tracks == nil {
		tracks = []domain.Track{}
	}
	writeJSON(w, http.StatusOK, tracks)
}
