package router

import (
	"net/http"
	"time"

	"github.com/dmytrobakai/music-recomendation/internal/handler"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func Setup(h *handler.Handler) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// Routes
	r.Post("/login", h.Login)
	r.Get("/songs", h.ListSongs)
	r.Get("/liked/{username}", h.GetLikedSongs)
	r.Post("/like/{trackID}/user/{username}", h.LikeSong)
	r.Post("/unlike/{trackID}/user/{username}", h.UnlikeSong)
	r.Delete("/artist/{artistID}", h.DeleteArtist)
	r.Get("/recommendations/{username}", h.GetRecommendations)
	r.Get("/ml-recommendations/{username}", h.GetModelRecommendations)
	r.Get("/health", healthCheck)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
