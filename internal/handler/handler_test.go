package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dmytrobakai/music-recomendation/internal/domain"
	"github.com/go-chi/chi/v5"
)

type fakeService struct {
	recommend    []domain.Track
	recommendErr error
	model        []domain.Track
	modelErr     error
	loginCreated bool
	likeErr      error
	deleteErr    error
	gotTopN      int
	gotTopK      int
}

func (f *fakeService) Recommend(ctx context.Context, username string, topN int) ([]domain.Track, error) {
	f.gotTopN = topN
	return f.recommend, f.recommendErr
}

func (f *fakeService) RecommendViaModel(ctx context.Context, username string, topK int) ([]domain.Track, error) {
	f.gotTopK = topK
	return f.model, f.modelErr
}

func (f *fakeService) Login(ctx context.Context, username string) (bool, error) {
	return f.loginCreated, nil
}

func (f *fakeService) Songs(ctx context.Context) ([]domain.Track, error) {
	return []domain.Track{{ID: 1}}, nil
}

func (f *fakeService) LikedSongs(ctx context.Context, username string) ([]domain.Track, error) {
	return nil, nil
}

func (f *fakeService) Like(ctx context.Context, username string, trackID int64) error {
	return f.likeErr
}

func (f *fakeService) Unlike(ctx context.Context, username string, trackID int64) error {
	return f.likeErr
}

func (f *fakeService) DeleteArtist(ctx context.Context, artistID int64) error {
	return f.deleteErr
}

func newRouter(svc *fakeService) http.Handler {
	h := NewHandler(svc)
	r := chi.NewRouter()
	r.Post("/login", h.Login)
	r.Get("/liked/{username}", h.GetLikedSongs)
	r.Post("/like/{trackID}/user/{username}", h.LikeSong)
	r.Delete("/artist/{artistID}", h.DeleteArtist)
	r.Get("/recommendations/{username}", h.GetRecommendations)
	r.Get("/ml-recommendations/{username}", h.GetModelRecommendations)
	return r
}

func doRequest(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGetRecommendations(t *testing.T) {
	svc := &fakeService{recommend: []domain.Track{{ID: 3, Title: "Song"}}}
	rec := doRequest(t, newRouter(svc), http.MethodGet, "/recommendations/alice?top_n=7", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if svc.gotTopN != 7 {
		t.Errorf("top_n = %d, want 7", svc.gotTopN)
	}

	var tracks []domain.Track
	if err := json.Unmarshal(rec.Body.Bytes(), &tracks); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(tracks) != 1 || tracks[0].ID != 3 {
		t.Errorf("body = %v, want one track with id 3", tracks)
	}
}

func TestGetRecommendationsDefaultTopN(t *testing.T) {
	svc := &fakeService{}
	doRequest(t, newRouter(svc), http.MethodGet, "/recommendations/alice", "")

	if svc.gotTopN != 5 {
		t.Errorf("top_n = %d, want default 5", svc.gotTopN)
	}
}

func TestGetRecommendationsNegativeTopN(t *testing.T) {
	rec := doRequest(t, newRouter(&fakeService{}), http.MethodGet, "/recommendations/alice?top_n=-2", "")

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGetRecommendationsEmptyIsArray(t *testing.T) {
	// The fail-open contract: empty results arrive as [], not null.
	rec := doRequest(t, newRouter(&fakeService{}), http.MethodGet, "/recommendations/alice", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("body = %q, want []", got)
	}
}

func TestGetModelRecommendationsDefaultTopK(t *testing.T) {
	svc := &fakeService{}
	rec := doRequest(t, newRouter(svc), http.MethodGet, "/ml-recommendations/alice", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if svc.gotTopK != 10 {
		t.Errorf("top_k = %d, want default 10", svc.gotTopK)
	}
}

func TestGetModelRecommendationsBadTopK(t *testing.T) {
	rec := doRequest(t, newRouter(&fakeService{}), http.MethodGet, "/ml-recommendations/alice?top_k=abc", "")

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestLogin(t *testing.T) {
	svc := &fakeService{loginCreated: true}
	rec := doRequest(t, newRouter(svc), http.MethodPost, "/login", `{"username":"dave"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp MessageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Message != "New user created: dave" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestLoginEmptyUsername(t *testing.T) {
	rec := doRequest(t, newRouter(&fakeService{}), http.MethodPost, "/login", `{"username":""}`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestLikeUnknownUser(t *testing.T) {
	svc := &fakeService{likeErr: domain.ErrUserNotFound}
	rec := doRequest(t, newRouter(svc), http.MethodPost, "/like/3/user/ghost", "")

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestDeleteArtistNotFound(t *testing.T) {
	svc := &fakeService{deleteErr: domain.ErrArtistNotFound}
	rec := doRequest(t, newRouter(svc), http.MethodDelete, "/artist/99", "")

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
