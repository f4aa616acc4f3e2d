package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/dmytrobakai/music-recomendation/internal/domain"
	"github.com/dmytrobakai/music-recomendation/internal/metrics"
	"github.com/dmytrobakai/music-recomendation/internal/recommend"
)

const (
	DefaultTopN = 5
	DefaultTopK = 10
	maxTopN     = 50

	songSampleSize = 10
)

// Store is the interaction store and catalog backing the service.
type Store interface {
	AllUsersWithLikes(ctx context.Context) (recommend.Snapshot, error)
	GetUser(ctx context.Context, username string) (*domain.User, error)
	CreateUser(ctx context.Context, username string) error
	TracksByIDs(ctx context.Context, ids []recommend.TrackID) ([]domain.Track, error)
	RandomTracks(ctx context.Context, limit int) ([]domain.Track, error)
	LikedTracks(ctx context.Context, username string) ([]domain.Track, error)
	Like(ctx context.Context, username string, trackID int64) error
	Unlike(ctx context.Context, username string, trackID int64) error
	DeleteArtist(ctx context.Context, artistID int64) error
}

// RecCache holds ranked id lists between requests.
type RecCache interface {
	Get(ctx context.Context, username string, n int) ([]recommend.TrackID, bool, error)
	Set(ctx context.Context, username string, n int, ids []recommend.TrackID) error
	Invalidate(ctx context.Context, username string) error
}

// ModelClient queries the external model-based recommender.
type ModelClient interface {
	Recommend(ctx context.Context, username string, topK int) ([]recommend.TrackID, error)
}

type Service struct {
	store Store
	cache RecCache
	model ModelClient
}

func New(store Store, cache RecCache, model ModelClient) *Service {
	return &Service{store: store, cache: cache, model: model}
}

// Recommend runs the similarity strategy for a user and resolves the
// ranked ids to catalog tracks. Every upstream failure fails open to an
// empty list; only a negative topN is an error. Unknown users get an
// empty list too, indistinguishable from "no similar signal".
func (s *Service) Recommend(ctx context.Context, username string, topN int) ([]domain.Track, error) {
	if topN < 0 {
		return nil, domain.ErrInvalidLimit
	}
	if topN > maxTopN {
		topN = maxTopN
	}

	metrics.RecommendationRequests.WithLabelValues("similarity").Inc()
	timer := time.Now()
	defer func() {
		metrics.RecommendationDuration.WithLabelValues("similarity").Observe(time.Since(timer).Seconds())
	}()

	if topN == 0 {
		return nil, nil
	}

	if cached, found, err := s.cache.Get(ctx, username, topN); err != nil {
		log.Printf("[service] cache get for %q: %v", username, err)
		metrics.SuppressFailure(metrics.StageCache)
	} else if found {
		return s.resolveTracks(ctx, cached)
	}

	snapshot, err := s.store.AllUsersWithLikes(ctx)
	if err != nil {
		log.Printf("[service] likes snapshot for %q: %v", username, err)
		metrics.SuppressFailure(metrics.StageSnapshot)
		return nil, nil
	}

	if _, ok := snapshot[username]; !ok {
		return nil, nil
	}

	scores, err := recommend.Aggregate(ctx, username, snapshot)
	if err != nil {
		log.Printf("[service] scoring aborted for %q: %v", username, err)
		metrics.SuppressFailure(metrics.StageScoring)
		return nil, nil
	}

	ranked, err := recommend.TopN(scores, topN)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, username, topN, ranked); err != nil {
		log.Printf("[service] cache set for %q: %v", username, err)
		metrics.SuppressFailure(metrics.StageCache)
	}

	return s.resolveTracks(ctx, ranked)
}

// RecommendViaModel runs the model strategy: it proxies the external
// recommender and resolves its ids. Same fail-open contract as Recommend;
// the two strategies are never blended.
func (s *Service) RecommendViaModel(ctx context.Context, username string, topK int) ([]domain.Track, error) {
	if topK < 0 {
		return nil, domain.ErrInvalidLimit
	}

	metrics.RecommendationRequests.WithLabelValues("model").Inc()
	timer := time.Now()
	defer func() {
		metrics.RecommendationDuration.WithLabelValues("model").Observe(time.Since(timer).Seconds())
	}()

	if topK == 0 {
		return nil, nil
	}

	ids, err := s.model.Recommend(ctx, username, topK)
	if err != nil {
		log.Printf("[service] model recommendations for %q: %v", username, err)
		metrics.SuppressFailure(metrics.StageModel)
		return nil, nil
	}

	return s.resolveTracks(ctx, ids)
}

func (s *Service) resolveTracks(ctx context.Context, ids []recommend.TrackID) ([]domain.Track, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	tracks, err := s.store.TracksByIDs(ctx, ids)
	if err != nil {
		log.Printf("[service] resolve %d track ids: %v", len(ids), err)
		metrics.SuppressFailure(metrics.StageResolve)
		return nil, nil
	}
	return tracks, nil
}

// Login registers the username on first use. Returns whether a new user
// was created.
func (s *Service) Login(ctx context.Context, username string) (bool, error) {
	_, err := s.store.GetUser(ctx, username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return false, err
	}
	if err := s.store.CreateUser(ctx, username); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) Songs(ctx context.Context) ([]domain.Track, error) {
	return s.store.RandomTracks(ctx, songSampleSize)
}

func (s *Service) LikedSongs(ctx context.Context, username string) ([]domain.Track, error) {
	return s.store.LikedTracks(ctx, username)
}

// Like records a like and drops the user's cached recommendations.
func (s *Service) Like(ctx context.Context, username string, trackID int64) error {
	if err := s.store.Like(ctx, username, trackID); err != nil {
		return err
	}
	if err := s.cache.Invalidate(ctx, username); err != nil {
		log.Printf("[service] cache invalidation for %q: %v", username, err)
		metrics.SuppressFailure(metrics.StageCache)
	}
	return nil
}

func (s *Service) Unlike(ctx context.Context, username string, trackID int64) error {
	if err := s.store.Unlike(ctx, username, trackID); err != nil {
		return err
	}
	if err := s.cache.Invalidate(ctx, username); err != nil {
		log.Printf("[service] cache invalidation for %q: %v", username, err)
		metrics.SuppressFailure(metrics.StageCache)
	}
	return nil
}

func (s *Service) DeleteArtist(ctx context.Context, artistID int64) error {
	return s.store.DeleteArtist(ctx, artistID)
}
