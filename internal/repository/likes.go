package repository

import (
	"context"
	"fmt"

	"github.com/dmytrobakai/music-recomendation/internal/domain"
	"github.com/dmytrobakai/music-recomendation/internal/recommend"
)

// AllUsersWithLikes builds the interaction snapshot: every username mapped
// to its like-set. The LEFT JOIN keeps users with zero likes in the
// snapshot with an empty set.
func (r *Repository) AllUsersWithLikes(ctx context.Context) (recommend.Snapshot, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT u.username, ul.track_id
		FROM users u
		LEFT JOIN user_likes ul ON ul.username = u.username`,
	)
	if err != nil {
		return nil, fmt.Errorf("query likes snapshot: %w", err)
	}
	defer rows.Close()

	snapshot := make(recommend.Snapshot)
	for rows.Next() {
		var username string
		var trackID *int64
		if err := rows.Scan(&username, &trackID); err != nil {
			return nil, fmt.Errorf("scan like row: %w", err)
		}
		likes, ok := snapshot[username]
		if !ok {
			likes = recommend.NewLikeSet()
			snapshot[username] = likes
		}
		if trackID != nil {
			likes.Add(recommend.TrackID(*trackID))
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate likes snapshot: %w", err)
	}
	return snapshot, nil
}

func (r *Repository) LikedTracks(ctx context.Context, username string) ([]domain.Track, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT t.id, t.title, t.link, t.duration, t.preview, t.position, t.rank,
			t.explicit_lyrics, t.album_id, t.album_title, t.album_cover, t.artist_id
		FROM user_likes ul
		JOIN tracks t ON t.id = ul.track_id
		WHERE ul.username = $1
		ORDER BY t.id`,
		username,
	)
	if err != nil {
		return nil, fmt.Errorf("query liked tracks for %q: %w", username, err)
	}
	defer rows.Close()

	return scanTracks(rows)
}

// Like records a like edge. Duplicate likes are no-ops.
func (r *Repository) Like(ctx context.Context, username string, trackID int64) error {
	if _, err := r.GetUser(ctx, username); err != nil {
		return err
	}

	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM tracks WHERE id = $1)`, trackID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check track %d: %w", trackID, err)
	}
	if !exists {
		return domain.ErrTrackNotFound
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO user_likes (username, track_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING`,
		username, trackID,
	)
	if err != nil {
		return fmt.Errorf("like track %d for %q: %w", trackID, username, err)
	}
	return nil
}

// Unlike removes a like edge; removing an absent edge is a no-op.
func (r *Repository) Unlike(ctx context.Context, username string, trackID int64) error {
	if _, err := r.GetUser(ctx, username); err != nil {
		return err
	}

	_, err := r.pool.Exec(ctx,
		`DELETE FROM user_likes WHERE username = $1 AND track_id = $2`,
		username, trackID,
	)
	if err != nil {
		return fmt.Errorf("unlike track %d for %q: %w", trackID, username, err)
	}
	return nil
}
