package repository

import (
	"context"
	"fmt"

	"github.com/dmytrobakai/music-recomendation/internal/domain"
)

// DeleteArtist removes an artist with all their tracks and the likes that
// point at those tracks, in one transaction.
func (r *Repository) DeleteArtist(ctx context.Context, artistID int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete artist %d: %w", artistID, err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM artists WHERE id = $1)`, artistID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check artist %d: %w", artistID, err)
	}
	if !exists {
		return domain.ErrArtistNotFound
	}

	if _, err := tx.Exec(ctx,
		`DELETE FROM user_likes WHERE track_id IN (SELECT id FROM tracks WHERE artist_id = $1)`,
		artistID,
	); err != nil {
		return fmt.Errorf("delete likes for artist %d: %w", artistID, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM tracks WHERE artist_id = $1`, artistID); err != nil {
		return fmt.Errorf("delete tracks for artist %d: %w", artistID, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM artists WHERE id = $1`, artistID); err != nil {
		return fmt.Errorf("delete artist %d: %w", artistID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit delete artist %d: %w", artistID, err)
	}
	return nil
}
