package repository

import (
	"context"
	"fmt"

	"github.com/dmytrobakai/music-recomendation/internal/domain"
	"github.com/dmytrobakai/music-recomendation/internal/recommend"
	"github.com/jackc/pgx/v5"
)

// TracksByIDs resolves track ids to catalog rows, preserving the order of
// ids. Ids missing from the catalog are skipped.
func (r *Repository) TracksByIDs(ctx context.Context, ids []recommend.TrackID) ([]domain.Track, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	raw := make([]int64, len(ids))
	for i, id := range ids {
		raw[i] = int64(id)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, title, link, duration, preview, position, rank,
			explicit_lyrics, album_id, album_title, album_cover, artist_id
		FROM tracks WHERE id = ANY($1)`,
		raw,
	)
	if err != nil {
		return nil, fmt.Errorf("query tracks by ids: %w", err)
	}
	defer rows.Close()

	fetched, err := scanTracks(rows)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]domain.Track, len(fetched))
	for _, t := range fetched {
		byID[t.ID] = t
	}

	// Reorder to match the ranking the caller computed.
	ordered := make([]domain.Track, 0, len(ids))
	for _, id := range raw {
		if t, ok := byID[id]; ok {
			ordered = append(ordered, t)
		}
	}
	return ordered, nil
}

// RandomTracks samples up to limit tracks from the catalog.
func (r *Repository) RandomTracks(ctx context.Context, limit int) ([]domain.Track, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, link, duration, preview, position, rank,
			explicit_lyrics, album_id, album_title, album_cover, artist_id
		FROM tracks ORDER BY random() LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query random tracks: %w", err)
	}
	defer rows.Close()

	return scanTracks(rows)
}

func scanTracks(rows pgx.Rows) ([]domain.Track, error) {
	var tracks []domain.Track
	for rows.Next() {
		var t domain.Track
		err := rows.Scan(&t.ID, &t.Title, &t.Link, &t.Duration, &t.Preview,
			&t.Position, &t.Rank, &t.ExplicitLyrics, &t.AlbumID, &t.AlbumTitle,
			&t.AlbumCover, &t.ArtistID)
		if err != nil {
			return nil, fmt.Errorf("scan track: %w", err)
		}
		tracks = append(tracks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tracks: %w", err)
	}
	return tracks, nil
}
