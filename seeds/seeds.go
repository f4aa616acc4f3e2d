package seeds

import (
	"context"
	"fmt"
	"log"
	"math/rand"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Setup populates an empty database with a small deterministic catalog
// and like graph so the recommendation endpoints return something useful
// out of the box.
func Setup(ctx context.Context, pool *pgxpool.Pool) error {
	rng := rand.New(rand.NewSource(42))

	log.Println("[seed] truncating existing data")
	if _, err := pool.Exec(ctx, `
		TRUNCATE user_likes, tracks, artists, users CASCADE
	`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	log.Println("[seed] inserting artists and tracks")
	if err := seedCatalog(ctx, pool); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	log.Println("[seed] inserting users")
	if err := seedUsers(ctx, pool); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	log.Println("[seed] inserting likes")
	if err := seedLikes(ctx, pool, rng, 4); err != nil {
		return fmt.Errorf("seed likes: %w", err)
	}

	log.Println("[seed] seeding complete")
	return nil
}

var artists = []struct {
	id   int64
	name string
}{
	{100, "The Midnight Echo"},
	{200, "Glass Harbor"},
	{300, "Neon Wilderness"},
	{400, "Paper Satellites"},
	{500, "Low Tide Collective"},
}

var trackTitles = []string{
	"First Light", "Undertow", "Static Bloom", "Half Remembered",
	"Northern Line", "Afterglow", "Quiet Engine", "Broken Compass",
}

var usernames = []string{
	"alice", "bob", "carol", "dave", "erin", "frank", "grace", "heidi",
}

func seedCatalog(ctx context.Context, pool *pgxpool.Pool) error {
	for _, a := range artists {
		if _, err := pool.Exec(ctx,
			`INSERT INTO artists (id, name) VALUES ($1, $2)`,
			a.id, a.name,
		); err != nil {
			return fmt.Errorf("insert artist %d: %w", a.id, err)
		}

		for i, title := range trackTitles {
			trackID := a.id + int64(i) + 1
			if _, err := pool.Exec(ctx,
				`INSERT INTO tracks (id, title, link, duration, preview, position, rank,
					explicit_lyrics, album_id, album_title, album_cover, artist_id)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
				trackID,
				fmt.Sprintf("%s (%s)", title, a.name),
				fmt.Sprintf("https://example.com/track/%d", trackID),
				180+10*i,
				fmt.Sprintf("https://example.com/preview/%d", trackID),
				i+1,
				100000+1000*i,
				false,
				a.id*10,
				fmt.Sprintf("%s LP", a.name),
				fmt.Sprintf("https://example.com/cover/%d", a.id),
				a.id,
			); err != nil {
				return fmt.Errorf("insert track %d: %w", trackID, err)
			}
		}
	}
	return nil
}

func seedUsers(ctx context.Context, pool *pgxpool.Pool) error {
	for _, name := range usernames {
		if _, err := pool.Exec(ctx,
			`INSERT INTO users (username) VALUES ($1)`, name,
		); err != nil {
			return fmt.Errorf("insert user %q: %w", name, err)
		}
	}
	return nil
}

// seedLikes gives each user likesPerUser likes, biased so neighboring
// users in the list share artists and end up with overlapping like-sets.
func seedLikes(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand, likesPerUser int) error {
	for ui, name := range usernames {
		for n := 0; n < likesPerUser; n++ {
			// Users i and i+1 draw from overlapping artist windows.
			artist := artists[(ui+n)%len(artists)]
			trackID := artist.id + int64(rng.Intn(len(trackTitles))) + 1
			if _, err := pool.Exec(ctx,
				`INSERT INTO user_likes (username, track_id) VALUES ($1, $2)
				ON CONFLICT DO NOTHING`,
				name, trackID,
			); err != nil {
				return fmt.Errorf("insert like %q -> %d: %w", name, trackID, err)
			}
		}
	}
	return nil
}
