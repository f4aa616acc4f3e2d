package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmytrobakai/music-recomendation/internal/domain"
	"github.com/jackc/pgx/v5"
)

func (r *Repository) GetUser(ctx context.Context, username string) (*domain.User, error) {
	user := &domain.User{}

	err := r.pool.QueryRow(ctx,
		`SELECT username FROM users WHERE username = $1`,
		username,
	).Scan(&user.Username)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("query user %q: %w", username, err)
	}

	return user, nil
}

// CreateUser registers a username on first login. Idempotent.
func (r *Repository) CreateUser(ctx context.Context, username string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO users (username) VALUES ($1) ON CONFLICT (username) DO NOTHING`,
		username,
	)
	if err != nil {
		return fmt.Errorf("create user %q: %w", username, err)
	}
	return nil
}
