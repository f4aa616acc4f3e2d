package domain

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrTrackNotFound  = errors.New("track not found")
	ErrArtistNotFound = errors.New("artist not found")

	// ErrInvalidLimit marks a negative top_n/top_k. Unlike upstream
	// failures it is surfaced to the caller instead of failing open.
	ErrInvalidLimit = errors.New("limit must not be negative")
)
