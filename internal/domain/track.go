package domain

// Track mirrors the catalog row imported from the Deezer API; ids are
// assigned upstream, never generated locally.
type Track struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Link           string `json:"link"`
	Duration       int64  `json:"duration"`
	Preview        string `json:"preview"`
	Position       int64  `json:"position"`
	Rank           int64  `json:"rank"`
	ExplicitLyrics bool   `json:"explicit_lyrics"`
	AlbumID        int64  `json:"album_id"`
	AlbumTitle     string `json:"album_title"`
	AlbumCover     string `json:"album_cover"`
	ArtistID       int64  `json:"artist_id"`
}

type Artist struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
