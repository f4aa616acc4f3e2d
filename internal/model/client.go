// Package model talks to the external model-based recommender service.
// The service runs a latent-factor model trained offline; this client
// only knows its HTTP contract.
package model

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dmytrobakai/music-recomendation/internal/recommend"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type recommendResponse struct {
	RecommendedTrackIDs []int64 `json:"recommended_track_ids"`
}

// Recommend fetches up to topK ranked track ids for a user. An absent
// recommended_track_ids field decodes as an empty list.
func (c *Client) Recommend(ctx context.Context, username string, topK int) ([]recommend.TrackID, error) {
	u := fmt.Sprintf("%s/recommend/%s?top_k=%d", c.baseURL, url.PathEscape(username), topK)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build model request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call model service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("model service returned status %d", resp.StatusCode)
	}

	var body recommendResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode model response: %w", err)
	}

	ids := make([]recommend.TrackID, 0, len(body.RecommendedTrackIDs))
	for _, id := range body.RecommendedTrackIDs {
		ids = append(ids, recommend.TrackID(id))
	}
	return ids, nil
}
