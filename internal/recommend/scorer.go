package recommend

import "context"

// Scores accumulates similarity-weighted evidence per candidate track.
type Scores map[TrackID]float64

// Aggregate folds every other user's like-set into candidate scores for
// targetUser: each track a neighbor likes that the target does not gets
// that neighbor's Jaccard similarity added to its total. A track liked by
// several similar users compounds weight, so popularity among similar
// users, not raw popularity, drives the ranking.
//
// Cancellation is checked once per user; a cancelled context aborts the
// pass and returns no scores.
func Aggregate(ctx context.Context, targetUser string, snapshot Snapshot) (Scores, error) {
	targetLikes := snapshot[targetUser]
	scores := make(Scores)

	for username, likes := range snapshot {
		if username == targetUser {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sim := Jaccard(targetLikes, likes)
		for id := range likes {
			if !targetLikes.Has(id) {
				scores[id] += sim
			}
		}
	}

	return scores, nil
}
