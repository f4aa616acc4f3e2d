// Package recommend implements neighborhood collaborative filtering over
// the like graph: Jaccard similarity between users' like-sets, similarity
// weighted aggregation of candidate tracks, and deterministic top-N
// selection.
package recommend

// TrackID identifies a track in the catalog.
type TrackID int64

// LikeSet is the set of track ids a user has liked.
type LikeSet map[TrackID]struct{}

func NewLikeSet(ids ...TrackID) LikeSet {
	s := make(LikeSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s LikeSet) Add(id TrackID) {
	s[id] = struct{}{}
}

func (s LikeSet) Has(id TrackID) bool {
	_, ok := s[id]
	return ok
}

// Snapshot maps every known username to their like-set at one moment in
// time. A user missing from the snapshot behaves like one with an empty
// like-set.
type Snapshot map[string]LikeSet
