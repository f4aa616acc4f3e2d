package recommend

import (
	"sort"

	"github.com/dmytrobakai/music-recomendation/internal/domain"
)

// TopN ranks candidates by descending score, ties broken by ascending
// track id so results are reproducible, and truncates to n. Candidates
// with score 0 carry no similarity-weighted support and are dropped.
// Negative n is a contract violation.
func TopN(scores Scores, n int) ([]TrackID, error) {
	if n < 0 {
		return nil, domain.ErrInvalidLimit
	}
	if n == 0 {
		return nil, nil
	}

	ranked := make([]TrackID, 0, len(scores))
	for id, score := range scores {
		if score > 0 {
			ranked = append(ranked, id)
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		si, sj := scores[ranked[i]], scores[ranked[j]]
		if si != sj {
			return si > sj
		}
		return ranked[i] < ranked[j]
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked, nil
}
