package recommend

// Jaccard returns |A ∩ B| / |A ∪ B| in [0, 1]. Two empty sets score 0,
// not 1, so users with no likes never count as similar to anyone.
func Jaccard(a, b LikeSet) float64 {
	intersection := 0
	union := len(b)
	for id := range a {
		if b.Has(id) {
			intersection++
		} else {
			union++
		}
	}
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
