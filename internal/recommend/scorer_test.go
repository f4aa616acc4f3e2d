package recommend

import (
	"context"
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAggregate(t *testing.T) {
	snapshot := Snapshot{
		"alice": NewLikeSet(1, 2),
		"bob":   NewLikeSet(2, 3),
		"carol": NewLikeSet(3, 4),
	}

	scores, err := Aggregate(context.Background(), "alice", snapshot)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	// sim(alice,bob) = 1/3, so track 3 gets 1/3 from bob; carol shares
	// nothing with alice, so tracks 3 and 4 get 0 from her.
	if !almostEqual(scores[3], 1.0/3.0) {
		t.Errorf("score[3] = %f, want 1/3", scores[3])
	}
	if !almostEqual(scores[4], 0) {
		t.Errorf("score[4] = %f, want 0", scores[4])
	}
	if _, ok := scores[1]; ok {
		t.Error("track 1 is liked by the target and must not be a candidate")
	}
	if _, ok := scores[2]; ok {
		t.Error("track 2 is liked by the target and must not be a candidate")
	}
}

func TestAggregateCompoundsWeight(t *testing.T) {
	// Track 9 is liked by two users each with similarity 1/2 to the
	// target; its score is the sum of both contributions.
	snapshot := Snapshot{
		"target": NewLikeSet(1),
		"u1":     NewLikeSet(1, 9),
		"u2":     NewLikeSet(1, 9),
	}

	scores, err := Aggregate(context.Background(), "target", snapshot)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if !almostEqual(scores[9], 1.0) {
		t.Errorf("score[9] = %f, want 1.0", scores[9])
	}
}

func TestAggregateExcludesSelf(t *testing.T) {
	snapshot := Snapshot{
		"solo": NewLikeSet(1, 2, 3),
	}

	scores, err := Aggregate(context.Background(), "solo", snapshot)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("expected no candidates with a single user, got %v", scores)
	}
}

func TestAggregateEmptyTarget(t *testing.T) {
	// An empty like-set has Jaccard 0 with every non-empty set, so every
	// candidate accumulates weight 0.
	snapshot := Snapshot{
		"fresh": NewLikeSet(),
		"bob":   NewLikeSet(1, 2),
	}

	scores, err := Aggregate(context.Background(), "fresh", snapshot)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	for id, score := range scores {
		if score != 0 {
			t.Errorf("score[%d] = %f, want 0 for empty target", id, score)
		}
	}
}

func TestAggregateMissingTarget(t *testing.T) {
	snapshot := Snapshot{
		"bob": NewLikeSet(1, 2),
	}

	scores, err := Aggregate(context.Background(), "ghost", snapshot)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	// Absent target behaves like an empty like-set: candidates exist but
	// none with positive weight.
	if !almostEqual(scores[1], 0) || !almostEqual(scores[2], 0) {
		t.Errorf("expected zero-weight candidates, got %v", scores)
	}
}

func TestAggregateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	snapshot := Snapshot{
		"alice": NewLikeSet(1),
		"bob":   NewLikeSet(2),
	}

	scores, err := Aggregate(ctx, "alice", snapshot)
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
	if scores != nil {
		t.Errorf("expected nil scores on cancellation, got %v", scores)
	}
}
