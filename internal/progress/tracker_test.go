package progress

import "testing"

func TestTracker_FreshIsEmpty(t *testing.T) {
	var tr Tracker

	if tr.SetsCompleted() != 0 {
		t.Errorf("SetsCompleted = %d, want 0", tr.SetsCompleted())
	}
	if tr.IsComplete() {
		t.Error("fresh tracker should not be complete")
	}
	if tr.MaxSets() != 5 {
		t.Errorf("MaxSets = %d, want 5", tr.MaxSets())
	}
}

func TestTracker_IncrementStopsAtMax(t *testing.T) {
	var tr Tracker

	for i := 1; i <= 5; i++ {
		if !tr.Increment() {
			t.Fatalf("increment %d should change the count", i)
		}
	}
	if tr.Increment() {
		t.Error("6th increment should be a no-op")
	}

	if tr.SetsCompleted() != 5 {
		t.Errorf("SetsCompleted = %d, want 5", tr.SetsCompleted())
	}
	if !tr.IsComplete() {
		t.Error("tracker should be complete after 5 sets")
	}
}

func TestTracker_ResetAfterCompletion(t *testing.T) {
	var tr Tracker
	for i := 0; i < 6; i++ {
		tr.Increment()
	}

	tr.Reset()

	if tr.SetsCompleted() != 0 {
		t.Errorf("SetsCompleted = %d, want 0", tr.SetsCompleted())
	}
	if tr.IsComplete() {
		t.Error("tracker should be incomplete after reset")
	}
	if !tr.Increment() {
		t.Error("increment after reset should work again")
	}
}

func TestTracker_Fraction(t *testing.T) {
	tests := []struct {
		sets int
		want float64
	}{
		{0, 0},
		{1, 0.2},
		{5, 1},
	}

	for _, tt := range tests {
		var tr Tracker
		for i := 0; i < tt.sets; i++ {
			tr.Increment()
		}
		if got := tr.Fraction(); got != tt.want {
			t.Errorf("Fraction after %d sets = %v, want %v", tt.sets, got, tt.want)
		}
	}
}
