package security

import "testing"

func TestRandomIndexStaysInBounds(t *testing.T) {
	for attempt := 0; attempt < 200; attempt++ {
		index, err := RandomIndex(7)
		if err != nil {
			t.Fatalf("random index failed: %v", err)
		}
		if index < 0 || index >= 7 {
			t.Fatalf("index %d out of [0, 7)", index)
		}
	}
}

func TestRandomIndexRejectsEmptyRange(t *testing.T) {
	if _, err := RandomIndex(0); err == nil {
		t.Fatal("expected error for zero bound")
	}
	if _, err := RandomIndex(-3); err == nil {
		t.Fatal("expected error for negative bound")
	}
}
