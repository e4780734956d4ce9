package split

import "testing"

func TestEntropyPurePartition(t *testing.T) {
	counts := map[int]int{1: 7}
	if got := Entropy(counts, 7); got != 0 {
		t.Fatalf("expected entropy 0 for pure partition, got %v", got)
	}
}

func TestEntropyEvenSplit(t *testing.T) {
	counts := map[int]int{0: 5, 1: 5}
	if got := Entropy(counts, 10); got != 1.0 {
		t.Fatalf("expected entropy 1 bit for 50/50 partition, got %v", got)
	}
}

func TestEntropyZeroCountGuard(t *testing.T) {
	counts := map[int]int{0: 4, 1: 0}
	if got := Entropy(counts, 4); got != 0 {
		t.Fatalf("expected zero-count label to contribute nothing, got %v", got)
	}
}

func TestEntropyEmpty(t *testing.T) {
	if got := Entropy(map[int]int{}, 0); got != 0 {
		t.Fatalf("expected entropy 0 for empty partition, got %v", got)
	}
}
