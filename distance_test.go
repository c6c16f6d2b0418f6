package csmt

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	for _, table := range []struct {
		a, b uint64
		want int
	}{
		{0, 1, 0},
		{2, 3, 0},
		{0, 2, 1},
		{0, 4, 2},
		{1, 2, 1},
		{0, math.MaxUint64, 63},
		{math.MaxUint64 - 1, math.MaxUint64, 0},
		{1 << 62, 1 << 63, 63},
	} {
		if got := distance(table.a, table.b); got != table.want {
			t.Errorf("distance(%d, %d) => got %d, want %d", table.a, table.b, got, table.want)
		}
		if got := distance(table.b, table.a); got != table.want {
			t.Errorf("distance(%d, %d) => got %d, want %d (symmetry)", table.b, table.a, got, table.want)
		}
	}
}

func TestDistanceSmallerMeansCloserTogether(t *testing.T) {
	// A key that diverges from 0 only at bit 0 (the bottom bit) shares a
	// longer common prefix with 0 than one that diverges at bit 63, so it
	// gets the smaller distance.
	dNear := distance(0, 1)
	dFar := distance(0, 1<<63)
	if !(dNear < dFar) {
		t.Errorf("expected low-bit divergence (%d) to have a smaller distance than high-bit divergence (%d)", dNear, dFar)
	}
}
