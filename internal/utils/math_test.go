package utils

import "testing"

func TestMap(t *testing.T) {
	if got := Map(5, 0, 10, 100, 200); got != 150 {
		t.Fatalf("Map midpoint = %v, want 150", got)
	}
	// inverted source range, as used for luminosity
	if got := Map(600, 600, 0, 20, 80); got != 20 {
		t.Fatalf("Map(600) = %v, want 20", got)
	}
	if got := Map(0, 600, 0, 20, 80); got != 80 {
		t.Fatalf("Map(0) = %v, want 80", got)
	}
	if got := Map(20, 0, 10, 0, 1); got != 2 {
		t.Fatalf("Map must not clamp, got %v", got)
	}
	if got := Map(3, 1, 1, 7, 9); got != 7 {
		t.Fatalf("degenerate range = %v, want 7", got)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-1, 0, 1) != 0 || Clamp(2, 0, 1) != 1 || Clamp(0.5, 0, 1) != 0.5 {
		t.Fatal("Clamp out of range")
	}
	if Clamp(5, 10, 0) != 5 {
		t.Fatal("Clamp should accept swapped bounds")
	}
}
