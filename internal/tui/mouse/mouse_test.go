package mouse

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 10}

	cases := []struct {
		x, y     int
		expected bool
	}{
		{10, 10, true},  // Top-left corner
		{29, 19, true},  // Bottom-right corner
		{9, 10, false},  // Just left
		{30, 10, false}, // Just right (exclusive)
		{10, 20, false}, // Just below (exclusive)
	}

	for _, tc := range cases {
		if got := r.Contains(tc.x, tc.y); got != tc.expected {
			t.Errorf("Rect(%+v).Contains(%d, %d) = %v, want %v", r, tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestHitMapTopmostWins(t *testing.T) {
	hm := NewHitMap()
	hm.AddRect("container", 0, 0, 40, 3, nil)
	hm.AddRect("clear", 30, 1, 1, 1, nil)

	if r := hm.Test(30, 1); r == nil || r.ID != "clear" {
		t.Errorf("expected hit on clear, got %v", r)
	}
	if r := hm.Test(5, 1); r == nil || r.ID != "container" {
		t.Errorf("expected hit on container, got %v", r)
	}
	if r := hm.Test(50, 1); r != nil {
		t.Errorf("expected no hit, got %v", r)
	}
}

func TestHitMapData(t *testing.T) {
	hm := NewHitMap()
	hm.AddRect("item", 0, 4, 10, 1, 3)

	r := hm.Test(2, 4)
	if r == nil {
		t.Fatal("expected a hit")
	}
	if idx, ok := r.Data.(int); !ok || idx != 3 {
		t.Errorf("expected data 3, got %v", r.Data)
	}
}

func TestHitMapClear(t *testing.T) {
	hm := NewHitMap()
	hm.AddRect("a", 0, 0, 5, 5, nil)
	hm.AddRect("b", 6, 0, 5, 5, nil)

	if len(hm.Regions()) != 2 {
		t.Errorf("expected 2 regions, got %d", len(hm.Regions()))
	}

	hm.Clear()

	if len(hm.Regions()) != 0 {
		t.Errorf("expected 0 regions after clear, got %d", len(hm.Regions()))
	}
	if r := hm.Test(1, 1); r != nil {
		t.Errorf("expected no hit after clear, got %v", r)
	}
}
