package domain

import "testing"

func TestHexDirections_AreRotations(t *testing.T) {
	for i := 0; i < DirectionCount; i++ {
		next := HexDirections[(i+1)%DirectionCount]
		if got := HexDirections[i].Rotate60(); got != next {
			t.Errorf("Rotate60(%v) = %v, want %v", HexDirections[i], got, next)
		}
		if d := Distance(Hex(0, 0), HexDirections[i]); d != 1 {
			t.Errorf("Direction %d has length %d, want 1", i, d)
		}
	}
}

func TestHexCoord_CubeInvariant(t *testing.T) {
	for _, h := range []HexCoord{Hex(0, 0), Hex(3, -7), Hex(-4, -4), Hex(12, 5)} {
		if h.S+h.T+h.P() != 0 {
			t.Errorf("%v: s+t+p = %d, want 0", h, h.S+h.T+h.P())
		}
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b HexCoord
		want int
	}{
		{"same", Hex(2, 3), Hex(2, 3), 0},
		{"neighbor", Hex(0, 0), Hex(1, -1), 1},
		{"along s", Hex(0, 0), Hex(4, 0), 4},
		{"corner direction", Hex(0, 0), Hex(1, 1), 2},
		{"negative coords", Hex(-3, -2), Hex(1, -5), 4},
		{"symmetric", Hex(1, -5), Hex(-3, -2), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); got != tt.want {
				t.Errorf("Distance(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := tt.a.DistanceTo(tt.b); got != tt.want {
				t.Errorf("%v.DistanceTo(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDistanceSquared(t *testing.T) {
	tests := []struct {
		a, b HexCoord
		want int
	}{
		{Hex(0, 0), Hex(1, 0), 1},
		{Hex(0, 0), Hex(1, -1), 1},
		{Hex(0, 0), Hex(1, 1), 3},
		{Hex(0, 0), Hex(2, -1), 3},
		{Hex(0, 0), Hex(2, 0), 4},
		{Hex(-2, 1), Hex(0, 0), 3},
	}

	for _, tt := range tests {
		if got := DistanceSquared(tt.a, tt.b); got != tt.want {
			t.Errorf("DistanceSquared(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestRotate(t *testing.T) {
	h := Hex(3, -1)
	if got := h.Rotate(6); got != h {
		t.Errorf("Rotate(6) = %v, want identity %v", got, h)
	}
	if got := h.Rotate(-1); got != h.Rotate(5) {
		t.Errorf("Rotate(-1) = %v, want Rotate(5) = %v", got, h.Rotate(5))
	}
	if got := h.Rotate(3); got != Hex(-3, 1) {
		t.Errorf("Rotate(3) = %v, want point reflection (-3,1)", got)
	}
	// Поворот сохраняет расстояние до центра
	for k := 0; k < DirectionCount; k++ {
		if d := Distance(Hex(0, 0), h.Rotate(k)); d != 3 {
			t.Errorf("Rotate(%d) changed length to %d", k, d)
		}
	}

	center := Hex(-5, 2)
	p := center.Add(Hex(2, 0))
	if got := p.RotateAround(center, 1); got != center.Add(Hex(2, -2)) {
		t.Errorf("RotateAround = %v, want %v", got, center.Add(Hex(2, -2)))
	}
}

func TestNeighbors(t *testing.T) {
	h := Hex(-2, 4)
	ns := h.Neighbors()
	for i, n := range ns {
		if !h.IsAdjacent(n) {
			t.Errorf("Neighbor %d (%v) is not adjacent to %v", i, n, h)
		}
		if n != h.Neighbor(i) {
			t.Errorf("Neighbors()[%d] = %v, Neighbor(%d) = %v", i, n, i, h.Neighbor(i))
		}
	}
	if h.Neighbor(-1) != h.Neighbor(5) {
		t.Error("Neighbor should wrap negative directions")
	}
}
