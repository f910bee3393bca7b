package systems

import "testing"

func TestSlope_Compare(t *testing.T) {
	tests := []struct {
		name       string
		a, b       Slope
		less, same bool
	}{
		{"half vs two quarters", Slope{1, 2}, Slope{2, 4}, false, true},
		{"negative below zero", Slope{-1, 3}, Slope{0, 1}, true, false},
		{"one third below one half", Slope{1, 3}, Slope{1, 2}, true, false},
		{"wedge bounds", wedgeLow, wedgeHigh, true, false},
		{"large radius neighbours", Slope{999, 2000}, Slope{1000, 2001}, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Less(tt.b); got != tt.less {
				t.Errorf("%v < %v = %v, want %v", tt.a, tt.b, got, tt.less)
			}
			if got := tt.a.Equal(tt.b); got != tt.same {
				t.Errorf("%v == %v = %v, want %v", tt.a, tt.b, got, tt.same)
			}
			if tt.a.LessOrEqual(tt.b) != (tt.less || tt.same) {
				t.Errorf("%v <= %v inconsistent with Less/Equal", tt.a, tt.b)
			}
		})
	}
}

func TestNewSlope_NormalizesSign(t *testing.T) {
	s := NewSlope(3, -4)
	if s.Den <= 0 {
		t.Fatalf("Expected positive denominator, got %v", s)
	}
	if !s.Equal(Slope{-3, 4}) {
		t.Errorf("Expected -3/4, got %v", s)
	}
}

func TestClampToWedge(t *testing.T) {
	tests := []struct {
		in, want Slope
	}{
		{Slope{-7, 3}, wedgeLow},
		{Slope{5, 3}, wedgeHigh},
		{Slope{1, 5}, Slope{1, 5}},
		{Slope{-3, 3}, Slope{-3, 3}},
	}

	for _, tt := range tests {
		if got := clampToWedge(tt.in); !got.Equal(tt.want) {
			t.Errorf("clampToWedge(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
