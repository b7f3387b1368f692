package core

import "testing"

func TestPositionAdd(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Position
		expected Position
	}{
		{"zero", Pos(0, 0), Pos(0, 0), Pos(0, 0)},
		{"up", Pos(5, 5), Pos(0, 1), Pos(5, 6)},
		{"down", Pos(5, 5), Pos(0, -1), Pos(5, 4)},
		{"left", Pos(5, 5), Pos(-1, 0), Pos(4, 5)},
		{"right", Pos(5, 5), Pos(1, 0), Pos(6, 5)},
		{"negative result", Pos(0, 0), Pos(-1, -1), Pos(-1, -1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Add(tc.b)
			if result != tc.expected {
				t.Errorf("%v.Add(%v) = %v, expected %v", tc.a, tc.b, result, tc.expected)
			}
			// Addition is commutative
			if reverse := tc.b.Add(tc.a); reverse != tc.expected {
				t.Errorf("%v.Add(%v) = %v, expected %v", tc.b, tc.a, reverse, tc.expected)
			}
		})
	}
}

func TestPositionEquality(t *testing.T) {
	if Pos(3, 4) != (Position{X: 3, Y: 4}) {
		t.Error("Pos(3, 4) should equal Position{3, 4}")
	}
	if Pos(3, 4) == Pos(4, 3) {
		t.Error("Pos(3, 4) should not equal Pos(4, 3)")
	}
}

func TestPositionString(t *testing.T) {
	if got := Pos(5, -3).String(); got != "(5,-3)" {
		t.Errorf("String() = %q, expected %q", got, "(5,-3)")
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}
