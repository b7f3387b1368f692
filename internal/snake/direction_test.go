package snake

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

var allDirections = []Direction{Up, Down, Left, Right}

func TestCanTurnTo(t *testing.T) {
	tests := []struct {
		from, to Direction
		expected bool
	}{
		{Up, Left, true},
		{Up, Right, true},
		{Up, Down, false},
		{Up, Up, false},
		{Down, Left, true},
		{Down, Right, true},
		{Down, Up, false},
		{Down, Down, false},
		{Left, Up, true},
		{Left, Down, true},
		{Left, Right, false},
		{Left, Left, false},
		{Right, Up, true},
		{Right, Down, true},
		{Right, Left, false},
		{Right, Right, false},
	}

	for _, tc := range tests {
		t.Run(tc.from.String()+"->"+tc.to.String(), func(t *testing.T) {
			if got := tc.from.CanTurnTo(tc.to); got != tc.expected {
				t.Errorf("%v.CanTurnTo(%v) = %v, expected %v", tc.from, tc.to, got, tc.expected)
			}
		})
	}
}

func TestOppositeNeverLegal(t *testing.T) {
	for _, d := range allDirections {
		if d.CanTurnTo(d.Opposite()) {
			t.Errorf("%v must not turn to its opposite %v", d, d.Opposite())
		}
		if d.Opposite().Opposite() != d {
			t.Errorf("Opposite of opposite of %v should be %v", d, d)
		}
	}
}

func TestDirectionVectors(t *testing.T) {
	expected := map[Direction]core.Position{
		Up:    core.Pos(0, 1),
		Down:  core.Pos(0, -1),
		Left:  core.Pos(-1, 0),
		Right: core.Pos(1, 0),
	}
	for d, v := range expected {
		if d.Vector() != v {
			t.Errorf("%v.Vector() = %v, expected %v", d, d.Vector(), v)
		}
		if d.Vector().Add(d.Opposite().Vector()) != core.Pos(0, 0) {
			t.Errorf("%v and its opposite should cancel out", d)
		}
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		key   rune
		cmd   Command
		dir   Direction
		known bool
	}{
		{'w', CommandTurn, Up, true},
		{'a', CommandTurn, Left, true},
		{'s', CommandTurn, Down, true},
		{'d', CommandTurn, Right, true},
		{'q', CommandQuit, 0, true},
		{'x', 0, 0, false},
		{'W', 0, 0, false},
		{' ', 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.key), func(t *testing.T) {
			cmd, dir, ok := ParseKey(tc.key)
			if ok != tc.known {
				t.Fatalf("ParseKey(%q) ok = %v, expected %v", tc.key, ok, tc.known)
			}
			if !ok {
				return
			}
			if cmd != tc.cmd {
				t.Errorf("ParseKey(%q) cmd = %v, expected %v", tc.key, cmd, tc.cmd)
			}
			if cmd == CommandTurn && dir != tc.dir {
				t.Errorf("ParseKey(%q) dir = %v, expected %v", tc.key, dir, tc.dir)
			}
		})
	}
}
