package display

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestGrid(t *testing.T) {
	tests := map[string]struct {
		rooms    []MapRoom
		expLines []string
	}{
		"empty": {
			rooms:    nil,
			expLines: nil,
		},
		"single current room": {
			rooms:    []MapRoom{{Abbrev: "SD", X: 0, Y: 0, Current: true}},
			expLines: []string{"[SD]"},
		},
		"row of rooms": {
			rooms: []MapRoom{
				{Abbrev: "SD", X: 0, Y: 0, Current: true},
				{Abbrev: "LH", X: 1, Y: 0},
			},
			expLines: []string{"[SD]  LH"},
		},
		"north is the top row": {
			rooms: []MapRoom{
				{Abbrev: "OB", X: 0, Y: 1},
				{Abbrev: "AT", X: 0, Y: 0, Current: true},
			},
			expLines: []string{" OB", "[AT]"},
		},
		"gap cell left blank": {
			rooms: []MapRoom{
				{Abbrev: "SD", X: 0, Y: 0, Current: true},
				{Abbrev: "AR", X: 2, Y: 0},
			},
			expLines: []string{"[SD]       AR"},
		},
		"blank rows dropped": {
			rooms: []MapRoom{
				{Abbrev: "OB", X: 0, Y: 2},
				{Abbrev: "SD", X: 0, Y: 0, Current: true},
			},
			expLines: []string{" OB", "[SD]"},
		},
		"oversized abbrev truncated": {
			rooms:    []MapRoom{{Abbrev: "REACTOR", X: 0, Y: 0, Current: true}},
			expLines: []string{"[REAC"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Grid(tt.rooms)
			if len(got) != len(tt.expLines) {
				t.Fatalf("expected %q, got %q", tt.expLines, got)
			}
			for i := range tt.expLines {
				testutil.AssertEqual(t, "line", got[i], tt.expLines[i])
			}
		})
	}
}

func TestSortLevels(t *testing.T) {
	got := SortLevels(map[int]bool{0: true, -1: true, 1: true})

	exp := []int{1, 0, -1}
	if len(got) != len(exp) {
		t.Fatalf("expected %v, got %v", exp, got)
	}
	for i := range exp {
		testutil.AssertEqual(t, "level", got[i], exp[i])
	}
}
