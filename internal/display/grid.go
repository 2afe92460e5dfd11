package display

import (
	"sort"
	"strings"
)

// MapRoom is one discovered room placed on a level's grid.
type MapRoom struct {
	Abbrev  string
	X, Y    int
	Current bool
}

const gridCellWidth = 5

// Grid renders one vertical level as a character grid. North is up, so rows
// run from the highest Y down. The current room is bracketed.
func Grid(rooms []MapRoom) []string {
	if len(rooms) == 0 {
		return nil
	}

	minX, maxX := rooms[0].X, rooms[0].X
	minY, maxY := rooms[0].Y, rooms[0].Y
	for _, r := range rooms {
		minX, maxX = min(minX, r.X), max(maxX, r.X)
		minY, maxY = min(minY, r.Y), max(maxY, r.Y)
	}

	cells := make(map[[2]int]MapRoom, len(rooms))
	for _, r := range rooms {
		cells[[2]int{r.X, r.Y}] = r
	}

	var lines []string
	for y := maxY; y >= minY; y-- {
		var b strings.Builder
		for x := minX; x <= maxX; x++ {
			r, ok := cells[[2]int{x, y}]
			switch {
			case !ok:
				b.WriteString(strings.Repeat(" ", gridCellWidth))
			case r.Current:
				b.WriteString(pad("[" + r.Abbrev + "]"))
			default:
				b.WriteString(pad(" " + r.Abbrev + " "))
			}
		}
		lines = append(lines, strings.TrimRight(b.String(), " "))
	}

	// Drop fully blank rows that can appear when a level is sparse.
	out := lines[:0]
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}

func pad(cell string) string {
	if len(cell) >= gridCellWidth {
		return cell[:gridCellWidth]
	}
	return cell + strings.Repeat(" ", gridCellWidth-len(cell))
}

// SortLevels returns the distinct Z levels present, highest first.
func SortLevels(zs map[int]bool) []int {
	levels := make([]int, 0, len(zs))
	for z := range zs {
		levels = append(levels, z)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(levels)))
	return levels
}
