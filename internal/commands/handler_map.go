package commands

import (
	"fmt"

	"github.com/clawedcode/voidmud/internal/display"
	"github.com/clawedcode/voidmud/internal/game"
)

// mapCmd renders a per-level grid of discovered rooms. It stays sealed
// until the player has found the station schematics.
func (h *Handler) mapCmd(s *game.Session, _ []string) ([]string, *Action, error) {
	if !s.MapUnlocked {
		return nil, nil, NewUserError("Your visor has no deck schematics. Something aboard must hold them.")
	}

	byLevel := map[int][]display.MapRoom{}
	levels := map[int]bool{}
	for key, room := range s.World.Rooms() {
		if !s.World.IsDiscovered(key) {
			continue
		}
		levels[room.Z] = true
		byLevel[room.Z] = append(byLevel[room.Z], display.MapRoom{
			Abbrev:  room.Abbrev,
			X:       room.X,
			Y:       room.Y,
			Current: key == s.Player.Location,
		})
	}

	var lines []string
	for _, z := range display.SortLevels(levels) {
		lines = append(lines, fmt.Sprintf("-- %s --", game.LevelName(z)))
		lines = append(lines, display.Grid(byLevel[z])...)
	}
	lines = append(lines, "[..] marks your position.")
	return lines, nil, nil
}
