package commands

import (
	"fmt"
	"strings"

	"github.com/clawedcode/voidmud/internal/display"
	"github.com/clawedcode/voidmud/internal/game"
)

// read prints the room's terminal entry, if it has one.
func (h *Handler) read(s *game.Session, _ []string) ([]string, *Action, error) {
	room, err := currentRoom(s)
	if err != nil {
		return nil, nil, err
	}

	if room.Readable == "" {
		return nil, nil, NewUserError("There is no terminal here.")
	}
	if room.Dark {
		return nil, nil, NewUserError("The terminal glows faintly, but you cannot make out the screen in the dark.")
	}

	lore := s.World.Lore(room.Readable)
	if lore == nil {
		return nil, nil, fmt.Errorf("room %q: readable %q not found", s.Player.Location, room.Readable)
	}

	lines := []string{fmt.Sprintf("== %s ==", strings.ToUpper(lore.Title))}
	for _, para := range lore.Body {
		lines = append(lines, display.Wrap(para))
	}
	return lines, nil, nil
}
