package commands

import (
	"fmt"
	"strings"

	"github.com/clawedcode/voidmud/internal/game"
)

// take moves one item from the floor to the inventory. Darkness blocks
// perception entirely - an item can be technically present and still
// untakeable until the room is lit.
func (h *Handler) take(s *game.Session, args []string) ([]string, *Action, error) {
	if len(args) == 0 {
		return nil, nil, NewUserError("Take what?")
	}

	room, err := currentRoom(s)
	if err != nil {
		return nil, nil, err
	}

	if room.Dark {
		return nil, nil, NewUserError("Too dark to see. Your hands find nothing but cold deck plating.")
	}

	cands := make([]candidate, 0, len(room.Items))
	for _, id := range room.Items {
		cands = append(cands, candidate{id: id, name: itemName(s, id)})
	}

	id, ok := matchCandidate(cands, strings.Join(args, " "))
	if !ok {
		return nil, nil, NewUserError("There is nothing like that here.")
	}

	// Absent means a peer took it between render and take; same message.
	if !room.RemoveItem(id) {
		return nil, nil, NewUserError("There is nothing like that here.")
	}
	s.Player.AddItem(id, 1)

	lines := []string{fmt.Sprintf("You take the %s.", itemName(s, id))}

	// Acquiring the station schematic reveals the map permanently.
	if item := s.World.Item(id); item != nil && item.Effect.Kind == game.EffectUnlockMap && !s.MapUnlocked {
		s.MapUnlocked = true
		lines = append(lines, "Deck schematics resolve across your visor. (map)")
	}

	return lines, nil, nil
}
