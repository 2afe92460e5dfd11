package commands

import (
	"fmt"

	"github.com/clawedcode/voidmud/internal/game"
)

// move walks the player through an exit. Movement is the only source of
// passive energy regen: +1 per room entered, clamped at the cap.
func (h *Handler) move(s *game.Session, dir string) ([]string, *Action, error) {
	room, err := currentRoom(s)
	if err != nil {
		return nil, nil, err
	}

	exit, ok := room.Exits[dir]
	if !ok {
		return nil, nil, NewUserError(fmt.Sprintf("A sealed bulkhead. You cannot go %s from here.", dir))
	}

	if exit.Locked() && !s.Player.Has(exit.Requires) {
		return nil, nil, NewUserError(fmt.Sprintf(
			"ACCESS DENIED. The lock wants: %s.", itemName(s, exit.Requires)))
	}

	dest, err := s.World.GetRoom(exit.Room)
	if err != nil {
		return nil, nil, err
	}

	s.Player.Location = exit.Room
	s.Player.RestoreEnergy(1)
	s.World.Discover(exit.Room)
	h.notifyMoved(exit.Room)

	return renderRoom(s, dest), nil, nil
}

// look re-renders the current room.
func (h *Handler) look(s *game.Session, _ []string) ([]string, *Action, error) {
	room, err := currentRoom(s)
	if err != nil {
		return nil, nil, err
	}
	return renderRoom(s, room), nil, nil
}
