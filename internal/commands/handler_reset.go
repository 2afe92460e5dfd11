package commands

import "github.com/clawedcode/voidmud/internal/game"

// reset hands control to the host for a yes/no prompt; the destructive part
// only happens when the host routes back a confirm-reset.
func (h *Handler) reset(s *game.Session, _ []string) ([]string, *Action, error) {
	return []string{"This wipes your run: world, inventory, everything."},
		&Action{Kind: ActionConfirmReset}, nil
}

func (h *Handler) confirmReset(s *game.Session, _ []string) ([]string, *Action, error) {
	if err := s.Reset(); err != nil {
		return nil, nil, err
	}

	room, err := currentRoom(s)
	if err != nil {
		return nil, nil, err
	}
	h.notifyMoved(s.Player.Location)

	lines := []string{"Static washes over everything. When it clears, you are back where you started."}
	return append(lines, renderRoom(s, room)...), nil, nil
}
