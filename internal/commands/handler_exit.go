package commands

import "github.com/clawedcode/voidmud/internal/game"

// escape ends a run through the pod bay. It only works where the pods are
// and only once the Warden is down.
func (h *Handler) escape(s *game.Session, _ []string) ([]string, *Action, error) {
	room, err := currentRoom(s)
	if err != nil {
		return nil, nil, err
	}

	if !room.IsExit {
		return nil, nil, NewUserError("There is nothing to escape through here.")
	}
	if !s.World.FinalBossDefeated() {
		return nil, nil, NewUserError("The pod bay doors are fused shut. The Warden's override keycard would open them.")
	}

	s.Status = game.StatusVictory
	return []string{
		"The pod seals around you. Thrusters fire.",
		"Void Station shrinks to a point of light behind you, then winks out.",
		"YOU ESCAPED.",
	}, &Action{Kind: ActionQuit}, nil
}
