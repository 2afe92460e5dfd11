package commands

import (
	"fmt"

	"github.com/clawedcode/voidmud/internal/game"
)

var abilityCosts = map[string]int{
	"surge": 3,
	"evade": 4,
	"scan":  2,
}

// ability dispatches "ability <name>"; the bare shorthands route here too.
func (h *Handler) ability(s *game.Session, args []string) ([]string, *Action, error) {
	if len(args) == 0 {
		return nil, nil, NewUserError("Ability what? (surge, evade, scan)")
	}
	return h.runAbility(s, args[0])
}

// abilityShorthand binds a bare verb like "surge" to its ability.
func (h *Handler) abilityShorthand(name string) handlerFunc {
	return func(s *game.Session, _ []string) ([]string, *Action, error) {
		return h.runAbility(s, name)
	}
}

// runAbility checks the energy cost before touching any other state, so a
// failed activation leaves the player exactly as it found them.
func (h *Handler) runAbility(s *game.Session, name string) ([]string, *Action, error) {
	cost, ok := abilityCosts[name]
	if !ok {
		return nil, nil, NewUserError(fmt.Sprintf("You know no ability called %q. (surge, evade, scan)", name))
	}

	if !s.Player.SpendEnergy(cost) {
		return nil, nil, NewUserError(fmt.Sprintf(
			"Not enough energy for %s. It costs %d; you have %d.", name, cost, s.Player.Energy))
	}

	switch name {
	case "surge":
		s.Player.AbilityCharge = game.ChargeSurge
		return []string{"Capacitors whine up to full charge. Your next strike will hit harder."}, nil, nil

	case "evade":
		s.Player.Evading = true
		return []string{"You drop into a ready crouch, watching for the next attack."}, nil, nil

	case "scan":
		return h.scan(s)

	default:
		return nil, nil, fmt.Errorf("ability %q registered without an implementation", name)
	}
}

// scan reveals the enemy's numbers permanently and orients the player on
// the station. The energy is spent even with nothing to scan; the visor
// doesn't refund sweeps.
func (h *Handler) scan(s *game.Session) ([]string, *Action, error) {
	room, err := currentRoom(s)
	if err != nil {
		return nil, nil, err
	}

	lines := []string{fmt.Sprintf("Visor sweep: %s, %s.", room.Name, game.LevelName(room.Z))}
	if room.Readable != "" {
		lines = append(lines, "The sweep flags a powered data terminal. (read)")
	}

	e := room.Enemy
	switch {
	case e == nil || e.Defeated:
		lines = append(lines, "No active signatures.")
	case room.Dark:
		// The visor logs the contact even when your eyes can't find it.
		e.Scanned = true
		lines = append(lines, "One signature, reading cold. The sweep logs it.")
	default:
		e.Scanned = true
		lines = append(lines, renderEnemy(room)...)
	}

	return lines, nil, nil
}
