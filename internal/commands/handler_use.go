package commands

import (
	"fmt"
	"strings"

	"github.com/clawedcode/voidmud/internal/display"
	"github.com/clawedcode/voidmud/internal/game"
)

// use dispatches an inventory item's tagged effect. One exhaustive switch
// handles every effect kind; content can never execute anything that isn't
// enumerated here.
func (h *Handler) use(s *game.Session, args []string) ([]string, *Action, error) {
	if len(args) == 0 {
		return nil, nil, NewUserError("Use what?")
	}

	cands := make([]candidate, 0, len(s.Player.Inventory))
	for _, stack := range s.Player.Inventory {
		cands = append(cands, candidate{id: stack.Id, name: itemName(s, stack.Id)})
	}

	id, ok := matchCandidate(cands, strings.Join(args, " "))
	if !ok {
		return nil, nil, NewUserError("You don't carry anything like that.")
	}

	item := s.World.Item(id)
	if item == nil {
		// Stale id from an old save; drop it quietly.
		s.Player.RemoveItem(id, 1)
		return nil, nil, NewUserError("It crumbles to static in your hands.")
	}

	var lines []string
	switch item.Effect.Kind {
	case game.EffectHeal:
		before, after := s.Player.Heal(item.Effect.Amount)
		lines = append(lines, fmt.Sprintf("The %s knits you back together. HP %d -> %d.", item.Name, before, after))

	case game.EffectRestoreEnergy:
		before, after := s.Player.RestoreEnergy(item.Effect.Amount)
		lines = append(lines, fmt.Sprintf("Charge floods your systems. Energy %d -> %d.", before, after))

	case game.EffectRestoreShield:
		before, after := s.Player.RestoreShield(item.Effect.Amount)
		lines = append(lines, fmt.Sprintf("Your shield lattice rebuilds. Shield %d -> %d.", before, after))

	case game.EffectEquipWeapon:
		s.Player.Weapon = item.Effect.Weapon
		lines = append(lines, fmt.Sprintf("You heft the %s. It hums approvingly.", item.Name))

	case game.EffectBanishLight:
		lines = append(lines, h.useLight(s, item)...)

	case game.EffectUnlockMap:
		if s.MapUnlocked {
			lines = append(lines, "The schematics are already burned into your visor.")
		} else {
			s.MapUnlocked = true
			lines = append(lines, "Deck schematics resolve across your visor. (map)")
		}

	case game.EffectNarrative:
		text := item.Effect.Text
		if text == "" {
			text = item.Flavor
		}
		lines = append(lines, text)

	default:
		return nil, nil, fmt.Errorf("item %q: unhandled effect kind %q", id, item.Effect.Kind)
	}

	if item.Consumed() {
		s.Player.RemoveItem(id, 1)
	}

	return lines, nil, nil
}

// useLight is the light-source branch: in a dark room whose occupant fears
// light, it permanently removes the enemy and lifts the darkness. Anywhere
// else it's a pretty flash - but the flare is spent either way.
func (h *Handler) useLight(s *game.Session, item *game.Item) []string {
	room, err := currentRoom(s)
	if err != nil {
		return []string{"The flare fizzles."}
	}

	if room.Dark && room.Enemy != nil && room.Enemy.FearLight && !room.Enemy.Defeated {
		name := room.Enemy.Name
		room.Enemy = nil
		room.Dark = false
		h.notifyEnemy(s.Player.Location, nil)
		return []string{
			fmt.Sprintf("The %s ignites. White light floods the compartment.", item.Name),
			fmt.Sprintf("The %s shrieks, folds in on itself, and is gone.", name),
			display.Wrap(room.Describe()),
		}
	}

	return []string{fmt.Sprintf("The %s burns bright and brief. Shadows retreat, then return.", item.Name)}
}
