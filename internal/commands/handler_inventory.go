package commands

import (
	"fmt"

	"github.com/clawedcode/voidmud/internal/combat"
	"github.com/clawedcode/voidmud/internal/game"
)

func (h *Handler) inventory(s *game.Session, _ []string) ([]string, *Action, error) {
	if len(s.Player.Inventory) == 0 {
		return []string{"Your pack is empty."}, nil, nil
	}

	lines := []string{"You are carrying:"}
	for _, stack := range s.Player.Inventory {
		name := itemName(s, stack.Id)
		if item := s.World.Item(stack.Id); item != nil && item.Icon != "" {
			name = item.Icon + " " + name
		}
		if stack.Qty > 1 {
			lines = append(lines, fmt.Sprintf("  %s x%d", name, stack.Qty))
		} else {
			lines = append(lines, "  "+name)
		}
	}
	return lines, nil, nil
}

func (h *Handler) stats(s *game.Session, _ []string) ([]string, *Action, error) {
	p := s.Player
	lines := []string{
		fmt.Sprintf("HP     %d/%d", p.HP, p.MaxHP),
		fmt.Sprintf("Energy %d/%d", p.Energy, game.MaxEnergy),
		fmt.Sprintf("Shield %d/%d", p.Shield, game.MaxShield),
		fmt.Sprintf("Weapon %s (+%d)", p.Weapon, combat.WeaponMod(p.Weapon)),
	}
	if p.AbilityCharge == game.ChargeSurge {
		lines = append(lines, "Surge charge held.")
	}
	if p.Evading {
		lines = append(lines, "Evade stance held.")
	}
	return lines, nil, nil
}
