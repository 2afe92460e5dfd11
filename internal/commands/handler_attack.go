package commands

import (
	"fmt"
	"time"

	"github.com/clawedcode/voidmud/internal/combat"
	"github.com/clawedcode/voidmud/internal/game"
)

// WardenKeyItem is the quest item consumed for the one-time +8 strike
// against the final boss.
const WardenKeyItem = "warden-key"

const victoryEchoDelay = 4 * time.Second

// attack resolves one combat round: player strike, boss phase checks,
// defeat handling, then the enemy's counterattack. A target argument is
// accepted but ignored - rooms hold at most one enemy.
func (h *Handler) attack(s *game.Session, _ []string) ([]string, *Action, error) {
	room, err := currentRoom(s)
	if err != nil {
		return nil, nil, err
	}

	enemy := room.Enemy
	if !enemy.Alive() {
		return nil, nil, NewUserError("There is nothing to attack here.")
	}

	if enemy.FearLight {
		return h.attackFearLight(s, enemy)
	}

	if room.Dark {
		return nil, nil, NewUserError("You cannot fight what you cannot see.")
	}

	var lines []string

	surge := s.Player.AbilityCharge == game.ChargeSurge
	if surge {
		s.Player.AbilityCharge = ""
		lines = append(lines, "Surge capacitors discharge into your arm.")
	}

	wardenStrike := enemy.Name == game.FinalBossName && s.Player.Has(WardenKeyItem)
	if wardenStrike {
		s.Player.RemoveItem(WardenKeyItem, 1)
		lines = append(lines, "The warden key splinters, venting its stolen authority into your strike.")
	}

	dmg := combat.AttackDamage(h.dice, s.Player.Weapon, surge, wardenStrike)
	prevPhase := enemy.Phase()
	defeated := enemy.ApplyDamage(dmg)

	lines = append(lines, fmt.Sprintf("Your %s %s the %s for %d.",
		s.Player.Weapon, combat.DamageVerb(dmg), enemy.Name, dmg))

	h.notifyEnemy(s.Player.Location, enemy)

	if defeated {
		return append(lines, h.enemyDefeated(s, enemy)...), nil, nil
	}

	if enemy.Boss && enemy.Phase() > prevPhase {
		lines = append(lines, bossPhaseLine(enemy.Phase()))
	}

	lines = append(lines, h.counterattack(s, enemy)...)
	return lines, nil, nil
}

// attackFearLight: the crawler cannot be harmed by anything physical, and
// every attempt costs the attacker. Shields don't help; it doesn't strike
// the body, it strikes the mind.
func (h *Handler) attackFearLight(s *game.Session, enemy *game.Enemy) ([]string, *Action, error) {
	dmg := combat.CounterDamage(h.dice, enemy.Attack)
	s.Player.HP = max(s.Player.HP-dmg, 0)

	lines := []string{
		fmt.Sprintf("Your %s passes through the %s like smoke. It does not care.", s.Player.Weapon, enemy.Name),
		fmt.Sprintf("Something cold closes around your thoughts. %d damage.", dmg),
		"It fears only light.",
	}

	if s.Player.HP == 0 {
		lines = append(lines, h.gameOver(s)...)
	}
	return lines, nil, nil
}

func (h *Handler) enemyDefeated(s *game.Session, enemy *game.Enemy) []string {
	if enemy.Name == game.FinalBossName {
		s.Status = game.StatusVictory
		s.World.MarkFinalBossDefeated()
		s.AfterDelay(victoryEchoDelay, "Far below, the pod bay clamps release with a sound like a held breath let go.")
		return []string{
			fmt.Sprintf("The %s collapses into itself, screaming in frequencies that were never sound.", enemy.Name),
			"The station lights flicker from red to white, deck by deck.",
			"It is over. Find the escape dock.",
		}
	}

	lines := []string{fmt.Sprintf("The %s collapses.", enemy.Name)}
	if enemy.Loot != "" {
		s.Player.AddItem(enemy.Loot, 1)
		lines = append(lines, fmt.Sprintf("It drops: %s.", itemName(s, enemy.Loot)))
		if item := s.World.Item(enemy.Loot); item != nil && item.Effect.Kind == game.EffectUnlockMap && !s.MapUnlocked {
			s.MapUnlocked = true
			lines = append(lines, "Deck schematics resolve across your visor. (map)")
		}
	}
	return lines
}

// counterattack rolls the enemy's response. A pending evade negates every
// strike this round, double-attacks included.
func (h *Handler) counterattack(s *game.Session, enemy *game.Enemy) []string {
	if s.Player.Evading {
		s.Player.Evading = false
		return []string{"You slip sideways through its attack. Nothing touches you."}
	}

	var lines []string
	strikes := enemy.AttacksPerRound()
	for i := 0; i < strikes; i++ {
		dmg := combat.CounterDamage(h.dice, enemy.Attack)
		shielded, hurt := s.Player.Damage(dmg)
		switch {
		case hurt == 0:
			lines = append(lines, fmt.Sprintf("The %s strikes back. Your shield takes all %d.", enemy.Name, shielded))
		case shielded > 0:
			lines = append(lines, fmt.Sprintf("The %s strikes back for %d. Shield absorbs %d; you take %d.", enemy.Name, dmg, shielded, hurt))
		default:
			lines = append(lines, fmt.Sprintf("The %s strikes back for %d.", enemy.Name, dmg))
		}
		if s.Player.HP == 0 {
			return append(lines, h.gameOver(s)...)
		}
	}
	return lines
}

func (h *Handler) gameOver(s *game.Session) []string {
	s.Status = game.StatusGameOver
	return []string{
		"Your vision tunnels. The deck rushes up to meet you.",
		"GAME OVER. (Type 'reset' to begin again.)",
	}
}

func bossPhaseLine(phase int) string {
	if phase >= 3 {
		return "The Warden splits its silhouette in two. Both halves are looking at you."
	}
	return "The Warden staggers, then reknits itself tighter. Its movements sharpen."
}
