package combat

import "math/rand/v2"

// Dice abstracts the random source so resolution is testable. IntN returns
// a value in [0, n).
type Dice interface {
	IntN(n int) int
}

type cryptoLessDice struct{}

func (cryptoLessDice) IntN(n int) int { return rand.IntN(n) }

// DefaultDice rolls with math/rand/v2.
var DefaultDice Dice = cryptoLessDice{}

// Flat bonuses layered onto a player attack roll.
const (
	baseAttackBonus = 3
	minAttackDamage = 2

	SurgeBonus  = 4 // pending surge charge, consumed on use
	WardenBonus = 8 // warden key strike against the final boss
)

// weaponMods is the fixed per-weapon damage modifier table.
var weaponMods = map[string]int{
	"shock baton":       1,
	"arc cutter":        3,
	"singularity lance": 5,
}

// WeaponMod returns the damage modifier for an equipped weapon name.
// Unknown weapons (bare fists, corrupted saves) contribute nothing.
func WeaponMod(weapon string) int {
	return weaponMods[weapon]
}

// AttackDamage rolls a player attack: max(2, rand(1..4) + 3 + weaponMod),
// plus flat surge and warden-strike bonuses when charged.
func AttackDamage(d Dice, weapon string, surge, wardenStrike bool) int {
	dmg := d.IntN(4) + 1 + baseAttackBonus + WeaponMod(weapon)
	if surge {
		dmg += SurgeBonus
	}
	if wardenStrike {
		dmg += WardenBonus
	}
	return max(dmg, minAttackDamage)
}

// CounterDamage rolls one enemy counterattack: max(1, rand(0..attack)).
func CounterDamage(d Dice, attack int) int {
	if attack < 0 {
		attack = 0
	}
	return max(d.IntN(attack+1), 1)
}

var damageVerbs = []struct {
	maxDamage int
	verb      string
}{
	{3, "grazes"},
	{5, "strikes"},
	{8, "slams"},
	{12, "tears into"},
	{17, "ruptures"},
}

// DamageVerb flavors a damage amount for combat output.
func DamageVerb(damage int) string {
	for _, v := range damageVerbs {
		if damage <= v.maxDamage {
			return v.verb
		}
	}
	return "obliterates"
}
