package combat

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

// fixedDice always rolls the same value (clamped into range).
type fixedDice struct{ roll int }

func (d fixedDice) IntN(n int) int {
	if d.roll >= n {
		return n - 1
	}
	return d.roll
}

func TestAttackDamage(t *testing.T) {
	tests := map[string]struct {
		roll         int
		weapon       string
		surge        bool
		wardenStrike bool
		expDamage    int
	}{
		"baton low roll":        {roll: 0, weapon: "shock baton", expDamage: 5},
		"baton high roll":       {roll: 3, weapon: "shock baton", expDamage: 8},
		"arc cutter":            {roll: 1, weapon: "arc cutter", expDamage: 8},
		"singularity lance":     {roll: 2, weapon: "singularity lance", expDamage: 11},
		"unknown weapon":        {roll: 0, weapon: "", expDamage: 4},
		"surge adds four":       {roll: 0, weapon: "shock baton", surge: true, expDamage: 9},
		"warden strike":         {roll: 0, weapon: "shock baton", wardenStrike: true, expDamage: 13},
		"surge and warden":      {roll: 3, weapon: "singularity lance", surge: true, wardenStrike: true, expDamage: 24},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := AttackDamage(fixedDice{tt.roll}, tt.weapon, tt.surge, tt.wardenStrike)
			testutil.AssertEqual(t, "damage", got, tt.expDamage)
		})
	}
}

func TestAttackDamageRange(t *testing.T) {
	// Exhaust every roll: results stay within the documented bounds.
	for roll := 0; roll < 4; roll++ {
		got := AttackDamage(fixedDice{roll}, "shock baton", false, false)
		if got < 5 || got > 8 {
			t.Errorf("roll %d: damage %d outside [5, 8]", roll, got)
		}
	}
}

func TestCounterDamage(t *testing.T) {
	tests := map[string]struct {
		roll      int
		attack    int
		expDamage int
	}{
		"zero roll floors at one": {roll: 0, attack: 5, expDamage: 1},
		"mid roll":                {roll: 3, attack: 5, expDamage: 3},
		"max roll":                {roll: 5, attack: 5, expDamage: 5},
		"zero attack":             {roll: 0, attack: 0, expDamage: 1},
		"negative attack":         {roll: 0, attack: -3, expDamage: 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := CounterDamage(fixedDice{tt.roll}, tt.attack)
			testutil.AssertEqual(t, "damage", got, tt.expDamage)
		})
	}
}

func TestDamageVerb(t *testing.T) {
	tests := map[string]struct {
		damage  int
		expVerb string
	}{
		"graze":      {damage: 2, expVerb: "grazes"},
		"strike":     {damage: 5, expVerb: "strikes"},
		"slam":       {damage: 8, expVerb: "slams"},
		"tear":       {damage: 11, expVerb: "tears into"},
		"rupture":    {damage: 15, expVerb: "ruptures"},
		"obliterate": {damage: 25, expVerb: "obliterates"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "verb", DamageVerb(tt.damage), tt.expVerb)
		})
	}
}
