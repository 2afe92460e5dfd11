package game

import (
	"testing"

	"github.com/pixil98/go-testutil"
	"pgregory.net/rapid"
)

func TestEnemyPhase(t *testing.T) {
	tests := map[string]struct {
		hp       int
		maxHP    int
		boss     bool
		expPhase int
	}{
		"full health boss":       {hp: 42, maxHP: 42, boss: true, expPhase: 1},
		"just above two thirds":  {hp: 29, maxHP: 42, boss: true, expPhase: 1},
		"at two thirds":          {hp: 28, maxHP: 42, boss: true, expPhase: 2},
		"just above one third":   {hp: 15, maxHP: 42, boss: true, expPhase: 2},
		"at one third":           {hp: 14, maxHP: 42, boss: true, expPhase: 3},
		"near death":             {hp: 1, maxHP: 42, boss: true, expPhase: 3},
		"non-boss ignores hp":    {hp: 1, maxHP: 42, boss: false, expPhase: 1},
		"zero max hp stays sane": {hp: 0, maxHP: 0, boss: true, expPhase: 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := &Enemy{Name: "test", HP: tt.hp, MaxHP: tt.maxHP, Boss: tt.boss}
			testutil.AssertEqual(t, "phase", e.Phase(), tt.expPhase)
		})
	}
}

func TestAttacksPerRound(t *testing.T) {
	boss := &Enemy{Name: "boss", HP: 10, MaxHP: 42, Boss: true}
	testutil.AssertEqual(t, "boss phase 3 strikes twice", boss.AttacksPerRound(), 2)

	boss.HP = 40
	testutil.AssertEqual(t, "boss phase 1 strikes once", boss.AttacksPerRound(), 1)

	grunt := &Enemy{Name: "grunt", HP: 1, MaxHP: 10}
	testutil.AssertEqual(t, "non-boss strikes once", grunt.AttacksPerRound(), 1)
}

func TestApplyDamage(t *testing.T) {
	e := &Enemy{Name: "test", HP: 10, MaxHP: 10}

	if e.ApplyDamage(4) {
		t.Fatal("expected survivor, got defeat")
	}
	testutil.AssertEqual(t, "hp after hit", e.HP, 6)

	if !e.ApplyDamage(9) {
		t.Fatal("expected defeat transition")
	}
	testutil.AssertEqual(t, "hp floored", e.HP, 0)
	testutil.AssertEqual(t, "defeated latched", e.Defeated, true)

	// Defeat only transitions once.
	if e.ApplyDamage(5) {
		t.Error("expected no second defeat transition")
	}
	if e.Alive() {
		t.Error("defeated enemy must not be alive")
	}
}

func TestLowerHP(t *testing.T) {
	tests := map[string]struct {
		hp         int
		report     int
		expChanged bool
		expHP      int
		expDead    bool
	}{
		"lower wins":           {hp: 10, report: 6, expChanged: true, expHP: 6},
		"higher ignored":       {hp: 6, report: 10, expChanged: false, expHP: 6},
		"equal ignored":        {hp: 6, report: 6, expChanged: false, expHP: 6},
		"zero defeats":         {hp: 6, report: 0, expChanged: true, expHP: 0, expDead: true},
		"negative clamps to 0": {hp: 6, report: -4, expChanged: true, expHP: 0, expDead: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := &Enemy{Name: "test", HP: tt.hp, MaxHP: 10}
			testutil.AssertEqual(t, "changed", e.LowerHP(tt.report), tt.expChanged)
			testutil.AssertEqual(t, "hp", e.HP, tt.expHP)
			testutil.AssertEqual(t, "defeated", e.Defeated, tt.expDead)
		})
	}
}

// Applying the same set of peer reports in any order converges on the same
// HP, and re-applying any of them changes nothing. The sync layer depends
// on both properties.
func TestLowerHPConverges(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		reports := rapid.SliceOfN(rapid.IntRange(0, 20), 1, 10).Draw(t, "reports")

		apply := func(order []int) int {
			e := &Enemy{Name: "test", HP: 20, MaxHP: 20}
			for _, hp := range order {
				e.LowerHP(hp)
			}
			return e.HP
		}

		forward := apply(reports)

		reversed := make([]int, len(reports))
		for i, hp := range reports {
			reversed[len(reports)-1-i] = hp
		}
		if got := apply(reversed); got != forward {
			t.Fatalf("order dependent: forward %d, reversed %d", forward, got)
		}

		// Idempotence: re-applying the whole set again is a no-op.
		doubled := append(append([]int{}, reports...), reports...)
		if got := apply(doubled); got != forward {
			t.Fatalf("not idempotent: once %d, twice %d", forward, got)
		}
	})
}
