package game

import (
	"testing"

	"github.com/pixil98/go-testutil"
	"pgregory.net/rapid"
)

func TestNewPlayerDefaults(t *testing.T) {
	p := NewPlayer("docking-bay")

	testutil.AssertEqual(t, "location", p.Location, "docking-bay")
	testutil.AssertEqual(t, "hp", p.HP, DefaultMaxHP)
	testutil.AssertEqual(t, "max hp", p.MaxHP, DefaultMaxHP)
	testutil.AssertEqual(t, "energy", p.Energy, DefaultEnergy)
	testutil.AssertEqual(t, "shield", p.Shield, 0)
	testutil.AssertEqual(t, "weapon", p.Weapon, DefaultWeapon)
}

func TestPlayerClamps(t *testing.T) {
	tests := map[string]struct {
		apply     func(p *Player) (int, int)
		expBefore int
		expAfter  int
	}{
		"heal clamps at max hp": {
			apply: func(p *Player) (int, int) {
				p.HP = 15
				return p.Heal(100)
			},
			expBefore: 15,
			expAfter:  DefaultMaxHP,
		},
		"heal from low": {
			apply: func(p *Player) (int, int) {
				p.HP = 4
				return p.Heal(6)
			},
			expBefore: 4,
			expAfter:  10,
		},
		"energy clamps at cap": {
			apply: func(p *Player) (int, int) {
				return p.RestoreEnergy(100)
			},
			expBefore: DefaultEnergy,
			expAfter:  MaxEnergy,
		},
		"shield clamps at cap": {
			apply: func(p *Player) (int, int) {
				p.Shield = 5
				return p.RestoreShield(4)
			},
			expBefore: 5,
			expAfter:  MaxShield,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p := NewPlayer("start")
			before, after := tt.apply(p)
			testutil.AssertEqual(t, "before", before, tt.expBefore)
			testutil.AssertEqual(t, "after", after, tt.expAfter)
		})
	}
}

func TestSpendEnergy(t *testing.T) {
	p := NewPlayer("start")
	p.Energy = 3

	if !p.SpendEnergy(3) {
		t.Fatal("expected spend to succeed")
	}
	testutil.AssertEqual(t, "energy after spend", p.Energy, 0)

	if p.SpendEnergy(1) {
		t.Fatal("expected spend to fail on empty")
	}
	testutil.AssertEqual(t, "energy unchanged on failure", p.Energy, 0)
}

func TestDamageShieldFirst(t *testing.T) {
	tests := map[string]struct {
		shield      int
		hp          int
		amount      int
		expShielded int
		expHurt     int
		expHP       int
	}{
		"shield absorbs all":   {shield: 5, hp: 10, amount: 4, expShielded: 4, expHurt: 0, expHP: 10},
		"shield absorbs part":  {shield: 2, hp: 10, amount: 7, expShielded: 2, expHurt: 5, expHP: 5},
		"no shield":            {shield: 0, hp: 10, amount: 3, expShielded: 0, expHurt: 3, expHP: 7},
		"hp floors at zero":    {shield: 0, hp: 2, amount: 9, expShielded: 0, expHurt: 9, expHP: 0},
		"exact shield deplete": {shield: 3, hp: 10, amount: 3, expShielded: 3, expHurt: 0, expHP: 10},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p := NewPlayer("start")
			p.Shield = tt.shield
			p.HP = tt.hp

			shielded, hurt := p.Damage(tt.amount)

			testutil.AssertEqual(t, "shielded", shielded, tt.expShielded)
			testutil.AssertEqual(t, "hurt", hurt, tt.expHurt)
			testutil.AssertEqual(t, "hp", p.HP, tt.expHP)
			testutil.AssertEqual(t, "shield", p.Shield, tt.shield-tt.expShielded)
		})
	}
}

func TestInventory(t *testing.T) {
	p := NewPlayer("start")

	p.AddItem("stim-pack", 1)
	p.AddItem("stim-pack", 2)
	testutil.AssertEqual(t, "merged stack", p.Count("stim-pack"), 3)
	testutil.AssertEqual(t, "stack count", len(p.Inventory), 1)

	if p.RemoveItem("stim-pack", 4) {
		t.Fatal("expected removal beyond quantity to fail")
	}
	testutil.AssertEqual(t, "unchanged after failed remove", p.Count("stim-pack"), 3)

	if !p.RemoveItem("stim-pack", 3) {
		t.Fatal("expected removal to succeed")
	}
	testutil.AssertEqual(t, "emptied stack deleted", len(p.Inventory), 0)
	if p.Has("stim-pack") {
		t.Error("expected item gone")
	}
}

// Inventory quantities are conserved by add/remove: no operation sequence
// can create negative counts or phantom stacks.
func TestInventoryConservation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := NewPlayer("start")
		ids := []string{"a", "b", "c"}
		counts := map[string]int{}

		ops := rapid.IntRange(1, 50).Draw(t, "ops")
		for i := 0; i < ops; i++ {
			id := rapid.SampledFrom(ids).Draw(t, "id")
			qty := rapid.IntRange(1, 5).Draw(t, "qty")
			if rapid.Bool().Draw(t, "add") {
				p.AddItem(id, qty)
				counts[id] += qty
			} else if p.RemoveItem(id, qty) {
				counts[id] -= qty
			}
		}

		for _, id := range ids {
			if p.Count(id) != counts[id] {
				t.Fatalf("count mismatch for %s: got %d, want %d", id, p.Count(id), counts[id])
			}
		}
		for _, s := range p.Inventory {
			if s.Qty <= 0 {
				t.Fatalf("retained stack with non-positive qty: %+v", s)
			}
		}
	})
}
