package game

// Stat caps and defaults. Energy and shield are hard-capped; HP is capped at
// the player's own MaxHP.
const (
	MaxEnergy = 14
	MaxShield = 6

	DefaultMaxHP  = 18
	DefaultEnergy = 10
	DefaultWeapon = "shock baton"
)

// Charge names the one-shot ability charge a player can hold.
const ChargeSurge = "surge"

// Stack is one inventory entry. Quantities at or below zero are never
// retained; RemoveItem deletes the stack instead.
type Stack struct {
	Id  string `json:"id"`
	Qty int    `json:"qty"`
}

// Player holds the single local player's mutable stats.
type Player struct {
	Location  string  `json:"location"`
	HP        int     `json:"hp"`
	MaxHP     int     `json:"max_hp"`
	Energy    int     `json:"energy"`
	Shield    int     `json:"shield"`
	Weapon    string  `json:"weapon"`
	Inventory []Stack `json:"inventory"`

	// One-shot flags, consumed by the next attack round.
	AbilityCharge string `json:"ability_charge,omitempty"`
	Evading       bool   `json:"evading,omitempty"`
}

// NewPlayer creates a player with default stats at the given start room.
func NewPlayer(start string) *Player {
	return &Player{
		Location: start,
		HP:       DefaultMaxHP,
		MaxHP:    DefaultMaxHP,
		Energy:   DefaultEnergy,
		Weapon:   DefaultWeapon,
	}
}

// Heal raises HP clamped to MaxHP and returns the before/after values for
// message formatting. Over-healing is a no-op clamp, not a failure.
func (p *Player) Heal(amount int) (before, after int) {
	before = p.HP
	p.HP = min(p.HP+amount, p.MaxHP)
	return before, p.HP
}

// RestoreEnergy raises energy clamped to MaxEnergy.
func (p *Player) RestoreEnergy(amount int) (before, after int) {
	before = p.Energy
	p.Energy = min(p.Energy+amount, MaxEnergy)
	return before, p.Energy
}

// RestoreShield raises shield clamped to MaxShield.
func (p *Player) RestoreShield(amount int) (before, after int) {
	before = p.Shield
	p.Shield = min(p.Shield+amount, MaxShield)
	return before, p.Shield
}

// SpendEnergy deducts cost if available. Returning false without mutating is
// the sole gate abilities check before applying effects.
func (p *Player) SpendEnergy(cost int) bool {
	if p.Energy < cost {
		return false
	}
	p.Energy -= cost
	return true
}

// Damage applies incoming damage, shield first, and floors HP at zero.
// Returns the shield and HP portions actually absorbed.
func (p *Player) Damage(amount int) (shielded, hurt int) {
	shielded = min(p.Shield, amount)
	p.Shield -= shielded
	hurt = amount - shielded
	p.HP = max(p.HP-hurt, 0)
	return shielded, hurt
}

// AddItem merges qty into an existing stack or creates a new one. It always
// succeeds.
func (p *Player) AddItem(id string, qty int) {
	if qty <= 0 {
		return
	}
	for i := range p.Inventory {
		if p.Inventory[i].Id == id {
			p.Inventory[i].Qty += qty
			return
		}
	}
	p.Inventory = append(p.Inventory, Stack{Id: id, Qty: qty})
}

// RemoveItem removes qty of id. It fails without mutating if the stack holds
// fewer than qty; emptied stacks are deleted, never kept at zero.
func (p *Player) RemoveItem(id string, qty int) bool {
	if qty <= 0 {
		return false
	}
	for i := range p.Inventory {
		if p.Inventory[i].Id != id {
			continue
		}
		if p.Inventory[i].Qty < qty {
			return false
		}
		p.Inventory[i].Qty -= qty
		if p.Inventory[i].Qty <= 0 {
			p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
		}
		return true
	}
	return false
}

// Count returns the quantity of id carried.
func (p *Player) Count(id string) int {
	for _, s := range p.Inventory {
		if s.Id == id {
			return s.Qty
		}
	}
	return 0
}

// Has reports whether at least one of id is carried.
func (p *Player) Has(id string) bool {
	return p.Count(id) > 0
}
