package game

// FinalBossName designates the unique enemy whose defeat wins the game.
const FinalBossName = "Null Warden"

// Enemy is the single hostile occupant of a room. It is embedded in room
// state rather than tracked as an independent entity; a room holds at most
// one and a defeated enemy is kept around (HP pinned at 0) for display.
type Enemy struct {
	Name      string `json:"name"`
	HP        int    `json:"hp"`
	MaxHP     int    `json:"max_hp"`
	Attack    int    `json:"attack"`
	Loot      string `json:"loot,omitempty"`
	Boss      bool   `json:"boss,omitempty"`
	FearLight bool   `json:"fear_light,omitempty"`
	Scanned   bool   `json:"scanned,omitempty"`
	Defeated  bool   `json:"defeated,omitempty"`
}

// Phase returns the boss phase (1-3) as a pure function of current HP.
// Recomputing on every read keeps phases converged across peers no matter
// whether damage arrived locally or through an enemy-sync message.
func (e *Enemy) Phase() int {
	if !e.Boss || e.MaxHP <= 0 {
		return 1
	}
	switch {
	case e.HP*3 <= e.MaxHP:
		return 3
	case e.HP*3 <= e.MaxHP*2:
		return 2
	default:
		return 1
	}
}

// AttacksPerRound is 1 except for bosses in their final phase.
func (e *Enemy) AttacksPerRound() int {
	if e.Boss && e.Phase() == 3 {
		return 2
	}
	return 1
}

// Alive reports whether the enemy can still act or be fought.
func (e *Enemy) Alive() bool {
	return e != nil && !e.Defeated && e.HP > 0
}

// ApplyDamage lowers HP, floored at zero, and latches the defeated flag once
// it gets there. Returns true on the transition to defeated.
func (e *Enemy) ApplyDamage(dmg int) bool {
	if e.Defeated {
		return false
	}
	e.HP -= dmg
	if e.HP <= 0 {
		e.HP = 0
		e.Defeated = true
		return true
	}
	return false
}

// LowerHP adopts a peer-reported HP value if it is lower than ours. Sync can
// only ever make an enemy more damaged, never heal it.
func (e *Enemy) LowerHP(hp int) bool {
	if hp < 0 {
		hp = 0
	}
	if hp >= e.HP {
		return false
	}
	e.HP = hp
	if e.HP == 0 {
		e.Defeated = true
	}
	return true
}

func (e *Enemy) clone() *Enemy {
	if e == nil {
		return nil
	}
	c := *e
	return &c
}
