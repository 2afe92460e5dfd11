package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Item categories.
const (
	CategoryConsumable = "consumable"
	CategoryTool       = "tool"
	CategoryEquipment  = "equipment"
	CategoryQuest      = "quest"
)

// EffectKind enumerates what using an item does. Every kind is handled by a
// single exhaustive dispatcher in the command layer; content files can never
// smuggle in behavior that isn't listed here.
type EffectKind string

const (
	EffectHeal          EffectKind = "heal"
	EffectRestoreEnergy EffectKind = "restore_energy"
	EffectRestoreShield EffectKind = "restore_shield"
	EffectEquipWeapon   EffectKind = "equip_weapon"
	EffectBanishLight   EffectKind = "banish_light" // light source; drives off light-fearing enemies
	EffectUnlockMap     EffectKind = "unlock_map"
	EffectNarrative     EffectKind = "narrative"
)

// Effect is a tagged descriptor for an item's use behavior. Only the fields
// relevant to Kind are set.
type Effect struct {
	Kind   EffectKind `json:"kind"`
	Amount int        `json:"amount,omitempty"`
	Weapon string     `json:"weapon,omitempty"`
	Text   string     `json:"text,omitempty"`
}

// Item is static catalog data. Items are referenced everywhere by id; display
// names are only used for fuzzy matching of player input.
type Item struct {
	Name     string `json:"name"`
	Icon     string `json:"icon,omitempty"`
	Category string `json:"category"`
	Effect   Effect `json:"effect"`
	Flavor   string `json:"flavor,omitempty"`
}

// Consumed reports whether using the item removes it from the inventory.
// Weapons persist as the equipped weapon; quest items and tools stay until a
// special branch (e.g. the warden strike) consumes them explicitly.
func (i *Item) Consumed() bool {
	switch i.Effect.Kind {
	case EffectHeal, EffectRestoreEnergy, EffectRestoreShield, EffectBanishLight:
		return true
	default:
		return false
	}
}

// Validate satisfies storage.ValidatingSpec.
func (i *Item) Validate() error {
	el := errors.NewErrorList()

	if i.Name == "" {
		el.Add(fmt.Errorf("item name is required"))
	}

	switch i.Category {
	case CategoryConsumable, CategoryTool, CategoryEquipment, CategoryQuest:
	case "":
		el.Add(fmt.Errorf("category is required"))
	default:
		el.Add(fmt.Errorf("unknown category %q", i.Category))
	}

	switch i.Effect.Kind {
	case EffectHeal, EffectRestoreEnergy, EffectRestoreShield:
		if i.Effect.Amount <= 0 {
			el.Add(fmt.Errorf("effect %s requires a positive amount", i.Effect.Kind))
		}
	case EffectEquipWeapon:
		if i.Effect.Weapon == "" {
			el.Add(fmt.Errorf("effect %s requires a weapon name", i.Effect.Kind))
		}
	case EffectBanishLight, EffectUnlockMap, EffectNarrative:
	case "":
		el.Add(fmt.Errorf("effect kind is required"))
	default:
		el.Add(fmt.Errorf("unknown effect kind %q", i.Effect.Kind))
	}

	return el.Err()
}
