package game

import (
	"fmt"
	"sort"

	"github.com/clawedcode/voidmud/internal/storage"
)

// ErrUnknownRoom indicates a reference to a room key that doesn't exist.
// The player's location is always expected to be valid, so callers treat
// this as a content-authoring bug, not a recoverable condition.
type ErrUnknownRoom struct {
	Key string
}

func (e *ErrUnknownRoom) Error() string {
	return fmt.Sprintf("unknown room %q", e.Key)
}

// World owns the room graph and its mutable per-room contents, plus the
// discovery set. It has no behavior beyond data access; the command layer
// decides what mutations mean.
type World struct {
	rooms      map[string]*Room
	items      storage.Storer[*Item]
	lore       storage.Storer[*Lore]
	discovered map[string]bool

	bossSeenDefeated bool
}

// NewWorld instantiates mutable room state from the static content stores.
// Room specs are deep-copied so the stores stay pristine and a reset can
// rebuild the world from scratch. Exit targets are cross-checked here since
// individual assets can't see their siblings.
func NewWorld(rooms storage.Storer[*Room], items storage.Storer[*Item], lore storage.Storer[*Lore]) (*World, error) {
	w := &World{
		rooms:      make(map[string]*Room),
		items:      items,
		lore:       lore,
		discovered: make(map[string]bool),
	}

	for key, room := range rooms.GetAll() {
		w.rooms[key] = room.clone()
	}

	for key, room := range w.rooms {
		for dir, exit := range room.Exits {
			if _, ok := w.rooms[exit.Room]; !ok {
				return nil, fmt.Errorf("room %q: exit %s references unknown room %q", key, dir, exit.Room)
			}
		}
		for _, id := range room.Items {
			if items.Get(id) == nil {
				return nil, fmt.Errorf("room %q: unknown item %q", key, id)
			}
		}
		if room.Readable != "" && lore.Get(room.Readable) == nil {
			return nil, fmt.Errorf("room %q: unknown lore %q", key, room.Readable)
		}
	}

	return w, nil
}

// GetRoom returns the room for key or an *ErrUnknownRoom.
func (w *World) GetRoom(key string) (*Room, error) {
	room, ok := w.rooms[key]
	if !ok {
		return nil, &ErrUnknownRoom{Key: key}
	}
	return room, nil
}

// Rooms returns the live room map. Callers must not add or delete entries.
func (w *World) Rooms() map[string]*Room {
	return w.rooms
}

// RemoveItem removes one occurrence of itemId from roomKey's floor.
// Returns false if the room or item is absent; never errors, since losing
// the race for an item is normal in multiplayer.
func (w *World) RemoveItem(roomKey, itemId string) bool {
	room, ok := w.rooms[roomKey]
	if !ok {
		return false
	}
	return room.RemoveItem(itemId)
}

// SetEnemy replaces the room's enemy slot.
func (w *World) SetEnemy(roomKey string, e *Enemy) error {
	room, err := w.GetRoom(roomKey)
	if err != nil {
		return err
	}
	room.Enemy = e
	return nil
}

// Item looks up static item data; nil for unknown ids.
func (w *World) Item(id string) *Item {
	return w.items.Get(id)
}

// Lore looks up a readable entry; nil for unknown ids.
func (w *World) Lore(id string) *Lore {
	return w.lore.Get(id)
}

// FinalBossDefeated reports whether the designated final boss has been put
// down. Absent entirely (cleared by a peer's sync) also counts as defeated
// once the enemy's room has lost it; a boss that never spawned does not.
func (w *World) FinalBossDefeated() bool {
	for _, room := range w.rooms {
		if room.Enemy != nil && room.Enemy.Name == FinalBossName {
			return room.Enemy.Defeated
		}
	}
	return w.bossSeenDefeated
}

// MarkFinalBossDefeated latches boss defeat for the case where the enemy
// record itself was cleared by a peer sync.
func (w *World) MarkFinalBossDefeated() {
	w.bossSeenDefeated = true
}

// Discover marks a room as physically entered. The set only ever grows;
// it is cleared solely by building a fresh world.
func (w *World) Discover(key string) {
	w.discovered[key] = true
}

// IsDiscovered reports whether the player has entered the room this game.
func (w *World) IsDiscovered(key string) bool {
	return w.discovered[key]
}

// Discovered returns the discovery set as a sorted slice for persistence.
func (w *World) Discovered() []string {
	keys := make([]string, 0, len(w.discovered))
	for k := range w.discovered {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
