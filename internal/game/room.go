package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Exit defines a destination for movement from a room. An exit with a
// Requires item id is locked until the player carries that item.
type Exit struct {
	Room     string `json:"room"`
	Requires string `json:"requires,omitempty"`
}

// Locked reports whether passage needs a key item.
func (e Exit) Locked() bool {
	return e.Requires != ""
}

// Room is a location in the station. The static fields (name, descriptions,
// exits, coordinates) come from content assets and are never persisted; the
// mutable fields (Items, Dark, Enemy) change in place for the life of a
// session and are the only part a snapshot carries.
type Room struct {
	Name        string `json:"name"`
	Abbrev      string `json:"abbrev,omitempty"` // map glyph
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Z           int    `json:"z"` // vertical level
	Description string `json:"description"`
	LitDesc     string `json:"lit_description,omitempty"` // shown once a dark room is lit
	Dark        bool   `json:"dark,omitempty"`
	IsExit      bool   `json:"is_exit,omitempty"` // the escape dock

	Exits    map[string]Exit `json:"exits"`
	Items    []string        `json:"items,omitempty"`
	Enemy    *Enemy          `json:"enemy,omitempty"`
	Readable string          `json:"readable,omitempty"` // lore id
}

// Describe returns the description appropriate to the room's current state.
func (r *Room) Describe() string {
	if !r.Dark && r.LitDesc != "" {
		return r.LitDesc
	}
	return r.Description
}

// RemoveItem removes one occurrence of itemId from the floor. It fails
// silently because "someone else already took it" is an expected race in
// multiplayer, not an error.
func (r *Room) RemoveItem(itemId string) bool {
	for i, id := range r.Items {
		if id == itemId {
			r.Items = append(r.Items[:i], r.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Validate satisfies storage.ValidatingSpec. Exit targets are checked against
// the full room set in a second pass by NewWorld, since a single asset can't
// see its siblings.
func (r *Room) Validate() error {
	el := errors.NewErrorList()

	if r.Name == "" {
		el.Add(fmt.Errorf("room name is required"))
	}
	if r.Description == "" {
		el.Add(fmt.Errorf("description is required"))
	}

	for dir, exit := range r.Exits {
		if !validDirection(dir) {
			el.Add(fmt.Errorf("exit %q: unknown direction", dir))
		}
		if exit.Room == "" {
			el.Add(fmt.Errorf("exit %s: room is required", dir))
		}
	}

	if r.Enemy != nil {
		if r.Enemy.Name == "" {
			el.Add(fmt.Errorf("enemy name is required"))
		}
		if r.Enemy.HP <= 0 && !r.Enemy.Defeated {
			el.Add(fmt.Errorf("enemy %q: hp must be positive", r.Enemy.Name))
		}
		if r.Enemy.Attack < 0 {
			el.Add(fmt.Errorf("enemy %q: attack cannot be negative", r.Enemy.Name))
		}
	}

	return el.Err()
}

func (r *Room) clone() *Room {
	c := *r
	c.Items = append([]string(nil), r.Items...)
	c.Enemy = r.Enemy.clone()
	exits := make(map[string]Exit, len(r.Exits))
	for dir, e := range r.Exits {
		exits[dir] = e
	}
	c.Exits = exits
	return &c
}

// Directions players can move. Single letter synonyms are resolved by the
// command layer before they get here.
var directions = []string{"north", "south", "east", "west", "up", "down"}

func validDirection(dir string) bool {
	for _, d := range directions {
		if d == dir {
			return true
		}
	}
	return false
}
