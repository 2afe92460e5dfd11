package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Lore is a readable terminal entry referenced by rooms. Purely
// informational; reading is idempotent.
type Lore struct {
	Title string   `json:"title"`
	Body  []string `json:"body"`
}

// Validate satisfies storage.ValidatingSpec.
func (l *Lore) Validate() error {
	el := errors.NewErrorList()

	if l.Title == "" {
		el.Add(fmt.Errorf("lore title is required"))
	}
	if len(l.Body) == 0 {
		el.Add(fmt.Errorf("lore body is required"))
	}

	return el.Err()
}

// LevelName labels a vertical level for scan output.
func LevelName(z int) string {
	switch {
	case z < 0:
		return "Core Sink"
	case z == 0:
		return "Arrival Tier"
	default:
		return "Habitat Ring"
	}
}
