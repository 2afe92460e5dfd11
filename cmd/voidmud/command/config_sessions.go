package command

import (
	"fmt"
	"os"

	"github.com/clawedcode/voidmud/internal/game"
	"github.com/clawedcode/voidmud/internal/player"
	"github.com/clawedcode/voidmud/internal/presence"
	"github.com/pixil98/go-errors"
)

type SessionConfig struct {
	StartRoom string `json:"start_room"`
	SaveDir   string `json:"save_dir"`
}

func (c *SessionConfig) validate() error {
	el := errors.NewErrorList()

	if c.StartRoom == "" {
		el.Add(fmt.Errorf("start_room is required"))
	}
	if c.SaveDir == "" {
		el.Add(fmt.Errorf("save_dir is required"))
	}

	return el.Err()
}

func (c *SessionConfig) BuildSessionManager(build game.WorldBuilder, transport presence.Transport) (*player.SessionManager, error) {
	if err := os.MkdirAll(c.SaveDir, 0755); err != nil {
		return nil, fmt.Errorf("creating save directory %q: %w", c.SaveDir, err)
	}

	return player.NewSessionManager(build, c.StartRoom, c.SaveDir, transport), nil
}
