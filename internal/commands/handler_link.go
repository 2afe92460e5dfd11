package commands

import (
	"strings"

	"github.com/clawedcode/voidmud/internal/game"
)

// link, say, and who all resolve in the presence layer; the engine only
// validates the input and emits the action.
func (h *Handler) link(s *game.Session, args []string) ([]string, *Action, error) {
	if len(args) != 1 {
		return nil, nil, NewUserError("Usage: link <code>")
	}
	return nil, &Action{Kind: ActionLink, Arg: args[0]}, nil
}

func (h *Handler) say(s *game.Session, args []string) ([]string, *Action, error) {
	if len(args) == 0 {
		return nil, nil, NewUserError("Say what?")
	}
	return nil, &Action{Kind: ActionSay, Arg: strings.Join(args, " ")}, nil
}

func (h *Handler) who(s *game.Session, _ []string) ([]string, *Action, error) {
	return nil, &Action{Kind: ActionWho}, nil
}
