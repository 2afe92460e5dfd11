package commands

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/clawedcode/voidmud/internal/combat"
	"github.com/clawedcode/voidmud/internal/game"
)

// ActionKind enumerates requests the engine cannot resolve itself because
// they touch the presence layer or need a confirmation round-trip from the
// host.
type ActionKind int

const (
	ActionConfirmReset ActionKind = iota + 1
	ActionLink
	ActionSay
	ActionWho
	ActionQuit
)

// Action is a host-intervention request attached to a Result.
type Action struct {
	Kind ActionKind
	Arg  string
}

// Result is the outcome of one command. Handled=false means the verb is
// unknown; everything else resolves to printed lines, never an error.
type Result struct {
	Handled bool
	Output  []string
	Action  *Action
}

// Notifier receives local state changes the presence layer should broadcast
// to peers. Implementations must not call back into the session
// synchronously; they are invoked while the session lock is held.
type Notifier interface {
	Moved(roomKey string)
	EnemyChanged(roomKey string, enemy *game.Enemy)
}

type handlerFunc func(s *game.Session, args []string) ([]string, *Action, error)

// Handler is the command processor: it interprets raw input against a
// session's world and player, one command at a time, to completion.
type Handler struct {
	dice     combat.Dice
	notifier Notifier
	reg      map[string]handlerFunc
}

type HandlerOpt func(*Handler)

// WithDice injects a deterministic roll source for tests.
func WithDice(d combat.Dice) HandlerOpt {
	return func(h *Handler) { h.dice = d }
}

// WithNotifier wires the presence layer's broadcast hooks.
func WithNotifier(n Notifier) HandlerOpt {
	return func(h *Handler) { h.notifier = n }
}

func NewHandler(opts ...HandlerOpt) *Handler {
	h := &Handler{
		dice: combat.DefaultDice,
		reg:  map[string]handlerFunc{},
	}
	for _, opt := range opts {
		opt(h)
	}

	for _, dir := range []string{"north", "south", "east", "west", "up", "down"} {
		d := dir
		h.register(func(s *game.Session, _ []string) ([]string, *Action, error) {
			return h.move(s, d)
		}, dir, dir[:1])
	}

	h.register(h.look, "look", "l")
	h.register(h.take, "take", "get")
	h.register(h.use, "use")
	h.register(h.attack, "attack", "kill", "fight")
	h.register(h.ability, "ability")
	h.register(h.abilityShorthand("surge"), "surge")
	h.register(h.abilityShorthand("evade"), "evade")
	h.register(h.abilityShorthand("scan"), "scan")
	h.register(h.read, "read")
	h.register(h.inventory, "inventory", "inv", "i")
	h.register(h.stats, "stats", "status")
	h.register(h.mapCmd, "map")
	h.register(h.help, "help", "?")
	h.register(h.reset, "reset")
	h.register(h.confirmReset, "confirm-reset")
	h.register(h.link, "link")
	h.register(h.say, "say")
	h.register(h.who, "who")
	h.register(h.escape, "exit", "escape")

	return h
}

func (h *Handler) register(fn handlerFunc, names ...string) {
	for _, n := range names {
		h.reg[n] = fn
	}
}

// gameOverAllowed lists the verbs a dead player may still use.
var gameOverAllowed = map[string]bool{
	"reset":         true,
	"confirm-reset": true,
	"help":          true,
}

// Handle interprets one raw input line against the session. It never
// returns an error: player mistakes become printed lines and anything
// unexpected is logged and swallowed. Each handled command is followed by a
// fire-and-forget snapshot save.
func (h *Handler) Handle(s *game.Session, raw string) Result {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return Result{Handled: true}
	}

	verb := strings.ToLower(fields[0])
	fn, ok := h.reg[verb]
	if !ok {
		return Result{Handled: false}
	}

	s.Lock()
	var (
		out    []string
		action *Action
		err    error
	)
	if s.Status == game.StatusGameOver && !gameOverAllowed[verb] {
		out = []string{"You are dead. The void holds you. (Type 'reset' to begin again.)"}
	} else {
		out, action, err = fn(s, fields[1:])
	}
	s.Unlock()

	if err != nil {
		var ue *UserError
		if errors.As(err, &ue) {
			out = append(out, ue.Message)
		} else {
			// Content or programming bug; keep the session alive anyway.
			slog.Error("command failed", "verb", verb, "error", err)
			out = append(out, "A fault ripples through the station systems.")
		}
	}

	s.SaveAsync()

	return Result{Handled: true, Output: out, Action: action}
}

func (h *Handler) notifyMoved(roomKey string) {
	if h.notifier != nil {
		h.notifier.Moved(roomKey)
	}
}

func (h *Handler) notifyEnemy(roomKey string, enemy *game.Enemy) {
	if h.notifier != nil {
		h.notifier.EnemyChanged(roomKey, enemy)
	}
}

// currentRoom resolves the player's location, which is always expected to be
// a valid key; failure here is a content bug, not player error.
func currentRoom(s *game.Session) (*game.Room, error) {
	return s.World.GetRoom(s.Player.Location)
}
