package player

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/clawedcode/voidmud/internal/commands"
	"github.com/clawedcode/voidmud/internal/game"
	"github.com/clawedcode/voidmud/internal/presence"
	"github.com/clawedcode/voidmud/internal/storage"
)

var nameRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]{1,15}$`)

const banner = `VOID STATION
Something went wrong here. The crew is gone. You are not alone.
`

// console serializes writes to the connection: command output and async
// lines (peer chat, delayed narration) land on the same wire.
type console struct {
	mu sync.Mutex
	w  io.Writer
}

func (c *console) line(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.w.Write([]byte(s + "\n"))
}

func (c *console) lines(ss []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, s := range ss {
		c.w.Write([]byte(s + "\n"))
	}
}

func (c *console) prompt(p string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.w.Write([]byte(p))
}

// RunSession owns one connection from greeting to disconnect: name prompt,
// session restore, mesh join, then the command loop.
func (m *SessionManager) RunSession(ctx context.Context, conn io.ReadWriter) error {
	out := &console{w: conn}
	out.line(banner)

	name, err := Prompt(conn, "Who are you? ",
		WithValidator(func(s string) (bool, string) {
			if !nameRe.MatchString(strings.TrimSpace(s)) {
				return false, "Names are 2-16 letters, digits, - or _.\n"
			}
			return true, ""
		}),
		WithMaxTries(5),
	)
	if err != nil {
		return fmt.Errorf("reading player name: %w", err)
	}
	name = strings.ToLower(name)

	snapStore := storage.NewSnapshotStore(
		filepath.Join(m.saveDir, name+".json"),
		game.AcceptedSnapshotVersions...,
	)
	linkStore := storage.NewSnapshotStore(
		filepath.Join(m.saveDir, name+".link.json"),
		presence.LinkMemoryVersion,
	)

	session, err := game.NewSession(m.build, m.start, snapStore)
	if err != nil {
		return fmt.Errorf("building session for %q: %w", name, err)
	}
	defer session.Close()

	code := strings.Split(uuid.NewString(), "-")[0]
	mesh := presence.NewMesh(code, name, session, m.transport,
		presence.WithLinkMemory(linkStore))

	if err := m.claim(name, mesh); err != nil {
		out.line("Someone with that name is already aboard.")
		return nil
	}
	defer m.release(name)

	handler := commands.NewHandler(commands.WithNotifier(mesh))

	session.SetAsyncOutput(func(line string) {
		out.line("\n" + line)
		out.prompt(promptFor(session))
	})

	if err := mesh.Start(); err != nil {
		return err
	}
	defer mesh.Leave()

	out.line(fmt.Sprintf("Welcome, %s. Your link code is %s.", name, code))
	out.line("")
	out.lines(handler.Handle(session, "look").Output)

	return m.commandLoop(ctx, conn, out, session, mesh, handler)
}

func (m *SessionManager) commandLoop(ctx context.Context, conn io.Reader, out *console, session *game.Session, mesh *presence.Mesh, handler *commands.Handler) error {
	inputChan := make(chan string)
	inputErrChan := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(conn)
		for scanner.Scan() {
			inputChan <- scanner.Text()
		}
		inputErrChan <- scanner.Err()
		close(inputChan)
	}()

	out.prompt(promptFor(session))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case line, ok := <-inputChan:
			if !ok {
				select {
				case err := <-inputErrChan:
					return err
				default:
					return nil
				}
			}

			result := handler.Handle(session, strings.TrimSpace(line))
			if !result.Handled {
				out.line("The station does not understand. (Try 'help'.)")
				out.prompt(promptFor(session))
				continue
			}
			out.lines(result.Output)

			if result.Action != nil {
				quit, err := m.runAction(session, mesh, handler, out, inputChan, result.Action)
				if err != nil {
					return err
				}
				if quit {
					return nil
				}
			}

			out.prompt(promptFor(session))
		}
	}
}

// runAction resolves host-side actions the engine can't: confirmation
// round-trips and everything touching the presence layer.
func (m *SessionManager) runAction(session *game.Session, mesh *presence.Mesh, handler *commands.Handler, out *console, inputChan <-chan string, action *commands.Action) (bool, error) {
	switch action.Kind {
	case commands.ActionConfirmReset:
		out.prompt("Really reset? (yes/no) ")
		answer, ok := <-inputChan
		if !ok {
			return true, nil
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			out.lines(handler.Handle(session, "confirm-reset").Output)
		default:
			out.line("Reset aborted.")
		}

	case commands.ActionLink:
		if err := mesh.Link(action.Arg); err != nil {
			out.line(err.Error())
		} else {
			out.line(fmt.Sprintf("Link request sent to %s.", action.Arg))
		}

	case commands.ActionSay:
		mesh.Say(action.Arg)
		out.line(fmt.Sprintf("You say: %s", action.Arg))

	case commands.ActionWho:
		out.lines(mesh.Who())

	case commands.ActionQuit:
		out.line("Connection closed.")
		return true, nil
	}

	return false, nil
}

func promptFor(s *game.Session) string {
	s.Lock()
	defer s.Unlock()
	return fmt.Sprintf("[HP %d/%d E%d S%d] > ", s.Player.HP, s.Player.MaxHP, s.Player.Energy, s.Player.Shield)
}
