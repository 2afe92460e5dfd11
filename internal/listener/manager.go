package listener

import (
	"context"
	"io"
	"log/slog"

	"github.com/clawedcode/voidmud/internal/player"
)

// ConnectionManager bridges transport listeners to game sessions: every
// accepted connection becomes one full session run.
type ConnectionManager struct {
	sm *player.SessionManager
}

func NewConnectionManager(sm *player.SessionManager) *ConnectionManager {
	return &ConnectionManager{
		sm: sm,
	}
}

func (m *ConnectionManager) AcceptConnection(ctx context.Context, conn io.ReadWriter) {
	if err := m.sm.RunSession(ctx, conn); err != nil {
		slog.WarnContext(ctx, "player session", "error", err)
	}
}
