package player

import (
	"context"
	"fmt"
	"sync"

	"github.com/clawedcode/voidmud/internal/game"
	"github.com/clawedcode/voidmud/internal/presence"
)

// SessionManager creates a game session per connection and tracks the live
// ones. Continuity across reconnects comes from per-name snapshot files,
// not from keeping sessions alive.
type SessionManager struct {
	mu     sync.Mutex
	active map[string]*presence.Mesh

	build     game.WorldBuilder
	start     string
	saveDir   string
	transport presence.Transport
}

func NewSessionManager(build game.WorldBuilder, start, saveDir string, transport presence.Transport) *SessionManager {
	return &SessionManager{
		active:    map[string]*presence.Mesh{},
		build:     build,
		start:     start,
		saveDir:   saveDir,
		transport: transport,
	}
}

// Start blocks until shutdown. Connections are owned by their listeners;
// there is nothing to run here.
func (m *SessionManager) Start(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

// Tick drives every live mesh's heartbeat and peer expiry.
func (m *SessionManager) Tick(ctx context.Context) error {
	m.mu.Lock()
	meshes := make([]*presence.Mesh, 0, len(m.active))
	for _, mesh := range m.active {
		meshes = append(meshes, mesh)
	}
	m.mu.Unlock()

	for _, mesh := range meshes {
		mesh.Tick()
	}
	return nil
}

// claim registers a player name as connected. A name can only be aboard
// once at a time.
func (m *SessionManager) claim(name string, mesh *presence.Mesh) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.active[name]; ok {
		return fmt.Errorf("name %q already connected", name)
	}
	m.active[name] = mesh
	return nil
}

func (m *SessionManager) release(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.active, name)
}
