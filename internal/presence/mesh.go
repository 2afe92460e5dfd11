package presence

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/clawedcode/voidmud/internal/game"
)

const (
	// LinkMemoryVersion tags the remembered-link file so stale formats are
	// discarded the same way snapshots are.
	LinkMemoryVersion = "voidmud-link-1"

	// staleAfter is how long a silent peer survives before Tick prunes it.
	staleAfter = 90 * time.Second

	// reconnectDelay gives the transport time to come up before the
	// remembered link is retried.
	reconnectDelay = 3 * time.Second
)

// linkMemory is the tiny persisted record of the last successful link.
type linkMemory struct {
	Version string `json:"version"`
	Code    string `json:"code"`
}

type peer struct {
	Code     string
	Name     string
	Room     string
	LastSeen time.Time
}

// Mesh is one session's view of its peers. It owns the protocol: hello
// handshakes, transitive roster discovery, chat, enemy reconciliation, and
// peer expiry. All state mutations funnel through handle() or the public
// methods, both guarded by one mutex; session access goes through the
// session's own locked entrypoints.
type Mesh struct {
	mu sync.Mutex

	code      string
	name      string
	session   *game.Session
	transport Transport

	peers  map[string]*peer
	memory game.SnapshotStorer
	now    func() time.Time
	stop   func()
}

type MeshOpt func(*Mesh)

// WithLinkMemory persists the last linked code so a restart can rejoin.
func WithLinkMemory(store game.SnapshotStorer) MeshOpt {
	return func(m *Mesh) { m.memory = store }
}

// WithClock injects a time source for tests.
func WithClock(now func() time.Time) MeshOpt {
	return func(m *Mesh) { m.now = now }
}

func NewMesh(code, name string, session *game.Session, transport Transport, opts ...MeshOpt) *Mesh {
	m := &Mesh{
		code:      code,
		name:      name,
		session:   session,
		transport: transport,
		peers:     map[string]*peer{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Code returns this peer's own link code.
func (m *Mesh) Code() string { return m.code }

// Start opens the inbox and, when a previous link is remembered, retries it
// after a short delay. Failure to rejoin is silent; the old peer may simply
// be gone.
func (m *Mesh) Start() error {
	stop, err := m.transport.Listen(m.code, m.handle)
	if err != nil {
		return fmt.Errorf("opening peer inbox: %w", err)
	}
	m.stop = stop

	var mem linkMemory
	if m.memory != nil && m.memory.Load(&mem) && mem.Code != "" && mem.Code != m.code {
		code := mem.Code
		time.AfterFunc(reconnectDelay, func() {
			if err := m.Link(code); err != nil {
				slog.Debug("rejoining remembered link", "code", code, "error", err)
			}
		})
	}
	return nil
}

// Link sends a hello to another peer's code. The handshake completes when
// their presence reply arrives.
func (m *Mesh) Link(code string) error {
	if code == m.code {
		return fmt.Errorf("that is your own link code")
	}

	hello := m.outbound(TypeHello)
	hello.Room = m.session.Location()
	if err := m.transport.Send(code, hello); err != nil {
		return fmt.Errorf("no response on that link code")
	}

	m.mu.Lock()
	m.upsertLocked(code, "", "")
	m.mu.Unlock()

	if m.memory != nil {
		if err := m.memory.Save(linkMemory{Version: LinkMemoryVersion, Code: code}); err != nil {
			slog.Warn("remembering link code", "error", err)
		}
	}
	return nil
}

// Say broadcasts a chat line stamped with the speaker's current room.
func (m *Mesh) Say(text string) {
	msg := m.outbound(TypeChat)
	msg.Room = m.session.Location()
	msg.Text = text
	m.broadcast(msg)
}

// Who lists the known peers, most recently seen first.
func (m *Mesh) Who() []string {
	m.mu.Lock()
	list := make([]*peer, 0, len(m.peers))
	for _, p := range m.peers {
		list = append(list, p)
	}
	m.mu.Unlock()

	if len(list) == 0 {
		return []string{"No one else on the link."}
	}

	sort.Slice(list, func(i, j int) bool { return list[i].LastSeen.After(list[j].LastSeen) })

	lines := make([]string, 0, len(list))
	for _, p := range list {
		name := p.Name
		if name == "" {
			name = p.Code
		}
		if p.Room == "" {
			lines = append(lines, fmt.Sprintf("%s - somewhere aboard", name))
		} else {
			lines = append(lines, fmt.Sprintf("%s - %s", name, m.session.RoomName(p.Room)))
		}
	}
	return lines
}

// Moved broadcasts a room change. Satisfies the command layer's notifier;
// it must not call back into the session, and doesn't.
func (m *Mesh) Moved(roomKey string) {
	msg := m.outbound(TypeLocation)
	msg.Room = roomKey
	m.broadcast(msg)
}

// EnemyChanged broadcasts the post-combat state of a room's enemy. A nil
// enemy means it is gone and peers should clear theirs too.
func (m *Mesh) EnemyChanged(roomKey string, enemy *game.Enemy) {
	state := &EnemySync{Room: roomKey, Cleared: true}
	if enemy != nil {
		state = &EnemySync{Room: roomKey, Name: enemy.Name, HP: enemy.HP}
	}
	msg := m.outbound(TypeEnemySync)
	msg.Enemy = state
	m.broadcast(msg)
}

// Tick announces presence and prunes peers that have gone quiet. The driver
// calls this on its heartbeat.
func (m *Mesh) Tick() {
	now := m.now()

	m.mu.Lock()
	for code, p := range m.peers {
		if now.Sub(p.LastSeen) > staleAfter {
			delete(m.peers, code)
		}
	}
	hasPeers := len(m.peers) > 0
	m.mu.Unlock()

	if hasPeers {
		msg := m.outbound(TypePresence)
		msg.Room = m.session.Location()
		m.broadcast(msg)
	}
}

// Leave announces departure and closes the inbox.
func (m *Mesh) Leave() {
	m.broadcast(m.outbound(TypeLeave))
	if m.stop != nil {
		m.stop()
	}
}

// handle processes one inbound message. It runs on the transport's delivery
// goroutine.
func (m *Mesh) handle(msg Message) {
	if msg.From == "" || msg.From == m.code {
		return
	}

	m.mu.Lock()
	known := m.peers[msg.From] != nil
	m.upsertLocked(msg.From, msg.Name, msg.Room)
	m.mu.Unlock()

	switch msg.Type {
	case TypeHello:
		m.replyHello(msg)
		m.emit(fmt.Sprintf("[link] %s joins the link.", displayName(msg)))

	case TypeRoster:
		m.meetRoster(msg.Peers)

	case TypePresence:
		if !known {
			m.emit(fmt.Sprintf("[link] %s is on the link.", displayName(msg)))
		}

	case TypeLocation:
		if msg.Room != "" && msg.Room == m.session.Location() {
			m.emit(fmt.Sprintf("[link] %s arrives in %s.", displayName(msg), m.session.RoomName(msg.Room)))
		}

	case TypeChat:
		m.handleChat(msg)

	case TypeEnemySync:
		m.handleEnemySync(msg)

	case TypeLeave:
		m.mu.Lock()
		delete(m.peers, msg.From)
		m.mu.Unlock()
		m.emit(fmt.Sprintf("[link] %s drops from the link.", displayName(msg)))

	default:
		slog.Debug("unknown peer message type", "type", msg.Type, "from", msg.From)
	}
}

// replyHello completes the handshake: our presence back to the newcomer,
// plus everyone else we know so the mesh closes transitively.
func (m *Mesh) replyHello(msg Message) {
	reply := m.outbound(TypePresence)
	reply.Room = m.session.Location()
	if err := m.transport.Send(msg.From, reply); err != nil {
		m.dropPeer(msg.From)
		return
	}

	m.mu.Lock()
	var roster []PeerInfo
	for code, p := range m.peers {
		if code == msg.From {
			continue
		}
		roster = append(roster, PeerInfo{Code: p.Code, Name: p.Name, Room: p.Room})
	}
	m.mu.Unlock()

	if len(roster) > 0 {
		rosterMsg := m.outbound(TypeRoster)
		rosterMsg.Peers = roster
		if err := m.transport.Send(msg.From, rosterMsg); err != nil {
			m.dropPeer(msg.From)
		}
	}
}

// meetRoster introduces us to every peer on a received roster we don't
// already know.
func (m *Mesh) meetRoster(roster []PeerInfo) {
	hello := m.outbound(TypeHello)
	hello.Room = m.session.Location()

	for _, info := range roster {
		if info.Code == "" || info.Code == m.code {
			continue
		}

		m.mu.Lock()
		known := m.peers[info.Code] != nil
		if !known {
			m.upsertLocked(info.Code, info.Name, info.Room)
		}
		m.mu.Unlock()

		if !known {
			if err := m.transport.Send(info.Code, hello); err != nil {
				m.dropPeer(info.Code)
			}
		}
	}
}

func (m *Mesh) handleChat(msg Message) {
	name := displayName(msg)
	if msg.Room != "" && msg.Room != m.session.Location() {
		m.emit(fmt.Sprintf("%s (from %s): %s", name, m.session.RoomName(msg.Room), msg.Text))
	} else {
		m.emit(fmt.Sprintf("%s: %s", name, msg.Text))
	}
}

// handleEnemySync applies a peer's enemy report. Lowest HP wins and a clear
// beats everything; both rules are idempotent and order-independent, so
// peers converge no matter how messages interleave.
func (m *Mesh) handleEnemySync(msg Message) {
	state := msg.Enemy
	if state == nil {
		return
	}

	if state.Cleared {
		if name, changed := m.session.ClearEnemy(state.Room); changed && state.Room == m.session.Location() {
			m.emit(fmt.Sprintf("[link] The %s collapses, struck down from somewhere else.", name))
		}
		return
	}

	if m.session.LowerEnemyHP(state.Room, state.Name, state.HP) && state.Room == m.session.Location() {
		m.emit(fmt.Sprintf("[link] The %s staggers from a wound you didn't deal.", state.Name))
	}
}

// broadcast sends to every known peer. An unreachable peer is dropped with
// a status line; the rest of the mesh is unaffected.
func (m *Mesh) broadcast(msg Message) {
	m.mu.Lock()
	codes := make([]string, 0, len(m.peers))
	for code := range m.peers {
		codes = append(codes, code)
	}
	m.mu.Unlock()

	for _, code := range codes {
		if err := m.transport.Send(code, msg); err != nil {
			m.dropPeer(code)
		}
	}
}

func (m *Mesh) dropPeer(code string) {
	m.mu.Lock()
	p := m.peers[code]
	delete(m.peers, code)
	m.mu.Unlock()

	if p != nil && p.Name != "" {
		m.emit(fmt.Sprintf("[link] Link to %s lost.", p.Name))
	}
}

// upsertLocked refreshes a peer record. Empty name/room never overwrite
// known values; messages like rosters carry partial info.
func (m *Mesh) upsertLocked(code, name, room string) {
	p := m.peers[code]
	if p == nil {
		p = &peer{Code: code}
		m.peers[code] = p
	}
	if name != "" {
		p.Name = name
	}
	if room != "" {
		p.Room = room
	}
	p.LastSeen = m.now()
}

// outbound seeds a message with the sender fields every outgoing envelope
// carries: our code, name, and a send timestamp.
func (m *Mesh) outbound(t MessageType) Message {
	return Message{
		Type: t,
		From: m.code,
		Name: m.name,
		TS:   m.now().UnixMilli(),
	}
}

func (m *Mesh) emit(line string) {
	m.session.EmitAsync(line)
}

func displayName(msg Message) string {
	if msg.Name != "" {
		return msg.Name
	}
	return msg.From
}
