package game

import (
	"log/slog"
	"sync"
	"time"
)

// Status is the session's gameplay state. GameOver refuses everything except
// a reset; Victory is terminal for combat but leaves the station walkable.
type Status int

const (
	StatusPlaying Status = iota
	StatusGameOver
	StatusVictory
)

// WorldBuilder constructs a fresh world from static content. Sessions hold
// one so a reset can recreate everything from scratch.
type WorldBuilder func() (*World, error)

// SnapshotStorer persists session snapshots. Save failures must never block
// or break gameplay; implementations log and move on.
type SnapshotStorer interface {
	Save(v any) error
	Load(into any) bool
	Clear() error
}

// Session is one player's complete game: world copy, player state, and
// session flags. It is owned by its host and guarded by a single mutex;
// local commands and presence-driven updates both serialize through it, so
// the engine itself never sees concurrent mutation.
type Session struct {
	mu sync.Mutex

	World       *World
	Player      *Player
	Status      Status
	MapUnlocked bool

	start      string
	buildWorld WorldBuilder
	snapshots  SnapshotStorer
	async      func(string)
	closed     bool
}

// NewSession builds a session, restoring a saved snapshot when one exists
// and is readable. Corrupt or version-incompatible saves fall back to a
// fresh start; they never surface as errors.
func NewSession(build WorldBuilder, start string, snapshots SnapshotStorer) (*Session, error) {
	world, err := build()
	if err != nil {
		return nil, err
	}
	if _, err := world.GetRoom(start); err != nil {
		return nil, err
	}

	s := &Session{
		World:      world,
		Player:     NewPlayer(start),
		start:      start,
		buildWorld: build,
		snapshots:  snapshots,
	}

	var snap Snapshot
	if snapshots != nil && snapshots.Load(&snap) {
		s.applySnapshot(&snap)
	}
	s.World.Discover(s.Player.Location)

	return s, nil
}

// Lock serializes access to the session. The command handler holds it for
// the duration of each command.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session.
func (s *Session) Unlock() { s.mu.Unlock() }

// Reset recreates world, player, and discovery from scratch and clears the
// persisted snapshot. Caller must hold the session lock.
func (s *Session) Reset() error {
	world, err := s.buildWorld()
	if err != nil {
		return err
	}
	s.World = world
	s.Player = NewPlayer(s.start)
	s.Status = StatusPlaying
	s.MapUnlocked = false
	s.World.Discover(s.start)

	if s.snapshots != nil {
		if err := s.snapshots.Clear(); err != nil {
			slog.Warn("clearing snapshot", "error", err)
		}
	}
	return nil
}

// SaveAsync snapshots the session and writes it in the background. A slow or
// failing write never blocks gameplay.
func (s *Session) SaveAsync() {
	if s.snapshots == nil {
		return
	}
	s.mu.Lock()
	snap := s.buildSnapshot()
	s.mu.Unlock()

	go func() {
		if err := s.snapshots.Save(snap); err != nil {
			slog.Warn("saving session snapshot", "error", err)
		}
	}()
}

// SetAsyncOutput registers a sink for lines that arrive outside a command
// round-trip (delayed narration, peer chat).
func (s *Session) SetAsyncOutput(fn func(string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.async = fn
}

// EmitAsync delivers a line to the async sink, if any.
func (s *Session) EmitAsync(line string) {
	s.mu.Lock()
	fn := s.async
	closed := s.closed
	s.mu.Unlock()
	if fn != nil && !closed {
		fn(line)
	}
}

// AfterDelay schedules a line for later delivery. If the session is torn
// down before the delay elapses the callback is a no-op.
func (s *Session) AfterDelay(d time.Duration, line string) {
	time.AfterFunc(d, func() {
		s.EmitAsync(line)
	})
}

// Close marks the session dead. Pending delayed callbacks become no-ops.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.async = nil
}

// Location returns the player's current room key.
func (s *Session) Location() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Player.Location
}

// RoomName resolves a room key to its display name, or the key itself when
// unknown (peer saves may reference rooms this build doesn't have).
func (s *Session) RoomName(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, err := s.World.GetRoom(key)
	if err != nil {
		return key
	}
	return room.Name
}

// LowerEnemyHP adopts a peer-reported HP value for the named enemy in the
// given room if it is lower than ours. Lowest HP wins: the rule is
// commutative and idempotent, so message ordering doesn't matter.
func (s *Session) LowerEnemyHP(roomKey, name string, hp int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.World.GetRoom(roomKey)
	if err != nil || room.Enemy == nil || room.Enemy.Name != name {
		return false
	}
	return room.Enemy.LowerHP(hp)
}

// ClearEnemy removes a living enemy from the room because some peer defeated
// it. Returns the enemy name and whether anything changed.
func (s *Session) ClearEnemy(roomKey string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.World.GetRoom(roomKey)
	if err != nil || !room.Enemy.Alive() {
		return "", false
	}
	name := room.Enemy.Name
	room.Enemy = nil
	return name, true
}
