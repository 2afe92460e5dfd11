package game

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/pixil98/go-testutil"
)

// memSnapshotStore round-trips snapshots through JSON in memory, matching
// the serialization behavior of the real file-backed store.
type memSnapshotStore struct {
	data  []byte
	saved chan struct{}
}

func newMemSnapshotStore() *memSnapshotStore {
	return &memSnapshotStore{saved: make(chan struct{}, 16)}
}

func (s *memSnapshotStore) Save(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.data = data
	select {
	case s.saved <- struct{}{}:
	default:
	}
	return nil
}

func (s *memSnapshotStore) Load(into any) bool {
	if s.data == nil {
		return false
	}
	return json.Unmarshal(s.data, into) == nil
}

func (s *memSnapshotStore) Clear() error {
	s.data = nil
	return nil
}

func TestSessionFreshStart(t *testing.T) {
	s, err := NewSession(testWorldBuilder(t), "start", nil)
	if err != nil {
		t.Fatalf("creating session: %v", err)
	}

	testutil.AssertEqual(t, "location", s.Player.Location, "start")
	testutil.AssertEqual(t, "status", s.Status, StatusPlaying)
	if !s.World.IsDiscovered("start") {
		t.Error("start room should be discovered")
	}
}

func TestSessionBadStartRoom(t *testing.T) {
	if _, err := NewSession(testWorldBuilder(t), "nowhere", nil); err == nil {
		t.Fatal("expected error for unknown start room")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	build := testWorldBuilder(t)
	store := newMemSnapshotStore()

	s1, err := NewSession(build, "start", store)
	if err != nil {
		t.Fatalf("creating session: %v", err)
	}

	s1.Lock()
	s1.Player.Location = "hall"
	s1.Player.HP = 7
	s1.Player.AddItem("coin", 2)
	s1.World.Discover("hall")
	s1.MapUnlocked = true
	hall, _ := s1.World.GetRoom("hall")
	hall.RemoveItem("coin")
	vault, _ := s1.World.GetRoom("vault")
	vault.Enemy.ApplyDamage(5)
	snap := s1.buildSnapshot()
	s1.Unlock()

	if err := store.Save(snap); err != nil {
		t.Fatalf("saving snapshot: %v", err)
	}

	s2, err := NewSession(build, "start", store)
	if err != nil {
		t.Fatalf("restoring session: %v", err)
	}

	testutil.AssertEqual(t, "location restored", s2.Player.Location, "hall")
	testutil.AssertEqual(t, "hp restored", s2.Player.HP, 7)
	testutil.AssertEqual(t, "inventory restored", s2.Player.Count("coin"), 2)
	testutil.AssertEqual(t, "map unlocked restored", s2.MapUnlocked, true)

	hall2, _ := s2.World.GetRoom("hall")
	testutil.AssertEqual(t, "floor item removal restored", len(hall2.Items), 0)
	vault2, _ := s2.World.GetRoom("vault")
	testutil.AssertEqual(t, "enemy hp restored", vault2.Enemy.HP, 7)
	if !s2.World.IsDiscovered("hall") {
		t.Error("discovery not restored")
	}
}

func TestSnapshotStatusRestore(t *testing.T) {
	tests := map[string]struct {
		gameOver  bool
		victory   bool
		expStatus Status
	}{
		"playing":   {expStatus: StatusPlaying},
		"game over": {gameOver: true, expStatus: StatusGameOver},
		"victory":   {victory: true, expStatus: StatusVictory},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			store := newMemSnapshotStore()
			if err := store.Save(&Snapshot{
				Version:  SnapshotVersion,
				Player:   NewPlayer("start"),
				GameOver: tt.gameOver,
				Victory:  tt.victory,
			}); err != nil {
				t.Fatalf("seeding store: %v", err)
			}

			s, err := NewSession(testWorldBuilder(t), "start", store)
			if err != nil {
				t.Fatalf("creating session: %v", err)
			}
			testutil.AssertEqual(t, "status", s.Status, tt.expStatus)
		})
	}
}

func TestSnapshotMergesOntoFreshWorld(t *testing.T) {
	store := newMemSnapshotStore()
	player := NewPlayer("gone-room")
	if err := store.Save(&Snapshot{
		Version: SnapshotVersion,
		Player:  player,
		Rooms: map[string]RoomSnapshot{
			// A room this content set no longer has: dropped silently.
			"gone-room": {Items: []string{"coin"}},
		},
		Discovered: []string{"hall", "gone-room"},
	}); err != nil {
		t.Fatalf("seeding store: %v", err)
	}

	s, err := NewSession(testWorldBuilder(t), "start", store)
	if err != nil {
		t.Fatalf("creating session: %v", err)
	}

	// An unknown saved location falls back to the start room.
	testutil.AssertEqual(t, "location fallback", s.Player.Location, "start")

	// Rooms absent from the save keep their template state.
	hall, _ := s.World.GetRoom("hall")
	testutil.AssertEqual(t, "template room intact", len(hall.Items), 1)
}

func TestResetClearsEverything(t *testing.T) {
	store := newMemSnapshotStore()
	s, err := NewSession(testWorldBuilder(t), "start", store)
	if err != nil {
		t.Fatalf("creating session: %v", err)
	}

	s.Lock()
	s.Player.Location = "hall"
	s.Player.AddItem("coin", 1)
	s.Status = StatusGameOver
	s.MapUnlocked = true
	if err := s.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	s.Unlock()

	testutil.AssertEqual(t, "location reset", s.Player.Location, "start")
	testutil.AssertEqual(t, "inventory reset", len(s.Player.Inventory), 0)
	testutil.AssertEqual(t, "status reset", s.Status, StatusPlaying)
	testutil.AssertEqual(t, "map reset", s.MapUnlocked, false)
	if store.data != nil {
		t.Error("expected persisted snapshot cleared")
	}
}

func TestSaveAsyncWrites(t *testing.T) {
	store := newMemSnapshotStore()
	s, err := NewSession(testWorldBuilder(t), "start", store)
	if err != nil {
		t.Fatalf("creating session: %v", err)
	}

	s.SaveAsync()

	select {
	case <-store.saved:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for async save")
	}
	if store.data == nil {
		t.Fatal("expected snapshot written")
	}
}

func TestAsyncOutputLifecycle(t *testing.T) {
	s, err := NewSession(testWorldBuilder(t), "start", nil)
	if err != nil {
		t.Fatalf("creating session: %v", err)
	}

	var got []string
	s.SetAsyncOutput(func(line string) { got = append(got, line) })

	s.EmitAsync("one")
	testutil.AssertEqual(t, "delivered", len(got), 1)

	s.Close()
	s.EmitAsync("two")
	testutil.AssertEqual(t, "dropped after close", len(got), 1)
}
