package game

// SnapshotVersion tags saved sessions. Loaders discard any payload whose
// version they don't recognize rather than partially applying it.
const SnapshotVersion = "voidmud-2"

// AcceptedSnapshotVersions lists every schema this build can still read.
// voidmud-1 predates the victory flag, which zero-values correctly.
var AcceptedSnapshotVersions = []string{"voidmud-1", SnapshotVersion}

// RoomSnapshot carries only a room's mutable fields. Static content (name,
// description, exits) is reconstructible from the world template, so new
// rooms added in a later build survive a load untouched.
type RoomSnapshot struct {
	Items []string `json:"items"`
	Dark  bool     `json:"dark,omitempty"`
	Enemy *Enemy   `json:"enemy,omitempty"`
}

// Snapshot is the full persisted session state.
type Snapshot struct {
	Version     string                  `json:"version"`
	Player      *Player                 `json:"player"`
	Rooms       map[string]RoomSnapshot `json:"rooms"`
	Discovered  []string                `json:"discovered"`
	MapUnlocked bool                    `json:"map_unlocked,omitempty"`
	GameOver    bool                    `json:"game_over,omitempty"`
	Victory     bool                    `json:"victory,omitempty"`
}

// buildSnapshot captures the session. Caller must hold the session lock.
func (s *Session) buildSnapshot() *Snapshot {
	rooms := make(map[string]RoomSnapshot, len(s.World.Rooms()))
	for key, room := range s.World.Rooms() {
		rooms[key] = RoomSnapshot{
			Items: append([]string(nil), room.Items...),
			Dark:  room.Dark,
			Enemy: room.Enemy.clone(),
		}
	}

	player := *s.Player
	player.Inventory = append([]Stack(nil), s.Player.Inventory...)

	return &Snapshot{
		Version:     SnapshotVersion,
		Player:      &player,
		Rooms:       rooms,
		Discovered:  s.World.Discovered(),
		MapUnlocked: s.MapUnlocked,
		GameOver:    s.Status == StatusGameOver,
		Victory:     s.Status == StatusVictory,
	}
}

// applySnapshot merges saved state onto a freshly built world. Rooms present
// in the save but gone from the content set are dropped; rooms new to the
// content set keep their template state. Caller must hold the session lock.
func (s *Session) applySnapshot(snap *Snapshot) {
	for key, rs := range snap.Rooms {
		room, err := s.World.GetRoom(key)
		if err != nil {
			continue
		}
		room.Items = append([]string(nil), rs.Items...)
		room.Dark = rs.Dark
		room.Enemy = rs.Enemy.clone()
	}

	if snap.Player != nil {
		p := *snap.Player
		p.Inventory = append([]Stack(nil), snap.Player.Inventory...)
		if _, err := s.World.GetRoom(p.Location); err != nil {
			p.Location = s.start
		}
		s.Player = &p
	}

	for _, key := range snap.Discovered {
		s.World.Discover(key)
	}

	s.MapUnlocked = snap.MapUnlocked
	if snap.Victory {
		s.Status = StatusVictory
	}
	if snap.GameOver {
		s.Status = StatusGameOver
	}
}
