package presence

// MessageType discriminates peer messages on the wire.
type MessageType string

const (
	// TypeHello opens a link: the sender introduces itself and expects a
	// presence reply plus a roster of everyone the receiver knows.
	TypeHello MessageType = "hello"
	// TypePresence is a periodic or reply announcement of name and room.
	TypePresence MessageType = "presence"
	// TypeLocation announces a room change.
	TypeLocation MessageType = "location"
	// TypeRoster shares the sender's peer list for transitive discovery.
	TypeRoster MessageType = "roster"
	// TypeChat carries a say line.
	TypeChat MessageType = "chat"
	// TypeEnemySync reconciles enemy state across peers.
	TypeEnemySync MessageType = "enemy-sync"
	// TypeLeave announces a clean disconnect.
	TypeLeave MessageType = "leave"
)

// PeerInfo is one roster entry.
type PeerInfo struct {
	Code string `json:"code"`
	Name string `json:"name,omitempty"`
	Room string `json:"room,omitempty"`
}

// EnemySync describes one room's enemy as the sender last saw it. Cleared
// means the enemy is gone entirely (defeated and removed, or banished).
type EnemySync struct {
	Room    string `json:"room"`
	Name    string `json:"name,omitempty"`
	HP      int    `json:"hp"`
	Cleared bool   `json:"cleared,omitempty"`
}

// Message is the single wire envelope for all peer traffic, JSON encoded.
// Unused fields stay empty; Type decides which ones matter. TS is the
// sender's send time in unix milliseconds; it is informational only - peer
// freshness is tracked against the local clock and enemy reconciliation is
// order-free.
type Message struct {
	Type  MessageType `json:"type"`
	From  string      `json:"from"`
	Name  string      `json:"name,omitempty"`
	Room  string      `json:"room,omitempty"`
	TS    int64       `json:"ts,omitempty"`
	Text  string      `json:"text,omitempty"`
	Peers []PeerInfo  `json:"peers,omitempty"`
	Enemy *EnemySync  `json:"enemy,omitempty"`
}
