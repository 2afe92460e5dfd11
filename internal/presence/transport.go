package presence

// Transport moves messages between peers addressed by link code. The mesh
// contains all the protocol logic; a transport only delivers envelopes.
type Transport interface {
	// Listen subscribes to this peer's own inbox. The handler is invoked
	// for every inbound message; the returned function cancels the
	// subscription.
	Listen(code string, handler func(Message)) (func(), error)

	// Send delivers a message to the peer owning the given code. Delivery
	// is best-effort; an error means the peer is unreachable.
	Send(code string, msg Message) error
}
