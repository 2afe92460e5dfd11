package presence

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/clawedcode/voidmud/internal/messaging"
)

const subjectPrefix = "void.peer."

// NatsTransport delivers peer messages over the embedded NATS server. Each
// peer owns the subject for its own link code; sending is a publish to the
// recipient's subject.
type NatsTransport struct {
	server *messaging.NatsServer
}

func NewNatsTransport(server *messaging.NatsServer) *NatsTransport {
	return &NatsTransport{server: server}
}

func (t *NatsTransport) Listen(code string, handler func(Message)) (func(), error) {
	return t.server.Subscribe(subjectPrefix+code, func(data []byte) {
		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("dropping malformed peer message", "error", err)
			return
		}
		handler(msg)
	})
}

func (t *NatsTransport) Send(code string, msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encoding peer message: %w", err)
	}
	return t.server.Publish(subjectPrefix+code, data)
}
