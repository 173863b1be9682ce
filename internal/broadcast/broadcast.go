// Package broadcast pushes match documents to viewers: a websocket hub for
// browsers plus optional AMQP and MQTT relays for other services.
package broadcast

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/DhavalSuthar-24/crease/internal/scoring"
)

// Message types.
const (
	TypeMatchUpdate  = "matchUpdate"
	TypeMatchDeleted = "matchDeleted"
)

// Message is the envelope every channel carries.
type Message struct {
	Type    string         `json:"type"`
	MatchID string         `json:"matchId"`
	Match   *scoring.Match `json:"match,omitempty"`
}

// MatchUpdate wraps the full document for broadcast. History is dropped;
// viewers never need the undo buffer.
func MatchUpdate(m scoring.Match) Message {
	doc := m.Clone()
	doc.History = nil
	return Message{Type: TypeMatchUpdate, MatchID: m.ID, Match: &doc}
}

func MatchDeleted(id string) Message {
	return Message{Type: TypeMatchDeleted, MatchID: id}
}

func (m Message) encode() ([]byte, error) {
	return json.Marshal(m)
}

// Publisher delivers a message to its subscribers. Delivery is best effort.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
}

// Multi publishes to every relay and joins their errors.
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, msg Message) error {
	var errs []error
	for _, p := range m {
		if p == nil {
			continue
		}
		if err := p.Publish(ctx, msg); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Nop drops every message.
type Nop struct{}

func (Nop) Publish(context.Context, Message) error { return nil }

// Logged wraps p so failures are logged instead of returned.
func Logged(p Publisher) Publisher {
	return loggedPublisher{p}
}

type loggedPublisher struct{ p Publisher }

func (l loggedPublisher) Publish(ctx context.Context, msg Message) error {
	if err := l.p.Publish(ctx, msg); err != nil {
		log.Printf("broadcast: %s for match %s: %v", msg.Type, msg.MatchID, err)
	}
	return nil
}
