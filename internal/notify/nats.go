// Package notify forwards data store changes to a message bus.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/joshua-takyi/eventconnect/internal/store"
	"github.com/nats-io/nats.go"
)

// SubjectPrefix starts every subject, e.g. "eventconnect.bookings.created".
const SubjectPrefix = "eventconnect"

type Publisher interface {
	Publish(ctx context.Context, subject string, data interface{}) error
	Close() error
}

type NATSPublisher struct {
	conn   *nats.Conn
	logger *slog.Logger
}

func NewNATSPublisher(conn *nats.Conn, logger *slog.Logger) *NATSPublisher {
	return &NATSPublisher{conn: conn, logger: logger}
}

func (n *NATSPublisher) Publish(ctx context.Context, subject string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}
	n.logger.DebugContext(ctx, "Publishing event", "subject", subject, "data", string(payload))
	return n.conn.Publish(subject, payload)
}

// Close flushes pending messages before closing the connection.
func (n *NATSPublisher) Close() error {
	return n.conn.Drain()
}

func Subject(c store.Change) string {
	return SubjectPrefix + "." + c.Collection + "." + string(c.Op)
}

// Forward publishes every change of data until the returned cancel is
// called. Publish failures are logged and dropped.
func Forward(ctx context.Context, data *store.DataStore, pub Publisher, logger *slog.Logger) (cancel func()) {
	return data.Subscribe(func(c store.Change) {
		if err := pub.Publish(ctx, Subject(c), c); err != nil {
			logger.Warn("Failed to publish change", "subject", Subject(c), "id", c.ID, "error", err)
		}
	})
}
