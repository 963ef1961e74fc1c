package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/msuss/atelier/internal/domain"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// SubjectPrefix is prepended to the event type to form the NATS subject.
const SubjectPrefix = "atelier.events."

// NATSPublisher forwards events to a NATS server so other processes can
// follow the studio.
type NATSPublisher struct {
	conn   *nats.Conn
	logger *zap.Logger
}

// NewNATSPublisher connects to the server at url.
func NewNATSPublisher(url string, logger *zap.Logger) (*NATSPublisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("atelier"),
		nats.Timeout(10*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to nats: %w", err)
	}
	logger.Info("connected to NATS", zap.String("url", url))
	return &NATSPublisher{conn: nc, logger: logger}, nil
}

func Subject(t domain.EventType) string {
	return SubjectPrefix + string(t)
}

func (p *NATSPublisher) Publish(_ context.Context, e domain.Event) {
	data, err := json.Marshal(e)
	if err != nil {
		p.logger.Error("marshal event", zap.String("type", string(e.Type)), zap.Error(err))
		return
	}
	if err := p.conn.Publish(Subject(e.Type), data); err != nil {
		p.logger.Warn("nats publish failed", zap.String("type", string(e.Type)), zap.Error(err))
	}
}

// Close flushes pending messages and closes the connection.
func (p *NATSPublisher) Close() {
	if err := p.conn.Drain(); err != nil {
		p.conn.Close()
	}
}
