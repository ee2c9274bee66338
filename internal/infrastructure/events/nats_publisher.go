package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"service_documents/internal/domain/entities"
	"service_documents/internal/infrastructure/logger"
	"service_documents/internal/usecase/interfaces"

	"github.com/nats-io/nats.go"
)

type natsConn interface {
	Publish(subject string, data []byte) error
}

// historyMessage is the payload published for every history event.
type historyMessage struct {
	ServiceID string                `json:"serviceId"`
	Event     entities.HistoryEvent `json:"event"`
}

// NATSPublisher publishes history events on <prefix>.<serviceID>.history.
type NATSPublisher struct {
	conn   natsConn
	close  func()
	prefix string
	log    *logger.Logger
}

var _ interfaces.IHistoryPublisher = (*NATSPublisher)(nil)

func NewNATSPublisher(url, prefix string, log *logger.Logger) (*NATSPublisher, error) {
	log = log.With("component", "NATSPublisher")
	conn, err := nats.Connect(url,
		nats.Name("service-documents"),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.Info("nats reconnected", "url", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return &NATSPublisher{conn: conn, close: conn.Close, prefix: prefix, log: log}, nil
}

func (p *NATSPublisher) Subject(serviceID string) string {
	return fmt.Sprintf("%s.%s.history", p.prefix, serviceID)
}

func (p *NATSPublisher) PublishHistoryEvent(ctx context.Context, serviceID string, event entities.HistoryEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(historyMessage{ServiceID: serviceID, Event: event})
	if err != nil {
		return err
	}
	subject := p.Subject(serviceID)
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	p.log.Debug("published history event", "subject", subject, "type", event.Type)
	return nil
}

func (p *NATSPublisher) Close() error {
	if p.close != nil {
		p.close()
	}
	return nil
}
