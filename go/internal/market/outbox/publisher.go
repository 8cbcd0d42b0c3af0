package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
)

// EventPublisher delivers outbox events to a message broker
type EventPublisher interface {
	Publish(ctx context.Context, event OutboxEvent) error
}

// NATSPublisher publishes events to core NATS subjects
type NATSPublisher struct {
	nc            *nats.Conn
	subjectPrefix string
}

func NewNATSPublisher(nc *nats.Conn, subjectPrefix string) *NATSPublisher {
	return &NATSPublisher{
		nc:            nc,
		subjectPrefix: subjectPrefix,
	}
}

func (p *NATSPublisher) Publish(ctx context.Context, event OutboxEvent) error {
	subject := fmt.Sprintf("%s.%s", p.subjectPrefix, event.EventType)

	envelope := map[string]interface{}{
		"eventId":   event.ID.String(),
		"eventType": event.EventType,
		"timestamp": event.CreatedAt,
		"payload":   event.Payload,
	}

	messageBytes, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := p.nc.Publish(subject, messageBytes); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}
	return nil
}

// ConnectNATS creates a NATS connection with reconnect handling
func ConnectNATS(natsURL string) (*nats.Conn, error) {
	opts := []nats.Option{
		nats.MaxReconnects(10),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Error().Err(err).Msg("NATS disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info().Str("url", nc.ConnectedUrl()).Msg("NATS reconnected")
		}),
		nats.ErrorHandler(func(nc *nats.Conn, sub *nats.Subscription, err error) {
			log.Error().Err(err).Msg("NATS error")
		}),
	}

	nc, err := nats.Connect(natsURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}
	return nc, nil
}

// LogPublisher is an in-memory publisher for development and testing
type LogPublisher struct{}

func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

func (p *LogPublisher) Publish(ctx context.Context, event OutboxEvent) error {
	log.Info().
		Str("event_id", event.ID.String()).
		Str("event_type", event.EventType).
		Msg("publishing event")
	return nil
}
