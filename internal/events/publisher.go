// Package events publishes match-completed notifications to RabbitMQ. The
// publisher is optional: a nil *Publisher is a no-op, and publish failures
// never fail the request that triggered them.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/streadway/amqp"
)

const exchange = "match_events"

// MatchCompleted describes one finished matching request.
type MatchCompleted struct {
	RequestID       string    `json:"request_id"`
	FileType        string    `json:"file_type"`
	Recommendations int       `json:"recommendations"`
	ElapsedMS       int64     `json:"elapsed_ms"`
	Timestamp       time.Time `json:"timestamp"`
}

// Publisher sends events over a shared amqp connection, opening a fresh
// channel per publish.
type Publisher struct {
	conn *amqp.Connection
}

// New creates a Publisher over an established connection.
func New(conn *amqp.Connection) *Publisher {
	return &Publisher{conn: conn}
}

// MatchCompleted publishes the event with routing key match.<request_id>.
func (p *Publisher) MatchCompleted(ev MatchCompleted) error {
	if p == nil || p.conn == nil {
		return nil
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	routingKey := fmt.Sprintf("match.%s", ev.RequestID)
	return ch.Publish(
		exchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}
