package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
)

const (
	EventsExchange = "fulfillment_events"

	CutoffExchange   = "wave_cutoff_exchange"
	CutoffQueue      = "wave_cutoff_queue"
	CutoffRoutingKey = "wave_cutoff"
)

// Event types published on EventsExchange; the type doubles as routing key.
const (
	EventWaveAllocated  = "fulfillment.wave.allocated"
	EventWaveReleased   = "fulfillment.wave.released"
	EventShortage       = "fulfillment.shortage"
	EventIntegrityFault = "fulfillment.integrity_fault"
	EventShortPick      = "fulfillment.short_pick"
)

type Event struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurred_at"`
	Data       interface{} `json:"data"`
}

func NewEvent(eventType string, data interface{}) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}
}

// WaveCutoffMessage asks for an ALLOCATED wave to be released at its cutoff.
type WaveCutoffMessage struct {
	WaveID   uint64    `json:"wave_id"`
	OrderIDs []uint64  `json:"order_ids"`
	CutoffAt time.Time `json:"cutoff_at"`
}

type EventPublisher interface {
	PublishEvent(ctx context.Context, event Event) error
	PublishWaveCutoff(ctx context.Context, msg WaveCutoffMessage) error
}

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	mu      sync.Mutex
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	err = channel.ExchangeDeclare(
		EventsExchange, // name
		"topic",        // type
		true,           // durable
		false,          // auto-delete
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	if err := declareCutoffTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Publisher{conn: conn, channel: channel}, nil
}

// declareCutoffTopology needs the rabbitmq_delayed_message_exchange plugin.
func declareCutoffTopology(channel *amqp091.Channel) error {
	err := channel.ExchangeDeclare(
		CutoffExchange,      // name
		"x-delayed-message", // type
		true,                // durable
		false,               // auto-delete
		false,               // internal
		false,               // no-wait
		amqp091.Table{"x-delayed-type": "direct"}, // arguments
	)
	if err != nil {
		return err
	}

	_, err = channel.QueueDeclare(
		CutoffQueue, // name
		true,        // durable
		false,       // auto-delete
		false,       // exclusive
		false,       // no-wait
		nil,         // arguments
	)
	if err != nil {
		return err
	}

	return channel.QueueBind(
		CutoffQueue,      // queue name
		CutoffRoutingKey, // routing key
		CutoffExchange,   // exchange
		false,            // no-wait
		nil,              // arguments
	)
}

func (p *Publisher) PublishEvent(ctx context.Context, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.channel.PublishWithContext(ctx,
		EventsExchange, // exchange
		event.Type,     // routing key
		false,          // mandatory
		false,          // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    event.ID,
			Timestamp:    event.OccurredAt,
			Type:         event.Type,
			Body:         body,
		},
	)
}

func (p *Publisher) PublishWaveCutoff(ctx context.Context, msg WaveCutoffMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.channel.PublishWithContext(ctx,
		CutoffExchange,   // exchange
		CutoffRoutingKey, // routing key
		false,            // mandatory
		false,            // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Body:         body,
			Headers: amqp091.Table{
				"x-delay": cutoffDelay(msg.CutoffAt, time.Now()),
			},
		},
	)
}

// cutoffDelay is the x-delay header value in milliseconds, never negative.
func cutoffDelay(cutoff, now time.Time) int64 {
	delayMs := cutoff.Sub(now).Milliseconds()
	if delayMs < 0 {
		return 0
	}
	return delayMs
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
