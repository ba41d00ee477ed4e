package helpers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ErrNotConfirmed is returned when the broker nacks a published message.
var ErrNotConfirmed = errors.New("rabbitmq: publish not confirmed")

// RabbitQueue is one AMQP connection bound to a single durable queue. The
// services publish email jobs with broker confirms; the email worker consumes.
type RabbitQueue struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	Queue string

	mu sync.Mutex // serializes publish + confirm
}

func NewRabbitQueue(url, queue string) (*RabbitQueue, error) {
	conn, err := amqp.DialConfig(url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Dial:      amqp.DefaultDial(5 * time.Second),
	})
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}
	// durable, not auto-deleted, not exclusive
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}
	return &RabbitQueue{conn: conn, ch: ch, Queue: queue}, nil
}

// Close is safe on a nil queue and may be called more than once.
func (q *RabbitQueue) Close() {
	if q == nil {
		return
	}
	if q.ch != nil && !q.ch.IsClosed() {
		_ = q.ch.Close()
	}
	if q.conn != nil && !q.conn.IsClosed() {
		_ = q.conn.Close()
	}
}

// PublishJSON publishes body as a persistent message and waits for the broker
// to confirm it.
func (q *RabbitQueue) PublishJSON(ctx context.Context, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if err := q.ch.Confirm(false); err != nil {
		return fmt.Errorf("enable confirms: %w", err)
	}
	conf, err := q.ch.PublishWithDeferredConfirmWithContext(ctx, "", q.Queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         b,
	})
	if err != nil {
		return fmt.Errorf("publish to %s: %w", q.Queue, err)
	}
	ok, err := conf.WaitContext(ctx)
	if err != nil {
		return fmt.Errorf("await confirm: %w", err)
	}
	if !ok {
		return ErrNotConfirmed
	}
	return nil
}

// Consume starts a manual-ack consumer with the given prefetch window.
func (q *RabbitQueue) Consume(prefetch int) (<-chan amqp.Delivery, error) {
	if err := q.ch.Qos(prefetch, 0, false); err != nil {
		return nil, fmt.Errorf("qos: %w", err)
	}
	return q.ch.Consume(q.Queue, "", false, false, false, false, nil)
}
