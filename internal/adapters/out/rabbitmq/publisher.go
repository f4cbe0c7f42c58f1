// Package rabbitmq publishes order notifications to a RabbitMQ fanout exchange.
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"mealorders/internal/adapters/out/notify"

	"github.com/rabbitmq/amqp091-go"
)

// DefaultExchange is the fanout exchange notification consumers bind their queues to.
const DefaultExchange = "order_notifications"

var ErrPublisherClosed = errors.New("rabbitmq publisher is closed")

var _ notify.Publisher = (*Publisher)(nil)

// session is one AMQP connection together with the channel publishes go through.
type session interface {
	Publish(ctx context.Context, exchange string, msg amqp091.Publishing) error
	IsClosed() bool
	Close() error
}

// Publisher sends notify.Event values as persistent JSON messages.
// An AMQP channel is not safe for concurrent use, so publishes are serialized.
type Publisher struct {
	exchange string
	logger   *slog.Logger
	dial     func() (session, error)

	mu      sync.Mutex
	session session
	closed  bool
}

// NewPublisher connects to url and declares the durable fanout exchange.
// An empty exchange falls back to DefaultExchange.
func NewPublisher(url, exchange string, logger *slog.Logger) (*Publisher, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}
	return newPublisher(exchange, logger, func() (session, error) {
		return dialSession(url, exchange)
	})
}

func newPublisher(exchange string, logger *slog.Logger, dial func() (session, error)) (*Publisher, error) {
	p := &Publisher{
		exchange: exchange,
		logger:   logger.With("component", "rabbitmq_publisher", "exchange", exchange),
		dial:     dial,
	}
	var err error
	if p.session, err = dial(); err != nil {
		return nil, err
	}
	return p, nil
}

// Publish delivers event to the exchange. The connection is re-established at most once per
// call: either because it was found closed or because the first attempt failed, in which case
// the event is published again on the new connection.
func (p *Publisher) Publish(ctx context.Context, event notify.Event) error {
	msg, err := encode(event)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPublisherClosed
	}

	reconnected := false
	if p.session.IsClosed() {
		p.logger.WarnContext(ctx, "connection lost, reconnecting to rabbitmq")
		if err = p.reconnect(); err != nil {
			return err
		}
		reconnected = true
	}

	err = p.session.Publish(ctx, p.exchange, msg)
	if err != nil && !reconnected && ctx.Err() == nil {
		p.logger.WarnContext(ctx, "publish failed, reconnecting to rabbitmq",
			"event", event.Event,
			"order_id", event.OrderID,
			"error", err)
		if errReconnect := p.reconnect(); errReconnect != nil {
			return fmt.Errorf("publish %s for order %s: %w", event.Event, event.OrderID, errors.Join(err, errReconnect))
		}
		err = p.session.Publish(ctx, p.exchange, msg)
	}
	if err != nil {
		return fmt.Errorf("publish %s for order %s: %w", event.Event, event.OrderID, err)
	}

	p.logger.DebugContext(ctx, "notification published",
		"event", event.Event,
		"order_id", event.OrderID,
		"size", len(msg.Body))
	return nil
}

// Close closes the channel and the connection. Publishing afterwards fails with ErrPublisherClosed.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	return p.session.Close()
}

func (p *Publisher) reconnect() error {
	_ = p.session.Close()
	s, err := p.dial()
	if err != nil {
		return err
	}
	p.session = s
	return nil
}

type amqpSession struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func dialSession(url, exchange string) (session, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := channel.ExchangeDeclare(exchange, amqp091.ExchangeFanout, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}
	return &amqpSession{conn: conn, channel: channel}, nil
}

func (s *amqpSession) Publish(ctx context.Context, exchange string, msg amqp091.Publishing) error {
	return s.channel.PublishWithContext(ctx, exchange, "", false, false, msg)
}

func (s *amqpSession) IsClosed() bool {
	return s.conn.IsClosed() || s.channel.IsClosed()
}

func (s *amqpSession) Close() error {
	var errChannel, errConn error
	if !s.channel.IsClosed() {
		errChannel = s.channel.Close()
	}
	if !s.conn.IsClosed() {
		errConn = s.conn.Close()
	}
	return errors.Join(errChannel, errConn)
}

func encode(event notify.Event) (amqp091.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp091.Publishing{}, fmt.Errorf("marshal %s event: %w", event.Event, err)
	}
	return amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Type:         event.Event,
		MessageId:    event.OrderID + ":" + event.Event + ":" + event.OccurredAt.Format(time.RFC3339Nano),
		Timestamp:    event.OccurredAt,
		Body:         body,
	}, nil
}
