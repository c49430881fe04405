package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// channel is the part of *amqp.Channel the publisher uses.
type channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	IsClosed() bool
	Close() error
}

type dialFunc func(url string) (io.Closer, channel, error)

func dialAMQP(url string) (io.Closer, channel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("rabbitmq channel: %w", err)
	}
	return conn, ch, nil
}

// amqpPublisher keeps one connection and channel open and redials lazily
// after the broker drops them. Publishes are serialised because an AMQP
// channel must not be shared between concurrent publishers.
type amqpPublisher struct {
	dial  dialFunc
	url   string
	queue string
	log   *zap.Logger

	mu   sync.Mutex
	conn io.Closer
	ch   channel
}

func NewAMQPPublisher(url, queue string, log *zap.Logger) (Publisher, error) {
	p, err := newPublisher(dialAMQP, url, queue, log)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func newPublisher(dial dialFunc, url, queue string, log *zap.Logger) (*amqpPublisher, error) {
	p := &amqpPublisher{
		dial:  dial,
		url:   url,
		queue: queue,
		log:   log.With(zap.String("publisher", queue)),
	}

	if err := p.connect(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *amqpPublisher) connect() error {
	conn, ch, err := p.dial(p.url)
	if err != nil {
		return err
	}

	// durable, not auto-deleted, not exclusive
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return fmt.Errorf("rabbitmq queue declare %s: %w", p.queue, err)
	}

	p.conn, p.ch = conn, ch
	return nil
}

func (p *amqpPublisher) Publish(ctx context.Context, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", event.Type, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch == nil || p.ch.IsClosed() {
		p.closeLocked()
		if err := p.connect(); err != nil {
			return err
		}
		p.log.Info("Reconnected to broker")
	}

	err = p.ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    event.ID,
			Type:         event.Type,
			Timestamp:    event.OccurredAt,
			Body:         body,
		},
	)
	if err != nil {
		p.closeLocked()
		return fmt.Errorf("publish %s: %w", event.Type, err)
	}

	return nil
}

func (p *amqpPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closeLocked()
}

func (p *amqpPublisher) closeLocked() error {
	var err error
	if p.ch != nil {
		p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		err = p.conn.Close()
		p.conn = nil
	}
	return err
}

// Noop is used when no broker URL is configured.
type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }
func (Noop) Close() error                         { return nil }
