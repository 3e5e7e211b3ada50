package messaging

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"stelwing-booking/internal/pkg/config"
	"stelwing-booking/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

// RabbitPublisher sends outbox payloads to a durable topic exchange. The
// connection is opened lazily and reopened after the broker drops it.
type RabbitPublisher struct {
	url      string
	exchange string

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewRabbitPublisher(cfg config.AMQPConfig) *RabbitPublisher {
	return &RabbitPublisher{url: cfg.URL, exchange: cfg.Exchange}
}

func (p *RabbitPublisher) Publish(ctx context.Context, topic string, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if err != nil {
		return err
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         payload,
	}
	if err := ch.PublishWithContext(ctx, p.exchange, topic, false, false, msg); err != nil {
		p.reset()
		return errs.Wrapf(err, "publish %s", topic)
	}
	return nil
}

func (p *RabbitPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset()
	return nil
}

func (p *RabbitPublisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	p.reset()

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return nil, errs.Wrap(err, "rabbitmq dial")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "rabbitmq open channel")
	}
	if err := ch.ExchangeDeclare(p.exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrapf(err, "rabbitmq declare exchange %s", p.exchange)
	}

	slog.Info("rabbitmq channel opened", "exchange", p.exchange)
	p.conn, p.ch = conn, ch
	return ch, nil
}

func (p *RabbitPublisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

// LogPublisher stands in for the broker when AMQP is disabled, so the outbox
// still drains in local setups.
type LogPublisher struct{}

func (LogPublisher) Publish(_ context.Context, topic string, payload []byte) error {
	slog.Info("outbox event", "topic", topic, "payload", string(payload))
	return nil
}

func (LogPublisher) Close() error { return nil }
