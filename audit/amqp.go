package audit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// confirmation is the broker's answer to one publishing.
type confirmation interface {
	WaitContext(ctx context.Context) (bool, error)
}

// publishChannel is the part of an AMQP channel the publisher drives.
type publishChannel interface {
	publish(ctx context.Context, exchange, key string, msg amqp.Publishing) (confirmation, error)
	IsClosed() bool
	Close() error
}

// confirmChannel pairs every publishing with its own deferred confirmation,
// so a confirm that arrives after its publisher gave up is never read by the
// next one.
type confirmChannel struct {
	*amqp.Channel
}

func (c confirmChannel) publish(ctx context.Context, exchange, key string, msg amqp.Publishing) (confirmation, error) {
	dc, err := c.PublishWithDeferredConfirmWithContext(ctx, exchange, key, false, false, msg)
	if err != nil {
		return nil, err
	}
	if dc == nil {
		return nil, errors.New("channel is not in confirm mode")
	}
	return dc, nil
}

// AMQPPublisher publishes events to a topic exchange with publisher confirms.
type AMQPPublisher struct {
	exchange string
	log      *zap.Logger

	conn *amqp.Connection
	ch   publishChannel
}

// Dial connects, declares the durable topic exchange and puts the channel in confirm mode.
func Dial(url, exchange string, log *zap.Logger) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("audit: dial broker: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("audit: open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("audit: declare exchange %s: %w", exchange, err)
	}
	if err := ch.Confirm(false); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("audit: enable confirms: %w", err)
	}
	p := newPublisher(exchange, confirmChannel{ch}, log)
	p.conn = conn
	p.log.Info("audit publisher ready", zap.String("exchange", exchange))
	return p, nil
}

func newPublisher(exchange string, ch publishChannel, log *zap.Logger) *AMQPPublisher {
	return &AMQPPublisher{
		exchange: exchange,
		log:      log.With(zap.String("component", "audit_amqp")),
		ch:       ch,
	}
}

// Publish sends e and waits for the broker ack of this publishing.
func (p *AMQPPublisher) Publish(ctx context.Context, e Event) error {
	if p.ch.IsClosed() {
		return errors.New("audit: broker connection is not open")
	}
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("audit: encode event: %w", err)
	}

	confirm, err := p.ch.publish(ctx, p.exchange, e.RoutingKey(), amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		MessageId:    uuid.NewString(),
		Timestamp:    e.At,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("audit: publish %s: %w", e.RoutingKey(), err)
	}

	ack, err := confirm.WaitContext(ctx)
	if err != nil {
		return fmt.Errorf("audit: confirm %s: %w", e.RoutingKey(), err)
	}
	if !ack {
		return fmt.Errorf("audit: broker nacked %s", e.RoutingKey())
	}
	return nil
}

// Close closes the channel and the connection.
func (p *AMQPPublisher) Close() error {
	err := p.ch.Close()
	if err != nil && errors.Is(err, amqp.ErrClosed) {
		err = nil
	}
	if p.conn != nil {
		if cerr := p.conn.Close(); cerr != nil && !errors.Is(cerr, amqp.ErrClosed) && err == nil {
			err = cerr
		}
	}
	return err
}
