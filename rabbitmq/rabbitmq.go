package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/services"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	deadLetterExchange = "_dlx"
	publishTimeout     = 5 * time.Second
)

// Publisher sends order events to a topic exchange, routed by event type
// (order.created, tracking.updated, ...). Delivery is best effort.
type Publisher struct {
	Conn     *amqp.Connection
	Channel  *amqp.Channel
	Exchange string
	mu       sync.Mutex
}

func NewPublisher(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	return &Publisher{Conn: conn, Channel: ch, Exchange: exchange}, nil
}

// Setup declares the event exchange plus an audit queue with a dead-letter pair.
func (p *Publisher) Setup() error {
	dlx := p.Exchange + deadLetterExchange
	if err := p.Channel.ExchangeDeclare(dlx, "fanout", true, false, false, false, nil); err != nil {
		return err
	}
	if _, err := p.Channel.QueueDeclare(dlx+"_queue", true, false, false, false, nil); err != nil {
		return err
	}
	if err := p.Channel.QueueBind(dlx+"_queue", "", dlx, false, nil); err != nil {
		return err
	}

	if err := p.Channel.ExchangeDeclare(
		p.Exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		return err
	}

	audit := p.Exchange + "_audit"
	if _, err := p.Channel.QueueDeclare(
		audit,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		amqp.Table{"x-dead-letter-exchange": dlx},
	); err != nil {
		return err
	}
	return p.Channel.QueueBind(audit, "#", p.Exchange, false, nil)
}

func (p *Publisher) PublishOrderEvent(ctx context.Context, ev services.OrderEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	msg := amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		Timestamp:    ev.OccurredAt,
		ContentType:  "application/json",
		Type:         ev.Type,
		Body:         body,
	}

	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.Channel.PublishWithContext(ctx, p.Exchange, ev.Type, false, false, msg)
}

func (p *Publisher) Close() {
	if p.Channel != nil {
		_ = p.Channel.Close()
	}
	if p.Conn != nil {
		_ = p.Conn.Close()
	}
}
