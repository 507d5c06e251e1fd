package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeName = "airline.events"
	ExchangeKind = "topic"

	RoutingReservationCreated = "reservation.created"
)

// Publisher delivers domain events. Implementations must be safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
	Close()
}

// ReservationCreated is emitted after a booking commits.
type ReservationCreated struct {
	Code          string    `json:"code"`
	ReservationID int64     `json:"reservation_id"`
	PassengerDNI  string    `json:"passenger_dni"`
	FlightNumber  string    `json:"flight_number"`
	Total         float64   `json:"total"`
	CreatedAt     time.Time `json:"created_at"`
}

// ErrChannelClosed is returned by Publish once the broker closed the channel.
var ErrChannelClosed = errors.New("canal de rabbitmq cerrado")

// channel is the part of *amqp.Channel the publisher needs.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type AMQPPublisher struct {
	conn    *amqp.Connection
	channel channel
	closed  atomic.Bool
}

func NewAMQPPublisher(url string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(ExchangeName, ExchangeKind, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("rabbitmq exchange declare: %w", err)
	}

	p := &AMQPPublisher{conn: conn, channel: ch}
	p.watch(ch.NotifyClose(make(chan *amqp.Error, 1)))
	return p, nil
}

// watch marks the publisher closed when the channel goes away. A broker-side
// close is logged once; our own Close closes the notification channel silently.
func (p *AMQPPublisher) watch(closes <-chan *amqp.Error) {
	go func() {
		amqpErr, ok := <-closes
		if ok && amqpErr != nil {
			log.Printf("[RabbitMQ] canal cerrado por el broker: %v; los eventos se descartaran hasta reiniciar", amqpErr)
		}
		p.closed.Store(true)
	}()
}

func (p *AMQPPublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	if p.closed.Load() {
		return ErrChannelClosed
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	if err := p.channel.PublishWithContext(ctx,
		ExchangeName,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	); err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	log.Printf("[RabbitMQ] publicado en %s/%s (%d bytes)", ExchangeName, routingKey, len(body))
	return nil
}

func (p *AMQPPublisher) Close() {
	p.closed.Store(true)
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}

// NopPublisher drops events; used when AMQP_URL is not configured.
type NopPublisher struct{}

func (NopPublisher) Publish(_ context.Context, routingKey string, _ any) error {
	log.Printf("[EVENTS] sin broker configurado, evento %s descartado", routingKey)
	return nil
}

func (NopPublisher) Close() {}

// New returns an AMQP publisher for url, or a NopPublisher when url is empty.
func New(url string) (Publisher, error) {
	if url == "" {
		return NopPublisher{}, nil
	}
	p, err := NewAMQPPublisher(url)
	if err != nil {
		return nil, err
	}
	return p, nil
}
