package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"strings"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/suchimauz/doctor-booking-directory/internal/config"
	"github.com/suchimauz/doctor-booking-directory/internal/core/ports/in"
	"github.com/suchimauz/doctor-booking-directory/internal/core/ports/out"
	"github.com/suchimauz/doctor-booking-directory/internal/core/services/booking_store"
)

const Receiver = "directory-svc"

type CommandListener struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	store   in.BookingStoreUseCase
	cfg     *config.Config
	logger  out.LoggerPort
}

type (
	CommandResource string
	CommandAction   string
)

type CommandRoutingKey struct {
	Source   string
	Receiver string
	Resource CommandResource
	Action   CommandAction
}

const (
	CommandResourceAppointment CommandResource = "appointment"
	CommandResourceInsurance   CommandResource = "insurance"
)

const (
	CommandActionStore      CommandAction = "store"
	CommandActionInvalidate CommandAction = "invalidate"
)

// ErrMalformedCommand помечает сообщения, которые нет смысла возвращать в очередь
var ErrMalformedCommand = errors.New("rabbitmq: malformed command")

func NewCommandListener(store in.BookingStoreUseCase, cfg *config.Config, logger out.LoggerPort) (*CommandListener, error) {
	if !cfg.RabbitMq.Enabled {
		logger.Info("rabbitmq.disabled", out.LogFields{
			"message": "RabbitMQ is disabled, listener will not be started",
		})
		return nil, nil
	}

	conn, err := amqp.Dial(cfg.RabbitMq.AmqpUri)
	if err != nil {
		logger.Error("rabbitmq.connect.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		logger.Error("rabbitmq.channel.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	return &CommandListener{
		conn:    conn,
		channel: channel,
		store:   store,
		cfg:     cfg,
		logger:  logger,
	}, nil
}

func (l *CommandListener) Start(ctx context.Context) error {
	err := l.channel.ExchangeDeclare(
		l.cfg.RabbitMq.Exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	queue, err := l.channel.QueueDeclare(
		l.cfg.RabbitMq.CommandQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	err = l.channel.QueueBind(
		queue.Name,
		l.cfg.RabbitMq.CommandBind,
		l.cfg.RabbitMq.Exchange,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	msgs, err := l.channel.Consume(
		queue.Name,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return err
	}

	go l.consume(ctx, msgs)

	l.logger.Info("command.queue.started", out.LogFields{
		"queue": queue.Name,
		"bind":  l.cfg.RabbitMq.CommandBind,
	})

	return nil
}

func (l *CommandListener) consume(ctx context.Context, msgs <-chan amqp.Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				l.logger.Warn("command.queue.closed", out.LogFields{})
				return
			}
			l.handleDelivery(ctx, msg)
		}
	}
}

func (l *CommandListener) handleDelivery(ctx context.Context, msg amqp.Delivery) {
	err := l.processMessage(ctx, msg.RoutingKey, msg.Body)

	switch {
	case err == nil:
		_ = msg.Ack(false)
	case errors.Is(err, ErrMalformedCommand):
		l.logger.Error("command.message.rejected", out.LogFields{
			"routingKey": msg.RoutingKey,
			"error":      err.Error(),
		})
		_ = msg.Nack(false, false)
	case errors.Is(err, booking_store.ErrSlotUnavailable), errors.Is(err, booking_store.ErrDoctorNotFound):
		// Команда устарела, повтор не поможет
		l.logger.Warn("command.message.stale", out.LogFields{
			"routingKey": msg.RoutingKey,
			"error":      err.Error(),
		})
		_ = msg.Ack(false)
	default:
		l.logger.Error("command.message.failed", out.LogFields{
			"routingKey": msg.RoutingKey,
			"error":      err.Error(),
		})
		_ = msg.Nack(false, true) // requeue message
	}
}

func (l *CommandListener) Stop() error {
	if l == nil || l.channel == nil {
		return nil
	}

	if err := l.channel.Close(); err != nil {
		return err
	}
	return l.conn.Close()
}

// Пример routingKey:
// booking.directory-svc.appointment.store
// booking.directory-svc.appointment.invalidate
// billing.directory-svc.insurance.store
func ParseCommandRoutingKey(routingKey string) (CommandRoutingKey, error) {
	parts := strings.Split(routingKey, ".")

	if len(parts) < 4 {
		return CommandRoutingKey{}, fmt.Errorf("%w: invalid routing key: %s", ErrMalformedCommand, routingKey)
	}

	return CommandRoutingKey{
		Source:   parts[0],
		Receiver: parts[1],
		Resource: CommandResource(parts[2]),
		Action:   CommandAction(parts[3]),
	}, nil
}
