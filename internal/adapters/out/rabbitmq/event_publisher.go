package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/suchimauz/doctor-booking-directory/internal/config"
	"github.com/suchimauz/doctor-booking-directory/internal/core/domain"
	"github.com/suchimauz/doctor-booking-directory/internal/core/ports/out"
)

const (
	ServiceName      = "directory-svc"
	BroadcastTarget  = "broadcast"
	publishTimeout   = 5 * time.Second
	eventContentType = "application/json"
)

type amqpPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

var _ out.EventPublisherPort = (*EventPublisher)(nil)

type EventPublisher struct {
	conn     *amqp.Connection
	channel  amqpPublisher
	exchange string
	logger   out.LoggerPort
}

// EventMessage is the wire form of a store event. The full state snapshot is
// not sent, only what consumers need.
type EventMessage struct {
	Action          domain.StoreAction  `json:"action"`
	Appointment     *domain.Appointment `json:"appointment,omitempty"`
	InsuranceFilter string              `json:"insuranceFilter"`
	ActiveTab       domain.Tab          `json:"activeTab"`
	Loading         bool                `json:"loading"`
	OccurredAt      time.Time           `json:"occurredAt"`
}

func NewEventPublisher(cfg *config.Config, logger out.LoggerPort) (*EventPublisher, error) {
	if !cfg.RabbitMq.Enabled {
		logger.Info("rabbitmq.disabled", out.LogFields{
			"message": "RabbitMQ is disabled, events will not be published",
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

	err = channel.ExchangeDeclare(
		cfg.RabbitMq.Exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		logger.Error("rabbitmq.exchange.declare_failed", out.LogFields{
			"error":    err.Error(),
			"exchange": cfg.RabbitMq.Exchange,
		})
		return nil, err
	}

	return &EventPublisher{
		conn:     conn,
		channel:  channel,
		exchange: cfg.RabbitMq.Exchange,
		logger:   logger,
	}, nil
}

// Пример routingKey:
// directory-svc.broadcast.appointment.appointment_confirmed
// directory-svc.broadcast.ui.insurance_filter
func RoutingKey(action domain.StoreAction) string {
	return fmt.Sprintf("%s.%s.%s.%s", ServiceName, BroadcastTarget, action.Resource(), action)
}

func NewEventMessage(event domain.StoreEvent) EventMessage {
	return EventMessage{
		Action:          event.Action,
		Appointment:     event.Appointment,
		InsuranceFilter: event.State.UI.InsuranceFilter,
		ActiveTab:       event.State.UI.ActiveTab,
		Loading:         event.State.UI.Loading,
		OccurredAt:      event.OccurredAt,
	}
}

func (p *EventPublisher) Publish(ctx context.Context, event domain.StoreEvent) error {
	body, err := json.Marshal(NewEventMessage(event))
	if err != nil {
		return fmt.Errorf("rabbitmq.event.marshal: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(ctx,
		p.exchange,
		RoutingKey(event.Action),
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  eventContentType,
			DeliveryMode: amqp.Persistent,
			MessageId:    uuid.NewString(),
			Timestamp:    event.OccurredAt,
			AppId:        ServiceName,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("rabbitmq.event.publish: %w", err)
	}

	return nil
}

// Subscriber adapts the publisher to a store subscriber. Errors are logged,
// the store action has already been committed. The caller's cancellation is
// dropped, publishing is bounded by publishTimeout only.
func (p *EventPublisher) Subscriber() func(ctx context.Context, event domain.StoreEvent) {
	return func(ctx context.Context, event domain.StoreEvent) {
		if err := p.Publish(context.WithoutCancel(ctx), event); err != nil {
			p.logger.Error("rabbitmq.event.publish_failed", out.LogFields{
				"action": event.Action,
				"error":  err.Error(),
			})
			return
		}

		p.logger.Debug("rabbitmq.event.published", out.LogFields{
			"routingKey": RoutingKey(event.Action),
		})
	}
}

func (p *EventPublisher) Stop() error {
	if p == nil || p.conn == nil {
		return nil
	}

	if closer, ok := p.channel.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			return err
		}
	}
	return p.conn.Close()
}
