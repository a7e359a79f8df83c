package events

import (
	"context"
	"fmt"

	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Channel is the part of *amqp091.Channel the publisher needs.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type rabbitMQPublisher struct {
	Channel Channel
	Queue   string
}

// NewRabbitMQPublisher opens a channel on conn and declares a durable queue
// for appointment events.
func NewRabbitMQPublisher(conn *amqp091.Connection, queue string) (contracts.AppointmentEventPublisher, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		channel.Close()
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}

	return NewChannelPublisher(channel, queue), nil
}

func NewChannelPublisher(channel Channel, queue string) contracts.AppointmentEventPublisher {
	return &rabbitMQPublisher{Channel: channel, Queue: queue}
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, event *models.AppointmentEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Type:         event.Type,
		Timestamp:    event.OccurredAt,
		Headers: amqp091.Table{
			"message_type":     "JSON",
			"requeue_strategy": "DROP",
		},
	}

	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", event.Type, err)
	}
	return nil
}

type logPublisher struct {
	Log *zap.Logger
}

// NewLogPublisher stands in when no broker is configured; events only reach
// the debug log.
func NewLogPublisher(logger *zap.Logger) contracts.AppointmentEventPublisher {
	return &logPublisher{Log: logger}
}

func (p *logPublisher) Publish(ctx context.Context, event *models.AppointmentEvent) error {
	p.Log.Debug("appointment event",
		zap.String(constvars.LoggingEventTypeKey, event.Type),
		zap.Int64(constvars.LoggingAppointmentIDKey, event.AppointmentID),
	)
	return nil
}
