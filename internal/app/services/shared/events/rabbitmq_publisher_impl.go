package events

import (
	"clinix-service/internal/app/contracts"
	"clinix-service/internal/app/models"
	"clinix-service/internal/pkg/constvars"
	"clinix-service/internal/pkg/exceptions"
	"context"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type rabbitMQPublisher struct {
	mu      sync.Mutex
	Channel *amqp091.Channel
	Queue   string
}

// NewRabbitMQPublisher declares the durable events queue and publishes clinic
// events on it through the default exchange.
func NewRabbitMQPublisher(rabbitMQConnection *amqp091.Connection, queue string) (contracts.EventPublisher, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		channel.Close()
		return nil, err
	}

	return &rabbitMQPublisher{
		Channel: channel,
		Queue:   queue,
	}, nil
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, event *models.ClinicEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type": "JSON",
		"event_type":   event.Type,
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Type:         event.Type,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     0,
		Headers:      headers,
		Timestamp:    event.OccurredAt,
	}

	// amqp091 channels are not safe for concurrent publishing.
	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}

	return nil
}
