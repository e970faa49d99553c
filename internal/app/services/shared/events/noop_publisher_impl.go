package events

import (
	"clinix-service/internal/app/contracts"
	"clinix-service/internal/app/models"
	"clinix-service/internal/pkg/constvars"
	"context"

	"go.uber.org/zap"
)

type noopPublisher struct {
	Log *zap.Logger
}

// NewNoopPublisher is wired when RabbitMQ is disabled; events are only logged.
func NewNoopPublisher(log *zap.Logger) contracts.EventPublisher {
	return &noopPublisher{Log: log}
}

func (p *noopPublisher) Publish(ctx context.Context, event *models.ClinicEvent) error {
	p.Log.Debug("noopPublisher.Publish event dropped",
		zap.String(constvars.LoggingEventTypeKey, event.Type),
		zap.String(constvars.LoggingAppointmentIDKey, event.AppointmentID),
	)
	return nil
}
