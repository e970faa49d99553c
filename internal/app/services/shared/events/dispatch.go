package events

import (
	"clinix-service/internal/app/contracts"
	"clinix-service/internal/app/models"
	"clinix-service/internal/app/services/shared/metrics"
	"clinix-service/internal/pkg/constvars"
	"clinix-service/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

// Dispatch publishes event after the record it describes has been persisted.
// A failed publish is logged and counted but never returned to the caller.
func Dispatch(ctx context.Context, publisher contracts.EventPublisher, log *zap.Logger, m *metrics.Metrics, event *models.ClinicEvent) {
	err := publisher.Publish(ctx, event)
	if err == nil {
		return
	}
	if m != nil {
		m.EventPublishFailures.WithLabelValues(event.Type).Inc()
	}
	log.Warn("events.Dispatch failed to publish clinic event",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingEventTypeKey, event.Type),
		zap.String(constvars.LoggingAppointmentIDKey, event.AppointmentID),
		zap.Error(err),
	)
}
