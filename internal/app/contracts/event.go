package contracts

import (
	"clinix-service/internal/app/models"
	"context"
)

type EventPublisher interface {
	Publish(ctx context.Context, event *models.ClinicEvent) error
}
