package contracts

import (
	"clinix-service/internal/pkg/dto/responses"
	"context"
)

type DoctorUsecase interface {
	ListDoctors(ctx context.Context) ([]responses.Doctor, error)
	InvalidateDirectory(ctx context.Context) error
}
