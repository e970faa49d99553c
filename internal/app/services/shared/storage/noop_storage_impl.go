package storage

import (
	"clinix-service/internal/app/contracts"
	"clinix-service/internal/pkg/dto/responses"
	"context"
)

type noopStorage struct{}

// NewNoopPrescriptionArchive is wired when Minio is disabled.
func NewNoopPrescriptionArchive() contracts.PrescriptionArchive {
	return noopStorage{}
}

func (noopStorage) Archive(ctx context.Context, prescription *responses.Prescription) (string, error) {
	return "", nil
}
