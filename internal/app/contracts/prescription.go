package contracts

import (
	"clinix-service/internal/app/models"
	"clinix-service/internal/pkg/dto/requests"
	"clinix-service/internal/pkg/dto/responses"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PrescriptionUsecase interface {
	Create(ctx context.Context, caller models.Caller, appointmentID string, request *requests.CreatePrescription) (*responses.Prescription, error)
	GetByAppointment(ctx context.Context, appointmentID string) (*responses.Prescription, error)
	ListForPatient(ctx context.Context, caller models.Caller) ([]responses.Prescription, error)
	ListForDoctor(ctx context.Context, caller models.Caller) ([]responses.Prescription, error)
}

type PrescriptionRepository interface {
	// CreatePrescription fails with AlreadyExists when the appointment
	// already carries a prescription.
	CreatePrescription(ctx context.Context, prescription *models.Prescription) (prescriptionID string, err error)
	FindByAppointmentID(ctx context.Context, appointmentID primitive.ObjectID) (*models.Prescription, error)
	FindByPatientID(ctx context.Context, patientID primitive.ObjectID) ([]models.Prescription, error)
	FindByDoctorID(ctx context.Context, doctorID primitive.ObjectID) ([]models.Prescription, error)
	EnsureIndexes(ctx context.Context) error
}

// PrescriptionArchive keeps an immutable copy of issued prescriptions.
type PrescriptionArchive interface {
	Archive(ctx context.Context, prescription *responses.Prescription) (objectName string, err error)
}
