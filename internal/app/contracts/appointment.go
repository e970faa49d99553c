package contracts

import (
	"clinix-service/internal/app/models"
	"clinix-service/internal/pkg/dto/requests"
	"clinix-service/internal/pkg/dto/responses"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AppointmentUsecase interface {
	Book(ctx context.Context, caller models.Caller, request *requests.BookAppointment) (*responses.Appointment, error)
	ListForPatient(ctx context.Context, caller models.Caller) ([]responses.Appointment, error)
	ListForDoctor(ctx context.Context, caller models.Caller) ([]responses.Appointment, error)
	ListAll(ctx context.Context, caller models.Caller) ([]responses.Appointment, error)
	GetByID(ctx context.Context, appointmentID string) (*responses.Appointment, error)
	UpdateStatus(ctx context.Context, caller models.Caller, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error)
}

type AppointmentRepository interface {
	// CreateAppointment fails with a conflict when a non-terminal appointment
	// already holds the doctor's slot.
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (appointmentID string, err error)
	FindByID(ctx context.Context, appointmentID primitive.ObjectID) (*models.Appointment, error)
	FindActiveByDoctorAndDate(ctx context.Context, doctorID primitive.ObjectID, date time.Time) (*models.Appointment, error)
	FindByPatientID(ctx context.Context, patientID primitive.ObjectID) ([]models.Appointment, error)
	FindByDoctorID(ctx context.Context, doctorID primitive.ObjectID) ([]models.Appointment, error)
	FindByIDs(ctx context.Context, appointmentIDs []primitive.ObjectID) ([]models.Appointment, error)
	FindAll(ctx context.Context) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, appointmentID primitive.ObjectID, status string) (*models.Appointment, error)
	EnsureIndexes(ctx context.Context) error
}

// TransitionPolicy decides whether an appointment may move between statuses.
type TransitionPolicy interface {
	Allow(from, to string) bool
}
