package prescriptions

import (
	"clinix-service/internal/app/contracts"
	"clinix-service/internal/app/contracts/mocks"
	"clinix-service/internal/app/models"
	"clinix-service/internal/app/services/shared/metrics"
	"clinix-service/internal/pkg/constvars"
	"clinix-service/internal/pkg/dto/requests"
	"clinix-service/internal/pkg/dto/responses"
	"clinix-service/internal/pkg/exceptions"
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type prescriptionFixture struct {
	prescriptionRepo *mocks.MockPrescriptionRepository
	appointmentRepo  *mocks.MockAppointmentRepository
	userRepo         *mocks.MockUserRepository
	archive          *mocks.MockPrescriptionArchive
	publisher        *mocks.MockEventPublisher
	usecase          contracts.PrescriptionUsecase

	patient     models.User
	doctor      models.User
	appointment *models.Appointment
}

func newPrescriptionFixture(status string) *prescriptionFixture {
	f := &prescriptionFixture{
		prescriptionRepo: new(mocks.MockPrescriptionRepository),
		appointmentRepo:  new(mocks.MockAppointmentRepository),
		userRepo:         new(mocks.MockUserRepository),
		archive:          new(mocks.MockPrescriptionArchive),
		publisher:        new(mocks.MockEventPublisher),
		patient:          models.User{ID: primitive.NewObjectID(), Name: "Priya", Email: "priya@example.com", Role: constvars.RolePatient},
		doctor:           models.User{ID: primitive.NewObjectID(), Name: "Dr. Neha", Email: "neha@clinic.com", Role: constvars.RoleDoctor},
	}
	f.appointment = &models.Appointment{
		ID:        primitive.NewObjectID(),
		PatientID: f.patient.ID,
		DoctorID:  f.doctor.ID,
		Date:      time.Date(2025, time.February, 3, 14, 30, 0, 0, time.UTC),
		Reason:    "Rash",
	}
	f.appointment.SetStatus(status)
	f.appointment.SetCreatedAtUpdatedAt()

	f.usecase = NewPrescriptionUsecase(
		f.prescriptionRepo,
		f.appointmentRepo,
		f.userRepo,
		f.archive,
		f.publisher,
		metrics.NewMetrics("test", prometheus.NewRegistry()),
		zap.NewNop(),
	)
	return f
}

func (f *prescriptionFixture) doctorCaller() models.Caller {
	return models.Caller{ID: f.doctor.ID.Hex(), Role: constvars.RoleDoctor, Name: f.doctor.Name}
}

func validPrescriptionRequest() *requests.CreatePrescription {
	return &requests.CreatePrescription{
		Symptoms:  "Itching",
		Diagnosis: "Contact dermatitis",
		Medicines: []requests.Medicine{
			{Name: "Cetirizine", Dosage: "10mg", Duration: "7 days"},
		},
		AdditionalNotes: "Avoid new soaps",
	}
}

func TestPrescriptionUsecase_Create(t *testing.T) {
	t.Run("Completed appointment gets a populated prescription", func(t *testing.T) {
		f := newPrescriptionFixture(constvars.AppointmentStatusCompleted)
		f.appointmentRepo.On("FindByID", mock.Anything, f.appointment.ID).Return(f.appointment, nil)
		f.prescriptionRepo.On("FindByAppointmentID", mock.Anything, f.appointment.ID).Return(nil, nil)
		f.prescriptionRepo.On("CreatePrescription", mock.Anything, mock.AnythingOfType("*models.Prescription")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*models.Prescription).ID = primitive.NewObjectID()
			}).
			Return("id", nil)
		f.userRepo.On("FindByIDs", mock.Anything, mock.Anything).Return([]models.User{f.patient, f.doctor}, nil)
		f.archive.On("Archive", mock.Anything, mock.AnythingOfType("*responses.Prescription")).Return("prescriptions/x.json", nil)
		f.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e *models.ClinicEvent) bool {
			return e.Type == constvars.EventPrescriptionCreated && e.AppointmentID == f.appointment.ID.Hex()
		})).Return(nil)

		result, err := f.usecase.Create(context.Background(), f.doctorCaller(), f.appointment.ID.Hex(), validPrescriptionRequest())

		require.NoError(t, err)
		assert.Equal(t, f.appointment.ID.Hex(), result.AppointmentID)
		assert.Equal(t, f.patient.ID.Hex(), result.PatientID)
		assert.Equal(t, f.doctor.ID.Hex(), result.DoctorID)
		assert.Equal(t, "Avoid new soaps", result.AdditionalNotes)
		require.Len(t, result.Medicines, 1)
		assert.Equal(t, "Cetirizine", result.Medicines[0].Name)
		require.NotNil(t, result.Appointment)
		assert.Equal(t, constvars.AppointmentStatusCompleted, result.Appointment.Status)
		require.NotNil(t, result.Patient)
		assert.Equal(t, "Priya", result.Patient.Name)
		f.archive.AssertExpectations(t)
		f.publisher.AssertExpectations(t)
	})

	t.Run("Notes alias fills additional notes", func(t *testing.T) {
		f := newPrescriptionFixture(constvars.AppointmentStatusCompleted)
		f.appointmentRepo.On("FindByID", mock.Anything, f.appointment.ID).Return(f.appointment, nil)
		f.prescriptionRepo.On("FindByAppointmentID", mock.Anything, f.appointment.ID).Return(nil, nil)
		f.prescriptionRepo.On("CreatePrescription", mock.Anything, mock.MatchedBy(func(p *models.Prescription) bool {
			return p.AdditionalNotes == "Follow up in two weeks"
		})).Return("id", nil)
		f.userRepo.On("FindByIDs", mock.Anything, mock.Anything).Return([]models.User{f.patient, f.doctor}, nil)
		f.archive.On("Archive", mock.Anything, mock.Anything).Return("", nil)
		f.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

		request := validPrescriptionRequest()
		request.AdditionalNotes = ""
		request.Notes = "Follow up in two weeks"
		result, err := f.usecase.Create(context.Background(), f.doctorCaller(), f.appointment.ID.Hex(), request)

		require.NoError(t, err)
		assert.Equal(t, "Follow up in two weeks", result.AdditionalNotes)
	})

	t.Run("Archive and publish failures do not fail creation", func(t *testing.T) {
		f := newPrescriptionFixture(constvars.AppointmentStatusCompleted)
		f.appointmentRepo.On("FindByID", mock.Anything, f.appointment.ID).Return(f.appointment, nil)
		f.prescriptionRepo.On("FindByAppointmentID", mock.Anything, f.appointment.ID).Return(nil, nil)
		f.prescriptionRepo.On("CreatePrescription", mock.Anything, mock.Anything).Return("id", nil)
		f.userRepo.On("FindByIDs", mock.Anything, mock.Anything).Return([]models.User{f.patient, f.doctor}, nil)
		f.archive.On("Archive", mock.Anything, mock.Anything).Return("", errors.New("bucket unavailable"))
		f.publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down"))

		result, err := f.usecase.Create(context.Background(), f.doctorCaller(), f.appointment.ID.Hex(), validPrescriptionRequest())

		require.NoError(t, err)
		assert.NotNil(t, result)
	})

	t.Run("Rejected until the appointment is completed", func(t *testing.T) {
		for _, status := range []string{
			constvars.AppointmentStatusPending,
			constvars.AppointmentStatusConfirmed,
			constvars.AppointmentStatusCancelled,
		} {
			f := newPrescriptionFixture(status)
			f.appointmentRepo.On("FindByID", mock.Anything, f.appointment.ID).Return(f.appointment, nil)

			_, err := f.usecase.Create(context.Background(), f.doctorCaller(), f.appointment.ID.Hex(), validPrescriptionRequest())

			assert.Equal(t, http.StatusBadRequest, exceptions.StatusCodeOf(err), "status %q", status)
			f.prescriptionRepo.AssertNotCalled(t, "CreatePrescription", mock.Anything, mock.Anything)
		}
	})

	t.Run("Second prescription for an appointment conflicts", func(t *testing.T) {
		f := newPrescriptionFixture(constvars.AppointmentStatusCompleted)
		f.appointmentRepo.On("FindByID", mock.Anything, f.appointment.ID).Return(f.appointment, nil)
		f.prescriptionRepo.On("FindByAppointmentID", mock.Anything, f.appointment.ID).
			Return(&models.Prescription{ID: primitive.NewObjectID(), AppointmentID: f.appointment.ID}, nil)

		_, err := f.usecase.Create(context.Background(), f.doctorCaller(), f.appointment.ID.Hex(), validPrescriptionRequest())

		assert.Equal(t, http.StatusConflict, exceptions.StatusCodeOf(err))
		f.prescriptionRepo.AssertNotCalled(t, "CreatePrescription", mock.Anything, mock.Anything)
	})

	t.Run("Concurrent duplicate caught by the unique index conflicts", func(t *testing.T) {
		f := newPrescriptionFixture(constvars.AppointmentStatusCompleted)
		f.appointmentRepo.On("FindByID", mock.Anything, f.appointment.ID).Return(f.appointment, nil)
		f.prescriptionRepo.On("FindByAppointmentID", mock.Anything, f.appointment.ID).Return(nil, nil)
		f.prescriptionRepo.On("CreatePrescription", mock.Anything, mock.Anything).
			Return("", exceptions.ErrPrescriptionAlreadyExist(errors.New("E11000 duplicate key error")))

		_, err := f.usecase.Create(context.Background(), f.doctorCaller(), f.appointment.ID.Hex(), validPrescriptionRequest())

		assert.Equal(t, http.StatusConflict, exceptions.StatusCodeOf(err))
		f.archive.AssertNotCalled(t, "Archive", mock.Anything, mock.Anything)
	})

	t.Run("Only the appointment's doctor may prescribe", func(t *testing.T) {
		f := newPrescriptionFixture(constvars.AppointmentStatusCompleted)
		f.appointmentRepo.On("FindByID", mock.Anything, f.appointment.ID).Return(f.appointment, nil)

		otherDoctor := models.Caller{ID: primitive.NewObjectID().Hex(), Role: constvars.RoleDoctor}
		_, err := f.usecase.Create(context.Background(), otherDoctor, f.appointment.ID.Hex(), validPrescriptionRequest())

		assert.Equal(t, http.StatusForbidden, exceptions.StatusCodeOf(err))
	})

	t.Run("Unknown and malformed appointments are not found", func(t *testing.T) {
		f := newPrescriptionFixture(constvars.AppointmentStatusCompleted)
		f.appointmentRepo.On("FindByID", mock.Anything, mock.Anything).Return(nil, nil)

		_, err := f.usecase.Create(context.Background(), f.doctorCaller(), primitive.NewObjectID().Hex(), validPrescriptionRequest())
		assert.Equal(t, http.StatusNotFound, exceptions.StatusCodeOf(err))

		_, err = f.usecase.Create(context.Background(), f.doctorCaller(), "nope", validPrescriptionRequest())
		assert.Equal(t, http.StatusNotFound, exceptions.StatusCodeOf(err))
	})
}

func TestPrescriptionUsecase_GetByAppointment(t *testing.T) {
	t.Run("Missing prescription is not found", func(t *testing.T) {
		f := newPrescriptionFixture(constvars.AppointmentStatusCompleted)
		f.prescriptionRepo.On("FindByAppointmentID", mock.Anything, f.appointment.ID).Return(nil, nil)

		_, err := f.usecase.GetByAppointment(context.Background(), f.appointment.ID.Hex())

		assert.Equal(t, http.StatusNotFound, exceptions.StatusCodeOf(err))
	})

	t.Run("Embeds appointment and both identities", func(t *testing.T) {
		f := newPrescriptionFixture(constvars.AppointmentStatusCompleted)
		stored := &models.Prescription{
			ID:            primitive.NewObjectID(),
			AppointmentID: f.appointment.ID,
			DoctorID:      f.doctor.ID,
			PatientID:     f.patient.ID,
			Diagnosis:     "Eczema",
			Medicines:     []models.Medicine{{Name: "Hydrocortisone", Dosage: "1%", Duration: "5 days"}},
		}
		f.prescriptionRepo.On("FindByAppointmentID", mock.Anything, f.appointment.ID).Return(stored, nil)
		f.userRepo.On("FindByIDs", mock.Anything, mock.Anything).Return([]models.User{f.patient, f.doctor}, nil)
		f.appointmentRepo.On("FindByIDs", mock.Anything, []primitive.ObjectID{f.appointment.ID}).Return([]models.Appointment{*f.appointment}, nil)

		result, err := f.usecase.GetByAppointment(context.Background(), f.appointment.ID.Hex())

		require.NoError(t, err)
		assert.Equal(t, "Eczema", result.Diagnosis)
		require.NotNil(t, result.Appointment)
		assert.Equal(t, f.appointment.ID.Hex(), result.Appointment.ID)
		assert.Equal(t, "Rash", result.Appointment.Reason)
		require.NotNil(t, result.Doctor)
		require.NotNil(t, result.Patient)
		assert.Equal(t, "neha@clinic.com", result.Doctor.Email)
	})
}

func TestPrescriptionUsecase_Lists(t *testing.T) {
	f := newPrescriptionFixture(constvars.AppointmentStatusCompleted)
	newer := models.Prescription{ID: primitive.NewObjectID(), AppointmentID: f.appointment.ID, DoctorID: f.doctor.ID, PatientID: f.patient.ID}
	newer.SetCreatedAtUpdatedAt()
	older := newer
	older.ID = primitive.NewObjectID()
	older.CreatedAt = newer.CreatedAt.Add(-24 * time.Hour)

	f.prescriptionRepo.On("FindByPatientID", mock.Anything, f.patient.ID).Return([]models.Prescription{newer, older}, nil)
	f.prescriptionRepo.On("FindByDoctorID", mock.Anything, f.doctor.ID).Return([]models.Prescription{newer, older}, nil)
	f.userRepo.On("FindByIDs", mock.Anything, []primitive.ObjectID{f.doctor.ID}).Return([]models.User{f.doctor}, nil)
	f.userRepo.On("FindByIDs", mock.Anything, []primitive.ObjectID{f.patient.ID}).Return([]models.User{f.patient}, nil)
	f.appointmentRepo.On("FindByIDs", mock.Anything, mock.Anything).Return([]models.Appointment{*f.appointment}, nil)

	patientView, err := f.usecase.ListForPatient(context.Background(), models.Caller{ID: f.patient.ID.Hex(), Role: constvars.RolePatient})
	require.NoError(t, err)
	require.Len(t, patientView, 2)
	assert.False(t, patientView[0].CreatedAt.Before(patientView[1].CreatedAt))
	assert.NotNil(t, patientView[0].Doctor)
	assert.Nil(t, patientView[0].Patient)

	doctorView, err := f.usecase.ListForDoctor(context.Background(), f.doctorCaller())
	require.NoError(t, err)
	require.Len(t, doctorView, 2)
	assert.NotNil(t, doctorView[0].Patient)
	assert.Nil(t, doctorView[0].Doctor)
	assert.IsType(t, &responses.Appointment{}, doctorView[1].Appointment)
}
