package appointments

import (
	"clinix-service/internal/app/config"
	"clinix-service/internal/app/contracts"
	"clinix-service/internal/app/models"
	"clinix-service/internal/app/services/core/users"
	"clinix-service/internal/app/services/shared/events"
	"clinix-service/internal/app/services/shared/metrics"
	"clinix-service/internal/pkg/constvars"
	"clinix-service/internal/pkg/dto/requests"
	"clinix-service/internal/pkg/dto/responses"
	"clinix-service/internal/pkg/exceptions"
	"clinix-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	UserRepository        contracts.UserRepository
	TransitionPolicy      contracts.TransitionPolicy
	EventPublisher        contracts.EventPublisher
	Metrics               *metrics.Metrics
	InternalConfig        *config.InternalConfig
	Location              *time.Location
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	userRepository contracts.UserRepository,
	transitionPolicy contracts.TransitionPolicy,
	eventPublisher contracts.EventPublisher,
	metrics *metrics.Metrics,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logger.Warn("appointmentUsecase unknown timezone, falling back to UTC",
			zap.String("timezone", internalConfig.App.Timezone),
			zap.Error(err),
		)
		location = time.UTC
	}

	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		UserRepository:        userRepository,
		TransitionPolicy:      transitionPolicy,
		EventPublisher:        eventPublisher,
		Metrics:               metrics,
		InternalConfig:        internalConfig,
		Location:              location,
		Log:                   logger,
	}
}

func (uc *appointmentUsecase) Book(ctx context.Context, caller models.Caller, request *requests.BookAppointment) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.Book called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCallerIDKey, caller.ID),
	)

	rawPatientID := request.PatientID
	if rawPatientID == "" {
		rawPatientID = caller.ID
	}
	patientID, err := primitive.ObjectIDFromHex(rawPatientID)
	if err != nil {
		return nil, exceptions.ErrPatientNotExist(err)
	}
	doctorID, err := primitive.ObjectIDFromHex(request.DoctorID)
	if err != nil {
		return nil, exceptions.ErrDoctorNotExist(err)
	}
	date, err := utils.ParseAppointmentDate(request.Date, uc.Location)
	if err != nil {
		return nil, err
	}

	patient, err := uc.UserRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if !patient.HasRole(constvars.RolePatient) {
		return nil, exceptions.ErrPatientNotExist(nil)
	}

	doctor, err := uc.UserRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if !doctor.HasRole(constvars.RoleDoctor) {
		return nil, exceptions.ErrDoctorNotExist(nil)
	}

	existing, err := uc.AppointmentRepository.FindActiveByDoctorAndDate(ctx, doctorID, date)
	if err != nil {
		uc.Log.Error("appointmentUsecase.Book error checking doctor slot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existing != nil {
		uc.Metrics.AppointmentBookingConflict.Inc()
		return nil, exceptions.ErrAppointmentSlotTaken(fmt.Errorf("appointment %s holds the slot", existing.ID.Hex()))
	}

	appointment := &models.Appointment{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      date,
		Reason:    request.Reason,
	}
	appointment.SetStatus(constvars.AppointmentStatusPending)
	appointment.SetCreatedAtUpdatedAt()

	_, err = uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		if exceptions.StatusCodeOf(err) == constvars.StatusConflict {
			uc.Metrics.AppointmentBookingConflict.Inc()
		} else {
			uc.Log.Error("appointmentUsecase.Book error creating appointment",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
		return nil, err
	}
	uc.Metrics.AppointmentsBooked.Inc()

	identities := utils.BuildIdentitySet([]models.User{*patient, *doctor})
	response := utils.BuildAppointmentResponse(appointment, identities, utils.PopulateBoth)

	events.Dispatch(ctx, uc.EventPublisher, uc.Log, uc.Metrics, &models.ClinicEvent{
		Type:          constvars.EventAppointmentBooked,
		AppointmentID: response.ID,
		PatientID:     response.PatientID,
		DoctorID:      response.DoctorID,
		Status:        response.Status,
		OccurredAt:    appointment.CreatedAt,
	})

	utils.LogBusinessEvent(uc.Log, constvars.EventAppointmentBooked, requestID,
		zap.String(constvars.LoggingAppointmentIDKey, response.ID),
		zap.String(constvars.LoggingDoctorIDKey, response.DoctorID),
		zap.String(constvars.LoggingPatientIDKey, response.PatientID),
	)
	return &response, nil
}

func (uc *appointmentUsecase) ListForPatient(ctx context.Context, caller models.Caller) ([]responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.ListForPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCallerIDKey, caller.ID),
	)

	patientID, err := primitive.ObjectIDFromHex(caller.ID)
	if err != nil {
		return nil, exceptions.ErrPatientNotExist(err)
	}

	appointments, err := uc.AppointmentRepository.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return uc.populate(ctx, appointments, utils.PopulateDoctor)
}

func (uc *appointmentUsecase) ListForDoctor(ctx context.Context, caller models.Caller) ([]responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.ListForDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCallerIDKey, caller.ID),
	)

	doctorID, err := primitive.ObjectIDFromHex(caller.ID)
	if err != nil {
		return nil, exceptions.ErrDoctorNotExist(err)
	}

	appointments, err := uc.AppointmentRepository.FindByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	return uc.populate(ctx, appointments, utils.PopulatePatient)
}

func (uc *appointmentUsecase) ListAll(ctx context.Context, caller models.Caller) ([]responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.ListAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCallerIDKey, caller.ID),
	)

	if caller.Role != constvars.RoleAdmin {
		return nil, exceptions.ErrNotMatchRoleType(fmt.Errorf("role %q cannot list every appointment", caller.Role))
	}

	appointments, err := uc.AppointmentRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return uc.populate(ctx, appointments, utils.PopulateBoth)
}

func (uc *appointmentUsecase) GetByID(ctx context.Context, appointmentID string) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.GetByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.findAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	populated, err := uc.populate(ctx, []models.Appointment{*appointment}, utils.PopulateBoth)
	if err != nil {
		return nil, err
	}
	return &populated[0], nil
}

func (uc *appointmentUsecase) UpdateStatus(ctx context.Context, caller models.Caller, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.UpdateStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingStatusKey, request.Status),
	)

	if !models.IsValidAppointmentStatus(request.Status) {
		return nil, exceptions.ErrInvalidAppointmentStatus(fmt.Errorf("status %q", request.Status))
	}

	appointment, err := uc.findAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if appointment.DoctorID.Hex() != caller.ID {
		utils.LogSecurityEvent(uc.Log, "appointment_update_denied", requestID, "low",
			zap.String(constvars.LoggingCallerIDKey, caller.ID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		)
		return nil, exceptions.ErrNotAppointmentDoctor(nil)
	}

	if !uc.TransitionPolicy.Allow(appointment.Status, request.Status) {
		return nil, exceptions.ErrStatusTransitionNotAllowed(fmt.Errorf("%s -> %s", appointment.Status, request.Status))
	}

	updated, err := uc.AppointmentRepository.UpdateStatus(ctx, appointment.ID, request.Status)
	if err != nil {
		if exceptions.StatusCodeOf(err) != constvars.StatusConflict {
			uc.Log.Error("appointmentUsecase.UpdateStatus error updating appointment",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
		return nil, err
	}
	if updated == nil {
		return nil, exceptions.ErrAppointmentNotExist(errors.New("appointment vanished during update"))
	}
	uc.Metrics.AppointmentStatusUpdates.WithLabelValues(updated.Status).Inc()

	populated, err := uc.populate(ctx, []models.Appointment{*updated}, utils.PopulateBoth)
	if err != nil {
		return nil, err
	}
	response := populated[0]

	events.Dispatch(ctx, uc.EventPublisher, uc.Log, uc.Metrics, &models.ClinicEvent{
		Type:          constvars.EventAppointmentStatusUpdated,
		AppointmentID: response.ID,
		PatientID:     response.PatientID,
		DoctorID:      response.DoctorID,
		Status:        response.Status,
		OccurredAt:    updated.UpdatedAt,
	})

	utils.LogBusinessEvent(uc.Log, constvars.EventAppointmentStatusUpdated, requestID,
		zap.String(constvars.LoggingAppointmentIDKey, response.ID),
		zap.String(constvars.LoggingStatusKey, response.Status),
	)
	return &response, nil
}

// findAppointment treats malformed ids like unknown ones.
func (uc *appointmentUsecase) findAppointment(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrAppointmentNotExist(err)
	}
	appointment, err := uc.AppointmentRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotExist(nil)
	}
	return appointment, nil
}

func (uc *appointmentUsecase) populate(ctx context.Context, appointments []models.Appointment, populate utils.AppointmentPopulation) ([]responses.Appointment, error) {
	ids := make([]primitive.ObjectID, 0, len(appointments)*2)
	for _, appointment := range appointments {
		if populate.Patient {
			ids = append(ids, appointment.PatientID)
		}
		if populate.Doctor {
			ids = append(ids, appointment.DoctorID)
		}
	}

	identities, err := users.LoadIdentities(ctx, uc.UserRepository, ids...)
	if err != nil {
		return nil, err
	}
	return utils.BuildAppointmentListResponse(appointments, identities, populate), nil
}
