package prescriptions

import (
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
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type prescriptionUsecase struct {
	PrescriptionRepository contracts.PrescriptionRepository
	AppointmentRepository  contracts.AppointmentRepository
	UserRepository         contracts.UserRepository
	PrescriptionArchive    contracts.PrescriptionArchive
	EventPublisher         contracts.EventPublisher
	Metrics                *metrics.Metrics
	Log                    *zap.Logger
}

func NewPrescriptionUsecase(
	prescriptionRepository contracts.PrescriptionRepository,
	appointmentRepository contracts.AppointmentRepository,
	userRepository contracts.UserRepository,
	prescriptionArchive contracts.PrescriptionArchive,
	eventPublisher contracts.EventPublisher,
	metrics *metrics.Metrics,
	logger *zap.Logger,
) contracts.PrescriptionUsecase {
	return &prescriptionUsecase{
		PrescriptionRepository: prescriptionRepository,
		AppointmentRepository:  appointmentRepository,
		UserRepository:         userRepository,
		PrescriptionArchive:    prescriptionArchive,
		EventPublisher:         eventPublisher,
		Metrics:                metrics,
		Log:                    logger,
	}
}

func (uc *prescriptionUsecase) Create(ctx context.Context, caller models.Caller, appointmentID string, request *requests.CreatePrescription) (*responses.Prescription, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("prescriptionUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingCallerIDKey, caller.ID),
	)

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

	if appointment.DoctorID.Hex() != caller.ID {
		utils.LogSecurityEvent(uc.Log, "prescription_create_denied", requestID, "low",
			zap.String(constvars.LoggingCallerIDKey, caller.ID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		)
		return nil, exceptions.ErrNotAppointmentPrescriber(nil)
	}

	if appointment.Status != constvars.AppointmentStatusCompleted {
		return nil, exceptions.ErrAppointmentNotCompleted(fmt.Errorf("appointment status is %s", appointment.Status))
	}

	existing, err := uc.PrescriptionRepository.FindByAppointmentID(ctx, appointment.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrPrescriptionAlreadyExist(nil)
	}

	medicines := make([]models.Medicine, 0, len(request.Medicines))
	for _, medicine := range request.Medicines {
		medicines = append(medicines, models.Medicine{
			Name:     medicine.Name,
			Dosage:   medicine.Dosage,
			Duration: medicine.Duration,
		})
	}

	prescription := &models.Prescription{
		AppointmentID:   appointment.ID,
		DoctorID:        appointment.DoctorID,
		PatientID:       appointment.PatientID,
		Symptoms:        request.Symptoms,
		Diagnosis:       request.Diagnosis,
		Medicines:       medicines,
		AdditionalNotes: request.ResolvedNotes(),
	}
	prescription.SetCreatedAtUpdatedAt()

	_, err = uc.PrescriptionRepository.CreatePrescription(ctx, prescription)
	if err != nil {
		if exceptions.StatusCodeOf(err) != constvars.StatusConflict {
			uc.Log.Error("prescriptionUsecase.Create error creating prescription",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
		return nil, err
	}
	uc.Metrics.PrescriptionsCreated.Inc()

	identities, err := users.LoadIdentities(ctx, uc.UserRepository, prescription.DoctorID, prescription.PatientID)
	if err != nil {
		return nil, err
	}
	response := utils.BuildPrescriptionResponse(prescription, appointment, identities, utils.PopulateBoth)

	objectName, err := uc.PrescriptionArchive.Archive(ctx, &response)
	if err != nil {
		uc.Metrics.ArchiveFailures.Inc()
		uc.Log.Warn("prescriptionUsecase.Create failed to archive prescription",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPrescriptionKey, response.ID),
			zap.Error(err),
		)
	} else if objectName != "" {
		uc.Log.Debug("prescriptionUsecase.Create archived prescription",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("object_name", objectName),
		)
	}

	events.Dispatch(ctx, uc.EventPublisher, uc.Log, uc.Metrics, &models.ClinicEvent{
		Type:           constvars.EventPrescriptionCreated,
		AppointmentID:  response.AppointmentID,
		PrescriptionID: response.ID,
		PatientID:      response.PatientID,
		DoctorID:       response.DoctorID,
		OccurredAt:     prescription.CreatedAt,
	})

	utils.LogBusinessEvent(uc.Log, constvars.EventPrescriptionCreated, requestID,
		zap.String(constvars.LoggingPrescriptionKey, response.ID),
		zap.String(constvars.LoggingAppointmentIDKey, response.AppointmentID),
	)
	return &response, nil
}

func (uc *prescriptionUsecase) GetByAppointment(ctx context.Context, appointmentID string) (*responses.Prescription, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("prescriptionUsecase.GetByAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrPrescriptionNotExist(err)
	}
	prescription, err := uc.PrescriptionRepository.FindByAppointmentID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if prescription == nil {
		return nil, exceptions.ErrPrescriptionNotExist(nil)
	}

	populated, err := uc.populate(ctx, []models.Prescription{*prescription}, utils.PopulateBoth)
	if err != nil {
		return nil, err
	}
	return &populated[0], nil
}

func (uc *prescriptionUsecase) ListForPatient(ctx context.Context, caller models.Caller) ([]responses.Prescription, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("prescriptionUsecase.ListForPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCallerIDKey, caller.ID),
	)

	patientID, err := primitive.ObjectIDFromHex(caller.ID)
	if err != nil {
		return nil, exceptions.ErrPatientNotExist(err)
	}
	prescriptions, err := uc.PrescriptionRepository.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return uc.populate(ctx, prescriptions, utils.PopulateDoctor)
}

func (uc *prescriptionUsecase) ListForDoctor(ctx context.Context, caller models.Caller) ([]responses.Prescription, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("prescriptionUsecase.ListForDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCallerIDKey, caller.ID),
	)

	doctorID, err := primitive.ObjectIDFromHex(caller.ID)
	if err != nil {
		return nil, exceptions.ErrDoctorNotExist(err)
	}
	prescriptions, err := uc.PrescriptionRepository.FindByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	return uc.populate(ctx, prescriptions, utils.PopulatePatient)
}

// populate embeds the source appointment and the requested identities.
func (uc *prescriptionUsecase) populate(ctx context.Context, prescriptions []models.Prescription, populate utils.AppointmentPopulation) ([]responses.Prescription, error) {
	userIDs := make([]primitive.ObjectID, 0, len(prescriptions)*2)
	appointmentIDs := make([]primitive.ObjectID, 0, len(prescriptions))
	for _, prescription := range prescriptions {
		appointmentIDs = append(appointmentIDs, prescription.AppointmentID)
		if populate.Patient {
			userIDs = append(userIDs, prescription.PatientID)
		}
		if populate.Doctor {
			userIDs = append(userIDs, prescription.DoctorID)
		}
	}

	identities, err := users.LoadIdentities(ctx, uc.UserRepository, userIDs...)
	if err != nil {
		return nil, err
	}

	appointments, err := uc.AppointmentRepository.FindByIDs(ctx, appointmentIDs)
	if err != nil {
		return nil, err
	}
	appointmentsByID := make(map[primitive.ObjectID]*models.Appointment, len(appointments))
	for i := range appointments {
		appointmentsByID[appointments[i].ID] = &appointments[i]
	}

	result := make([]responses.Prescription, 0, len(prescriptions))
	for i := range prescriptions {
		appointment := appointmentsByID[prescriptions[i].AppointmentID]
		result = append(result, utils.BuildPrescriptionResponse(&prescriptions[i], appointment, identities, populate))
	}
	return result, nil
}
