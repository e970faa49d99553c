package controllers

import (
	"clinix-service/internal/app/config"
	"clinix-service/internal/app/contracts"
	"clinix-service/internal/pkg/constvars"
	"clinix-service/internal/pkg/dto/requests"
	"clinix-service/internal/pkg/dto/responses"
	"clinix-service/internal/pkg/exceptions"
	"clinix-service/internal/pkg/utils"
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PrescriptionController struct {
	Log                 *zap.Logger
	PrescriptionUsecase contracts.PrescriptionUsecase
	InternalConfig      *config.InternalConfig
}

func NewPrescriptionController(logger *zap.Logger, prescriptionUsecase contracts.PrescriptionUsecase, internalConfig *config.InternalConfig) *PrescriptionController {
	return &PrescriptionController{
		Log:                 logger,
		PrescriptionUsecase: prescriptionUsecase,
		InternalConfig:      internalConfig,
	}
}

func (ctrl *PrescriptionController) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := utils.GetCaller(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCallerMissing(nil))
		return
	}
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	// Bind body to request
	request := new(requests.CreatePrescription)
	err := utils.ParseJSONBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	// Sanitize request
	utils.SanitizeCreatePrescriptionRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	prescription, err := ctrl.PrescriptionUsecase.Create(ctx, caller, appointmentID, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, responses.PrescriptionDetail{
		Success:      true,
		Message:      constvars.PrescriptionCreatedSuccess,
		Prescription: *prescription,
	})
}

func (ctrl *PrescriptionController) GetByAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	prescription, err := ctrl.PrescriptionUsecase.GetByAppointment(ctx, appointmentID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.PrescriptionDetail{
		Success:      true,
		Prescription: *prescription,
	})
}

func (ctrl *PrescriptionController) ListForPatient(w http.ResponseWriter, r *http.Request) {
	caller, ok := utils.GetCaller(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCallerMissing(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	prescriptions, err := ctrl.PrescriptionUsecase.ListForPatient(ctx, caller)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, prescriptionList(prescriptions))
}

func (ctrl *PrescriptionController) ListForDoctor(w http.ResponseWriter, r *http.Request) {
	caller, ok := utils.GetCaller(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCallerMissing(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	prescriptions, err := ctrl.PrescriptionUsecase.ListForDoctor(ctx, caller)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, prescriptionList(prescriptions))
}

func prescriptionList(prescriptions []responses.Prescription) responses.PrescriptionList {
	if prescriptions == nil {
		prescriptions = []responses.Prescription{}
	}
	return responses.PrescriptionList{
		Success:            true,
		TotalPrescriptions: len(prescriptions),
		Prescriptions:      prescriptions,
	}
}
