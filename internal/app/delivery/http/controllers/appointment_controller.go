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

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
	InternalConfig     *config.InternalConfig
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase, internalConfig *config.InternalConfig) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
		InternalConfig:     internalConfig,
	}
}

func (ctrl *AppointmentController) Book(w http.ResponseWriter, r *http.Request) {
	caller, ok := utils.GetCaller(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCallerMissing(nil))
		return
	}

	// Bind body to request
	request := new(requests.BookAppointment)
	err := utils.ParseJSONBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	// Sanitize request
	utils.SanitizeBookAppointmentRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	appointment, err := ctrl.AppointmentUsecase.Book(ctx, caller, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, responses.AppointmentDetail{
		Success:     true,
		Message:     constvars.AppointmentBookedSuccess,
		Appointment: *appointment,
	})
}

func (ctrl *AppointmentController) ListMine(w http.ResponseWriter, r *http.Request) {
	caller, ok := utils.GetCaller(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCallerMissing(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	appointments, err := ctrl.AppointmentUsecase.ListForPatient(ctx, caller)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, appointmentList(appointments))
}

func (ctrl *AppointmentController) ListForDoctor(w http.ResponseWriter, r *http.Request) {
	caller, ok := utils.GetCaller(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCallerMissing(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	appointments, err := ctrl.AppointmentUsecase.ListForDoctor(ctx, caller)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, appointmentList(appointments))
}

func (ctrl *AppointmentController) ListAll(w http.ResponseWriter, r *http.Request) {
	caller, ok := utils.GetCaller(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCallerMissing(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	appointments, err := ctrl.AppointmentUsecase.ListAll(ctx, caller)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, appointmentList(appointments))
}

func (ctrl *AppointmentController) GetByID(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, constvars.URLParamID)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	appointment, err := ctrl.AppointmentUsecase.GetByID(ctx, appointmentID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.AppointmentDetail{
		Success:     true,
		Appointment: *appointment,
	})
}

func (ctrl *AppointmentController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	caller, ok := utils.GetCaller(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCallerMissing(nil))
		return
	}
	appointmentID := chi.URLParam(r, constvars.URLParamID)

	request := new(requests.UpdateAppointmentStatus)
	err := utils.ParseJSONBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Status membership is checked by the usecase.
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	appointment, err := ctrl.AppointmentUsecase.UpdateStatus(ctx, caller, appointmentID, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.AppointmentDetail{
		Success:     true,
		Message:     constvars.AppointmentStatusUpdatedSuccess,
		Appointment: *appointment,
	})
}

func appointmentList(appointments []responses.Appointment) responses.AppointmentList {
	if appointments == nil {
		appointments = []responses.Appointment{}
	}
	return responses.AppointmentList{
		Success:           true,
		TotalAppointments: len(appointments),
		Appointments:      appointments,
	}
}
