package controllers

import (
	"clinix-service/internal/app/config"
	"clinix-service/internal/app/contracts"
	"clinix-service/internal/pkg/constvars"
	"clinix-service/internal/pkg/dto/responses"
	"clinix-service/internal/pkg/utils"
	"context"
	"net/http"

	"go.uber.org/zap"
)

type DoctorController struct {
	Log            *zap.Logger
	DoctorUsecase  contracts.DoctorUsecase
	InternalConfig *config.InternalConfig
}

func NewDoctorController(logger *zap.Logger, doctorUsecase contracts.DoctorUsecase, internalConfig *config.InternalConfig) *DoctorController {
	return &DoctorController{
		Log:            logger,
		DoctorUsecase:  doctorUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *DoctorController) ListDoctors(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	doctors, err := ctrl.DoctorUsecase.ListDoctors(ctx)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}
	if doctors == nil {
		doctors = []responses.Doctor{}
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.DoctorList{
		Success:      true,
		TotalDoctors: len(doctors),
		Doctors:      doctors,
	})
}
