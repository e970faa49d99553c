package controllers

import (
	"clinix-service/internal/app/config"
	"clinix-service/internal/pkg/constvars"
	"clinix-service/internal/pkg/dto/responses"
	"clinix-service/internal/pkg/utils"
	"net/http"
)

type HealthController struct {
	InternalConfig *config.InternalConfig
}

func NewHealthController(internalConfig *config.InternalConfig) *HealthController {
	return &HealthController{InternalConfig: internalConfig}
}

func (ctrl *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	name := constvars.AppName
	if ctrl.InternalConfig != nil && ctrl.InternalConfig.App.Name != "" {
		name = ctrl.InternalConfig.App.Name
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.Health{OK: true, Name: name})
}
