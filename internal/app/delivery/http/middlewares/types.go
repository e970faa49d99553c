package middlewares

import (
	"clinix-service/internal/app/config"
	"clinix-service/internal/app/contracts"
	"clinix-service/internal/app/services/shared/metrics"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	TokenManager   contracts.TokenManager
	Metrics        *metrics.Metrics
}

func NewMiddlewares(
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
	tokenManager contracts.TokenManager,
	metrics *metrics.Metrics,
) *Middlewares {
	return &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
		TokenManager:   tokenManager,
		Metrics:        metrics,
	}
}
