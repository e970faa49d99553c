package doctors

import (
	"clinix-service/internal/app/config"
	"clinix-service/internal/app/contracts"
	"clinix-service/internal/app/services/shared/metrics"
	"clinix-service/internal/pkg/constvars"
	"clinix-service/internal/pkg/dto/responses"
	"clinix-service/internal/pkg/utils"
	"context"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type doctorUsecase struct {
	UserRepository  contracts.UserRepository
	RedisRepository contracts.RedisRepository
	Metrics         *metrics.Metrics
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewDoctorUsecase(
	userRepository contracts.UserRepository,
	redisRepository contracts.RedisRepository,
	metrics *metrics.Metrics,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	return &doctorUsecase{
		UserRepository:  userRepository,
		RedisRepository: redisRepository,
		Metrics:         metrics,
		InternalConfig:  internalConfig,
		Log:             logger,
	}
}

// ListDoctors serves the public directory from Redis when possible. Cache
// failures degrade to a database read.
func (uc *doctorUsecase) ListDoctors(ctx context.Context) ([]responses.Doctor, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.ListDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	cached, err := uc.RedisRepository.Get(ctx, constvars.CacheKeyDoctorDirectory)
	if err != nil {
		uc.Log.Warn("doctorUsecase.ListDoctors error reading cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	if cached != "" {
		var doctors []responses.Doctor
		if err := json.Unmarshal([]byte(cached), &doctors); err == nil {
			uc.Metrics.DoctorDirectoryCache.WithLabelValues("hit").Inc()
			return doctors, nil
		}
		uc.Log.Warn("doctorUsecase.ListDoctors discarding unreadable cache entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
	}
	uc.Metrics.DoctorDirectoryCache.WithLabelValues("miss").Inc()

	users, err := uc.UserRepository.FindByRole(ctx, constvars.RoleDoctor)
	if err != nil {
		uc.Log.Error("doctorUsecase.ListDoctors error finding doctors",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	doctors := utils.BuildDoctorListResponse(users)

	ttl := time.Duration(uc.InternalConfig.App.DoctorDirectoryCacheTTLInSeconds) * time.Second
	if ttl > 0 {
		err = uc.RedisRepository.Set(ctx, constvars.CacheKeyDoctorDirectory, doctors, ttl)
		if err != nil {
			uc.Log.Warn("doctorUsecase.ListDoctors error writing cache",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}

	return doctors, nil
}

func (uc *doctorUsecase) InvalidateDirectory(ctx context.Context) error {
	return uc.RedisRepository.Delete(ctx, constvars.CacheKeyDoctorDirectory)
}
