package auth

import (
	"clinix-service/internal/app/config"
	"clinix-service/internal/app/contracts"
	"clinix-service/internal/app/models"
	"clinix-service/internal/app/services/shared/metrics"
	"clinix-service/internal/pkg/constvars"
	"clinix-service/internal/pkg/dto/requests"
	"clinix-service/internal/pkg/dto/responses"
	"clinix-service/internal/pkg/exceptions"
	"clinix-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository  contracts.UserRepository
	TokenManager    contracts.TokenManager
	ResourceLimiter contracts.ResourceLimiter
	DoctorUsecase   contracts.DoctorUsecase
	Metrics         *metrics.Metrics
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	tokenManager contracts.TokenManager,
	resourceLimiter contracts.ResourceLimiter,
	doctorUsecase contracts.DoctorUsecase,
	metrics *metrics.Metrics,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository:  userRepository,
		TokenManager:    tokenManager,
		ResourceLimiter: resourceLimiter,
		DoctorUsecase:   doctorUsecase,
		Metrics:         metrics,
		InternalConfig:  internalConfig,
		Log:             logger,
	}
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.RegisterUser) (*responses.AuthResult, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if request.Role != constvars.RolePatient && request.Role != constvars.RoleDoctor {
		return nil, exceptions.ErrInvalidRoleType(fmt.Errorf("role %q cannot be self-registered", request.Role))
	}

	existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("authUsecase.Register error finding user by email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		Name:     request.Name,
		Email:    request.Email,
		Password: hashedPassword,
		Role:     request.Role,
	}
	if request.Role == constvars.RoleDoctor {
		user.Specialization = request.Specialization
	}
	user.SetCreatedAtUpdatedAt()

	_, err = uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		uc.Log.Error("authUsecase.Register error creating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if user.Role == constvars.RoleDoctor {
		err = uc.DoctorUsecase.InvalidateDirectory(ctx)
		if err != nil {
			uc.Log.Warn("authUsecase.Register failed to invalidate doctor directory",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}

	result, err := uc.issueToken(ctx, user)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCallerIDKey, user.ID.Hex()),
		zap.String(constvars.LoggingCallerRoleKey, user.Role),
	)
	return result, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.LoginUser) (*responses.AuthResult, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	limit, err := uc.ResourceLimiter.ApplyResourceLimiter(ctx, &contracts.ApplyResourceLimiterInput{
		ResourceName:      request.Email,
		LimiterGroupName:  constvars.LimiterGroupLoginAttempts,
		WindowDurationSec: uc.InternalConfig.App.LoginAttemptWindowInSeconds,
		MaxQuota:          uc.InternalConfig.App.LoginMaxAttempts,
	})
	if err != nil {
		// Fail open when the limiter store is unavailable.
		uc.Log.Warn("authUsecase.Login limiter unavailable, allowing attempt",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	} else if !limit.Allowed {
		uc.Metrics.LoginAttemptsRejected.Inc()
		utils.LogSecurityEvent(uc.Log, "login_attempts_exceeded", requestID, "medium",
			zap.Int("retry_after_seconds", limit.RetryAfterSecs),
		)
		return nil, exceptions.ErrLoginAttemptsExceeded(fmt.Errorf("retry after %d seconds", limit.RetryAfterSecs))
	}

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("authUsecase.Login error finding user by email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(errors.New("email or password mismatch"))
	}

	result, err := uc.issueToken(ctx, user)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCallerIDKey, user.ID.Hex()),
		zap.String(constvars.LoggingCallerRoleKey, user.Role),
	)
	return result, nil
}

func (uc *authUsecase) issueToken(ctx context.Context, user *models.User) (*responses.AuthResult, error) {
	token, err := uc.TokenManager.CreateToken(ctx, &contracts.CreateTokenInput{
		UserID: user.ID.Hex(),
		Role:   user.Role,
		Name:   user.Name,
	})
	if err != nil {
		return nil, err
	}
	return &responses.AuthResult{
		Token: token.Token,
		User:  utils.BuildUserResponse(user),
	}, nil
}
