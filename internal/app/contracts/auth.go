package contracts

import (
	"clinix-service/internal/app/models"
	"clinix-service/internal/pkg/dto/requests"
	"clinix-service/internal/pkg/dto/responses"
	"context"
	"time"
)

type AuthUsecase interface {
	Register(ctx context.Context, request *requests.RegisterUser) (*responses.AuthResult, error)
	Login(ctx context.Context, request *requests.LoginUser) (*responses.AuthResult, error)
}

type CreateTokenInput struct {
	UserID string
	Role   string
	Name   string
}

type CreateTokenOutput struct {
	Token     string
	ExpiresAt time.Time
}

type VerifyTokenInput struct {
	Token string
}

type VerifyTokenOutput struct {
	Caller    models.Caller
	ExpiresAt time.Time
}

// TokenManager issues and verifies self-contained bearer credentials.
type TokenManager interface {
	CreateToken(ctx context.Context, in *CreateTokenInput) (*CreateTokenOutput, error)
	VerifyToken(ctx context.Context, in *VerifyTokenInput) (*VerifyTokenOutput, error)
}

type ApplyResourceLimiterInput struct {
	// ResourceName is the entity being limited, such as an email.
	ResourceName string
	// LimiterGroupName namespaces the limiter key.
	LimiterGroupName string
	// WindowDurationSec defines the fixed window length in seconds.
	WindowDurationSec int
	// MaxQuota is the max number of hits allowed within the window.
	MaxQuota int
	// NowUTC is optional; time.Now().UTC() is used when zero.
	NowUTC time.Time
}

type ApplyResourceLimiterOutput struct {
	Allowed        bool
	RetryAfterSecs int
}

type ResourceLimiter interface {
	ApplyResourceLimiter(ctx context.Context, in *ApplyResourceLimiterInput) (*ApplyResourceLimiterOutput, error)
}
