package jwtmanager

import (
	"clinix-service/internal/app/config"
	"clinix-service/internal/app/contracts"
	"clinix-service/internal/app/models"
	"clinix-service/internal/pkg/constvars"
	"clinix-service/internal/pkg/exceptions"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

// callerClaims is the payload of a session token. The role travels inside the
// token so verification never touches the identity store.
type callerClaims struct {
	ID   string `json:"id"`
	Role string `json:"role"`
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// JWTManager handles HS256 token creation and verification.
type JWTManager struct {
	log    *zap.Logger
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTManager(cfg *config.InternalConfig, log *zap.Logger) (contracts.TokenManager, error) {
	secret := strings.TrimSpace(cfg.JWT.Secret)
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}
	ttl := time.Duration(cfg.JWT.ExpTimeInHour) * time.Hour
	if ttl <= 0 {
		return nil, fmt.Errorf("JWT_EXP_TIME_IN_HOUR must be positive")
	}

	return &JWTManager{
		log:    log,
		secret: []byte(secret),
		issuer: cfg.JWT.Issuer,
		ttl:    ttl,
		now:    func() time.Time { return time.Now().UTC() },
	}, nil
}

func (j *JWTManager) CreateToken(ctx context.Context, in *contracts.CreateTokenInput) (*contracts.CreateTokenOutput, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	j.log.Debug("JWTManager.CreateToken called", zap.String(constvars.LoggingRequestIDKey, requestID))

	if in == nil || strings.TrimSpace(in.UserID) == "" || strings.TrimSpace(in.Role) == "" {
		return nil, exceptions.ErrTokenGenerate(errors.New("user id and role are required"))
	}

	now := j.now()
	expiresAt := now.Add(j.ttl)
	claims := callerClaims{
		ID:   in.UserID,
		Role: in.Role,
		Name: in.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   in.UserID,
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}
	return &contracts.CreateTokenOutput{Token: signed, ExpiresAt: expiresAt}, nil
}

// VerifyToken validates signature, algorithm, issuer and expiry, and returns
// the caller embedded in the token.
func (j *JWTManager) VerifyToken(ctx context.Context, in *contracts.VerifyTokenInput) (*contracts.VerifyTokenOutput, error) {
	if in == nil || strings.TrimSpace(in.Token) == "" {
		return nil, exceptions.ErrTokenMissing(nil)
	}

	keyFunc := func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("%s: %v", constvars.ErrDevAuthSigningMethod, t.Header["alg"])
		}
		return j.secret, nil
	}

	claims := new(callerClaims)
	parser := jwt.Parser{}
	token, err := parser.ParseWithClaims(in.Token, claims, keyFunc)
	if err != nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}
	if !token.Valid {
		return nil, exceptions.ErrTokenInvalidOrExpired(errors.New("token is not valid"))
	}
	if j.issuer != "" && claims.Issuer != j.issuer {
		return nil, exceptions.ErrTokenInvalidOrExpired(fmt.Errorf("unexpected issuer %q", claims.Issuer))
	}
	if claims.ExpiresAt == nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(errors.New("token has no expiry"))
	}
	if claims.ID == "" || claims.Role == "" {
		return nil, exceptions.ErrTokenInvalidOrExpired(errors.New("token carries no caller"))
	}

	return &contracts.VerifyTokenOutput{
		Caller: models.Caller{
			ID:   claims.ID,
			Role: claims.Role,
			Name: claims.Name,
		},
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
