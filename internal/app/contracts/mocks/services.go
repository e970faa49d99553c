package mocks

import (
	"clinix-service/internal/app/contracts"
	"clinix-service/internal/app/models"
	"clinix-service/internal/pkg/dto/responses"
	"context"

	"github.com/stretchr/testify/mock"
)

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event *models.ClinicEvent) error {
	return m.Called(ctx, event).Error(0)
}

type MockPrescriptionArchive struct {
	mock.Mock
}

func (m *MockPrescriptionArchive) Archive(ctx context.Context, prescription *responses.Prescription) (string, error) {
	args := m.Called(ctx, prescription)
	return args.String(0), args.Error(1)
}

type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) CreateToken(ctx context.Context, in *contracts.CreateTokenInput) (*contracts.CreateTokenOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*contracts.CreateTokenOutput)
	return out, args.Error(1)
}

func (m *MockTokenManager) VerifyToken(ctx context.Context, in *contracts.VerifyTokenInput) (*contracts.VerifyTokenOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*contracts.VerifyTokenOutput)
	return out, args.Error(1)
}

type MockResourceLimiter struct {
	mock.Mock
}

func (m *MockResourceLimiter) ApplyResourceLimiter(ctx context.Context, in *contracts.ApplyResourceLimiterInput) (*contracts.ApplyResourceLimiterOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*contracts.ApplyResourceLimiterOutput)
	return out, args.Error(1)
}

type MockDoctorUsecase struct {
	mock.Mock
}

func (m *MockDoctorUsecase) ListDoctors(ctx context.Context) ([]responses.Doctor, error) {
	args := m.Called(ctx)
	doctors, _ := args.Get(0).([]responses.Doctor)
	return doctors, args.Error(1)
}

func (m *MockDoctorUsecase) InvalidateDirectory(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
