package mocks

import (
	"clinix-service/internal/app/models"
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, userModel *models.User) (string, error) {
	args := m.Called(ctx, userModel)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByIDs(ctx context.Context, userIDs []primitive.ObjectID) ([]models.User, error) {
	args := m.Called(ctx, userIDs)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

func (m *MockUserRepository) FindByRole(ctx context.Context, role string) ([]models.User, error) {
	args := m.Called(ctx, role)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

func (m *MockUserRepository) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	args := m.Called(ctx, appointment)
	return args.String(0), args.Error(1)
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, appointmentID primitive.ObjectID) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	appointment, _ := args.Get(0).(*models.Appointment)
	return appointment, args.Error(1)
}

func (m *MockAppointmentRepository) FindActiveByDoctorAndDate(ctx context.Context, doctorID primitive.ObjectID, date time.Time) (*models.Appointment, error) {
	args := m.Called(ctx, doctorID, date)
	appointment, _ := args.Get(0).(*models.Appointment)
	return appointment, args.Error(1)
}

func (m *MockAppointmentRepository) FindByPatientID(ctx context.Context, patientID primitive.ObjectID) ([]models.Appointment, error) {
	args := m.Called(ctx, patientID)
	appointments, _ := args.Get(0).([]models.Appointment)
	return appointments, args.Error(1)
}

func (m *MockAppointmentRepository) FindByDoctorID(ctx context.Context, doctorID primitive.ObjectID) ([]models.Appointment, error) {
	args := m.Called(ctx, doctorID)
	appointments, _ := args.Get(0).([]models.Appointment)
	return appointments, args.Error(1)
}

func (m *MockAppointmentRepository) FindByIDs(ctx context.Context, appointmentIDs []primitive.ObjectID) ([]models.Appointment, error) {
	args := m.Called(ctx, appointmentIDs)
	appointments, _ := args.Get(0).([]models.Appointment)
	return appointments, args.Error(1)
}

func (m *MockAppointmentRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	args := m.Called(ctx)
	appointments, _ := args.Get(0).([]models.Appointment)
	return appointments, args.Error(1)
}

func (m *MockAppointmentRepository) UpdateStatus(ctx context.Context, appointmentID primitive.ObjectID, status string) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID, status)
	appointment, _ := args.Get(0).(*models.Appointment)
	return appointment, args.Error(1)
}

func (m *MockAppointmentRepository) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockPrescriptionRepository struct {
	mock.Mock
}

func (m *MockPrescriptionRepository) CreatePrescription(ctx context.Context, prescription *models.Prescription) (string, error) {
	args := m.Called(ctx, prescription)
	return args.String(0), args.Error(1)
}

func (m *MockPrescriptionRepository) FindByAppointmentID(ctx context.Context, appointmentID primitive.ObjectID) (*models.Prescription, error) {
	args := m.Called(ctx, appointmentID)
	prescription, _ := args.Get(0).(*models.Prescription)
	return prescription, args.Error(1)
}

func (m *MockPrescriptionRepository) FindByPatientID(ctx context.Context, patientID primitive.ObjectID) ([]models.Prescription, error) {
	args := m.Called(ctx, patientID)
	prescriptions, _ := args.Get(0).([]models.Prescription)
	return prescriptions, args.Error(1)
}

func (m *MockPrescriptionRepository) FindByDoctorID(ctx context.Context, doctorID primitive.ObjectID) ([]models.Prescription, error) {
	args := m.Called(ctx, doctorID)
	prescriptions, _ := args.Get(0).([]models.Prescription)
	return prescriptions, args.Error(1)
}

func (m *MockPrescriptionRepository) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return m.Called(ctx, key, value, exp).Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	args := m.Called(ctx, key, ttl)
	return args.Int(0), args.Error(1)
}
