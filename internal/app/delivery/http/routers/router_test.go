package routers

import (
	"bytes"
	"clinix-service/internal/app/config"
	"clinix-service/internal/app/delivery/http/controllers"
	"clinix-service/internal/app/delivery/http/middlewares"
	"clinix-service/internal/app/models"
	"clinix-service/internal/app/services/core/appointments"
	"clinix-service/internal/app/services/core/auth"
	"clinix-service/internal/app/services/core/doctors"
	"clinix-service/internal/app/services/core/prescriptions"
	"clinix-service/internal/app/services/shared/events"
	"clinix-service/internal/app/services/shared/jwtmanager"
	"clinix-service/internal/app/services/shared/metrics"
	"clinix-service/internal/app/services/shared/ratelimiter"
	"clinix-service/internal/app/services/shared/storage"
	"clinix-service/internal/pkg/constvars"
	"clinix-service/internal/pkg/dto/responses"
	"clinix-service/internal/pkg/utils"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type testServer struct {
	t      *testing.T
	router *chi.Mux
	users  *memoryUserRepository
}

func newTestServer(t *testing.T) *testServer {
	internalConfig := &config.InternalConfig{
		App: config.App{
			Name:                             constvars.AppName,
			Timezone:                         "UTC",
			CORSAllowedOrigins:               []string{"*"},
			MaxRequests:                      1000,
			RequestTimeoutInSeconds:          10,
			AuthMaxRequestsPerMinute:         1000,
			LoginMaxAttempts:                 5,
			LoginAttemptWindowInSeconds:      60,
			DoctorDirectoryCacheTTLInSeconds: 60,
		},
		JWT: config.JWT{Secret: "router-test-secret", Issuer: "clinix-test", ExpTimeInHour: 1},
	}
	logger := zap.NewNop()
	registry := prometheus.NewRegistry()
	appMetrics := metrics.NewMetrics("clinix", registry)

	userRepository := newMemoryUserRepository()
	appointmentRepository := &memoryAppointmentRepository{}
	prescriptionRepository := &memoryPrescriptionRepository{}
	redisRepository := newMemoryRedisRepository()

	tokenManager, err := jwtmanager.NewJWTManager(internalConfig, logger)
	require.NoError(t, err)
	publisher := events.NewNoopPublisher(logger)

	doctorUsecase := doctors.NewDoctorUsecase(userRepository, redisRepository, appMetrics, internalConfig, logger)
	authUsecase := auth.NewAuthUsecase(userRepository, tokenManager, ratelimiter.NewResourceLimiter(redisRepository, logger), doctorUsecase, appMetrics, internalConfig, logger)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentRepository, userRepository, appointments.NewTransitionPolicy(false), publisher, appMetrics, internalConfig, logger)
	prescriptionUsecase := prescriptions.NewPrescriptionUsecase(prescriptionRepository, appointmentRepository, userRepository, storage.NewNoopPrescriptionArchive(), publisher, appMetrics, logger)

	router := chi.NewRouter()
	SetupRoutes(router, internalConfig, middlewares.NewMiddlewares(logger, internalConfig, tokenManager, appMetrics), registry, &Controllers{
		Health:       controllers.NewHealthController(internalConfig),
		Auth:         controllers.NewAuthController(logger, authUsecase, internalConfig),
		Appointment:  controllers.NewAppointmentController(logger, appointmentUsecase, internalConfig),
		Doctor:       controllers.NewDoctorController(logger, doctorUsecase, internalConfig),
		Prescription: controllers.NewPrescriptionController(logger, prescriptionUsecase, internalConfig),
	})

	return &testServer{t: t, router: router, users: userRepository}
}

func (s *testServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
	}
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), rr.Body.String())
	return out
}

// seedDoctor stores a doctor directly, the way cmd/seed does.
func (s *testServer) seedDoctor(name, email, specialization string) *models.User {
	hash, err := utils.HashPassword("password123")
	require.NoError(s.t, err)
	doctor := &models.User{Name: name, Email: email, Password: hash, Role: constvars.RoleDoctor, Specialization: specialization}
	doctor.SetCreatedAtUpdatedAt()
	_, err = s.users.CreateUser(context.Background(), doctor)
	require.NoError(s.t, err)
	return doctor
}

func (s *testServer) register(name, email, role string) responses.Auth {
	rr := s.do(http.MethodPost, "/auth/register", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": "secret123",
		"role":     role,
	})
	require.Equal(s.t, http.StatusCreated, rr.Code, rr.Body.String())
	return decode[responses.Auth](s.t, rr)
}

func (s *testServer) login(email, password string) responses.Auth {
	rr := s.do(http.MethodPost, "/auth/login", "", map[string]string{"email": email, "password": password})
	require.Equal(s.t, http.StatusOK, rr.Code, rr.Body.String())
	return decode[responses.Auth](s.t, rr)
}

func TestClinicScenario(t *testing.T) {
	s := newTestServer(t)
	doctor := s.seedDoctor("Dr. Arjun", "arjun@clinic.com", "Cardiology")

	first := s.register("Priya", "priya@example.com", constvars.RolePatient)
	second := s.register("Rahul", "rahul@example.com", constvars.RolePatient)
	doctorAuth := s.login("arjun@clinic.com", "password123")
	assert.Equal(t, constvars.RoleDoctor, doctorAuth.User.Role)

	booking := map[string]string{"doctorId": doctor.ID.Hex(), "date": "2025-01-10T09:00", "reason": "Chest pain"}

	rr := s.do(http.MethodPost, "/app/book", first.Token, booking)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	booked := decode[responses.AppointmentDetail](t, rr)
	assert.Equal(t, constvars.AppointmentStatusPending, booked.Appointment.Status)
	assert.Equal(t, first.User.ID, booked.Appointment.PatientID)
	require.NotNil(t, booked.Appointment.Doctor)
	assert.Equal(t, "arjun@clinic.com", booked.Appointment.Doctor.Email)

	rr = s.do(http.MethodPost, "/app/book", second.Token, booking)
	assert.Equal(t, http.StatusConflict, rr.Code, rr.Body.String())

	rr = s.do(http.MethodPatch, "/app/"+booked.Appointment.ID+"/status", doctorAuth.Token, map[string]string{"status": "completed"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, constvars.AppointmentStatusCompleted, decode[responses.AppointmentDetail](t, rr).Appointment.Status)

	rr = s.do(http.MethodPost, "/prescriptions/"+booked.Appointment.ID, doctorAuth.Token, map[string]interface{}{
		"symptoms":  "Fever",
		"diagnosis": "Viral infection",
		"medicines": []map[string]string{{"name": "Paracetamol", "dosage": "500mg", "duration": "5 days"}},
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	created := decode[responses.PrescriptionDetail](t, rr)

	rr = s.do(http.MethodGet, "/prescriptions/patient/my-prescriptions", first.Token, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	list := decode[responses.PrescriptionList](t, rr)
	assert.True(t, list.Success)
	require.Equal(t, 1, list.TotalPrescriptions)
	require.Len(t, list.Prescriptions, 1)
	assert.Equal(t, created.Prescription.ID, list.Prescriptions[0].ID)
	require.Len(t, list.Prescriptions[0].Medicines, 1)
	assert.Equal(t, responses.Medicine{Name: "Paracetamol", Dosage: "500mg", Duration: "5 days"}, list.Prescriptions[0].Medicines[0])
	require.NotNil(t, list.Prescriptions[0].Appointment)
	assert.Equal(t, booked.Appointment.ID, list.Prescriptions[0].Appointment.ID)

	rr = s.do(http.MethodPost, "/prescriptions/"+booked.Appointment.ID, doctorAuth.Token, map[string]interface{}{
		"medicines": []map[string]string{{"name": "Ibuprofen", "dosage": "200mg", "duration": "3 days"}},
	})
	assert.Equal(t, http.StatusConflict, rr.Code, "second prescription for the same appointment")

	rr = s.do(http.MethodPost, "/app/book", second.Token, booking)
	assert.Equal(t, http.StatusCreated, rr.Code, "a completed appointment frees the slot")
}

func TestAppointmentRoutes(t *testing.T) {
	s := newTestServer(t)
	doctor := s.seedDoctor("Dr. Neha", "neha@clinic.com", "Dermatology")
	otherDoctor := s.seedDoctor("Dr. Arjun", "arjun@clinic.com", "Cardiology")
	patient := s.register("Priya", "priya@example.com", constvars.RolePatient)
	doctorAuth := s.login("neha@clinic.com", "password123")
	otherDoctorAuth := s.login("arjun@clinic.com", "password123")

	for _, date := range []string{"2025-03-01T10:00:00Z", "2025-03-03T10:00:00Z", "2025-03-02T10:00:00Z"} {
		rr := s.do(http.MethodPost, "/app/book", patient.Token, map[string]string{"doctorId": doctor.ID.Hex(), "date": date})
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	}

	t.Run("Patient history is newest first", func(t *testing.T) {
		rr := s.do(http.MethodGet, "/app/my-appointments", patient.Token, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		list := decode[responses.AppointmentList](t, rr)
		require.Equal(t, 3, list.TotalAppointments)
		for i := 1; i < len(list.Appointments); i++ {
			assert.True(t, list.Appointments[i-1].Date.After(list.Appointments[i].Date))
		}
		assert.NotNil(t, list.Appointments[0].Doctor)
		assert.Nil(t, list.Appointments[0].Patient)
	})

	t.Run("Doctor schedule is oldest first", func(t *testing.T) {
		rr := s.do(http.MethodGet, "/doctors/appointments", doctorAuth.Token, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		list := decode[responses.AppointmentList](t, rr)
		require.Len(t, list.Appointments, 3)
		for i := 1; i < len(list.Appointments); i++ {
			assert.True(t, list.Appointments[i-1].Date.Before(list.Appointments[i].Date))
		}
		assert.NotNil(t, list.Appointments[0].Patient)
	})

	t.Run("Role gates", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, "/app/my-appointments", "", nil).Code)
		assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, "/app/my-appointments", "not-a-jwt", nil).Code)
		assert.Equal(t, http.StatusForbidden, s.do(http.MethodGet, "/app", patient.Token, nil).Code)
		assert.Equal(t, http.StatusForbidden, s.do(http.MethodGet, "/app", doctorAuth.Token, nil).Code)
		assert.Equal(t, http.StatusForbidden, s.do(http.MethodPost, "/app/book", doctorAuth.Token, map[string]string{"doctorId": doctor.ID.Hex(), "date": "2025-04-01T10:00:00Z"}).Code)
		assert.Equal(t, http.StatusForbidden, s.do(http.MethodGet, "/doctors/appointments", patient.Token, nil).Code)
	})

	t.Run("Only the owning doctor updates status", func(t *testing.T) {
		list := decode[responses.AppointmentList](t, s.do(http.MethodGet, "/app/my-appointments", patient.Token, nil))
		id := list.Appointments[0].ID

		rr := s.do(http.MethodPatch, "/doctors/appointments/"+id+"/status", otherDoctorAuth.Token, map[string]string{"status": "confirmed"})
		assert.Equal(t, http.StatusForbidden, rr.Code)

		rr = s.do(http.MethodPatch, "/doctors/appointments/"+id+"/status", doctorAuth.Token, map[string]string{"status": "done"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		rr = s.do(http.MethodPatch, "/doctors/appointments/"+id+"/status", doctorAuth.Token, map[string]string{"status": "COMPLETED"})
		assert.Equal(t, http.StatusBadRequest, rr.Code, "statuses are case sensitive")

		rr = s.do(http.MethodPatch, "/doctors/appointments/"+id+"/status", doctorAuth.Token, map[string]string{"status": "confirmed"})
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		detail := decode[responses.AppointmentDetail](t, rr)
		assert.Equal(t, constvars.AppointmentStatusConfirmed, detail.Appointment.Status)
		assert.Equal(t, constvars.AppointmentStatusUpdatedSuccess, detail.Message)
	})

	t.Run("Get by id", func(t *testing.T) {
		list := decode[responses.AppointmentList](t, s.do(http.MethodGet, "/app/my-appointments", patient.Token, nil))

		rr := s.do(http.MethodGet, "/app/"+list.Appointments[0].ID, otherDoctorAuth.Token, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		detail := decode[responses.AppointmentDetail](t, rr)
		assert.NotNil(t, detail.Appointment.Patient)
		assert.NotNil(t, detail.Appointment.Doctor)

		assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/app/"+primitive.NewObjectID().Hex(), patient.Token, nil).Code)
		assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/app/garbage", patient.Token, nil).Code)
	})

	t.Run("Slots are held per doctor", func(t *testing.T) {
		rr := s.do(http.MethodPost, "/app/book", patient.Token, map[string]string{"doctorId": otherDoctor.ID.Hex(), "date": "2025-03-01T10:00:00Z"})
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

		list := decode[responses.AppointmentList](t, s.do(http.MethodGet, "/doctors/appointments", otherDoctorAuth.Token, nil))
		require.Len(t, list.Appointments, 1)
		assert.Equal(t, otherDoctor.ID.Hex(), list.Appointments[0].DoctorID)
	})

	t.Run("Booking against a patient id as doctor is not found", func(t *testing.T) {
		rr := s.do(http.MethodPost, "/app/book", patient.Token, map[string]string{"doctorId": patient.User.ID, "date": "2025-05-01T10:00:00Z"})
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Prescription before completion is rejected", func(t *testing.T) {
		list := decode[responses.AppointmentList](t, s.do(http.MethodGet, "/doctors/appointments", doctorAuth.Token, nil))
		rr := s.do(http.MethodPost, "/prescriptions/"+list.Appointments[0].ID, doctorAuth.Token, map[string]interface{}{
			"medicines": []map[string]string{{"name": "Cetirizine", "dosage": "10mg", "duration": "7 days"}},
		})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAuthRoutes(t *testing.T) {
	s := newTestServer(t)
	s.register("Priya", "Priya@Example.com", constvars.RolePatient)

	t.Run("Duplicate email conflicts regardless of case", func(t *testing.T) {
		rr := s.do(http.MethodPost, "/auth/register", "", map[string]string{
			"name": "Priya", "email": "priya@example.com", "password": "secret123", "role": "patient",
		})
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("Admin role cannot be registered", func(t *testing.T) {
		rr := s.do(http.MethodPost, "/auth/register", "", map[string]string{
			"name": "Root", "email": "root@example.com", "password": "secret123", "role": "admin",
		})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Validation errors name the field", func(t *testing.T) {
		rr := s.do(http.MethodPost, "/auth/register", "", map[string]string{
			"name": "Priya", "email": "not-an-email", "password": "secret123", "role": "patient",
		})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		body := decode[map[string]interface{}](t, rr)
		assert.Contains(t, body["message"], "email")
	})

	t.Run("Malformed json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString("{"))
		rr := httptest.NewRecorder()
		s.router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Bad credentials", func(t *testing.T) {
		rr := s.do(http.MethodPost, "/auth/login", "", map[string]string{"email": "priya@example.com", "password": "wrong-password"})
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Login never returns the password hash", func(t *testing.T) {
		rr := s.do(http.MethodPost, "/auth/login", "", map[string]string{"email": "PRIYA@example.com", "password": "secret123"})
		require.Equal(t, http.StatusOK, rr.Code)
		assert.NotContains(t, rr.Body.String(), "password")
		assert.NotContains(t, rr.Body.String(), "$2a$")
	})
}

func TestPublicRoutes(t *testing.T) {
	s := newTestServer(t)
	s.seedDoctor("Dr. Arjun", "arjun@clinic.com", "Cardiology")
	s.seedDoctor("Dr. Neha", "neha@clinic.com", "Dermatology")

	t.Run("Health", func(t *testing.T) {
		rr := s.do(http.MethodGet, "/", "", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		health := decode[responses.Health](t, rr)
		assert.True(t, health.OK)
		assert.Equal(t, constvars.AppName, health.Name)
		assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Doctor directory", func(t *testing.T) {
		rr := s.do(http.MethodGet, "/doctors/all", "", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		list := decode[responses.DoctorList](t, rr)
		assert.Equal(t, 2, list.TotalDoctors)
		assert.NotContains(t, rr.Body.String(), "password")

		cached := decode[responses.DoctorList](t, s.do(http.MethodGet, "/doctors/all", "", nil))
		assert.Equal(t, list.Doctors, cached.Doctors)
	})

	t.Run("Doctor registration refreshes the directory", func(t *testing.T) {
		rr := s.do(http.MethodPost, "/auth/register", "", map[string]string{
			"name": "Dr. Kavya", "email": "kavya@clinic.com", "password": "secret123", "role": "doctor", "specialization": "Neurology",
		})
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

		list := decode[responses.DoctorList](t, s.do(http.MethodGet, "/doctors/all", "", nil))
		assert.Equal(t, 3, list.TotalDoctors)
	})

	t.Run("Metrics exposition", func(t *testing.T) {
		rr := s.do(http.MethodGet, "/metrics", "", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "clinix_http_requests_total")
	})
}
