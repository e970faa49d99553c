package routers

import (
	"clinix-service/internal/app/models"
	"clinix-service/internal/pkg/exceptions"
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory stand-ins for the Mongo and Redis repositories. They enforce the
// same unique constraints the indexes do.

type memoryUserRepository struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]models.User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: make(map[primitive.ObjectID]models.User)}
}

func (r *memoryUserRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return "", exceptions.ErrEmailAlreadyExist(errors.New("duplicate email"))
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users[user.ID] = *user
	return user.ID.Hex(), nil
}

func (r *memoryUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			found := user
			return &found, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepository) FindByID(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *memoryUserRepository) FindByIDs(ctx context.Context, userIDs []primitive.ObjectID) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]models.User, 0, len(userIDs))
	for _, id := range userIDs {
		if user, ok := r.users[id]; ok {
			result = append(result, user)
		}
	}
	return result, nil
}

func (r *memoryUserRepository) FindByRole(ctx context.Context, role string) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]models.User, 0)
	for _, user := range r.users {
		if user.Role == role {
			result = append(result, user)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *memoryUserRepository) EnsureIndexes(ctx context.Context) error { return nil }

type memoryAppointmentRepository struct {
	mu           sync.Mutex
	appointments []models.Appointment
}

func (r *memoryAppointmentRepository) slotTaken(doctorID primitive.ObjectID, date time.Time, except primitive.ObjectID) bool {
	for _, a := range r.appointments {
		if a.ID != except && a.Active && a.DoctorID == doctorID && a.Date.Equal(date) {
			return true
		}
	}
	return false
}

func (r *memoryAppointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if appointment.Active && r.slotTaken(appointment.DoctorID, appointment.Date, primitive.NilObjectID) {
		return "", exceptions.ErrAppointmentSlotTaken(errors.New("duplicate key"))
	}
	if appointment.ID.IsZero() {
		appointment.ID = primitive.NewObjectID()
	}
	r.appointments = append(r.appointments, *appointment)
	return appointment.ID.Hex(), nil
}

func (r *memoryAppointmentRepository) FindByID(ctx context.Context, appointmentID primitive.ObjectID) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.appointments {
		if a.ID == appointmentID {
			found := a
			return &found, nil
		}
	}
	return nil, nil
}

func (r *memoryAppointmentRepository) FindActiveByDoctorAndDate(ctx context.Context, doctorID primitive.ObjectID, date time.Time) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.appointments {
		if a.Active && a.DoctorID == doctorID && a.Date.Equal(date) {
			found := a
			return &found, nil
		}
	}
	return nil, nil
}

func (r *memoryAppointmentRepository) filter(keep func(models.Appointment) bool, ascending bool) []models.Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]models.Appointment, 0)
	for _, a := range r.appointments {
		if keep(a) {
			result = append(result, a)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if ascending {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].Date.After(result[j].Date)
	})
	return result
}

func (r *memoryAppointmentRepository) FindByPatientID(ctx context.Context, patientID primitive.ObjectID) ([]models.Appointment, error) {
	return r.filter(func(a models.Appointment) bool { return a.PatientID == patientID }, false), nil
}

func (r *memoryAppointmentRepository) FindByDoctorID(ctx context.Context, doctorID primitive.ObjectID) ([]models.Appointment, error) {
	return r.filter(func(a models.Appointment) bool { return a.DoctorID == doctorID }, true), nil
}

func (r *memoryAppointmentRepository) FindByIDs(ctx context.Context, appointmentIDs []primitive.ObjectID) ([]models.Appointment, error) {
	wanted := make(map[primitive.ObjectID]bool, len(appointmentIDs))
	for _, id := range appointmentIDs {
		wanted[id] = true
	}
	return r.filter(func(a models.Appointment) bool { return wanted[a.ID] }, false), nil
}

func (r *memoryAppointmentRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	return r.filter(func(models.Appointment) bool { return true }, false), nil
}

func (r *memoryAppointmentRepository) UpdateStatus(ctx context.Context, appointmentID primitive.ObjectID, status string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.appointments {
		if r.appointments[i].ID != appointmentID {
			continue
		}
		updated := r.appointments[i]
		updated.SetStatus(status)
		if updated.Active && r.slotTaken(updated.DoctorID, updated.Date, updated.ID) {
			return nil, exceptions.ErrAppointmentSlotTaken(errors.New("duplicate key"))
		}
		updated.SetUpdatedAt()
		r.appointments[i] = updated
		return &updated, nil
	}
	return nil, nil
}

func (r *memoryAppointmentRepository) EnsureIndexes(ctx context.Context) error { return nil }

type memoryPrescriptionRepository struct {
	mu            sync.Mutex
	prescriptions []models.Prescription
}

func (r *memoryPrescriptionRepository) CreatePrescription(ctx context.Context, prescription *models.Prescription) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.prescriptions {
		if p.AppointmentID == prescription.AppointmentID {
			return "", exceptions.ErrPrescriptionAlreadyExist(errors.New("duplicate key"))
		}
	}
	if prescription.ID.IsZero() {
		prescription.ID = primitive.NewObjectID()
	}
	r.prescriptions = append(r.prescriptions, *prescription)
	return prescription.ID.Hex(), nil
}

func (r *memoryPrescriptionRepository) FindByAppointmentID(ctx context.Context, appointmentID primitive.ObjectID) (*models.Prescription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.prescriptions {
		if p.AppointmentID == appointmentID {
			found := p
			return &found, nil
		}
	}
	return nil, nil
}

func (r *memoryPrescriptionRepository) filter(keep func(models.Prescription) bool) []models.Prescription {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]models.Prescription, 0)
	for _, p := range r.prescriptions {
		if keep(p) {
			result = append(result, p)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result
}

func (r *memoryPrescriptionRepository) FindByPatientID(ctx context.Context, patientID primitive.ObjectID) ([]models.Prescription, error) {
	return r.filter(func(p models.Prescription) bool { return p.PatientID == patientID }), nil
}

func (r *memoryPrescriptionRepository) FindByDoctorID(ctx context.Context, doctorID primitive.ObjectID) ([]models.Prescription, error) {
	return r.filter(func(p models.Prescription) bool { return p.DoctorID == doctorID }), nil
}

func (r *memoryPrescriptionRepository) EnsureIndexes(ctx context.Context) error { return nil }

type memoryRedisRepository struct {
	mu     sync.Mutex
	values map[string]string
	counts map[string]int
}

func newMemoryRedisRepository() *memoryRedisRepository {
	return &memoryRedisRepository{values: make(map[string]string), counts: make(map[string]int)}
}

func (r *memoryRedisRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.values, key)
	return nil
}

func (r *memoryRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = string(encoded)
	return nil
}

func (r *memoryRedisRepository) Get(ctx context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.values[key], nil
}

func (r *memoryRedisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts[key]++
	return r.counts[key], nil
}
