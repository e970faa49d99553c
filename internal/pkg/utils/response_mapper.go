package utils

import (
	"clinix-service/internal/app/models"
	"clinix-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IdentitySet resolves populated user identities by id.
type IdentitySet map[primitive.ObjectID]responses.Identity

func (s IdentitySet) lookup(id primitive.ObjectID) *responses.Identity {
	if s == nil {
		return nil
	}
	identity, ok := s[id]
	if !ok {
		return nil
	}
	return &identity
}

func BuildIdentitySet(users []models.User) IdentitySet {
	set := make(IdentitySet, len(users))
	for _, user := range users {
		set[user.ID] = BuildIdentityResponse(&user)
	}
	return set
}

func BuildIdentityResponse(user *models.User) responses.Identity {
	return responses.Identity{
		ID:    user.ID.Hex(),
		Name:  user.Name,
		Email: user.Email,
	}
}

func BuildUserResponse(user *models.User) responses.User {
	return responses.User{
		ID:             user.ID.Hex(),
		Name:           user.Name,
		Email:          user.Email,
		Role:           user.Role,
		Specialization: user.Specialization,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}
}

func BuildDoctorResponse(user *models.User) responses.Doctor {
	return responses.Doctor{
		ID:             user.ID.Hex(),
		Name:           user.Name,
		Email:          user.Email,
		Specialization: user.Specialization,
	}
}

func BuildDoctorListResponse(users []models.User) []responses.Doctor {
	doctors := make([]responses.Doctor, 0, len(users))
	for i := range users {
		doctors = append(doctors, BuildDoctorResponse(&users[i]))
	}
	return doctors
}

// AppointmentPopulation selects which sides of an appointment are embedded.
type AppointmentPopulation struct {
	Patient bool
	Doctor  bool
}

var (
	PopulateBoth    = AppointmentPopulation{Patient: true, Doctor: true}
	PopulateDoctor  = AppointmentPopulation{Doctor: true}
	PopulatePatient = AppointmentPopulation{Patient: true}
)

func BuildAppointmentResponse(appointment *models.Appointment, identities IdentitySet, populate AppointmentPopulation) responses.Appointment {
	response := responses.Appointment{
		ID:        appointment.ID.Hex(),
		PatientID: appointment.PatientID.Hex(),
		DoctorID:  appointment.DoctorID.Hex(),
		Date:      appointment.Date,
		Reason:    appointment.Reason,
		Status:    appointment.Status,
		CreatedAt: appointment.CreatedAt,
		UpdatedAt: appointment.UpdatedAt,
	}
	if populate.Patient {
		response.Patient = identities.lookup(appointment.PatientID)
	}
	if populate.Doctor {
		response.Doctor = identities.lookup(appointment.DoctorID)
	}
	return response
}

func BuildAppointmentListResponse(appointments []models.Appointment, identities IdentitySet, populate AppointmentPopulation) []responses.Appointment {
	result := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		result = append(result, BuildAppointmentResponse(&appointments[i], identities, populate))
	}
	return result
}

func BuildPrescriptionResponse(prescription *models.Prescription, appointment *models.Appointment, identities IdentitySet, populate AppointmentPopulation) responses.Prescription {
	medicines := make([]responses.Medicine, 0, len(prescription.Medicines))
	for _, medicine := range prescription.Medicines {
		medicines = append(medicines, responses.Medicine{
			Name:     medicine.Name,
			Dosage:   medicine.Dosage,
			Duration: medicine.Duration,
		})
	}

	response := responses.Prescription{
		ID:              prescription.ID.Hex(),
		AppointmentID:   prescription.AppointmentID.Hex(),
		DoctorID:        prescription.DoctorID.Hex(),
		PatientID:       prescription.PatientID.Hex(),
		Symptoms:        prescription.Symptoms,
		Diagnosis:       prescription.Diagnosis,
		Medicines:       medicines,
		AdditionalNotes: prescription.AdditionalNotes,
		CreatedAt:       prescription.CreatedAt,
		UpdatedAt:       prescription.UpdatedAt,
	}
	if populate.Patient {
		response.Patient = identities.lookup(prescription.PatientID)
	}
	if populate.Doctor {
		response.Doctor = identities.lookup(prescription.DoctorID)
	}
	if appointment != nil {
		embedded := BuildAppointmentResponse(appointment, nil, AppointmentPopulation{})
		response.Appointment = &embedded
	}
	return response
}
