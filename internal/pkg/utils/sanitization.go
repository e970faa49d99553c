package utils

import (
	"clinix-service/internal/pkg/dto/requests"
	"strings"
)

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func NormalizeRole(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}

func SanitizeRegisterUserRequest(input *requests.RegisterUser) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = NormalizeEmail(input.Email)
	input.Role = NormalizeRole(input.Role)
	input.Specialization = strings.TrimSpace(input.Specialization)
}

func SanitizeLoginUserRequest(input *requests.LoginUser) {
	input.Email = NormalizeEmail(input.Email)
}

func SanitizeBookAppointmentRequest(input *requests.BookAppointment) {
	input.PatientID = strings.TrimSpace(input.PatientID)
	input.DoctorID = strings.TrimSpace(input.DoctorID)
	input.Date = strings.TrimSpace(input.Date)
	input.Reason = strings.TrimSpace(input.Reason)
}

func SanitizeCreatePrescriptionRequest(input *requests.CreatePrescription) {
	input.Symptoms = strings.TrimSpace(input.Symptoms)
	input.Diagnosis = strings.TrimSpace(input.Diagnosis)
	input.AdditionalNotes = strings.TrimSpace(input.AdditionalNotes)
	input.Notes = strings.TrimSpace(input.Notes)
	for i := range input.Medicines {
		input.Medicines[i].Name = strings.TrimSpace(input.Medicines[i].Name)
		input.Medicines[i].Dosage = strings.TrimSpace(input.Medicines[i].Dosage)
		input.Medicines[i].Duration = strings.TrimSpace(input.Medicines[i].Duration)
	}
}
