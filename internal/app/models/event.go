package models

import "time"

type ClinicEvent struct {
	Type           string    `json:"type"`
	AppointmentID  string    `json:"appointmentId"`
	PrescriptionID string    `json:"prescriptionId,omitempty"`
	PatientID      string    `json:"patientId"`
	DoctorID       string    `json:"doctorId"`
	Status         string    `json:"status,omitempty"`
	OccurredAt     time.Time `json:"occurredAt"`
}
