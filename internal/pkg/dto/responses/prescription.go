package responses

import "time"

type Medicine struct {
	Name     string `json:"name"`
	Dosage   string `json:"dosage"`
	Duration string `json:"duration"`
}

// Prescription encodes its sides like Appointment does.
type Prescription struct {
	ID              string       `json:"_id"`
	AppointmentID   string       `json:"appointmentId"`
	DoctorID        string       `json:"doctorId"`
	PatientID       string       `json:"patientId"`
	Appointment     *Appointment `json:"appointment,omitempty"`
	Doctor          *Identity    `json:"-"`
	Patient         *Identity    `json:"-"`
	Symptoms        string       `json:"symptoms"`
	Diagnosis       string       `json:"diagnosis"`
	Medicines       []Medicine   `json:"medicines"`
	AdditionalNotes string       `json:"additionalNotes"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

type PrescriptionList struct {
	Success            bool           `json:"success"`
	TotalPrescriptions int            `json:"totalPrescriptions"`
	Prescriptions      []Prescription `json:"prescriptions"`
}

type PrescriptionDetail struct {
	Success      bool         `json:"success"`
	Message      string       `json:"message,omitempty"`
	Prescription Prescription `json:"prescription"`
}
