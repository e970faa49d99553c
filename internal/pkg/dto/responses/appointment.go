package responses

import "time"

// Appointment carries either side as a populated Identity, or nil when the
// listing does not populate it. On the wire an unpopulated side is its raw id,
// see party.go.
type Appointment struct {
	ID        string    `json:"_id"`
	PatientID string    `json:"patientId"`
	DoctorID  string    `json:"doctorId"`
	Patient   *Identity `json:"-"`
	Doctor    *Identity `json:"-"`
	Date      time.Time `json:"date"`
	Reason    string    `json:"reason"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type AppointmentList struct {
	Success           bool          `json:"success"`
	TotalAppointments int           `json:"totalAppointments"`
	Appointments      []Appointment `json:"appointments"`
}

type AppointmentDetail struct {
	Success     bool        `json:"success"`
	Message     string      `json:"message,omitempty"`
	Appointment Appointment `json:"appointment"`
}
