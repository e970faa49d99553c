package requests

type BookAppointment struct {
	PatientID string `json:"patientId" validate:"omitempty,object_id"`
	DoctorID  string `json:"doctorId" validate:"required,object_id"`
	Date      string `json:"date" validate:"required"`
	Reason    string `json:"reason" validate:"max=500"`
}

type UpdateAppointmentStatus struct {
	Status string `json:"status"`
}
