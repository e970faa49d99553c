package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"

	// Auth messages
	RegisterSuccess = "user registered successfully"
	LoginSuccess    = "successfully login"

	// Appointment messages
	AppointmentBookedSuccess        = "Appointment booked successfully"
	AppointmentStatusUpdatedSuccess = "Appointment status updated"

	// Prescription messages
	PrescriptionCreatedSuccess = "Prescription created"
)
