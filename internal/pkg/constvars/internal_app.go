package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_CALLER_KEY               ContextKey = "caller"
)

const (
	REQUEST_ID_PREFIX = "CLNX_SVC_"
)

const (
	AppName = "Clinix Sphere API"
)

const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)

const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

// AppointmentStatuses lists every accepted appointment status.
var AppointmentStatuses = []string{
	AppointmentStatusPending,
	AppointmentStatusConfirmed,
	AppointmentStatusCompleted,
	AppointmentStatusCancelled,
}

const (
	EventAppointmentBooked        = "appointment.booked"
	EventAppointmentStatusUpdated = "appointment.status_updated"
	EventPrescriptionCreated      = "prescription.created"
)

const (
	CacheKeyDoctorDirectory   = "CLINIX:DOCTORS:ALL"
	LimiterGroupLoginAttempts = "LOGIN"
)
