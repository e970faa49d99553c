package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
	LoggingCallerIDKey      = "caller_id"
	LoggingCallerRoleKey    = "caller_role"
	LoggingAppointmentIDKey = "appointment_id"
	LoggingPrescriptionKey  = "prescription_id"
	LoggingDoctorIDKey      = "doctor_id"
	LoggingPatientIDKey     = "patient_id"
	LoggingStatusKey        = "status"
	LoggingEventTypeKey     = "event_type"
)
