package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":           "is required",
	"email":              "must be a valid email",
	"min":                "must be at least %s characters long",
	"max":                "maximum at %s characters long",
	"oneof":              "must be one of [%s]",
	"dive":               "is invalid",
	"user_role":          "must be either 'patient' or 'doctor'",
	"object_id":          "must be a valid id",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNoToken                       = "No token"
	ErrClientInvalidToken                  = "Invalid token"
	ErrClientForbidden                     = "Forbidden"
	ErrClientTooManyRequests               = "too many requests, please try again later"
	ErrClientTooManyLoginAttempts          = "too many login attempts, please try again later"

	ErrClientPatientNotFound             = "Patient not found"
	ErrClientDoctorNotFound              = "Doctor not found"
	ErrClientAppointmentNotFound         = "Appointment not found"
	ErrClientDoctorAlreadyBooked         = "Doctor already has an appointment at this time"
	ErrClientInvalidStatus               = "Invalid status"
	ErrClientNotAppointmentDoctor        = "Not authorized to update this appointment"
	ErrClientStatusTransitionNotAllowed  = "Appointment status can no longer be changed"
	ErrClientAppointmentNotCompleted     = "Appointment is not completed yet"
	ErrClientPrescriptionAlreadyExists   = "Prescription already exists for this appointment"
	ErrClientPrescriptionNotFound        = "Prescription not found"
	ErrClientNotAppointmentPrescriber    = "Not authorized to write a prescription for this appointment"
	ErrClientInvalidAppointmentDate      = "date must be a valid date time"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotParseTime          = "cannot parse time into the given format"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevInvalidRoleType          = "invalid role type, should be 'patient' or 'doctor'"
	ErrDevRoleTypeDoesntMatch      = "invalid role type, request done by user with different role"
	ErrDevFailedToHashPassword     = "failed to hash password"
	ErrDevInvalidCredentials       = "invalid credentials"
	ErrDevEmailAlreadyExists       = "email already exists"
	ErrDevLoginAttemptsExceeded    = "login attempts exceeded for the current window"
	ErrDevRequestLimitExceeded     = "request limit exceeded"
	ErrDevPatientNotExists         = "patient id does not resolve to a user with role patient"
	ErrDevDoctorNotExists          = "doctor id does not resolve to a user with role doctor"
	ErrDevAppointmentNotExists     = "appointment not exists in our system"
	ErrDevAppointmentSlotTaken     = "a non-terminal appointment already exists for doctor and date"
	ErrDevInvalidAppointmentStatus = "appointment status is not one of the enumerated values"
	ErrDevNotAppointmentDoctor     = "caller is not the doctor assigned to the appointment"
	ErrDevTerminalStatusTransition = "strict transitions forbid leaving a terminal status"
	ErrDevAppointmentNotCompleted  = "appointment status must be completed before attaching a prescription"
	ErrDevPrescriptionExists       = "prescription already references this appointment"
	ErrDevPrescriptionNotExists    = "prescription not exists in our system"

	// Validation messages
	ErrDevValidationFailed           = "validation failed"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthTokenMalformed        = "authorization header is not a bearer token"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthCallerMissing         = "caller identity missing from request context"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"
	ErrDevDBFailedToCreateIndex      = "failed to create index on collection %s"

	// Minio messages
	ErrDevMinioFailedToCreateObject = "failed to create object into minio storage with bucket name '%s'"

	// Redis messages
	ErrDevRedisSetData        = "failed to SET data into redis"
	ErrDevRedisGetData        = "failed to GET data from redis"
	ErrDevRedisDeleteData     = "failed to DELETE data from redis"
	ErrDevRedisIncrementValue = "failed to INCR data in redis"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message into queue %s"

	// Server messages
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevServerPanicRecovered   = "panic recovered while serving request"
)

const (
	ErrEnvParsing = "Error parsing %s: %v, will use default value"
)
