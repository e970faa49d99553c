package constvars

const (
	MongoCollectionUsers         = "users"
	MongoCollectionAppointments  = "appointments"
	MongoCollectionPrescriptions = "prescriptions"
)

const (
	MongoIndexAppointmentActiveSlot   = "doctor_date_active_unique"
	MongoIndexAppointmentPatientDate  = "patient_date"
	MongoIndexPrescriptionAppointment = "appointment_unique"
	MongoIndexPrescriptionPatient     = "patient_created_at"
	MongoIndexPrescriptionDoctor      = "doctor_created_at"
	MongoIndexUserEmail               = "email_unique"
)
