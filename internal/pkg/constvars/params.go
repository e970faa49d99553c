package constvars

const (
	URLParamID            = "id"
	URLParamAppointmentID = "appointmentId"
)
