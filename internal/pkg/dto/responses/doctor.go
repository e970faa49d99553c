package responses

type Doctor struct {
	ID             string `json:"_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Specialization string `json:"specialization,omitempty"`
}

type DoctorList struct {
	Success      bool     `json:"success"`
	TotalDoctors int      `json:"totalDoctors"`
	Doctors      []Doctor `json:"doctors"`
}
