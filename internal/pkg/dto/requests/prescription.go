package requests

type Medicine struct {
	Name     string `json:"name" validate:"required"`
	Dosage   string `json:"dosage" validate:"required"`
	Duration string `json:"duration" validate:"required"`
}

type CreatePrescription struct {
	Symptoms        string     `json:"symptoms"`
	Diagnosis       string     `json:"diagnosis"`
	Medicines       []Medicine `json:"medicines" validate:"dive"`
	AdditionalNotes string     `json:"additionalNotes"`
	Notes           string     `json:"notes"`
}

// ResolvedNotes prefers additionalNotes and falls back to the notes alias.
func (r CreatePrescription) ResolvedNotes() string {
	if r.AdditionalNotes != "" {
		return r.AdditionalNotes
	}
	return r.Notes
}
