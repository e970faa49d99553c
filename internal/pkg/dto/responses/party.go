package responses

import (
	"bytes"

	"github.com/goccy/go-json"
)

// The patient and doctor keys are always emitted: the populated identity
// object, or the raw id string when the side is not populated.

type parties struct {
	Patient interface{} `json:"patient"`
	Doctor  interface{} `json:"doctor"`
}

type rawParties struct {
	Patient json.RawMessage `json:"patient"`
	Doctor  json.RawMessage `json:"doctor"`
}

func partyOrID(identity *Identity, id string) interface{} {
	if identity != nil {
		return identity
	}
	return id
}

// decodeParty returns nil for a raw id or null.
func decodeParty(raw json.RawMessage) (*Identity, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, nil
	}
	var identity Identity
	if err := json.Unmarshal(raw, &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

func decodeParties(data []byte) (patient, doctor *Identity, err error) {
	var raw rawParties
	if err = json.Unmarshal(data, &raw); err != nil {
		return nil, nil, err
	}
	if patient, err = decodeParty(raw.Patient); err != nil {
		return nil, nil, err
	}
	if doctor, err = decodeParty(raw.Doctor); err != nil {
		return nil, nil, err
	}
	return patient, doctor, nil
}

type appointmentFields Appointment

func (a Appointment) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		appointmentFields
		parties
	}{
		appointmentFields: appointmentFields(a),
		parties:           parties{Patient: partyOrID(a.Patient, a.PatientID), Doctor: partyOrID(a.Doctor, a.DoctorID)},
	})
}

func (a *Appointment) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, (*appointmentFields)(a)); err != nil {
		return err
	}
	patient, doctor, err := decodeParties(data)
	if err != nil {
		return err
	}
	a.Patient, a.Doctor = patient, doctor
	return nil
}

type prescriptionFields Prescription

func (p Prescription) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		prescriptionFields
		parties
	}{
		prescriptionFields: prescriptionFields(p),
		parties:            parties{Patient: partyOrID(p.Patient, p.PatientID), Doctor: partyOrID(p.Doctor, p.DoctorID)},
	})
}

func (p *Prescription) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, (*prescriptionFields)(p)); err != nil {
		return err
	}
	patient, doctor, err := decodeParties(data)
	if err != nil {
		return err
	}
	p.Patient, p.Doctor = patient, doctor
	return nil
}
