package models

import (
	"clinix-service/internal/pkg/constvars"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Appointment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	PatientID primitive.ObjectID `bson:"patient"`
	DoctorID  primitive.ObjectID `bson:"doctor"`
	Date      time.Time          `bson:"date"`
	Reason    string             `bson:"reason"`
	Status    string             `bson:"status"`
	// Active mirrors IsNonTerminalStatus(Status) and backs the partial unique
	// index on (doctor, date).
	Active    bool               `bson:"active"`
	TimeModel `bson:",inline"`
}

// SetStatus keeps Active consistent with the status it assigns.
func (a *Appointment) SetStatus(status string) {
	a.Status = status
	a.Active = IsNonTerminalStatus(status)
}

func IsValidAppointmentStatus(status string) bool {
	for _, s := range constvars.AppointmentStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func IsNonTerminalStatus(status string) bool {
	return status == constvars.AppointmentStatusPending || status == constvars.AppointmentStatusConfirmed
}

func IsTerminalStatus(status string) bool {
	return status == constvars.AppointmentStatusCompleted || status == constvars.AppointmentStatusCancelled
}
