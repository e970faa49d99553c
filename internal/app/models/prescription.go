package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Medicine struct {
	Name     string `bson:"name"`
	Dosage   string `bson:"dosage"`
	Duration string `bson:"duration"`
}

type Prescription struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	AppointmentID   primitive.ObjectID `bson:"appointment"`
	DoctorID        primitive.ObjectID `bson:"doctor"`
	PatientID       primitive.ObjectID `bson:"patient"`
	Symptoms        string             `bson:"symptoms"`
	Diagnosis       string             `bson:"diagnosis"`
	Medicines       []Medicine         `bson:"medicines"`
	AdditionalNotes string             `bson:"additionalNotes"`
	TimeModel       `bson:",inline"`
}
