package appointments

import (
	"clinix-service/internal/app/contracts"
	"clinix-service/internal/app/models"
	"clinix-service/internal/pkg/constvars"
	"clinix-service/internal/pkg/exceptions"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Database) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionAppointments),
	}
}

var nonTerminalStatuses = bson.A{constvars.AppointmentStatusPending, constvars.AppointmentStatusConfirmed}

func (r *AppointmentMongoRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	if appointment.ID.IsZero() {
		appointment.ID = primitive.NewObjectID()
	}
	appointment.Active = models.IsNonTerminalStatus(appointment.Status)

	result, err := r.Collection.InsertOne(ctx, appointment)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrAppointmentSlotTaken(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID primitive.ObjectID) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.Collection.FindOne(ctx, bson.M{"_id": appointmentID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

// FindActiveByDoctorAndDate matches on status rather than the stored active
// flag so records written before the flag existed still count.
func (r *AppointmentMongoRepository) FindActiveByDoctorAndDate(ctx context.Context, doctorID primitive.ObjectID, date time.Time) (*models.Appointment, error) {
	filter := bson.M{
		"doctor": doctorID,
		"date":   date,
		"status": bson.M{"$in": nonTerminalStatuses},
	}

	var appointment models.Appointment
	err := r.Collection.FindOne(ctx, filter).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) FindByPatientID(ctx context.Context, patientID primitive.ObjectID) ([]models.Appointment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: -1}})
	return r.find(ctx, bson.M{"patient": patientID}, opts)
}

func (r *AppointmentMongoRepository) FindByDoctorID(ctx context.Context, doctorID primitive.ObjectID) ([]models.Appointment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "_id", Value: 1}})
	return r.find(ctx, bson.M{"doctor": doctorID}, opts)
}

func (r *AppointmentMongoRepository) FindByIDs(ctx context.Context, appointmentIDs []primitive.ObjectID) ([]models.Appointment, error) {
	if len(appointmentIDs) == 0 {
		return []models.Appointment{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": appointmentIDs}}, options.Find())
}

func (r *AppointmentMongoRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: -1}})
	return r.find(ctx, bson.M{}, opts)
}

// UpdateStatus returns the updated record, or nil when it does not exist.
// Moving back to a non-terminal status fails with a conflict when another
// appointment already holds the slot.
func (r *AppointmentMongoRepository) UpdateStatus(ctx context.Context, appointmentID primitive.ObjectID, status string) (*models.Appointment, error) {
	update := bson.M{
		"$set": bson.M{
			"status":    status,
			"active":    models.IsNonTerminalStatus(status),
			"updatedAt": time.Now().UTC().Truncate(time.Millisecond),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var appointment models.Appointment
	err := r.Collection.FindOneAndUpdate(ctx, bson.M{"_id": appointmentID}, update, opts).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, exceptions.ErrAppointmentSlotTaken(err)
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &appointment, nil
}

// EnsureIndexes backfills the active flag on records that predate it and
// creates the partial unique index that makes double booking impossible.
func (r *AppointmentMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.UpdateMany(ctx,
		bson.M{"active": bson.M{"$exists": false}, "status": bson.M{"$in": nonTerminalStatuses}},
		bson.M{"$set": bson.M{"active": true}},
	)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	_, err = r.Collection.UpdateMany(ctx,
		bson.M{"active": bson.M{"$exists": false}},
		bson.M{"$set": bson.M{"active": false}},
	)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}

	_, err = r.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "doctor", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().
				SetName(constvars.MongoIndexAppointmentActiveSlot).
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"active": true}),
		},
		{
			Keys:    bson.D{{Key: "patient", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index().SetName(constvars.MongoIndexAppointmentPatientDate),
		},
	})
	if err != nil {
		return exceptions.ErrMongoDBCreateIndex(err, constvars.MongoCollectionAppointments)
	}
	return nil
}

func (r *AppointmentMongoRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Appointment, error) {
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	appointments := []models.Appointment{}
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}
