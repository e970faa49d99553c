package prescriptions

import (
	"clinix-service/internal/app/contracts"
	"clinix-service/internal/app/models"
	"clinix-service/internal/pkg/constvars"
	"clinix-service/internal/pkg/exceptions"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PrescriptionMongoRepository struct {
	Collection *mongo.Collection
}

func NewPrescriptionMongoRepository(db *mongo.Database) contracts.PrescriptionRepository {
	return &PrescriptionMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionPrescriptions),
	}
}

func (r *PrescriptionMongoRepository) CreatePrescription(ctx context.Context, prescription *models.Prescription) (string, error) {
	if prescription.ID.IsZero() {
		prescription.ID = primitive.NewObjectID()
	}
	result, err := r.Collection.InsertOne(ctx, prescription)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrPrescriptionAlreadyExist(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *PrescriptionMongoRepository) FindByAppointmentID(ctx context.Context, appointmentID primitive.ObjectID) (*models.Prescription, error) {
	var prescription models.Prescription
	err := r.Collection.FindOne(ctx, bson.M{"appointment": appointmentID}).Decode(&prescription)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &prescription, nil
}

func (r *PrescriptionMongoRepository) FindByPatientID(ctx context.Context, patientID primitive.ObjectID) ([]models.Prescription, error) {
	return r.findNewestFirst(ctx, bson.M{"patient": patientID})
}

func (r *PrescriptionMongoRepository) FindByDoctorID(ctx context.Context, doctorID primitive.ObjectID) ([]models.Prescription, error) {
	return r.findNewestFirst(ctx, bson.M{"doctor": doctorID})
}

func (r *PrescriptionMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "appointment", Value: 1}},
			Options: options.Index().SetName(constvars.MongoIndexPrescriptionAppointment).SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "patient", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName(constvars.MongoIndexPrescriptionPatient),
		},
		{
			Keys:    bson.D{{Key: "doctor", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName(constvars.MongoIndexPrescriptionDoctor),
		},
	})
	if err != nil {
		return exceptions.ErrMongoDBCreateIndex(err, constvars.MongoCollectionPrescriptions)
	}
	return nil
}

func (r *PrescriptionMongoRepository) findNewestFirst(ctx context.Context, filter bson.M) ([]models.Prescription, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	prescriptions := []models.Prescription{}
	if err := cursor.All(ctx, &prescriptions); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return prescriptions, nil
}
