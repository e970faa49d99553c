package storage

import (
	"bytes"
	"clinix-service/internal/app/contracts"
	"clinix-service/internal/pkg/constvars"
	"clinix-service/internal/pkg/dto/responses"
	"clinix-service/internal/pkg/exceptions"
	"clinix-service/internal/pkg/utils"
	"context"

	"github.com/goccy/go-json"
	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
}

func NewMinioPrescriptionArchive(minioClient *minio.Client, bucketName string) contracts.PrescriptionArchive {
	return &minioStorage{
		MinioClient: minioClient,
		BucketName:  bucketName,
	}
}

func (m *minioStorage) Archive(ctx context.Context, prescription *responses.Prescription) (string, error) {
	body, err := json.Marshal(prescription)
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	objectName := utils.GeneratePrescriptionObjectName(prescription.DoctorID, prescription.ID, prescription.CreatedAt)
	_, err = m.MinioClient.PutObject(
		ctx,
		m.BucketName,
		objectName,
		bytes.NewReader(body),
		int64(len(body)),
		minio.PutObjectOptions{
			ContentType: constvars.MIMEApplicationJSON,
			UserMetadata: map[string]string{
				"appointment-id": prescription.AppointmentID,
				"patient-id":     prescription.PatientID,
			},
		},
	)
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, m.BucketName)
	}

	return objectName, nil
}
