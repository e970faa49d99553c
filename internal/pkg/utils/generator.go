package utils

import (
	"clinix-service/internal/pkg/constvars"
	"fmt"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// GeneratePrescriptionObjectName returns the archive key of a prescription,
// grouped by doctor.
func GeneratePrescriptionObjectName(doctorID, prescriptionID string, createdAt time.Time) string {
	return fmt.Sprintf("prescriptions/%s/%s_%s.json", doctorID, createdAt.UTC().Format("20060102_150405"), prescriptionID)
}
