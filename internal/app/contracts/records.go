package contracts

import (
	"context"
	"fisiosalud-service/internal/app/models"
	"time"
)

type PatientRepository interface {
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindByIDs(ctx context.Context, patientIDs []string) ([]models.Patient, error)
}

type ConsultationRepository interface {
	FindByID(ctx context.Context, consultationID string) (*models.Consultation, error)
	FindByPatientsInRange(ctx context.Context, patientIDs []string, from, to time.Time) ([]models.Consultation, error)
	FindPatientIDsInRange(ctx context.Context, from, to time.Time) ([]string, error)
	FindLatestByPatient(ctx context.Context, patientID string) (*models.Consultation, error)
}

type GroupSessionRepository interface {
	FindByPatientsInRange(ctx context.Context, patientIDs []string, from, to time.Time) ([]models.GroupSession, error)
	FindPatientIDsInRange(ctx context.Context, from, to time.Time) ([]string, error)
}

type PerinatalSessionRepository interface {
	FindByPatientsInRange(ctx context.Context, patientIDs []string, from, to time.Time) ([]models.PerinatalSession, error)
	FindPatientIDsInRange(ctx context.Context, from, to time.Time) ([]string, error)
}

// RecordAggregator resolves the patient set for a request and collects each
// patient's service events inside the inclusive [from, to] window. A zero
// from/to leaves that side of the window open. Patients without any event in
// range are dropped from the result.
type RecordAggregator interface {
	Collect(ctx context.Context, patientIDs []string, from, to time.Time) ([]models.PatientRecords, error)
}
