package contracts

import (
	"context"
	"fisiosalud-service/internal/pkg/fhir_dto"
)

type ClinicalSummaryUsecase interface {
	PatientSummary(ctx context.Context, patientID string) (*fhir_dto.DocumentBundle, error)
	EncounterSummary(ctx context.Context, consultationID string) (*fhir_dto.DocumentBundle, error)
}
