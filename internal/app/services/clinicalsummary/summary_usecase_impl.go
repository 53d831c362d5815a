package clinicalsummary

import (
	"context"
	"fisiosalud-service/internal/app/config"
	"fisiosalud-service/internal/app/contracts"
	"fisiosalud-service/internal/app/models"
	"fisiosalud-service/internal/app/services/classifier"
	"fisiosalud-service/internal/pkg/constvars"
	"fisiosalud-service/internal/pkg/exceptions"
	"fisiosalud-service/internal/pkg/fhir_dto"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type clinicalSummaryUsecase struct {
	PatientRepository      contracts.PatientRepository
	ConsultationRepository contracts.ConsultationRepository
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
	Now                    func() time.Time
}

func NewClinicalSummaryUsecase(
	patientRepository contracts.PatientRepository,
	consultationRepository contracts.ConsultationRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ClinicalSummaryUsecase {
	return &clinicalSummaryUsecase{
		PatientRepository:      patientRepository,
		ConsultationRepository: consultationRepository,
		InternalConfig:         internalConfig,
		Log:                    logger,
		Now:                    time.Now,
	}
}

// PatientSummary builds the document bundle for a patient's most recent
// consultation. A patient without consultations still yields a bundle with
// the demographic resources only.
func (uc *clinicalSummaryUsecase) PatientSummary(ctx context.Context, patientID string) (*fhir_dto.DocumentBundle, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrRecordNotFound(fmt.Errorf("patient %s not found", patientID), constvars.ResourcePatient)
	}

	consultation, err := uc.ConsultationRepository.FindLatestByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return uc.buildBundle(ctx, *patient, consultation), nil
}

// EncounterSummary builds the document bundle for one specific consultation.
func (uc *clinicalSummaryUsecase) EncounterSummary(ctx context.Context, consultationID string) (*fhir_dto.DocumentBundle, error) {
	consultation, err := uc.ConsultationRepository.FindByID(ctx, consultationID)
	if err != nil {
		return nil, err
	}
	if consultation == nil {
		return nil, exceptions.ErrRecordNotFound(fmt.Errorf("consultation %s not found", consultationID), constvars.ResourceEncounter)
	}

	patient, err := uc.PatientRepository.FindByID(ctx, consultation.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrRecordNotFound(fmt.Errorf("patient %s not found", consultation.PatientID), constvars.ResourcePatient)
	}
	return uc.buildBundle(ctx, *patient, consultation), nil
}

func (uc *clinicalSummaryUsecase) buildBundle(ctx context.Context, patient models.Patient, consultation *models.Consultation) *fhir_dto.DocumentBundle {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	now := uc.Now()

	patientResource, patientRef := newPatientResource(patient)
	orgResource, orgRef := newOrganizationResource(
		uc.InternalConfig.FHIR.OrganizationID,
		uc.InternalConfig.FHIR.OrganizationName,
	)

	builder := newBundleBuilder("Resumen clinico de paciente", patientRef, orgRef, now)
	builder.AddEntry(patientResource, patientRef)
	builder.AddEntry(orgResource, orgRef)

	if consultation != nil {
		uc.addConsultation(builder, patient, consultation, patientRef, orgRef)
	}

	bundle := builder.Build(now)
	uc.Log.Info("clinical summary bundle built",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
		zap.Int("entry_count", len(bundle.Entry)),
	)
	return bundle
}

func (uc *clinicalSummaryUsecase) addConsultation(builder *bundleBuilder, patient models.Patient, consultation *models.Consultation, patientRef, orgRef fhir_dto.Reference) {
	professional := models.ServiceEvent{
		Kind:         models.ServiceEventConsultation,
		Consultation: consultation,
	}.ProfessionalIdentity()

	practitionerResource, practitionerRef := newPractitionerResource(professional, uc.InternalConfig.FHIR.PractitionerSystem)
	builder.AddEntry(practitionerResource, practitionerRef)

	encounterResource, encounterRef := newEncounterResource(consultation, patientRef, practitionerRef, orgRef)
	builder.AddSectioned(sectionEncounters, encounterResource, encounterRef)

	recordedAt := consultation.Date.Time()

	diagnosisCode := consultation.Diagnosis
	if diagnosisCode == "" {
		diagnosisCode = classifier.ClassifyDiagnosis(consultation.Reason)
	}
	conditionText := consultation.Reason
	if conditionText == "" {
		conditionText = diagnosisCode
	}
	conditionResource, conditionRef := newConditionResource(diagnosisCode, conditionText, patientRef, &encounterRef, recordedAt)
	builder.AddSectioned(sectionProblems, conditionResource, conditionRef)

	if !isSemanticNegative(consultation.PersonalHistory) {
		historyResource, historyRef := newConditionResource("", consultation.PersonalHistory, patientRef, nil, recordedAt)
		builder.AddSectioned(sectionProblems, historyResource, historyRef)
	}
	if !isSemanticNegative(consultation.Allergies) {
		allergyResource, allergyRef := newAllergyResource(consultation.Allergies, patientRef, recordedAt)
		builder.AddSectioned(sectionAllergies, allergyResource, allergyRef)
	}
	if !isSemanticNegative(consultation.Medications) {
		medicationResource, medicationRef := newMedicationStatementResource(consultation.Medications, patientRef, recordedAt)
		builder.AddSectioned(sectionMedications, medicationResource, medicationRef)
	}
	if !isSemanticNegative(consultation.FamilyHistory) {
		familyResource, familyRef := newFamilyHistoryResource(consultation.FamilyHistory, patientRef)
		builder.AddSectioned(sectionFamilyHist, familyResource, familyRef)
	}
	if !isSemanticNegative(consultation.TreatmentPlan) {
		carePlanResource, carePlanRef := newCarePlanResource(consultation.TreatmentPlan, patientRef, &encounterRef, recordedAt)
		builder.AddSectioned(sectionCarePlan, carePlanResource, carePlanRef)
	}
}
