package clinicalsummary

import (
	"context"
	"fisiosalud-service/internal/app/config"
	"fisiosalud-service/internal/app/contracts"
	"fisiosalud-service/internal/app/models"
	"fisiosalud-service/internal/pkg/constvars"
	"fisiosalud-service/internal/pkg/exceptions"
	"fisiosalud-service/internal/pkg/fhir_dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakePatientRepository struct {
	patients map[string]models.Patient
}

func (f *fakePatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	if patient, ok := f.patients[patientID]; ok {
		return &patient, nil
	}
	return nil, nil
}

func (f *fakePatientRepository) FindByIDs(ctx context.Context, patientIDs []string) ([]models.Patient, error) {
	return nil, nil
}

type fakeConsultationRepository struct {
	consultations map[string]models.Consultation
	latest        map[string]models.Consultation
}

func (f *fakeConsultationRepository) FindByID(ctx context.Context, consultationID string) (*models.Consultation, error) {
	if consultation, ok := f.consultations[consultationID]; ok {
		return &consultation, nil
	}
	return nil, nil
}

func (f *fakeConsultationRepository) FindByPatientsInRange(ctx context.Context, patientIDs []string, from, to time.Time) ([]models.Consultation, error) {
	return nil, nil
}

func (f *fakeConsultationRepository) FindPatientIDsInRange(ctx context.Context, from, to time.Time) ([]string, error) {
	return nil, nil
}

func (f *fakeConsultationRepository) FindLatestByPatient(ctx context.Context, patientID string) (*models.Consultation, error) {
	if consultation, ok := f.latest[patientID]; ok {
		return &consultation, nil
	}
	return nil, nil
}

func testPatient() models.Patient {
	return models.Patient{
		ID:             "p1",
		DocumentType:   constvars.DocumentTypeCitizenshipCard,
		DocumentNumber: "52123456",
		GivenNames:     "Laura María",
		FamilyNames:    "Gómez",
		BirthDate:      models.NewFlexDate(time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC)),
		Sex:            "F",
	}
}

func testConsultation() models.Consultation {
	return models.Consultation{
		ID:              "c1",
		PatientID:       "p1",
		Date:            models.NewFlexDate(time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)),
		Reason:          "control de embarazo",
		Professional:    &models.Professional{ID: "900", Name: "Ana Ruiz"},
		PersonalHistory: "cesárea previa",
		FamilyHistory:   "diabetes materna",
		Allergies:       "penicilina",
		Medications:     "sulfato ferroso",
		TreatmentPlan:   "ejercicios de piso pélvico, control en 4 semanas",
	}
}

func newTestUsecase(patients *fakePatientRepository, consultations *fakeConsultationRepository) contracts.ClinicalSummaryUsecase {
	internalConfig := &config.InternalConfig{
		FHIR: config.FHIR{
			OrganizationID:     "fisiosalud-ips",
			OrganizationName:   "FisioSalud IPS",
			PractitionerSystem: "https://fisiosalud.co/practitioners",
		},
	}
	return NewClinicalSummaryUsecase(patients, consultations, internalConfig, zap.NewNop())
}

func bundleResourceTypes(bundle *fhir_dto.DocumentBundle) []string {
	var types []string
	for _, entry := range bundle.Entry {
		switch resource := entry.Resource.(type) {
		case *fhir_dto.Composition:
			types = append(types, resource.ResourceType)
		case *fhir_dto.Patient:
			types = append(types, resource.ResourceType)
		case *fhir_dto.Practitioner:
			types = append(types, resource.ResourceType)
		case *fhir_dto.Organization:
			types = append(types, resource.ResourceType)
		case *fhir_dto.Encounter:
			types = append(types, resource.ResourceType)
		case *fhir_dto.Condition:
			types = append(types, resource.ResourceType)
		case *fhir_dto.AllergyIntolerance:
			types = append(types, resource.ResourceType)
		case *fhir_dto.MedicationStatement:
			types = append(types, resource.ResourceType)
		case *fhir_dto.FamilyMemberHistory:
			types = append(types, resource.ResourceType)
		case *fhir_dto.CarePlan:
			types = append(types, resource.ResourceType)
		}
	}
	return types
}

func TestPatientSummary(t *testing.T) {
	patients := &fakePatientRepository{patients: map[string]models.Patient{"p1": testPatient()}}
	consultations := &fakeConsultationRepository{
		consultations: map[string]models.Consultation{"c1": testConsultation()},
		latest:        map[string]models.Consultation{"p1": testConsultation()},
	}
	usecase := newTestUsecase(patients, consultations)

	t.Run("Unknown patient is a 404", func(t *testing.T) {
		_, err := usecase.PatientSummary(context.Background(), "ghost")

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("Composition comes first in a document bundle", func(t *testing.T) {
		bundle, err := usecase.PatientSummary(context.Background(), "p1")

		assert.NoError(t, err)
		assert.Equal(t, constvars.ResourceBundle, bundle.ResourceType)
		assert.Equal(t, constvars.FhirBundleTypeDocument, bundle.Type)
		assert.NotEmpty(t, bundle.Entry)

		composition, ok := bundle.Entry[0].Resource.(*fhir_dto.Composition)
		assert.True(t, ok, "first entry must be the Composition")
		assert.Equal(t, constvars.FhirCompositionStatusFinal, composition.Status)
	})

	t.Run("Every section reference resolves to a bundle entry", func(t *testing.T) {
		bundle, err := usecase.PatientSummary(context.Background(), "p1")
		assert.NoError(t, err)

		fullUrls := map[string]bool{}
		for _, entry := range bundle.Entry {
			fullUrls[entry.FullUrl] = true
		}

		composition := bundle.Entry[0].Resource.(*fhir_dto.Composition)
		assert.NotEmpty(t, composition.Section)
		for _, section := range composition.Section {
			assert.NotEmpty(t, section.Entry)
			for _, ref := range section.Entry {
				assert.True(t, fullUrls[ref.Reference], "section reference %s has no bundle entry", ref.Reference)
			}
		}
	})

	t.Run("Full history yields all clinical resources", func(t *testing.T) {
		bundle, err := usecase.PatientSummary(context.Background(), "p1")
		assert.NoError(t, err)

		types := bundleResourceTypes(bundle)
		assert.Contains(t, types, constvars.ResourcePatient)
		assert.Contains(t, types, constvars.ResourceOrganization)
		assert.Contains(t, types, constvars.ResourcePractitioner)
		assert.Contains(t, types, constvars.ResourceEncounter)
		assert.Contains(t, types, constvars.ResourceCondition)
		assert.Contains(t, types, constvars.ResourceAllergyIntolerance)
		assert.Contains(t, types, constvars.ResourceMedicationStatement)
		assert.Contains(t, types, constvars.ResourceFamilyMemberHistory)
		assert.Contains(t, types, constvars.ResourceCarePlan)
	})

	t.Run("Semantic negatives emit no resources", func(t *testing.T) {
		consultation := testConsultation()
		consultation.PersonalHistory = "niega antecedentes"
		consultation.FamilyHistory = "ninguno"
		consultation.Allergies = "NO"
		consultation.Medications = "sin antecedentes"
		consultation.TreatmentPlan = ""
		negatives := &fakeConsultationRepository{
			latest: map[string]models.Consultation{"p1": consultation},
		}
		usecase := newTestUsecase(patients, negatives)

		bundle, err := usecase.PatientSummary(context.Background(), "p1")
		assert.NoError(t, err)

		types := bundleResourceTypes(bundle)
		assert.NotContains(t, types, constvars.ResourceAllergyIntolerance)
		assert.NotContains(t, types, constvars.ResourceMedicationStatement)
		assert.NotContains(t, types, constvars.ResourceFamilyMemberHistory)
		assert.NotContains(t, types, constvars.ResourceCarePlan)
		// The encounter's own diagnosis condition is still present.
		assert.Contains(t, types, constvars.ResourceCondition)
	})

	t.Run("Patient without consultations gets a demographic bundle", func(t *testing.T) {
		empty := &fakeConsultationRepository{}
		usecase := newTestUsecase(patients, empty)

		bundle, err := usecase.PatientSummary(context.Background(), "p1")
		assert.NoError(t, err)

		types := bundleResourceTypes(bundle)
		assert.Contains(t, types, constvars.ResourcePatient)
		assert.NotContains(t, types, constvars.ResourceEncounter)
	})
}

func TestEncounterSummary(t *testing.T) {
	patients := &fakePatientRepository{patients: map[string]models.Patient{"p1": testPatient()}}
	consultations := &fakeConsultationRepository{
		consultations: map[string]models.Consultation{"c1": testConsultation()},
	}
	usecase := newTestUsecase(patients, consultations)

	t.Run("Unknown consultation is a 404", func(t *testing.T) {
		_, err := usecase.EncounterSummary(context.Background(), "ghost")

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("Builds the bundle for one consultation", func(t *testing.T) {
		bundle, err := usecase.EncounterSummary(context.Background(), "c1")

		assert.NoError(t, err)
		types := bundleResourceTypes(bundle)
		assert.Contains(t, types, constvars.ResourceEncounter)
		assert.Contains(t, types, constvars.ResourcePractitioner)

		for _, entry := range bundle.Entry {
			if practitioner, ok := entry.Resource.(*fhir_dto.Practitioner); ok {
				assert.Equal(t, "900", practitioner.ID)
				assert.Equal(t, "Ana Ruiz", practitioner.Name[0].Text)
			}
		}
	})
}
