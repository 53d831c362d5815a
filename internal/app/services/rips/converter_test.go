package rips

import (
	"fisiosalud-service/internal/app/models"
	"fisiosalud-service/internal/app/services/catalog"
	"fisiosalud-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var generatedAt = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestConverter() *Converter {
	converter := NewConverter(catalog.NewRegistry(nil))
	converter.Now = func() time.Time { return generatedAt }
	return converter
}

func adultPatient(id string) models.Patient {
	return models.Patient{
		ID:               id,
		DocumentType:     constvars.DocumentTypeCitizenshipCard,
		DocumentNumber:   "52123456",
		GivenNames:       "Laura",
		FamilyNames:      "Gómez",
		BirthDate:        models.NewFlexDate(time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC)),
		Sex:              "F",
		MunicipalityCode: "11001",
	}
}

func consultationEvent(patientID, reason string, value float64, at time.Time) models.ServiceEvent {
	return models.ServiceEvent{
		Kind: models.ServiceEventConsultation,
		Consultation: &models.Consultation{
			ID:        "con-1",
			PatientID: patientID,
			Date:      models.NewFlexDate(at),
			Reason:    reason,
			Value:     value,
		},
	}
}

func TestConvertConsultations(t *testing.T) {
	converter := newTestConverter()
	at := time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)

	t.Run("Prenatal consultation billed from the catalog", func(t *testing.T) {
		records := []models.PatientRecords{{
			Patient: adultPatient("p1"),
			Events:  []models.ServiceEvent{consultationEvent("p1", "Control de embarazo semana 20", 0, at)},
		}}

		result := converter.Convert(records, "901234567", "FV-100", false)

		assert.Empty(t, result.Errors)
		assert.Len(t, result.Document.Users, 1)
		assert.Len(t, result.Document.Services, 1)

		user := result.Document.Users[0]
		assert.Equal(t, 1, user.Sequence)
		assert.Equal(t, constvars.DocumentTypeCitizenshipCard, user.DocumentType)
		assert.Equal(t, "1990-03-15", user.BirthDate)
		assert.Equal(t, constvars.RIPSDefaultCountryCode, user.CountryCode)
		assert.Equal(t, constvars.RIPSDisabilityNotApplicable, user.Disability)

		block := result.Document.Services[0]
		assert.Equal(t, 1, block.Sequence)
		assert.Len(t, block.Consultations, 1)
		assert.Empty(t, block.Procedures)

		billed := block.Consultations[0]
		assert.Equal(t, "890301", billed.CUPSCode)
		assert.Equal(t, float64(70000), billed.Value)
		assert.Equal(t, constvars.DiagnosisPregnancySupervision, billed.PrincipalDx)
		assert.Equal(t, "2024-05-10 14:30", billed.StartDate)
		assert.Equal(t, models.PlaceholderProfessional.ID, billed.ProfessionalID)
		assert.Equal(t, models.PlaceholderProfessional.Name, billed.ProfessionalName)
	})

	t.Run("Event value takes precedence over the catalog", func(t *testing.T) {
		records := []models.PatientRecords{{
			Patient: adultPatient("p1"),
			Events:  []models.ServiceEvent{consultationEvent("p1", "control de embarazo", 75000, at)},
		}}

		result := converter.Convert(records, "901234567", "FV-100", false)

		assert.Empty(t, result.Errors)
		assert.Equal(t, float64(75000), result.Document.Services[0].Consultations[0].Value)
	})

	t.Run("Recorded diagnosis wins over the classifier", func(t *testing.T) {
		event := consultationEvent("p1", "control de embarazo", 0, at)
		event.Consultation.Diagnosis = "O234"
		records := []models.PatientRecords{{
			Patient: adultPatient("p1"),
			Events:  []models.ServiceEvent{event},
		}}

		result := converter.Convert(records, "901234567", "FV-100", false)

		assert.Equal(t, "O234", result.Document.Services[0].Consultations[0].PrincipalDx)
	})
}

func TestConvertGroupSessions(t *testing.T) {
	converter := newTestConverter()
	at := time.Date(2024, 5, 12, 9, 0, 0, 0, time.UTC)

	t.Run("Pelvic floor group session becomes a procedure", func(t *testing.T) {
		records := []models.PatientRecords{{
			Patient: adultPatient("p1"),
			Events: []models.ServiceEvent{{
				Kind: models.ServiceEventGroupSession,
				GroupSession: &models.GroupSession{
					ID:         "gs-1",
					Date:       models.NewFlexDate(at),
					Title:      "Terapia Grupal de Piso Pélvico",
					Instructor: &models.Professional{ID: "123", Name: "Ana Ruiz"},
					PatientIDs: []string{"p1"},
				},
			}},
		}}

		result := converter.Convert(records, "901234567", "FV-100", false)

		assert.Empty(t, result.Errors)
		block := result.Document.Services[0]
		assert.Empty(t, block.Consultations)
		assert.Len(t, block.Procedures, 1)

		procedure := block.Procedures[0]
		assert.Equal(t, "931401", procedure.CUPSCode)
		assert.Equal(t, float64(80000), procedure.Value)
		assert.Equal(t, constvars.DiagnosisUrinaryIncontinence, procedure.PrincipalDx)
		assert.Equal(t, "123", procedure.ProfessionalID)
		assert.Equal(t, "Ana Ruiz", procedure.ProfessionalName)
	})
}

func TestConvertPerinatalSessions(t *testing.T) {
	converter := newTestConverter()
	at := time.Date(2024, 5, 14, 10, 0, 0, 0, time.UTC)

	perinatal := func(sessionType string, value float64) models.ServiceEvent {
		return models.ServiceEvent{
			Kind: models.ServiceEventPerinatal,
			PerinatalSession: &models.PerinatalSession{
				ID:          "ps-1",
				PatientID:   "p1",
				Date:        models.NewFlexDate(at),
				SessionType: sessionType,
				Value:       value,
			},
		}
	}

	t.Run("Unclassified session type defaults to prenatal", func(t *testing.T) {
		records := []models.PatientRecords{{
			Patient: adultPatient("p1"),
			Events:  []models.ServiceEvent{perinatal("seguimiento", 0)},
		}}

		result := converter.Convert(records, "901234567", "FV-100", false)

		billed := result.Document.Services[0].Consultations[0]
		assert.Equal(t, "890301", billed.CUPSCode)
		assert.Equal(t, constvars.DiagnosisPregnancySupervision, billed.PrincipalDx)
		assert.Equal(t, float64(70000), billed.Value)
	})

	t.Run("Lactation session keeps its own category", func(t *testing.T) {
		records := []models.PatientRecords{{
			Patient: adultPatient("p1"),
			Events:  []models.ServiceEvent{perinatal("asesoría de lactancia", 0)},
		}}

		result := converter.Convert(records, "901234567", "FV-100", false)

		billed := result.Document.Services[0].Consultations[0]
		assert.Equal(t, constvars.DiagnosisLactationDisorder, billed.PrincipalDx)
		assert.Equal(t, float64(65000), billed.Value)
	})
}

func TestConvertDocumentTypeWarnings(t *testing.T) {
	converter := newTestConverter()
	at := time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)

	childPatient := func(docType string, birth time.Time) models.Patient {
		patient := adultPatient("child-1")
		patient.DocumentType = docType
		patient.BirthDate = models.NewFlexDate(birth)
		return patient
	}

	t.Run("Young child with adult document type is flagged but kept", func(t *testing.T) {
		records := []models.PatientRecords{{
			Patient: childPatient(constvars.DocumentTypeCitizenshipCard, time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)),
			Events:  []models.ServiceEvent{consultationEvent("child-1", "terapia motriz", 0, at)},
		}}

		result := converter.Convert(records, "901234567", "FV-100", false)

		assert.Empty(t, result.Errors)
		assert.Len(t, result.Document.Users, 1)
		assert.Len(t, result.Warnings, 1)
		assert.Contains(t, result.Warnings[0], "child-1")
	})

	t.Run("Minor with identity card passes clean", func(t *testing.T) {
		records := []models.PatientRecords{{
			Patient: childPatient(constvars.DocumentTypeIdentityCard, time.Date(2012, 1, 1, 0, 0, 0, 0, time.UTC)),
			Events:  []models.ServiceEvent{consultationEvent("child-1", "terapia motriz", 0, at)},
		}}

		result := converter.Convert(records, "901234567", "FV-100", false)

		assert.Empty(t, result.Errors)
		assert.Empty(t, result.Warnings)
	})
}

func TestConvertPartialSuccess(t *testing.T) {
	converter := newTestConverter()
	at := time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)

	t.Run("A corrupt patient does not stop the rest", func(t *testing.T) {
		broken := adultPatient("broken-1")
		broken.DocumentNumber = ""

		records := []models.PatientRecords{
			{Patient: broken, Events: []models.ServiceEvent{consultationEvent("broken-1", "control", 0, at)}},
			{Patient: adultPatient("ok-1"), Events: []models.ServiceEvent{consultationEvent("ok-1", "control de embarazo", 0, at)}},
		}

		result := converter.Convert(records, "901234567", "FV-100", false)

		assert.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "broken-1")
		assert.Len(t, result.Document.Users, 1)
		assert.Equal(t, 1, result.Document.Users[0].Sequence)
		assert.Equal(t, 1, result.Document.Services[0].Sequence)
	})

	t.Run("Missing birth date is a conversion error", func(t *testing.T) {
		broken := adultPatient("broken-2")
		broken.BirthDate = models.FlexDate{}

		result := converter.Convert([]models.PatientRecords{
			{Patient: broken, Events: []models.ServiceEvent{consultationEvent("broken-2", "control", 0, at)}},
		}, "901234567", "FV-100", false)

		assert.Len(t, result.Errors, 1)
		assert.Empty(t, result.Document.Users)
	})

	t.Run("Event without a date excludes the patient with an error", func(t *testing.T) {
		event := consultationEvent("p1", "control", 0, time.Time{})
		event.Consultation.Date = models.FlexDate{}

		result := converter.Convert([]models.PatientRecords{
			{Patient: adultPatient("p1"), Events: []models.ServiceEvent{event}},
		}, "901234567", "FV-100", false)

		assert.Len(t, result.Errors, 1)
		assert.Empty(t, result.Document.Users)
	})
}
