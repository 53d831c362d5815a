package clinicalsummary

import (
	"fisiosalud-service/internal/app/models"
	"fisiosalud-service/internal/pkg/constvars"
	"fisiosalud-service/internal/pkg/fhir_dto"
	"fisiosalud-service/internal/pkg/utils"
	"strings"
	"time"

	"github.com/google/uuid"
)

// semanticNegatives are history answers meaning "nothing to report". A field
// holding one of these emits no clinical resource at all.
var semanticNegatives = map[string]bool{
	"no":               true,
	"na":               true,
	"n/a":              true,
	"ninguno":          true,
	"ninguna":          true,
	"negativo":         true,
	"negativa":         true,
	"no refiere":       true,
	"sin antecedentes": true,
}

func isSemanticNegative(text string) bool {
	normalized := utils.NormalizeText(text)
	if normalized == "" {
		return true
	}
	if semanticNegatives[normalized] {
		return true
	}
	return strings.HasPrefix(normalized, "niega")
}

func reference(resourceType, id, display string) fhir_dto.Reference {
	return fhir_dto.Reference{
		Reference: resourceType + "/" + id,
		Type:      resourceType,
		Display:   display,
	}
}

func newPatientResource(patient models.Patient) (*fhir_dto.Patient, fhir_dto.Reference) {
	resource := &fhir_dto.Patient{
		ResourceType: constvars.ResourcePatient,
		ID:           patient.ID,
		Identifier: []fhir_dto.Identifier{{
			Use:    "official",
			System: patient.DocumentType,
			Value:  patient.DocumentNumber,
		}},
		Active: true,
		Name: []fhir_dto.HumanName{{
			Text:   patient.FullName(),
			Family: patient.FamilyNames,
			Given:  strings.Fields(patient.GivenNames),
		}},
		Gender: fhirGender(patient.Sex),
	}
	if !patient.BirthDate.IsZero() {
		resource.BirthDate = patient.BirthDate.Time().Format(constvars.RIPSDateLayout)
	}
	return resource, reference(constvars.ResourcePatient, patient.ID, patient.FullName())
}

func fhirGender(sex string) string {
	switch strings.ToUpper(strings.TrimSpace(sex)) {
	case "F":
		return "female"
	case "M":
		return "male"
	default:
		return "unknown"
	}
}

func newOrganizationResource(organizationID, organizationName string) (*fhir_dto.Organization, fhir_dto.Reference) {
	resource := &fhir_dto.Organization{
		ResourceType: constvars.ResourceOrganization,
		ID:           organizationID,
		Active:       true,
		Name:         organizationName,
	}
	return resource, reference(constvars.ResourceOrganization, organizationID, organizationName)
}

func newPractitionerResource(professional models.Professional, identifierSystem string) (*fhir_dto.Practitioner, fhir_dto.Reference) {
	id := professional.ID
	if id == "" {
		id = models.PlaceholderProfessional.ID
	}
	resource := &fhir_dto.Practitioner{
		ResourceType: constvars.ResourcePractitioner,
		ID:           id,
		Identifier: []fhir_dto.Identifier{{
			System: identifierSystem,
			Value:  id,
		}},
		Active: true,
		Name:   []fhir_dto.HumanName{{Text: professional.Name}},
	}
	return resource, reference(constvars.ResourcePractitioner, id, professional.Name)
}

func newEncounterResource(consultation *models.Consultation, subject, practitioner, organization fhir_dto.Reference) (*fhir_dto.Encounter, fhir_dto.Reference) {
	resource := &fhir_dto.Encounter{
		ResourceType: constvars.ResourceEncounter,
		ID:           consultation.ID,
		Status:       constvars.FhirEncounterStatusFinished,
		Class: fhir_dto.Coding{
			System: constvars.FhirSystemActCode,
			Code:   constvars.FhirEncounterClassAmbulatory,
		},
		Subject:         subject,
		Participant:     []fhir_dto.Participant{{Individual: practitioner}},
		ServiceProvider: &organization,
	}
	if !consultation.Date.IsZero() {
		start := consultation.Date.Time().Format(time.RFC3339)
		resource.Period = &fhir_dto.Period{Start: start, End: start}
	}
	if consultation.Reason != "" {
		resource.ReasonCode = []fhir_dto.CodeableConcept{{Text: consultation.Reason}}
	}
	return resource, reference(constvars.ResourceEncounter, consultation.ID, consultation.Reason)
}

func newConditionResource(code, text string, subject fhir_dto.Reference, encounter *fhir_dto.Reference, recordedAt time.Time) (*fhir_dto.Condition, fhir_dto.Reference) {
	id := uuid.NewString()
	concept := fhir_dto.CodeableConcept{Text: text}
	if code != "" {
		concept.Coding = []fhir_dto.Coding{{
			System: constvars.FhirSystemICD10,
			Code:   code,
		}}
	}
	resource := &fhir_dto.Condition{
		ResourceType: constvars.ResourceCondition,
		ID:           id,
		ClinicalStatus: &fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{{
				System: constvars.FhirSystemCondClinic,
				Code:   "active",
			}},
		},
		Code:      concept,
		Subject:   subject,
		Encounter: encounter,
	}
	if !recordedAt.IsZero() {
		resource.RecordedDate = recordedAt.Format(constvars.RIPSDateLayout)
	}
	return resource, reference(constvars.ResourceCondition, id, text)
}

func newAllergyResource(text string, patient fhir_dto.Reference, recordedAt time.Time) (*fhir_dto.AllergyIntolerance, fhir_dto.Reference) {
	id := uuid.NewString()
	resource := &fhir_dto.AllergyIntolerance{
		ResourceType: constvars.ResourceAllergyIntolerance,
		ID:           id,
		Code:         fhir_dto.CodeableConcept{Text: text},
		Patient:      patient,
	}
	if !recordedAt.IsZero() {
		resource.RecordedDate = recordedAt.Format(constvars.RIPSDateLayout)
	}
	return resource, reference(constvars.ResourceAllergyIntolerance, id, text)
}

func newMedicationStatementResource(text string, subject fhir_dto.Reference, assertedAt time.Time) (*fhir_dto.MedicationStatement, fhir_dto.Reference) {
	id := uuid.NewString()
	resource := &fhir_dto.MedicationStatement{
		ResourceType:              constvars.ResourceMedicationStatement,
		ID:                        id,
		Status:                    "active",
		MedicationCodeableConcept: fhir_dto.CodeableConcept{Text: text},
		Subject:                   subject,
	}
	if !assertedAt.IsZero() {
		resource.DateAsserted = assertedAt.Format(constvars.RIPSDateLayout)
	}
	return resource, reference(constvars.ResourceMedicationStatement, id, text)
}

func newFamilyHistoryResource(text string, patient fhir_dto.Reference) (*fhir_dto.FamilyMemberHistory, fhir_dto.Reference) {
	id := uuid.NewString()
	resource := &fhir_dto.FamilyMemberHistory{
		ResourceType: constvars.ResourceFamilyMemberHistory,
		ID:           id,
		Status:       "completed",
		Patient:      patient,
		Relationship: fhir_dto.CodeableConcept{Text: "familiar"},
		Condition: []fhir_dto.FamilyMemberCondition{{
			Code: fhir_dto.CodeableConcept{Text: text},
		}},
	}
	return resource, reference(constvars.ResourceFamilyMemberHistory, id, text)
}

func newCarePlanResource(text string, subject fhir_dto.Reference, encounter *fhir_dto.Reference, createdAt time.Time) (*fhir_dto.CarePlan, fhir_dto.Reference) {
	id := uuid.NewString()
	resource := &fhir_dto.CarePlan{
		ResourceType: constvars.ResourceCarePlan,
		ID:           id,
		Status:       constvars.FhirCarePlanStatusActive,
		Intent:       constvars.FhirCarePlanIntentPlan,
		Title:        constvars.SectionTitleCarePlan,
		Description:  text,
		Subject:      subject,
		Encounter:    encounter,
	}
	if !createdAt.IsZero() {
		resource.Created = createdAt.Format(constvars.RIPSDateLayout)
	}
	return resource, reference(constvars.ResourceCarePlan, id, constvars.SectionTitleCarePlan)
}
