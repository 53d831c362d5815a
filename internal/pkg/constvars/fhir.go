package constvars

const (
	ResourcePatient             = "Patient"
	ResourcePractitioner        = "Practitioner"
	ResourceOrganization        = "Organization"
	ResourceEncounter           = "Encounter"
	ResourceCondition           = "Condition"
	ResourceAllergyIntolerance  = "AllergyIntolerance"
	ResourceMedicationStatement = "MedicationStatement"
	ResourceFamilyMemberHistory = "FamilyMemberHistory"
	ResourceCarePlan            = "CarePlan"
	ResourceComposition         = "Composition"
	ResourceBundle              = "Bundle"
)

const (
	FhirBundleTypeDocument       = "document"
	FhirCompositionStatusFinal   = "final"
	FhirEncounterStatusFinished  = "finished"
	FhirEncounterClassAmbulatory = "AMB"
	FhirCarePlanStatusActive     = "active"
	FhirCarePlanIntentPlan       = "plan"
	FhirNarrativeStatusGenerated = "generated"
)

const (
	FhirSystemLoinc       = "http://loinc.org"
	FhirSystemICD10       = "http://hl7.org/fhir/sid/icd-10"
	FhirSystemActCode     = "http://terminology.hl7.org/CodeSystem/v3-ActCode"
	FhirSystemCondClinic  = "http://terminology.hl7.org/CodeSystem/condition-clinical"
	FhirSystemDocumentTip = "urn:oid:2.16.840.1.113883.4.642.3.90"
)

// LOINC codes for the composition document type and its sections.
const (
	LoincPatientSummaryDoc  = "60591-5"
	LoincSectionProblems    = "11450-4"
	LoincSectionAllergies   = "48765-2"
	LoincSectionMedications = "10160-0"
	LoincSectionFamilyHist  = "10157-6"
	LoincSectionCarePlan    = "18776-5"
	LoincSectionEncounters  = "46240-8"
)

const (
	SectionTitleProblems    = "Problemas y diagnosticos"
	SectionTitleAllergies   = "Alergias"
	SectionTitleMedications = "Medicamentos"
	SectionTitleFamilyHist  = "Antecedentes familiares"
	SectionTitleCarePlan    = "Plan de manejo"
	SectionTitleEncounters  = "Atenciones"
)
