package fhir_dto

type Condition struct {
	ResourceType   string           `json:"resourceType"`
	ID             string           `json:"id,omitempty"`
	ClinicalStatus *CodeableConcept `json:"clinicalStatus,omitempty"`
	Code           CodeableConcept  `json:"code"`
	Subject        Reference        `json:"subject"`
	Encounter      *Reference       `json:"encounter,omitempty"`
	RecordedDate   string           `json:"recordedDate,omitempty"`
	Note           []Annotation     `json:"note,omitempty"`
}
