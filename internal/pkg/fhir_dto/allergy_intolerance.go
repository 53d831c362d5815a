package fhir_dto

type AllergyIntolerance struct {
	ResourceType string          `json:"resourceType"`
	ID           string          `json:"id,omitempty"`
	Code         CodeableConcept `json:"code"`
	Patient      Reference       `json:"patient"`
	RecordedDate string          `json:"recordedDate,omitempty"`
}
