package fhir_dto

type Composition struct {
	ResourceType string               `json:"resourceType"`
	ID           string               `json:"id,omitempty"`
	Status       string               `json:"status"`
	Type         CodeableConcept      `json:"type"`
	Subject      Reference            `json:"subject"`
	Date         string               `json:"date"`
	Author       []Reference          `json:"author"`
	Title        string               `json:"title"`
	Custodian    *Reference           `json:"custodian,omitempty"`
	Section      []CompositionSection `json:"section,omitempty"`
}

type CompositionSection struct {
	Title string          `json:"title,omitempty"`
	Code  CodeableConcept `json:"code,omitempty"`
	Entry []Reference     `json:"entry,omitempty"`
}
