package fhir_dto

type CarePlan struct {
	ResourceType string     `json:"resourceType"`
	ID           string     `json:"id,omitempty"`
	Status       string     `json:"status"`
	Intent       string     `json:"intent"`
	Title        string     `json:"title,omitempty"`
	Description  string     `json:"description,omitempty"`
	Subject      Reference  `json:"subject"`
	Encounter    *Reference `json:"encounter,omitempty"`
	Created      string     `json:"created,omitempty"`
}
