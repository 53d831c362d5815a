package fhir_dto

type Encounter struct {
	ResourceType    string            `json:"resourceType"`
	ID              string            `json:"id,omitempty"`
	Status          string            `json:"status"`
	Class           Coding            `json:"class"`
	Subject         Reference         `json:"subject"`
	Participant     []Participant     `json:"participant,omitempty"`
	Period          *Period           `json:"period,omitempty"`
	ReasonCode      []CodeableConcept `json:"reasonCode,omitempty"`
	ServiceProvider *Reference        `json:"serviceProvider,omitempty"`
}

type Participant struct {
	Individual Reference `json:"individual"`
}
