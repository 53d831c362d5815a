package fhir_dto

type FamilyMemberHistory struct {
	ResourceType string                  `json:"resourceType"`
	ID           string                  `json:"id,omitempty"`
	Status       string                  `json:"status"`
	Patient      Reference               `json:"patient"`
	Relationship CodeableConcept         `json:"relationship"`
	Condition    []FamilyMemberCondition `json:"condition,omitempty"`
}

type FamilyMemberCondition struct {
	Code CodeableConcept `json:"code"`
}
