package fhir_dto

// DocumentBundle is a FHIR document-type bundle. The first entry is always
// the Composition; every resource a Composition section references must also
// appear as an entry.
type DocumentBundle struct {
	ResourceType string        `json:"resourceType"`
	ID           string        `json:"id,omitempty"`
	Type         string        `json:"type"`
	Timestamp    string        `json:"timestamp,omitempty"`
	Entry        []BundleEntry `json:"entry"`
}

type BundleEntry struct {
	FullUrl  string      `json:"fullUrl,omitempty"`
	Resource interface{} `json:"resource"`
}
