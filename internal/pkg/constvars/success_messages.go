package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	RIPSGeneratedSuccess    = "RIPS document generated successfully"
	RIPSGeneratedFromCache  = "RIPS document served from cache"
	CatalogListedSuccess    = "catalog entries retrieved successfully"
	PatientSummarySuccess   = "patient clinical summary generated successfully"
	EncounterSummarySuccess = "encounter clinical summary generated successfully"
)
