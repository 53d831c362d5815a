package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "requestID"
)

const (
	ResourceRIPS              = "rips"
	ResourceCatalog           = "catalog"
	ResourceClinicalSummaries = "clinical-summaries"
)

const (
	MongoCollectionPatients          = "patients"
	MongoCollectionConsultations     = "consultations"
	MongoCollectionGroupSessions     = "group_sessions"
	MongoCollectionPerinatalSessions = "perinatal_sessions"
	MongoCollectionCatalog           = "catalog"
)

const (
	URLParamPatientID      = "patientID"
	URLParamConsultationID = "consultationID"
)

const (
	RedisRIPSInvoiceKeyFormat = "rips:invoice:%s"
)

const (
	MinioRIPSObjectNameFormat = "rips/%s.json"
)
