package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingInvoiceKey    = "invoice_number"
	LoggingPatientIDKey  = "patient_id"
	LoggingObjectNameKey = "object_name"
	LoggingQueueKey      = "queue"
	LoggingDurationKey   = "duration"
	LoggingStatusKey     = "status"
	LoggingMethodKey     = "method"
	LoggingPathKey       = "path"
)
