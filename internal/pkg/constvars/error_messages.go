package constvars

// Validation messages, mapped by validator tag.
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
	"numeric":  "must be a number",
	"datetime": "must be a valid date",
}

// Tags that require parameter substitution.
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNoPatientsFound               = "no patients found for the requested criteria"
	ErrClientRecordNotFound                = "the requested record was not found"
	ErrClientRIPSValidationFailed          = "the generated RIPS document did not pass validation"
	ErrClientInvoiceIdentityRequired       = "either an invoice number or the no-invoice flag must be provided"
	ErrClientDateRangeOrPatientsRequired   = "a date range is required when no patient ids are provided"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON       = "cannot parse JSON"
	ErrDevCannotMarshalJSON     = "cannot marshal JSON"
	ErrDevValidationFailed      = "validation failed"
	ErrDevInvalidRequestPayload = "invalid request payload"

	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents from database"
	ErrDevDBFailedToDistinct         = "failed to run distinct query on database"
	ErrDevDBStringNotObjectID        = "given ID is not valid object ID"

	ErrDevCatalogLoadFailed = "failed to load service catalog"

	ErrDevRedisGetData = "failed to get data from redis"
	ErrDevRedisSetData = "failed to set data into redis"

	ErrDevMinioFailedToCreateObject = "failed to create object in bucket %s"

	ErrDevRabbitMQFailedToPublish = "failed to publish message to queue %s"

	ErrDevNoPatientsFound  = "record aggregation produced an empty patient set"
	ErrDevRecordNotFound   = "%s not found"
	ErrDevRIPSConversion   = "RIPS conversion failed"
	ErrDevServerProcess    = "internal server error"
	ErrDevDeadlineExceeded = "deadline exceeded"
)
