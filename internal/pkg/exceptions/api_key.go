package exceptions

import "fisiosalud-service/internal/pkg/constvars"

func ErrInvalidAPIKey(err error) *CustomError {
	return BuildNewCustomError(err, constvars.StatusUnauthorized, "Invalid API key", errDevInvalidAPIKey)
}

func ErrAPIKeyRequired(err error) *CustomError {
	return BuildNewCustomError(err, constvars.StatusUnauthorized, "API key is required", errDevAPIKeyRequired)
}

const (
	errDevInvalidAPIKey  = "INVALID_API_KEY"
	errDevAPIKeyRequired = "API_KEY_REQUIRED"
)
