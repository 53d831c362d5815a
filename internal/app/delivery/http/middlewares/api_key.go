package middlewares

import (
	"fisiosalud-service/internal/pkg/constvars"
	"fisiosalud-service/internal/pkg/exceptions"
	"fisiosalud-service/internal/pkg/utils"
	"net/http"
)

// APIKeyGuard rejects requests that do not carry the configured service key.
// An empty configured key disables the guard, which local development relies
// on.
func (m *Middlewares) APIKeyGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		configuredKey := m.InternalConfig.App.APIKey
		if configuredKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		apiKey := r.Header.Get(constvars.HeaderAPIKey)
		if apiKey == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAPIKeyRequired(nil))
			return
		}
		if apiKey != configuredKey {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}
