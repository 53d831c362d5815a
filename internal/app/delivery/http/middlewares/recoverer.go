package middlewares

import (
	"fisiosalud-service/internal/pkg/constvars"
	"fisiosalud-service/internal/pkg/exceptions"
	"fisiosalud-service/internal/pkg/utils"
	"fmt"
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"
)

func (m *Middlewares) Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
				m.Log.Error("panic recovered",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Any("panic", rec),
					zap.ByteString("stack", debug.Stack()),
				)
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerProcess(fmt.Errorf("panic: %v", rec)))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
