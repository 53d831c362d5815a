package routers

import (
	"fisiosalud-service/internal/app/config"
	"fisiosalud-service/internal/app/delivery/http/middlewares"
	"fisiosalud-service/internal/app/services/catalog"
	"fisiosalud-service/internal/app/services/clinicalsummary"
	"fisiosalud-service/internal/app/services/rips"
	"fisiosalud-service/internal/pkg/constvars"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	ripsController *rips.RIPSController,
	clinicalSummaryController *clinicalsummary.ClinicalSummaryController,
	catalogController *catalog.CatalogController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", constvars.HeaderAPIKey, constvars.HeaderRequestID},
		ExposedHeaders:   []string{constvars.HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)
	router.Use(middlewares.Recoverer)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		w.WriteHeader(constvars.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Use(middlewares.APIKeyGuard)

			r.Route("/rips", func(r chi.Router) {
				attachRIPSRoutes(r, ripsController)
			})

			r.Route("/clinical-summaries", func(r chi.Router) {
				attachClinicalSummaryRoutes(r, clinicalSummaryController)
			})

			r.Route("/catalog", func(r chi.Router) {
				attachCatalogRoutes(r, catalogController)
			})
		})
	})
}
