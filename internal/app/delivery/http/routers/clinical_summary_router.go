package routers

import (
	"fisiosalud-service/internal/app/services/clinicalsummary"
	"fisiosalud-service/internal/pkg/constvars"
	"fmt"

	"github.com/go-chi/chi/v5"
)

func attachClinicalSummaryRoutes(router chi.Router, clinicalSummaryController *clinicalsummary.ClinicalSummaryController) {
	router.Get(fmt.Sprintf("/patients/{%s}", constvars.URLParamPatientID), clinicalSummaryController.PatientSummary)
	router.Get(fmt.Sprintf("/consultations/{%s}", constvars.URLParamConsultationID), clinicalSummaryController.EncounterSummary)
}
