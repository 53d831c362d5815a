package clinicalsummary

import (
	"context"
	"fisiosalud-service/internal/app/contracts"
	"fisiosalud-service/internal/pkg/constvars"
	"fisiosalud-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ClinicalSummaryController struct {
	Log                    *zap.Logger
	ClinicalSummaryUsecase contracts.ClinicalSummaryUsecase
}

func NewClinicalSummaryController(logger *zap.Logger, clinicalSummaryUsecase contracts.ClinicalSummaryUsecase) *ClinicalSummaryController {
	return &ClinicalSummaryController{
		Log:                    logger,
		ClinicalSummaryUsecase: clinicalSummaryUsecase,
	}
}

func (ctrl *ClinicalSummaryController) PatientSummary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	bundle, err := ctrl.ClinicalSummaryUsecase.PatientSummary(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildRawJSONResponse(w, constvars.StatusOK, bundle)
}

func (ctrl *ClinicalSummaryController) EncounterSummary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	consultationID := chi.URLParam(r, constvars.URLParamConsultationID)
	bundle, err := ctrl.ClinicalSummaryUsecase.EncounterSummary(ctx, consultationID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildRawJSONResponse(w, constvars.StatusOK, bundle)
}
