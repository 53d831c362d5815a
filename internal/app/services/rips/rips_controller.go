package rips

import (
	"context"
	"fisiosalud-service/internal/app/config"
	"fisiosalud-service/internal/app/contracts"
	"fisiosalud-service/internal/pkg/constvars"
	"fisiosalud-service/internal/pkg/dto/requests"
	"fisiosalud-service/internal/pkg/exceptions"
	"fisiosalud-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type RIPSController struct {
	Log            *zap.Logger
	RIPSUsecase    contracts.RIPSUsecase
	InternalConfig *config.InternalConfig
}

func NewRIPSController(logger *zap.Logger, ripsUsecase contracts.RIPSUsecase, internalConfig *config.InternalConfig) *RIPSController {
	return &RIPSController{
		Log:            logger,
		RIPSUsecase:    ripsUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *RIPSController) GenerateRIPS(w http.ResponseWriter, r *http.Request) {
	timeout := time.Duration(ctrl.InternalConfig.RIPS.GenerationTimeoutInSecond) * time.Second
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	request := new(requests.GenerateRIPSRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	result, err := ctrl.RIPSUsecase.GenerateRIPS(ctx, request)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(ctx.Err()))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if len(result.Errors) > 0 {
		utils.BuildValidationFailureResponse(w, result.Errors, result.Warnings)
		return
	}

	message := constvars.RIPSGeneratedSuccess
	if result.FromCache {
		message = constvars.RIPSGeneratedFromCache
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, result)
}
