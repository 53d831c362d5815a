package contracts

import (
	"context"
	"fisiosalud-service/internal/pkg/dto/requests"
	"fisiosalud-service/internal/pkg/dto/responses"
)

type RIPSUsecase interface {
	GenerateRIPS(ctx context.Context, request *requests.GenerateRIPSRequest) (*responses.GenerateRIPSResult, error)
}
