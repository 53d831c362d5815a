package routers

import (
	"fisiosalud-service/internal/app/services/rips"

	"github.com/go-chi/chi/v5"
)

func attachRIPSRoutes(router chi.Router, ripsController *rips.RIPSController) {
	router.Post("/generate", ripsController.GenerateRIPS)
}
