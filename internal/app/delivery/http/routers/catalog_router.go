package routers

import (
	"fisiosalud-service/internal/app/services/catalog"

	"github.com/go-chi/chi/v5"
)

func attachCatalogRoutes(router chi.Router, catalogController *catalog.CatalogController) {
	router.Get("/", catalogController.ListEntries)
}
