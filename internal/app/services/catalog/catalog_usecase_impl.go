package catalog

import (
	"context"
	"fisiosalud-service/internal/app/contracts"
	"fisiosalud-service/internal/app/models"
)

type catalogUsecase struct {
	Catalog contracts.ServiceCatalog
}

func NewCatalogUsecase(serviceCatalog contracts.ServiceCatalog) contracts.CatalogUsecase {
	return &catalogUsecase{
		Catalog: serviceCatalog,
	}
}

func (uc *catalogUsecase) ListEntries(ctx context.Context) ([]models.CatalogEntry, error) {
	return uc.Catalog.Entries(), nil
}
