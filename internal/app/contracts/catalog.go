package contracts

import (
	"context"
	"fisiosalud-service/internal/app/models"
)

// ServiceCatalog is the immutable registry of billable-service definitions.
// Accessors fall back to the general-consultation entry for unknown keys, so
// callers never receive a zero value.
type ServiceCatalog interface {
	ValueOf(categoryKey string) float64
	CodeOf(categoryKey string) string
	FinalityOf(categoryKey string) string
	DiagnosisOf(categoryKey string) string
	EntryOf(categoryKey string) models.CatalogEntry
	Entries() []models.CatalogEntry
}

type CatalogRepository interface {
	FindAll(ctx context.Context) ([]models.CatalogEntry, error)
}

type CatalogUsecase interface {
	ListEntries(ctx context.Context) ([]models.CatalogEntry, error)
}
