package catalog

import (
	"fisiosalud-service/internal/app/contracts"
	"fisiosalud-service/internal/app/models"
	"fisiosalud-service/internal/pkg/constvars"
)

// registry is the immutable in-memory catalog. It is built once at bootstrap
// and shared read-only across requests.
type registry struct {
	entries map[string]models.CatalogEntry
	ordered []models.CatalogEntry
}

// NewRegistry merges loaded entries over the seeded defaults, so every
// category key always resolves and operators may override values per entry.
func NewRegistry(loaded []models.CatalogEntry) contracts.ServiceCatalog {
	entries := make(map[string]models.CatalogEntry)
	var ordered []models.CatalogEntry
	for _, entry := range DefaultEntries() {
		entries[entry.Key] = entry
		ordered = append(ordered, entry)
	}
	for _, entry := range loaded {
		if entry.Key == "" {
			continue
		}
		if _, exists := entries[entry.Key]; !exists {
			ordered = append(ordered, entry)
		} else {
			for i := range ordered {
				if ordered[i].Key == entry.Key {
					ordered[i] = entry
					break
				}
			}
		}
		entries[entry.Key] = entry
	}
	return &registry{entries: entries, ordered: ordered}
}

// EntryOf resolves a category key, falling back to the general-consultation
// entry so callers never need a presence check.
func (r *registry) EntryOf(categoryKey string) models.CatalogEntry {
	if entry, ok := r.entries[categoryKey]; ok {
		return entry
	}
	return r.entries[constvars.CategoryGeneralConsultation]
}

func (r *registry) ValueOf(categoryKey string) float64 {
	return r.EntryOf(categoryKey).Value
}

func (r *registry) CodeOf(categoryKey string) string {
	return r.EntryOf(categoryKey).Code
}

func (r *registry) FinalityOf(categoryKey string) string {
	return r.EntryOf(categoryKey).Finality
}

func (r *registry) DiagnosisOf(categoryKey string) string {
	return r.EntryOf(categoryKey).Diagnosis
}

func (r *registry) Entries() []models.CatalogEntry {
	out := make([]models.CatalogEntry, len(r.ordered))
	copy(out, r.ordered)
	return out
}
