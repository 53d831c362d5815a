package catalog

import (
	"fisiosalud-service/internal/app/models"
	"fisiosalud-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRegistry(t *testing.T) {
	t.Run("Seeded defaults resolve every category key", func(t *testing.T) {
		registry := NewRegistry(nil)

		for _, entry := range DefaultEntries() {
			resolved := registry.EntryOf(entry.Key)
			assert.Equal(t, entry.Code, resolved.Code)
			assert.Equal(t, entry.Value, resolved.Value)
		}
	})

	t.Run("Loaded entries override the seed", func(t *testing.T) {
		registry := NewRegistry([]models.CatalogEntry{
			{Key: constvars.CategoryGeneralConsultation, Code: "890201", Value: 72000, Finality: "10", ServiceGroup: "01", Modality: "01"},
		})

		assert.Equal(t, float64(72000), registry.ValueOf(constvars.CategoryGeneralConsultation))
		// Other seeded entries stay untouched.
		assert.Equal(t, "931401", registry.CodeOf(constvars.CategoryPelvicFloorReeducation))
	})

	t.Run("Unknown keys fall back to general consultation", func(t *testing.T) {
		registry := NewRegistry(nil)

		fallback := registry.EntryOf("no-such-category")
		assert.Equal(t, constvars.CategoryGeneralConsultation, fallback.Key)
		assert.Equal(t, registry.CodeOf(constvars.CategoryGeneralConsultation), fallback.Code)
	})

	t.Run("Entries preserves order and is a copy", func(t *testing.T) {
		registry := NewRegistry(nil)

		entries := registry.Entries()
		assert.Len(t, entries, len(DefaultEntries()))
		assert.Equal(t, constvars.CategoryGeneralConsultation, entries[0].Key)

		entries[0].Value = 1
		assert.NotEqual(t, float64(1), registry.ValueOf(constvars.CategoryGeneralConsultation))
	})
}
