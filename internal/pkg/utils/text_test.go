package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	t.Run("Lowercases and strips diacritics", func(t *testing.T) {
		assert.Equal(t, "preparacion al parto", NormalizeText("Preparación al Parto"))
		assert.Equal(t, "piso pelvico", NormalizeText("PISO PÉLVICO"))
		assert.Equal(t, "gestacion", NormalizeText("Gestación"))
	})

	t.Run("Trims surrounding whitespace", func(t *testing.T) {
		assert.Equal(t, "masaje", NormalizeText("  Masaje  "))
	})

	t.Run("Empty input stays empty", func(t *testing.T) {
		assert.Equal(t, "", NormalizeText(""))
		assert.Equal(t, "", NormalizeText("   "))
	})

	t.Run("Enye folds to plain n", func(t *testing.T) {
		assert.Equal(t, "nino", NormalizeText("niño"))
	})
}
