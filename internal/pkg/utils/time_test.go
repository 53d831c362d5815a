package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAgeAt(t *testing.T) {
	birth := time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("Before the birthday in the year", func(t *testing.T) {
		assert.Equal(t, 23, AgeAt(birth, time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("On the birthday", func(t *testing.T) {
		assert.Equal(t, 24, AgeAt(birth, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("After the birthday", func(t *testing.T) {
		assert.Equal(t, 24, AgeAt(birth, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("Never negative", func(t *testing.T) {
		assert.Equal(t, 0, AgeAt(birth, time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)))
	})
}

func TestFormatRIPSDateTime(t *testing.T) {
	t.Run("Truncates to the minute", func(t *testing.T) {
		ts := time.Date(2024, 5, 10, 14, 30, 45, 999, time.UTC)
		assert.Equal(t, "2024-05-10 14:30", FormatRIPSDateTime(ts))
	})

	t.Run("Round trips through ParseRIPSDateTime", func(t *testing.T) {
		parsed, err := ParseRIPSDateTime("2024-05-10 14:30")
		assert.NoError(t, err)
		assert.Equal(t, "2024-05-10 14:30", FormatRIPSDateTime(parsed))
	})
}
