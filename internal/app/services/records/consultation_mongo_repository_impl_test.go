package records

import (
	"fisiosalud-service/internal/app/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func decodeConsultation(t *testing.T, raw bson.M) models.Consultation {
	t.Helper()
	data, err := bson.Marshal(raw)
	assert.NoError(t, err)

	var consultation models.Consultation
	assert.NoError(t, bson.Unmarshal(data, &consultation))
	return consultation
}

func TestLatestConsultation(t *testing.T) {
	t.Run("Newer string-dated document beats an older datetime one", func(t *testing.T) {
		typed := decodeConsultation(t, bson.M{
			"_id":        "c1",
			"pacienteId": "p1",
			"fecha":      time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC),
		})
		text := decodeConsultation(t, bson.M{
			"_id":        "c2",
			"pacienteId": "p1",
			"fecha":      "2024-06-02",
		})

		latest := latestConsultation([]models.Consultation{typed, text})

		assert.NotNil(t, latest)
		assert.Equal(t, "c2", latest.ID)
	})

	t.Run("Newer datetime document beats an older string one", func(t *testing.T) {
		text := decodeConsultation(t, bson.M{
			"_id":        "c3",
			"pacienteId": "p1",
			"fecha":      "2024-05-01",
		})
		typed := decodeConsultation(t, bson.M{
			"_id":        "c4",
			"pacienteId": "p1",
			"fecha":      time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC),
		})

		latest := latestConsultation([]models.Consultation{text, typed})

		assert.NotNil(t, latest)
		assert.Equal(t, "c4", latest.ID)
	})

	t.Run("No consultations yields nil", func(t *testing.T) {
		assert.Nil(t, latestConsultation(nil))
	})
}
