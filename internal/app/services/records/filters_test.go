package records

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestDateRangeClauses(t *testing.T) {
	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Covers both storage representations", func(t *testing.T) {
		clauses := dateRangeClauses("fecha", from, to)

		assert.Len(t, clauses, 2)
		assert.Equal(t, bson.M{"fecha": bson.M{"$gte": from, "$lt": to}}, clauses[0])
		assert.Equal(t, bson.M{"fecha": bson.M{"$gte": "2024-05-01", "$lt": "2024-06-01"}}, clauses[1])
	})

	t.Run("Upper bound is exclusive on the next midnight", func(t *testing.T) {
		clauses := dateRangeClauses("fecha", time.Time{}, to)

		typed := clauses[0]["fecha"].(bson.M)
		assert.Equal(t, to, typed["$lt"])
		assert.NotContains(t, typed, "$lte")

		text := clauses[1]["fecha"].(bson.M)
		assert.Equal(t, "2024-06-01", text["$lt"])
	})

	t.Run("Lower bound alone keeps the window half open", func(t *testing.T) {
		clauses := dateRangeClauses("fecha", from, time.Time{})

		typed := clauses[0]["fecha"].(bson.M)
		assert.Equal(t, from, typed["$gte"])
		assert.NotContains(t, typed, "$lt")
	})

	t.Run("Fully open window yields no filter", func(t *testing.T) {
		assert.Nil(t, dateRangeClauses("fecha", time.Time{}, time.Time{}))
	})
}
