package records

import (
	"fisiosalud-service/internal/pkg/constvars"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// dateRangeClauses builds the window filter for a date field that legacy
// collections store either as a BSON datetime or as a "YYYY-MM-DD" string.
// Both representations are matched, never conflated: the typed clause compares
// timestamps, the text clause compares the lexicographically ordered date
// strings. The lower bound is inclusive; the upper bound is the exclusive
// next-midnight instant produced by GenerateRIPSRequest.DateRange, so the
// closing day's string form also sorts below it. Returns nil when the window
// is fully open.
func dateRangeClauses(field string, from, to time.Time) []bson.M {
	typed := bson.M{}
	text := bson.M{}
	if !from.IsZero() {
		typed["$gte"] = from
		text["$gte"] = from.Format(constvars.RIPSDateLayout)
	}
	if !to.IsZero() {
		typed["$lt"] = to
		text["$lt"] = to.Format(constvars.RIPSDateLayout)
	}
	if len(typed) == 0 {
		return nil
	}
	return []bson.M{
		{field: typed},
		{field: text},
	}
}
