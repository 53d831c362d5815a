package models

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// FlexDate reads date fields that legacy collections store either as a BSON
// datetime or as a plain "YYYY-MM-DD" string. Both decode to the same value,
// so range checks never conflate the two representations.
type FlexDate struct {
	t time.Time
}

func NewFlexDate(t time.Time) FlexDate {
	return FlexDate{t: t}
}

func (d FlexDate) Time() time.Time {
	return d.t
}

func (d FlexDate) IsZero() bool {
	return d.t.IsZero()
}

func (d *FlexDate) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.DateTime:
		d.t = rv.Time()
		return nil
	case bsontype.String:
		s, ok := rv.StringValueOK()
		if !ok {
			return fmt.Errorf("flexdate: malformed string value")
		}
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			parsed, err = time.Parse(time.RFC3339, s)
			if err != nil {
				return fmt.Errorf("flexdate: unsupported date string %q", s)
			}
		}
		d.t = parsed
		return nil
	case bsontype.Null:
		d.t = time.Time{}
		return nil
	default:
		return fmt.Errorf("flexdate: unsupported BSON type %s", t)
	}
}

func (d FlexDate) MarshalJSON() ([]byte, error) {
	if d.t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.t.Format("2006-01-02"))
}

func (d *FlexDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		d.t = time.Time{}
		return nil
	}
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		return err
	}
	d.t = parsed
	return nil
}
