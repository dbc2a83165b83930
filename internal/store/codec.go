// ABOUTME: JSON codec for stored day records with tolerant attribute decoding.
// ABOUTME: Non-numeric or missing attributes degrade to zero instead of failing.
package store

import (
	"encoding/json"
	"strconv"

	"github.com/harperreed/fitpace/internal/models"
)

// encodeRecord marshals a record to its stored JSON attribute form.
func encodeRecord(rec models.DailyRecord) ([]byte, error) {
	return json.Marshal(rec)
}

// decodeRecord unmarshals a stored value. Attribute decoding is
// deliberately tolerant: a value that is missing, non-numeric, or of the
// wrong JSON type reads as zero, and never aborts the record. Hand-edited
// or legacy values therefore still aggregate.
func decodeRecord(data []byte, user, date string) models.DailyRecord {
	rec := models.DailyRecord{UserID: user, Date: date}

	var attrs map[string]any
	if err := json.Unmarshal(data, &attrs); err != nil {
		return rec
	}

	rec.Pushups = coerceInt(attrs["pushups"])
	rec.Pullups = coerceInt(attrs["pullups"])
	rec.Dips = coerceInt(attrs["dips"])
	rec.PlankSeconds = coerceInt(attrs["plank_seconds"])
	return rec
}

// coerceInt converts a decoded JSON value to an int, returning 0 for
// anything that is not a number or numeric string.
func coerceInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return int(f)
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return int(f)
	}
	return 0
}
