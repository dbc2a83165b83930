// ABOUTME: Tests for the tolerant record codec.
// ABOUTME: Corrupt or missing attributes must read as zero, not errors.
package store

import (
	"testing"
)

func TestDecodeRecordWellFormed(t *testing.T) {
	data := []byte(`{"user_id":"kyle","date":"2026-01-05","pushups":10,"pullups":5,"dips":3,"plank_seconds":120}`)

	rec := decodeRecord(data, "kyle", "2026-01-05")
	if rec.Pushups != 10 || rec.Pullups != 5 || rec.Dips != 3 || rec.PlankSeconds != 120 {
		t.Errorf("decoded = %+v", rec)
	}
}

func TestDecodeRecordNonNumericFieldReadsZero(t *testing.T) {
	// pullups is a word, dips is missing; the rest must still decode.
	data := []byte(`{"pushups":10,"pullups":"many","plank_seconds":90}`)

	rec := decodeRecord(data, "kyle", "2026-01-05")
	if rec.Pushups != 10 {
		t.Errorf("Pushups = %d, want 10", rec.Pushups)
	}
	if rec.Pullups != 0 {
		t.Errorf("Pullups = %d, want 0", rec.Pullups)
	}
	if rec.Dips != 0 {
		t.Errorf("Dips = %d, want 0", rec.Dips)
	}
	if rec.PlankSeconds != 90 {
		t.Errorf("PlankSeconds = %d, want 90", rec.PlankSeconds)
	}
}

func TestDecodeRecordNumericStringCoerces(t *testing.T) {
	data := []byte(`{"pushups":"25"}`)

	rec := decodeRecord(data, "kyle", "2026-01-05")
	if rec.Pushups != 25 {
		t.Errorf("Pushups = %d, want 25", rec.Pushups)
	}
}

func TestDecodeRecordGarbageValue(t *testing.T) {
	rec := decodeRecord([]byte("not json at all"), "kyle", "2026-01-05")

	if rec.UserID != "kyle" || rec.Date != "2026-01-05" {
		t.Errorf("identity not preserved: %+v", rec)
	}
	if rec.Pushups != 0 || rec.PlankSeconds != 0 {
		t.Errorf("expected all-zero record, got %+v", rec)
	}
}

func TestCoerceInt(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"float", float64(42), 42},
		{"int", 7, 7},
		{"numeric string", "13", 13},
		{"decimal string", "2.9", 2},
		{"word", "nope", 0},
		{"nil", nil, 0},
		{"bool", true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := coerceInt(tt.in); got != tt.want {
				t.Errorf("coerceInt(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
