// ABOUTME: Tests for the export envelope renderings.
// ABOUTME: CSV header/format, JSON round trip, YAML shape.
package export

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/harperreed/fitpace/internal/models"
)

var testRows = []models.Row{
	{Date: "2026-01-01", Pushups: 10, Pullups: 5, Dips: 3, PlankMinutes: 2.0},
	{Date: "2026-01-02", Pushups: 20, Pullups: 0, Dips: 0, PlankMinutes: 1.5},
}

func TestCSV(t *testing.T) {
	data, err := New("kyle", testRows).CSV()
	if err != nil {
		t.Fatalf("CSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(lines))
	}
	if lines[0] != "date,pushups,pullups,dips,plank_minutes" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "2026-01-01,10,5,3,2.0" {
		t.Errorf("row = %q", lines[1])
	}
	if lines[2] != "2026-01-02,20,0,0,1.5" {
		t.Errorf("row = %q", lines[2])
	}
}

func TestJSON(t *testing.T) {
	data, err := New("kyle", testRows).JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var out Data
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Tool != "fitpace" || out.User != "kyle" {
		t.Errorf("envelope = %+v", out)
	}
	if len(out.Rows) != 2 || out.Rows[0].PlankMinutes != 2.0 {
		t.Errorf("rows = %+v", out.Rows)
	}
}

func TestYAML(t *testing.T) {
	data, err := New("kyle", testRows).YAML()
	if err != nil {
		t.Fatalf("YAML: %v", err)
	}

	s := string(data)
	if !strings.Contains(s, "tool: fitpace") {
		t.Errorf("missing tool line:\n%s", s)
	}
	if !strings.Contains(s, "date: \"2026-01-01\"") && !strings.Contains(s, "date: 2026-01-01") {
		t.Errorf("missing date row:\n%s", s)
	}
}
