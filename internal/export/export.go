// ABOUTME: Export functionality for tracker data.
// ABOUTME: Supports JSON, YAML, and CSV export formats.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/harperreed/fitpace/internal/models"
	"gopkg.in/yaml.v3"
)

// Data is the full export envelope.
type Data struct {
	Version    string       `json:"version" yaml:"version"`
	ExportedAt time.Time    `json:"exported_at" yaml:"exported_at"`
	Tool       string       `json:"tool" yaml:"tool"`
	User       string       `json:"user" yaml:"user"`
	Rows       []models.Row `json:"rows" yaml:"rows"`
}

// New builds an export envelope around the given rows.
func New(user string, rows []models.Row) *Data {
	return &Data{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "fitpace",
		User:       user,
		Rows:       rows,
	}
}

// JSON renders the envelope as indented JSON.
func (d *Data) JSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// YAML renders the envelope as YAML.
func (d *Data) YAML() ([]byte, error) {
	out := struct {
		Version    string    `yaml:"version"`
		ExportedAt string    `yaml:"exported_at"`
		Tool       string    `yaml:"tool"`
		User       string    `yaml:"user"`
		Rows       []yamlRow `yaml:"rows"`
	}{
		Version:    d.Version,
		ExportedAt: d.ExportedAt.Format(time.RFC3339),
		Tool:       d.Tool,
		User:       d.User,
		Rows:       make([]yamlRow, 0, len(d.Rows)),
	}
	for _, row := range d.Rows {
		out.Rows = append(out.Rows, yamlRow{
			Date:         row.Date,
			Pushups:      row.Pushups,
			Pullups:      row.Pullups,
			Dips:         row.Dips,
			PlankMinutes: row.PlankMinutes,
		})
	}
	return yaml.Marshal(out)
}

type yamlRow struct {
	Date         string  `yaml:"date"`
	Pushups      int     `yaml:"pushups"`
	Pullups      int     `yaml:"pullups"`
	Dips         int     `yaml:"dips"`
	PlankMinutes float64 `yaml:"plank_minutes"`
}

// CSV renders just the rows, headers first.
func (d *Data) CSV() ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteRowsCSV(&buf, d.Rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteRowsCSV writes rows as CSV with the canonical header. Plank
// minutes are formatted to one decimal.
func WriteRowsCSV(w io.Writer, rows []models.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "pushups", "pullups", "dips", "plank_minutes"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.Date,
			strconv.Itoa(row.Pushups),
			strconv.Itoa(row.Pullups),
			strconv.Itoa(row.Dips),
			fmt.Sprintf("%.1f", row.PlankMinutes),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row %s: %w", row.Date, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
