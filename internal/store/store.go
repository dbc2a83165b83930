// ABOUTME: Record store interface for day-keyed fitness data.
// ABOUTME: Backends implement get/put/delete/range-query over (user, date) keys.
package store

import (
	"os"
	"path/filepath"

	"github.com/harperreed/fitpace/internal/models"
)

// Store defines the persistence contract for daily records. Records are
// addressed by (user, date); a put is always a full overwrite. QueryRange
// is inclusive on both bounds and makes no ordering guarantee; callers
// sort when order matters. Multi-call reads have no cross-call
// consistency guarantee.
type Store interface {
	// Get returns the record for the date, or (nil, nil) when absent.
	Get(user, date string) (*models.DailyRecord, error)

	// Put overwrites the record for the date wholesale.
	Put(user, date string, rec models.DailyRecord) error

	// Delete removes the record for the date. Deleting an absent date
	// is not an error.
	Delete(user, date string) error

	// QueryRange returns all records with start <= date <= end.
	QueryRange(user, start, end string) ([]models.DailyRecord, error)

	// Close releases the backend.
	Close() error
}

// DefaultDataDir returns the default data directory following XDG spec.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "fitpace")
}
