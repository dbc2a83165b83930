// ABOUTME: Charm KV backend for the record store.
// ABOUTME: Cloud-synced key-value storage with keys of the form day:<user>:<date>.
package store

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/charm/kv"
	"github.com/harperreed/fitpace/internal/models"
)

const (
	dbName    = "fitpace"
	charmHost = "charm.2389.dev"

	dayPrefix = "day:"
)

// CharmStore persists records in Charm KV, an end-to-end encrypted
// key-value store that syncs through Charm Cloud. Single-key set and
// delete are atomic at the store; nothing spans keys.
type CharmStore struct {
	kv       *kv.KV
	autoSync bool
	mu       sync.RWMutex
}

// OpenCharm opens the Charm KV database, pulling remote state first when
// the database is writable.
func OpenCharm() (*CharmStore, error) {
	// Set server before opening KV
	if err := os.Setenv("CHARM_HOST", charmHost); err != nil {
		return nil, err
	}

	db, err := kv.OpenWithDefaultsFallback(dbName)
	if err != nil {
		return nil, fmt.Errorf("open charm kv: %w", err)
	}

	s := &CharmStore{kv: db, autoSync: true}

	if !db.IsReadOnly() {
		_ = db.Sync()
	}

	return s, nil
}

// Close closes the KV database connection.
func (s *CharmStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.kv != nil {
		return s.kv.Close()
	}
	return nil
}

// SetAutoSync enables or disables automatic sync after writes.
func (s *CharmStore) SetAutoSync(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.autoSync = enabled
}

// Sync synchronizes local state with Charm Cloud.
func (s *CharmStore) Sync() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.kv.IsReadOnly() {
		return nil
	}
	return s.kv.Sync()
}

func dayKey(user, date string) string {
	return dayPrefix + user + ":" + date
}

// Get returns the record for the date, or (nil, nil) when absent.
func (s *CharmStore) Get(user, date string) (*models.DailyRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	target := []byte(dayKey(user, date))

	keys, err := s.kv.Keys()
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}

	for _, key := range keys {
		if string(key) != string(target) {
			continue
		}
		val, err := s.kv.Get(key)
		if err != nil {
			return nil, fmt.Errorf("get %s: %w", date, err)
		}
		rec := decodeRecord(val, user, date)
		return &rec, nil
	}

	return nil, nil
}

// Put overwrites the record for the date wholesale.
func (s *CharmStore) Put(user, date string, rec models.DailyRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.kv.IsReadOnly() {
		return fmt.Errorf("cannot write: database is locked by another process (MCP server?)")
	}

	rec.UserID = user
	rec.Date = date
	data, err := encodeRecord(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	if err := s.kv.Set([]byte(dayKey(user, date)), data); err != nil {
		return err
	}
	s.syncIfEnabled()
	return nil
}

// Delete removes the record for the date, if present.
func (s *CharmStore) Delete(user, date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.kv.IsReadOnly() {
		return fmt.Errorf("cannot write: database is locked by another process (MCP server?)")
	}

	if err := s.kv.Delete([]byte(dayKey(user, date))); err != nil {
		return err
	}
	s.syncIfEnabled()
	return nil
}

// QueryRange returns all records with start <= date <= end for the user.
func (s *CharmStore) QueryRange(user, start, end string) ([]models.DailyRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prefix := dayPrefix + user + ":"

	keys, err := s.kv.Keys()
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}

	var records []models.DailyRecord
	for _, key := range keys {
		k := string(key)
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		date := strings.TrimPrefix(k, prefix)
		if date < start || date > end {
			continue
		}
		val, err := s.kv.Get(key)
		if err != nil {
			return nil, fmt.Errorf("get %s: %w", date, err)
		}
		records = append(records, decodeRecord(val, user, date))
	}

	return records, nil
}

// syncIfEnabled pushes to Charm Cloud after a write when auto-sync is on.
func (s *CharmStore) syncIfEnabled() {
	if s.autoSync && !s.kv.IsReadOnly() {
		_ = s.kv.Sync()
	}
}
