// ABOUTME: Immutable tracker configuration loaded from the environment.
// ABOUTME: Covers user identity, start date, goals, token, and backend selection.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/harperreed/fitpace/internal/models"
	"github.com/harperreed/fitpace/internal/store"
	"github.com/joho/godotenv"
)

// Default annual goals, matching the numbers the tracker launched with.
const (
	defaultGoalPushups      = 15000
	defaultGoalPullups      = 2000
	defaultGoalDips         = 5000
	defaultGoalPlankMinutes = 1500
)

// Config stores tracker configuration. Built once at startup and passed
// into the aggregation/pacing components; computation code never reads
// the environment directly.
type Config struct {
	// UserID is the single tracked user's partition key.
	UserID string

	// StartDate is the campaign start day (YYYY-MM-DD).
	StartDate string

	// Token is the shared secret gating every HTTP request.
	// Empty disables the gate.
	Token string

	// Timezone decides what "today" means, e.g. "America/Los_Angeles".
	Timezone string

	// Port is the HTTP listen port for the serve command.
	Port string

	// Backend selects the storage backend: "charm" (default) or "sqlite".
	Backend string

	// DataDir is the data directory for the sqlite backend.
	DataDir string

	// Goals maps each metric to its annual target.
	Goals models.GoalSet
}

// Load builds a Config from the environment. A .env file in the working
// directory is honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		UserID:    getEnv("FITPACE_USER", "kyle"),
		StartDate: getEnv("FITPACE_START_DATE", "2026-01-01"),
		Token:     getEnv("FITPACE_TOKEN", ""),
		Timezone:  getEnv("FITPACE_TZ", "America/Los_Angeles"),
		Port:      getEnv("FITPACE_PORT", "8080"),
		Backend:   getEnv("FITPACE_BACKEND", "charm"),
		DataDir:   getEnv("FITPACE_DATA_DIR", ""),
		Goals: models.GoalSet{
			models.MetricPushups:      getEnvInt("FITPACE_GOAL_PUSHUPS", defaultGoalPushups),
			models.MetricPullups:      getEnvInt("FITPACE_GOAL_PULLUPS", defaultGoalPullups),
			models.MetricDips:         getEnvInt("FITPACE_GOAL_DIPS", defaultGoalDips),
			models.MetricPlankSeconds: getEnvInt("FITPACE_GOAL_PLANK_MINUTES", defaultGoalPlankMinutes) * 60,
		},
	}

	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return nil, fmt.Errorf("invalid FITPACE_TZ %q: %w", cfg.Timezone, err)
	}

	return cfg, nil
}

// Location returns the configured timezone.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Now returns the current instant in the configured timezone.
func (c *Config) Now() time.Time {
	return time.Now().In(c.Location())
}

// Today returns today's date string in the configured timezone.
func (c *Config) Today() string {
	return c.Now().Format(models.DateLayout)
}

// StartDay parses the configured start date. An unparsable start date
// falls back to today, so pacing still reports a valid state.
func (c *Config) StartDay() time.Time {
	d, err := models.ParseDate(c.StartDate)
	if err != nil {
		today, _ := models.ParseDate(c.Today())
		return today
	}
	return d
}

// OpenStore creates a record store based on the configured backend.
func (c *Config) OpenStore() (store.Store, error) {
	switch c.Backend {
	case "charm":
		return store.OpenCharm()
	case "sqlite":
		dir := c.DataDir
		if dir == "" {
			dir = store.DefaultDataDir()
		}
		return store.OpenSQLite(dir)
	default:
		return nil, fmt.Errorf("unknown backend: %q", c.Backend)
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
