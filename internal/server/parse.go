// ABOUTME: Unified day-entry parsing shared by every write entry point.
// ABOUTME: Tolerant numeric coercion: anything unreadable becomes zero.
package server

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/harperreed/fitpace/internal/tracker"
)

// entryFromForm reads a day entry from URL-form-encoded fields. Values
// are hand-typed; unparsable numbers degrade to zero rather than
// failing the save.
func entryFromForm(c *fiber.Ctx) tracker.DayEntry {
	return tracker.DayEntry{
		Pushups:      formInt(c.FormValue("pushups")),
		Pullups:      formInt(c.FormValue("pullups")),
		Dips:         formInt(c.FormValue("dips")),
		PlankMinutes: formFloat(c.FormValue("plank_minutes")),
	}
}

// entryFromJSON reads a day entry from a decoded JSON payload, with the
// same degrade-to-zero coercion as the form path.
func entryFromJSON(payload map[string]any) tracker.DayEntry {
	return tracker.DayEntry{
		Pushups:      jsonInt(payload["pushups"]),
		Pullups:      jsonInt(payload["pullups"]),
		Dips:         jsonInt(payload["dips"]),
		PlankMinutes: jsonFloat(payload["plank_minutes"]),
	}
}

func formInt(v string) int {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return int(f)
}

func formFloat(v string) float64 {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}

func jsonInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case string:
		return formInt(n)
	}
	return 0
}

func jsonFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		return formFloat(n)
	}
	return 0
}
