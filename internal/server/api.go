// ABOUTME: JSON API handlers: single-day fetch, full listing, upsert, delete.
// ABOUTME: Malformed input answers 400; absent rows answer {"row": null}.
package server

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/harperreed/fitpace/internal/export"
	"github.com/harperreed/fitpace/internal/models"
)

// apiGet handles GET ?api=get&date=YYYY-MM-DD.
func (s *Server) apiGet(c *fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date required"})
	}
	if _, err := models.ParseDate(date); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date"})
	}

	rec, err := s.svc.Day(date)
	if err != nil {
		return err
	}
	if rec == nil {
		return c.JSON(fiber.Map{"row": nil})
	}
	return c.JSON(fiber.Map{"row": rec.ToRow()})
}

// apiData handles GET ?api=data: every row from the start date onward,
// newest first.
func (s *Server) apiData(c *fiber.Ctx) error {
	rows, err := s.svc.ListRows(true)
	if err != nil {
		return err
	}
	if rows == nil {
		rows = []models.Row{}
	}
	return c.JSON(fiber.Map{"rows": rows})
}

// apiUpsert handles POST ?api=upsert with a JSON day payload.
func (s *Server) apiUpsert(c *fiber.Ctx) error {
	var payload map[string]any
	if err := json.Unmarshal(c.Body(), &payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	date, _ := payload["date"].(string)
	if date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date is required"})
	}
	if _, err := models.ParseDate(date); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date format"})
	}

	if err := s.svc.SaveDay(date, entryFromJSON(payload)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"ok": true})
}

// apiDelete handles POST ?api=delete with {"date": ...}.
func (s *Server) apiDelete(c *fiber.Ctx) error {
	var payload map[string]any
	if err := json.Unmarshal(c.Body(), &payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	date, _ := payload["date"].(string)
	if date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date is required"})
	}

	if err := s.svc.DeleteDay(date); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"ok": true})
}

// exportCSV handles GET ?view=csv: all rows ascending, plank in minutes.
func (s *Server) exportCSV(c *fiber.Ctx) error {
	rows, err := s.svc.ListRows(false)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderCacheControl, "no-store")
	data, err := export.New(s.cfg.UserID, rows).CSV()
	if err != nil {
		return err
	}
	return c.Send(data)
}
