// ABOUTME: Fiber application hosting the tracker's single-path HTTP surface.
// ABOUTME: Wires middleware, templates, and the query-parameter dispatcher.
package server

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/harperreed/fitpace/internal/config"
	"github.com/harperreed/fitpace/internal/tracker"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server holds the Fiber app and the tracker service behind it.
type Server struct {
	app    *fiber.App
	svc    *tracker.Service
	cfg    *config.Config
	logger *log.Logger
	tmpl   *template.Template
}

// New builds the HTTP server around a tracker service.
func New(svc *tracker.Service, cfg *config.Config) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		svc:    svc,
		cfg:    cfg,
		logger: log.New(os.Stdout, "[fitpace] ", log.LstdFlags|log.LUTC),
		tmpl:   tmpl,
	}

	s.app = fiber.New(fiber.Config{
		AppName:      "fitpace",
		ErrorHandler: s.errorHandler,
	})

	s.app.Use(s.loggingMiddleware())
	s.app.Use(s.tokenGate())

	// The whole surface lives on one path; everything else is encoded
	// in query parameters.
	s.app.Get("/", s.handle)
	s.app.Post("/", s.handle)

	return s, nil
}

// App exposes the underlying Fiber app (used by tests).
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on the configured port until the process exits.
func (s *Server) Listen() error {
	return s.app.Listen(":" + s.cfg.Port)
}

// handle dispatches one request by its query parameters, in fixed
// priority order. Each branch produces exactly one response.
func (s *Server) handle(c *fiber.Ctx) error {
	isGet := c.Method() == fiber.MethodGet
	isPost := c.Method() == fiber.MethodPost
	api := c.Query("api")

	switch {
	case isGet && api == "get":
		return s.apiGet(c)
	case isGet && api == "data":
		return s.apiData(c)
	case isPost && api == "upsert":
		return s.apiUpsert(c)
	case isPost && api == "delete":
		return s.apiDelete(c)
	case isGet && c.Query("view") == "csv":
		return s.exportCSV(c)
	case c.Query("edit") != "":
		return s.legacyEdit(c)
	default:
		return s.page(c)
	}
}

// errorHandler is the outermost boundary: fiber errors keep their
// status, anything else becomes a 500 with the error's type and message
// as plain text. Diagnostic-friendly, acceptable for a single-operator
// tool.
func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	if e, ok := err.(*fiber.Error); ok {
		return c.Status(e.Code).SendString(e.Message)
	}
	return c.Status(fiber.StatusInternalServerError).
		SendString(fmt.Sprintf("%T: %v", err, err))
}
