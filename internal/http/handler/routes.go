package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"

	"campushub/internal/http/middleware"
	"campushub/internal/service"
	"campushub/internal/storage"
)

// Deps bundles what the HTTP layer needs.
type Deps struct {
	Store       storage.Store
	Status      service.StatusService
	Monitor     service.MonitorService
	Submissions service.SubmissionService
	Calendar    service.CalendarService
	AdminToken  string
	// Gatherer backs /metrics; nil leaves the endpoint unregistered.
	Gatherer prometheus.Gatherer
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	app.Get("/health", HealthCheck(d.Store))
	app.Get("/healthz", LivenessProbe())
	if d.Gatherer != nil {
		app.Get("/metrics", Metrics(d.Gatherer))
	}

	admin := middleware.AdminToken(d.AdminToken)
	api := app.Group("/api", middleware.NoStore())

	api.Get("/status", GetStatus(d.Status))
	api.Post("/status", admin, UpdateStatus(d.Status))
	api.All("/uptime-check", RunSweep(d.Monitor))

	api.Get("/submissions", ListSubmissions(d.Submissions))
	api.Post("/submissions", CreateSubmission(d.Submissions))
	api.Post("/submissions/rate", RateSubmission(d.Submissions))
	api.Get("/admin/submissions", admin, ListAllSubmissions(d.Submissions))
	api.Post("/admin/submissions/review", admin, ReviewSubmission(d.Submissions))

	api.Get("/calendar", GetCalendar(d.Calendar))
}
