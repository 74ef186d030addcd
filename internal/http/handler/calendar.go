package handler

import (
	"github.com/gofiber/fiber/v2"

	"campushub/internal/service"
)

// GetCalendar returns the next week of events, from cache when fresh.
// @Summary Get calendar events
// @Tags Calendar
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 500 {object} errorPayload
// @Failure 502 {object} errorPayload
// @Router /api/calendar [get]
func GetCalendar(svc service.CalendarService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.GetEvents(c.UserContext())
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(fiber.Map{"ok": true, "source": res.Source, "events": res.Events})
	}
}
