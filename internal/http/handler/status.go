package handler

import (
	"github.com/gofiber/fiber/v2"

	"campushub/internal/model"
	"campushub/internal/service"
)

type updateStatusRequest struct {
	ManualItems *[]model.ManualStatusItem `json:"manualItems" validate:"omitempty,max=100,dive"`
	Monitors    *[]model.Monitor          `json:"monitors" validate:"omitempty,max=50,dive"`
	Revision    *int64                    `json:"revision" validate:"omitempty,gte=0"`
}

// GetStatus returns the status document.
// @Summary Get status
// @Tags Status
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/status [get]
func GetStatus(svc service.StatusService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := svc.Get(c.UserContext())
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(fiber.Map{"ok": true, "state": doc})
	}
}

// UpdateStatus replaces manual items and/or monitors wholesale.
// @Summary Update status
// @Tags Status
// @Accept json
// @Produce json
// @Param X-Admin-Token header string true "Admin token"
// @Param payload body updateStatusRequest true "Fields to replace"
// @Success 200 {object} map[string]any
// @Failure 400 {object} errorPayload
// @Failure 401 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /api/status [post]
func UpdateStatus(svc service.StatusService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req updateStatusRequest
		if err := decodeJSON(c, &req); err != nil {
			return writeError(c, err)
		}

		doc, err := svc.Update(c.UserContext(), service.UpdateStatusInput{
			ManualItems: req.ManualItems,
			Monitors:    req.Monitors,
			Revision:    req.Revision,
		})
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(fiber.Map{"ok": true, "state": doc})
	}
}

// RunSweep triggers an uptime sweep. Any method is accepted.
// @Summary Run monitor sweep
// @Tags Status
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/uptime-check [get]
// @Router /api/uptime-check [post]
func RunSweep(svc service.MonitorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.RunSweep(c.UserContext())
		if err != nil {
			return writeError(c, err)
		}

		body := fiber.Map{"ok": true, "skipped": res.Skipped}
		if res.Skipped {
			body["reason"] = res.Reason
		} else {
			body["checkedAt"] = res.CheckedAt
			body["monitorsChecked"] = res.MonitorsChecked
		}
		return c.JSON(body)
	}
}
