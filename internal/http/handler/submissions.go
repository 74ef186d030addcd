package handler

import (
	"github.com/gofiber/fiber/v2"

	"campushub/internal/model"
	"campushub/internal/service"
)

type createSubmissionRequest struct {
	Title    string `json:"title" validate:"max=200"`
	Course   string `json:"course" validate:"max=100"`
	Category string `json:"category" validate:"max=32"`
	FileURL  string `json:"fileUrl" validate:"max=2048"`
}

type reviewSubmissionRequest struct {
	ID     string  `json:"id" validate:"max=128"`
	Action string  `json:"action" validate:"max=16"`
	Note   *string `json:"note"`
}

type rateSubmissionRequest struct {
	ID     string `json:"id" validate:"required,max=128"`
	Rating int    `json:"rating" validate:"min=1,max=5"`
}

// ListSubmissions returns approved submissions with their ratings.
// @Summary List public submissions
// @Tags Submissions
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/submissions [get]
func ListSubmissions(svc service.SubmissionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		subs, err := svc.ListPublic(c.UserContext())
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(fiber.Map{"ok": true, "submissions": subs})
	}
}

// ListAllSubmissions returns every submission regardless of status.
// @Summary List all submissions
// @Tags Moderation
// @Produce json
// @Param X-Admin-Token header string true "Admin token"
// @Success 200 {object} map[string]any
// @Failure 401 {object} errorPayload
// @Router /api/admin/submissions [get]
func ListAllSubmissions(svc service.SubmissionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		subs, err := svc.ListAll(c.UserContext())
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(fiber.Map{"ok": true, "submissions": subs})
	}
}

// CreateSubmission records a new pending submission.
// @Summary Create submission
// @Tags Submissions
// @Accept json
// @Produce json
// @Param payload body createSubmissionRequest true "Submission"
// @Success 200 {object} map[string]any
// @Failure 400 {object} errorPayload
// @Router /api/submissions [post]
func CreateSubmission(svc service.SubmissionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createSubmissionRequest
		if err := decodeJSON(c, &req); err != nil {
			return writeError(c, err)
		}

		sub, err := svc.Create(c.UserContext(), service.CreateSubmissionInput{
			Title:    req.Title,
			Course:   req.Course,
			Category: req.Category,
			FileURL:  req.FileURL,
		})
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(fiber.Map{"ok": true, "submission": sub})
	}
}

// ReviewSubmission approves or rejects a pending submission.
// @Summary Review submission
// @Tags Moderation
// @Accept json
// @Produce json
// @Param X-Admin-Token header string true "Admin token"
// @Param payload body reviewSubmissionRequest true "Decision"
// @Success 200 {object} map[string]any
// @Failure 400 {object} errorPayload
// @Failure 401 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /api/admin/submissions/review [post]
func ReviewSubmission(svc service.SubmissionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req reviewSubmissionRequest
		if err := decodeJSON(c, &req); err != nil {
			return writeError(c, err)
		}

		sub, err := svc.Review(c.UserContext(), req.ID, model.ReviewAction(req.Action), req.Note)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(fiber.Map{"ok": true, "submission": sub})
	}
}

// RateSubmission adds a 1-5 rating to an approved submission.
// @Summary Rate submission
// @Tags Submissions
// @Accept json
// @Produce json
// @Param payload body rateSubmissionRequest true "Rating"
// @Success 200 {object} map[string]any
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /api/submissions/rate [post]
func RateSubmission(svc service.SubmissionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req rateSubmissionRequest
		if err := decodeJSON(c, &req); err != nil {
			return writeError(c, err)
		}

		summary, err := svc.Rate(c.UserContext(), req.ID, req.Rating)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(fiber.Map{
			"ok":          true,
			"id":          summary.ID,
			"rating":      summary.Rating,
			"ratingCount": summary.RatingCount,
		})
	}
}
