package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"campushub/internal/apperr"
	"campushub/internal/http/middleware"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	OK        bool   `json:"ok"`
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

// writeStatus writes a fixed error response.
func writeStatus(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorPayload{
		OK:        false,
		Error:     message,
		Code:      code,
		RequestID: middleware.RequestIDFromCtx(c),
	})
}

// writeError translates err into the error envelope. Typed application errors keep
// their status and message; anything else becomes a 500 without leaking details.
// Server-side failures are handed to the access log.
func writeError(c *fiber.Ctx, err error) error {
	appErr := apperr.FromError(err)
	if appErr.Status >= fiber.StatusInternalServerError {
		c.Locals(middleware.ErrorLocalKey, err)
	}
	return writeStatus(c, appErr.Status, appErr.Code, appErr.Message)
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			return writeError(c, appErr)
		}

		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeStatus(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeStatus(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeStatus(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeStatus(c, status, "PAYLOAD_TOO_LARGE", "request body too large")
		default:
			c.Locals(middleware.ErrorLocalKey, err)
			return writeStatus(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
	}
}
