package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// AdminTokenHeader carries the shared admin secret.
const AdminTokenHeader = "X-Admin-Token"

// AdminToken rejects requests whose X-Admin-Token does not equal token.
// An empty configured token matches nothing, including an empty header.
func AdminToken(token string) fiber.Handler {
	want := []byte(token)
	return func(c *fiber.Ctx) error {
		got := []byte(c.Get(AdminTokenHeader))
		if len(want) == 0 || subtle.ConstantTimeCompare(got, want) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"ok":         false,
				"error":      "Unauthorized",
				"code":       "UNAUTHORIZED",
				"request_id": RequestIDFromCtx(c),
			})
		}
		return c.Next()
	}
}
