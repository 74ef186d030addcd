package middleware

import "github.com/gofiber/fiber/v2"

// NoStore marks every response as uncacheable. Status, sweep and moderation
// results change between requests and must not be served from intermediaries.
func NoStore() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderCacheControl, "no-store")
		return c.Next()
	}
}
