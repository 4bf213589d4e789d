package middleware

import (
	"github.com/gofiber/fiber/v2"
)

const (
	AllowOrigin  = "*"
	AllowHeaders = "authorization, x-client-info, apikey, content-type"
)

// CORS sets the same headers on every response, whether or not the request
// carried an Origin, and answers preflight requests with an empty 200.
func CORS() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAccessControlAllowOrigin, AllowOrigin)
		c.Set(fiber.HeaderAccessControlAllowHeaders, AllowHeaders)

		if c.Method() == fiber.MethodOptions {
			// Status only; SendStatus would write "OK" as the body.
			c.Status(fiber.StatusOK)
			return nil
		}

		return c.Next()
	}
}
