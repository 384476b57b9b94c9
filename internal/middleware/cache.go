package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// NoCache veri bağımlı sayfaların tarayıcıda saklanmasını engeller.
// Feed her navigasyonda yeniden çekilir, ara cache olmamalı.
func NoCache() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Cache-Control", "no-store")
		return c.Next()
	}
}
