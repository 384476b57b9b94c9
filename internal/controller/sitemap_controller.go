package controller

import (
	"github.com/gofiber/fiber/v2"

	"albadri_web/pkg/cron"
)

// GetSitemap cron'un ürettiği son sitemap snapshot'ını döner
func (pc *PageController) GetSitemap(c *fiber.Ctx) error {
	content := cron.Sitemap()
	if len(content) == 0 {
		return c.SendStatus(fiber.StatusServiceUnavailable)
	}
	c.Set("Content-Type", "application/xml; charset=utf-8")
	return c.Send(content)
}

func (pc *PageController) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
