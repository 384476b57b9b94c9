package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"albadri_web/internal/controller"
	"albadri_web/internal/middleware"
	"albadri_web/pkg/config"
	"albadri_web/pkg/cron"
	"albadri_web/pkg/feed"
	"albadri_web/pkg/leads"
)

func setupRoutes(app *fiber.App, pages *controller.PageController) {
	// Sayfalar
	app.Get("/", middleware.NoCache(), pages.Home)
	app.Get("/properties", middleware.NoCache(), pages.ListProperties)
	app.Get("/property-details", middleware.NoCache(), pages.GetPropertyDetails)

	// İletişim formları (anasayfa + detay modalı)
	app.Post("/inquiries", pages.CreateInquiry)

	app.Get("/sitemap.xml", pages.GetSitemap)
	app.Get("/healthz", pages.Health)

	app.Static("/static", "./static")
}

func main() {
	cfg := config.Load()

	feedClient := feed.NewClient(cfg.API)
	leadsClient := leads.NewClient(cfg.API.LeadsURL)
	pages := controller.New(cfg, feedClient, leadsClient)

	cron.InitSitemapCron(cfg.Site.BaseURL, feedClient)

	engine := html.New("./views", ".html")

	app := fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "layouts/main",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Unhandled error: %v", err)
			return c.Status(fiber.StatusInternalServerError).Render("property_error", fiber.Map{
				"Title":   "Error",
				"Message": "Something went wrong. Please try again.",
				"BackURL": "/",
			})
		},
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	setupRoutes(app, pages)

	log.Printf("Server is running on port %s", cfg.Server.Port)
	log.Fatal(app.Listen(":" + cfg.Server.Port))
}
