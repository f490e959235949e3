package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"brews_backend/pkg/config"
	"brews_backend/pkg/email"
)

// Controller holds the dependencies every submission handler needs. The
// database handle, config and notifier are injected so tests can run the
// handlers against an in-memory database and a recording notifier.
type Controller struct {
	db       *gorm.DB
	cfg      *config.Config
	notifier email.Notifier
}

func New(db *gorm.DB, cfg *config.Config, notifier email.Notifier) *Controller {
	return &Controller{
		db:       db,
		cfg:      cfg,
		notifier: notifier,
	}
}

// NewApp builds the Fiber app: the error handler is the failure boundary
// converting any error escaping a handler into a 500 envelope.
func NewApp(db *gorm.DB, cfg *config.Config, notifier email.Notifier) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Server error: " + err.Error(),
			})
		},
	})

	app.Use(logger.New())

	// Preflight requests get an empty 200 with the CORS headers set, ahead
	// of the cors middleware's default 204.
	app.Use(func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodOptions {
			c.Set(fiber.HeaderAccessControlAllowOrigin, cfg.API.CORSOrigin)
			c.Set(fiber.HeaderAccessControlAllowMethods, "GET, POST, PUT, DELETE, OPTIONS")
			c.Set(fiber.HeaderAccessControlAllowHeaders, "Content-Type, Authorization, X-Requested-With")
			return c.SendStatus(fiber.StatusOK)
		}
		return c.Next()
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.API.CORSOrigin,
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
		AllowHeaders: "Content-Type, Authorization, X-Requested-With",
	}))

	ct := New(db, cfg, notifier)
	app.All("/api/submissions", ct.Dispatch)

	return app
}
