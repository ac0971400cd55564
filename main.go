package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/doganzub/calendar-app/auth"
	"github.com/doganzub/calendar-app/config"
	"github.com/doganzub/calendar-app/db"
	"github.com/doganzub/calendar-app/redis"
	"github.com/doganzub/calendar-app/routes"
	"github.com/doganzub/calendar-app/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	gdb, err := db.Init(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatal(err)
	}
	log.Println("✅ Database connection established successfully!")

	rdb, err := redis.New(context.Background(), cfg.RedisAddr)
	if err != nil {
		log.Fatal(err)
	}
	log.Println("✅ Connected to Redis")

	uploader, err := utils.NewUploader(cfg.CloudinaryURL)
	if err != nil {
		log.Fatal("Failed to configure upload backend: ", err)
	}

	ts := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	mailer := utils.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass)

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	routes.SetupAuthRoutes(app, gdb, ts, rdb, mailer)
	routes.SetupCustomerRoutes(app, gdb, ts)
	routes.SetupChargeRoutes(app, gdb, ts)
	routes.SetupStatusRoutes(app, gdb, ts)
	routes.SetupTodoRoutes(app, gdb, ts)
	routes.SetupCalendarRoutes(app, gdb, ts)
	routes.SetupDocumentRoutes(app, gdb, ts, uploader)

	log.Fatal(app.Listen(":" + cfg.Port))
}

// errorHandler is the outermost boundary: anything a handler did not map
// itself is logged in full server-side and reduced to an opaque
// class-name/message pair for the client. No stack traces leave the process.
func errorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"error":   "request_failed",
			"message": fiberErr.Message,
		})
	}

	log.Printf("unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   fmt.Sprintf("%T", err),
		"message": err.Error(),
	})
}
