package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/doganzub/calendar-app/auth"
	"github.com/doganzub/calendar-app/controllers"
	"github.com/doganzub/calendar-app/middleware"
)

// SetupStatusRoutes configures all status lookup routes
func SetupStatusRoutes(app *fiber.App, gdb *gorm.DB, ts *auth.TokenService) {
	statuses := app.Group("/statuses", middleware.Protected(ts))
	statuses.Get("/", controllers.GetAllStatuses(gdb))
	statuses.Post("/", controllers.CreateStatus(gdb))
	statuses.Put("/:id", controllers.UpdateStatus(gdb))
	statuses.Delete("/:id", controllers.SoftDeleteStatus(gdb))
	statuses.Delete("/:id/hard", controllers.HardDeleteStatus(gdb))
}
