package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/doganzub/calendar-app/auth"
	"github.com/doganzub/calendar-app/controllers"
	"github.com/doganzub/calendar-app/middleware"
)

// SetupChargeRoutes configures all charge related routes
func SetupChargeRoutes(app *fiber.App, gdb *gorm.DB, ts *auth.TokenService) {
	charges := app.Group("/charges", middleware.Protected(ts))
	charges.Get("/", controllers.GetAllCharges(gdb))
	charges.Get("/:id", controllers.GetCharge(gdb))
	charges.Post("/", controllers.CreateCharge(gdb))
	charges.Put("/:id", controllers.UpdateCharge(gdb))
	charges.Delete("/:id", controllers.SoftDeleteCharge(gdb))
	charges.Delete("/:id/hard", controllers.HardDeleteCharge(gdb))
}
