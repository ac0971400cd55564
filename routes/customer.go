package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/doganzub/calendar-app/auth"
	"github.com/doganzub/calendar-app/controllers"
	"github.com/doganzub/calendar-app/middleware"
)

// SetupCustomerRoutes configures all customer related routes
func SetupCustomerRoutes(app *fiber.App, gdb *gorm.DB, ts *auth.TokenService) {
	customers := app.Group("/customers", middleware.Protected(ts))
	customers.Get("/", controllers.GetAllCustomers(gdb))
	customers.Get("/:id", controllers.GetCustomer(gdb))
	customers.Post("/", controllers.CreateCustomer(gdb))
	customers.Put("/:id", controllers.UpdateCustomer(gdb))
	customers.Delete("/:id", controllers.SoftDeleteCustomer(gdb))
	customers.Delete("/:id/hard", controllers.HardDeleteCustomer(gdb))
}
