package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/doganzub/calendar-app/auth"
	"github.com/doganzub/calendar-app/controllers"
	"github.com/doganzub/calendar-app/middleware"
)

// SetupCalendarRoutes configures the calendar event feed
func SetupCalendarRoutes(app *fiber.App, gdb *gorm.DB, ts *auth.TokenService) {
	calendar := app.Group("/calendar", middleware.Protected(ts))
	calendar.Get("/events", controllers.GetEvents(gdb))
	calendar.Post("/events", controllers.CreateEvent(gdb))
	calendar.Put("/events/:id", controllers.UpdateTodo(gdb))
	calendar.Delete("/events/:id", controllers.DeleteEvent(gdb))
}
