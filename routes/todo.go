package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/doganzub/calendar-app/auth"
	"github.com/doganzub/calendar-app/controllers"
	"github.com/doganzub/calendar-app/middleware"
)

// SetupTodoRoutes configures all appointment related routes
func SetupTodoRoutes(app *fiber.App, gdb *gorm.DB, ts *auth.TokenService) {
	todos := app.Group("/todos", middleware.Protected(ts))
	todos.Get("/", controllers.GetAllTodos(gdb))
	todos.Get("/:id", controllers.GetTodo(gdb))
	todos.Post("/", controllers.CreateTodo(gdb))
	todos.Put("/:id", controllers.UpdateTodo(gdb))
	todos.Delete("/:id", controllers.SoftDeleteTodo(gdb))
	todos.Delete("/:id/hard", controllers.HardDeleteTodo(gdb))
}
