package routes

import (
	"github.com/gofiber/fiber/v2"
	redislib "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/doganzub/calendar-app/auth"
	"github.com/doganzub/calendar-app/controllers"
	"github.com/doganzub/calendar-app/middleware"
	"github.com/doganzub/calendar-app/utils"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App, gdb *gorm.DB, ts *auth.TokenService, rdb *redislib.Client, mailer *utils.Mailer) {
	authGroup := app.Group("/auth")

	// Public routes
	authGroup.Post("/login", controllers.Login(gdb, ts))
	authGroup.Get("/logout", controllers.Logout())
	authGroup.Post("/forgot-password", controllers.ForgotPassword(gdb, rdb, mailer))
	authGroup.Post("/reset-password", controllers.ResetPassword(gdb, rdb))

	// Protected routes
	authGroup.Get("/me", middleware.Protected(ts), controllers.Me(gdb))
	authGroup.Post("/new-password", middleware.Protected(ts), controllers.ChangePassword(gdb))

	// User administration, admin only
	authGroup.Post("/register", middleware.Protected(ts), middleware.RequireRole(auth.RoleAdmin), controllers.Register(gdb))
	authGroup.Get("/users", middleware.Protected(ts), middleware.RequireRole(auth.RoleAdmin), controllers.ListUsers(gdb))
	authGroup.Get("/users/:id", middleware.Protected(ts), middleware.RequireRole(auth.RoleAdmin), controllers.GetUser(gdb))
	authGroup.Put("/users/:id", middleware.Protected(ts), middleware.RequireRole(auth.RoleAdmin), controllers.UpdateUser(gdb))
	authGroup.Delete("/users/:id", middleware.Protected(ts), middleware.RequireRole(auth.RoleAdmin), controllers.SoftDeleteUser(gdb))
	authGroup.Delete("/users/:id/hard", middleware.Protected(ts), middleware.RequireRole(auth.RoleAdmin), controllers.HardDeleteUser(gdb))
}
