package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/doganzub/calendar-app/auth"
	"github.com/doganzub/calendar-app/controllers"
	"github.com/doganzub/calendar-app/middleware"
	"github.com/doganzub/calendar-app/utils"
)

// SetupDocumentRoutes configures customer document routes
func SetupDocumentRoutes(app *fiber.App, gdb *gorm.DB, ts *auth.TokenService, uploader *utils.Uploader) {
	app.Post("/customers/:id/documents", middleware.Protected(ts), controllers.UploadDocument(gdb, uploader))
	app.Get("/customers/:id/documents", middleware.Protected(ts), controllers.ListDocuments(gdb))
	app.Delete("/documents/:id", middleware.Protected(ts), controllers.DeleteDocument(gdb))
}
