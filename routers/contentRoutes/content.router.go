package contentRoutes

import (
	"github.com/gofiber/fiber/v2"

	contentController "lms/controllers/content"
	"lms/middleware"
	"lms/services/identity"
	validators "lms/validators/content"
)

// SetupContentRoutes sets up landing-page content routes
func SetupContentRoutes(app *fiber.App, ctrl *contentController.Controller, id *identity.Service) {
	contentGroup := app.Group("/content")

	// Public reads
	contentGroup.Get("/testimonials", ctrl.GetTestimonials)
	contentGroup.Get("/news", ctrl.GetNews)
	contentGroup.Get("/hero", ctrl.GetHero)

	// Admin management
	adminGroup := app.Group("/admin/content", middleware.RequireSession(id), middleware.AdminOnly())
	adminGroup.Delete("/testimonials/:id", ctrl.AdminDeleteTestimonial)
	adminGroup.Post("/news", validators.News(), ctrl.AdminAddNews)
	adminGroup.Put("/news/:id", validators.NewsID(), validators.News(), ctrl.AdminUpdateNews)
	adminGroup.Delete("/news/:id", validators.NewsID(), ctrl.AdminDeleteNews)
	adminGroup.Put("/hero", validators.Hero(), ctrl.AdminSetHero)
	adminGroup.Post("/upload", ctrl.AdminUploadImage)
}
