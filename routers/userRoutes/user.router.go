package userRoutes

import (
	"github.com/gofiber/fiber/v2"

	adminController "lms/controllers/admin"
	userController "lms/controllers/user"
	"lms/middleware"
	"lms/services/identity"
	authValidators "lms/validators/auth"
	userValidators "lms/validators/user"
)

// SetupUserRoutes sets up profile, derived-view, and admin user routes
func SetupUserRoutes(app *fiber.App, ctrl *userController.Controller, adminCtrl *adminController.Controller, id *identity.Service) {
	userGroup := app.Group("/user", middleware.RequireSession(id))

	userGroup.Get("/profile", ctrl.GetProfile)
	userGroup.Put("/profile", authValidators.UpdateProfile(), ctrl.UpdateProfile)
	userGroup.Put("/password", authValidators.ChangePassword(), ctrl.ChangePassword)

	// Derived views for the current user
	userGroup.Get("/enrollments", ctrl.GetEnrollments)
	userGroup.Get("/progress", ctrl.GetProgress)
	userGroup.Get("/testimonial", ctrl.GetTestimonial)
	userGroup.Put("/testimonial", userValidators.Testimonial(), ctrl.UpsertTestimonial)

	// Admin user management
	adminGroup := app.Group("/admin/users", middleware.RequireSession(id), middleware.AdminOnly())
	adminGroup.Get("/", adminCtrl.UserList)
	adminGroup.Put("/:id", userValidators.UserID(), userValidators.UpdateUserDetails(), adminCtrl.UpdateUser)
	adminGroup.Delete("/:id", userValidators.UserID(), adminCtrl.DeleteUser)
}
