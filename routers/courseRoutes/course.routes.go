package courseRoutes

import (
	"github.com/gofiber/fiber/v2"

	courseController "lms/controllers/course"
	"lms/middleware"
	"lms/services/identity"
	validators "lms/validators/course"
)

// SetupCourseRoutes sets up all user-facing course routes
func SetupCourseRoutes(app *fiber.App, ctrl *courseController.Controller, id *identity.Service) {
	courseGroup := app.Group("/course")

	// Course listing and details
	courseGroup.Get("/list", ctrl.GetAllCourses)
	courseGroup.Get("/:id", validators.CourseID(), ctrl.GetCourseDetails)

	// Enrollment and progress
	courseGroup.Post("/:id/enroll", middleware.RequireSession(id), validators.CourseID(), ctrl.EnrollInCourse)
	courseGroup.Put("/:id/progress", middleware.RequireSession(id), validators.CourseID(), validators.UpdateProgress(), ctrl.UpdateProgress)
}
