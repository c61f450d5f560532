package courseRoutes

import (
	"github.com/gofiber/fiber/v2"

	courseController "lms/controllers/course"
	"lms/middleware"
	"lms/services/identity"
	validators "lms/validators/course"
)

// SetupAdminCourseRoutes sets up catalog management and the content editor
func SetupAdminCourseRoutes(app *fiber.App, ctrl *courseController.Controller, id *identity.Service) {
	adminGroup := app.Group("/admin/course", middleware.RequireSession(id), middleware.AdminOnly())

	// Catalog management
	adminGroup.Post("/", validators.CreateCourse(), ctrl.AdminCreateCourse)
	adminGroup.Put("/:id", validators.CourseID(), validators.UpdateCourse(), ctrl.AdminUpdateCourse)
	adminGroup.Delete("/:id", validators.CourseID(), ctrl.AdminDeleteCourse)

	// Content editor draft lifecycle
	adminGroup.Post("/:id/draft", validators.CourseID(), ctrl.AdminOpenDraft)
	adminGroup.Delete("/:id/draft", validators.CourseID(), ctrl.AdminDiscardDraft)
	adminGroup.Post("/:id/draft/commit", validators.CourseID(), ctrl.AdminCommitDraft)

	// Content editor block operations
	adminGroup.Get("/:id/draft/blocks", validators.CourseID(), ctrl.AdminGetDraftBlocks)
	adminGroup.Post("/:id/draft/blocks", validators.CourseID(), validators.AddBlock(), ctrl.AdminAddDraftBlock)
	adminGroup.Put("/:id/draft/blocks/:blockId", validators.CourseID(), validators.BlockID(), validators.UpdateBlock(), ctrl.AdminUpdateDraftBlock)
	adminGroup.Delete("/:id/draft/blocks/:blockId", validators.CourseID(), validators.BlockID(), ctrl.AdminDeleteDraftBlock)
	adminGroup.Put("/:id/draft/blocks/:blockId/move", validators.CourseID(), validators.BlockID(), validators.MoveBlock(), ctrl.AdminMoveDraftBlock)
}
