package courseController

import (
	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	"lms/payment"
	"lms/services/catalog"
	"lms/services/editor"
)

// Controller exposes the catalog, enrollment, and content editing operations.
type Controller struct {
	Catalog *catalog.Service
	Gateway *payment.Gateway
	Drafts  *editor.Manager
}

func (ctrl *Controller) GetAllCourses(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", ctrl.Catalog.Courses())
}

func (ctrl *Controller) GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(string)

	course, found := ctrl.Catalog.CourseByID(courseID)
	if !found {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully.", course)
}

// EnrollInCourse enrolls the session user. Paid courses go through the
// payment gateway first; a failed charge leaves all state unchanged.
func (ctrl *Controller) EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(string)

	course, found := ctrl.Catalog.CourseByID(courseID)
	if !found {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if course.Price > 0 {
		if err := ctrl.Gateway.Charge(userID, course); err != nil {
			return middleware.JsonResponse(c, fiber.StatusPaymentRequired, false, "Payment failed!", nil)
		}
	}

	ctrl.Catalog.Enroll(userID, courseID)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", fiber.Map{
		"course_id": courseID,
	})
}

func (ctrl *Controller) UpdateProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(string)

	reqData, ok := c.Locals("validatedProgress").(*struct {
		Percent *int `json:"percent"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	ctrl.Catalog.UpdateProgress(userID, courseID, *reqData.Percent)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully.", fiber.Map{
		"course_id": courseID,
		"percent":   ctrl.Catalog.ProgressFor(userID)[courseID],
	})
}
