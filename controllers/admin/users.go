package adminController

import (
	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	"lms/models"
	"lms/services/identity"
)

// Controller exposes admin-side user management. Routes wire it behind the
// admin gate; the registry itself performs no authorization check.
type Controller struct {
	Identity *identity.Service
}

func (ctrl *Controller) UserList(c *fiber.Ctx) error {
	users := ctrl.Identity.Users()

	sanitized := make([]models.User, len(users))
	for i, u := range users {
		sanitized[i] = u.Sanitized()
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User List.", sanitized)
}

func (ctrl *Controller) UpdateUser(c *fiber.Ctx) error {
	targetID := c.Locals("targetUserID").(string)

	reqData, ok := c.Locals("validatedUserUpdate").(*struct {
		Username     string `json:"username"`
		Email        string `json:"email"`
		Bio          string `json:"bio"`
		ProfileImage string `json:"profile_image"`
		Role         string `json:"role"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	updated := ctrl.Identity.UpdateUserDetails(targetID, identity.UserUpdate{
		Username:     reqData.Username,
		Email:        reqData.Email,
		Bio:          reqData.Bio,
		ProfileImage: reqData.ProfileImage,
		Role:         reqData.Role,
	})
	if !updated {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User updated successfully.", nil)
}

func (ctrl *Controller) DeleteUser(c *fiber.Ctx) error {
	targetID := c.Locals("targetUserID").(string)

	if !ctrl.Identity.DeleteUser(targetID) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully.", nil)
}
