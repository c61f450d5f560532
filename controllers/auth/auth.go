package authController

import (
	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	"lms/services/identity"
)

// Controller exposes the identity registry operations to the UI.
type Controller struct {
	Identity *identity.Service
}

func (ctrl *Controller) Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Username string `json:"username"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if !ctrl.Identity.SignUp(reqData.Email, reqData.Password, reqData.Username) {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	user := ctrl.Identity.Current()
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", user.Sanitized())
}

func (ctrl *Controller) Signin(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignin").(*struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if !ctrl.Identity.SignIn(reqData.Email, reqData.Password) {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	user := ctrl.Identity.Current()
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Signin successful.", user.Sanitized())
}

// SigninWithProvider establishes a session for an external-identity user
// without a registry lookup.
func (ctrl *Controller) SigninWithProvider(c *fiber.Ctx) error {
	user := ctrl.Identity.SignInWithProvider()
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Signin successful.", user.Sanitized())
}

func (ctrl *Controller) Signout(c *fiber.Ctx) error {
	ctrl.Identity.SignOut()
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Signed out.", nil)
}
