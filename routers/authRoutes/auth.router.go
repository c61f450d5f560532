package authRoutes

import (
	"github.com/gofiber/fiber/v2"

	authController "lms/controllers/auth"
	validators "lms/validators/auth"
)

// SetupAuthRoutes sets up the sign-in/sign-up/sign-out routes
func SetupAuthRoutes(app *fiber.App, ctrl *authController.Controller) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", validators.Signup(), ctrl.Signup)
	authGroup.Post("/signin", validators.Signin(), ctrl.Signin)
	authGroup.Post("/provider", ctrl.SigninWithProvider)
	authGroup.Post("/signout", ctrl.Signout)
}
