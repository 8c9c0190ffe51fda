package authRoutes

import (
	"github.com/gofiber/fiber/v2"

	authController "eduportal/controllers/auth"
	authValidator "eduportal/validators/auth"
)

// SetupAuthRoutes sets up signup and login routes
func SetupAuthRoutes(app *fiber.App, ctrl *authController.Controller) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidator.Signup(), ctrl.Signup)
	authGroup.Post("/login", authValidator.Login(), ctrl.Login)
}
