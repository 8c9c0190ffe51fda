package profileRoutes

import (
	"github.com/gofiber/fiber/v2"

	profileController "eduportal/controllers/profile"
	"eduportal/middleware"
)

// SetupProfileRoutes sets up the learner profile routes
func SetupProfileRoutes(app *fiber.App, ctrl *profileController.Controller) {
	profileGroup := app.Group("/profile")

	profileGroup.Get("/", middleware.JWTMiddleware, ctrl.GetProfile)
	profileGroup.Get("/courses/in-progress", middleware.JWTMiddleware, ctrl.CoursesInProgress)
	profileGroup.Get("/courses/completed", middleware.JWTMiddleware, ctrl.CompletedCourses)
	profileGroup.Get("/skills", middleware.JWTMiddleware, ctrl.Skills)
}
