package learningRoutes

import (
	"github.com/gofiber/fiber/v2"

	learningController "eduportal/controllers/learning"
	"eduportal/middleware"
	learningValidator "eduportal/validators/learning"
)

// SetupLearningRoutes sets up enrollment and progress routes
func SetupLearningRoutes(app *fiber.App, ctrl *learningController.Controller) {
	learnGroup := app.Group("/learning")

	learnGroup.Post("/enroll", middleware.JWTMiddleware, learningValidator.Enroll(), ctrl.Enroll)
	learnGroup.Post("/material/complete", middleware.JWTMiddleware, learningValidator.CompleteMaterial(), ctrl.CompleteMaterial)
	learnGroup.Post("/course/complete", middleware.JWTMiddleware, learningValidator.CompleteCourse(), ctrl.CompleteCourse)
	learnGroup.Get("/course/:id/status", middleware.JWTMiddleware, ctrl.EnrollmentStatus)
	learnGroup.Get("/completed-materials", middleware.JWTMiddleware, ctrl.CompletedMaterials)
}
