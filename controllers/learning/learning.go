package learningController

import (
	"github.com/gofiber/fiber/v2"

	"eduportal/middleware"
	"eduportal/services"
	learningValidator "eduportal/validators/learning"
)

// Controller exposes the learner enrollment and progress endpoints.
type Controller struct {
	Enrollments *services.EnrollmentService
}

func New(enrollments *services.EnrollmentService) *Controller {
	return &Controller{Enrollments: enrollments}
}

func currentUserID(c *fiber.Ctx) (uint, bool) {
	userID, ok := c.Locals("userId").(uint)
	return userID, ok
}

func (ctrl *Controller) Enroll(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	reqData, ok := c.Locals("validatedEnroll").(*learningValidator.EnrollRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := ctrl.Enrollments.Enroll(c.Context(), userID, reqData.CourseID); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled successfully!", nil)
}

func (ctrl *Controller) CompleteMaterial(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	reqData, ok := c.Locals("validatedCompleteMaterial").(*learningValidator.CompleteMaterialRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := ctrl.Enrollments.MarkMaterialComplete(c.Context(), userID, reqData.MaterialID); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Material marked as completed!", nil)
}

func (ctrl *Controller) CompleteCourse(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	reqData, ok := c.Locals("validatedCompleteCourse").(*learningValidator.CompleteCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := ctrl.Enrollments.CompleteCourse(c.Context(), userID, reqData.CourseID); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course completed!", nil)
}

func (ctrl *Controller) EnrollmentStatus(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	state, err := ctrl.Enrollments.GetStatus(c.Context(), userID, uint(courseID))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment status fetched successfully.", fiber.Map{
		"course_id": courseID,
		"status":    state,
	})
}

func (ctrl *Controller) CompletedMaterials(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	ids, err := ctrl.Enrollments.GetCompletedMaterialIDs(c.Context(), userID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Completed materials fetched successfully.", ids)
}
