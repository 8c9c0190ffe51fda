package profileController

import (
	"github.com/gofiber/fiber/v2"

	"eduportal/middleware"
	"eduportal/services"
)

// Controller exposes the learner profile endpoints.
type Controller struct {
	Profiles *services.ProfileService
}

func New(profiles *services.ProfileService) *Controller {
	return &Controller{Profiles: profiles}
}

func (ctrl *Controller) GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	profile, err := ctrl.Profiles.GetProfile(c.Context(), userID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully.", profile)
}

func (ctrl *Controller) CoursesInProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	items, err := ctrl.Profiles.GetCoursesInProgress(c.Context(), userID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses in progress fetched successfully.", items)
}

func (ctrl *Controller) CompletedCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	items, err := ctrl.Profiles.GetCompletedCourses(c.Context(), userID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Completed courses fetched successfully.", items)
}

func (ctrl *Controller) Skills(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	items, err := ctrl.Profiles.GetSkills(c.Context(), userID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Skills fetched successfully.", items)
}
