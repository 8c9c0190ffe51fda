package learningValidator

import (
	"github.com/gofiber/fiber/v2"

	"eduportal/middleware"
)

type EnrollRequest struct {
	CourseID uint `json:"course_id"`
}

type CompleteMaterialRequest struct {
	MaterialID uint `json:"material_id"`
}

type CompleteCourseRequest struct {
	CourseID uint `json:"course_id"`
}

func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EnrollRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["course_id"] = "Course id is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEnroll", reqData)
		return c.Next()
	}
}

func CompleteMaterial() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CompleteMaterialRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.MaterialID == 0 {
			errors["material_id"] = "Material id is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCompleteMaterial", reqData)
		return c.Next()
	}
}

func CompleteCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CompleteCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["course_id"] = "Course id is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCompleteCourse", reqData)
		return c.Next()
	}
}
