package middleware

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"eduportal/services"
)

// ServiceErrorResponse maps a service error to the matching HTTP response.
func ServiceErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return JsonResponse(c, fiber.StatusNotFound, false, err.Error(), nil)
	case errors.Is(err, services.ErrInvalidOperation):
		return JsonResponse(c, fiber.StatusConflict, false, err.Error(), nil)
	case errors.Is(err, services.ErrIntegrity):
		log.Printf("[INTEGRITY] %v", err)
		return JsonResponse(c, fiber.StatusInternalServerError, false, "Internal data error!", nil)
	default:
		log.Printf("[ERROR] %v", err)
		return JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}
}
