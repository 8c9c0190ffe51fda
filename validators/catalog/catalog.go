package catalogValidator

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"eduportal/middleware"
)

// CourseRequest is the validated body for course create and update.
type CourseRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type VideoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DurationSec int    `json:"duration_sec"`
	WidthPx     int    `json:"width_px"`
	HeightPx    int    `json:"height_px"`
}

type BookRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Authors         string `json:"authors"`
	Pages           int    `json:"pages"`
	FormatID        *uint  `json:"format_id"`
	PublicationYear int    `json:"publication_year"`
}

type ArticleRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PublishedAt string `json:"published_at"` // YYYY-MM-DD
	SourceURL   string `json:"source_url"`
}

type SkillRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// LinkRequest carries the full desired id set for a relationship update.
type LinkRequest struct {
	IDs []uint `json:"ids"`
}

func validateTitle(errors map[string]string, title string) {
	if strings.TrimSpace(title) == "" {
		errors["title"] = "Title is required!"
	} else if len(strings.TrimSpace(title)) < 3 {
		errors["title"] = "Title must be at least 3 characters long!"
	}
}

func Course() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		validateTitle(errors, reqData.Title)

		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func Video() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(VideoRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		validateTitle(errors, reqData.Title)

		if reqData.DurationSec <= 0 {
			errors["duration_sec"] = "Duration must be greater than 0!"
		}
		if reqData.WidthPx <= 0 {
			errors["width_px"] = "Width must be greater than 0!"
		}
		if reqData.HeightPx <= 0 {
			errors["height_px"] = "Height must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedVideo", reqData)
		return c.Next()
	}
}

func Book() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(BookRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		validateTitle(errors, reqData.Title)

		if strings.TrimSpace(reqData.Authors) == "" {
			errors["authors"] = "Authors is required!"
		}
		if reqData.Pages <= 0 {
			errors["pages"] = "Pages must be greater than 0!"
		}
		if reqData.PublicationYear <= 0 {
			errors["publication_year"] = "Publication year is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBook", reqData)
		return c.Next()
	}
}

func Article() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ArticleRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		validateTitle(errors, reqData.Title)

		if strings.TrimSpace(reqData.SourceURL) == "" {
			errors["source_url"] = "Source URL is required!"
		}
		if reqData.PublishedAt != "" {
			if _, err := time.Parse("2006-01-02", reqData.PublishedAt); err != nil {
				errors["published_at"] = "Published date must be in YYYY-MM-DD format!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedArticle", reqData)
		return c.Next()
	}
}

func Skill() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SkillRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		} else if len(strings.TrimSpace(reqData.Name)) < 2 {
			errors["name"] = "Name must be at least 2 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSkill", reqData)
		return c.Next()
	}
}

// Links validates a relationship edit body. An empty id list is allowed; it
// retires every active link.
func Links() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LinkRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		for _, id := range reqData.IDs {
			if id == 0 {
				errors["ids"] = "Ids must be greater than 0!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLinks", reqData)
		return c.Next()
	}
}
