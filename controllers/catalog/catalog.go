package catalogController

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"eduportal/middleware"
	"eduportal/models/portal"
	"eduportal/services"
	catalogValidator "eduportal/validators/catalog"
)

// Controller exposes the catalog admin and browse endpoints.
type Controller struct {
	Courses   *services.CourseService
	Materials *services.MaterialService
	Skills    *services.SkillService
}

func New(courses *services.CourseService, materials *services.MaterialService, skills *services.SkillService) *Controller {
	return &Controller{Courses: courses, Materials: materials, Skills: skills}
}

func paramID(c *fiber.Ctx, name string) (uint, bool) {
	id, err := c.ParamsInt(name)
	if err != nil || id < 1 {
		return 0, false
	}
	return uint(id), true
}

// ----- Courses -----

func (ctrl *Controller) CourseList(c *fiber.Ctx) error {
	courses, err := ctrl.Courses.GetAll(c.Context())
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course list fetched successfully.", courses)
}

func (ctrl *Controller) CourseDetails(c *fiber.Ctx) error {
	courseID, ok := paramID(c, "id")
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	course, err := ctrl.Courses.GetDetails(c.Context(), courseID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully.", course)
}

func (ctrl *Controller) CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*catalogValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := portal.Course{
		Title:       reqData.Title,
		Description: reqData.Description,
	}
	if err := ctrl.Courses.Create(c.Context(), &course); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

func (ctrl *Controller) UpdateCourse(c *fiber.Ctx) error {
	courseID, ok := paramID(c, "id")
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}
	reqData, ok := c.Locals("validatedCourse").(*catalogValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := ctrl.Courses.Update(c.Context(), courseID, reqData.Title, reqData.Description)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

func (ctrl *Controller) DeleteCourse(c *fiber.Ctx) error {
	courseID, ok := paramID(c, "id")
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	if err := ctrl.Courses.Delete(c.Context(), courseID); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

func (ctrl *Controller) UpdateCourseMaterials(c *fiber.Ctx) error {
	courseID, ok := paramID(c, "id")
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}
	reqData, ok := c.Locals("validatedLinks").(*catalogValidator.LinkRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := ctrl.Courses.UpdateCourseMaterials(c.Context(), courseID, reqData.IDs); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course materials updated successfully!", nil)
}

func (ctrl *Controller) UpdateCourseSkills(c *fiber.Ctx) error {
	courseID, ok := paramID(c, "id")
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}
	reqData, ok := c.Locals("validatedLinks").(*catalogValidator.LinkRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := ctrl.Courses.UpdateCourseSkills(c.Context(), courseID, reqData.IDs); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course skills updated successfully!", nil)
}

// ----- Materials -----

func (ctrl *Controller) MaterialList(c *fiber.Ctx) error {
	materials, err := ctrl.Materials.GetAll(c.Context())
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Material list fetched successfully.", materials)
}

func (ctrl *Controller) MaterialDetails(c *fiber.Ctx) error {
	materialID, ok := paramID(c, "id")
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid material id!", nil)
	}

	material, err := ctrl.Materials.GetDetails(c.Context(), materialID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Material details fetched successfully.", material)
}

func (ctrl *Controller) BookFormatList(c *fiber.Ctx) error {
	formats, err := ctrl.Materials.GetBookFormats(c.Context())
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Book format list fetched successfully.", formats)
}

func (ctrl *Controller) CreateVideo(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedVideo").(*catalogValidator.VideoRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	material, err := ctrl.Materials.CreateVideo(c.Context(), reqData.Title, reqData.Description,
		reqData.DurationSec, reqData.WidthPx, reqData.HeightPx)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Video created successfully!", material)
}

func (ctrl *Controller) UpdateVideo(c *fiber.Ctx) error {
	materialID, ok := paramID(c, "id")
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid material id!", nil)
	}
	reqData, ok := c.Locals("validatedVideo").(*catalogValidator.VideoRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	material, err := ctrl.Materials.UpdateVideo(c.Context(), materialID, reqData.Title, reqData.Description,
		reqData.DurationSec, reqData.WidthPx, reqData.HeightPx)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video updated successfully!", material)
}

func (ctrl *Controller) CreateBook(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedBook").(*catalogValidator.BookRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var formatID uint
	if reqData.FormatID != nil {
		formatID = *reqData.FormatID
	}

	material, err := ctrl.Materials.CreateBook(c.Context(), reqData.Title, reqData.Description,
		reqData.Authors, reqData.Pages, formatID, reqData.PublicationYear)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Book created successfully!", material)
}

func (ctrl *Controller) UpdateBook(c *fiber.Ctx) error {
	materialID, ok := paramID(c, "id")
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid material id!", nil)
	}
	reqData, ok := c.Locals("validatedBook").(*catalogValidator.BookRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var formatID uint
	if reqData.FormatID != nil {
		formatID = *reqData.FormatID
	}

	material, err := ctrl.Materials.UpdateBook(c.Context(), materialID, reqData.Title, reqData.Description,
		reqData.Authors, reqData.Pages, formatID, reqData.PublicationYear)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Book updated successfully!", material)
}

func parsePublishedAt(value string) datatypes.Date {
	if value == "" {
		return datatypes.Date(time.Time{})
	}
	parsed, _ := time.Parse("2006-01-02", value)
	return datatypes.Date(parsed)
}

func (ctrl *Controller) CreateArticle(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedArticle").(*catalogValidator.ArticleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	material, err := ctrl.Materials.CreateArticle(c.Context(), reqData.Title, reqData.Description,
		parsePublishedAt(reqData.PublishedAt), reqData.SourceURL)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Article created successfully!", material)
}

func (ctrl *Controller) UpdateArticle(c *fiber.Ctx) error {
	materialID, ok := paramID(c, "id")
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid material id!", nil)
	}
	reqData, ok := c.Locals("validatedArticle").(*catalogValidator.ArticleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	material, err := ctrl.Materials.UpdateArticle(c.Context(), materialID, reqData.Title, reqData.Description,
		parsePublishedAt(reqData.PublishedAt), reqData.SourceURL)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Article updated successfully!", material)
}

func (ctrl *Controller) DeleteMaterial(c *fiber.Ctx) error {
	materialID, ok := paramID(c, "id")
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid material id!", nil)
	}

	if err := ctrl.Materials.Delete(c.Context(), materialID); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Material deleted successfully!", nil)
}

func (ctrl *Controller) MaterialCourses(c *fiber.Ctx) error {
	materialID, ok := paramID(c, "id")
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid material id!", nil)
	}

	courseIDs, err := ctrl.Materials.GetAssignedCourseIDs(c.Context(), materialID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assigned courses fetched successfully.", courseIDs)
}

func (ctrl *Controller) UpdateMaterialCourses(c *fiber.Ctx) error {
	materialID, ok := paramID(c, "id")
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid material id!", nil)
	}
	reqData, ok := c.Locals("validatedLinks").(*catalogValidator.LinkRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := ctrl.Materials.UpdateMaterialCourses(c.Context(), materialID, reqData.IDs); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Material courses updated successfully!", nil)
}

// ----- Skills -----

func (ctrl *Controller) SkillList(c *fiber.Ctx) error {
	skills, err := ctrl.Skills.GetAll(c.Context())
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Skill list fetched successfully.", skills)
}

func (ctrl *Controller) SkillDetails(c *fiber.Ctx) error {
	skillID, ok := paramID(c, "id")
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid skill id!", nil)
	}

	skill, err := ctrl.Skills.GetDetails(c.Context(), skillID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Skill details fetched successfully.", skill)
}

func (ctrl *Controller) CreateSkill(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSkill").(*catalogValidator.SkillRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	skill := portal.Skill{
		Name:        reqData.Name,
		Description: reqData.Description,
	}
	if err := ctrl.Skills.Create(c.Context(), &skill); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Skill created successfully!", skill)
}

func (ctrl *Controller) UpdateSkill(c *fiber.Ctx) error {
	skillID, ok := paramID(c, "id")
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid skill id!", nil)
	}
	reqData, ok := c.Locals("validatedSkill").(*catalogValidator.SkillRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	skill, err := ctrl.Skills.Update(c.Context(), skillID, reqData.Name, reqData.Description)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Skill updated successfully!", skill)
}

func (ctrl *Controller) DeleteSkill(c *fiber.Ctx) error {
	skillID, ok := paramID(c, "id")
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid skill id!", nil)
	}

	if err := ctrl.Skills.Delete(c.Context(), skillID); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Skill deleted successfully!", nil)
}

func (ctrl *Controller) SkillCourses(c *fiber.Ctx) error {
	skillID, ok := paramID(c, "id")
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid skill id!", nil)
	}

	courseIDs, err := ctrl.Skills.GetAssignedCourseIDs(c.Context(), skillID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assigned courses fetched successfully.", courseIDs)
}

func (ctrl *Controller) UpdateSkillCourses(c *fiber.Ctx) error {
	skillID, ok := paramID(c, "id")
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid skill id!", nil)
	}
	reqData, ok := c.Locals("validatedLinks").(*catalogValidator.LinkRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := ctrl.Skills.UpdateSkillCourses(c.Context(), skillID, reqData.IDs); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Skill courses updated successfully!", nil)
}
