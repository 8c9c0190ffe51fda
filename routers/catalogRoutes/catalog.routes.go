package catalogRoutes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	catalogController "eduportal/controllers/catalog"
	"eduportal/middleware"
	catalogValidator "eduportal/validators/catalog"
)

// SetupCatalogRoutes sets up catalog browsing and admin curation routes.
// Browse routes need a valid token; curation routes also need the
// manage-catalog permission.
func SetupCatalogRoutes(app *fiber.App, db *gorm.DB, ctrl *catalogController.Controller) {
	manageCatalog := middleware.CheckPermissionMiddleware(db, "manage-catalog")

	// Courses
	courseGroup := app.Group("/course")
	courseGroup.Get("/list", middleware.JWTMiddleware, ctrl.CourseList)
	courseGroup.Get("/:id", middleware.JWTMiddleware, ctrl.CourseDetails)
	courseGroup.Post("/", middleware.JWTMiddleware, manageCatalog, catalogValidator.Course(), ctrl.CreateCourse)
	courseGroup.Put("/:id", middleware.JWTMiddleware, manageCatalog, catalogValidator.Course(), ctrl.UpdateCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, manageCatalog, ctrl.DeleteCourse)
	courseGroup.Put("/:id/materials", middleware.JWTMiddleware, manageCatalog, catalogValidator.Links(), ctrl.UpdateCourseMaterials)
	courseGroup.Put("/:id/skills", middleware.JWTMiddleware, manageCatalog, catalogValidator.Links(), ctrl.UpdateCourseSkills)

	// Materials
	materialGroup := app.Group("/material")
	materialGroup.Get("/list", middleware.JWTMiddleware, ctrl.MaterialList)
	materialGroup.Get("/book-formats", middleware.JWTMiddleware, ctrl.BookFormatList)
	materialGroup.Get("/:id", middleware.JWTMiddleware, ctrl.MaterialDetails)
	materialGroup.Post("/video", middleware.JWTMiddleware, manageCatalog, catalogValidator.Video(), ctrl.CreateVideo)
	materialGroup.Put("/video/:id", middleware.JWTMiddleware, manageCatalog, catalogValidator.Video(), ctrl.UpdateVideo)
	materialGroup.Post("/book", middleware.JWTMiddleware, manageCatalog, catalogValidator.Book(), ctrl.CreateBook)
	materialGroup.Put("/book/:id", middleware.JWTMiddleware, manageCatalog, catalogValidator.Book(), ctrl.UpdateBook)
	materialGroup.Post("/article", middleware.JWTMiddleware, manageCatalog, catalogValidator.Article(), ctrl.CreateArticle)
	materialGroup.Put("/article/:id", middleware.JWTMiddleware, manageCatalog, catalogValidator.Article(), ctrl.UpdateArticle)
	materialGroup.Delete("/:id", middleware.JWTMiddleware, manageCatalog, ctrl.DeleteMaterial)
	materialGroup.Get("/:id/courses", middleware.JWTMiddleware, ctrl.MaterialCourses)
	materialGroup.Put("/:id/courses", middleware.JWTMiddleware, manageCatalog, catalogValidator.Links(), ctrl.UpdateMaterialCourses)

	// Skills
	skillGroup := app.Group("/skill")
	skillGroup.Get("/list", middleware.JWTMiddleware, ctrl.SkillList)
	skillGroup.Get("/:id", middleware.JWTMiddleware, ctrl.SkillDetails)
	skillGroup.Post("/", middleware.JWTMiddleware, manageCatalog, catalogValidator.Skill(), ctrl.CreateSkill)
	skillGroup.Put("/:id", middleware.JWTMiddleware, manageCatalog, catalogValidator.Skill(), ctrl.UpdateSkill)
	skillGroup.Delete("/:id", middleware.JWTMiddleware, manageCatalog, ctrl.DeleteSkill)
	skillGroup.Get("/:id/courses", middleware.JWTMiddleware, ctrl.SkillCourses)
	skillGroup.Put("/:id/courses", middleware.JWTMiddleware, manageCatalog, catalogValidator.Links(), ctrl.UpdateSkillCourses)
}
