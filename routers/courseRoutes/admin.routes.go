package courseRoutes

import (
	controllers "stagingcourse/controllers/course"
	"stagingcourse/middleware"
	validators "stagingcourse/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up all admin course management routes
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/course", middleware.JWTMiddleware)

	// Course CRUD
	adminGroup.Post("/create", validators.CreateCourse(), controllers.AdminCreateCourse)
	adminGroup.Get("/list", controllers.AdminListCourses)
	adminGroup.Get("/:id", controllers.AdminGetCourse)
	adminGroup.Put("/:id", validators.UpdateCourse(), controllers.AdminUpdateCourse)
	adminGroup.Delete("/:id", controllers.AdminDeleteCourse)
	adminGroup.Post("/:id/publish", controllers.AdminPublishCourse)
	adminGroup.Post("/:id/unpublish", controllers.AdminUnpublishCourse)
	adminGroup.Get("/:id/enrollments", controllers.AdminCourseEnrollments)

	// Chapter management
	adminGroup.Post("/:course_id/chapter", validators.CreateChapter(), controllers.AdminCreateChapter)
	adminGroup.Put("/:course_id/chapter/reorder", validators.Reorder(), controllers.AdminReorderChapters)

	chapterGroup := app.Group("/admin/chapter", middleware.JWTMiddleware)
	chapterGroup.Put("/:chapter_id", validators.UpdateChapter(), controllers.AdminUpdateChapter)
	chapterGroup.Delete("/:chapter_id", controllers.AdminDeleteChapter)
	chapterGroup.Post("/:chapter_id/publish", controllers.AdminPublishChapter)
	chapterGroup.Post("/:chapter_id/unpublish", controllers.AdminUnpublishChapter)

	// Lesson management
	chapterGroup.Post("/:chapter_id/lesson", validators.CreateLesson(), controllers.AdminCreateLesson)
	chapterGroup.Put("/:chapter_id/lesson/reorder", validators.Reorder(), controllers.AdminReorderLessons)

	lessonGroup := app.Group("/admin/lesson", middleware.JWTMiddleware)
	lessonGroup.Put("/:lesson_id", validators.UpdateLesson(), controllers.AdminUpdateLesson)
	lessonGroup.Delete("/:lesson_id", controllers.AdminDeleteLesson)
	lessonGroup.Post("/:lesson_id/publish", controllers.AdminPublishLesson)
	lessonGroup.Post("/:lesson_id/unpublish", controllers.AdminUnpublishLesson)
	lessonGroup.Post("/:lesson_id/resource", validators.CreateResource(), controllers.AdminCreateResource)

	resourceGroup := app.Group("/admin/resource", middleware.JWTMiddleware)
	resourceGroup.Delete("/:resource_id", controllers.AdminDeleteResource)

	// Dashboard
	app.Get("/admin/dashboard", middleware.JWTMiddleware, controllers.AdminDashboardStats)
}
