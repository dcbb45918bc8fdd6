package courseRoutes

import (
	controllers "stagingcourse/controllers/course"
	"stagingcourse/middleware"
	validators "stagingcourse/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the public catalogue and student learning routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Public catalogue
	courseGroup.Get("/list", controllers.ListCourses)
	courseGroup.Get("/slug/:slug", controllers.GetCourseBySlug)

	// Student routes
	courseGroup.Post("/:course_id/enroll", middleware.JWTMiddleware, controllers.EnrollInCourse)
	courseGroup.Get("/:course_id/learn", middleware.JWTMiddleware, controllers.GetLearnCourse)
	courseGroup.Get("/:course_id/progress", middleware.JWTMiddleware, controllers.GetCourseProgress)

	app.Get("/my/enrollments", middleware.JWTMiddleware, controllers.GetMyEnrollments)

	lessonGroup := app.Group("/lesson", middleware.JWTMiddleware)
	lessonGroup.Put("/:lesson_id/progress", validators.Progress(), controllers.UpdateLessonProgress)
}
