package courseRoutes

import (
	controllers "github.com/sanjanathakeri/courseappone/controllers/course"
	"github.com/sanjanathakeri/courseappone/middleware"
	validators "github.com/sanjanathakeri/courseappone/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up admin course management routes
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/courses")

	adminGroup.Post("/", middleware.AdminAuth, validators.CreateCourse(), controllers.CreateCourse)
	adminGroup.Put("/:courseId", middleware.AdminAuth, validators.CourseID(), validators.UpdateCourse(), controllers.UpdateCourse)
	adminGroup.Delete("/:courseId", middleware.AdminAuth, validators.CourseID(), controllers.DeleteCourse)
}
