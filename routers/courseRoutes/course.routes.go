package courseRoutes

import (
	controllers "github.com/sanjanathakeri/courseappone/controllers/course"
	"github.com/sanjanathakeri/courseappone/middleware"
	validators "github.com/sanjanathakeri/courseappone/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up public and user-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/courses")

	// Course listing and details are public reads
	courseGroup.Get("/", controllers.GetAllCourses)
	courseGroup.Get("/:courseId", validators.CourseID(), controllers.GetCourseDetails)

	// Purchase initiation
	courseGroup.Post("/:courseId/buy", middleware.UserAuth, validators.CourseID(), controllers.BuyCourse)

	// Caller's own purchases
	userGroup := app.Group("/user")
	userGroup.Get("/purchases", middleware.UserAuth, validators.PurchaseList(), controllers.GetUserPurchases)
}
