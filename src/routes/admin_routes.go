package routes

import (
	"course-marketplace/src/middleware"
	"course-marketplace/src/models"

	"github.com/gofiber/fiber/v2"
)

// adminRoutes กำหนดเส้นทางสำหรับ Admin API
func adminRoutes(app *fiber.App, h Handlers) {
	admin := app.Group("/admin")

	limit := h.Limiter.Limit("admin-auth", h.RateLimit, h.RateLimitWindow)
	admin.Post("/signup", limit, h.Admin.Signup)
	admin.Post("/login", limit, h.Admin.Login)

	auth := middleware.AuthJWT(h.Tokens)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)
	admin.Get("/me", auth, adminOnly, h.Admin.Me)
	admin.Post("/courses", auth, adminOnly, h.Course.CreateCourse)
	admin.Get("/courses", auth, adminOnly, h.Course.GetAllCourses)
	admin.Put("/courses/:id", auth, adminOnly, h.Course.UpdateCourse) // older clients
	admin.Put("/course/:id", auth, adminOnly, h.Course.UpdateCourse)
	admin.Get("/course/:id", auth, adminOnly, h.Course.GetCourseByID)
	admin.Delete("/course/:id", auth, adminOnly, h.Course.DeleteCourse)
}
