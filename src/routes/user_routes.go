package routes

import (
	"course-marketplace/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// userRoutes กำหนดเส้นทางสำหรับ User API
func userRoutes(app *fiber.App, h Handlers) {
	users := app.Group("/users")

	limit := h.Limiter.Limit("user-auth", h.RateLimit, h.RateLimitWindow)
	users.Post("/signup", limit, h.User.Signup)
	users.Post("/login", limit, h.User.Login)

	users.Get("/courses", h.Course.GetPublishedCourses)
	users.Get("/course/:id", h.Course.GetPublicCourseByID)

	auth := middleware.AuthJWT(h.Tokens)
	// the course lookup runs before the user lookup, so an admin token gets
	// 404 for a missing course and 403 "User not found" otherwise
	users.Post("/courses/:id", auth, h.User.PurchaseCourse)
	users.Get("/purchasedCourses", auth, h.User.GetPurchasedCourses)
}
