package routes

import (
	"time"

	"course-marketplace/src/controllers"
	"course-marketplace/src/middleware"
	"course-marketplace/src/utils"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Admin  *controllers.AdminController
	User   *controllers.UserController
	Course *controllers.CourseController

	Tokens  *utils.TokenManager
	Limiter *middleware.RateLimiter

	RateLimit       int
	RateLimitWindow time.Duration
}

func InitRoutes(app *fiber.App, h Handlers) {
	adminRoutes(app, h)
	userRoutes(app, h)

	// Route เช็คว่า API ทำงานอยู่
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
