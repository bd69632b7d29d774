package app

import (
	"time"

	_ "course-marketplace/docs"
	"course-marketplace/src/controllers"
	"course-marketplace/src/middleware"
	"course-marketplace/src/repositories"
	"course-marketplace/src/routes"
	"course-marketplace/src/services/admins"
	"course-marketplace/src/services/courses"
	"course-marketplace/src/services/users"
	"course-marketplace/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

type Dependencies struct {
	Admins  repositories.AdminRepository
	Users   repositories.UserRepository
	Courses repositories.CourseRepository

	Receipts users.ReceiptQueue
	Tokens   *utils.TokenManager
	Limiter  *middleware.RateLimiter

	BcryptCost      int
	AllowedOrigins  string
	RateLimit       int
	RateLimitWindow time.Duration
	AccessLog       bool
}

// New ประกอบ fiber app พร้อม middleware และ routes ทั้งหมด
func New(d Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{AppName: "course-marketplace"})

	app.Use(recover.New())
	if d.AccessLog {
		app.Use(logger.New())
	}

	origins := d.AllowedOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false, // ต้องเป็น false ถ้าใช้ "*"
	}))

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	courseService := courses.NewService(d.Courses)
	routes.InitRoutes(app, routes.Handlers{
		Admin:           controllers.NewAdminController(admins.NewService(d.Admins, d.Tokens, d.BcryptCost)),
		User:            controllers.NewUserController(users.NewService(d.Users, d.Courses, d.Receipts, d.Tokens, d.BcryptCost)),
		Course:          controllers.NewCourseController(courseService),
		Tokens:          d.Tokens,
		Limiter:         d.Limiter,
		RateLimit:       d.RateLimit,
		RateLimitWindow: d.RateLimitWindow,
	})

	return app
}
