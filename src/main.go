package main

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"course-marketplace/src/app"
	"course-marketplace/src/config"
	"course-marketplace/src/database"
	"course-marketplace/src/jobs"
	"course-marketplace/src/middleware"
	"course-marketplace/src/repositories"
	"course-marketplace/src/repositories/memory"
	"course-marketplace/src/utils"

	"github.com/hibiken/asynq"
)

// @title           Course Marketplace API
// @version         1.0
// @description     Admin and user accounts, course catalog and course purchases.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.

type stores struct {
	admins    repositories.AdminRepository
	users     repositories.UserRepository
	courses   repositories.CourseRepository
	purchases repositories.PurchaseRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	tokens, err := utils.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	s, err := openStores(cfg)
	if err != nil {
		log.Fatalf("❌ Error connecting to the database: %v", err)
	}

	if err := database.InitRedis(cfg.RedisURI); err != nil {
		log.Println("⚠️ Redis unavailable, rate limiting and receipts disabled:", err)
	}
	database.InitAsynq(cfg.RedisURI)

	var worker *asynq.Server
	if database.RedisClient != nil {
		worker, err = jobs.StartWorker(cfg.RedisURI, s.purchases)
		if err != nil {
			log.Fatalf("❌ %v", err)
		}
	}

	application := app.New(app.Dependencies{
		Admins:          s.admins,
		Users:           s.users,
		Courses:         s.courses,
		Receipts:        jobs.NewReceiptQueue(database.AsynqClient),
		Tokens:          tokens,
		Limiter:         middleware.NewRateLimiter(database.RedisClient),
		BcryptCost:      cfg.BcryptCost,
		AllowedOrigins:  cfg.AllowedOrigins,
		RateLimit:       cfg.RateLimit,
		RateLimitWindow: cfg.RateLimitWindow,
		AccessLog:       true,
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down...")
		if err := application.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Println("⚠️ HTTP shutdown:", err)
		}
	}()

	// เริ่มเซิร์ฟเวอร์
	log.Println("Server is running on port " + cfg.AppURI)
	if err := application.Listen(fmt.Sprintf(":%s", url.PathEscape(cfg.AppURI))); err != nil {
		log.Println("❌", err)
	}

	if worker != nil {
		worker.Shutdown()
	}
	if database.AsynqClient != nil {
		_ = database.AsynqClient.Close()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Disconnect(ctx); err != nil {
		log.Println("⚠️ MongoDB disconnect:", err)
	}
}

// openStores uses MongoDB, or in-process stores when MONGO_URI is memory://
func openStores(cfg *config.Config) (*stores, error) {
	if strings.HasPrefix(cfg.MongoURI, "memory://") {
		log.Println("⚠️ Using in-memory stores, data is lost on restart")
		return &stores{
			admins:    memory.NewAdminRepository(),
			users:     memory.NewUserRepository(),
			courses:   memory.NewCourseRepository(),
			purchases: memory.NewPurchaseRepository(),
		}, nil
	}

	if err := database.ConnectMongoDB(cfg.MongoURI); err != nil {
		return nil, err
	}
	database.InitCollections(cfg.MongoDB)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := database.EnsureIndexes(ctx); err != nil {
		return nil, err
	}

	return &stores{
		admins:    repositories.NewAdminRepository(database.AdminCollection),
		users:     repositories.NewUserRepository(database.UserCollection),
		courses:   repositories.NewCourseRepository(database.CourseCollection),
		purchases: repositories.NewPurchaseRepository(database.PurchaseCollection),
	}, nil
}
