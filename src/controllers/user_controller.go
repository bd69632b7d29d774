package controllers

import (
	"course-marketplace/src/middleware"
	"course-marketplace/src/models"
	"course-marketplace/src/services/users"
	"course-marketplace/src/utils"

	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	users *users.Service
}

func NewUserController(s *users.Service) *UserController {
	return &UserController{users: s}
}

// Signup godoc
// @Summary      Sign up a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body body models.Credentials true "User credentials"
// @Success      200  {object}  models.TokenResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      403  {object}  models.ErrorResponse
// @Router       /users/signup [post]
func (uc *UserController) Signup(c *fiber.Ctx) error {
	var req models.Credentials
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	token, err := uc.users.Signup(c.UserContext(), req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(models.TokenResponse{Message: "Successfully Created User", Token: token})
}

// Login godoc
// @Summary      Log in as user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body body models.Credentials true "User credentials"
// @Success      200  {object}  models.TokenResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      403  {object}  models.ErrorResponse
// @Router       /users/login [post]
func (uc *UserController) Login(c *fiber.Ctx) error {
	var req models.Credentials
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	token, err := uc.users.Login(c.UserContext(), req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(models.TokenResponse{Message: "Logged in successfully", Token: token})
}

// PurchaseCourse godoc
// @Summary      Purchase a course
// @Description  Buying the same course again appends it again
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Course ID"
// @Success      200  {object}  models.MessageResponse
// @Failure      403  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /users/courses/{id} [post]
func (uc *UserController) PurchaseCourse(c *fiber.Ctx) error {
	username, _ := middleware.Identity(c)
	if err := uc.users.PurchaseCourse(c.UserContext(), username, c.Params("id")); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(models.MessageResponse{Message: "Course purchased successfully"})
}

// GetPurchasedCourses godoc
// @Summary      Courses bought by the current user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string][]models.Course
// @Failure      403  {object}  models.ErrorResponse
// @Router       /users/purchasedCourses [get]
func (uc *UserController) GetPurchasedCourses(c *fiber.Ctx) error {
	username, _ := middleware.Identity(c)
	purchased, err := uc.users.ListPurchasedCourses(c.UserContext(), username)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"purchasedCourse": purchased})
}
