package controllers

import (
	"course-marketplace/src/middleware"
	"course-marketplace/src/models"
	"course-marketplace/src/services/admins"
	"course-marketplace/src/utils"

	"github.com/gofiber/fiber/v2"
)

type AdminController struct {
	admins *admins.Service
}

func NewAdminController(s *admins.Service) *AdminController {
	return &AdminController{admins: s}
}

// Signup godoc
// @Summary      Sign up an admin
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body body models.Credentials true "Admin credentials"
// @Success      200  {object}  models.TokenResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      403  {object}  models.ErrorResponse
// @Router       /admin/signup [post]
func (ac *AdminController) Signup(c *fiber.Ctx) error {
	var req models.Credentials
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	token, err := ac.admins.Signup(c.UserContext(), req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(models.TokenResponse{Message: "Admin created successfully", Token: token})
}

// Login godoc
// @Summary      Log in as admin
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body body models.Credentials true "Admin credentials"
// @Success      200  {object}  models.TokenResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      403  {object}  models.ErrorResponse
// @Router       /admin/login [post]
func (ac *AdminController) Login(c *fiber.Ctx) error {
	var req models.Credentials
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	token, err := ac.admins.Login(c.UserContext(), req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(models.TokenResponse{Message: "Admin Logged", Token: token})
}

// Me godoc
// @Summary      Current admin
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  models.ErrorResponse
// @Failure      403  {object}  models.ErrorResponse
// @Router       /admin/me [get]
func (ac *AdminController) Me(c *fiber.Ctx) error {
	username, _ := middleware.Identity(c)
	admin, err := ac.admins.GetSelf(c.UserContext(), username)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"username": admin.Username})
}
