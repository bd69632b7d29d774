package controllers

import (
	"course-marketplace/src/models"
	"course-marketplace/src/services/courses"
	"course-marketplace/src/utils"

	"github.com/gofiber/fiber/v2"
)

type CourseController struct {
	courses *courses.Service
}

func NewCourseController(s *courses.Service) *CourseController {
	return &CourseController{courses: s}
}

// CreateCourse godoc
// @Summary      Create a new course
// @Description  Unknown fields in the body are ignored
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body models.Course true "Course object"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /admin/courses [post]
func (cc *CourseController) CreateCourse(c *fiber.Ctx) error {
	var request models.Course
	if err := c.BodyParser(&request); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	course, err := cc.courses.CreateCourse(c.UserContext(), &request)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":  "Course created successfully",
		"courseId": course.ID.Hex(),
	})
}

// UpdateCourse godoc
// @Summary      Update a course
// @Description  Only the fields present in the body are changed
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id     path  string               true  "Course ID"
// @Param        body   body  models.CourseUpdate  true  "Partial course"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /admin/course/{id} [put]
func (cc *CourseController) UpdateCourse(c *fiber.Ctx) error {
	var request models.CourseUpdate
	if err := c.BodyParser(&request); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	updated, err := cc.courses.UpdateCourse(c.UserContext(), c.Params("id"), request)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":      "Updated Successfully",
		"updateCourse": updated,
	})
}

// GetAllCourses godoc
// @Summary      Get all courses, published or not
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.Course
// @Failure      500  {object}  models.ErrorResponse
// @Router       /admin/courses [get]
func (cc *CourseController) GetAllCourses(c *fiber.Ctx) error {
	coursesList, err := cc.courses.GetAllCourses(c.UserContext())
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(coursesList)
}

// GetCourseByID godoc
// @Summary      Get a course by ID
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Course ID"
// @Success      200  {object}  map[string]models.Course
// @Failure      404  {object}  models.ErrorResponse
// @Router       /admin/course/{id} [get]
func (cc *CourseController) GetCourseByID(c *fiber.Ctx) error {
	course, err := cc.courses.GetCourseByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"course": course})
}

// DeleteCourse godoc
// @Summary      Delete a course
// @Description  Users who bought the course keep the dangling reference
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Course ID"
// @Success      200  {object}  models.MessageResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /admin/course/{id} [delete]
func (cc *CourseController) DeleteCourse(c *fiber.Ctx) error {
	if err := cc.courses.DeleteCourse(c.UserContext(), c.Params("id")); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(models.MessageResponse{Message: "Course deleted successfully"})
}

// GetPublishedCourses godoc
// @Summary      Public course catalog
// @Tags         users
// @Produce      json
// @Success      200  {object}  map[string][]models.Course
// @Router       /users/courses [get]
func (cc *CourseController) GetPublishedCourses(c *fiber.Ctx) error {
	coursesList, err := cc.courses.GetPublishedCourses(c.UserContext())
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"courses": coursesList})
}

// GetPublicCourseByID godoc
// @Summary      Get a course by ID without authentication
// @Description  Returns unpublished courses as well
// @Tags         users
// @Produce      json
// @Param        id   path  string  true  "Course ID"
// @Success      200  {object}  map[string]models.Course
// @Failure      404  {object}  models.ErrorResponse
// @Router       /users/course/{id} [get]
func (cc *CourseController) GetPublicCourseByID(c *fiber.Ctx) error {
	return cc.GetCourseByID(c)
}
