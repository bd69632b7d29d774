package courses

import (
	"context"
	"errors"
	"fmt"
	"time"

	"course-marketplace/src/apperrors"
	"course-marketplace/src/models"
	"course-marketplace/src/repositories"
	"course-marketplace/src/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	opTimeout   = 5 * time.Second
	listTimeout = 10 * time.Second
)

var errCourseNotFound = apperrors.New(apperrors.ErrNotFound, "Course not found")

type Service struct {
	courses repositories.CourseRepository
}

func NewService(courses repositories.CourseRepository) *Service {
	return &Service{courses: courses}
}

// ParseID แปลง id จาก path; id ที่ไม่ถูกต้องถือว่าไม่พบคอร์ส
func ParseID(id string) (primitive.ObjectID, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, errCourseNotFound
	}
	return objID, nil
}

// CreateCourse - สร้างคอร์สใหม่
func (s *Service) CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error) {
	if err := utils.ValidateStruct(course); err != nil {
		return nil, apperrors.New(apperrors.ErrBadRequest, err.Error())
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := s.courses.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}
	return course, nil
}

// UpdateCourse - อัปเดตเฉพาะฟิลด์ที่ส่งมา
func (s *Service) UpdateCourse(ctx context.Context, id string, update models.CourseUpdate) (*models.Course, error) {
	objID, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(update); err != nil {
		return nil, apperrors.New(apperrors.ErrBadRequest, err.Error())
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	course, err := s.courses.Update(ctx, objID, update)
	if err != nil {
		return nil, notFoundOr(err, "update course")
	}
	return course, nil
}

// GetAllCourses - ดึงคอร์สทั้งหมด
func (s *Service) GetAllCourses(ctx context.Context) ([]models.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	courses, err := s.courses.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// GetPublishedCourses - ดึงเฉพาะคอร์สที่เผยแพร่แล้ว
func (s *Service) GetPublishedCourses(ctx context.Context) ([]models.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	courses, err := s.courses.FindPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("list published courses: %w", err)
	}
	return courses, nil
}

// GetCourseByID does not look at published: an id read returns drafts too.
func (s *Service) GetCourseByID(ctx context.Context, id string) (*models.Course, error) {
	objID, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	course, err := s.courses.FindByID(ctx, objID)
	if err != nil {
		return nil, notFoundOr(err, "find course")
	}
	return course, nil
}

// DeleteCourse - ลบคอร์ส (ไม่ลบออกจากรายการที่ผู้ใช้ซื้อไปแล้ว)
func (s *Service) DeleteCourse(ctx context.Context, id string) error {
	objID, err := ParseID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := s.courses.Delete(ctx, objID); err != nil {
		return notFoundOr(err, "delete course")
	}
	return nil
}

func notFoundOr(err error, op string) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return errCourseNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
