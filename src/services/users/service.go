package users

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"course-marketplace/src/apperrors"
	"course-marketplace/src/jobs"
	"course-marketplace/src/models"
	"course-marketplace/src/repositories"
	"course-marketplace/src/services/courses"
	"course-marketplace/src/utils"

	"github.com/google/uuid"
)

const opTimeout = 5 * time.Second

var (
	errMissingCredentials = apperrors.New(apperrors.ErrBadRequest, "Username and password are required")
	errInvalidCredentials = apperrors.New(apperrors.ErrInvalidCredentials, "Invalid username or password")
	errUserNotFound       = apperrors.New(apperrors.ErrForbidden, "User not found")
	errCourseNotFound     = apperrors.New(apperrors.ErrNotFound, "Course not found")
)

// ReceiptQueue hands purchase receipts to the background worker.
type ReceiptQueue interface {
	EnqueuePurchaseReceipt(ctx context.Context, payload jobs.PurchaseReceiptPayload) error
}

type Service struct {
	users      repositories.UserRepository
	courses    repositories.CourseRepository
	receipts   ReceiptQueue
	tokens     *utils.TokenManager
	bcryptCost int
}

func NewService(users repositories.UserRepository, courses repositories.CourseRepository, receipts ReceiptQueue, tokens *utils.TokenManager, bcryptCost int) *Service {
	return &Service{
		users:      users,
		courses:    courses,
		receipts:   receipts,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

func (s *Service) Signup(ctx context.Context, creds models.Credentials) (string, error) {
	if err := utils.ValidateStruct(creds); err != nil {
		return "", errMissingCredentials
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := s.users.FindByUsername(ctx, creds.Username)
	if err == nil {
		return "", apperrors.New(apperrors.ErrConflict, "Already User Exist")
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return "", fmt.Errorf("find user: %w", err)
	}

	hashed, err := utils.HashPassword(creds.Password, s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{Username: creds.Username, Password: hashed}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return "", apperrors.New(apperrors.ErrConflict, "Already User Exist")
		}
		return "", fmt.Errorf("create user: %w", err)
	}

	return s.tokens.GenerateJWT(user.Username, models.RoleUser)
}

func (s *Service) Login(ctx context.Context, creds models.Credentials) (string, error) {
	if err := utils.ValidateStruct(creds); err != nil {
		return "", errMissingCredentials
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	user, err := s.users.FindByUsername(ctx, creds.Username)
	if errors.Is(err, apperrors.ErrNotFound) {
		return "", errInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("find user: %w", err)
	}
	if !utils.CheckPassword(user.Password, creds.Password) {
		return "", errInvalidCredentials
	}

	return s.tokens.GenerateJWT(user.Username, models.RoleUser)
}

// PurchaseCourse ซื้อคอร์ส: ซื้อซ้ำได้และจะถูกเพิ่มซ้ำในรายการ
//
// The course lookup and the append are two separate operations. The append is a
// single $push on the user document, so concurrent purchases never lose entries.
func (s *Service) PurchaseCourse(ctx context.Context, username, courseID string) error {
	objID, err := courses.ParseID(courseID)
	if err != nil {
		return errCourseNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	course, err := s.courses.FindByID(ctx, objID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return errCourseNotFound
	}
	if err != nil {
		return fmt.Errorf("find course: %w", err)
	}

	err = s.users.AppendPurchasedCourse(ctx, username, course.ID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return errUserNotFound
	}
	if err != nil {
		return fmt.Errorf("append purchased course: %w", err)
	}

	if s.receipts != nil {
		payload := jobs.PurchaseReceiptPayload{
			ReceiptID:   uuid.NewString(),
			Username:    username,
			CourseID:    course.ID.Hex(),
			Price:       course.Price,
			PurchasedAt: time.Now().UTC(),
		}
		if err := s.receipts.EnqueuePurchaseReceipt(ctx, payload); err != nil {
			// the purchase is already recorded on the user
			log.Printf("⚠️ Failed to enqueue purchase receipt for %s/%s: %v", username, course.ID.Hex(), err)
		}
	}
	return nil
}

// ListPurchasedCourses returns full course documents in purchase order.
// Repeated purchases repeat the course; deleted courses are skipped.
func (s *Service) ListPurchasedCourses(ctx context.Context, username string) ([]models.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	user, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, errUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	found, err := s.courses.FindByIDs(ctx, user.PurchasedCourse)
	if err != nil {
		return nil, fmt.Errorf("find purchased courses: %w", err)
	}

	byID := make(map[string]models.Course, len(found))
	for _, c := range found {
		byID[c.ID.Hex()] = c
	}

	purchased := make([]models.Course, 0, len(user.PurchasedCourse))
	for _, id := range user.PurchasedCourse {
		if c, ok := byID[id.Hex()]; ok {
			purchased = append(purchased, c)
		}
	}
	return purchased, nil
}
