// Package memory holds in-process repositories used by tests and local runs
// without MongoDB. They honor the same not-found and conflict contract as the
// Mongo implementations.
package memory

import (
	"context"
	"sync"

	"course-marketplace/src/apperrors"
	"course-marketplace/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AdminRepository struct {
	mu     sync.RWMutex
	admins map[string]models.Admin
}

func NewAdminRepository() *AdminRepository {
	return &AdminRepository{admins: map[string]models.Admin{}}
}

func (r *AdminRepository) FindByUsername(_ context.Context, username string) (*models.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	admin, ok := r.admins[username]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &admin, nil
}

func (r *AdminRepository) Create(_ context.Context, admin *models.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.admins[admin.Username]; exists {
		return apperrors.ErrConflict
	}
	admin.ID = primitive.NewObjectID()
	r.admins[admin.Username] = *admin
	return nil
}

type UserRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: map[string]models.User{}}
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[username]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	user.PurchasedCourse = append([]primitive.ObjectID{}, user.PurchasedCourse...)
	return &user, nil
}

func (r *UserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[user.Username]; exists {
		return apperrors.ErrConflict
	}
	user.ID = primitive.NewObjectID()
	if user.PurchasedCourse == nil {
		user.PurchasedCourse = []primitive.ObjectID{}
	}
	r.users[user.Username] = *user
	return nil
}

func (r *UserRepository) AppendPurchasedCourse(_ context.Context, username string, courseID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[username]
	if !ok {
		return apperrors.ErrNotFound
	}
	user.PurchasedCourse = append(user.PurchasedCourse, courseID)
	r.users[username] = user
	return nil
}

type CourseRepository struct {
	mu      sync.RWMutex
	order   []primitive.ObjectID
	courses map[primitive.ObjectID]models.Course
}

func NewCourseRepository() *CourseRepository {
	return &CourseRepository{courses: map[primitive.ObjectID]models.Course{}}
}

func (r *CourseRepository) Create(_ context.Context, course *models.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	course.ID = primitive.NewObjectID()
	r.courses[course.ID] = *course
	r.order = append(r.order, course.ID)
	return nil
}

func (r *CourseRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	course, ok := r.courses[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &course, nil
}

func (r *CourseRepository) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Course, error) {
	wanted := make(map[primitive.ObjectID]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	return r.filter(func(c models.Course) bool {
		_, ok := wanted[c.ID]
		return ok
	}), nil
}

func (r *CourseRepository) FindAll(_ context.Context) ([]models.Course, error) {
	return r.filter(func(models.Course) bool { return true }), nil
}

func (r *CourseRepository) FindPublished(_ context.Context) ([]models.Course, error) {
	return r.filter(func(c models.Course) bool { return c.Published }), nil
}

func (r *CourseRepository) Update(_ context.Context, id primitive.ObjectID, update models.CourseUpdate) (*models.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	course, ok := r.courses[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	update.Apply(&course)
	r.courses[id] = course
	return &course, nil
}

func (r *CourseRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.courses[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.courses, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *CourseRepository) filter(keep func(models.Course) bool) []models.Course {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.Course{}
	for _, id := range r.order {
		if c := r.courses[id]; keep(c) {
			out = append(out, c)
		}
	}
	return out
}

type PurchaseRepository struct {
	mu       sync.RWMutex
	receipts []models.PurchaseReceipt
}

func NewPurchaseRepository() *PurchaseRepository {
	return &PurchaseRepository{}
}

func (r *PurchaseRepository) InsertReceipt(_ context.Context, receipt *models.PurchaseReceipt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.receipts {
		if existing.ReceiptID == receipt.ReceiptID {
			return apperrors.ErrConflict
		}
	}
	if receipt.ID.IsZero() {
		receipt.ID = primitive.NewObjectID()
	}
	r.receipts = append(r.receipts, *receipt)
	return nil
}

func (r *PurchaseRepository) Receipts() []models.PurchaseReceipt {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.PurchaseReceipt{}, r.receipts...)
}
