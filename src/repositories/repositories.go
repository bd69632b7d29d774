package repositories

import (
	"context"
	"errors"

	"course-marketplace/src/apperrors"
	"course-marketplace/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Lookups return an error wrapping apperrors.ErrNotFound when nothing matches and
// inserts return one wrapping apperrors.ErrConflict on a duplicate unique key.

type AdminRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.Admin, error)
	Create(ctx context.Context, admin *models.Admin) error
}

type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	// AppendPurchasedCourse pushes courseID onto the user's purchasedCourse list in one update.
	AppendPurchasedCourse(ctx context.Context, username string, courseID primitive.ObjectID) error
}

type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Course, error)
	FindAll(ctx context.Context) ([]models.Course, error)
	FindPublished(ctx context.Context) ([]models.Course, error)
	Update(ctx context.Context, id primitive.ObjectID, update models.CourseUpdate) (*models.Course, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type PurchaseRepository interface {
	InsertReceipt(ctx context.Context, receipt *models.PurchaseReceipt) error
}

func mapWriteError(err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return errors.Join(apperrors.ErrConflict, err)
	}
	return err
}

func mapFindError(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperrors.ErrNotFound
	}
	return err
}
