package repositories

import (
	"context"

	"course-marketplace/src/apperrors"
	"course-marketplace/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(coll *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{coll: coll}
}

func (r *MongoUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&user); err != nil {
		return nil, mapFindError(err)
	}
	return &user, nil
}

func (r *MongoUserRepository) Create(ctx context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	if user.PurchasedCourse == nil {
		user.PurchasedCourse = []primitive.ObjectID{}
	}
	_, err := r.coll.InsertOne(ctx, user)
	return mapWriteError(err)
}

func (r *MongoUserRepository) AppendPurchasedCourse(ctx context.Context, username string, courseID primitive.ObjectID) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"username": username},
		bson.M{"$push": bson.M{"purchasedCourse": courseID}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
