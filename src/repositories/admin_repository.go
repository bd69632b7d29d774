package repositories

import (
	"context"

	"course-marketplace/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoAdminRepository struct {
	coll *mongo.Collection
}

func NewAdminRepository(coll *mongo.Collection) *MongoAdminRepository {
	return &MongoAdminRepository{coll: coll}
}

func (r *MongoAdminRepository) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	if err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&admin); err != nil {
		return nil, mapFindError(err)
	}
	return &admin, nil
}

func (r *MongoAdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	admin.ID = primitive.NewObjectID()
	_, err := r.coll.InsertOne(ctx, admin)
	return mapWriteError(err)
}
