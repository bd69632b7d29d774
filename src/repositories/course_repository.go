package repositories

import (
	"context"

	"course-marketplace/src/apperrors"
	"course-marketplace/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoCourseRepository struct {
	coll *mongo.Collection
}

func NewCourseRepository(coll *mongo.Collection) *MongoCourseRepository {
	return &MongoCourseRepository{coll: coll}
}

func (r *MongoCourseRepository) Create(ctx context.Context, course *models.Course) error {
	course.ID = primitive.NewObjectID()
	_, err := r.coll.InsertOne(ctx, course)
	return mapWriteError(err)
}

func (r *MongoCourseRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error) {
	var course models.Course
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&course); err != nil {
		return nil, mapFindError(err)
	}
	return &course, nil
}

func (r *MongoCourseRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Course, error) {
	if len(ids) == 0 {
		return []models.Course{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *MongoCourseRepository) FindAll(ctx context.Context) ([]models.Course, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoCourseRepository) FindPublished(ctx context.Context) ([]models.Course, error) {
	return r.find(ctx, bson.M{"published": true})
}

func (r *MongoCourseRepository) Update(ctx context.Context, id primitive.ObjectID, update models.CourseUpdate) (*models.Course, error) {
	set := update.SetDocument()
	if len(set) == 0 {
		// $set with no fields is rejected by the server
		return r.FindByID(ctx, id)
	}

	var course models.Course
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&course)
	if err != nil {
		return nil, mapFindError(err)
	}
	return &course, nil
}

func (r *MongoCourseRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *MongoCourseRepository) find(ctx context.Context, filter bson.M) ([]models.Course, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	courses := []models.Course{}
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}
