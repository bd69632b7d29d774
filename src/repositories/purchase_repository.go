package repositories

import (
	"context"

	"course-marketplace/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoPurchaseRepository struct {
	coll *mongo.Collection
}

func NewPurchaseRepository(coll *mongo.Collection) *MongoPurchaseRepository {
	return &MongoPurchaseRepository{coll: coll}
}

func (r *MongoPurchaseRepository) InsertReceipt(ctx context.Context, receipt *models.PurchaseReceipt) error {
	if receipt.ID.IsZero() {
		receipt.ID = primitive.NewObjectID()
	}
	_, err := r.coll.InsertOne(ctx, receipt)
	return mapWriteError(err)
}
