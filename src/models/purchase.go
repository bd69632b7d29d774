package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PurchaseReceipt is written by the background worker after a successful purchase.
type PurchaseReceipt struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty" swaggertype:"string"`
	ReceiptID   string             `json:"receiptId" bson:"receiptId"`
	Username    string             `json:"username" bson:"username"`
	CourseID    primitive.ObjectID `json:"courseId" bson:"courseId" swaggertype:"string"`
	Price       float64            `json:"price" bson:"price"`
	PurchasedAt time.Time          `json:"purchasedAt" bson:"purchasedAt"`
}
