package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin ผู้ดูแลคอร์ส
type Admin struct {
	ID       primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty" swaggertype:"string"`
	Username string             `json:"username" bson:"username"`
	Password string             `json:"-" bson:"password"`
}
