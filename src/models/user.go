package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User ผู้ซื้อคอร์ส
type User struct {
	ID              primitive.ObjectID   `json:"_id,omitempty" bson:"_id,omitempty" swaggertype:"string"`
	Username        string               `json:"username" bson:"username"`
	Password        string               `json:"-" bson:"password"` // bcrypt hash, never serialized
	PurchasedCourse []primitive.ObjectID `json:"purchasedCourse" bson:"purchasedCourse" swaggertype:"array,string"`
}

// Credentials is the signup/login body shared by admins and users.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)
