package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Course struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty" swaggertype:"string" example:"507f1f77bcf86cd799439011"`
	Title       string             `json:"title" bson:"title" example:"Go for Backend Engineers"`
	Description string             `json:"description" bson:"description" example:"Build HTTP services in Go"`
	Price       float64            `json:"price" bson:"price" validate:"gte=0" example:"10"`
	ImageLink   string             `json:"imageLink" bson:"imageLink" example:"https://www.example.com/cover.png"`
	Published   bool               `json:"published" bson:"published" example:"false"`
}

// CourseUpdate is a partial course: nil fields are left untouched.
type CourseUpdate struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	ImageLink   *string  `json:"imageLink,omitempty"`
	Published   *bool    `json:"published,omitempty"`
}

// SetDocument สร้าง $set สำหรับฟิลด์ที่ส่งมาเท่านั้น
func (u CourseUpdate) SetDocument() bson.M {
	set := bson.M{}
	if u.Title != nil {
		set["title"] = *u.Title
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.Price != nil {
		set["price"] = *u.Price
	}
	if u.ImageLink != nil {
		set["imageLink"] = *u.ImageLink
	}
	if u.Published != nil {
		set["published"] = *u.Published
	}
	return set
}

// Apply writes the present fields onto c.
func (u CourseUpdate) Apply(c *Course) {
	if u.Title != nil {
		c.Title = *u.Title
	}
	if u.Description != nil {
		c.Description = *u.Description
	}
	if u.Price != nil {
		c.Price = *u.Price
	}
	if u.ImageLink != nil {
		c.ImageLink = *u.ImageLink
	}
	if u.Published != nil {
		c.Published = *u.Published
	}
}
