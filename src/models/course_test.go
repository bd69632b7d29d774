package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestCourseUpdateOnlySetsPresentFields(t *testing.T) {
	title := "New title"
	published := true
	update := CourseUpdate{Title: &title, Published: &published}

	assert.Equal(t, bson.M{"title": "New title", "published": true}, update.SetDocument())

	course := Course{Title: "Old", Description: "kept", Price: 10}
	update.Apply(&course)
	assert.Equal(t, "New title", course.Title)
	assert.Equal(t, "kept", course.Description)
	assert.Equal(t, 10.0, course.Price)
	assert.True(t, course.Published)
}

func TestCourseUpdateEmpty(t *testing.T) {
	assert.Empty(t, CourseUpdate{}.SetDocument())
}
