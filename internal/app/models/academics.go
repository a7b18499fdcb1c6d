package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Stream struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	TimeModel `bson:",inline"`
}

type Course struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	StreamID      primitive.ObjectID `json:"streamId" bson:"streamId"`
	DurationYears int                `json:"durationYears" bson:"durationYears"`
	TimeModel     `bson:",inline"`
}

// Class is a course-year-section unit, e.g. "BA English - 1A".
type Class struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CourseID  primitive.ObjectID `json:"courseId" bson:"courseId"`
	Year      int                `json:"year" bson:"year"`
	Section   string             `json:"section" bson:"section"`
	Name      string             `json:"name" bson:"name"`
	TimeModel `bson:",inline"`
}
