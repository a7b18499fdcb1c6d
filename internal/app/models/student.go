package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Student struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FirstName   string             `json:"firstName" bson:"firstName"`
	LastName    string             `json:"lastName" bson:"lastName,omitempty"`
	Gender      string             `json:"gender" bson:"gender,omitempty"`
	DateOfBirth *time.Time         `json:"dateOfBirth" bson:"dateOfBirth,omitempty"`
	FatherName  string             `json:"fatherName" bson:"fatherName,omitempty"`
	Contact     string             `json:"contact" bson:"contact,omitempty"`
	Email       string             `json:"email" bson:"email,omitempty"`
	StreamID    primitive.ObjectID `json:"streamId" bson:"streamId"`
	CourseID    primitive.ObjectID `json:"courseId" bson:"courseId"`
	ClassID     primitive.ObjectID `json:"classId" bson:"classId"`
	TimeModel   `bson:",inline"`
}

// StudentAuth is the credential document, kept apart from the student
// directory record so roster imports never touch credentials.
type StudentAuth struct {
	ID                 primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	StudentID          primitive.ObjectID `json:"studentId" bson:"studentId"`
	PasswordHash       string             `json:"-" bson:"passwordHash"`
	MustChangePassword bool               `json:"mustChangePassword" bson:"mustChangePassword"`
	LastLogin          *time.Time         `json:"lastLogin,omitempty" bson:"lastLogin,omitempty"`
	TimeModel          `bson:",inline"`
}
