package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Staff struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FirstName    string             `json:"firstName" bson:"firstName"`
	LastName     string             `json:"lastName" bson:"lastName,omitempty"`
	FatherName   string             `json:"fatherName" bson:"fatherName,omitempty"`
	DateOfBirth  *time.Time         `json:"dateOfBirth" bson:"dateOfBirth,omitempty"`
	Gender       string             `json:"gender" bson:"gender,omitempty"`
	Contact      string             `json:"contact" bson:"contact,omitempty"`
	Email        string             `json:"email" bson:"email"`
	Role         string             `json:"role" bson:"role"`
	PasswordHash string             `json:"-" bson:"passwordHash"`
	TimeModel    `bson:",inline"`
}
