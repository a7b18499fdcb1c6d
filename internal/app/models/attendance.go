package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AttendanceRecord struct {
	Student primitive.ObjectID `json:"student" bson:"student"`
	Status  string             `json:"status" bson:"status"`
}

// Attendance is one register entry: a class, a calendar date and a
// period hour, with one record per student. (class, date, hour) is
// unique.
type Attendance struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	StaffID   primitive.ObjectID `json:"staffId" bson:"staffId"`
	ClassID   primitive.ObjectID `json:"class" bson:"class"`
	Date      time.Time          `json:"date" bson:"date"`
	Hour      int                `json:"hour" bson:"hour"`
	Records   []AttendanceRecord `json:"records" bson:"records"`
	TimeModel `bson:",inline"`
}
