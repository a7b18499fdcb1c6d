package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// TimeSlot is one scheduled interval within a template. Slot order is
// insertion order and is chronological by convention; the resolver
// preserves it untouched.
type TimeSlot struct {
	Label              string `json:"label" bson:"label"`
	Kind               string `json:"type" bson:"type"`
	Start              string `json:"startTime" bson:"startTime"`
	End                string `json:"endTime" bson:"endTime"`
	AttendanceRequired bool   `json:"attendanceRequired" bson:"attendanceRequired"`
}

// TimetableTemplate is a named, ordered list of time slots describing one
// kind of day ("REGULAR", "HOLIDAY", "HALF_DAY"). Names are stored
// upper-cased and act as the join key from the config to the slots. A
// template with zero slots is valid and means "no classes".
type TimetableTemplate struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Slots     []TimeSlot         `json:"slots" bson:"slots"`
	TimeModel `bson:",inline"`
}

// CollegeConfig is the singleton governing timetable resolution. It is
// addressed by the fixed Type discriminator, never by id.
type CollegeConfig struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Type           string             `json:"type" bson:"type"`
	WeeklySchedule map[string]string  `json:"weeklySchedule" bson:"weeklySchedule"`
	Overrides      map[string]string  `json:"overrides" bson:"overrides"`
	TimeModel      `bson:",inline"`
}
