package responses

import "time"

type AttendanceRecord struct {
	StudentID string `json:"student"`
	Status    string `json:"status"`
}

type Attendance struct {
	ID      string             `json:"id"`
	StaffID string             `json:"staffId"`
	ClassID string             `json:"class"`
	Date    time.Time          `json:"date"`
	Hour    int                `json:"hour"`
	Records []AttendanceRecord `json:"records"`
}

type AttendanceList struct {
	Count int          `json:"count"`
	Data  []Attendance `json:"data"`
}

// StudentAttendanceEntry is one row of a student's own attendance view:
// the single record that concerns them, projected out of the class
// document.
type StudentAttendanceEntry struct {
	ID      string    `json:"id"`
	Date    time.Time `json:"date"`
	Hour    int       `json:"hour"`
	Status  string    `json:"status"`
	ClassID string    `json:"class"`
}

type StudentAttendance struct {
	Count int                      `json:"count"`
	Data  []StudentAttendanceEntry `json:"data"`
}
