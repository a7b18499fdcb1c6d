package requests

type AttendanceRecord struct {
	StudentID string `json:"student" validate:"required"`
	Status    string `json:"status" validate:"required,oneof=P A"`
}

type MarkAttendance struct {
	StaffID string             `json:"staffId" validate:"required"`
	ClassID string             `json:"class" validate:"required"`
	Date    string             `json:"date" validate:"required,date_key"`
	Hour    int                `json:"hour" validate:"required,gte=1,lte=12"`
	Records []AttendanceRecord `json:"records" validate:"required,min=1,dive"`
}

type GetAttendance struct {
	ClassID string
	StaffID string
	Date    string `validate:"omitempty,date_key"`
	Hour    int
}
