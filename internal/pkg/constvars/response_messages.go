package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	LoginSuccessMessage          = "successfully login"
	LogoutSuccessMessage         = "successfully logout"
	RefreshSuccessMessage        = "token refreshed successfully"
	GetProfileSuccessMessage     = "get profile successfully"
	ChangePasswordSuccessMessage = "password changed successfully"

	// Timetable messages
	GetScheduleSuccessMessage     = "get schedule successfully"
	GetMasterSuccessMessage       = "get master timetable successfully"
	SaveScheduleSuccessMessage    = "schedule configuration saved successfully"
	CreateTemplateSuccessMessage  = "template created successfully"
	GetTemplatesSuccessMessage    = "get templates successfully"
	ReseedTimetableSuccessMessage = "timetable seed data recreated successfully"

	// Attendance messages
	MarkAttendanceSuccessMessage = "attendance created"
	GetAttendanceSuccessMessage  = "get attendance successfully"

	// Academics messages
	GetStudentsSuccessMessage = "get students successfully"
	GetCoursesSuccessMessage  = "get courses successfully"
	GetSectionsSuccessMessage = "get sections successfully"
	GetStaffsSuccessMessage   = "get staffs successfully"
	RosterImportedMessage     = "roster import processed"
)
