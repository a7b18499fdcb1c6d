package constvars

// Timetable resolution constants. The config singleton is addressed by a
// fixed discriminator, never by id.
const (
	TimetableConfigType = "TIMETABLE_CONFIG"

	// Fallback template name when neither an override nor a weekly
	// default covers the queried date.
	TemplateHoliday = "HOLIDAY"
	TemplateRegular = "REGULAR"
)

const (
	SlotKindPeriod = "PERIOD"
	SlotKindBreak  = "BREAK"
	SlotKindLab    = "LAB"
	SlotKindExam   = "EXAM"
	SlotKindFree   = "FREE"
)

const (
	DateKeyLayout  = "2006-01-02"
	MonthKeyLayout = "2006-01"
)

const (
	AttendanceStatusPresent = "P"
	AttendanceStatusAbsent  = "A"
)
