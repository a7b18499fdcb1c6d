package responses

// CompactSlot is the wire form of one time slot. Short keys on purpose:
// these payloads are fetched by every student client on every app open.
type CompactSlot struct {
	Label string `json:"l"`
	Kind  string `json:"t"`
	Start string `json:"s"`
	End   string `json:"e"`
}

// DaySchedule is the resolved outcome for one calendar date. Field order
// is significant: the version fingerprint hashes the serialized form.
type DaySchedule struct {
	Date      string        `json:"date"`
	Template  string        `json:"template"`
	IsHoliday bool          `json:"isHoliday"`
	Slots     []CompactSlot `json:"slots"`
}

// VersionedDaySchedule wraps a DaySchedule with its content fingerprint
// for conditional-response handling.
type VersionedDaySchedule struct {
	Version string       `json:"version"`
	Data    *DaySchedule `json:"data"`
}

// MonthDay is the slot-free month view entry: the caller is expected to
// already hold slot definitions from the master payload.
type MonthDay struct {
	Template  string `json:"template"`
	IsHoliday bool   `json:"isHoliday"`
}

type MonthSchedule struct {
	Month string              `json:"month"`
	Days  map[string]MonthDay `json:"days"`
}

type RangeSchedule struct {
	Days map[string]*DaySchedule `json:"days"`
}

// MasterSlot adds the attendance-required flag to the compact form; only
// the master payload carries it.
type MasterSlot struct {
	Label    string `json:"l"`
	Kind     string `json:"t"`
	Start    string `json:"s"`
	End      string `json:"e"`
	Required int    `json:"req"`
}

type MasterTemplate struct {
	ID    string       `json:"id"`
	Slots []MasterSlot `json:"slots"`
}

type MasterSchedule struct {
	Defaults  map[string]string `json:"defaults"`
	Overrides map[string]string `json:"overrides"`
}

type MasterTimetable struct {
	Templates []MasterTemplate `json:"templates"`
	Schedule  MasterSchedule   `json:"schedule"`
}

type Template struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Slots []TemplateSlot `json:"slots"`
}

type TemplateSlot struct {
	Label              string `json:"label"`
	Kind               string `json:"type"`
	Start              string `json:"startTime"`
	End                string `json:"endTime"`
	AttendanceRequired bool   `json:"attendanceRequired"`
}

type ScheduleConfiguration struct {
	WeeklySchedule map[string]string `json:"weeklySchedule"`
	Overrides      map[string]string `json:"overrides"`
}
