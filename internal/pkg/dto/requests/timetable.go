package requests

type SaveSchedule struct {
	WeeklySchedule map[string]string `json:"weeklySchedule" validate:"required,dive,keys,weekday_key,endkeys,required"`
	Overrides      map[string]string `json:"overrides" validate:"omitempty,dive,keys,date_key,endkeys,required"`
}

type CreateTemplate struct {
	Name  string               `json:"name" validate:"required"`
	Slots []CreateTemplateSlot `json:"slots" validate:"required,min=1,dive"`
}

type CreateTemplateSlot struct {
	Label              string `json:"label" validate:"required"`
	Kind               string `json:"type" validate:"required,oneof=PERIOD BREAK LAB EXAM FREE"`
	Start              string `json:"startTime" validate:"required,slot_time"`
	End                string `json:"endTime" validate:"required,slot_time,slot_after=Start"`
	AttendanceRequired bool   `json:"attendanceRequired"`
}

type ResolveByDate struct {
	Date string `validate:"required,date_key"`
}

type ResolveMonth struct {
	Month string `validate:"required,month_key"`
}

type ResolveRange struct {
	Start string `validate:"required,date_key"`
	End   string `validate:"required,date_key"`
}
