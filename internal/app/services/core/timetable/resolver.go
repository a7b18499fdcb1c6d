package timetable

import (
	"strconv"
	"strings"
	"time"

	"campushub-service/internal/app/models"
	"campushub-service/internal/pkg/constvars"
	"campushub-service/internal/pkg/dto/responses"
)

// kindCodes maps stored slot kinds to their single-letter wire form.
// Unknown kinds degrade to free so a bad template never breaks clients.
var kindCodes = map[string]string{
	constvars.SlotKindPeriod: "P",
	constvars.SlotKindBreak:  "B",
	constvars.SlotKindLab:    "L",
	constvars.SlotKindExam:   "E",
	constvars.SlotKindFree:   "F",
}

func compactKind(kind string) string {
	if code, ok := kindCodes[strings.ToUpper(kind)]; ok {
		return code
	}
	return "F"
}

// CompactSlots converts stored slots to the short-key wire form,
// preserving order. Never returns nil: an empty day serializes as [].
func CompactSlots(slots []models.TimeSlot) []responses.CompactSlot {
	compact := make([]responses.CompactSlot, 0, len(slots))
	for _, slot := range slots {
		compact = append(compact, responses.CompactSlot{
			Label: slot.Label,
			Kind:  compactKind(slot.Kind),
			Start: slot.Start,
			End:   slot.End,
		})
	}
	return compact
}

// TemplateNameFor picks the template governing one date: a date override
// wins over the weekly default, and an uncovered date is a holiday.
func TemplateNameFor(config *models.CollegeConfig, dateKey, weekdayKey string) string {
	if config != nil {
		if name, ok := config.Overrides[dateKey]; ok && name != "" {
			return name
		}
		if name, ok := config.WeeklySchedule[weekdayKey]; ok && name != "" {
			return name
		}
	}
	return constvars.TemplateHoliday
}

// ResolveDay computes the full schedule for one date. Holiday is a
// property of the resolved day, not of the name: a template that does
// not exist, or exists with zero slots, is a holiday under whatever name
// selected it. The bool reports a dangling name so the caller can log it.
func ResolveDay(config *models.CollegeConfig, templates map[string]*models.TimetableTemplate, date time.Time) (*responses.DaySchedule, bool) {
	dateKey := date.Format(constvars.DateKeyLayout)
	weekdayKey := WeekdayKey(date)
	name := TemplateNameFor(config, dateKey, weekdayKey)

	day := &responses.DaySchedule{
		Date:     dateKey,
		Template: name,
		Slots:    []responses.CompactSlot{},
	}

	template, ok := templates[name]
	if !ok || template == nil {
		day.IsHoliday = true
		return day, name != constvars.TemplateHoliday
	}
	day.Slots = CompactSlots(template.Slots)
	day.IsHoliday = len(day.Slots) == 0
	return day, false
}

// WeekdayKey renders the lookup key for the weekly default map: the
// weekday number as a string, "0" (Sunday) through "6" (Saturday).
func WeekdayKey(date time.Time) string {
	return strconv.Itoa(int(date.Weekday()))
}

// InstitutionToday shifts wall-clock time by the institution's fixed UTC
// offset and truncates to the calendar date. The institution runs a
// single civil timezone regardless of where the server is deployed.
func InstitutionToday(now time.Time, offset time.Duration) time.Time {
	shifted := now.UTC().Add(offset)
	return time.Date(shifted.Year(), shifted.Month(), shifted.Day(), 0, 0, 0, 0, time.UTC)
}

// ExpandRange resolves every date from start through end inclusive,
// keyed by date. A start after end yields an empty map.
func ExpandRange(config *models.CollegeConfig, templates map[string]*models.TimetableTemplate, start, end time.Time) map[string]*responses.DaySchedule {
	days := make(map[string]*responses.DaySchedule)
	for cursor := start; !cursor.After(end); cursor = cursor.AddDate(0, 0, 1) {
		day, _ := ResolveDay(config, templates, cursor)
		days[day.Date] = day
	}
	return days
}

// ExpandMonth resolves template assignment for every day of one civil
// month, without slot expansion. Month length falls out of the calendar:
// the zeroth day of the following month is the last day of this one.
func ExpandMonth(config *models.CollegeConfig, month time.Time) map[string]responses.MonthDay {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	days := make(map[string]responses.MonthDay)
	for cursor := first; !cursor.After(last); cursor = cursor.AddDate(0, 0, 1) {
		dateKey := cursor.Format(constvars.DateKeyLayout)
		name := TemplateNameFor(config, dateKey, WeekdayKey(cursor))
		days[dateKey] = responses.MonthDay{
			Template:  name,
			IsHoliday: name == constvars.TemplateHoliday,
		}
	}
	return days
}
