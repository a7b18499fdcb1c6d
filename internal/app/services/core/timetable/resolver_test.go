package timetable

import (
	"testing"
	"time"

	"campushub-service/internal/app/models"
	"campushub-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

func buildTestConfig() *models.CollegeConfig {
	return &models.CollegeConfig{
		Type: constvars.TimetableConfigType,
		WeeklySchedule: map[string]string{
			"0": "HOLIDAY",
			"1": "REGULAR",
			"2": "REGULAR",
			"3": "REGULAR",
			"4": "REGULAR",
			"5": "REGULAR",
			"6": "HALF_DAY",
		},
		Overrides: map[string]string{
			"2026-01-26": "HOLIDAY",
			"2026-03-02": "EXAM_DAY",
		},
	}
}

func buildTestTemplates() map[string]*models.TimetableTemplate {
	return map[string]*models.TimetableTemplate{
		"REGULAR": {
			Name: "REGULAR",
			Slots: []models.TimeSlot{
				{Label: "First Period", Kind: "PERIOD", Start: "09:00", End: "09:55", AttendanceRequired: true},
				{Label: "Break", Kind: "BREAK", Start: "09:55", End: "10:10"},
				{Label: "Physics Lab", Kind: "LAB", Start: "10:10", End: "12:00", AttendanceRequired: true},
			},
		},
		"HALF_DAY": {
			Name: "HALF_DAY",
			Slots: []models.TimeSlot{
				{Label: "First Period", Kind: "PERIOD", Start: "09:00", End: "09:55", AttendanceRequired: true},
			},
		},
		"HOLIDAY": {Name: "HOLIDAY", Slots: []models.TimeSlot{}},
	}
}

func TestTemplateNameFor(t *testing.T) {
	config := buildTestConfig()

	t.Run("Override Wins Over Weekly Default", func(t *testing.T) {
		// 2026-01-26 is a Monday but the override marks it HOLIDAY.
		name := TemplateNameFor(config, "2026-01-26", "1")
		assert.Equal(t, "HOLIDAY", name)
	})

	t.Run("Weekly Default Applies Without Override", func(t *testing.T) {
		name := TemplateNameFor(config, "2026-01-19", "1")
		assert.Equal(t, "REGULAR", name)
	})

	t.Run("Uncovered Date Falls Back To Holiday", func(t *testing.T) {
		bare := &models.CollegeConfig{WeeklySchedule: map[string]string{}, Overrides: map[string]string{}}
		name := TemplateNameFor(bare, "2026-01-19", "1")
		assert.Equal(t, constvars.TemplateHoliday, name)
	})

	t.Run("Nil Config Falls Back To Holiday", func(t *testing.T) {
		name := TemplateNameFor(nil, "2026-01-19", "1")
		assert.Equal(t, constvars.TemplateHoliday, name)
	})
}

func TestResolveDay(t *testing.T) {
	config := buildTestConfig()
	templates := buildTestTemplates()

	t.Run("Regular Monday Expands Slots In Order", func(t *testing.T) {
		date, _ := time.Parse(constvars.DateKeyLayout, "2026-01-19")
		day, dangling := ResolveDay(config, templates, date)

		assert.False(t, dangling)
		assert.Equal(t, "2026-01-19", day.Date)
		assert.Equal(t, "REGULAR", day.Template)
		assert.False(t, day.IsHoliday)
		assert.Len(t, day.Slots, 3)
		assert.Equal(t, "First Period", day.Slots[0].Label)
		assert.Equal(t, "P", day.Slots[0].Kind)
		assert.Equal(t, "09:00", day.Slots[0].Start)
		assert.Equal(t, "B", day.Slots[1].Kind)
		assert.Equal(t, "L", day.Slots[2].Kind)
	})

	t.Run("Holiday Override Produces Empty Slot List", func(t *testing.T) {
		date, _ := time.Parse(constvars.DateKeyLayout, "2026-01-26")
		day, dangling := ResolveDay(config, templates, date)

		assert.False(t, dangling)
		assert.True(t, day.IsHoliday)
		assert.NotNil(t, day.Slots)
		assert.Empty(t, day.Slots)
	})

	t.Run("Dangling Template Name Is A Holiday Under That Name", func(t *testing.T) {
		// The override names EXAM_DAY but no such template is stored.
		date, _ := time.Parse(constvars.DateKeyLayout, "2026-03-02")
		day, dangling := ResolveDay(config, templates, date)

		assert.True(t, dangling)
		assert.Equal(t, "EXAM_DAY", day.Template)
		assert.True(t, day.IsHoliday)
		assert.Empty(t, day.Slots)
	})

	t.Run("Zero Slot Template Is A Holiday Under That Name", func(t *testing.T) {
		stored := map[string]*models.TimetableTemplate{
			"STUDY_LEAVE": {Name: "STUDY_LEAVE", Slots: []models.TimeSlot{}},
		}
		leave := &models.CollegeConfig{
			WeeklySchedule: map[string]string{"1": "STUDY_LEAVE"},
			Overrides:      map[string]string{},
		}
		date, _ := time.Parse(constvars.DateKeyLayout, "2026-01-19")
		day, dangling := ResolveDay(leave, stored, date)

		assert.False(t, dangling)
		assert.Equal(t, "STUDY_LEAVE", day.Template)
		assert.True(t, day.IsHoliday)
		assert.Empty(t, day.Slots)
	})

	t.Run("Weekly Defaults Are Keyed By Weekday Number", func(t *testing.T) {
		numeric := &models.CollegeConfig{
			WeeklySchedule: map[string]string{"1": "REGULAR", "0": "HOLIDAY"},
			Overrides:      map[string]string{},
		}
		date, _ := time.Parse(constvars.DateKeyLayout, "2026-01-19")
		day, dangling := ResolveDay(numeric, templates, date)

		assert.False(t, dangling)
		assert.Equal(t, "REGULAR", day.Template)
		assert.False(t, day.IsHoliday)
		assert.Len(t, day.Slots, 3)
	})

	t.Run("Unknown Slot Kind Compacts To Free", func(t *testing.T) {
		odd := map[string]*models.TimetableTemplate{
			"REGULAR": {
				Name:  "REGULAR",
				Slots: []models.TimeSlot{{Label: "Assembly", Kind: "ASSEMBLY", Start: "08:30", End: "09:00"}},
			},
		}
		date, _ := time.Parse(constvars.DateKeyLayout, "2026-01-19")
		day, _ := ResolveDay(config, odd, date)
		assert.Equal(t, "F", day.Slots[0].Kind)
	})
}

func TestWeekdayKey(t *testing.T) {
	monday, _ := time.Parse(constvars.DateKeyLayout, "2026-01-19")
	sunday, _ := time.Parse(constvars.DateKeyLayout, "2026-01-18")

	assert.Equal(t, "1", WeekdayKey(monday))
	assert.Equal(t, "0", WeekdayKey(sunday))
}

func TestInstitutionToday(t *testing.T) {
	offset := 330 * time.Minute

	t.Run("Late UTC Evening Is Already Tomorrow Locally", func(t *testing.T) {
		now := time.Date(2026, 1, 19, 19, 0, 0, 0, time.UTC)
		today := InstitutionToday(now, offset)
		assert.Equal(t, "2026-01-20", today.Format(constvars.DateKeyLayout))
	})

	t.Run("UTC Morning Stays Same Local Date", func(t *testing.T) {
		now := time.Date(2026, 1, 19, 8, 0, 0, 0, time.UTC)
		today := InstitutionToday(now, offset)
		assert.Equal(t, "2026-01-19", today.Format(constvars.DateKeyLayout))
	})
}

func TestExpandRange(t *testing.T) {
	config := buildTestConfig()
	templates := buildTestTemplates()

	t.Run("Bounds Are Inclusive", func(t *testing.T) {
		start, _ := time.Parse(constvars.DateKeyLayout, "2026-01-19")
		end, _ := time.Parse(constvars.DateKeyLayout, "2026-01-21")

		days := ExpandRange(config, templates, start, end)
		assert.Len(t, days, 3)
		assert.Contains(t, days, "2026-01-19")
		assert.Contains(t, days, "2026-01-21")
	})

	t.Run("Inverted Bounds Yield Empty Result", func(t *testing.T) {
		start, _ := time.Parse(constvars.DateKeyLayout, "2026-01-21")
		end, _ := time.Parse(constvars.DateKeyLayout, "2026-01-19")

		days := ExpandRange(config, templates, start, end)
		assert.Empty(t, days)
	})

	t.Run("Range Spanning Month Boundary", func(t *testing.T) {
		start, _ := time.Parse(constvars.DateKeyLayout, "2026-01-31")
		end, _ := time.Parse(constvars.DateKeyLayout, "2026-02-02")

		days := ExpandRange(config, templates, start, end)
		assert.Len(t, days, 3)
		assert.Contains(t, days, "2026-02-01")
	})
}

func TestExpandMonth(t *testing.T) {
	config := buildTestConfig()

	t.Run("Non Leap February Has 28 Days", func(t *testing.T) {
		month, _ := time.Parse(constvars.MonthKeyLayout, "2026-02")
		days := ExpandMonth(config, month)
		assert.Len(t, days, 28)
	})

	t.Run("Leap February Has 29 Days", func(t *testing.T) {
		month, _ := time.Parse(constvars.MonthKeyLayout, "2024-02")
		days := ExpandMonth(config, month)
		assert.Len(t, days, 29)
		assert.Contains(t, days, "2024-02-29")
	})

	t.Run("Entries Carry Template And Holiday Flag Only", func(t *testing.T) {
		month, _ := time.Parse(constvars.MonthKeyLayout, "2026-01")
		days := ExpandMonth(config, month)

		assert.Len(t, days, 31)
		// 2026-01-26 is overridden to HOLIDAY, 2026-01-18 is a Sunday.
		assert.True(t, days["2026-01-26"].IsHoliday)
		assert.True(t, days["2026-01-18"].IsHoliday)
		assert.Equal(t, "REGULAR", days["2026-01-19"].Template)
		assert.False(t, days["2026-01-19"].IsHoliday)
	})

	t.Run("Non Holiday Override Is Not Flagged", func(t *testing.T) {
		month, _ := time.Parse(constvars.MonthKeyLayout, "2026-03")
		days := ExpandMonth(config, month)
		assert.Equal(t, "EXAM_DAY", days["2026-03-02"].Template)
		assert.False(t, days["2026-03-02"].IsHoliday)
	})
}
