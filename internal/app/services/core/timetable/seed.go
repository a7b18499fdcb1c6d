package timetable

import (
	"context"

	"campushub-service/internal/app/models"
	"campushub-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

func regularDaySlots() []models.TimeSlot {
	return []models.TimeSlot{
		{Label: "First Period", Kind: constvars.SlotKindPeriod, Start: "09:00", End: "09:55", AttendanceRequired: true},
		{Label: "Second Period", Kind: constvars.SlotKindPeriod, Start: "09:55", End: "10:50", AttendanceRequired: true},
		{Label: "Break", Kind: constvars.SlotKindBreak, Start: "10:50", End: "11:05"},
		{Label: "Third Period", Kind: constvars.SlotKindPeriod, Start: "11:05", End: "12:00", AttendanceRequired: true},
		{Label: "Fourth Period", Kind: constvars.SlotKindPeriod, Start: "12:00", End: "12:55", AttendanceRequired: true},
		{Label: "Lunch Break", Kind: constvars.SlotKindBreak, Start: "12:55", End: "13:40"},
		{Label: "Fifth Period", Kind: constvars.SlotKindPeriod, Start: "13:40", End: "14:35", AttendanceRequired: true},
		{Label: "Sixth Period", Kind: constvars.SlotKindPeriod, Start: "14:35", End: "15:30", AttendanceRequired: true},
	}
}

// Reseed wipes templates and the schedule configuration and restores the
// stock working week. Destructive, admin-only, intended for fresh
// deployments and staging resets.
func (uc *timetableUsecase) Reseed(ctx context.Context) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("timetableUsecase.Reseed called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := uc.TemplateRepository.DeleteAll(ctx); err != nil {
		return err
	}
	if err := uc.ConfigRepository.DeleteConfiguration(ctx); err != nil {
		return err
	}

	now := uc.Now()
	seeds := []*models.TimetableTemplate{
		{Name: constvars.TemplateRegular, Slots: regularDaySlots()},
		{Name: constvars.TemplateHoliday, Slots: []models.TimeSlot{}},
	}
	for _, template := range seeds {
		template.CreatedAt = now
		template.UpdatedAt = now
		if _, err := uc.TemplateRepository.CreateTemplate(ctx, template); err != nil {
			uc.Log.Error("timetableUsecase.Reseed error inserting seed template",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String("name", template.Name),
				zap.Error(err),
			)
			return err
		}
	}

	// Keys are weekday numbers, "0" (Sunday) through "6" (Saturday).
	weekly := map[string]string{
		"0": constvars.TemplateHoliday,
		"1": constvars.TemplateRegular,
		"2": constvars.TemplateRegular,
		"3": constvars.TemplateRegular,
		"4": constvars.TemplateRegular,
		"5": constvars.TemplateRegular,
		"6": constvars.TemplateRegular,
	}
	if _, err := uc.ConfigRepository.SaveConfiguration(ctx, weekly, map[string]string{}); err != nil {
		return err
	}

	uc.ConfigCache.Invalidate()
	return nil
}
