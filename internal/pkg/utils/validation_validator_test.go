package utils

import (
	"testing"

	"campushub-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
)

func buildTemplateRequest(start, end string) *requests.CreateTemplate {
	return &requests.CreateTemplate{
		Name: "REGULAR",
		Slots: []requests.CreateTemplateSlot{
			{Label: "First Period", Kind: "PERIOD", Start: start, End: end},
		},
	}
}

func TestValidateStruct_TemplateSlots(t *testing.T) {
	t.Run("Well Formed Slot Passes", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(buildTemplateRequest("09:00", "09:55")))
	})

	t.Run("End Before Start Fails", func(t *testing.T) {
		assert.Error(t, ValidateStruct(buildTemplateRequest("09:55", "09:00")))
	})

	t.Run("End Equal To Start Fails", func(t *testing.T) {
		assert.Error(t, ValidateStruct(buildTemplateRequest("09:00", "09:00")))
	})

	t.Run("Longer End String Does Not Pass By Length", func(t *testing.T) {
		assert.Error(t, ValidateStruct(buildTemplateRequest("23:00", "9:00")))
	})

	t.Run("Malformed Time Fails", func(t *testing.T) {
		assert.Error(t, ValidateStruct(buildTemplateRequest("9am", "10am")))
	})
}

func TestValidateStruct_SaveSchedule(t *testing.T) {
	t.Run("Weekday Numbers And Date Overrides Pass", func(t *testing.T) {
		err := ValidateStruct(&requests.SaveSchedule{
			WeeklySchedule: map[string]string{"0": "HOLIDAY", "1": "REGULAR", "6": "HALF_DAY"},
			Overrides:      map[string]string{"2026-01-26": "HOLIDAY"},
		})
		assert.NoError(t, err)
	})

	t.Run("Named Weekday Key Fails", func(t *testing.T) {
		err := ValidateStruct(&requests.SaveSchedule{
			WeeklySchedule: map[string]string{"MON": "REGULAR"},
		})
		assert.Error(t, err)
	})

	t.Run("Out Of Range Weekday Key Fails", func(t *testing.T) {
		err := ValidateStruct(&requests.SaveSchedule{
			WeeklySchedule: map[string]string{"7": "REGULAR"},
		})
		assert.Error(t, err)
	})

	t.Run("Malformed Override Key Fails", func(t *testing.T) {
		err := ValidateStruct(&requests.SaveSchedule{
			WeeklySchedule: map[string]string{"1": "REGULAR"},
			Overrides:      map[string]string{"26-01-2026": "HOLIDAY"},
		})
		assert.Error(t, err)
	})

	t.Run("Empty Overrides Map Passes", func(t *testing.T) {
		err := ValidateStruct(&requests.SaveSchedule{
			WeeklySchedule: map[string]string{"1": "REGULAR"},
			Overrides:      map[string]string{},
		})
		assert.NoError(t, err)
	})
}
