package timetable

import (
	"testing"

	"campushub-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint(t *testing.T) {
	day := &responses.DaySchedule{
		Date:      "2026-01-19",
		Template:  "REGULAR",
		IsHoliday: false,
		Slots: []responses.CompactSlot{
			{Label: "First Period", Kind: "P", Start: "09:00", End: "09:55"},
		},
	}

	t.Run("Equal Payloads Hash Equal", func(t *testing.T) {
		first, err := Fingerprint(day)
		assert.NoError(t, err)

		clone := *day
		second, err := Fingerprint(&clone)
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("Version Is Hex SHA1", func(t *testing.T) {
		version, err := Fingerprint(day)
		assert.NoError(t, err)
		assert.Len(t, version, 40)
		assert.Regexp(t, "^[0-9a-f]{40}$", version)
	})

	t.Run("Any Field Change Changes Version", func(t *testing.T) {
		base, _ := Fingerprint(day)

		changed := *day
		changed.Template = "HALF_DAY"
		altered, _ := Fingerprint(&changed)
		assert.NotEqual(t, base, altered)

		changed = *day
		changed.Slots = []responses.CompactSlot{
			{Label: "First Period", Kind: "P", Start: "09:05", End: "09:55"},
		}
		altered, _ = Fingerprint(&changed)
		assert.NotEqual(t, base, altered)
	})

	t.Run("Slot Order Changes Version", func(t *testing.T) {
		first := responses.CompactSlot{Label: "First Period", Kind: "P", Start: "09:00", End: "09:55"}
		second := responses.CompactSlot{Label: "Break", Kind: "B", Start: "09:55", End: "10:10"}

		ordered := *day
		ordered.Slots = []responses.CompactSlot{first, second}
		base, err := Fingerprint(&ordered)
		assert.NoError(t, err)

		swapped := *day
		swapped.Slots = []responses.CompactSlot{second, first}
		altered, err := Fingerprint(&swapped)
		assert.NoError(t, err)
		assert.NotEqual(t, base, altered)
	})
}
