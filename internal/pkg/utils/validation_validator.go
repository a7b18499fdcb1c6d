package utils

import (
	"campushub-service/internal/pkg/constvars"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var (
	regexDateKey    = regexp.MustCompile(constvars.RegexDateYYYYMMDD)
	regexMonthKey   = regexp.MustCompile(constvars.RegexMonthYYYYMM)
	regexSlotTime   = regexp.MustCompile(constvars.RegexTimeHHMM)
	regexWeekdayKey = regexp.MustCompile(constvars.RegexWeekdayKey)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("date_key", validateDateKey)
	validate.RegisterValidation("month_key", validateMonthKey)
	validate.RegisterValidation("slot_time", validateSlotTime)
	validate.RegisterValidation("slot_after", validateSlotAfter)
	validate.RegisterValidation("weekday_key", validateWeekdayKey)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateDateKey(fl validator.FieldLevel) bool {
	return regexDateKey.MatchString(fl.Field().String())
}

func validateMonthKey(fl validator.FieldLevel) bool {
	return regexMonthKey.MatchString(fl.Field().String())
}

func validateSlotTime(fl validator.FieldLevel) bool {
	return regexSlotTime.MatchString(fl.Field().String())
}

// validateSlotAfter compares the field against the sibling named by the
// tag parameter. Zero-padded HH:MM strings order lexicographically, so a
// plain string comparison is a time comparison.
func validateSlotAfter(fl validator.FieldLevel) bool {
	other := fl.Parent().FieldByName(fl.Param())
	if !other.IsValid() {
		return false
	}
	return fl.Field().String() > other.String()
}

func validateWeekdayKey(fl validator.FieldLevel) bool {
	return regexWeekdayKey.MatchString(fl.Field().String())
}
