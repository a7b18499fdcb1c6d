package academics

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var romanYears = map[string]int{
	"I":   1,
	"II":  2,
	"III": 3,
	"IV":  4,
	"V":   5,
}

// normalizeYear accepts spreadsheet year cells as roman numerals or
// digits ("I", "II", "2").
func normalizeYear(raw string) (int, error) {
	cleaned := strings.ToUpper(strings.TrimSpace(raw))
	if cleaned == "" {
		return 0, fmt.Errorf("year is empty")
	}
	if year, ok := romanYears[cleaned]; ok {
		return year, nil
	}
	year, err := strconv.Atoi(cleaned)
	if err != nil || year < 1 {
		return 0, fmt.Errorf("unrecognized year %q", raw)
	}
	return year, nil
}

// parseRosterDate reads the DD.MM.YYYY format the registrar's
// spreadsheets use and pins it to UTC midnight.
func parseRosterDate(raw string) (*time.Time, error) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return nil, nil
	}
	parsed, err := time.Parse("02.01.2006", cleaned)
	if err != nil {
		return nil, fmt.Errorf("unrecognized date %q", raw)
	}
	date := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
	return &date, nil
}

// initialPassword is the first-login credential handed out with an
// imported roster: the date of birth digits. Forced rotation on first
// login makes it a bootstrap secret, not a real one.
func initialPassword(dateOfBirth string) string {
	return strings.ReplaceAll(strings.TrimSpace(dateOfBirth), ".", "")
}
