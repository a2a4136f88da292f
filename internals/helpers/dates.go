package helper

import (
	"regexp"
	"time"

	"github.com/gofiber/fiber/v2"
)

const DateLayout = "2006-01-02"

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseDate validates a YYYY-MM-DD string strictly (pattern + calendar check).
func ParseDate(s string) (time.Time, error) {
	if !dateRe.MatchString(s) {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "日期格式錯誤，請使用 YYYY-MM-DD")
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "日期格式錯誤，請使用 YYYY-MM-DD")
	}
	return t, nil
}

// LastWorkday maps a calendar date to the preceding business day:
// Sunday and Saturday fall back to Friday, Monday to the previous Friday,
// any other weekday to the previous day. Calendar dates only, no timezone.
func LastWorkday(input string) (string, error) {
	t, err := ParseDate(input)
	if err != nil {
		return "", err
	}
	switch t.Weekday() {
	case time.Sunday:
		t = t.AddDate(0, 0, -2)
	case time.Saturday:
		t = t.AddDate(0, 0, -1)
	case time.Monday:
		t = t.AddDate(0, 0, -3)
	default:
		t = t.AddDate(0, 0, -1)
	}
	return t.Format(DateLayout), nil
}

// Today returns the current calendar date as YYYY-MM-DD.
func Today() string {
	return time.Now().Format(DateLayout)
}
