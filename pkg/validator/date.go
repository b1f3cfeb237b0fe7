package validator

import "time"

// PastDate accepts date strings in the given layout that fall strictly
// before today. Useful for dates of birth. Unparseable values fail.
func PastDate(layout string) Validator {
	return Func(func(value string) bool {
		t, err := time.Parse(layout, value)
		if err != nil {
			return false
		}
		now := time.Now().UTC()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		return t.Before(today)
	})
}
