package utils

import "time"

// DayWindow returns the half-open interval [midnight, next midnight) that
// contains t, in t's location. Every collector for one dashboard request must
// be given the same window so the response agrees on what "today" means even
// across a midnight boundary mid-request.
func DayWindow(t time.Time) (start, end time.Time) {
	start = StartOfDay(t)
	end = time.Date(t.Year(), t.Month(), t.Day()+1, 0, 0, 0, 0, t.Location())
	return start, end
}

// StartOfDay truncates t to midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
