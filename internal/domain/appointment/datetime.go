package appointment

import (
	"regexp"
	"strings"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

var (
	dateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockRe = regexp.MustCompile(`^\d{2}:\d{2}(:\d{2})?$`)
)

// ParseDate validates a YYYY-MM-DD string and returns midnight of that day
// in loc.
func ParseDate(raw string, loc *time.Location) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if !dateRe.MatchString(s) {
		return time.Time{}, httperr.Validation(CodeInvalidDate, "Data inválida. Use o formato AAAA-MM-DD.")
	}
	d, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, httperr.Validation(CodeInvalidDate, "Data inválida. Use o formato AAAA-MM-DD.")
	}
	return d, nil
}

// CombineDateTime joins a date and an HH:MM[:SS] clock into one timestamp.
func CombineDateTime(date, clock string, loc *time.Location) (time.Time, error) {
	day, err := ParseDate(date, loc)
	if err != nil {
		return time.Time{}, err
	}

	c := strings.TrimSpace(clock)
	if !clockRe.MatchString(c) {
		return time.Time{}, httperr.Validation(CodeInvalidTime, "Hora inválida. Use o formato HH:MM.")
	}
	if len(c) == len(ClockLayout) {
		c += ":00"
	}
	t, err := time.Parse("15:04:05", c)
	if err != nil {
		return time.Time{}, httperr.Validation(CodeInvalidTime, "Hora inválida. Use o formato HH:MM.")
	}

	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc), nil
}

// DateRange turns two inclusive calendar dates into a half-open [start, end)
// interval covering both days.
func DateRange(startDate, endDate string, loc *time.Location) (time.Time, time.Time, error) {
	start, err := ParseDate(startDate, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := ParseDate(endDate, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, httperr.Validation(CodeInvalidRange, "A data final deve ser igual ou posterior à data inicial.")
	}
	return start, end.AddDate(0, 0, 1), nil
}

// MonthRange returns [first day of month, first day of next month) in loc.
func MonthRange(year, month int, loc *time.Location) (time.Time, time.Time, error) {
	if year < 2000 || year > 2100 {
		return time.Time{}, time.Time{}, httperr.Validation(CodeInvalidYear, "Ano inválido.")
	}
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, httperr.Validation(CodeInvalidMonth, "Mês inválido.")
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0), nil
}
