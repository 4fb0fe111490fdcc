package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

// Location resolves tz, falling back to the clinic default when tz is empty
// or unknown.
func Location(tz string) *time.Location {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Clinic pins every calendar computation to the clinic's wall clock.
type Clinic struct {
	loc *time.Location
	now func() time.Time
}

func NewClinic(tz string) *Clinic {
	return &Clinic{loc: Location(tz), now: time.Now}
}

func NewClinicAt(loc *time.Location, now func() time.Time) *Clinic {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &Clinic{loc: loc, now: now}
}

func (c *Clinic) Location() *time.Location {
	return c.loc
}

func (c *Clinic) Now() time.Time {
	return c.now().In(c.loc)
}

// DateKey is the YYYY-MM-DD calendar date of t on the clinic wall clock.
func (c *Clinic) DateKey(t time.Time) string {
	return t.In(c.loc).Format("2006-01-02")
}

// ClockOf is the HH:MM of t on the clinic wall clock.
func (c *Clinic) ClockOf(t time.Time) string {
	return t.In(c.loc).Format("15:04")
}
