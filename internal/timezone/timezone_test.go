package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocation_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("").String())
	assert.Equal(t, DefaultTimezone, Location("Nowhere/Land").String())
	assert.Equal(t, "UTC", Location("UTC").String())
}

func TestClinic_DateKeyUsesClinicWallClock(t *testing.T) {
	c := NewClinic("America/Sao_Paulo")

	// 01:30 UTC on the 11th is still the evening of the 10th in São Paulo.
	ts := time.Date(2024, 5, 11, 1, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-05-10", c.DateKey(ts))
	assert.Equal(t, "22:30", c.ClockOf(ts))
}

func TestClinic_NowIsInClinicLocation(t *testing.T) {
	fixed := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewClinicAt(time.UTC, func() time.Time { return fixed })
	assert.True(t, c.Now().Equal(fixed))
	assert.Equal(t, time.UTC, c.Location())
}
