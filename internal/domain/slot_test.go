package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

func TestInterval_Overlaps(t *testing.T) {
	const duration = 30

	tests := []struct {
		name    string
		a, b    types.TimeString
		overlap bool
	}{
		{name: "same start", a: "09:00:00", b: "09:00:00", overlap: true},
		{name: "inside", a: "09:00:00", b: "09:15:00", overlap: true},
		{name: "one second short", a: "09:00:00", b: "09:29:59", overlap: true},
		{name: "touching", a: "09:00:00", b: "09:30:00", overlap: false},
		{name: "far apart", a: "09:00:00", b: "12:00:00", overlap: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewInterval(tt.a, duration)
			b := NewInterval(tt.b, duration)
			assert.Equal(t, tt.overlap, a.Overlaps(b))
			assert.Equal(t, tt.overlap, b.Overlaps(a), "overlap must be symmetric")
		})
	}
}

func TestConflictsWithAny(t *testing.T) {
	existing := []*Appointment{
		{StartTime: "09:00:00"},
		{StartTime: "10:00:00"},
	}

	assert.True(t, ConflictsWithAny("09:15:00", 30, existing))
	assert.True(t, ConflictsWithAny("09:45:00", 30, existing))
	assert.False(t, ConflictsWithAny("09:30:00", 30, existing))
	assert.False(t, ConflictsWithAny("10:30:00", 30, existing))
	assert.False(t, ConflictsWithAny("09:00:00", 30, nil))
}

func TestBusinessHours_Contains(t *testing.T) {
	hours := &BusinessHours{OpensAt: "09:00:00", ClosesAt: "17:00:00"}

	assert.True(t, hours.Contains("09:00:00"))
	assert.True(t, hours.Contains("17:00:00"))
	assert.True(t, hours.Contains("12:00:00"))
	assert.False(t, hours.Contains("08:59:59"))
	assert.False(t, hours.Contains("17:00:01"))
}

func TestPage_Normalize(t *testing.T) {
	assert.Equal(t, uint64(DefaultPageLimit), Page{}.Normalize().Limit)
	assert.Equal(t, uint64(MaxPageLimit), Page{Limit: 10000}.Normalize().Limit)
	assert.Equal(t, Page{Offset: 5, Limit: 20}, Page{Offset: 5, Limit: 20}.Normalize())
}
