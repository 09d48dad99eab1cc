package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid", input: "09:30:00"},
		{name: "midnight", input: "00:00:00"},
		{name: "last second", input: "23:59:59"},
		{name: "no seconds", input: "09:30", wantErr: true},
		{name: "one digit hour", input: "9:30:00", wantErr: true},
		{name: "hour out of range", input: "24:00:00", wantErr: true},
		{name: "garbage", input: "ab:cd:ef", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := MustTimeString("09:00:00").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30:00"), got)

	got, err = MustTimeString("23:30:00").AddMinutes(29)
	require.NoError(t, err)
	assert.Equal(t, TimeString("23:59:00"), got)

	_, err = MustTimeString("23:30:00").AddMinutes(30)
	assert.ErrorIs(t, err, ErrTimeOverflow)
}

func TestTimeString_Compare(t *testing.T) {
	early := MustTimeString("09:00:00")
	late := MustTimeString("17:00:00")

	assert.True(t, early.IsBefore(late))
	assert.True(t, late.IsAfter(early))
	assert.False(t, early.IsAfter(early))
	assert.True(t, early.Equal("09:00:00"))
	assert.Equal(t, -1, TimeString("bad").Seconds())
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan([]byte("10:15:00")))
	assert.Equal(t, TimeString("10:15:00"), ts)

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 8, 5, 9, 0, time.UTC)))
	assert.Equal(t, TimeString("08:05:09"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.ErrorIs(t, ts.Scan(42), ErrInvalidTime)
}

func TestNewDateFromString(t *testing.T) {
	d, err := NewDateFromString("2025-10-15")
	require.NoError(t, err)
	assert.Equal(t, "2025-10-15", d.String())

	for _, bad := range []string{"2025-1-15", "15.10.2025", "2025-02-30", ""} {
		_, err := NewDateFromString(bad)
		assert.ErrorIs(t, err, ErrInvalidDate, bad)
	}
}

func TestDate_Weekday(t *testing.T) {
	assert.Equal(t, 0, MustDate("2025-10-13").Weekday()) // понедельник
	assert.Equal(t, 2, MustDate("2025-10-15").Weekday()) // среда
	assert.Equal(t, 6, MustDate("2025-10-19").Weekday()) // воскресенье
}

func TestDate_At(t *testing.T) {
	at := MustDate("2025-10-15").At(MustTimeString("09:30:00"))
	assert.Equal(t, time.Date(2025, 10, 15, 9, 30, 0, 0, time.UTC), at)
}

func TestDate_Scan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, Date("2025-12-31"), d)

	require.NoError(t, d.Scan("2025-12-31T00:00:00Z"))
	assert.Equal(t, Date("2025-12-31"), d)

	assert.True(t, MustDate("2025-12-30").Before(d))
}
