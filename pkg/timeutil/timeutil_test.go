package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTo24Hour(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "midnight 12-hour", in: "12:00 AM", want: "00:00:00"},
		{name: "noon 12-hour", in: "12:00 PM", want: "12:00:00"},
		{name: "morning 12-hour", in: "10:15 am", want: "10:15:00"},
		{name: "already 24-hour", in: "13:30:00", want: "13:30:00"},
		{name: "24-hour without seconds", in: "08:05", want: "08:05:00"},
		{name: "surrounding whitespace", in: "  9:00 PM ", want: "21:00:00"},
		{name: "out of range 12-hour", in: "13:00 PM", wantErr: true},
		{name: "out of range minutes", in: "10:75", wantErr: true},
		{name: "garbage", in: "not a time", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := To24Hour(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDate(t *testing.T) {
	for _, in := range []string{"2024-03-01", "2024/03/01", "2024.03.01"} {
		got, err := ParseDate(in)
		require.NoError(t, err, in)
		assert.Equal(t, 2024, got.Year())
		assert.Equal(t, time.March, got.Month())
		assert.Equal(t, 1, got.Day())
	}

	_, err := ParseDate("01-03-2024")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestEndTime(t *testing.T) {
	start, err := ParseClock("09:00:00")
	require.NoError(t, err)

	end, err := EndTime(start, Minutes(90))
	require.NoError(t, err)
	assert.Equal(t, "10:30:00", end.Format(Clock24Layout))

	end, err = EndTime(start, Span(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "11:00:00", end.Format(Clock24Layout))
}

func TestEndTimeWrapsPastMidnight(t *testing.T) {
	start, err := ParseClock("23:30:00")
	require.NoError(t, err)

	end, err := EndTime(start, Minutes(60))
	require.NoError(t, err)

	// Only the clock component survives the rollover.
	assert.Equal(t, "00:30:00", end.Format(Clock24Layout))
	assert.Equal(t, start.Day(), end.Day())
}

func TestEndTimeRejectsBadDurations(t *testing.T) {
	start, err := ParseClock("09:00:00")
	require.NoError(t, err)

	_, err = EndTime(start, Minutes(-5))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = EndTime(start, Span(-time.Minute))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = EndTime(start, Duration{})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestBetween(t *testing.T) {
	a := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	b := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)

	diff, err := Between(a, b)
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, diff)

	diff, err = Between(a, a)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), diff)

	_, err = Between(b, a)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCombine(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	clock, err := ParseClock("10:00 AM")
	require.NoError(t, err)

	combined := Combine(date, clock)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), combined)
}

func TestStripZone(t *testing.T) {
	offset := time.FixedZone("UTC+3", 3*60*60)
	in := time.Date(2024, 3, 1, 9, 30, 0, 0, offset)

	out := StripZone(in, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC), out)
}

func TestFormat12Hour(t *testing.T) {
	clock, err := ParseClock("14:00:00")
	require.NoError(t, err)
	assert.Equal(t, "02:00 PM", Format12Hour(clock))

	clock, err = ParseClock("00:30:00")
	require.NoError(t, err)
	assert.Equal(t, "12:30 AM", Format12Hour(clock))
}
