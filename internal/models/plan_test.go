package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarDayScan(t *testing.T) {
	cases := []struct {
		name  string
		input interface{}
		want  CalendarDay
	}{
		{"nil", nil, ""},
		{"time at midnight", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), "2025-06-01"},
		{"text", "2025-06-03", "2025-06-03"},
		{"bytes", []byte("2025-06-02"), "2025-06-02"},
		{"text with time suffix", "2025-06-02T00:00:00Z", "2025-06-02"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var d CalendarDay
			require.NoError(t, d.Scan(tc.input))
			assert.Equal(t, tc.want, d)
		})
	}
}

func TestCalendarDayScanRejectsGarbage(t *testing.T) {
	var d CalendarDay
	assert.Error(t, d.Scan("June"))
	assert.Error(t, d.Scan("2025-13-01"))
	assert.Error(t, d.Scan(42))
}

func TestCalendarDayValue(t *testing.T) {
	v, err := CalendarDay("2025-06-01").Value()
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01", v)

	v, err = CalendarDay("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
