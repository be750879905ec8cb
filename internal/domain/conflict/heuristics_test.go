//go:build unit

package conflict_test

import (
	"testing"
	"time"

	"interview-scheduler/internal/domain/conflict"
	"interview-scheduler/internal/domain/interval"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-03-11 is a Tuesday.
func tuesdayAt(hour, minute int) time.Time {
	return time.Date(2025, 3, 11, hour, minute, 0, 0, time.UTC)
}

func slot(t *testing.T, start time.Time, d time.Duration) interval.Interval {
	t.Helper()
	iv, err := interval.FromStartDuration(start, d)
	require.NoError(t, err)
	return iv
}

func TestAdvisoryWarnings(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		d     time.Duration
		want  []string
	}{
		{
			name:  "mid-morning weekday slot is clean",
			start: tuesdayAt(10, 0),
			d:     time.Hour,
			want:  nil,
		},
		{
			name:  "start during lunch hour",
			start: tuesdayAt(12, 30),
			d:     30 * time.Minute,
			want:  []string{conflict.WarnLunchHours},
		},
		{
			name:  "interval straddling noon",
			start: tuesdayAt(11, 30),
			d:     time.Hour,
			want:  []string{conflict.WarnLunchHours},
		},
		{
			name:  "ends exactly at noon",
			start: tuesdayAt(11, 0),
			d:     time.Hour,
			want:  nil,
		},
		{
			name:  "before business hours",
			start: tuesdayAt(8, 0),
			d:     time.Hour,
			want:  []string{conflict.WarnBeforeHours},
		},
		{
			name:  "after business hours",
			start: tuesdayAt(17, 0),
			d:     time.Hour,
			want:  []string{conflict.WarnAfterHours},
		},
		{
			name:  "friday afternoon", // 2025-03-14
			start: time.Date(2025, 3, 14, 15, 0, 0, 0, time.UTC),
			d:     time.Hour,
			want:  []string{conflict.WarnFridayPM},
		},
		{
			name:  "friday before the cutoff",
			start: time.Date(2025, 3, 14, 14, 0, 0, 0, time.UTC),
			d:     time.Hour,
			want:  nil,
		},
		{
			name:  "early monday morning", // 2025-03-10
			start: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
			d:     time.Hour,
			want:  []string{conflict.WarnMondayMorning},
		},
		{
			name:  "monday at ten is fine",
			start: time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC),
			d:     time.Hour,
			want:  nil,
		},
		{
			name:  "early monday before business hours fires both rules",
			start: time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
			d:     time.Hour,
			want:  []string{conflict.WarnBeforeHours, conflict.WarnMondayMorning},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := conflict.AdvisoryWarnings(slot(t, tc.start, tc.d))
			assert.Equal(t, tc.want, got)
		})
	}
}
