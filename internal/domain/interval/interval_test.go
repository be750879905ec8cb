//go:build unit

package interval_test

import (
	"testing"
	"time"

	"interview-scheduler/internal/domain/interval"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustInterval(t *testing.T, start, end time.Time) interval.Interval {
	t.Helper()
	iv, err := interval.New(start, end)
	require.NoError(t, err)
	return iv
}

func at(hour, minute int) time.Time {
	return time.Date(2025, 3, 11, hour, minute, 0, 0, time.UTC)
}

func TestNew(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		iv, err := interval.New(at(9, 0), at(10, 0))
		require.NoError(t, err)
		assert.Equal(t, time.Hour, iv.Duration())
	})

	t.Run("start equal to end", func(t *testing.T) {
		_, err := interval.New(at(9, 0), at(9, 0))
		assert.ErrorIs(t, err, interval.ErrInvalidInterval)
	})

	t.Run("start after end", func(t *testing.T) {
		_, err := interval.New(at(10, 0), at(9, 0))
		assert.ErrorIs(t, err, interval.ErrInvalidInterval)
	})
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a    interval.Interval
		b    interval.Interval
		want bool
	}{
		{
			name: "partial overlap",
			a:    mustInterval(t, at(9, 0), at(11, 0)),
			b:    mustInterval(t, at(10, 0), at(12, 0)),
			want: true,
		},
		{
			name: "containment",
			a:    mustInterval(t, at(9, 0), at(17, 0)),
			b:    mustInterval(t, at(10, 0), at(11, 0)),
			want: true,
		},
		{
			name: "touching endpoints do not overlap",
			a:    mustInterval(t, at(9, 0), at(10, 0)),
			b:    mustInterval(t, at(10, 0), at(11, 0)),
			want: false,
		},
		{
			name: "disjoint",
			a:    mustInterval(t, at(9, 0), at(10, 0)),
			b:    mustInterval(t, at(14, 0), at(15, 0)),
			want: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Overlaps(tc.b))
			// Overlap is symmetric.
			assert.Equal(t, tc.want, tc.b.Overlaps(tc.a))
		})
	}

	t.Run("every interval overlaps itself", func(t *testing.T) {
		iv := mustInterval(t, at(9, 30), at(10, 15))
		assert.True(t, iv.Overlaps(iv))
	})
}

func TestShift(t *testing.T) {
	iv := mustInterval(t, at(9, 0), at(10, 0))

	shifted := iv.Shift(90)
	assert.Equal(t, at(10, 30), shifted.Start())
	assert.Equal(t, at(11, 30), shifted.End())

	back := shifted.Shift(-90)
	assert.True(t, back.Equal(iv))
}

func TestContains(t *testing.T) {
	iv := mustInterval(t, at(9, 0), at(10, 0))

	assert.True(t, iv.Contains(at(9, 0)), "start is inclusive")
	assert.True(t, iv.Contains(at(9, 59)))
	assert.False(t, iv.Contains(at(10, 0)), "end is exclusive")
	assert.False(t, iv.Contains(at(8, 59)))
}
