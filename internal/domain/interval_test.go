package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2025, time.June, d, 0, 0, 0, 0, time.UTC)
}

func interval(t *testing.T, start, end int) DateInterval {
	t.Helper()
	i, err := NewDateInterval(day(start), day(end))
	require.NoError(t, err)
	return i
}

func TestNewDateInterval(t *testing.T) {
	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr bool
	}{
		{name: "valid", start: day(1), end: day(5)},
		{name: "start equals end", start: day(5), end: day(5), wantErr: true},
		{name: "start after end", start: day(10), end: day(5), wantErr: true},
		{name: "zero start", start: time.Time{}, end: day(5), wantErr: true},
		{name: "zero end", start: day(1), end: time.Time{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDateInterval(tt.start, tt.end)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    DateInterval
		b    DateInterval
		want bool
	}{
		{name: "disjoint", a: interval(t, 1, 5), b: interval(t, 10, 15), want: false},
		{name: "contained", a: interval(t, 1, 10), b: interval(t, 3, 7), want: true},
		{name: "partial", a: interval(t, 1, 5), b: interval(t, 4, 8), want: true},
		{name: "touching boundaries overlap", a: interval(t, 1, 5), b: interval(t, 5, 10), want: true},
		{name: "one day apart", a: interval(t, 1, 5), b: interval(t, 6, 10), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// symmetry holds for every pair
			assert.Equal(t, tt.a.Overlaps(tt.b), tt.b.Overlaps(tt.a))
		})
	}
}

func TestOverlapsSelf(t *testing.T) {
	i := interval(t, 3, 9)
	assert.True(t, i.Overlaps(i))
}

func TestOverlapsAny(t *testing.T) {
	existing := []DateInterval{interval(t, 1, 3), interval(t, 10, 12)}

	assert.True(t, interval(t, 2, 5).OverlapsAny(existing))
	assert.True(t, interval(t, 12, 14).OverlapsAny(existing))
	assert.False(t, interval(t, 5, 8).OverlapsAny(existing))
	assert.False(t, interval(t, 5, 8).OverlapsAny(nil))
}

func TestContains(t *testing.T) {
	i := interval(t, 5, 10)

	assert.True(t, i.Contains(day(5)))
	assert.True(t, i.Contains(day(7)))
	assert.True(t, i.Contains(day(10)))
	assert.False(t, i.Contains(day(4)))
	assert.False(t, i.Contains(day(11)))
}

func TestNights(t *testing.T) {
	assert.Equal(t, 4, interval(t, 1, 5).Nights())
	assert.Equal(t, 1, interval(t, 1, 2).Nights())

	// partial days round up
	i, err := NewDateInterval(day(1), day(2).Add(6*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, i.Nights())
}
