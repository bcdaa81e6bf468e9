package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func rangeAt(t *testing.T, startHour, startMin, durMin int) TimeRange {
	t.Helper()
	start := time.Date(2024, 6, 10, startHour, startMin, 0, 0, time.Local)
	return TimeRange{Start: start, End: start.Add(time.Duration(durMin) * time.Minute)}
}

func TestTimeRange_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    TimeRange
		b    TimeRange
		want bool
	}{
		{
			name: "disjoint",
			a:    rangeAt(t, 9, 0, 30),
			b:    rangeAt(t, 11, 0, 30),
			want: false,
		},
		{
			name: "adjacent back to back",
			a:    rangeAt(t, 10, 0, 30),
			b:    rangeAt(t, 10, 30, 30),
			want: false,
		},
		{
			name: "partial overlap",
			a:    rangeAt(t, 10, 0, 30),
			b:    rangeAt(t, 10, 15, 30),
			want: true,
		},
		{
			name: "identical",
			a:    rangeAt(t, 10, 0, 30),
			b:    rangeAt(t, 10, 0, 30),
			want: true,
		},
		{
			name: "containment",
			a:    rangeAt(t, 10, 0, 60),
			b:    rangeAt(t, 10, 20, 10),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}
}

func TestTimeRange_Contains(t *testing.T) {
	r := rangeAt(t, 10, 0, 60)

	assert.True(t, r.Contains(r.Start), "start is inside the half-open interval")
	assert.True(t, r.Contains(r.Start.Add(30*time.Minute)))
	assert.False(t, r.Contains(r.End), "end is outside the half-open interval")
	assert.False(t, r.Contains(r.Start.Add(-time.Minute)))
}

func TestAppointment_Range(t *testing.T) {
	start := time.Date(2024, 6, 10, 10, 0, 0, 0, time.Local)
	appt := &Appointment{StartAt: start, DurationMinutes: 45}

	r := appt.Range()
	assert.Equal(t, start, r.Start)
	assert.Equal(t, start.Add(45*time.Minute), r.End)
	assert.Equal(t, appt.EndAt(), r.End)
}
