package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShopService/internal/domain"
	"github.com/m04kA/SMC-ShopService/pkg/types"
)

const (
	testBusinessStart = types.TimeString("08:00")
	testBusinessEnd   = types.TimeString("23:55")
	testStepMinutes   = 10
)

func day() time.Time {
	return time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local)
}

func at(hour, min int) time.Time {
	return time.Date(2024, 6, 10, hour, min, 0, 0, time.Local)
}

func appointmentAt(hour, min, durationMinutes int) *domain.Appointment {
	return &domain.Appointment{
		EmployeeID:      1,
		ShopID:          1,
		StartAt:         at(hour, min),
		DurationMinutes: durationMinutes,
	}
}

// now on the previous day, so same-day truncation never kicks in.
var nowBefore = time.Date(2024, 6, 9, 12, 0, 0, 0, time.Local)

func TestGenerateSlots_EmptyDay(t *testing.T) {
	slots, err := generateSlots(testBusinessStart, testBusinessEnd, testStepMinutes,
		day(), nowBefore, 60, nil)
	require.NoError(t, err)

	// 08:00 through 22:50 at 10-minute steps.
	assert.Len(t, slots, 90)
	assert.Equal(t, "2024-06-10 08:00", slots[0])
	assert.Equal(t, "2024-06-10 22:50", slots[len(slots)-1])
}

func TestGenerateSlots_SkipsBookedInterval(t *testing.T) {
	booked := []*domain.Appointment{appointmentAt(10, 0, 60)}

	slots, err := generateSlots(testBusinessStart, testBusinessEnd, testStepMinutes,
		day(), nowBefore, 60, booked)
	require.NoError(t, err)

	// A one-hour slot ending exactly at 10:00 still fits, and so does one
	// starting exactly at 11:00. Everything that would intersect is gone.
	assert.Contains(t, slots, "2024-06-10 09:00")
	assert.Contains(t, slots, "2024-06-10 11:00")
	for _, excluded := range []string{
		"2024-06-10 09:10", "2024-06-10 09:20", "2024-06-10 09:30",
		"2024-06-10 09:40", "2024-06-10 09:50", "2024-06-10 10:00",
		"2024-06-10 10:30", "2024-06-10 10:50",
	} {
		assert.NotContains(t, slots, excluded)
	}
	assert.Len(t, slots, 79)
}

func TestGenerateSlots_ClosingBoundary(t *testing.T) {
	slots, err := generateSlots(testBusinessStart, testBusinessEnd, testStepMinutes,
		day(), nowBefore, 10, nil)
	require.NoError(t, err)

	// A 10-minute slot ending exactly at 23:55 is the last valid candidate.
	assert.Equal(t, "2024-06-10 23:45", slots[len(slots)-1])
	assert.NotContains(t, slots, "2024-06-10 23:50")
	assert.NotContains(t, slots, "2024-06-10 23:55")
}

func TestGenerateSlots_SameDayTruncation(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		wantFirst string
	}{
		{
			name:      "mid-step rounds up",
			now:       time.Date(2024, 6, 10, 9, 17, 0, 0, time.Local),
			wantFirst: "2024-06-10 09:20",
		},
		{
			name:      "seconds are ignored on the boundary",
			now:       time.Date(2024, 6, 10, 9, 20, 30, 0, time.Local),
			wantFirst: "2024-06-10 09:20",
		},
		{
			name:      "before opening keeps the business start",
			now:       time.Date(2024, 6, 10, 6, 45, 0, 0, time.Local),
			wantFirst: "2024-06-10 08:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := generateSlots(testBusinessStart, testBusinessEnd, testStepMinutes,
				day(), tt.now, 30, nil)
			require.NoError(t, err)
			require.NotEmpty(t, slots)
			assert.Equal(t, tt.wantFirst, slots[0])
		})
	}
}

func TestGenerateSlots_PastDate(t *testing.T) {
	now := time.Date(2024, 6, 11, 10, 0, 0, 0, time.Local)

	slots, err := generateSlots(testBusinessStart, testBusinessEnd, testStepMinutes,
		day(), now, 30, nil)
	require.NoError(t, err)

	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestGenerateSlots_DayAfterClosingTruncation(t *testing.T) {
	// Same day, but the business day is already over.
	now := time.Date(2024, 6, 10, 23, 50, 0, 0, time.Local)

	slots, err := generateSlots(testBusinessStart, testBusinessEnd, testStepMinutes,
		day(), now, 30, nil)
	require.NoError(t, err)

	assert.Empty(t, slots)
}

func TestGenerateSlots_Idempotent(t *testing.T) {
	booked := []*domain.Appointment{
		appointmentAt(9, 0, 30),
		appointmentAt(14, 30, 90),
	}

	first, err := generateSlots(testBusinessStart, testBusinessEnd, testStepMinutes,
		day(), nowBefore, 40, booked)
	require.NoError(t, err)

	second, err := generateSlots(testBusinessStart, testBusinessEnd, testStepMinutes,
		day(), nowBefore, 40, booked)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateSlots_NoSlotOverlapsAnyAppointment(t *testing.T) {
	booked := []*domain.Appointment{
		appointmentAt(8, 30, 45),
		appointmentAt(12, 0, 120),
		appointmentAt(19, 10, 20),
	}
	durationMinutes := 50

	slots, err := generateSlots(testBusinessStart, testBusinessEnd, testStepMinutes,
		day(), nowBefore, durationMinutes, booked)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	for _, slot := range slots {
		start, err := time.ParseInLocation(domain.DateTimeFormat, slot, time.Local)
		require.NoError(t, err)

		candidate := domain.TimeRange{
			Start: start,
			End:   start.Add(time.Duration(durationMinutes) * time.Minute),
		}
		for _, appt := range booked {
			assert.False(t, candidate.Overlaps(appt.Range()),
				"slot %s overlaps appointment starting %s", slot, appt.StartAt)
		}
	}
}

func TestRoundUpToStep(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "rounds up within the hour",
			in:   time.Date(2024, 6, 10, 9, 17, 0, 0, time.Local),
			want: time.Date(2024, 6, 10, 9, 20, 0, 0, time.Local),
		},
		{
			name: "boundary stays put",
			in:   time.Date(2024, 6, 10, 9, 20, 0, 0, time.Local),
			want: time.Date(2024, 6, 10, 9, 20, 0, 0, time.Local),
		},
		{
			name: "boundary with seconds stays put",
			in:   time.Date(2024, 6, 10, 9, 20, 59, 0, time.Local),
			want: time.Date(2024, 6, 10, 9, 20, 0, 0, time.Local),
		},
		{
			name: "rolls into the next hour",
			in:   time.Date(2024, 6, 10, 9, 55, 0, 0, time.Local),
			want: time.Date(2024, 6, 10, 10, 0, 0, 0, time.Local),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, roundUpToStep(tt.in, testStepMinutes))
		})
	}
}
