package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "campusdesk/internal/domain/appointment/valueobjects"
)

func newPendingAppointment(t *testing.T) *Appointment {
	t.Helper()
	a, err := NewAppointment(1, 2, time.Now().AddDate(0, 0, 1), "14:30", vo.DurationHalf, "thesis advice")
	require.NoError(t, err)
	return a
}

func TestNewAppointment(t *testing.T) {
	a := newPendingAppointment(t)

	assert.Equal(t, vo.StatusPending, a.Status())
	assert.Equal(t, "14:30", a.TimeOfDay())
	assert.Equal(t, 30, a.Duration().Minutes())
	assert.Equal(t, 0, a.Date().Hour(), "date is truncated to its calendar day")
}

func TestNewAppointment_Invalid(t *testing.T) {
	tomorrow := time.Now().AddDate(0, 0, 1)

	tests := []struct {
		name      string
		studentID uint
		facultyID uint
		date      time.Time
		timeOfDay string
		duration  vo.Duration
		reason    string
	}{
		{"missing student", 0, 2, tomorrow, "14:30", vo.DurationHalf, "advice"},
		{"missing faculty", 1, 0, tomorrow, "14:30", vo.DurationHalf, "advice"},
		{"zero date", 1, 2, time.Time{}, "14:30", vo.DurationHalf, "advice"},
		{"bad time format", 1, 2, tomorrow, "2:30pm", vo.DurationHalf, "advice"},
		{"hour out of range", 1, 2, tomorrow, "24:00", vo.DurationHalf, "advice"},
		{"bad duration", 1, 2, tomorrow, "14:30", vo.Duration(25), "advice"},
		{"missing reason", 1, 2, tomorrow, "14:30", vo.DurationHalf, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAppointment(tt.studentID, tt.facultyID, tt.date, tt.timeOfDay, tt.duration, tt.reason)
			assert.Error(t, err)
		})
	}
}

func TestAppointment_TransitionMatrix(t *testing.T) {
	tests := []struct {
		from    vo.Status
		to      vo.Status
		allowed bool
	}{
		{vo.StatusPending, vo.StatusApproved, true},
		{vo.StatusPending, vo.StatusRejected, true},
		{vo.StatusPending, vo.StatusCancelled, true},
		{vo.StatusApproved, vo.StatusCancelled, true},
		{vo.StatusApproved, vo.StatusRejected, false},
		{vo.StatusApproved, vo.StatusApproved, false},
		{vo.StatusRejected, vo.StatusApproved, false},
		{vo.StatusRejected, vo.StatusCancelled, false},
		{vo.StatusCancelled, vo.StatusApproved, false},
		{vo.StatusCancelled, vo.StatusRejected, false},
		{vo.StatusCompleted, vo.StatusCancelled, false},
	}

	for _, tt := range tests {
		name := string(tt.from) + "_to_" + string(tt.to)
		t.Run(name, func(t *testing.T) {
			a, err := ReconstructAppointment(
				10, 1, 2,
				time.Now().AddDate(0, 0, 1), "14:30", vo.DurationHalf,
				"advice", tt.from, "", "",
				time.Now(), time.Now(),
			)
			require.NoError(t, err)

			err = a.TransitionTo(tt.to)
			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, tt.to, a.Status())
			} else {
				assert.Error(t, err)
				assert.Equal(t, tt.from, a.Status())
			}
		})
	}
}

func TestAppointment_TransitionTo_RejectsNonRequestableStatus(t *testing.T) {
	a := newPendingAppointment(t)

	assert.Error(t, a.TransitionTo(vo.StatusPending))
	assert.Error(t, a.TransitionTo(vo.StatusCompleted))
	assert.Error(t, a.TransitionTo(vo.Status("done")))
	assert.Equal(t, vo.StatusPending, a.Status())
}

func TestAppointment_InvolvesUser(t *testing.T) {
	a := newPendingAppointment(t)

	assert.True(t, a.InvolvesUser(1))
	assert.True(t, a.InvolvesUser(2))
	assert.False(t, a.InvolvesUser(3))
}

func TestCombineDateTime(t *testing.T) {
	date := time.Date(2026, 9, 14, 17, 45, 3, 0, time.UTC)

	combined := CombineDateTime(date, "14:30")
	assert.Equal(t, time.Date(2026, 9, 14, 14, 30, 0, 0, time.UTC), combined)

	fallback := CombineDateTime(date, "garbage")
	assert.Equal(t, time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), fallback)
}

func TestStatus_IsActive(t *testing.T) {
	assert.True(t, vo.StatusPending.IsActive())
	assert.True(t, vo.StatusApproved.IsActive())
	assert.False(t, vo.StatusRejected.IsActive())
	assert.False(t, vo.StatusCancelled.IsActive())
	assert.False(t, vo.StatusCompleted.IsActive())
}
