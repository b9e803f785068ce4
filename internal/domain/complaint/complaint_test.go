package complaint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "campusdesk/internal/domain/complaint/valueobjects"
)

func TestNewComplaint_Defaults(t *testing.T) {
	c, err := NewComplaint(1, vo.CategoryProjector, "Projector flickers", "Flickers during lectures", "Room 101", "", "", "")
	require.NoError(t, err)

	assert.Equal(t, vo.StatusPending, c.Status())
	assert.Equal(t, vo.PriorityMedium, c.Priority(), "priority defaults to medium")
	assert.Nil(t, c.ResolvedAt())
	assert.Nil(t, c.AssigneeID())
}

func TestNewComplaint_Validation(t *testing.T) {
	tests := []struct {
		name        string
		reporterID  uint
		category    vo.Category
		title       string
		description string
		location    string
		priority    vo.Priority
	}{
		{"missing reporter", 0, vo.CategoryWifi, "No wifi", "No signal", "Lab A", ""},
		{"invalid category", 1, vo.Category("elevator"), "Broken", "Stuck", "Lab A", ""},
		{"missing title", 1, vo.CategoryWifi, "", "No signal", "Lab A", ""},
		{"title too long", 1, vo.CategoryWifi, strings.Repeat("x", 101), "No signal", "Lab A", ""},
		{"missing description", 1, vo.CategoryWifi, "No wifi", "", "Lab A", ""},
		{"missing location", 1, vo.CategoryWifi, "No wifi", "No signal", "", ""},
		{"invalid priority", 1, vo.CategoryWifi, "No wifi", "No signal", "Lab A", vo.Priority("critical")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewComplaint(tt.reporterID, tt.category, tt.title, tt.description, tt.location, "", "", tt.priority)
			assert.Error(t, err)
		})
	}
}

func TestComplaint_ChangeStatus_StampsResolvedAt(t *testing.T) {
	c, err := NewComplaint(1, vo.CategoryAC, "AC leaking", "Water on floor", "Room 204", "Main Building", "2nd Floor", vo.PriorityHigh)
	require.NoError(t, err)

	require.NoError(t, c.ChangeStatus(vo.StatusInProgress))
	assert.Nil(t, c.ResolvedAt())

	require.NoError(t, c.ChangeStatus(vo.StatusResolved))
	assert.NotNil(t, c.ResolvedAt())

	// No transition restrictions: resolved may go back to pending.
	require.NoError(t, c.ChangeStatus(vo.StatusPending))
	assert.Equal(t, vo.StatusPending, c.Status())

	assert.Error(t, c.ChangeStatus(vo.Status("reopened")))
}

func TestComplaint_Assign(t *testing.T) {
	c, err := NewComplaint(1, vo.CategoryAC, "AC leaking", "Water on floor", "Room 204", "", "", "")
	require.NoError(t, err)

	assert.Error(t, c.Assign(0))

	require.NoError(t, c.Assign(7))
	require.NotNil(t, c.AssigneeID())
	assert.Equal(t, uint(7), *c.AssigneeID())
}
