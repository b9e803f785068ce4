package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusdesk/internal/domain/complaint"
	vo "campusdesk/internal/domain/complaint/valueobjects"
	"campusdesk/internal/shared/errors"
)

func TestListMyComplaintsUseCase_Execute_Filters(t *testing.T) {
	var got complaint.Filter
	complaintRepo := &mockComplaintRepository{
		ListByReporterFunc: func(ctx context.Context, reporterID uint, filter complaint.Filter) ([]*complaint.Complaint, error) {
			assert.Equal(t, uint(1), reporterID)
			got = filter
			return nil, nil
		},
	}

	useCase := NewListMyComplaintsUseCase(complaintRepo, &mockUserRepository{}, &mockLogger{})
	_, err := useCase.Execute(context.Background(), ListMyComplaintsCommand{
		ReporterID: 1,
		Status:     "in_progress",
		Category:   "wifi",
		Priority:   "high",
	})

	require.NoError(t, err)
	require.NotNil(t, got.Status)
	assert.Equal(t, vo.StatusInProgress, *got.Status)
	require.NotNil(t, got.Category)
	assert.Equal(t, vo.CategoryWifi, *got.Category)
	require.NotNil(t, got.Priority)
	assert.Equal(t, vo.PriorityHigh, *got.Priority)
}

func TestListMyComplaintsUseCase_Execute_BadFilter(t *testing.T) {
	useCase := NewListMyComplaintsUseCase(&mockComplaintRepository{}, &mockUserRepository{}, &mockLogger{})

	tests := []struct {
		name string
		cmd  ListMyComplaintsCommand
	}{
		{"bad status", ListMyComplaintsCommand{ReporterID: 1, Status: "reopened"}},
		{"bad category", ListMyComplaintsCommand{ReporterID: 1, Category: "elevator"}},
		{"bad priority", ListMyComplaintsCommand{ReporterID: 1, Priority: "critical"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := useCase.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}
