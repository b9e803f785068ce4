package complaint

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusdesk/internal/application/complaint/usecases"
	domain "campusdesk/internal/domain/complaint"
	vo "campusdesk/internal/domain/complaint/valueobjects"
	"campusdesk/internal/domain/user"
	uservo "campusdesk/internal/domain/user/valueobjects"
	"campusdesk/internal/interfaces/http/handlers/testutil"
	"campusdesk/internal/shared/authorization"
	"campusdesk/internal/shared/errors"
)

type mockCreateUC struct {
	result  *usecases.ComplaintDetails
	err     error
	lastCmd usecases.CreateComplaintCommand
}

func (m *mockCreateUC) Execute(_ context.Context, cmd usecases.CreateComplaintCommand) (*usecases.ComplaintDetails, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockGetUC struct {
	result *usecases.ComplaintDetails
	err    error
}

func (m *mockGetUC) Execute(_ context.Context, _ usecases.GetComplaintCommand) (*usecases.ComplaintDetails, error) {
	return m.result, m.err
}

type mockListMineUC struct {
	result  []usecases.ComplaintDetails
	err     error
	lastCmd usecases.ListMyComplaintsCommand
}

func (m *mockListMineUC) Execute(_ context.Context, cmd usecases.ListMyComplaintsCommand) ([]usecases.ComplaintDetails, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockListAllUC struct {
	result []usecases.ComplaintDetails
	err    error
}

func (m *mockListAllUC) Execute(_ context.Context, _ usecases.ListAllComplaintsCommand) ([]usecases.ComplaintDetails, error) {
	return m.result, m.err
}

type mockUpdateStatusUC struct {
	result  *usecases.ComplaintDetails
	err     error
	lastCmd usecases.UpdateComplaintStatusCommand
}

func (m *mockUpdateStatusUC) Execute(_ context.Context, cmd usecases.UpdateComplaintStatusCommand) (*usecases.ComplaintDetails, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockDeleteUC struct {
	err     error
	lastCmd usecases.DeleteComplaintCommand
}

func (m *mockDeleteUC) Execute(_ context.Context, cmd usecases.DeleteComplaintCommand) error {
	m.lastCmd = cmd
	return m.err
}

type testDeps struct {
	createUC       CreateComplaintExecutor
	getUC          GetComplaintExecutor
	listMineUC     ListMyComplaintsExecutor
	listAllUC      ListAllComplaintsExecutor
	updateStatusUC UpdateComplaintStatusExecutor
	deleteUC       DeleteComplaintExecutor
}

func newTestHandler(deps testDeps) *ComplaintHandler {
	return NewComplaintHandler(
		deps.createUC,
		deps.getUC,
		deps.listMineUC,
		deps.listAllUC,
		deps.updateStatusUC,
		deps.deleteUC,
		testutil.NewMockLogger(),
	)
}

func newTestReporter(t *testing.T) *user.User {
	t.Helper()

	addr, err := uservo.NewEmail("asha.rao@muj.manipal.edu")
	require.NoError(t, err)

	now := time.Now().UTC()
	u, err := user.ReconstructUser(10, "Asha Rao", addr, "hashed", authorization.RoleStudent, "", nil, now, now)
	require.NoError(t, err)
	return u
}

func newTestDetails(t *testing.T, status vo.Status) *usecases.ComplaintDetails {
	t.Helper()

	now := time.Now().UTC()
	c, err := domain.ReconstructComplaint(
		1, 10, vo.CategoryAC, "AC not cooling",
		"The AC in room B-204 blows warm air", "Room B-204", "Block B", "2",
		status, vo.PriorityMedium, nil, "", nil, now, now,
	)
	require.NoError(t, err)

	return &usecases.ComplaintDetails{
		Complaint: c,
		Reporter:  newTestReporter(t),
	}
}

func TestComplaintHandler_Create_Success(t *testing.T) {
	mockUC := &mockCreateUC{result: newTestDetails(t, vo.StatusPending)}
	handler := newTestHandler(testDeps{createUC: mockUC})

	reqBody := CreateComplaintRequest{
		Category:    "ac",
		Title:       "AC not cooling",
		Description: "The AC in room B-204 blows warm air",
		Location:    "Room B-204",
		Building:    "Block B",
		Floor:       "2",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/complaints", reqBody)
	testutil.SetAuthContext(c, 10, authorization.RoleStudent)

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(10), mockUC.lastCmd.ReporterID)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var complaintResp ComplaintResponse
	require.NoError(t, json.Unmarshal(resp.Data, &complaintResp))
	assert.Equal(t, "pending", complaintResp.Status)
	require.NotNil(t, complaintResp.Reporter)
	assert.Equal(t, "Asha Rao", complaintResp.Reporter.Name)
}

func TestComplaintHandler_Create_BindError(t *testing.T) {
	handler := newTestHandler(testDeps{})

	reqBody := map[string]string{"title": "no category"}
	c, w := testutil.NewTestContext(http.MethodPost, "/complaints", reqBody)
	testutil.SetAuthContext(c, 10, authorization.RoleStudent)

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestComplaintHandler_Get_Forbidden(t *testing.T) {
	mockUC := &mockGetUC{err: errors.NewForbiddenError("Not authorized to view this complaint")}
	handler := newTestHandler(testDeps{getUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/complaints/1", nil)
	testutil.SetAuthContext(c, 99, authorization.RoleStudent)
	testutil.SetURLParam(c, "id", "1")

	handler.Get(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestComplaintHandler_ListMine_PassesFilters(t *testing.T) {
	mockUC := &mockListMineUC{result: []usecases.ComplaintDetails{*newTestDetails(t, vo.StatusPending)}}
	handler := newTestHandler(testDeps{listMineUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/complaints/my-complaints", nil)
	testutil.SetAuthContext(c, 10, authorization.RoleStudent)
	testutil.SetQueryParams(c, map[string]string{"status": "pending", "category": "ac"})

	handler.ListMine(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(10), mockUC.lastCmd.ReporterID)
	assert.Equal(t, "pending", mockUC.lastCmd.Status)
	assert.Equal(t, "ac", mockUC.lastCmd.Category)
}

func TestComplaintHandler_ListAll_Success(t *testing.T) {
	mockUC := &mockListAllUC{result: []usecases.ComplaintDetails{*newTestDetails(t, vo.StatusInProgress)}}
	handler := newTestHandler(testDeps{listAllUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/complaints/all", nil)
	testutil.SetAuthContext(c, 1, authorization.RoleAdmin)

	handler.ListAll(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Count)
	assert.Equal(t, 1, *resp.Count)
}

func TestComplaintHandler_UpdateStatus_Success(t *testing.T) {
	mockUC := &mockUpdateStatusUC{result: newTestDetails(t, vo.StatusResolved)}
	handler := newTestHandler(testDeps{updateStatusUC: mockUC})

	reqBody := UpdateStatusRequest{
		Status:     "resolved",
		AdminNotes: "Fan motor replaced",
	}
	c, w := testutil.NewTestContext(http.MethodPut, "/complaints/1/status", reqBody)
	testutil.SetAuthContext(c, 1, authorization.RoleAdmin)
	testutil.SetURLParam(c, "id", "1")

	handler.UpdateStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(1), mockUC.lastCmd.ComplaintID)
	assert.Equal(t, "resolved", mockUC.lastCmd.NewStatus)
	assert.Equal(t, "Fan motor replaced", mockUC.lastCmd.AdminNotes)
}

func TestComplaintHandler_UpdateStatus_InvalidStatus(t *testing.T) {
	mockUC := &mockUpdateStatusUC{
		err: errors.NewValidationError("Valid status is required (pending, in_progress, resolved, closed)"),
	}
	handler := newTestHandler(testDeps{updateStatusUC: mockUC})

	reqBody := UpdateStatusRequest{Status: "done"}
	c, w := testutil.NewTestContext(http.MethodPut, "/complaints/1/status", reqBody)
	testutil.SetAuthContext(c, 1, authorization.RoleAdmin)
	testutil.SetURLParam(c, "id", "1")

	handler.UpdateStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestComplaintHandler_Delete_Success(t *testing.T) {
	mockUC := &mockDeleteUC{}
	handler := newTestHandler(testDeps{deleteUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodDelete, "/complaints/1", nil)
	testutil.SetAuthContext(c, 10, authorization.RoleStudent)
	testutil.SetURLParam(c, "id", "1")

	handler.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(1), mockUC.lastCmd.ComplaintID)
	assert.Equal(t, uint(10), mockUC.lastCmd.ActorID)
	assert.Equal(t, authorization.RoleStudent, mockUC.lastCmd.ActorRole)
}

func TestComplaintHandler_Delete_Forbidden(t *testing.T) {
	mockUC := &mockDeleteUC{err: errors.NewForbiddenError("Not authorized to delete this complaint")}
	handler := newTestHandler(testDeps{deleteUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodDelete, "/complaints/1", nil)
	testutil.SetAuthContext(c, 99, authorization.RoleFaculty)
	testutil.SetURLParam(c, "id", "1")

	handler.Delete(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
