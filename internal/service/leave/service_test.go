package leave

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallerhq/ops-backend-go/internal/domain/employee"
	"github.com/tallerhq/ops-backend-go/internal/domain/leave"
	"github.com/tallerhq/ops-backend-go/internal/pkg/storage"
)

type fakeLeaveRepo struct {
	leave.RequestRepository
	requests map[string]leave.Request
	nextID   int
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{requests: make(map[string]leave.Request)}
}

func (f *fakeLeaveRepo) Create(_ context.Context, req leave.Request) (leave.Request, error) {
	f.nextID++
	req.ID = fmt.Sprintf("leave-%d", f.nextID)
	f.requests[req.ID] = req
	return req, nil
}

func (f *fakeLeaveRepo) GetByID(_ context.Context, id string) (leave.Request, error) {
	req, ok := f.requests[id]
	if !ok {
		return leave.Request{}, leave.ErrLeaveNotFound
	}
	return req, nil
}

func (f *fakeLeaveRepo) UpdateStatus(_ context.Context, req leave.Request) error {
	if _, ok := f.requests[req.ID]; !ok {
		return leave.ErrLeaveNotFound
	}
	f.requests[req.ID] = req
	return nil
}

type stubEmployeeRepo struct {
	employee.EmployeeRepository
}

func (stubEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	return employee.Employee{ID: id, FullName: "Ana Souza", IsActive: true}, nil
}

type fakeStorage struct {
	storage.FileStorage
	uploads   []string
	uploadErr error
}

func (f *fakeStorage) Upload(_ context.Context, _ io.Reader, path string, _ string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.uploads = append(f.uploads, path)
	return path, nil
}

func (f *fakeStorage) GetURL(_ context.Context, path string, _ time.Duration) (string, error) {
	return "https://files.local/" + path, nil
}

func newLeaveService(store *fakeStorage) (leave.LeaveService, *fakeLeaveRepo) {
	repo := newFakeLeaveRepo()
	return NewLeaveService(repo, stubEmployeeRepo{}, store), repo
}

func createLeave(t *testing.T, service leave.LeaveService) leave.RequestResponse {
	t.Helper()
	resp, err := service.Request(context.Background(), leave.CreateLeaveRequest{
		EmployeeID: "emp-1",
		Type:       "MEDICAL",
		StartAt:    "2025-03-12T09:00:00Z",
		EndAt:      "2025-03-12T12:00:00Z",
		Reason:     "doctor appointment",
	})
	require.NoError(t, err)
	return resp
}

func TestRequest_CreatesPending(t *testing.T) {
	service, _ := newLeaveService(&fakeStorage{})

	resp := createLeave(t, service)
	assert.Equal(t, "PENDING", resp.Status)
	assert.Equal(t, "MEDICAL", resp.Type)
	assert.Nil(t, resp.AttachmentURL)
}

func TestRequest_StoresAttachment(t *testing.T) {
	store := &fakeStorage{}
	service, _ := newLeaveService(store)

	resp, err := service.Request(context.Background(), leave.CreateLeaveRequest{
		EmployeeID:     "emp-1",
		Type:           "MEDICAL",
		StartAt:        "2025-03-12T09:00:00Z",
		EndAt:          "2025-03-12T12:00:00Z",
		Reason:         "doctor appointment",
		Attachment:     strings.NewReader("certificate"),
		AttachmentName: "certificate.pdf",
	})
	require.NoError(t, err)

	require.Len(t, store.uploads, 1)
	assert.True(t, strings.HasPrefix(store.uploads[0], "leave-attachments/emp-1/"))
	assert.True(t, strings.HasSuffix(store.uploads[0], ".pdf"))
	require.NotNil(t, resp.AttachmentURL)
	assert.True(t, strings.HasPrefix(*resp.AttachmentURL, "https://files.local/"))
}

func TestRequest_UploadFailureDoesNotBlockRequest(t *testing.T) {
	store := &fakeStorage{uploadErr: assert.AnError}
	service, repo := newLeaveService(store)

	resp, err := service.Request(context.Background(), leave.CreateLeaveRequest{
		EmployeeID:     "emp-1",
		Type:           "MEDICAL",
		StartAt:        "2025-03-12T09:00:00Z",
		EndAt:          "2025-03-12T12:00:00Z",
		Reason:         "doctor appointment",
		Attachment:     strings.NewReader("certificate"),
		AttachmentName: "certificate.pdf",
	})
	require.NoError(t, err)
	assert.Nil(t, resp.AttachmentURL)
	require.Len(t, repo.requests, 1)
}

func TestApprove_SetsApproverAndComments(t *testing.T) {
	service, _ := newLeaveService(&fakeStorage{})
	created := createLeave(t, service)

	comments := "bring the certificate on return"
	approved, err := service.Approve(context.Background(), leave.ApproveLeaveRequest{
		ID:         created.ID,
		ApproverID: "admin-1",
		Comments:   &comments,
	})
	require.NoError(t, err)
	assert.Equal(t, "APPROVED", approved.Status)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, "admin-1", *approved.ApprovedBy)
	require.NotNil(t, approved.Comments)
	assert.Equal(t, comments, *approved.Comments)
}

func TestReject_StoresReasonAsComments(t *testing.T) {
	service, _ := newLeaveService(&fakeStorage{})
	created := createLeave(t, service)

	rejected, err := service.Reject(context.Background(), leave.RejectLeaveRequest{
		ID:         created.ID,
		ApproverID: "admin-1",
		Reason:     "no coverage that day",
	})
	require.NoError(t, err)
	assert.Equal(t, "REJECTED", rejected.Status)
	require.NotNil(t, rejected.Comments)
	assert.Equal(t, "no coverage that day", *rejected.Comments)
}

func TestApprove_AlreadyProcessed(t *testing.T) {
	service, _ := newLeaveService(&fakeStorage{})
	created := createLeave(t, service)

	_, err := service.Approve(context.Background(), leave.ApproveLeaveRequest{ID: created.ID, ApproverID: "admin-1"})
	require.NoError(t, err)

	_, err = service.Reject(context.Background(), leave.RejectLeaveRequest{ID: created.ID, ApproverID: "admin-2", Reason: "late"})
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyProcessed)
}

func TestRequest_ValidatesRange(t *testing.T) {
	service, _ := newLeaveService(&fakeStorage{})

	_, err := service.Request(context.Background(), leave.CreateLeaveRequest{
		EmployeeID: "emp-1",
		Type:       "MEDICAL",
		StartAt:    "2025-03-12T12:00:00Z",
		EndAt:      "2025-03-12T09:00:00Z",
		Reason:     "doctor appointment",
	})
	assert.Error(t, err)
}

func TestCoversDate(t *testing.T) {
	request := leave.Request{
		StartAt: time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC),
	}

	assert.True(t, request.CoversDate(time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)))
	assert.True(t, request.CoversDate(time.Date(2025, 3, 14, 23, 0, 0, 0, time.UTC)))
	assert.False(t, request.CoversDate(time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)))
	assert.False(t, request.CoversDate(time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)))
}
