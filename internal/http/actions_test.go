package httpx

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jobdesk/jobdesk/internal/domain/model"
	"github.com/jobdesk/jobdesk/internal/mocks"
	"github.com/jobdesk/jobdesk/internal/service"
)

type actionTestEnv struct {
	handlers *ActionHandlers
	jobs     *mocks.MockJobRepository
	requests *mocks.MockPremiumRequestRepository
	logBuf   *bytes.Buffer
}

func newActionTestEnv(t *testing.T) *actionTestEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	jobs := mocks.NewMockJobRepository(ctrl)
	categories := mocks.NewMockJobCategoryRepository(ctrl)
	requests := mocks.NewMockPremiumRequestRepository(ctrl)

	logBuf := &bytes.Buffer{}

	return &actionTestEnv{
		handlers: &ActionHandlers{
			Jobs: service.NewJobService(service.JobServiceOptions{
				Jobs:       jobs,
				Categories: categories,
			}),
			Requests: service.NewPremiumRequestService(service.PremiumRequestServiceOptions{
				Requests: requests,
			}),
			Logger: slog.New(slog.NewTextHandler(logBuf, nil)),
		},
		jobs:     jobs,
		requests: requests,
		logBuf:   logBuf,
	}
}

func postAction(form url.Values, headers map[string]string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/admin/actions", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}

func TestActions_MarkCompleted_JSON(t *testing.T) {
	env := newActionTestEnv(t)
	env.requests.EXPECT().
		MarkCompleted(gomock.Any(), int64(12)).
		Return(true, nil)

	form := url.Values{}
	form.Set("action", "mark_completed")
	form.Set("request_id", "12")

	req := postAction(form, map[string]string{"Accept": "application/json"})
	w := httptest.NewRecorder()

	env.handlers.Apply(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestActions_UpdateJobStatus_DispatchesToJobService(t *testing.T) {
	env := newActionTestEnv(t)
	env.jobs.EXPECT().
		GetByID(gomock.Any(), int64(5)).
		Return(&model.Job{ID: 5, Status: model.JobStatusActive}, nil)
	env.jobs.EXPECT().
		UpdateStatus(gomock.Any(), int64(5), model.JobStatusClosed).
		Return(true, nil)

	form := url.Values{}
	form.Set("action", "update_job_status")
	form.Set("job_id", "5")
	form.Set("status", "closed")

	req := postAction(form, map[string]string{"Accept": "application/json"})
	w := httptest.NewRecorder()

	env.handlers.Apply(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestActions_UpdateRequestStatus_PassesNotes(t *testing.T) {
	env := newActionTestEnv(t)
	env.requests.EXPECT().
		UpdateStatusNotes(gomock.Any(), int64(7), model.RequestStatusInProgress, "called the customer").
		Return(true, nil)

	form := url.Values{}
	form.Set("action", "update_status")
	form.Set("request_id", "7")
	form.Set("status", "in_progress")
	form.Set("notes", "called the customer")

	req := postAction(form, map[string]string{"Accept": "application/json"})
	w := httptest.NewRecorder()

	env.handlers.Apply(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestActions_UnknownAction(t *testing.T) {
	env := newActionTestEnv(t)

	form := url.Values{}
	form.Set("action", "explode")

	req := postAction(form, map[string]string{"Accept": "application/json"})
	w := httptest.NewRecorder()

	env.handlers.Apply(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "unknown action")
}

func TestActions_JSONBody(t *testing.T) {
	env := newActionTestEnv(t)
	env.requests.EXPECT().
		MarkCompleted(gomock.Any(), int64(12)).
		Return(true, nil)

	body := `{"action":"mark_completed","request_id":12}`
	req := httptest.NewRequest(http.MethodPost, "/admin/actions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()

	env.handlers.Apply(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestActions_MalformedJSONBody(t *testing.T) {
	env := newActionTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/admin/actions", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()

	env.handlers.Apply(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestActions_InternalErrorIsGenericAndLogged(t *testing.T) {
	env := newActionTestEnv(t)
	env.requests.EXPECT().
		MarkCompleted(gomock.Any(), int64(4)).
		Return(false, errors.New("connection refused"))

	form := url.Values{}
	form.Set("action", "mark_completed")
	form.Set("request_id", "4")

	req := postAction(form, map[string]string{"Accept": "application/json"})
	w := httptest.NewRecorder()

	env.handlers.Apply(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "internal error", resp.Message)
	assert.NotContains(t, w.Body.String(), "connection refused")

	// The cause lands in the server log only.
	assert.Contains(t, env.logBuf.String(), "connection refused")
}

func TestActions_NotFound(t *testing.T) {
	env := newActionTestEnv(t)
	env.requests.EXPECT().
		MarkCompleted(gomock.Any(), int64(999)).
		Return(false, nil)

	form := url.Values{}
	form.Set("action", "mark_completed")
	form.Set("request_id", "999")

	req := postAction(form, map[string]string{"Accept": "application/json"})
	w := httptest.NewRecorder()

	env.handlers.Apply(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestActions_BrowserSuccessRedirectsToReferer(t *testing.T) {
	env := newActionTestEnv(t)
	env.requests.EXPECT().
		MarkCompleted(gomock.Any(), int64(3)).
		Return(true, nil)

	form := url.Values{}
	form.Set("action", "mark_completed")
	form.Set("request_id", "3")

	req := postAction(form, map[string]string{
		"Accept":  "text/html",
		"Referer": "http://localhost:8080/admin/premium-requests?status=pending",
	})
	w := httptest.NewRecorder()

	env.handlers.Apply(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/premium-requests?status=pending", w.Header().Get("Location"))
}

func TestActions_BrowserErrorRedirectsWithMessage(t *testing.T) {
	env := newActionTestEnv(t)

	form := url.Values{}
	form.Set("action", "update_job_status")
	form.Set("job_id", "abc")
	form.Set("status", "closed")

	req := postAction(form, map[string]string{
		"Accept":  "text/html",
		"Referer": "http://localhost:8080/admin/jobs",
	})
	w := httptest.NewRecorder()

	env.handlers.Apply(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	location := w.Header().Get("Location")
	assert.True(t, strings.HasPrefix(location, "/admin/jobs?error="), "got %q", location)
}

func TestActions_BrowserFallsBackToAdminWithoutReferer(t *testing.T) {
	env := newActionTestEnv(t)
	env.requests.EXPECT().
		MarkCompleted(gomock.Any(), int64(3)).
		Return(true, nil)

	form := url.Values{}
	form.Set("action", "mark_completed")
	form.Set("request_id", "3")

	req := postAction(form, map[string]string{"Accept": "text/html"})
	w := httptest.NewRecorder()

	env.handlers.Apply(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
}
