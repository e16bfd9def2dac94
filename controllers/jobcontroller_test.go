package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zarkopopovski/registrar-chat/models"
)

func workerToken(t *testing.T, router http.Handler) string {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/worker/login", map[string]string{
		"api_key": testWorkerKey,
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var td models.TokenDetails
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &td))
	require.NotEmpty(t, td.AccessToken)
	return td.AccessToken
}

func TestWorkerLoginRejectsBadKey(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/worker/login", map[string]string{
		"api_key": "wrong",
	}, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPendingJobsRequiresToken(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/compare/jobs", nil, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/compare/jobs", nil, "not-a-jwt")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWorkerJobFlow(t *testing.T) {
	router, store := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/chat/messages", map[string]interface{}{
		"session_id": "s1",
		"content":    "How many credits can I take?",
		"is_user":    true,
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	require.Eventually(t, func() bool {
		jobs, err := store.PendingJobs()
		require.NoError(t, err)
		return len(jobs) == 1
	}, 2*time.Second, 10*time.Millisecond)

	token := workerToken(t, router)

	w = doJSON(t, router, http.MethodGet, "/api/compare/jobs", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var jobs []models.ComparisonJob
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &jobs))
	require.Len(t, jobs, 1)
	job := jobs[0]
	require.Equal(t, models.JobStatusPending, job.Status)
	require.Equal(t, "How many credits can I take?", job.Question)

	w = doJSON(t, router, http.MethodPost, "/api/compare/jobs/"+job.ID+"/response", map[string]string{
		"response": "Up to 18 credit hours per semester.",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	msgs, err := store.MessagesBySession("s1")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	botMsg := msgs[1]
	require.NotNil(t, botMsg.ComparisonResponse)
	require.Equal(t, "Up to 18 credit hours per semester.", *botMsg.ComparisonResponse)

	pending, err := store.PendingJobs()
	require.NoError(t, err)
	require.Empty(t, pending)
}

func TestSubmitJobResponseRequiresBody(t *testing.T) {
	router, _ := newTestRouter(t)
	token := workerToken(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/compare/jobs/some-id/response", map[string]string{
		"response": "",
	}, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitJobResponseUnknownJob(t *testing.T) {
	router, _ := newTestRouter(t)
	token := workerToken(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/compare/jobs/missing/response", map[string]string{
		"response": "anything",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]bool
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp["success"])
}
