package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zarkopopovski/registrar-chat/models"
)

func newTestSQLStorage(t *testing.T) *SQLStorage {
	t.Helper()

	store, err := NewSQLStorage(filepath.Join(t.TempDir(), "test.db"), "file://../migrations")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}

func TestSQLStorageMessageRoundTrip(t *testing.T) {
	store := newTestSQLStorage(t)

	msg, err := store.CreateMessage(&models.Message{SessionID: "s1", Content: "hello", IsUser: true})
	require.NoError(t, err)
	require.NotEmpty(t, msg.ID)

	msgs, err := store.MessagesBySession("s1")
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	require.Equal(t, "hello", msgs[0].Content)
	require.True(t, msgs[0].IsUser)
	require.Nil(t, msgs[0].ComparisonResponse)
}

func TestSQLStorageOrderingAndIsolation(t *testing.T) {
	store := newTestSQLStorage(t)

	base := time.Now().Truncate(time.Second)

	_, err := store.CreateMessage(&models.Message{SessionID: "s1", Content: "first", CreatedAt: base})
	require.NoError(t, err)
	_, err = store.CreateMessage(&models.Message{SessionID: "s1", Content: "second", CreatedAt: base})
	require.NoError(t, err)
	_, err = store.CreateMessage(&models.Message{SessionID: "s2", Content: "other", CreatedAt: base})
	require.NoError(t, err)

	msgs, err := store.MessagesBySession("s1")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	require.Equal(t, "first", msgs[0].Content)
	require.Equal(t, "second", msgs[1].Content)

	require.NoError(t, store.ClearSessionMessages("s1"))

	remaining, err := store.Messages()
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	require.Equal(t, "s2", remaining[0].SessionID)
}

func TestSQLStorageJobs(t *testing.T) {
	store := newTestSQLStorage(t)

	msg, err := store.CreateMessage(&models.Message{SessionID: "s1", Content: "bot reply"})
	require.NoError(t, err)

	job, err := store.CreateJob(msg.ID, "question")
	require.NoError(t, err)

	pending, err := store.PendingJobs()
	require.NoError(t, err)
	require.Len(t, pending, 1)

	require.NoError(t, store.CompleteJob(job.ID, "alternate"))
	require.NoError(t, store.SetComparisonResponse(msg.ID, "alternate"))

	got, err := store.GetJob(job.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, models.JobStatusCompleted, got.Status)

	missing, err := store.GetJob("missing")
	require.NoError(t, err)
	require.Nil(t, missing)

	msgs, err := store.MessagesBySession("s1")
	require.NoError(t, err)
	require.NotNil(t, msgs[0].ComparisonResponse)
	require.Equal(t, "alternate", *msgs[0].ComparisonResponse)
}
