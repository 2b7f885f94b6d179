package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codycoggins/istari/internal/api"
	"github.com/codycoggins/istari/internal/model"
)

// fakeServer is a tiny in-memory Istari backend good enough to exercise
// the four stores' refresh-after-mutation behavior.
type fakeServer struct {
	mu            sync.Mutex
	todoLists     int
	notifLists    int
	digestLists   int
	settingsGets  int
	failWrites    bool
	notifications []model.Notification
	digests       []model.Digest
}

func (f *fakeServer) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /todos/", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.todoLists++
		f.mu.Unlock()
		writeJSON(w, map[string]any{"todos": []model.Todo{}})
	})
	mux.HandleFunc("POST /todos/{id}/complete", func(w http.ResponseWriter, r *http.Request) {
		f.writeResult(w)
	})
	mux.HandleFunc("PATCH /todos/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.writeResult(w)
	})
	mux.HandleFunc("GET /notifications/", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.notifLists++
		items := f.notifications
		f.mu.Unlock()
		writeJSON(w, map[string]any{"notifications": items})
	})
	mux.HandleFunc("POST /notifications/{id}/read", func(w http.ResponseWriter, r *http.Request) {
		f.writeResult(w)
	})
	mux.HandleFunc("POST /notifications/read-all", func(w http.ResponseWriter, r *http.Request) {
		if f.failWrites {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		writeJSON(w, map[string]any{"count": 2})
	})
	mux.HandleFunc("GET /digests/", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.digestLists++
		items := f.digests
		f.mu.Unlock()
		writeJSON(w, map[string]any{"digests": items})
	})
	mux.HandleFunc("POST /digests/{id}/review", func(w http.ResponseWriter, r *http.Request) {
		f.writeResult(w)
	})
	mux.HandleFunc("GET /settings/", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.settingsGets++
		f.mu.Unlock()
		writeJSON(w, map[string]any{"settings": map[string]string{"focus_mode": "false"}})
	})
	mux.HandleFunc("PUT /settings/{key}", func(w http.ResponseWriter, r *http.Request) {
		f.writeResult(w)
	})
	return mux
}

func (f *fakeServer) writeResult(w http.ResponseWriter) {
	if f.failWrites {
		http.Error(w, "boom", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func newFakeBackend(t *testing.T) (*fakeServer, *api.Client) {
	t.Helper()
	fake := &fakeServer{}
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)
	return fake, api.New(srv.URL, nil)
}

func (f *fakeServer) todoListCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.todoLists
}

func TestCompleteTriggersExactlyOneRefresh(t *testing.T) {
	fake, client := newFakeBackend(t)
	todos := NewTodos(client, nil)

	require.NoError(t, todos.Complete(context.Background(), 1))
	assert.Equal(t, 1, fake.todoListCount())

	require.NoError(t, todos.Reopen(context.Background(), 1))
	assert.Equal(t, 2, fake.todoListCount())
}

func TestFailedMutationPropagatesAndSkipsRefresh(t *testing.T) {
	fake, client := newFakeBackend(t)
	fake.failWrites = true
	todos := NewTodos(client, nil)

	err := todos.Complete(context.Background(), 1)
	require.Error(t, err)
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 0, fake.todoListCount(), "failed write must not refresh")
}

func TestMarkReadIsIdempotent(t *testing.T) {
	fake, client := newFakeBackend(t)
	readAt := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	fake.notifications = []model.Notification{
		{ID: 5, Type: model.NotificationTypeStaleness, Content: "stale todo", Read: true, ReadAt: &readAt},
	}
	notifs := NewNotifications(client, 20, nil)

	require.NoError(t, notifs.MarkRead(context.Background(), 5))
	require.NoError(t, notifs.MarkRead(context.Background(), 5))

	items := notifs.Items()
	require.Len(t, items, 1)
	assert.True(t, items[0].Read, "read flag never reverts")
	assert.Equal(t, readAt, *items[0].ReadAt)
	assert.Equal(t, "stale todo", items[0].Content)
	assert.Equal(t, 0, notifs.Unread())
}

func TestMarkReviewedIsIdempotent(t *testing.T) {
	fake, client := newFakeBackend(t)
	reviewedAt := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	fake.digests = []model.Digest{
		{ID: 2, Source: "gmail_digest", ContentSummary: "3 newsletters", Reviewed: true, ReviewedAt: &reviewedAt},
	}
	digests := NewDigests(client, 10, nil)

	require.NoError(t, digests.MarkReviewed(context.Background(), 2))
	require.NoError(t, digests.MarkReviewed(context.Background(), 2))

	items := digests.Items()
	require.Len(t, items, 1)
	assert.True(t, items[0].Reviewed, "reviewed is monotonic")
	assert.Equal(t, "3 newsletters", items[0].ContentSummary)
}

func TestMarkAllReadReturnsCountAndRefreshes(t *testing.T) {
	fake, client := newFakeBackend(t)
	notifs := NewNotifications(client, 20, nil)

	count, err := notifs.MarkAllRead(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	fake.mu.Lock()
	lists := fake.notifLists
	fake.mu.Unlock()
	assert.Equal(t, 1, lists)
}

func TestSettingsUpdateWritesSingleKeyWithoutRefetch(t *testing.T) {
	fake, client := newFakeBackend(t)
	settings := NewSettings(client, nil)

	settings.Load(context.Background())
	assert.False(t, settings.Loading())
	assert.Equal(t, "false", settings.Get(SettingFocusMode))
	assert.False(t, settings.FocusMode())

	require.NoError(t, settings.Update(context.Background(), SettingFocusMode, "true"))
	assert.True(t, settings.FocusMode())

	fake.mu.Lock()
	gets := fake.settingsGets
	fake.mu.Unlock()
	assert.Equal(t, 1, gets, "update must not trigger a full refetch")
}

func TestSettingsUpdateFailurePropagates(t *testing.T) {
	fake, client := newFakeBackend(t)
	settings := NewSettings(client, nil)
	settings.Load(context.Background())

	fake.failWrites = true
	err := settings.Update(context.Background(), SettingFocusMode, "true")
	require.Error(t, err)
	assert.False(t, settings.FocusMode(), "local value untouched on failed write")
}

func TestVisibleFiltersCompletedBeforeToday(t *testing.T) {
	_, client := newFakeBackend(t)
	todos := NewTodos(client, nil)
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	// Refresh returns the server's empty list; Visible on top of local
	// items is covered in model tests. Here just assert the plumbing.
	todos.Refresh(context.Background())
	assert.Empty(t, todos.Visible(now))
	assert.False(t, todos.Loading())
}
