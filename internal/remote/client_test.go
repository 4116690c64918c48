package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/trainingtask/internal/contract"
	"github.com/alexanderramin/trainingtask/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []CallEvent
}

func (o *recordingObserver) OnCallComplete(e CallEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (Client, *recordingObserver) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := DefaultConfig()
	cfg.BaseURL = srv.URL
	cfg.Limit = 25
	obs := &recordingObserver{}
	return NewHTTPClient(cfg, obs), obs
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestClient_ListProjects_SendsLimit(t *testing.T) {
	var gotLimit string
	client, obs := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/projects", r.URL.Path)
		gotLimit = r.URL.Query().Get("limit")
		writeJSON(w, http.StatusOK, []contract.Project{{ID: "p1", Name: "Alpha"}})
	})

	projects, err := client.ListProjects(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "25", gotLimit)
	assert.Equal(t, []domain.Project{{ID: "p1", Name: "Alpha"}}, projects)

	require.Len(t, obs.events, 1)
	assert.True(t, obs.events[0].Success)
	assert.Equal(t, http.StatusOK, obs.events[0].StatusCode)
}

func TestClient_ListEmployees(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []contract.Employee{{ID: "e1", LastName: "Doe", FirstName: "Jane"}})
	})

	employees, err := client.ListEmployees(context.Background())
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "Doe Jane", employees[0].FullName())
}

func TestClient_CreateTask_PostsWireBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var in contract.Task
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "p1", in.Project.ID)
		assert.Equal(t, "2023-01-01", in.StartDate)
		in.ID = "server-id"
		writeJSON(w, http.StatusCreated, in)
	})

	task := domain.Task{
		Name:          "Fix bug",
		Project:       domain.Project{ID: "p1", Name: "Alpha"},
		Employee:      domain.Employee{ID: "e1", LastName: "Doe", FirstName: "Jane"},
		Status:        domain.StatusNew,
		RequiredHours: 3,
		StartDate:     time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC),
	}
	created, err := client.CreateTask(context.Background(), task)
	require.NoError(t, err)
	assert.Equal(t, "server-id", created.ID)
	assert.Equal(t, task.StartDate, created.StartDate)
}

func TestClient_StatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		status int
		want   error
	}{
		{"not found", http.StatusNotFound, ErrNotFound},
		{"bad request", http.StatusBadRequest, ErrRejected},
		{"server error", http.StatusInternalServerError, ErrUnexpectedStatus},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client, obs := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tc.status, contract.ErrorResponse{Error: "nope"})
			})

			_, err := client.GetTask(context.Background(), "t1")
			require.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), "nope")
			require.Len(t, obs.events, 1)
			assert.False(t, obs.events[0].Success)
		})
	}
}

func TestClient_DeleteTask_EscapesID(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/tasks/a%2Fb", r.URL.EscapedPath())
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.DeleteTask(context.Background(), "a/b"))
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	cfg := DefaultConfig()
	cfg.BaseURL = srv.URL
	cfg.TimeoutMs = 50
	client := NewHTTPClient(cfg, nil)

	_, err := client.ListTasks(context.Background())
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestClient_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	cfg := DefaultConfig()
	cfg.BaseURL = url
	cfg.MaxRetries = 1
	client := NewHTTPClient(cfg, nil)

	_, err := client.ListProjects(context.Background())
	assert.ErrorIs(t, err, ErrServerUnavailable)
	assert.False(t, client.Available(context.Background()))
}

func TestClient_Available(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	assert.True(t, client.Available(context.Background()))
}

func TestClient_ListTasks_RejectsMalformedTask(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []contract.Task{{ID: "t1", Status: "weird", StartDate: "2023-01-01", EndDate: "2023-01-01"}})
	})

	_, err := client.ListTasks(context.Background())
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}

func TestLogObserver_WritesEvents(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogObserver(&buf)

	obs.OnCallComplete(CallEvent{Method: "GET", Path: "/projects", StatusCode: 200, Success: true})
	obs.OnCallComplete(CallEvent{Method: "GET", Path: "/tasks", ErrorCode: "timeout"})

	out := buf.String()
	assert.Contains(t, out, "msg=server_call")
	assert.Contains(t, out, "path=/projects")
	assert.Contains(t, out, "error=timeout")
	assert.Contains(t, out, "level=WARN")
}
