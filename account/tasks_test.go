package account

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gigmail/client/model"
)

// TestTasks tests list decoding, with a missing list meaning empty.
func TestTasks(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tasks", r.URL.Path)
		w.Write([]byte(`{"tasks":[{"id":"t1","title":"Book studio","completed":true},{"id":"t2","title":"Email venues"}]}`))
	}))

	tasks, err := c.Tasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.True(t, tasks[0].Completed)
	assert.Equal(t, "Email venues", tasks[1].Title)
}

// TestAddTaskTrimsTitle tests that the title is trimmed before
// submission and the created task returned.
func TestAddTaskTrimsTitle(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Title string `json:"title"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Book studio", body.Title)
		json.NewEncoder(w).Encode(map[string]model.Task{"task": {ID: "t9", Title: body.Title}})
	}))

	task, err := c.AddTask(context.Background(), "  Book studio  ")
	require.NoError(t, err)
	assert.Equal(t, "t9", task.ID)
}

// TestAddTaskEmptyRejectedLocally tests that a blank title never
// reaches the server.
func TestAddTaskEmptyRejectedLocally(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("empty task titles must not be submitted")
	}))

	_, err := c.AddTask(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyTaskTitle)
}

// TestSetTaskCompleted tests the completion toggle call.
func TestSetTaskCompleted(t *testing.T) {
	var gotID string
	var gotCompleted bool
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/tasks/{id}", func(w http.ResponseWriter, r *http.Request) {
		gotID = r.PathValue("id")
		var body struct {
			Completed bool `json:"completed"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		gotCompleted = body.Completed
	})

	c := newTestClient(t, mux)

	err := c.SetTaskCompleted(context.Background(), "t1", true)
	require.NoError(t, err)
	assert.Equal(t, "t1", gotID)
	assert.True(t, gotCompleted)
}

// TestSendFeedback tests feedback submission, including the local
// empty check.
func TestSendFeedback(t *testing.T) {
	var got string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/endpoint", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		var body struct {
			Feedback string `json:"feedback"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		got = body.Feedback
	}))

	err := c.SendFeedback(context.Background(), "Great product")
	require.NoError(t, err)
	assert.Equal(t, "Great product", got)

	err = c.SendFeedback(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyFeedback)
}
