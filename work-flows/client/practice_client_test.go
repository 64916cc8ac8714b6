package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"practice-coach/work-flows/models"
)

func TestGeneratePracticeSendsNotes(t *testing.T) {
	var gotBody, gotContentType, gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"practice_plan": "Do scales"}`))
	}))
	defer server.Close()

	pc := NewPracticeClient(server.URL)
	resp, err := pc.GeneratePractice(context.Background(), models.NotesRequest("bow speed"))
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/practice-coach", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.JSONEq(t, `{"teacher_notes": "bow speed"}`, gotBody)
	assert.Equal(t, "Do scales", resp.PracticePlan)
}

func TestGeneratePracticeSendsLessonID(t *testing.T) {
	var gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	resp, err := NewPracticeClient(server.URL + "/").GeneratePractice(context.Background(), models.LessonRequest("42"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"lesson_id": "42"}`, gotBody)
	assert.Empty(t, resp.PracticePlan)
}

func TestGeneratePracticeHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("server error"))
	}))
	defer server.Close()

	_, err := NewPracticeClient(server.URL).GeneratePractice(context.Background(), models.NotesRequest("x"))
	require.Error(t, err)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
	assert.Equal(t, "server error", httpErr.Body)
	assert.Equal(t, "HTTP 500: server error", err.Error())
}

func TestGeneratePracticeMalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	_, err := NewPracticeClient(server.URL).GeneratePractice(context.Background(), models.NotesRequest("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")
}

func TestGeneratePracticeTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewPracticeClient(url).GeneratePractice(context.Background(), models.NotesRequest("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to execute request")

	var httpErr *HTTPError
	assert.False(t, errors.As(err, &httpErr))
}

func TestWithPath(t *testing.T) {
	pc := NewPracticeClient("http://coach.local/", WithPath("api/coach"))
	assert.Equal(t, "http://coach.local/api/coach", pc.Endpoint())

	pc = NewPracticeClient("", WithPath(""))
	assert.Equal(t, DefaultBaseURL+PracticeCoachPath, pc.Endpoint())
}
